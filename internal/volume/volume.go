package volume

import (
	"errors"
	"fmt"

	"github.com/drakos74/free-mri/internal/buffer"
	"github.com/drakos74/free-mri/internal/math/standard"
)

// InvalidVolumeErr is returned when the voxels do not fill the volume dimensions.
var InvalidVolumeErr = errors.New("invalid volume")

// Modality is the acquisition sequence of a volume.
type Modality string

const (
	T1    Modality = "t1"
	T1CE  Modality = "t1ce"
	T2    Modality = "t2"
	Flair Modality = "flair"
	Seg   Modality = "seg"
)

// Modalities are the image sequences acquired for every subject.
var Modalities = []Modality{T1, T1CE, T2, Flair}

// Volume is a 3-D scalar image stored in x-fastest order.
type Volume struct {
	Dims   [3]int    `json:"dims"`
	Voxels []float64 `json:"voxels"`
}

// New creates a new volume, the voxels are copied.
func New(dims [3]int, voxels []float64) (Volume, error) {
	size := dims[0] * dims[1] * dims[2]
	if dims[0] <= 0 || dims[1] <= 0 || dims[2] <= 0 {
		return Volume{}, fmt.Errorf("dimensions %v: %w", dims, InvalidVolumeErr)
	}
	if len(voxels) != size {
		return Volume{}, fmt.Errorf("%d voxels for dimensions %v: %w", len(voxels), dims, InvalidVolumeErr)
	}
	vv := make([]float64, size)
	copy(vv, voxels)
	return Volume{Dims: dims, Voxels: vv}, nil
}

// Size returns the number of voxels.
func (v Volume) Size() int {
	return len(v.Voxels)
}

// At returns the voxel at the given coordinates.
func (v Volume) At(x, y, z int) float64 {
	return v.Voxels[x+v.Dims[0]*(y+v.Dims[1]*z)]
}

// Normalize returns the z-score normalized volume.
// With foregroundOnly the statistics are computed over the non-zero voxels only
// and the background is kept at zero.
func Normalize(v Volume, foregroundOnly bool) (Volume, error) {
	if v.Size() == 0 {
		return Volume{}, fmt.Errorf("no voxels: %w", standard.EmptyInputErr)
	}
	stats := buffer.NewStats()
	for _, x := range v.Voxels {
		if foregroundOnly && x == 0 {
			continue
		}
		stats.Push(x)
	}
	if stats.Count() == 0 {
		return Volume{}, fmt.Errorf("no foreground voxels: %w", standard.EmptyInputErr)
	}
	sd := stats.StDev()
	if sd == 0 {
		return Volume{}, &standard.ZeroVarianceError{Column: 0}
	}
	mean := stats.Avg()
	out := Volume{
		Dims:   v.Dims,
		Voxels: make([]float64, v.Size()),
	}
	for i, x := range v.Voxels {
		if foregroundOnly && x == 0 {
			continue
		}
		out.Voxels[i] = (x - mean) / sd
	}
	return out, nil
}
