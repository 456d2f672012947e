package volume

// Label names a tumour region derived from the segmentation.
type Label string

const (
	// Full is the whole tumour, every labelled voxel.
	Full Label = "label_full"
	// Necrosis is the necrotic and non-enhancing tumour core.
	Necrosis Label = "label_nec"
	// Core is the tumour core, necrosis and enhancing tumour.
	Core Label = "label_core"
	// Enhancing is the enhancing tumour.
	Enhancing Label = "label_et"
)

// Labels lists the derived regions.
var Labels = []Label{Full, Necrosis, Core, Enhancing}

// segmentation classes
const (
	necrotic  = 1
	edema     = 2
	enhancing = 4
)

var regions = map[Label]func(class int) bool{
	Full: func(class int) bool {
		return class > 0
	},
	Necrosis: func(class int) bool {
		return class == necrotic
	},
	Core: func(class int) bool {
		return class == necrotic || class == enhancing
	},
	Enhancing: func(class int) bool {
		return class == enhancing
	},
}

// Masks derives the binary region masks from a segmentation volume.
func Masks(seg Volume) map[Label]Volume {
	masks := make(map[Label]Volume, len(regions))
	for label, in := range regions {
		m := Volume{
			Dims:   seg.Dims,
			Voxels: make([]float64, seg.Size()),
		}
		for i, x := range seg.Voxels {
			if in(int(x)) {
				m.Voxels[i] = 1
			}
		}
		masks[label] = m
	}
	return masks
}
