package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/drakos74/free-mri/infra/config"
	"github.com/drakos74/free-mri/internal/dataset"
	"github.com/drakos74/free-mri/internal/math"
	"github.com/drakos74/free-mri/internal/math/ml"
	"github.com/drakos74/free-mri/internal/metrics"
	"github.com/drakos74/free-mri/internal/storage"
	"github.com/drakos74/free-mri/internal/storage/file/json"
	"github.com/drakos74/free-mri/internal/validation"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	forest  = "forest"
	knn     = "knn"
	network = "network"
)

// Config defines the cross validation run.
type Config struct {
	Dataset    string            `json:"dataset"`
	Model      string            `json:"model"`
	Port       int               `json:"port"`
	Store      bool              `json:"store"`
	Validation validation.Config `json:"validation"`
	Forest     struct {
		Trees int `json:"trees"`
	} `json:"forest"`
	KNN struct {
		K        int    `json:"k"`
		Distance string `json:"distance"`
	} `json:"knn"`
	Network struct {
		Hidden int `json:"hidden"`
		Epochs int `json:"epochs"`
	} `json:"network"`
	Grids validation.Grids `json:"grids"`
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	cfg := Config{
		Validation: validation.DefaultConfig(),
	}
	config.MustLoad("crossval", &cfg)

	if cfg.Port > 0 {
		srv := metrics.Observer.Serve(cfg.Port)
		defer srv.Shutdown(context.Background())
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Str("dataset", cfg.Dataset).Msg("could not cross validate")
	}

	if cfg.Port > 0 {
		// keep the metrics around until interrupted
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		<-ctx.Done()
	}
}

func run(cfg Config) error {
	factory, err := model(cfg)
	if err != nil {
		return err
	}

	x, y, err := dataset.ReadLabelledFile(cfg.Dataset)
	if err != nil {
		return err
	}

	v := cfg.Validation
	v.Model = cfg.Model
	result, err := validation.CrossValidate(x, y, factory, v)
	if err != nil {
		return err
	}

	fmt.Printf("model = %s , run = %s\n", cfg.Model, result.ID)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"fold", "train", "test"})
	for _, f := range result.Folds {
		table.Append([]string{strconv.Itoa(f.Fold), math.Format(f.Train), math.Format(f.Test)})
	}
	table.SetFooter([]string{"mean", math.Format(result.MeanTrain()), math.Format(result.MeanTest())})
	table.Render()

	result.Report.Render(os.Stdout)

	shard := storage.VoidShard()
	if cfg.Store {
		shard = json.BlobShard("crossval")
	}
	store, err := shard(cfg.Model)
	if err != nil {
		return err
	}
	if err := store.Store(storage.Key{Name: cfg.Model, Label: result.ID}, result); err != nil {
		log.Error().Err(err).Str("run", result.ID).Msg("could not store result")
	}

	combinations := cfg.Grids.Combinations()
	for _, name := range cfg.Grids.Names() {
		fmt.Printf("grid %s : %d combinations\n", name, combinations[name])
	}
	return nil
}

func model(cfg Config) (ml.Factory, error) {
	switch cfg.Model {
	case forest, "":
		return ml.ForestFactory(orDefault(cfg.Forest.Trees, 100)), nil
	case knn:
		distance := cfg.KNN.Distance
		if distance == "" {
			distance = "euclidean"
		}
		return ml.KNNFactory(orDefault(cfg.KNN.K, 5), distance), nil
	case network:
		return ml.NetworkFactory(orDefault(cfg.Network.Hidden, 8), orDefault(cfg.Network.Epochs, 200)), nil
	}
	return nil, fmt.Errorf("unknown model '%s'", cfg.Model)
}

func orDefault(v, d int) int {
	if v <= 0 {
		return d
	}
	return v
}
