// Command anembed is the single-shot batch CLI: it loads an edge list
// and a feature file, fuses them into a WL proximity matrix, runs the
// selected factorization engine, and writes the embedding CSV.
//
// Exit code 0 on success; 1 on malformed input, invalid configuration,
// or a fatal non-finite state during optimization. The failing stage is
// named in the log output.
//
// Usage:
//
//	anembed -edge-path input/edges.csv -feature-path input/features.json \
//	        -output-path output/embedding.csv -features sparse -model bane
//
// Flags override values from an optional -config YAML file, which in
// turn overrides the built-in defaults.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/anembed/bane"
	"github.com/katalvlaran/anembed/core"
	"github.com/katalvlaran/anembed/dataset"
	"github.com/katalvlaran/anembed/fscnmf"
	"github.com/katalvlaran/anembed/proximity"
	"gonum.org/v1/gonum/mat"
)

func main() {
	stdr.SetVerbosity(1)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		logger.Error(err, "configuration rejected", "stage", "config")
		os.Exit(1)
	}

	if err := run(logger, cfg); err != nil {
		os.Exit(1)
	}
}

// parseConfig resolves the effective Config: built-in defaults, then the
// optional YAML file, then explicitly set flags — and validates the
// result before any data file is touched.
func parseConfig(args []string) (*core.Config, error) {
	cfg := core.DefaultConfig()

	fs := flag.NewFlagSet("anembed", flag.ContinueOnError)
	configPath := fs.String("config", "", "Optional YAML file with the same keys as the flags.")

	edgePath := fs.String("edge-path", "", "Edge list CSV.")
	featurePath := fs.String("feature-path", "", "Node feature file (JSON or CSV).")
	outputPath := fs.String("output-path", "", "Target embedding CSV.")
	features := fs.String("features", cfg.Features, "Feature matrix layout: sparse or dense.")
	model := fs.String("model", cfg.Model, "Factorization engine: bane or fscnmf.")
	dimensions := fs.Int("dimensions", cfg.Dimensions, "Embedding dimensionality d.")
	order := fs.Int("order", cfg.Order, "Proximity hop count k.")
	binarizationRounds := fs.Int("binarization-rounds", cfg.BinarizationRounds, "CCD sweeps per approximation round (bane).")
	approximationRounds := fs.Int("approximation-rounds", cfg.ApproximationRounds, "Outer ridge/CCD alternations (bane).")
	iterations := fs.Int("iterations", cfg.Iterations, "Alternating update rounds (fscnmf).")
	alpha := fs.Float64("alpha", cfg.Alpha, "Ridge regularization weight (bane).")
	gamma := fs.Float64("gamma", cfg.Gamma, "WL mixing weight; embedding blend weight for fscnmf.")
	alignLink := fs.Float64("align-link", cfg.AlignLink, "Alignment pull on the link embedding (fscnmf).")
	normLinkEmbedding := fs.Float64("norm-link-embedding", cfg.NormLinkEmbedding, "Norm penalty on the link embedding (fscnmf).")
	normLinkBasis := fs.Float64("norm-link-basis", cfg.NormLinkBasis, "Norm penalty on the link basis (fscnmf).")
	alignAttr := fs.Float64("align-attr", cfg.AlignAttr, "Alignment pull on the attribute embedding (fscnmf).")
	normAttrEmbedding := fs.Float64("norm-attr-embedding", cfg.NormAttrEmbedding, "Norm penalty on the attribute embedding (fscnmf).")
	normAttrBasis := fs.Float64("norm-attr-basis", cfg.NormAttrBasis, "Norm penalty on the attribute basis (fscnmf).")
	lowerControl := fs.Float64("lower-control", cfg.LowerControl, "Numeric clamp floor.")
	seed := fs.Int64("seed", cfg.Seed, "RNG seed for reproducible initialization.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", *configPath, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s (%v): %w", *configPath, err, core.ErrConfiguration)
		}
	}

	// Explicitly set flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "edge-path":
			cfg.EdgePath = *edgePath
		case "feature-path":
			cfg.FeaturePath = *featurePath
		case "output-path":
			cfg.OutputPath = *outputPath
		case "features":
			cfg.Features = *features
		case "model":
			cfg.Model = *model
		case "dimensions":
			cfg.Dimensions = *dimensions
		case "order":
			cfg.Order = *order
		case "binarization-rounds":
			cfg.BinarizationRounds = *binarizationRounds
		case "approximation-rounds":
			cfg.ApproximationRounds = *approximationRounds
		case "iterations":
			cfg.Iterations = *iterations
		case "alpha":
			cfg.Alpha = *alpha
		case "gamma":
			cfg.Gamma = *gamma
		case "align-link":
			cfg.AlignLink = *alignLink
		case "norm-link-embedding":
			cfg.NormLinkEmbedding = *normLinkEmbedding
		case "norm-link-basis":
			cfg.NormLinkBasis = *normLinkBasis
		case "align-attr":
			cfg.AlignAttr = *alignAttr
		case "norm-attr-embedding":
			cfg.NormAttrEmbedding = *normAttrEmbedding
		case "norm-attr-basis":
			cfg.NormAttrBasis = *normAttrBasis
		case "lower-control":
			cfg.LowerControl = *lowerControl
		case "seed":
			cfg.Seed = *seed
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// run executes the pipeline: load → reconcile → proximity → engine →
// export. Each failure is logged with its stage name.
func run(logger logr.Logger, cfg *core.Config) error {
	logger.Info("starting embedding run",
		"model", cfg.Model, "features", cfg.Features,
		"dimensions", cfg.Dimensions, "order", cfg.Order,
		"binarization_rounds", cfg.BinarizationRounds,
		"approximation_rounds", cfg.ApproximationRounds,
		"iterations", cfg.Iterations,
		"alpha", cfg.Alpha, "gamma", cfg.Gamma,
		"lower_control", cfg.LowerControl, "seed", cfg.Seed,
	)

	g, err := dataset.LoadEdgeList(cfg.EdgePath)
	if err != nil {
		logger.Error(err, "edge list rejected", "stage", "loading")
		return err
	}
	x, err := dataset.LoadFeatures(cfg.FeaturePath, cfg.Features)
	if err != nil {
		logger.Error(err, "feature file rejected", "stage", "loading")
		return err
	}
	g, x, err = dataset.Reconcile(g, x)
	if err != nil {
		logger.Error(err, "inputs disagree on node count", "stage", "loading")
		return err
	}
	_, f := x.Dims()
	logger.Info("inputs loaded", "nodes", g.NumNodes(), "features", f)

	emb, err := embed(logger, g, x, cfg)
	if err != nil {
		return err
	}

	if err = dataset.WriteEmbedding(cfg.OutputPath, emb); err != nil {
		logger.Error(err, "embedding not written", "stage", "export")
		return err
	}
	logger.Info("embedding saved", "path", cfg.OutputPath)

	return nil
}

// embed dispatches to the configured engine.
func embed(logger logr.Logger, g *dataset.Graph, x *mat.Dense, cfg *core.Config) (*mat.Dense, error) {
	switch cfg.Model {
	case core.ModelBANE:
		p, err := proximity.Build(g, x, cfg)
		if err != nil {
			logger.Error(err, "proximity construction failed", "stage", "proximity")
			return nil, err
		}
		emb, err := bane.Embed(p, cfg)
		if err != nil {
			logger.Error(err, "binarized optimization failed", "stage", "factorization")
			return nil, err
		}
		return emb, nil

	case core.ModelFSCNMF:
		s, err := proximity.Target(g, cfg)
		if err != nil {
			logger.Error(err, "proximity construction failed", "stage", "proximity")
			return nil, err
		}
		emb, err := fscnmf.Embed(s, x, cfg)
		if err != nil {
			logger.Error(err, "continuous optimization failed", "stage", "factorization")
			return nil, err
		}
		return emb, nil

	default:
		err := fmt.Errorf("unknown model %q: %w", cfg.Model, core.ErrConfiguration)
		logger.Error(err, "engine selection failed", "stage", "config")
		return nil, err
	}
}
