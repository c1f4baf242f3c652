// SPDX-License-Identifier: MIT
// Package core: the explicit configuration record and its validation.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: Validate runs before any I/O and surfaces
//     ErrConfiguration for every out-of-range hyperparameter.
//   - One record, many readers: each pipeline stage consumes only the
//     fields it needs; nothing mutates the record after validation.

package core

import (
	"fmt"
	"math/rand"

	"github.com/go-playground/validator/v10"
)

// Model names accepted by Config.Model.
const (
	// ModelBANE selects the binarized engine (±1 codes, ridge + CCD).
	ModelBANE = "bane"
	// ModelFSCNMF selects the continuous engine (four-factor updates).
	ModelFSCNMF = "fscnmf"
)

// Feature layout names accepted by Config.Features.
const (
	// FeaturesSparse selects the JSON node→active-column-index map loader.
	FeaturesSparse = "sparse"
	// FeaturesDense selects the tabular CSV loader.
	FeaturesDense = "dense"
)

// Defaults (single source of truth). These reproduce the reference
// hyperparameters that give a usable embedding without grid search.
const (
	DefaultDimensions          = 48
	DefaultOrder               = 1
	DefaultBinarizationRounds  = 5
	DefaultApproximationRounds = 10
	DefaultIterations          = 500
	DefaultAlpha               = 0.01
	DefaultGamma               = 0.7
	DefaultAlignLink           = 1000.0
	DefaultNormLinkBasis       = 1.0
	DefaultNormLinkEmbedding   = 1.0
	DefaultAlignAttr           = 1000.0
	DefaultNormAttrBasis       = 1.0
	DefaultNormAttrEmbedding   = 1.0
	DefaultLowerControl        = 1e-15
	DefaultSeed                = 42
)

// Config is the hyperparameter record threaded through the pipeline.
//
// Field groups:
//   - I/O locations (EdgePath, FeaturePath, OutputPath) and parser
//     selection (Features).
//   - Shared model geometry: Dimensions (d), Order (k, proximity hops),
//     Gamma (WL mixing weight for the propagator; also the embedding
//     blend weight for the continuous engine).
//   - Binarized engine: BinarizationRounds (inner CCD sweeps per outer
//     round), ApproximationRounds (outer ridge/CCD alternations), Alpha
//     (ridge regularization on the basis).
//   - Continuous engine: Iterations plus the six regularization weights —
//     AlignLink/AlignAttr pull the link-side and attribute-side latent
//     factors toward agreement; the four Norm* weights penalize factor
//     norms.
//   - Numeric policy: LowerControl (clamp floor), Seed (RNG).
type Config struct {
	EdgePath    string `yaml:"edge_path" validate:"required"`
	FeaturePath string `yaml:"feature_path" validate:"required"`
	OutputPath  string `yaml:"output_path" validate:"required"`

	Features string `yaml:"features" validate:"oneof=sparse dense"`
	Model    string `yaml:"model" validate:"oneof=bane fscnmf"`

	Dimensions int `yaml:"dimensions" validate:"gt=0"`
	Order      int `yaml:"order" validate:"gt=0"`

	BinarizationRounds  int     `yaml:"binarization_rounds" validate:"gt=0"`
	ApproximationRounds int     `yaml:"approximation_rounds" validate:"gt=0"`
	Alpha               float64 `yaml:"alpha" validate:"gte=0"`
	Gamma               float64 `yaml:"gamma" validate:"gte=0,lte=1"`

	Iterations        int     `yaml:"iterations" validate:"gt=0"`
	AlignLink         float64 `yaml:"align_link" validate:"gte=0"`
	NormLinkBasis     float64 `yaml:"norm_link_basis" validate:"gte=0"`
	NormLinkEmbedding float64 `yaml:"norm_link_embedding" validate:"gte=0"`
	AlignAttr         float64 `yaml:"align_attr" validate:"gte=0"`
	NormAttrBasis     float64 `yaml:"norm_attr_basis" validate:"gte=0"`
	NormAttrEmbedding float64 `yaml:"norm_attr_embedding" validate:"gte=0"`

	LowerControl float64 `yaml:"lower_control" validate:"gt=0"`
	Seed         int64   `yaml:"seed"`
}

// DefaultConfig returns a Config populated with the documented defaults.
// I/O paths are intentionally empty: the caller must supply them before
// Validate passes.
func DefaultConfig() Config {
	return Config{
		Features:            FeaturesSparse,
		Model:               ModelBANE,
		Dimensions:          DefaultDimensions,
		Order:               DefaultOrder,
		BinarizationRounds:  DefaultBinarizationRounds,
		ApproximationRounds: DefaultApproximationRounds,
		Alpha:               DefaultAlpha,
		Gamma:               DefaultGamma,
		Iterations:          DefaultIterations,
		AlignLink:           DefaultAlignLink,
		NormLinkBasis:       DefaultNormLinkBasis,
		NormLinkEmbedding:   DefaultNormLinkEmbedding,
		AlignAttr:           DefaultAlignAttr,
		NormAttrBasis:       DefaultNormAttrBasis,
		NormAttrEmbedding:   DefaultNormAttrEmbedding,
		LowerControl:        DefaultLowerControl,
		Seed:                DefaultSeed,
	}
}

// validate is the package-level validator instance; struct tags above are
// its single source of rules.
var validate = validator.New()

// Validate checks every hyperparameter range before any file is opened.
// Returns ErrConfiguration (wrapped with the first offending field) on
// violation, nil otherwise.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("config: field %s fails %q: %w", errs[0].Field(), errs[0].Tag(), ErrConfiguration)
		}
		return fmt.Errorf("config: %v: %w", err, ErrConfiguration)
	}

	return nil
}

// NewRand returns the deterministic RNG for this run, derived from
// Config.Seed. All random initialization in the engines draws from it.
func (c *Config) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}
