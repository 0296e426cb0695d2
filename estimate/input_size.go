package estimate

import (
	"fmt"
	"math"

	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/config"
	"github.com/go-sif/sifplan/errors"
)

// InputSizeEstimator assigns one reducer per bytesPerReducer of Stage input
type InputSizeEstimator struct {
	bytesPerReducer int64
}

// CreateInputSizeEstimator is a factory for InputSizeEstimators
func CreateInputSizeEstimator(bytesPerReducer int64) (*InputSizeEstimator, error) {
	if bytesPerReducer <= 0 {
		return nil, errors.ConfigurationError{
			Key:   config.BytesPerReducerKey,
			Cause: fmt.Errorf("must be positive, got %d", bytesPerReducer),
		}
	}
	return &InputSizeEstimator{bytesPerReducer}, nil
}

func inputSizeFactory(conf sifplan.JobConfig) (sifplan.Estimator, error) {
	return CreateInputSizeEstimator(conf.GetInt64(config.BytesPerReducerKey))
}

// Name returns the identifier of this Estimator
func (e *InputSizeEstimator) Name() string {
	return config.InputSizeEstimatorName
}

// Estimate returns ceil(input size / bytes per reducer), or no opinion if the input size is unknown.
// The bytes per reducer configured in conf are used when positive, otherwise those this
// Estimator was created with.
func (e *InputSizeEstimator) Estimate(stage sifplan.Stage, conf sifplan.JobConfig) (int, bool) {
	size, ok := stage.InputSizeBytes()
	if !ok {
		return 0, false
	}
	bytesPerReducer := e.bytesPerReducer
	if conf != nil {
		if configured := conf.GetInt64(config.BytesPerReducerKey); configured > 0 {
			bytesPerReducer = configured
		}
	}
	return ReducersForSize(size, bytesPerReducer), true
}

// ReducersForSize returns ceil(size / bytesPerReducer), floored at 1.
// bytesPerReducer must be positive.
func ReducersForSize(size int64, bytesPerReducer int64) int {
	if size <= 0 {
		return 1
	}
	n := (size-1)/bytesPerReducer + 1
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
