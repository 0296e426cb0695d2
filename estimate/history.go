package estimate

import (
	"fmt"
	"os"

	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/config"
	"github.com/go-sif/sifplan/errors"
	"github.com/tidwall/gjson"
)

// HistoryEstimatorName is the identifier of the HistoryEstimator
const HistoryEstimatorName = "history"

// HistoryEstimator reuses the reducer counts recorded for Stages with the same
// signature in a previous run. The history is a JSON document of the form
//
//	{"stages": {"<signature>": {"reducers": 12}}}
type HistoryEstimator struct {
	history []byte
}

// CreateHistoryEstimator is a factory for HistoryEstimators over a JSON document
func CreateHistoryEstimator(history []byte) (*HistoryEstimator, error) {
	if !gjson.ValidBytes(history) {
		return nil, fmt.Errorf("history is not valid JSON")
	}
	return &HistoryEstimator{history}, nil
}

func historyFactory(conf sifplan.JobConfig) (sifplan.Estimator, error) {
	path := conf.GetString(config.HistoryPathKey)
	if path == "" {
		return nil, errors.ConfigurationError{Key: config.HistoryPathKey, Cause: fmt.Errorf("no history path configured")}
	}
	history, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigurationError{Key: config.HistoryPathKey, Cause: err}
	}
	e, err := CreateHistoryEstimator(history)
	if err != nil {
		return nil, errors.ConfigurationError{Key: config.HistoryPathKey, Cause: err}
	}
	return e, nil
}

// Name returns the identifier of this Estimator
func (e *HistoryEstimator) Name() string {
	return HistoryEstimatorName
}

// Estimate returns the recorded reducer count for the Stage's signature, if a positive one exists
func (e *HistoryEstimator) Estimate(stage sifplan.Stage, conf sifplan.JobConfig) (int, bool) {
	res := gjson.GetBytes(e.history, "stages."+escapePath(stage.Signature())+".reducers")
	if !res.Exists() || res.Type != gjson.Number || res.Int() <= 0 {
		return 0, false
	}
	return int(res.Int()), true
}

// escapePath escapes gjson path syntax within a single path component
func escapePath(component string) string {
	escaped := make([]byte, 0, len(component))
	for i := 0; i < len(component); i++ {
		switch component[i] {
		case '.', '*', '?', '|', '#', '@', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, component[i])
	}
	return string(escaped)
}
