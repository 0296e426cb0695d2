package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/sifplan/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// EstimatorNamesKey lists the identifiers of the Estimators to consult, in evaluation order
	EstimatorNamesKey = "sifplan.reducer.estimator.names"
	// BytesPerReducerKey is the volume of input data assigned to each reducer by size-based estimation
	BytesPerReducerKey = "sifplan.reducer.estimator.bytes_per_reducer"
	// MaxEstimatedReducersKey caps the reducer count produced by any Estimator
	MaxEstimatedReducersKey = "sifplan.reducer.estimator.max_reducers"
	// HistoryPathKey is the path of the JSON document read by the history Estimator
	HistoryPathKey = "sifplan.reducer.estimator.history.path"
	// DefaultReducersKey is the reducer count used when no Estimator has an opinion
	DefaultReducersKey = "sifplan.reducer.default"
	// LogLevelKey is the minimum level of planner log messages, e.g. "DEBUG" or "WARN"
	LogLevelKey = "sifplan.log.level"

	// EnvPrefix prefixes environment variables overriding configuration, e.g.
	// SIFPLAN_SIFPLAN_REDUCER_DEFAULT
	EnvPrefix = "sifplan"
)

const (
	// DefaultBytesPerReducer assigns 4GiB of input to each reducer
	DefaultBytesPerReducer int64 = 1 << 32
	// DefaultMaxEstimatedReducers caps estimated reducer counts
	DefaultMaxEstimatedReducers = 5000
	// DefaultReducers is the fallback reducer count
	DefaultReducers = 1
	// InputSizeEstimatorName is the identifier of the default size-based Estimator
	InputSizeEstimatorName = "input-size"
)

// Create is a factory for job configurations holding default values,
// which may be overridden by environment variables
func Create() *viper.Viper {
	v := viper.New()
	v.SetDefault(EstimatorNamesKey, []string{InputSizeEstimatorName})
	v.SetDefault(BytesPerReducerKey, DefaultBytesPerReducer)
	v.SetDefault(MaxEstimatedReducersKey, DefaultMaxEstimatedReducers)
	v.SetDefault(DefaultReducersKey, DefaultReducers)
	v.SetDefault(LogLevelKey, logging.LogLevelToString(logging.InfoLevel))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads a job configuration file (YAML, JSON or TOML, by extension) on top of the defaults
func Load(path string) (*viper.Viper, error) {
	v := Create()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read job configuration %s: %w", path, err)
	}
	return v, nil
}

// CreateLogger produces a logger writing to w at the level configured in v
func CreateLogger(v *viper.Viper, w io.Writer) zerolog.Logger {
	return logging.CreateLogger(logging.ParseLevel(v.GetString(LogLevelKey)), w)
}

// FromMap produces a job configuration from explicit values on top of the defaults
func FromMap(values map[string]interface{}) *viper.Viper {
	v := Create()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

// AppendEstimators appends Estimator identifiers to the end of the configured chain.
// Identifiers appended first are consulted first.
func AppendEstimators(v *viper.Viper, names ...string) {
	current := v.GetStringSlice(EstimatorNamesKey)
	v.Set(EstimatorNamesKey, append(append([]string{}, current...), names...))
}

// ReplaceEstimators replaces the configured chain
func ReplaceEstimators(v *viper.Viper, names ...string) {
	v.Set(EstimatorNamesKey, append([]string{}, names...))
}
