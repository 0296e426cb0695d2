package estimate

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/config"
	"github.com/go-sif/sifplan/errors"
	"github.com/hashicorp/go-multierror"
)

// Factory constructs an Estimator from the job configuration
type Factory func(conf sifplan.JobConfig) (sifplan.Estimator, error)

// Registry maps estimator identifiers to Factories
type Registry struct {
	lock      sync.RWMutex
	factories map[string]Factory
}

// CreateRegistry is a factory for Registries, pre-populated with the built-in
// input-size and history Estimators
func CreateRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(config.InputSizeEstimatorName, inputSizeFactory)
	r.Register(HistoryEstimatorName, historyFactory)
	return r
}

// Register adds a Factory under name, replacing any existing registration
func (r *Registry) Register(name string, factory Factory) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.factories[name] = factory
}

// Names returns the sorted identifiers of all registered Factories
func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(name string) (Factory, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Build resolves the Estimators configured in conf, in order, into a Chain. Every
// unresolvable identifier and failing Factory is reported in a single ConfigurationError.
func (r *Registry) Build(conf sifplan.JobConfig) (*Chain, error) {
	if err := positive(conf, config.BytesPerReducerKey); err != nil {
		return nil, err
	}
	if err := positive(conf, config.MaxEstimatedReducersKey); err != nil {
		return nil, err
	}
	if err := positive(conf, config.DefaultReducersKey); err != nil {
		return nil, err
	}

	var multierr *multierror.Error
	estimators := []sifplan.Estimator{}
	for _, name := range conf.GetStringSlice(config.EstimatorNamesKey) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		factory, ok := r.lookup(name)
		if !ok {
			multierr = multierror.Append(multierr, errors.UnknownEstimatorError{Name: name})
			continue
		}
		estimator, err := factory(conf)
		if err != nil {
			multierr = multierror.Append(multierr, fmt.Errorf("estimator %s: %w", name, err))
			continue
		}
		estimators = append(estimators, estimator)
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, errors.ConfigurationError{Key: config.EstimatorNamesKey, Cause: err}
	}

	return &Chain{
		estimators:      estimators,
		conf:            conf,
		defaultReducers: conf.GetInt(config.DefaultReducersKey),
		maxReducers:     conf.GetInt(config.MaxEstimatedReducersKey),
	}, nil
}

func positive(conf sifplan.JobConfig, key string) error {
	if v := conf.GetInt64(key); v <= 0 {
		return errors.ConfigurationError{Key: key, Cause: fmt.Errorf("must be positive, got %d", v)}
	}
	return nil
}
