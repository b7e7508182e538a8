package syncx

import "go.uber.org/zap"

type pointOption struct {
	name string
}

type PointOption func(*pointOption)

// WithName sets the name reported by Name.
func WithName(name string) PointOption {
	return func(o *pointOption) {
		o.name = name
	}
}

type registryOption struct {
	logger  *zap.Logger
	metrics bool
}

type RegistryOption func(*registryOption)

// WithLogger sets the logger used to report point creation.
func WithLogger(l *zap.Logger) RegistryOption {
	return func(o *registryOption) {
		o.logger = l
	}
}

// WithMetrics wraps the backend of every point the registry creates with
// Instrument, labelled by the point name. The collectors are package level:
// registries that declare the same name with metrics on share its series,
// so use distinct names across registries when both are instrumented.
func WithMetrics() RegistryOption {
	return func(o *registryOption) {
		o.metrics = true
	}
}
