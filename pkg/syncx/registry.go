package syncx

import (
	"context"
	"fmt"
	"sort"

	cmap "github.com/orcaman/concurrent-map"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"syncpoint/pkg/logger"
)

// ErrPointType is returned when a name is declared again with another payload
// type or the other scheduling model.
var ErrPointType = errors.New("syncx: point declared with another type")

// Registry maps names to points. The first declaration of a name creates the
// point; every later one returns it. Points are never removed.
type Registry struct {
	points cmap.ConcurrentMap
	registryOption
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := registryOption{
		logger: logger.From(context.Background()),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		points:         cmap.New(),
		registryOption: o,
	}
}

// Default is the process-wide registry used by Named and NamedAsync.
var Default = NewRegistry()

// Declare returns the point called name, creating it with payload def if it
// does not exist yet. def is ignored for existing points.
func Declare[T any](r *Registry, name string, def T) (*Point[T], error) {
	v := r.load(name, func() interface{} {
		backend := NewBackend()
		if r.metrics {
			backend = Instrument(name, backend)
		}
		return NewPoint(backend, def, WithName(name))
	})
	p, ok := v.(*Point[T])
	if !ok {
		return nil, errors.Wrapf(ErrPointType, "%q is %T, not %T", name, v, (*Point[T])(nil))
	}
	return p, nil
}

// DeclareAsync is Declare for cooperative points.
func DeclareAsync[T any](r *Registry, name string, def T) (*AsyncPoint[T], error) {
	v := r.load(name, func() interface{} {
		backend := NewAsyncBackend()
		if r.metrics {
			backend = InstrumentAsync(name, backend)
		}
		return NewAsyncPoint(backend, def, WithName(name))
	})
	p, ok := v.(*AsyncPoint[T])
	if !ok {
		return nil, errors.Wrapf(ErrPointType, "%q is %T, not %T", name, v, (*AsyncPoint[T])(nil))
	}
	return p, nil
}

// Named declares name on the Default registry. It panics if name was declared
// with another payload type.
func Named[T any](name string, def T) *Point[T] {
	p, err := Declare(Default, name, def)
	if err != nil {
		panic(err)
	}
	return p
}

// NamedAsync declares name as a cooperative point on the Default registry. It
// panics if name was declared otherwise.
func NamedAsync[T any](name string, def T) *AsyncPoint[T] {
	p, err := DeclareAsync(Default, name, def)
	if err != nil {
		panic(err)
	}
	return p
}

// Do runs fn under the payload-less point called name.
func (r *Registry) Do(name string, fn func()) error {
	p, err := Declare(r, name, struct{}{})
	if err != nil {
		return err
	}
	p.Do(func(*struct{}) {
		fn()
	})
	return nil
}

// Names returns the declared names in sorted order.
func (r *Registry) Names() []string {
	names := r.points.Keys()
	sort.Strings(names)
	return names
}

// Len returns the number of declared points.
func (r *Registry) Len() int {
	return r.points.Count()
}

func (r *Registry) load(name string, create func() interface{}) interface{} {
	if v, ok := r.points.Get(name); ok {
		return v
	}
	var created bool
	v := r.points.Upsert(name, nil, func(exist bool, valueInMap interface{}, _ interface{}) interface{} {
		if exist {
			return valueInMap
		}
		created = true
		return create()
	})
	if created {
		r.logger.Debug("sync point declared",
			zap.String("name", name),
			zap.String("type", fmt.Sprintf("%T", v)))
	}
	return v
}
