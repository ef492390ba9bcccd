package dispatch

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hupe1980/argmesh/adapter"
	"github.com/hupe1980/argmesh/logging"
	"github.com/hupe1980/argmesh/tuple"
	"github.com/hupe1980/argmesh/typesys"
)

// Factory instantiates a concrete adapter for a non-nil argument type. It is
// invoked at most once per distinct type for the lifetime of a
// PolymorphicFunction.
type Factory func(argType typesys.Type) (*adapter.Adapter, error)

// Options configures a PolymorphicFunction.
type Options struct {
	// Logger receives debug lines for cache misses and hits. Defaults to
	// NoOp.
	Logger logging.Logger
}

// PolymorphicFunction dispatches invocations to per-argument-type adapters,
// building them on demand through a factory and caching them for the
// instance's lifetime. It is safe for concurrent use; entries are added,
// never evicted.
type PolymorphicFunction struct {
	id      string
	factory Factory
	logger  logging.Logger

	mu    sync.RWMutex
	cache map[string]*adapter.Adapter
}

// NewPolymorphicFunction creates a polymorphic function around the given
// adapter factory.
func NewPolymorphicFunction(factory Factory, optFns ...func(o *Options)) *PolymorphicFunction {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if factory == nil {
		panic("dispatch: nil factory")
	}
	return &PolymorphicFunction{
		id:      uuid.NewString(),
		factory: factory,
		logger:  opts.Logger,
		cache:   make(map[string]*adapter.Adapter),
	}
}

// ID returns the instance's unique identifier.
func (p *PolymorphicFunction) ID() string { return p.id }

// Specializations returns the number of cached adapters.
func (p *PolymorphicFunction) Specializations() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}

// Invoke calls the function with concrete arguments. The arguments are
// packed into a tuple whose inferred type selects the specialization; the
// packed tuple itself is then forwarded to the resolved adapter (adapters
// that take no argument are invoked bare). The cache lookup only decides
// which adapter runs, never how it is called.
func (p *PolymorphicFunction) Invoke(pos []any, kw map[string]any) (any, error) {
	packed := tuple.Pack(pos, kw)
	argType := typesys.Infer(packed)
	key := typesys.CanonicalKey(argType)

	ad, err := p.specialization(key, argType)
	if err != nil {
		return nil, err
	}
	if !ad.TakesArgument() {
		return ad.Invoke(nil)
	}
	return ad.Invoke(packed)
}

// specialization resolves the adapter for key, building it under the write
// lock on a miss. The double check keeps concurrent misses for the same type
// down to a single build; factory failures are propagated without storing.
func (p *PolymorphicFunction) specialization(key string, argType typesys.Type) (*adapter.Adapter, error) {
	p.mu.RLock()
	ad, ok := p.cache[key]
	p.mu.RUnlock()
	if ok {
		p.logger.Debug("specialization hit", "function_id", p.id, "key", key)
		return ad, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if ad, ok = p.cache[key]; ok {
		return ad, nil
	}
	p.logger.Debug("specialization miss", "function_id", p.id, "key", key, "arg_type", argType.String())
	ad, err := p.factory(argType)
	if err != nil {
		return nil, err
	}
	p.cache[key] = ad
	return ad, nil
}
