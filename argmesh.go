// Package argmesh provides a high-level façade over the signature adaptation
// and polymorphic dispatch layers. Most applications interact with this
// package by:
//  1. Creating an ArgMesh via New() (optionally supplying a structured logger)
//  2. Wrapping callables into zero-or-one-argument adapters (Wrap)
//  3. Building polymorphic functions that specialize per argument type
//     (Polymorphic)
//
// The façade only threads shared options (currently the logger) through the
// underlying packages; all semantics live in sig, adapter and dispatch. All
// defaults are safe for local development and testing.
package argmesh

import (
	"github.com/hupe1980/argmesh/adapter"
	"github.com/hupe1980/argmesh/dispatch"
	"github.com/hupe1980/argmesh/logging"
	"github.com/hupe1980/argmesh/typesys"
)

// Options configures the ArgMesh instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// ArgMesh is the high-level façade aggregating the adaptation services.
type ArgMesh struct {
	opts Options
}

// New creates a new ArgMesh instance with optional overrides.
func New(optFns ...func(o *Options)) *ArgMesh {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &ArgMesh{opts: opts}
}

// Wrap builds a zero-or-one-argument adapter around the callable for the
// given declared parameter type and unpacking preference.
func (m *ArgMesh) Wrap(callable any, parameterType typesys.Type, pref adapter.Preference) (*adapter.Adapter, error) {
	return adapter.Build(callable, parameterType, pref, func(o *adapter.Options) {
		o.Logger = m.opts.Logger
	})
}

// Polymorphic creates a polymorphic function around the given adapter
// factory, sharing the façade's logger.
func (m *ArgMesh) Polymorphic(factory dispatch.Factory) *dispatch.PolymorphicFunction {
	return dispatch.NewPolymorphicFunction(factory, func(o *dispatch.Options) {
		o.Logger = m.opts.Logger
	})
}

// WrapFactory returns a dispatch.Factory that builds an adapter for each
// argument type it is asked to specialize on, using the given preference.
// It is the common glue between Wrap and Polymorphic: the polymorphic
// function infers the packed argument tuple's type and the factory adapts
// the callable to exactly that type.
func (m *ArgMesh) WrapFactory(callable any, pref adapter.Preference) dispatch.Factory {
	return func(argType typesys.Type) (*adapter.Adapter, error) {
		return m.Wrap(callable, argType, pref)
	}
}
