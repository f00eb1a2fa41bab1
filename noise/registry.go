// SPDX-License-Identifier: MIT
// Package: terra/noise
//
// registry.go — the named operation table, single-step Execute and the
// multi-step Run pipeline.
//
// Contract:
//   • Register overwrites in place: a re-registered name keeps its position
//     in List. Deregister of an absent name is a no-op.
//   • Execute passes a clone of in; the caller's field is never mutated.
//   • Every Execute is logged with the operation name and outcome.
//
// Concurrency:
//   • The table is guarded by sync.RWMutex; Execute holds the read lock only
//     while resolving the name, so operations run concurrently.

package noise

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/katalvlaran/terra/config"
	"github.com/katalvlaran/terra/field"
)

// Option configures a Registry.
type Option func(*Registry)

// WithWorkers sets the advisory worker count. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("noise: WithWorkers(%d): worker count must be >= 1", n))
	}
	return func(r *Registry) { r.workers = n }
}

// WithConfig reads the worker hint from the NoiseGenerator section once.
func WithConfig(c config.Noise) Option {
	return WithWorkers(c.Workers())
}

// WithLogger sets the execution logger; nil selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// Registry maps operation names to Operations.
type Registry struct {
	mu      sync.RWMutex
	ops     map[string]Operation
	names   []string // registration order
	workers int
	log     *slog.Logger
}

// NewRegistry returns an empty registry with one advisory worker.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{ops: make(map[string]Operation), workers: 1}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

// Register binds name to op, replacing any previous binding.
// Returns ErrInvalidOperation for an empty name or nil op.
func (r *Registry) Register(name string, op Operation) error {
	if name == "" || op == nil {
		return fmt.Errorf("Register(%q): %w", name, ErrInvalidOperation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[name]; !ok {
		r.names = append(r.names, name)
	}
	r.ops[name] = op
	return nil
}

// Deregister removes name if present.
func (r *Registry) Deregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[name]; !ok {
		return
	}
	delete(r.ops, name)
	if i := slices.Index(r.names, name); i >= 0 {
		r.names = slices.Delete(r.names, i, i+1)
	}
}

// List returns the registered names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ops[name]
	return ok
}

// Workers returns the advisory worker count (≥ 1).
func (r *Registry) Workers() int { return r.workers }

// Execute runs the named operation over a clone of in and returns its
// output unchanged.
// Returns ErrUnknownOperation, ErrNilField, or the operation's own error.
func (r *Registry) Execute(name string, in *field.Field, s Settings, p Params) (*field.Field, error) {
	r.mu.RLock()
	op, ok := r.ops[name]
	r.mu.RUnlock()

	if !ok {
		r.log.Error("noise operation failed", "op", name, "err", ErrUnknownOperation)
		return nil, fmt.Errorf("Execute(%q): %w", name, ErrUnknownOperation)
	}
	if in == nil {
		r.log.Error("noise operation failed", "op", name, "err", ErrNilField)
		return nil, fmt.Errorf("Execute(%q): input: %w", name, ErrNilField)
	}

	start := time.Now()
	out, err := op.Apply(in.Clone(), s, p)
	if err == nil && out == nil {
		err = fmt.Errorf("output: %w", ErrNilField)
	}
	if err != nil {
		r.log.Error("noise operation failed", "op", name, "err", err)
		return nil, fmt.Errorf("Execute(%q): %w", name, err)
	}
	r.log.Info("noise operation executed", "op", name,
		"rows", in.Rows(), "cols", in.Cols(), "took", time.Since(start))

	return out, nil
}

// Step is one pipeline stage.
type Step struct {
	Name     string
	Settings Settings
	Params   Params
}

// Result holds the final field and the output of every executed step.
type Result struct {
	Final   *field.Field
	History []*field.Field
}

// Run executes steps in order, feeding each output to the next step.
// With no steps, Final is a clone of in. On error, Result holds the steps
// completed so far.
func (r *Registry) Run(in *field.Field, steps ...Step) (Result, error) {
	if in == nil {
		return Result{}, fmt.Errorf("Run: %w", ErrNilField)
	}
	res := Result{Final: in.Clone(), History: make([]*field.Field, 0, len(steps))}
	for i, st := range steps {
		out, err := r.Execute(st.Name, res.Final, st.Settings, st.Params)
		if err != nil {
			return res, fmt.Errorf("Run: step %d: %w", i, err)
		}
		res.Final = out
		res.History = append(res.History, out)
	}
	return res, nil
}
