// Package expression executes migration expressions: units of one
// schema change that render SQL, own nested sub-units, and run exactly
// once in a strict depth-first order tracked by a shared step index.
package expression

import (
	"context"
	"fmt"
	"strings"

	"github.com/satishbabariya/migrator/batch"
	"github.com/satishbabariya/migrator/dialect"
	"github.com/satishbabariya/migrator/engine"
)

// Source renders an expression's SQL payload. Implementations are
// typically engine-specific and may consult the run's dialect before
// Execute is called.
type Source interface {
	SQL() (string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (string, error)

func (f SourceFunc) SQL() (string, error) { return f() }

type rawSource string

func (r rawSource) SQL() (string, error) { return string(r), nil }

// Expression is one executable unit within a migration. It holds the
// engines it applies to, an optional human label, an ordered list of
// child expressions, and a payload source. Each instance executes at
// most once; re-running a migration means building a fresh tree.
type Expression struct {
	engines  []engine.Descriptor
	label    string
	source   Source
	executed bool
	children []*Expression
}

// Option configures an Expression.
type Option func(*Expression)

// WithEngines restricts the expression to the given engines. Declaring
// a generic family descriptor covers all of its version variants.
func WithEngines(engines ...engine.Descriptor) Option {
	return func(e *Expression) { e.engines = engines }
}

// WithLabel attaches a human-readable label used in audit output.
func WithLabel(label string) Option {
	return func(e *Expression) { e.label = label }
}

// New creates an expression around a payload source. A nil source falls
// back to the expression's own textual representation, so subtypes only
// need to supply the one rendering hook.
func New(source Source, opts ...Option) *Expression {
	e := &Expression{source: source}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Raw creates an expression whose payload is a literal SQL string.
func Raw(sql string, opts ...Option) *Expression {
	return New(rawSource(sql), opts...)
}

// Statements creates an expression from a list of discrete statements.
// When the target engine requires per-statement isolation the payload
// separates them with the batch-separator token; the emission policy
// follows the current engine, not the batcher.
func Statements(d dialect.Dialect, stmts []string, opts ...Option) *Expression {
	w := batch.NewWriter(d.BatchSeparatorRequired())
	for _, s := range stmts {
		w.WriteStatement(s)
	}
	return Raw(w.String(), opts...)
}

// Add appends child expressions. Children execute depth-first in
// insertion order after the parent's own statements.
func (e *Expression) Add(children ...*Expression) {
	e.children = append(e.children, children...)
}

// Children returns the ordered child list.
func (e *Expression) Children() []*Expression { return e.children }

// Engines returns the declared engine list; empty means every engine.
func (e *Expression) Engines() []engine.Descriptor { return e.engines }

// Label returns the expression's label.
func (e *Expression) Label() string { return e.label }

func (e *Expression) String() string {
	if e.label != "" {
		return e.label
	}
	return "migration expression"
}

// Supported reports whether the expression applies to the current
// engine. It is advisory: callers skip unsupported expressions rather
// than executing them, and Execute itself performs no engine check.
func (e *Expression) Supported(current engine.Descriptor) bool {
	return engine.IsSupported(e.engines, current)
}

// Executed reports whether Execute has already been called.
func (e *Expression) Executed() bool { return e.executed }

func (e *Expression) sql() (string, error) {
	if e.source == nil {
		return e.String(), nil
	}
	return e.source.SQL()
}

func (e *Expression) logSource() string {
	if e.label != "" {
		return e.label
	}
	return "migration"
}

// Execute renders the payload, submits each batch-separated statement
// in order, then executes the children depth-first. Every statement of
// one payload is logged under the same step index, and the index
// advances exactly once per Execute call. An empty payload is a
// legitimate no-op that still consumes an index. Any statement failure
// aborts the rest of the tree and propagates; there is no retry and no
// rollback at this layer.
func (e *Expression) Execute(ctx context.Context, run *Context) error {
	if e.executed {
		return fmt.Errorf("%s: %w", e, ErrAlreadyExecuted)
	}
	// Set before side effects so a mid-execution failure can never
	// allow a second attempt.
	e.executed = true

	sqlText, err := e.sql()
	if err != nil {
		return fmt.Errorf("failed to render SQL for %s: %w", e, err)
	}

	if strings.TrimSpace(sqlText) == "" {
		run.Log.Info(e.logSource(), fmt.Sprintf("SQL [%d]: <empty>", run.StepIndex))
		run.StepIndex++
		return nil
	}

	for _, stmt := range batch.Split(sqlText) {
		run.Log.Info(e.logSource(), fmt.Sprintf("SQL [%d]: %s", run.StepIndex, stmt))
		if err := run.DB.Execute(ctx, stmt); err != nil {
			return &StatementError{Step: run.StepIndex, Statement: stmt, Err: err}
		}
	}
	run.StepIndex++

	for _, child := range e.children {
		if err := child.Execute(ctx, run); err != nil {
			return err
		}
	}
	return nil
}
