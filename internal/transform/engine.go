// Package transform turns extracted merchant statement rows into an aggregated
// fee summary. Every function in the package is pure: the same statement always
// produces the same result, and malformed row content is reported as a
// diagnostic instead of an error.
package transform

import (
	"fmt"

	"statement-transformer/internal/models"
)

// Engine runs the full transformation under a fixed policy. It holds no mutable
// state and may be shared between goroutines.
type Engine struct {
	policy     Policy
	aggregator *Aggregator
	reconciler *Reconciler
	assembler  *Assembler
}

func NewEngine(policy Policy) (*Engine, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		policy:     policy,
		aggregator: NewAggregator(NewKeyBuilder(policy.Tags)),
		reconciler: NewReconciler(policy.ReconciliationTolerance),
		assembler:  NewAssembler(),
	}, nil
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// Result is a statement together with the structured diagnostics behind its
// metadata warnings and errors.
type Result struct {
	Statement   *models.NewMerchantStatement
	Diagnostics []Diagnostic
}

// Run aggregates the statement rows, reconciles them against the header totals
// and assembles the result. It always returns a complete statement.
func (e *Engine) Run(statement models.ExtractedStatement) Result {
	agg := e.aggregator.Aggregate(statement.Rows)

	raised := make([]Diagnostic, 0, len(agg.Diagnostics)+2)
	raised = append(raised, agg.Diagnostics...)
	raised = append(raised, e.reconciler.Validate(agg.TotalValue, agg.TotalCharges, statement.Header)...)

	assembled, diags := e.assembler.Assemble(statement, agg, raised)
	return Result{Statement: assembled, Diagnostics: diags}
}

// Transform is Run without the structured diagnostics.
func (e *Engine) Transform(statement models.ExtractedStatement) *models.NewMerchantStatement {
	return e.Run(statement).Statement
}

var defaultEngine = mustEngine(DefaultPolicy())

func mustEngine(policy Policy) *Engine {
	engine, err := NewEngine(policy)
	if err != nil {
		panic(fmt.Sprintf("transform: %v", err))
	}
	return engine
}

// Transform runs statement through an engine with the default policy.
func Transform(statement models.ExtractedStatement) *models.NewMerchantStatement {
	return defaultEngine.Transform(statement)
}
