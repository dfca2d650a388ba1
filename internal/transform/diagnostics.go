package transform

import (
	"fmt"
)

// Kind classifies a diagnostic raised while transforming a statement.
type Kind string

const (
	KindRateParse       Kind = "RATE_PARSE"
	KindMoneyParse      Kind = "MONEY_PARSE"
	KindReconciliation  Kind = "RECONCILIATION"
	KindDegenerateInput Kind = "DEGENERATE_INPUT"
	KindInvalidTag      Kind = "INVALID_TAG"
	KindInvalidRow      Kind = "INVALID_ROW"
)

// Severity decides whether a diagnostic is reported under warnings or errors.
// Neither severity stops the transformation.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (k Kind) Severity() Severity {
	switch k {
	case KindInvalidTag, KindInvalidRow:
		return SeverityError
	default:
		return SeverityWarning
	}
}

// Diagnostic is a structured anomaly. Row is the 1-based input row number, or 0
// for statement-level diagnostics.
type Diagnostic struct {
	Kind    Kind
	Row     int
	Field   string
	Raw     string
	Message string
}

func (d Diagnostic) String() string {
	if d.Row > 0 {
		return fmt.Sprintf("%s: row %d %s: %s", d.Kind, d.Row, d.Field, d.Message)
	}
	if d.Field != "" {
		return fmt.Sprintf("%s: %s: %s", d.Kind, d.Field, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Diagnostics collects diagnostics in encounter order. Each transformation owns its own collector.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) Add(diags ...Diagnostic) {
	d.items = append(d.items, diags...)
}

// All returns a copy of every collected diagnostic.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, len(d.items))
	copy(out, d.items)
	return out
}

// Count returns the number of diagnostics of the given kind.
func (d *Diagnostics) Count(kind Kind) int {
	n := 0
	for _, item := range d.items {
		if item.Kind == kind {
			n++
		}
	}
	return n
}

func (d *Diagnostics) Warnings() []string {
	return d.render(SeverityWarning)
}

func (d *Diagnostics) Errors() []string {
	return d.render(SeverityError)
}

func (d *Diagnostics) render(severity Severity) []string {
	out := []string{}
	for _, item := range d.items {
		if item.Kind.Severity() == severity {
			out = append(out, item.String())
		}
	}
	return out
}
