// Package rangeio evaluates batches of range operations read from CSV and
// writes the results back as CSV.
package rangeio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/arcs/angle"
)

// ErrUnknownOp is returned for an operation name the evaluator does not know.
var ErrUnknownOp = errors.New("rangeio: unknown operation")

// Operation names accepted in the op column.
const (
	OpLength        = "length"
	OpContains      = "contains"
	OpContainsRange = "contains_range"
	OpUnion         = "union"
	OpDifference    = "difference"
	OpEqual         = "equal"
)

// Operation is one input row. A and B hold ranges in the "[s - e)" form and
// Point holds an angle in radians or with a deg suffix.
type Operation struct {
	ID    string `csv:"id"`
	Op    string `csv:"op"`
	A     string `csv:"a"`
	B     string `csv:"b"`
	Point string `csv:"point"`
}

// Result is one output row. Output holds a number, a boolean or a
// "; "-separated list of ranges depending on the operation.
type Result struct {
	ID     string `csv:"id"`
	Op     string `csv:"op"`
	Output string `csv:"output"`
	Count  int    `csv:"count"`
	Error  string `csv:"error"`
}

// ReadOperations reads all operation rows from r. The header row selects
// columns by name, so column order is free and unused columns may be omitted.
func ReadOperations(r io.Reader) ([]Operation, error) {
	var ops []Operation
	if err := gocsv.Unmarshal(r, &ops); err != nil {
		return nil, fmt.Errorf("reading operations: %w", err)
	}
	return ops, nil
}

// Evaluator applies operations using a comparison tolerance and an output
// precision.
type Evaluator struct {
	Tolerance float64
	Precision int
}

// Evaluate runs a single operation. Failures are reported in Result.Error
// and the returned error.
func (e Evaluator) Evaluate(op Operation) (Result, error) {
	res := Result{ID: op.ID, Op: op.Op}
	out, count, err := e.eval(op)
	if err != nil {
		res.Error = err.Error()
		return res, err
	}
	res.Output, res.Count = out, count
	return res, nil
}

func (e Evaluator) eval(op Operation) (string, int, error) {
	name := strings.ToLower(strings.TrimSpace(op.Op))
	switch name {
	case OpLength, OpContains, OpContainsRange, OpUnion, OpDifference, OpEqual:
	default:
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}

	a, err := angle.ParseRange(op.A)
	if err != nil {
		return "", 0, fmt.Errorf("column a: %w", err)
	}

	switch name {
	case OpLength:
		return strconv.FormatFloat(a.Length(), 'f', e.Precision, 64), 1, nil
	case OpContains:
		p, err := angle.ParseAngle(op.Point)
		if err != nil {
			return "", 0, fmt.Errorf("column point: %w", err)
		}
		return strconv.FormatBool(a.Contains(p)), 1, nil
	}

	b, err := angle.ParseRange(op.B)
	if err != nil {
		return "", 0, fmt.Errorf("column b: %w", err)
	}

	switch name {
	case OpContainsRange:
		return strconv.FormatBool(a.ContainsRange(b)), 1, nil
	case OpEqual:
		return strconv.FormatBool(a.EqualWithin(b, e.Tolerance)), 1, nil
	case OpUnion:
		rs := a.Union(b)
		return e.formatRanges(rs), len(rs), nil
	default:
		rs := a.Difference(b)
		return e.formatRanges(rs), len(rs), nil
	}
}

func (e Evaluator) formatRanges(rs []angle.Range) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.Render(e.Precision)
	}
	return strings.Join(parts, "; ")
}

// Summary counts the rows processed by Run.
type Summary struct {
	Total  int
	Failed int
}

// Run evaluates every operation and writes one result row per operation.
// Evaluation failures are recorded in the rows and counted; only write
// failures abort the run.
func Run(ops []Operation, ev Evaluator, w *Writer) (Summary, error) {
	var sum Summary
	if err := w.WriteHeader(); err != nil {
		return sum, err
	}
	for _, op := range ops {
		res, err := ev.Evaluate(op)
		sum.Total++
		if err != nil {
			sum.Failed++
			slog.Warn("operation failed", "id", op.ID, "op", op.Op, "error", err)
		} else {
			slog.Debug("operation evaluated", "id", op.ID, "op", op.Op, "output", res.Output)
		}
		if err := w.WriteResult(res); err != nil {
			return sum, err
		}
	}
	return sum, nil
}
