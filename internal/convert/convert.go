// Package convert lowers the raw syntax tree the external parser emits
// into the semantic AST the analysis pipeline consumes. The walk is a
// single-threaded recursive descent: statements drive expressions,
// expressions drive the type-expression evaluator, and function
// conversion consults the argument binder and the overload coalescer.
//
// The pass is maximally resilient. Every malformed construct degrades
// locally (usually to a dynamic type) and reports a blocking diagnostic;
// only an upstream parse failure empties the whole module.
package convert

import (
	"strings"

	"pyfront/internal/ast"
	"pyfront/internal/diag"
	"pyfront/internal/sem"
	"pyfront/internal/source"
)

// Options configures one conversion run.
type Options struct {
	// Reporter receives diagnostics. When nil, blocking diagnostics
	// accumulate internally and Module returns them as a ConvertError
	// after the run completes.
	Reporter diag.Reporter

	// IsStub marks the source as an interface-only (.pyi) file.
	IsStub bool

	// Path is stamped onto the returned module.
	Path string

	// NoImplicitOptional suppresses the heuristic that marks a
	// parameter type nullable when its default is the None literal.
	NoImplicitOptional bool

	// CustomTypingModule is rewritten to "typing" during import
	// conversion; empty disables the rewrite.
	CustomTypingModule string

	// ModuleAliases rewrites legacy or user-aliased module names to
	// canonical ones during import conversion.
	ModuleAliases map[string]string
}

// internalBagCap bounds the fallback accumulator used when the caller
// supplies no reporter.
const internalBagCap = 1024

// ConvertError carries the blocking messages of a run performed without
// a caller-supplied reporter.
type ConvertError struct {
	Messages []string
}

func (e *ConvertError) Error() string {
	if len(e.Messages) == 0 {
		return "conversion failed"
	}
	return strings.Join(e.Messages, "\n")
}

// converter holds the per-run mutable state: the import side channel
// and the class-nesting counter. One instance serves exactly one run.
type converter struct {
	opts    Options
	rep     diag.Reporter
	imports []*sem.Stmt
	nesting int
}

// Module converts one raw module tree. Diagnostics go to
// opts.Reporter when supplied; otherwise any blocking diagnostic makes
// Module return a ConvertError once the full tree has been walked.
func Module(raw *ast.Module, opts Options) (*sem.Module, error) {
	var bag *diag.Bag
	rep := opts.Reporter
	if rep == nil {
		bag = diag.NewBag(internalBagCap)
		rep = diag.BagReporter{Bag: bag}
	}
	c := &converter{opts: opts, rep: rep}

	body := c.coalesceOverloads(c.stmtList(raw.Body))
	ignored := make(map[int]bool, len(raw.TypeIgnores))
	for _, line := range raw.TypeIgnores {
		ignored[line] = true
	}
	mod := &sem.Module{
		Body:         body,
		Imports:      c.imports,
		IsStub:       opts.IsStub,
		IgnoredLines: ignored,
		Path:         opts.Path,
	}
	if bag != nil && bag.HasErrors() {
		return mod, &ConvertError{Messages: bag.ErrorMessages()}
	}
	return mod, nil
}

func (c *converter) fail(code diag.Code, pos source.Pos, msg string) {
	diag.ReportError(c.rep, code, pos, msg).Emit()
}

func (c *converter) note(code diag.Code, pos source.Pos, msg string) {
	diag.ReportNote(c.rep, code, pos, msg).Emit()
}

func (c *converter) inClass() bool { return c.nesting > 0 }
