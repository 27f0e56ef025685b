package convert

import (
	"pyfront/internal/sem"
)

// coalesceOverloads merges consecutive same-named function or decorator
// statements into one overload group. A single left-to-right pass over
// an already-converted sequence; no cross-block state. A run is opened
// only by a decorated function, continued by any function or decorator
// statement matching the run's name, and flushed on the first statement
// that breaks it. Singleton runs re-emit their sole element unwrapped.
func (c *converter) coalesceOverloads(stmts []*sem.Stmt) []*sem.Stmt {
	var out []*sem.Stmt
	var run []*sem.Stmt
	runName := ""

	flush := func() {
		switch len(run) {
		case 0:
		case 1:
			out = append(out, run[0])
		default:
			group := &sem.Stmt{
				Kind: sem.StmtOverload,
				Pos:  run[0].Pos,
				Data: sem.OverloadData{Parts: run},
			}
			out = append(out, group)
		}
		run = nil
		runName = ""
	}

	for _, s := range stmts {
		if name, ok := sem.FuncStmtName(s); ok && len(run) > 0 && name == runName {
			run = append(run, s)
			continue
		}
		flush()
		if s.Kind == sem.StmtDecorator {
			name, _ := sem.FuncStmtName(s)
			run = []*sem.Stmt{s}
			runName = name
		} else {
			out = append(out, s)
		}
	}
	flush()
	if out == nil {
		out = []*sem.Stmt{}
	}
	return out
}
