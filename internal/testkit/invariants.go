// Package testkit holds structural checks tests run over converted
// modules.
package testkit

import (
	"fmt"

	"pyfront/internal/sem"
	"pyfront/internal/types"
)

// CheckModuleInvariants runs a minimal set of structural invariants on
// a converted module:
// 1) every statement carries a Data payload matching its Kind
// 2) overload groups hold at least two same-named parts
// 3) decorator wrappers hold a function statement and at least one
//    decorator expression
// 4) function parameters keep their binder ordering and carry vars
func CheckModuleInvariants(mod *sem.Module) error {
	if mod == nil {
		return fmt.Errorf("nil module")
	}
	return checkBlock(mod.Body)
}

func checkBlock(body []*sem.Stmt) error {
	for _, s := range body {
		if err := checkStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func checkStmt(s *sem.Stmt) error {
	if s == nil {
		return fmt.Errorf("nil statement")
	}
	if s.Data == nil {
		return fmt.Errorf("%s statement without payload at %v", s.Kind, s.Pos)
	}

	switch s.Kind {
	case sem.StmtOverload:
		data, ok := s.Data.(sem.OverloadData)
		if !ok {
			return fmt.Errorf("overload statement with %T payload", s.Data)
		}
		if len(data.Parts) < 2 {
			return fmt.Errorf("overload group of %d parts at %v", len(data.Parts), s.Pos)
		}
		name := ""
		for i, part := range data.Parts {
			partName, ok := sem.FuncStmtName(part)
			if !ok {
				return fmt.Errorf("overload part %d is %s, not a function", i, part.Kind)
			}
			if i == 0 {
				name = partName
			} else if partName != name {
				return fmt.Errorf("overload mixes %q and %q", name, partName)
			}
			if err := checkStmt(part); err != nil {
				return err
			}
		}

	case sem.StmtDecorator:
		data, ok := s.Data.(*sem.DecoratorData)
		if !ok {
			return fmt.Errorf("decorator statement with %T payload", s.Data)
		}
		if data.Func == nil || data.Func.Kind != sem.StmtFunc {
			return fmt.Errorf("decorator wrapper without function at %v", s.Pos)
		}
		if len(data.Decorators) == 0 {
			return fmt.Errorf("decorator wrapper without decorators at %v", s.Pos)
		}
		if data.Var == nil || data.Var.IsReady {
			return fmt.Errorf("decorated value var must exist and be unready at %v", s.Pos)
		}
		return checkStmt(data.Func)

	case sem.StmtFunc:
		data, ok := s.Data.(*sem.FuncData)
		if !ok {
			return fmt.Errorf("function statement with %T payload", s.Data)
		}
		if err := checkArguments(data); err != nil {
			return err
		}
		if data.Body == nil {
			return fmt.Errorf("function %q without body", data.Name)
		}
		if data.Type != nil && len(data.Type.ArgTypes) != len(data.Args) {
			return fmt.Errorf("function %q has %d arg types for %d parameters",
				data.Name, len(data.Type.ArgTypes), len(data.Args))
		}
		return checkBlock(data.Body.Body)

	case sem.StmtClass:
		data, ok := s.Data.(*sem.ClassData)
		if !ok {
			return fmt.Errorf("class statement with %T payload", s.Data)
		}
		if data.Body == nil {
			return fmt.Errorf("class %q without body", data.Name)
		}
		return checkBlock(data.Body.Body)

	case sem.StmtIf:
		data, ok := s.Data.(sem.IfData)
		if !ok {
			return fmt.Errorf("if statement with %T payload", s.Data)
		}
		if len(data.Conds) == 0 || len(data.Conds) != len(data.Bodies) {
			return fmt.Errorf("if statement with %d conditions and %d bodies at %v",
				len(data.Conds), len(data.Bodies), s.Pos)
		}
		for _, b := range data.Bodies {
			if b == nil {
				continue
			}
			if err := checkBlock(b.Body); err != nil {
				return err
			}
		}
		if data.Else != nil {
			return checkBlock(data.Else.Body)
		}
	}
	return nil
}

func checkArguments(fn *sem.FuncData) error {
	prev := -1
	for i, arg := range fn.Args {
		if arg == nil || arg.Var == nil {
			return fmt.Errorf("function %q parameter %d without var", fn.Name, i)
		}
		stage := kindStage(arg.Kind)
		if stage < prev {
			return fmt.Errorf("function %q parameter %q out of order", fn.Name, arg.Var.Name)
		}
		prev = stage
	}
	return nil
}

// kindStage maps parameter kinds to the declared ordering
// Pos* Opt* Star? (Named|NamedOpt)* Star2?.
func kindStage(k types.ArgKind) int {
	switch k {
	case types.ArgPos:
		return 0
	case types.ArgOpt:
		return 1
	case types.ArgStar:
		return 2
	case types.ArgNamed, types.ArgNamedOpt:
		return 3
	case types.ArgStar2:
		return 4
	}
	return 5
}
