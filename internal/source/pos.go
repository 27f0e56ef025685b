package source

import (
	"fmt"
)

// Pos is a line/column position in a source file.
// Lines are 1-based, columns are 0-based, matching the offsets the
// upstream parser reports.
type Pos struct {
	Line int
	Col  int
}

// NoPos marks a node without a recorded position.
var NoPos = Pos{Line: -1, Col: -1}

func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Before reports whether p precedes other in source order.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
