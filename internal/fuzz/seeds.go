package fuzztests

import "testing"

// typeCommentSeeds covers every syntactic form the parser accepts plus
// a few known-degenerate inputs.
var typeCommentSeeds = []string{
	"int",
	"List[int]",
	"Dict[str, int]",
	"Tuple[()]",
	"Tuple[int, ...]",
	"Optional[List['Node']]",
	"a.b.c.D",
	"...",
	"[Arg(int, 'x'), Arg(type=str, name='y')]",
	"(int, str) -> bool",
	"(...) -> None",
	"(*int, **str) -> None",
	"(int",
	"List[",
	"->",
	"",
	"   ",
	"\x00",
	"List[int]]",
	"'unterminated",
}

var dumpSeeds = []string{
	`{"_type": "Module", "body": [], "type_ignores": []}`,
	`{"_type": "Module", "body": [{"_type": "Pass", "lineno": 1, "col_offset": 0}], "type_ignores": []}`,
	`{"_type": "Module", "body": [{"_type": "Expr", "lineno": 1, "col_offset": 0,
	  "value": {"_type": "Num", "lineno": 1, "col_offset": 0, "kind": "int", "n": 42, "text": "0x2a"}}],
	  "type_ignores": []}`,
	`{"_type": "Expression"}`,
	`{"_type": "Module", "body": [{"_type": "Nope", "lineno": 1, "col_offset": 0}], "type_ignores": []}`,
	`{`,
	`null`,
	`[]`,
}

func addTypeCommentSeeds(f *testing.F) {
	for _, s := range typeCommentSeeds {
		f.Add(s)
	}
}

func addDumpSeeds(f *testing.F) {
	for _, s := range dumpSeeds {
		f.Add([]byte(s))
	}
}
