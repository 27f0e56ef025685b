package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// I/O
	IOLoadFileError Code = 100

	// Upstream grammar failures. These terminate the run for the whole
	// file (the converter produces an empty module) or, for type-comment
	// fragments, degrade only the affected signature.
	SyntaxError            Code = 1001
	TypeCommentSyntaxError Code = 1002
	RawTreeError           Code = 1003

	// Conversion-level failures. All recover locally.
	DuplicateTypeSignature Code = 2001
	SignatureArityMismatch Code = 2002
	InvalidTypeExpression  Code = 2003
	ArgConstructorMisuse   Code = 2004
	NamingViolation        Code = 2005

	// Advisory suggestions attached to the errors above.
	Suggestion Code = 2100
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "UNKNOWN"
	case IOLoadFileError:
		return "IO100"
	case SyntaxError:
		return "PYF1001"
	case TypeCommentSyntaxError:
		return "PYF1002"
	case RawTreeError:
		return "PYF1003"
	case DuplicateTypeSignature:
		return "PYF2001"
	case SignatureArityMismatch:
		return "PYF2002"
	case InvalidTypeExpression:
		return "PYF2003"
	case ArgConstructorMisuse:
		return "PYF2004"
	case NamingViolation:
		return "PYF2005"
	case Suggestion:
		return "PYF2100"
	default:
		return fmt.Sprintf("PYF%04d", uint16(c))
	}
}
