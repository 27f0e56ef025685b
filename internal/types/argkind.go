package types

// ArgKind tags the calling convention of one declared parameter or one
// call-site argument. The declared ordering within a signature is
// ArgPos* ArgOpt* ArgStar? (ArgNamed|ArgNamedOpt)* ArgStar2?.
type ArgKind uint8

const (
	// ArgPos is a required positional parameter.
	ArgPos ArgKind = iota
	// ArgOpt is a positional parameter with a default.
	ArgOpt
	// ArgStar is the variadic positional parameter (*args).
	ArgStar
	// ArgNamed is a keyword-only parameter without a default.
	ArgNamed
	// ArgStar2 is the variadic keyword parameter (**kwargs).
	ArgStar2
	// ArgNamedOpt is a keyword-only parameter with a default.
	ArgNamedOpt
)

func (k ArgKind) String() string {
	switch k {
	case ArgPos:
		return "ARG_POS"
	case ArgOpt:
		return "ARG_OPT"
	case ArgStar:
		return "ARG_STAR"
	case ArgNamed:
		return "ARG_NAMED"
	case ArgStar2:
		return "ARG_STAR2"
	case ArgNamedOpt:
		return "ARG_NAMED_OPT"
	}
	return "ARG_UNKNOWN"
}

// IsOptional reports whether the parameter may be omitted at call sites.
func (k ArgKind) IsOptional() bool {
	return k == ArgOpt || k == ArgNamedOpt
}

// IsStar reports whether the parameter is one of the variadic forms.
func (k ArgKind) IsStar() bool {
	return k == ArgStar || k == ArgStar2
}
