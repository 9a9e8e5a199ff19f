package umlparser

// accessSymbols maps UML visibility symbols to access levels.
var accessSymbols = map[string]Access{
	"+": AccessPublic,
	"#": AccessProtected,
	"-": AccessPrivate,
}

// ResolveAccess maps an access token to an Access. A token already spelled
// as an access keyword passes through; anything unknown is public.
func ResolveAccess(tok string) Access {
	if a, ok := accessSymbols[tok]; ok {
		return a
	}
	if IsAccessKeyword(tok) {
		return Access(tok)
	}
	return AccessPublic
}

// IsAccessKeyword reports whether s is one of public, protected or private.
// Matching is case-sensitive.
func IsAccessKeyword(s string) bool {
	switch Access(s) {
	case AccessPublic, AccessProtected, AccessPrivate:
		return true
	}
	return false
}

// Symbol returns the UML symbol for a, or "+" for an unknown access.
func (a Access) Symbol() string {
	switch a {
	case AccessProtected:
		return "#"
	case AccessPrivate:
		return "-"
	default:
		return "+"
	}
}
