package umlparser

import (
	"strconv"
	"strings"
)

// ParseValue converts a trimmed literal token into a typed Value.
//
// Classification order: quoted string, integer, float, true/false, null,
// then identifier. Matching is case-sensitive. The empty token is null.
func ParseValue(tok string) Value {
	if tok == "" {
		return Value{Kind: ValueNull, Raw: tok}
	}

	if isQuoted(tok) {
		s := tok[1 : len(tok)-1]
		return Value{Kind: ValueString, Str: s, Raw: tok}
	}

	if isInteger(tok) {
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return Value{Kind: ValueInt, Int: n, Raw: tok}
		}
		// Too large for int64; keep it numeric.
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return Value{Kind: ValueFloat, Float: f, Raw: tok}
		}
		return Value{Kind: ValueIdentifier, Str: tok, Raw: tok}
	}

	if isDecimal(tok) {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return Value{Kind: ValueFloat, Float: f, Raw: tok}
		}
	}

	switch tok {
	case "true":
		return Value{Kind: ValueBool, Bool: true, Raw: tok}
	case "false":
		return Value{Kind: ValueBool, Bool: false, Raw: tok}
	case "null":
		return Value{Kind: ValueNull, Raw: tok}
	}

	return Value{Kind: ValueIdentifier, Str: tok, Raw: tok}
}

// isQuoted reports whether tok is wrapped in a matching pair of ' or ".
func isQuoted(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	first, last := tok[0], tok[len(tok)-1]
	return first == last && (first == '"' || first == '\'')
}

// isInteger matches [+-]?[0-9]+.
func isInteger(tok string) bool {
	digits := strings.TrimLeft(tok[:1], "+-") + tok[1:]
	return digits != "" && countDigits(digits) == len(digits)
}

// isDecimal matches [+-]?([0-9]+\.[0-9]*|\.[0-9]+).
func isDecimal(tok string) bool {
	body := strings.TrimLeft(tok[:1], "+-") + tok[1:]
	intPart, fracPart, ok := strings.Cut(body, ".")
	if !ok {
		return false
	}
	if countDigits(intPart) != len(intPart) || countDigits(fracPart) != len(fracPart) {
		return false
	}
	return intPart != "" || fracPart != ""
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
