package umlparser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses text UML source and returns the diagram. It never fails;
// see Lint for reporting degraded declarations.
func Parse(text string) *Diagram {
	groups := GroupLines(text)
	d := &Diagram{Types: make([]TypeDeclaration, 0, len(groups))}
	for _, g := range groups {
		if g.Kind == KindInterface {
			d.Types = append(d.Types, ParseInterface(g))
		} else {
			d.Types = append(d.Types, ParseClass(g))
		}
	}
	return d
}

// ParseClass parses a class group.
//
// The header is split twice, both times on the original text: "::" yields
// the implemented interface, then ":" yields the parent class. The ":" split
// runs last, so its left part is the final name.
func ParseClass(g Group) TypeDeclaration {
	header := g.Header.Text
	class := TypeDeclaration{
		Kind:    KindClass,
		Name:    strings.TrimSpace(header),
		Methods: []Method{},
		Line:    g.Header.Number,
	}

	if parts := strings.Split(header, "::"); len(parts) > 1 {
		class.Name = strings.TrimSpace(parts[0])
		class.Implements = strings.TrimSpace(parts[1])
	}

	// A "::" also splits here, leaving an empty second part: no parent.
	if parts := strings.Split(header, ":"); len(parts) > 1 {
		class.Name = strings.TrimSpace(parts[0])
		class.Extends = strings.TrimSpace(parts[1])
	}

	for _, member := range g.Members {
		text := strings.TrimPrefix(member.Text, memberIndent)
		if strings.HasSuffix(strings.TrimSpace(text), ")") {
			m := ParseMethod(text)
			m.Line = member.Number
			class.Methods = append(class.Methods, m)
		} else {
			p := ParseProperty(text)
			p.Line = member.Number
			class.Properties = append(class.Properties, p)
		}
	}

	return class
}

// ParseInterface parses an interface group. The << and >> markers are trimmed
// from the header before the "::" split; interfaces have no parent class and
// every member is a method.
func ParseInterface(g Group) TypeDeclaration {
	inner := strings.Trim(g.Header.Text, "<>")
	iface := TypeDeclaration{
		Kind:    KindInterface,
		Name:    strings.TrimSpace(inner),
		Methods: []Method{},
		Line:    g.Header.Number,
	}

	if parts := strings.Split(inner, "::"); len(parts) > 1 {
		iface.Name = strings.TrimSpace(parts[0])
		iface.Implements = strings.TrimSpace(parts[1])
	}

	for _, member := range g.Members {
		m := ParseMethod(strings.TrimPrefix(member.Text, memberIndent))
		m.Line = member.Number
		iface.Methods = append(iface.Methods, m)
	}

	return iface
}

// ParseProperty parses a property line such as "+ name = 5". The indent must
// already be stripped.
func ParseProperty(line string) Property {
	prop := Property{Access: ResolveAccess(firstChar(line))}

	left, right, hasDefault := strings.Cut(line, "=")
	left = strings.TrimSpace(left)
	if len(left) > 2 {
		prop.Name = strings.TrimSpace(left[2:])
	}

	if hasDefault {
		v := ParseValue(strings.TrimSpace(right))
		prop.Default = &v
	}

	return prop
}

// ParseMethod parses a method line such as "+ doThing(a, b = 2)". The indent
// must already be stripped.
func ParseMethod(line string) Method {
	m := Method{
		Access:    ResolveAccess(firstChar(line)),
		Name:      methodName(line),
		Arguments: []Argument{},
	}

	if args, ok := argumentList(line); ok {
		m.Arguments = ParseArguments(args)
	}

	return m
}

// ParseArguments splits an argument list on ", " and parses each entry as
// name or name = default. There is no awareness of nesting or quoting.
func ParseArguments(list string) []Argument {
	tokens := strings.Split(list, ", ")
	args := make([]Argument, 0, len(tokens))
	for _, tok := range tokens {
		name, value, _ := strings.Cut(tok, "=")
		arg := Argument{Name: strings.TrimSpace(name)}
		// "0" is a present default, only an empty right side is absent.
		if value = strings.TrimSpace(value); value != "" {
			v := ParseValue(value)
			arg.Default = &v
		}
		args = append(args, arg)
	}
	return args
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

// methodName returns the text between the first whitespace character and the
// next "(", or "" when either is missing.
func methodName(line string) string {
	ws := strings.IndexFunc(line, unicode.IsSpace)
	if ws < 0 {
		return ""
	}
	_, size := utf8.DecodeRuneInString(line[ws:])
	rest := line[ws+size:]
	paren := strings.IndexByte(rest, '(')
	if paren < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:paren])
}

// argumentList returns the non-empty text between the first "(" and a ")"
// that ends the line. Trailing whitespace is ignored.
func argumentList(line string) (string, bool) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if !strings.HasSuffix(line, ")") {
		return "", false
	}
	open := strings.IndexByte(line, '(')
	if open < 0 || open+1 >= len(line)-1 {
		return "", false
	}
	return line[open+1 : len(line)-1], true
}
