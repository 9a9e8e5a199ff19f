package umlparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a lint diagnostic.
type Severity int

const (
	// Error means the declaration lost information while parsing.
	Error Severity = iota
	// Warning means the diagram parsed but is likely not what was meant.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single lint finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "type_name")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Type     string   // related declaration name (optional)
	Line     int      // related source line (optional)
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Type != "" {
		fmt.Fprintf(&b, " (type: %s)", d.Type)
	}
	if d.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", d.Line)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single lint rule.
type LintRule interface {
	Name() string
	Apply(d *Diagram) []Diagnostic
}

// LintError is returned by LintOrError when error-severity diagnostics exist.
type LintError struct {
	Diagnostics []Diagnostic
}

func (e *LintError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("lint failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Lint runs all built-in rules (and any extra rules) against the diagram.
// Returns all diagnostics regardless of severity.
func Lint(d *Diagram, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(d)...)
	}
	return diagnostics
}

// LintOrError runs Lint and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func LintOrError(d *Diagram, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Lint(d, extraRules...)

	var errs []Diagnostic
	for _, diag := range diagnostics {
		if diag.Severity == Error {
			errs = append(errs, diag)
		}
	}
	if len(errs) > 0 {
		return diagnostics, &LintError{Diagnostics: errs}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		typeNameRule{},
		memberNameRule{},
		argumentNameRule{},
		duplicateTypeRule{},
		duplicateMemberRule{},
	}
}

// --- Rule: type_name ---

type typeNameRule struct{}

func (typeNameRule) Name() string { return "type_name" }

func (typeNameRule) Apply(d *Diagram) []Diagnostic {
	var diags []Diagnostic
	for _, t := range d.Types {
		if t.Name != "" {
			continue
		}
		msg := fmt.Sprintf("%s declaration has no name", t.Kind)
		fix := "give the header line a name"
		if t.Line == 0 {
			msg = "indented members appear before any header line"
			fix = "add an unindented header line above the members"
		}
		diags = append(diags, Diagnostic{
			Rule:     "type_name",
			Severity: Error,
			Message:  msg,
			Line:     t.Line,
			Fix:      fix,
		})
	}
	return diags
}

// --- Rule: member_name ---

type memberNameRule struct{}

func (memberNameRule) Name() string { return "member_name" }

func (memberNameRule) Apply(d *Diagram) []Diagnostic {
	var diags []Diagnostic
	for _, t := range d.Types {
		for _, p := range t.Properties {
			if p.Name == "" {
				diags = append(diags, Diagnostic{
					Rule:     "member_name",
					Severity: Error,
					Message:  "property has no name",
					Type:     t.Name,
					Line:     p.Line,
					Fix:      `write properties as "+ name" or "+ name = value"`,
				})
			}
		}
		for _, m := range t.Methods {
			if m.Name == "" {
				diags = append(diags, Diagnostic{
					Rule:     "member_name",
					Severity: Error,
					Message:  "method has no name",
					Type:     t.Name,
					Line:     m.Line,
					Fix:      `write methods as "+ name(args)"`,
				})
			}
		}
	}
	return diags
}

// --- Rule: argument_name ---

type argumentNameRule struct{}

func (argumentNameRule) Name() string { return "argument_name" }

func (argumentNameRule) Apply(d *Diagram) []Diagnostic {
	var diags []Diagnostic
	for _, t := range d.Types {
		for _, m := range t.Methods {
			for i, a := range m.Arguments {
				if a.Name != "" {
					continue
				}
				diags = append(diags, Diagnostic{
					Rule:     "argument_name",
					Severity: Warning,
					Message:  fmt.Sprintf("argument %d of %s has no name", i+1, m.Name),
					Type:     t.Name,
					Line:     m.Line,
					Fix:      `separate arguments with ", "`,
				})
			}
		}
	}
	return diags
}

// --- Rule: duplicate_type ---

type duplicateTypeRule struct{}

func (duplicateTypeRule) Name() string { return "duplicate_type" }

func (duplicateTypeRule) Apply(d *Diagram) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]int)
	for _, t := range d.Types {
		if t.Name == "" {
			continue
		}
		if first, ok := seen[t.Name]; ok {
			diags = append(diags, Diagnostic{
				Rule:     "duplicate_type",
				Severity: Warning,
				Message:  fmt.Sprintf("%q is already declared on line %d", t.Name, first),
				Type:     t.Name,
				Line:     t.Line,
			})
			continue
		}
		seen[t.Name] = t.Line
	}
	return diags
}

// --- Rule: duplicate_member ---

type duplicateMemberRule struct{}

func (duplicateMemberRule) Name() string { return "duplicate_member" }

func (duplicateMemberRule) Apply(d *Diagram) []Diagnostic {
	var diags []Diagnostic
	for _, t := range d.Types {
		props := make(map[string]bool)
		for _, p := range t.Properties {
			if p.Name == "" {
				continue
			}
			if props[p.Name] {
				diags = append(diags, Diagnostic{
					Rule:     "duplicate_member",
					Severity: Warning,
					Message:  fmt.Sprintf("property %q is declared more than once", p.Name),
					Type:     t.Name,
					Line:     p.Line,
				})
			}
			props[p.Name] = true
		}
		methods := make(map[string]bool)
		for _, m := range t.Methods {
			if m.Name == "" {
				continue
			}
			if methods[m.Name] {
				diags = append(diags, Diagnostic{
					Rule:     "duplicate_member",
					Severity: Warning,
					Message:  fmt.Sprintf("method %q is declared more than once", m.Name),
					Type:     t.Name,
					Line:     m.Line,
				})
			}
			methods[m.Name] = true
		}
	}
	return diags
}
