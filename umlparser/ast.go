package umlparser

import "encoding/json"

// Kind discriminates class and interface declarations.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
)

// Access is the visibility of a member. Besides the three constants below, a
// recognised access keyword is passed through unchanged by ResolveAccess.
type Access string

const (
	AccessPublic    Access = "public"
	AccessProtected Access = "protected"
	AccessPrivate   Access = "private"
)

// ValueKind discriminates the Value tagged union.
type ValueKind string

const (
	ValueInt        ValueKind = "int"
	ValueFloat      ValueKind = "float"
	ValueBool       ValueKind = "bool"
	ValueNull       ValueKind = "null"
	ValueString     ValueKind = "string"
	ValueIdentifier ValueKind = "identifier"
)

// Value is a parsed literal default. Kind determines which typed field is populated.
type Value struct {
	Kind  ValueKind
	Str   string  // populated when Kind == ValueString or ValueIdentifier
	Int   int64   // populated when Kind == ValueInt
	Float float64 // populated when Kind == ValueFloat
	Bool  bool    // populated when Kind == ValueBool
	Raw   string  // original token, always set
}

// String returns the original text representation of the value.
func (v Value) String() string { return v.Raw }

// Interface returns the value as a plain Go scalar (nil for null).
func (v Value) Interface() any {
	switch v.Kind {
	case ValueInt:
		return v.Int
	case ValueFloat:
		return v.Float
	case ValueBool:
		return v.Bool
	case ValueNull:
		return nil
	default:
		return v.Str
	}
}

// MarshalJSON encodes the value as its scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes the value as its scalar.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// Argument is one entry of a method's argument list.
type Argument struct {
	Name    string `json:"name" yaml:"name"`
	Default *Value `json:"default" yaml:"default"` // nil when absent
}

// Property is a class field.
type Property struct {
	Access  Access `json:"access" yaml:"access"`
	Name    string `json:"name" yaml:"name"`
	Default *Value `json:"default,omitempty" yaml:"default,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"` // 1-based source line
}

// Method is a class or interface operation.
type Method struct {
	Access    Access     `json:"access" yaml:"access"`
	Name      string     `json:"name" yaml:"name"`
	Arguments []Argument `json:"arguments" yaml:"arguments"`
	Line      int        `json:"line,omitempty" yaml:"line,omitempty"`
}

// TypeDeclaration is a parsed class or interface.
type TypeDeclaration struct {
	Kind       Kind       `json:"type" yaml:"type"`
	Name       string     `json:"name" yaml:"name"`
	Extends    string     `json:"extends,omitempty" yaml:"extends,omitempty"`
	Implements string     `json:"implements,omitempty" yaml:"implements,omitempty"`
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"` // classes only
	Methods    []Method   `json:"methods" yaml:"methods"`
	Line       int        `json:"line,omitempty" yaml:"line,omitempty"` // header line, 0 if synthetic
}

// Property looks up a property by name. Returns nil if not found.
func (t *TypeDeclaration) Property(name string) *Property {
	for i := range t.Properties {
		if t.Properties[i].Name == name {
			return &t.Properties[i]
		}
	}
	return nil
}

// Method looks up a method by name. Returns nil if not found.
func (t *TypeDeclaration) Method(name string) *Method {
	for i := range t.Methods {
		if t.Methods[i].Name == name {
			return &t.Methods[i]
		}
	}
	return nil
}

// Diagram is the complete parsed representation of a text UML diagram.
type Diagram struct {
	Types []TypeDeclaration `json:"types" yaml:"types"` // in declaration order
}

// TypeByName returns the first declaration with the given name, or nil if not found.
func (d *Diagram) TypeByName(name string) *TypeDeclaration {
	for i := range d.Types {
		if d.Types[i].Name == name {
			return &d.Types[i]
		}
	}
	return nil
}

// Classes returns all class declarations in declaration order.
func (d *Diagram) Classes() []*TypeDeclaration {
	return d.byKind(KindClass)
}

// Interfaces returns all interface declarations in declaration order.
func (d *Diagram) Interfaces() []*TypeDeclaration {
	return d.byKind(KindInterface)
}

func (d *Diagram) byKind(kind Kind) []*TypeDeclaration {
	var result []*TypeDeclaration
	for i := range d.Types {
		if d.Types[i].Kind == kind {
			result = append(result, &d.Types[i])
		}
	}
	return result
}
