package umlparser

// Notation is a textual diagram notation that can be parsed into a Diagram.
// Alternative notations are added as further implementations.
type Notation interface {
	// Name is the registry key of the notation (e.g. "uml").
	Name() string
	// Extensions lists file extensions, with leading dot, handled by the notation.
	Extensions() []string
	// Parse converts source text into a diagram. Implementations must be
	// safe for concurrent use.
	Parse(text string) *Diagram
}

// UML is the indented text UML notation described in the package docs.
type UML struct{}

var _ Notation = UML{}

func (UML) Name() string { return "uml" }

func (UML) Extensions() []string { return []string{".uml", ".txt"} }

func (UML) Parse(text string) *Diagram { return Parse(text) }
