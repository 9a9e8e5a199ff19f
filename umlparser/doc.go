// Package umlparser implements a parser for the oopbuilder text UML notation.
//
// A diagram is a sequence of type declarations. Each declaration is one
// unindented header line followed by its members, each indented by exactly
// two spaces:
//
//	Car : Vehicle :: Drivable
//	  + speed = 10
//	  - owner = "nobody"
//	  + drive(to, fast = false)
//	<<Drivable>>
//	  + drive(to)
//
// A header starting with << declares an interface. In a class header,
// "::" names the implemented interface and ":" the parent class. A member
// whose line ends in ")" is a method, anything else is a property. The first
// character of a member is its access symbol (+ public, # protected,
// - private).
//
// The parser is lenient: it never fails. Malformed lines degrade to records
// with empty or default fields, which Lint reports as diagnostics.
//
// Usage:
//
//	diagram := umlparser.Parse(src)
//	for _, t := range diagram.Types {
//	    fmt.Println(t.Kind, t.Name, len(t.Methods))
//	}
package umlparser
