package builder

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/wouterj/oopbuilder/umlparser"
)

// NotationRegistry maps notation names and file extensions to notations.
// Resolution follows: explicit name -> file extension -> default notation.
type NotationRegistry struct {
	notations       map[string]umlparser.Notation
	extensions      map[string]umlparser.Notation
	defaultNotation umlparser.Notation
}

// NewNotationRegistry creates a registry with the given default notation.
// If defaultNotation is nil, resolution will return an error when nothing
// matches.
func NewNotationRegistry(defaultNotation umlparser.Notation) *NotationRegistry {
	return &NotationRegistry{
		notations:       make(map[string]umlparser.Notation),
		extensions:      make(map[string]umlparser.Notation),
		defaultNotation: defaultNotation,
	}
}

// NewDefaultRegistry creates a NotationRegistry with the UML notation
// registered and used as the default.
func NewDefaultRegistry() *NotationRegistry {
	uml := umlparser.UML{}
	r := NewNotationRegistry(uml)
	r.Register(uml)
	return r
}

// Register adds or replaces a notation under its name and extensions.
func (r *NotationRegistry) Register(n umlparser.Notation) {
	r.notations[n.Name()] = n
	for _, ext := range n.Extensions() {
		r.extensions[strings.ToLower(ext)] = n
	}
}

// SetDefault replaces the fallback notation.
func (r *NotationRegistry) SetDefault(n umlparser.Notation) {
	r.defaultNotation = n
}

// Names returns the registered notation names, sorted.
func (r *NotationRegistry) Names() []string {
	names := make([]string, 0, len(r.notations))
	for name := range r.notations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the notation for a source using the three-step resolution:
//  1. Explicit notation name (an unknown name is an error)
//  2. The extension of path
//  3. Default notation
func (r *NotationRegistry) Resolve(name, path string) (umlparser.Notation, error) {
	if name != "" {
		if n, ok := r.notations[name]; ok {
			return n, nil
		}
		return nil, &NotationError{Name: name}
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != "" {
		if n, ok := r.extensions[ext]; ok {
			return n, nil
		}
	}

	if r.defaultNotation != nil {
		return r.defaultNotation, nil
	}

	return nil, &NotationError{Path: path}
}
