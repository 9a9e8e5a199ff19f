package umlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagramLookups(t *testing.T) {
	d := Parse("<<Shape>>\n  + area()\nCircle :: Shape\n  - radius = 1\n  + area()\nSquare :: Shape\n")

	circle := d.TypeByName("Circle")
	require.NotNil(t, circle)
	assert.Equal(t, KindClass, circle.Kind)
	assert.Nil(t, d.TypeByName("Triangle"))

	classes := d.Classes()
	require.Len(t, classes, 2)
	assert.Equal(t, "Circle", classes[0].Name)
	assert.Equal(t, "Square", classes[1].Name)

	ifaces := d.Interfaces()
	require.Len(t, ifaces, 1)
	assert.Equal(t, "Shape", ifaces[0].Name)

	radius := circle.Property("radius")
	require.NotNil(t, radius)
	assert.Equal(t, AccessPrivate, radius.Access)
	assert.Nil(t, circle.Property("diameter"))

	require.NotNil(t, circle.Method("area"))
	assert.Nil(t, circle.Method("perimeter"))
}

func TestDiagramLookupReturnsElementPointer(t *testing.T) {
	d := Parse("A\n")
	d.TypeByName("A").Extends = "B"
	assert.Equal(t, "B", d.Types[0].Extends)
}

func TestValueInterface(t *testing.T) {
	assert.Equal(t, int64(3), ParseValue("3").Interface())
	assert.Equal(t, 0.5, ParseValue("0.5").Interface())
	assert.Equal(t, true, ParseValue("true").Interface())
	assert.Nil(t, ParseValue("null").Interface())
	assert.Equal(t, "s", ParseValue(`'s'`).Interface())
	assert.Equal(t, "FOO", ParseValue("FOO").Interface())
}
