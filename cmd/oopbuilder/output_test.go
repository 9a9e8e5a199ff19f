package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wouterj/oopbuilder/builder"
)

const carDiagram = `Car : Vehicle :: Drivable
  - speed = 0
  # owner = "nobody"
  + drive(to, fast = false)
<<Drivable>>
  + drive(to)
`

func renderTestProject(t *testing.T) *builder.Project {
	t.Helper()
	b, err := builder.New(builder.DefaultConfig())
	require.NoError(t, err)
	project, err := b.RenderProject("car.uml", []byte(carDiagram))
	require.NoError(t, err)
	return project
}

func TestWriteProjectSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeProject(&buf, renderTestProject(t), "summary"))

	want := `Project: car.uml (uml)
  Classes: 1
  Interfaces: 1
  class Car : Vehicle :: Drivable
    - speed = 0
    # owner = "nobody"
    + drive(to, fast = false)
  interface Drivable
    + drive(to)
`
	assert.Equal(t, want, buf.String())
}

func TestWriteProjectJSON(t *testing.T) {
	project := renderTestProject(t)

	var buf bytes.Buffer
	require.NoError(t, writeProject(&buf, project, "json"))

	var decoded struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Notation string `json:"notation"`
		Diagram  struct {
			Types []struct {
				Type       string `json:"type"`
				Name       string `json:"name"`
				Properties []struct {
					Name    string `json:"name"`
					Default any    `json:"default"`
				} `json:"properties"`
			} `json:"types"`
		} `json:"diagram"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, project.ID.String(), decoded.ID)
	assert.Equal(t, "uml", decoded.Notation)
	require.Len(t, decoded.Diagram.Types, 2)
	assert.Equal(t, "class", decoded.Diagram.Types[0].Type)
	require.Len(t, decoded.Diagram.Types[0].Properties, 2)
	assert.Equal(t, float64(0), decoded.Diagram.Types[0].Properties[0].Default)
	assert.Equal(t, "nobody", decoded.Diagram.Types[0].Properties[1].Default)
	assert.Equal(t, "interface", decoded.Diagram.Types[1].Type)
}

func TestWriteProjectYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeProject(&buf, renderTestProject(t), "yaml"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "car.uml", decoded["name"])

	diagram, ok := decoded["diagram"].(map[string]any)
	require.True(t, ok)
	types, ok := diagram["types"].([]any)
	require.True(t, ok)
	require.Len(t, types, 2)

	car := types[0].(map[string]any)
	assert.Equal(t, "Car", car["name"])
	assert.Equal(t, "Vehicle", car["extends"])
	methods := car["methods"].([]any)
	require.Len(t, methods, 1)
	args := methods[0].(map[string]any)["arguments"].([]any)
	require.Len(t, args, 2)
	assert.Nil(t, args[0].(map[string]any)["default"])
	assert.Equal(t, false, args[1].(map[string]any)["default"])
}

func TestWriteProjectUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeProject(&buf, renderTestProject(t), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestPrintSummaryUnnamed(t *testing.T) {
	b, err := builder.New(builder.DefaultConfig())
	require.NoError(t, err)
	project, err := b.RenderProject("x.uml", []byte("  + orphan()\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, project)
	assert.Contains(t, buf.String(), "  class (unnamed)\n    + orphan()\n")
}

func TestPrintDiagnostics(t *testing.T) {
	b, err := builder.New(builder.DefaultConfig())
	require.NoError(t, err)
	project, err := b.RenderProject("x.uml", []byte("A\nA\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	printDiagnostics(&buf, "x.uml", project.Diagnostics)
	assert.Equal(t, "x.uml: [WARNING] duplicate_type: \"A\" is already declared on line 1 (type: A) (line 2)\n", buf.String())
}
