package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wouterj/oopbuilder/builder"
	"github.com/wouterj/oopbuilder/umlparser"
)

// writeProject writes the project in the given output format.
func writeProject(w io.Writer, project *builder.Project, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(project, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(project); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()

	case "summary", "":
		printSummary(w, project)
		return nil

	default:
		return fmt.Errorf("unknown output format %q (want summary, json or yaml)", format)
	}
}

// printSummary prints the diagram back in its text form, one line per member.
func printSummary(w io.Writer, project *builder.Project) {
	d := project.Diagram
	fmt.Fprintf(w, "Project: %s (%s)\n", project.Name, project.Notation)
	fmt.Fprintf(w, "  Classes: %d\n", len(d.Classes()))
	fmt.Fprintf(w, "  Interfaces: %d\n", len(d.Interfaces()))

	for _, t := range d.Types {
		name := t.Name
		if name == "" {
			name = "(unnamed)"
		}
		header := fmt.Sprintf("%s %s", t.Kind, name)
		if t.Extends != "" {
			header += " : " + t.Extends
		}
		if t.Implements != "" {
			header += " :: " + t.Implements
		}
		fmt.Fprintf(w, "  %s\n", header)

		for _, p := range t.Properties {
			line := fmt.Sprintf("%s %s", p.Access.Symbol(), p.Name)
			if p.Default != nil {
				line += " = " + p.Default.String()
			}
			fmt.Fprintf(w, "    %s\n", line)
		}
		for _, m := range t.Methods {
			fmt.Fprintf(w, "    %s %s(%s)\n", m.Access.Symbol(), m.Name, formatArguments(m.Arguments))
		}
	}
}

func formatArguments(args []umlparser.Argument) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a.Default != nil {
			parts = append(parts, a.Name+" = "+a.Default.String())
		} else {
			parts = append(parts, a.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// printDiagnostics prints lint findings, one per line.
func printDiagnostics(w io.Writer, name string, diags []umlparser.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s: %s\n", name, d)
	}
}
