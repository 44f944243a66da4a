// ABOUTME: Argument parsing for name[=value] attributes and result printing
// ABOUTME: names and values print one per line; yaml prints the attribute list

package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/multiselect-go/pkg/tui/component"
)

// parseAttributes parses "name=value" arguments. An argument without "=" uses
// the name as the value. Empty names are skipped.
func parseAttributes(args []string) []component.Attribute {
	var attrs []component.Attribute
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !ok {
			value = name
		}
		attrs = append(attrs, component.Attribute{Name: name, Value: value})
	}
	return attrs
}

func checkOutputFormat(format string) error {
	switch format {
	case "names", "values", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want names, values or yaml)", format)
}

// writeAttributes prints attrs to w in the given format.
func writeAttributes(w io.Writer, format string, attrs []component.Attribute) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(attrs); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return enc.Close()
	case "values":
		for _, a := range attrs {
			fmt.Fprintln(w, a.Value)
		}
		return nil
	case "names":
		for _, a := range attrs {
			fmt.Fprintln(w, a.Name)
		}
		return nil
	}
	return checkOutputFormat(format)
}
