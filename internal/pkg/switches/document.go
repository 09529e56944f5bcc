package switches

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Declaration is one entry of a specification document.
type Declaration struct {
	Name       string   `json:"name" yaml:"name"`
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Type       string   `json:"type,omitempty" yaml:"type,omitempty"`
	Required   bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Positional bool     `json:"positional,omitempty" yaml:"positional,omitempty"`
	Default    any      `json:"default,omitempty" yaml:"default,omitempty"`
}

// Document is a declarative switch specification, loadable from JSON or
// YAML. Both forms are checked against the embedded schema before any
// switch is constructed.
type Document struct {
	Switches []Declaration `json:"switches" yaml:"switches"`
}

func (d Declaration) build() (Switch, error) {
	kind, err := ParseKind(d.Type)
	if err != nil {
		return Switch{}, fmt.Errorf("switch %q: %w", d.Name, err)
	}
	return Switch{
		CanonicalName: d.Name,
		Aliases:       append([]string(nil), d.Aliases...),
		Kind:          kind,
		Required:      d.Required,
		Positional:    d.Positional,
		DefaultValue:  d.Default,
	}, nil
}

// Build constructs the immutable Set a document declares.
func (d Document) Build() (*Set, error) {
	sw := make([]Switch, 0, len(d.Switches))
	for _, decl := range d.Switches {
		s, err := decl.build()
		if err != nil {
			return nil, err
		}
		sw = append(sw, s)
	}
	return NewSet(sw)
}

// ParseJSONDocument validates and builds a Set from a JSON document.
func ParseJSONDocument(data []byte) (*Set, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode specification document: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode specification document: %w", err)
	}
	return doc.Build()
}

// ParseYAMLDocument validates and builds a Set from a YAML document. The
// decoded tree is normalized through yaml.v3's generic form, which the
// schema validator accepts directly.
func ParseYAMLDocument(data []byte) (*Set, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode specification document: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode specification document: %w", err)
	}
	return doc.Build()
}

// LoadDocument reads a specification document, dispatching on the file
// extension: .json, .yaml or .yml.
func LoadDocument(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specification document: %w", err)
	}
	switch filepath.Ext(path) {
	case ".json":
		return ParseJSONDocument(data)
	case ".yaml", ".yml":
		return ParseYAMLDocument(data)
	}
	return nil, fmt.Errorf("unsupported specification document %q: want .json, .yaml or .yml", path)
}
