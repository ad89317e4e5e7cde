package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the directive file version written and accepted.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML directive file from the given path.
func LoadFile(path string) (*DirectiveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directive file %s: %w", path, err)
	}

	return Parse(path, data)
}

// rawFile is the top level of the YAML document.
type rawFile struct {
	Version string    `yaml:"version"`
	Enums   yaml.Node `yaml:"enums"`
}

// Parse parses YAML data into a DirectiveFile. path is only used for
// positions.
func Parse(path string, data []byte) (*DirectiveFile, error) {
	var raw rawFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse directive YAML %s: %w", path, err)
	}

	df := &DirectiveFile{Path: path, Version: raw.Version}

	// Apply defaults and normalize
	if df.Version == "" {
		df.Version = CurrentVersion
	}

	if df.Version != CurrentVersion {
		return nil, fmt.Errorf("%s: unsupported directive file version %q", path, df.Version)
	}

	p := parser{path: path}
	if err := p.enums(df, &raw.Enums); err != nil {
		return nil, err
	}

	return df, nil
}

type parser struct {
	path string
}

func (p parser) pos(n *yaml.Node) token.Position {
	return token.Position{Filename: p.path, Line: n.Line, Column: n.Column}
}

func (p parser) errorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%s: %s", p.pos(n), fmt.Sprintf(format, args...))
}

func (p parser) enums(df *DirectiveFile, n *yaml.Node) error {
	if n.Kind == 0 || isNull(n) {
		return nil
	}

	if n.Kind != yaml.MappingNode {
		return p.errorf(n, "enums must be a mapping of enum names to variants")
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		if df.Enum(key.Value) != nil {
			return p.errorf(key, "duplicate enum %q", key.Value)
		}

		entry := EnumEntry{Name: key.Value, Position: p.pos(key)}
		if err := p.variants(&entry, val); err != nil {
			return err
		}

		df.Enums = append(df.Enums, entry)
	}

	return nil
}

func (p parser) variants(e *EnumEntry, n *yaml.Node) error {
	if isNull(n) {
		return nil
	}

	if n.Kind != yaml.MappingNode {
		return p.errorf(n, "enum %s must map variant names to source types", e.Name)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		if e.Variant(key.Value) != nil {
			return p.errorf(key, "duplicate variant %q in enum %s", key.Value, e.Name)
		}

		v := VariantEntry{Name: key.Value, Position: p.pos(key)}

		switch {
		case isNull(val):
		case val.Kind == yaml.ScalarNode:
			v.Targets = append(v.Targets, p.target(val))
		case val.Kind == yaml.SequenceNode:
			for _, item := range val.Content {
				v.Targets = append(v.Targets, p.target(item))
			}
		default:
			return p.errorf(val, "variant %s.%s must list source type names", e.Name, key.Value)
		}

		e.Variants = append(e.Variants, v)
	}

	return nil
}

func (p parser) target(n *yaml.Node) Target {
	return Target{
		Value:    n.Value,
		IsString: n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str",
		Position: p.pos(n),
	}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
