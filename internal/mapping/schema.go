package mapping

import "go/token"

// DirectiveFile is a parsed directive file.
type DirectiveFile struct {
	// Path is the file the directives were read from.
	Path    string
	Version string
	Enums   []EnumEntry
}

// EnumEntry lists the variant directives of one enum.
type EnumEntry struct {
	Name     string
	Position token.Position
	Variants []VariantEntry
}

// VariantEntry lists the source types converting into one variant.
type VariantEntry struct {
	Name     string
	Position token.Position
	Targets  []Target
}

// Target is one source type name.
type Target struct {
	Value string
	// IsString is false when the YAML node was not a string scalar.
	IsString bool
	Position token.Position
}

// Enum returns the entry for name, or nil. A nil file has no entries.
func (f *DirectiveFile) Enum(name string) *EnumEntry {
	if f == nil {
		return nil
	}

	for i := range f.Enums {
		if f.Enums[i].Name == name {
			return &f.Enums[i]
		}
	}

	return nil
}

// Names returns the enum names in file order.
func (f *DirectiveFile) Names() []string {
	if f == nil {
		return nil
	}

	names := make([]string, 0, len(f.Enums))
	for _, e := range f.Enums {
		names = append(names, e.Name)
	}

	return names
}

// Variant returns the entry for name, or nil.
func (e *EnumEntry) Variant(name string) *VariantEntry {
	if e == nil {
		return nil
	}

	for i := range e.Variants {
		if e.Variants[i].Name == name {
			return &e.Variants[i]
		}
	}

	return nil
}
