package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"text/template"

	"golang.org/x/tools/imports"

	"enumfrom/internal/analyze"
	"enumfrom/internal/plan"
)

// DefaultOutputFile is the name of the generated file in each package.
const DefaultOutputFile = "enumfrom_gen.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputFile is the file name written into each package directory.
	OutputFile string
	// Debug writes the unformatted source next to the output when
	// formatting fails.
	Debug bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputFile: DefaultOutputFile,
	}
}

// Generator generates Go code from package plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.OutputFile == "" {
		config.OutputFile = DefaultOutputFile
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the output path, inside the package directory.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the conversion template.
type templateData struct {
	PackageName string
	// ImportFmt is set when a function uses fmt and no import provides it.
	ImportFmt bool
	Imports   []plan.ImportRef
	Funcs     []funcData
}

// funcData is one conversion function.
type funcData struct {
	Name      string
	Enum      string
	Variant   string
	Source    string
	Construct string
}

// Generate renders the conversion functions of a package plan.
// The plan must be free of errors.
func (g *Generator) Generate(p *plan.PackagePlan) (*GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("package %s has errors: %w", p.Package.PkgPath, p.Diagnostics.Error())
	}

	filename := filepath.Join(p.Package.Dir, g.config.OutputFile)
	data := g.buildTemplateData(p)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := goImportsAndFormat(buf.Bytes(), filename)
	if err != nil {
		if g.config.Debug {
			_ = writeDebugUnformatted(p.Package.Dir, g.config.OutputFile, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildTemplateData(p *plan.PackagePlan) *templateData {
	data := &templateData{
		PackageName: p.Package.Name,
		Imports:     p.Imports,
	}
	needsFmt := false

	for _, ep := range p.Enums {
		for _, r := range ep.Rules {
			fn := funcData{
				Name:      r.FuncName(),
				Enum:      r.Enum,
				Variant:   r.Variant,
				Source:    r.Target,
				Construct: construct(r),
			}

			if r.Shape != analyze.ShapeWrapped {
				needsFmt = true
			}

			data.Funcs = append(data.Funcs, fn)
		}
	}

	data.ImportFmt = needsFmt && !slices.ContainsFunc(p.Imports, func(ref plan.ImportRef) bool {
		return ref.Path == "fmt" && ref.Name == "fmt"
	})

	return data
}

// construct returns the variant literal built from src.
func construct(r plan.Rule) string {
	value := "fmt.Sprint(src)"

	switch {
	case r.Shape == analyze.ShapeWrapped:
		value = "src"
	case r.TextByAddr:
		value = "fmt.Sprint(&src)"
	}

	lit := r.Variant + "{" + value + "}"
	if r.Pointer {
		lit = "&" + lit
	}

	return lit
}

// goImportsAndFormat formats the Go code and sorts its imports.
func goImportsAndFormat(source []byte, filename string) ([]byte, error) {
	options := &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	}

	return imports.Process(filename, source, options)
}

var fileTemplate = template.Must(template.New("enumfrom").Parse(`// Code generated by enumfrom. DO NOT EDIT.

//go:build !enumfrom

package {{.PackageName}}
{{if or .ImportFmt .Imports}}
import (
{{if .ImportFmt}}	"fmt"
{{end}}{{range .Imports}}	{{if .Explicit}}{{.Name}} {{end}}{{printf "%q" .Path}}
{{end}})
{{end}}{{range .Funcs}}
// {{.Name}} converts a {{.Source}} into the {{.Variant}} variant of {{.Enum}}.
func {{.Name}}(src {{.Source}}) {{.Enum}} {
	return {{.Construct}}
}
{{end}}`))
