// Package slotgen generates channel slots for the fields of a struct type.
//
// For every named field it emits a package-level channel.Field variable with a read
// accessor and a copy-on-write write accessor. Fields of the same type each get their
// own slot, named after the field.
package slotgen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/tools/imports"
)

const channelImport = `"github.com/aretw0/mosaic/pkg/channel"`

// Field describes one generated slot.
type Field struct {
	Name string
	Type string
	Var  string
}

// Aggregate describes the struct that slots are generated for.
type Aggregate struct {
	Package string
	Type    string
	Imports []string
	Fields  []Field
}

// Inspect parses src and describes the struct typeName.
func Inspect(filename string, src []byte, typeName string) (*Aggregate, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	ts := findType(file, typeName)
	if ts == nil {
		return nil, fmt.Errorf("%s in %s: %w", typeName, filename, ErrTypeNotFound)
	}
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return nil, fmt.Errorf("%s: %w", typeName, ErrGeneric)
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, fmt.Errorf("%s: %w", typeName, ErrNotStruct)
	}

	agg := &Aggregate{Package: file.Name.Name, Type: typeName}
	for _, imp := range file.Imports {
		line := imp.Path.Value
		if imp.Name != nil {
			line = imp.Name.Name + " " + line
		}
		if imp.Path.Value == channelImport {
			continue
		}
		agg.Imports = append(agg.Imports, line)
	}

	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			return nil, fmt.Errorf("%s.%s: %w", typeName, types.ExprString(f.Type), ErrEmbedded)
		}
		typ := types.ExprString(f.Type)
		for _, name := range f.Names {
			if name.Name == "_" {
				continue
			}
			agg.Fields = append(agg.Fields, Field{
				Name: name.Name,
				Type: typ,
				Var:  typeName + upperFirst(name.Name),
			})
		}
	}
	return agg, nil
}

// Generate returns formatted Go source declaring the slots for typeName.
func Generate(filename string, src []byte, typeName string) ([]byte, error) {
	agg, err := Inspect(filename, src, typeName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := slotsTemplate.Execute(&buf, agg); err != nil {
		return nil, fmt.Errorf("failed to render slots: %w", err)
	}

	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

// GenerateFile reads path and generates the slots for typeName.
func GenerateFile(path, typeName string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return Generate(path, src, typeName)
}

func findType(file *ast.File, name string) *ast.TypeSpec {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, s := range gd.Specs {
			if ts, ok := s.(*ast.TypeSpec); ok && ts.Name.Name == name {
				return ts
			}
		}
	}
	return nil
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

var slotsTemplate = template.Must(template.New("slots").Funcs(template.FuncMap{
	"quote": func(s string) string { return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"` },
}).Parse(`// Code generated by slotgen. DO NOT EDIT.

package {{.Package}}

import (
	` + channelImport + `
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{range .Fields}}
// {{.Var}} is the channel slot for {{$.Type}}.{{.Name}}.
var {{.Var}} = channel.Field({{quote .Name}},
	func(c {{$.Type}}) {{.Type}} { return c.{{.Name}} },
	func(c {{$.Type}}, v {{.Type}}) {{$.Type}} { c.{{.Name}} = v; return c },
)
{{end}}`))
