// Command accessors generates accessors.go for an SDK model package: the
// getters, setters and builders of every shape plus its String, Equal and
// Hash methods. It runs from go generate inside the package directory:
//
//	//go:generate go run ../../../internal/gen/accessors
//
// For every exported struct type matching -types:
//   - GetX for pointer fields, nil-safe;
//   - SetX for every field, copying slices, maps and byte payloads;
//   - WithX for slice fields, appending to a lazily created slice;
//   - String, Equal and Hash backed by internal/structural.
//
// Struct types that declare an Error method are skipped.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"log"
	"os"
	"regexp"
	"sort"
	"strings"
	"text/template"
)

const (
	fileName      = "accessors.go"
	structuralPkg = "docanalysis/internal/structural"
	typesPkg      = "docanalysis/sdk/go/types"
)

var (
	typeFilter = flag.String("types", ".*", "regexp selecting the struct types to generate for")
	dryRun     = flag.Bool("n", false, "print the generated source instead of writing it")
)

var zeroValues = map[string]string{
	"string":    `""`,
	"bool":      "false",
	"int32":     "0",
	"int64":     "0",
	"float32":   "0",
	"float64":   "0",
	"time.Time": "time.Time{}",
}

type field struct {
	Name string
	Type string
	Elem string
	Kind string
	Zero string
}

type shape struct {
	Name   string
	Fields []field
}

type file struct {
	Package string
	Std     []string
	Local   []string
	Shapes  []shape
}

func main() {
	flag.Parse()
	match, err := regexp.Compile(*typeFilter)
	if err != nil {
		log.Fatalf("invalid -types: %v", err)
	}
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, ".", sourceFile, 0)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	if len(pkgs) != 1 {
		log.Fatalf("expected one package, found %d", len(pkgs))
	}
	var out file
	for name, pkg := range pkgs {
		out.Package = name
		out.Shapes = collect(pkg, match)
	}
	sort.Slice(out.Shapes, func(i, j int) bool { return out.Shapes[i].Name < out.Shapes[j].Name })
	out.Std, out.Local = imports(out.Shapes)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, out); err != nil {
		log.Fatalf("execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format: %v\n%s", err, buf.String())
	}
	if *dryRun {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(fileName, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", fileName, err)
	}
	fmt.Printf("wrote %s (%d shapes)\n", fileName, len(out.Shapes))
}

func sourceFile(fi fs.FileInfo) bool {
	name := fi.Name()
	return name != fileName && !strings.HasSuffix(name, "_test.go")
}

func collect(pkg *ast.Package, match *regexp.Regexp) []shape {
	errorTypes := map[string]bool{}
	var specs []*ast.TypeSpec
	for _, f := range pkg.Files {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv != nil && d.Name.Name == "Error" {
					errorTypes[receiverName(d.Recv.List[0].Type)] = true
				}
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, s := range d.Specs {
					ts := s.(*ast.TypeSpec)
					if _, ok := ts.Type.(*ast.StructType); ok && ts.Name.IsExported() {
						specs = append(specs, ts)
					}
				}
			}
		}
	}
	var shapes []shape
	for _, ts := range specs {
		if errorTypes[ts.Name.Name] || !match.MatchString(ts.Name.Name) {
			continue
		}
		s := shape{Name: ts.Name.Name}
		for _, f := range ts.Type.(*ast.StructType).Fields.List {
			for _, n := range f.Names {
				if n.IsExported() {
					s.Fields = append(s.Fields, describe(n.Name, f.Type))
				}
			}
		}
		shapes = append(shapes, s)
	}
	return shapes
}

func receiverName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func describe(name string, expr ast.Expr) field {
	f := field{Name: name, Type: types.ExprString(expr)}
	switch t := expr.(type) {
	case *ast.StarExpr:
		f.Elem = types.ExprString(t.X)
		if zero, ok := zeroValues[f.Elem]; ok {
			f.Kind, f.Zero = "ptr", zero
		} else {
			f.Kind = "shape"
		}
	case *ast.ArrayType:
		f.Elem = types.ExprString(t.Elt)
		if f.Elem == "byte" {
			f.Kind = "bytes"
		} else {
			f.Kind = "slice"
		}
	case *ast.MapType:
		f.Kind = "map"
	default:
		f.Kind = "value"
	}
	return f
}

func imports(shapes []shape) (std, local []string) {
	var needTime, needTypes bool
	for _, s := range shapes {
		for _, f := range s.Fields {
			if f.Kind == "ptr" && f.Elem == "time.Time" {
				needTime = true
			}
			if strings.Contains(f.Type, "types.") {
				needTypes = true
			}
		}
	}
	if needTime {
		std = append(std, "time")
	}
	local = append(local, structuralPkg)
	if needTypes {
		local = append(local, typesPkg)
	}
	return std, local
}

var tmpl = template.Must(template.New("accessors").Parse(`// Code generated by gen/accessors; DO NOT EDIT.

package {{.Package}}

import (
{{- range .Std}}
	"{{.}}"
{{- end}}
{{if .Std}}
{{end -}}
{{- range .Local}}
	"{{.}}"
{{- end}}
)
{{range $s := .Shapes}}{{range .Fields}}
{{- if eq .Kind "ptr"}}
// Get{{.Name}} returns the {{.Name}} field if it's non-nil, zero value otherwise.
func (s *{{$s.Name}}) Get{{.Name}}() {{.Elem}} {
	if s == nil || s.{{.Name}} == nil {
		return {{.Zero}}
	}
	return *s.{{.Name}}
}

// Set{{.Name}} sets the {{.Name}} field and returns s.
func (s *{{$s.Name}}) Set{{.Name}}(v {{.Elem}}) *{{$s.Name}} {
	s.{{.Name}} = &v
	return s
}
{{else if eq .Kind "shape"}}
// Get{{.Name}} returns the {{.Name}} field.
func (s *{{$s.Name}}) Get{{.Name}}() {{.Type}} {
	if s == nil {
		return nil
	}
	return s.{{.Name}}
}

// Set{{.Name}} sets the {{.Name}} field and returns s.
func (s *{{$s.Name}}) Set{{.Name}}(v {{.Type}}) *{{$s.Name}} {
	s.{{.Name}} = v
	return s
}
{{else if eq .Kind "bytes"}}
// Set{{.Name}} stores a copy of v in the {{.Name}} field and returns s. A nil v clears the field.
func (s *{{$s.Name}}) Set{{.Name}}(v []byte) *{{$s.Name}} {
	s.{{.Name}} = structural.CopySlice(v)
	return s
}
{{else if eq .Kind "slice"}}
// Set{{.Name}} stores a copy of v in the {{.Name}} field and returns s. A nil v clears the field.
func (s *{{$s.Name}}) Set{{.Name}}(v {{.Type}}) *{{$s.Name}} {
	s.{{.Name}} = structural.CopySlice(v)
	return s
}

// With{{.Name}} appends v to the {{.Name}} field and returns s.
func (s *{{$s.Name}}) With{{.Name}}(v ...{{.Elem}}) *{{$s.Name}} {
	s.{{.Name}} = structural.Append(s.{{.Name}}, v...)
	return s
}
{{else if eq .Kind "map"}}
// Set{{.Name}} stores a copy of v in the {{.Name}} field and returns s. A nil v clears the field.
func (s *{{$s.Name}}) Set{{.Name}}(v {{.Type}}) *{{$s.Name}} {
	s.{{.Name}} = structural.CopyMap(v)
	return s
}
{{else}}
// Set{{.Name}} sets the {{.Name}} field and returns s.
func (s *{{$s.Name}}) Set{{.Name}}(v {{.Type}}) *{{$s.Name}} {
	s.{{.Name}} = v
	return s
}
{{end}}{{end}}
// String renders {{.Name}} for debugging, omitting unset fields.
func (s {{.Name}}) String() string {
	return structural.String(s)
}

// Equal reports whether s and o hold structurally equal values.
func (s *{{.Name}}) Equal(o *{{.Name}}) bool {
	if s == nil || o == nil {
		return s == o
	}
	return structural.Equal(*s, *o)
}

// Hash returns a hash of s that is consistent with Equal.
func (s *{{.Name}}) Hash() uint64 {
	if s == nil {
		return 0
	}
	return structural.Hash(*s)
}
{{end}}`))
