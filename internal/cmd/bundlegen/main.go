// Command bundlegen writes the fixed arity Bundle implementations of package storage.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const maxArity = 8

var bundleTemplate = template.Must(template.New("bundle").Parse(`
// Bundle{{.N}} is a Bundle of {{.N}} values of types {{.TypeList}}.
type Bundle{{.N}}[{{.TypeParams}}] struct {
{{- range .Fields}}
	V{{.Index}} {{.Type}}
{{- end}}

	consumed bool
}

// Of{{.N}} creates a Bundle{{.N}} holding the given values.
func Of{{.N}}[{{.TypeParams}}]({{.Params}}) *Bundle{{.N}}[{{.TypeList}}] {
	return &Bundle{{.N}}[{{.TypeList}}]{ {{- .Init -}} }
}

func (b *Bundle{{.N}}[{{.TypeList}}]) Types() []*TypeInfo {
	return []*TypeInfo{
	{{- range .Fields}}
		TypeInfoOf[{{.Type}}](),
	{{- end}}
	}
}

func (b *Bundle{{.N}}[{{.TypeList}}]) Put(fn func(ptr unsafe.Pointer, ty *TypeInfo) error) error {
	if b.consumed {
		return &BundleConsumedError{}
	}

	b.consumed = true
{{range .Fields}}
	if err := fn(unsafe.Pointer(&b.V{{.Index}}), TypeInfoOf[{{.Type}}]()); err != nil {
		return err
	}

	b.V{{.Index}} = *new({{.Type}})
{{end}}
	return nil
}
`))

type field struct {
	Index int
	Type  string
}

type arity struct {
	N          int
	Fields     []field
	TypeParams string
	TypeList   string
	Params     string
	Init       string
}

func makeArity(n int) arity {
	var fields []field
	var typeNames, params, init []string

	for idx := range n {
		typeName := fmt.Sprintf("T%d", idx+1)
		fields = append(fields, field{Index: idx, Type: typeName})
		typeNames = append(typeNames, typeName)
		params = append(params, fmt.Sprintf("v%d %s", idx, typeName))
		init = append(init, fmt.Sprintf("V%d: v%d", idx, idx))
	}

	return arity{
		N:          n,
		Fields:     fields,
		TypeParams: strings.Join(typeNames, ", ") + " any",
		TypeList:   strings.Join(typeNames, ", "),
		Params:     strings.Join(params, ", "),
		Init:       strings.Join(init, ", "),
	}
}

func main() {
	output := flag.String("out", "bundle_generated.go", "file to write")
	flag.Parse()

	var source bytes.Buffer
	source.WriteString("// Code generated by bundlegen. DO NOT EDIT.\n\n")
	source.WriteString("package storage\n\nimport \"unsafe\"\n")

	for n := 1; n <= maxArity; n++ {
		if err := bundleTemplate.Execute(&source, makeArity(n)); err != nil {
			log.Fatalf("render bundle of arity %d: %s", n, err)
		}
	}

	formatted, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalf("format generated source: %s", err)
	}

	if err := os.WriteFile(*output, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %s", *output, err)
	}
}
