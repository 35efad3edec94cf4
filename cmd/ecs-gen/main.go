// Command ecs-gen emits the arity-N system registration functions
// (RegisterSystem1..RegisterSystemN) into the ecs package. Go has no variadic
// generics, so the typed registration surface is generated for small N.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by ecs-gen -arity {{.MaxArity}}; DO NOT EDIT.

package ecs
{{range .Systems}}
// RegisterSystem{{.N}} registers a system over {{.N}} component kind{{if gt .N 1}}s{{end}} in phase. kinds
// pairs positionally with the callback's value types; pass nil to fill every
// kind from the registry defaults (requires the world option). prelude, when
// non-nil, runs once before each row walk.
func RegisterSystem{{.N}}[{{.TypeParams}} any](w *World, phase Phase, kinds []Id, prelude func(), fn func({{.FuncParams}})) {
	tokens := []TypeToken{ {{- .Tokens -}} }
	required := w.resolveSystemKinds(kinds, tokens)
	w.scheduler.register(phase, systemName(fn), required, prelude, func(ar *Archetype) {
{{- range .Views}}
		{{.Var}} := viewOf[{{.Type}}](ar, required[{{.Index}}])
{{- end}}
		for row := 0; row < v1.Len(); row++ {
			fn({{.Args}})
		}
	})
}
{{end}}`

type viewSpec struct {
	Var   string
	Type  string
	Index int
}

type systemSpec struct {
	N          int
	TypeParams string
	FuncParams string
	Tokens     string
	Views      []viewSpec
	Args       string
}

func buildSpec(n int) systemSpec {
	spec := systemSpec{N: n}
	var typeParams, funcParams, tokens, args bytes.Buffer
	for i := 1; i <= n; i++ {
		if i > 1 {
			typeParams.WriteString(", ")
			funcParams.WriteString(", ")
			tokens.WriteString(", ")
			args.WriteString(", ")
		}
		fmt.Fprintf(&typeParams, "T%d", i)
		fmt.Fprintf(&funcParams, "*T%d", i)
		fmt.Fprintf(&tokens, "TokenFor[T%d]()", i)
		fmt.Fprintf(&args, "v%d.At(row)", i)
		spec.Views = append(spec.Views, viewSpec{
			Var:   fmt.Sprintf("v%d", i),
			Type:  fmt.Sprintf("T%d", i),
			Index: i - 1,
		})
	}
	spec.TypeParams = typeParams.String()
	spec.FuncParams = funcParams.String()
	spec.Tokens = tokens.String()
	spec.Args = args.String()
	return spec
}

func main() {
	maxArity := flag.Int("arity", 8, "highest RegisterSystemN arity to emit")
	out := flag.String("out", "ecs/scheduler_generated.go", "output file path")
	flag.Parse()

	if *maxArity < 1 {
		log.Fatalf("arity must be at least 1, got %d", *maxArity)
	}

	data := struct {
		MaxArity int
		Systems  []systemSpec
	}{MaxArity: *maxArity}
	for n := 1; n <= *maxArity; n++ {
		data.Systems = append(data.Systems, buildSpec(n))
	}

	tmpl, err := template.New("arity").Parse(fileTemplate)
	if err != nil {
		log.Fatalf("parsing template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("rendering template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("formatting output: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("wrote %s (arity 1..%d)", *out, *maxArity)
}
