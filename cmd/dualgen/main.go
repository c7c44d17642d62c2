// Command dualgen generates the fixed-size array containers of package dual.
//
// Usage, via go:generate from the dual package:
//
//	//go:generate go run ../cmd/dualgen -max 32 -out arrays_gen.go
//
// For every size N in 1..max it emits an owned container ArrayN, its
// read-only reference ArrayRefN, and the dual aliases ArrayNF64,
// ArrayViewNF64, ArrayNF32 and ArrayViewNF32.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	maxSize = flag.Int("max", 32, "Largest array size to generate")
	outFile = flag.String("out", "arrays_gen.go", "Output file")
	pkgName = flag.String("pkg", "dual", "Package name of the generated file")
)

const header = `// Code generated by dualgen. DO NOT EDIT.

package {{.Package}}
`

const arrayTmpl = `
// Array{{.N}} is an owned container of {{.N}} scalar{{if ne .N 1}}s{{end}}: the value and {{.Diffs}} derivative{{if ne .Diffs 1}}s{{end}}.
type Array{{.N}}[F Scalar] [{{.N}}]F

func (a *Array{{.N}}[F]) RO() []F { return a[:] }

func (a *Array{{.N}}[F]) RW() []F { return a[:] }

func (a *Array{{.N}}[F]) Clone() *Array{{.N}}[F] {
	c := *a
	return &c
}

func (a *Array{{.N}}[F]) View() ArrayRef{{.N}}[F] { return ArrayRef{{.N}}[F]{p: a} }

// ArrayRef{{.N}} is a read-only reference to an Array{{.N}}.
type ArrayRef{{.N}}[F Scalar] struct{ p *Array{{.N}}[F] }

func (r ArrayRef{{.N}}[F]) RO() []F { return r.p[:] }

func (r ArrayRef{{.N}}[F]) View() ArrayRef{{.N}}[F] { return r }

func (r ArrayRef{{.N}}[F]) ToOwning() *Array{{.N}}[F] {
	c := *r.p
	return &c
}

type (
	Array{{.N}}F64 = Dual[*Array{{.N}}[float64], float64]
	ArrayView{{.N}}F64 = View[ArrayRef{{.N}}[float64], float64]
	Array{{.N}}F32 = Dual[*Array{{.N}}[float32], float32]
	ArrayView{{.N}}F32 = View[ArrayRef{{.N}}[float32], float32]
)
`

var (
	headerTemplate = template.Must(template.New("header").Parse(header))
	arrayTemplate  = template.Must(template.New("array").Parse(arrayTmpl))
)

type arrayData struct {
	N     int
	Diffs int
}

// render returns the gofmt-ed source for sizes 1..max.
func render(pkg string, max int) ([]byte, error) {
	if max < 1 {
		return nil, fmt.Errorf("max must be at least 1, got %d", max)
	}
	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, struct{ Package string }{pkg}); err != nil {
		return nil, fmt.Errorf("failed to render header: %w", err)
	}
	for n := 1; n <= max; n++ {
		if err := arrayTemplate.Execute(&buf, arrayData{N: n, Diffs: n - 1}); err != nil {
			return nil, fmt.Errorf("failed to render size %d: %w", n, err)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	src, err := render(*pkgName, *maxSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Generation failed")
	}
	if err := os.WriteFile(*outFile, src, 0644); err != nil {
		log.Fatal().Err(err).Str("file", *outFile).Msg("Failed to write output")
	}
	log.Info().Str("file", *outFile).Int("max", *maxSize).Msg("Generated array containers")
}
