// Package glsl regenerates GLSL source text from a pack.Pack. The transform
// is a single-threaded recursive descent over the read-only pack; two
// independent regenerations may run in parallel with no coordination.
// Identical input always yields byte-identical output.
package glsl

import (
	"errors"

	"astrict/internal/pack"
)

const (
	indentUnit = "  "
	space      = " "

	invalidRValueToken       = "INVALID_RVALUE"
	invalidGlobalSymbolToken = "INVALID_GLOBAL_SYMBOL"
	invalidLocalSymbolToken  = "INVALID_LOCAL_SYMBOL"
	invalidLiteralToken      = "INVALID_LITERAL"
)

type printer struct {
	pack   *pack.Pack
	writer *Writer
}

// ToGLSL regenerates source text for the whole pack: every prototype in
// Prototypes order (signature only), then every definition in
// DefinitionOrder order (signature plus body). Any returned error means the
// pack violated a precondition and no output is usable.
func ToGLSL(p *pack.Pack) ([]byte, error) {
	if p == nil {
		return nil, errors.New("glsl: nil pack")
	}
	pr := printer{
		pack:   p,
		writer: NewWriter(),
	}
	for _, id := range p.Prototypes {
		if err := pr.printFunction(id, false); err != nil {
			return nil, err
		}
	}
	for _, id := range p.DefinitionOrder {
		if err := pr.printFunction(id, true); err != nil {
			return nil, err
		}
	}
	return pr.writer.Bytes(), nil
}
