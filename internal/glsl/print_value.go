package glsl

import (
	"strconv"
	"strings"

	"astrict/internal/pack"
)

// printValue dispatches an expression operand to the matching printer.
func (p *printer) printValue(fn *pack.FunctionDefinition, v pack.Value) error {
	switch v.Kind {
	case pack.ValueRValue:
		return p.printRValue(fn, v.RValue)
	case pack.ValueGlobalSymbol:
		return p.printGlobalSymbol(v.Global)
	case pack.ValueLocalSymbol:
		return p.printLocalSymbol(fn, v.Local, false)
	default:
		return shapeErrorf("unreachable value kind %d", v.Kind)
	}
}

func (p *printer) printRValue(fn *pack.FunctionDefinition, id pack.RValueID) error {
	if !id.IsValid() {
		p.writer.WriteString(invalidRValueToken)
		return nil
	}
	rv := p.pack.RValues.Get(uint32(id))
	if rv == nil {
		return missingEntity("rvalue", id)
	}
	switch rv.Kind {
	case pack.RValueEvaluable:
		if rv.Callee.IsValid() {
			return p.printCall(fn, rv.Callee, rv.Args)
		}
		return p.printOperator(fn, rv.Op, rv.Args)
	case pack.RValueLiteral:
		return p.printLiteral(rv.Literal)
	default:
		return shapeErrorf("unreachable rvalue kind %d", rv.Kind)
	}
}

func (p *printer) printCall(fn *pack.FunctionDefinition, callee pack.FunctionID, args []pack.Value) error {
	if err := p.printFunctionName(callee); err != nil {
		return err
	}
	p.writer.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			p.writer.WriteString("," + space)
		}
		if err := p.printValue(fn, arg); err != nil {
			return err
		}
	}
	p.writer.WriteString(")")
	return nil
}

// printLiteral emits a constant in its GLSL lexical form. Float literals
// always carry a decimal point or exponent so they re-parse as floats;
// doubles take the lf suffix. String-kind literals exist only as member and
// swizzle selectors and render verbatim.
func (p *printer) printLiteral(lit pack.Literal) error {
	switch lit.Kind {
	case pack.LiteralBool:
		p.writer.WriteString(strconv.FormatBool(lit.Bool))
	case pack.LiteralInt:
		p.writer.WriteString(strconv.FormatInt(lit.Int, 10))
	case pack.LiteralUint:
		p.writer.WriteString(strconv.FormatUint(lit.Uint, 10))
		p.writer.WriteString("u")
	case pack.LiteralFloat:
		p.writer.WriteString(formatFloat(lit.Float, 32))
	case pack.LiteralDouble:
		p.writer.WriteString(formatFloat(lit.Float, 64))
		p.writer.WriteString("lf")
	case pack.LiteralString:
		p.writer.WriteString(lit.Str)
	case pack.LiteralUnset:
		p.writer.WriteString(invalidLiteralToken)
	default:
		return shapeErrorf("unreachable literal kind %d", lit.Kind)
	}
	return nil
}

func formatFloat(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
