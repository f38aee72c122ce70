package glsl

import "astrict/internal/pack"

var infixSymbols = map[pack.RValueOperator]string{
	pack.OpAdd:               "+",
	pack.OpSub:               "-",
	pack.OpMul:               "*",
	pack.OpDiv:               "/",
	pack.OpMod:               "%",
	pack.OpLeftShift:         "<<",
	pack.OpRightShift:        ">>",
	pack.OpAnd:               "&",
	pack.OpInclusiveOr:       "|",
	pack.OpExclusiveOr:       "^",
	pack.OpEqual:             "==",
	pack.OpNotEqual:          "!=",
	pack.OpLessThan:          "<",
	pack.OpGreaterThan:       ">",
	pack.OpLessThanEqual:     "<=",
	pack.OpGreaterThanEqual:  ">=",
	pack.OpLogicalAnd:        "&&",
	pack.OpLogicalOr:         "||",
	pack.OpLogicalXor:        "^^",
	pack.OpComma:             ",",
	pack.OpAssign:            "=",
	pack.OpAddAssign:         "+=",
	pack.OpSubAssign:         "-=",
	pack.OpMulAssign:         "*=",
	pack.OpDivAssign:         "/=",
	pack.OpModAssign:         "%=",
	pack.OpAndAssign:         "&=",
	pack.OpInclusiveOrAssign: "|=",
	pack.OpExclusiveOrAssign: "^=",
	pack.OpLeftShiftAssign:   "<<=",
	pack.OpRightShiftAssign:  ">>=",
}

func (p *printer) checkArity(op pack.RValueOperator, args []pack.Value, want int) error {
	if len(args) == want {
		return nil
	}
	kind := "unary"
	switch want {
	case 2:
		kind = "binary"
	case 3:
		kind = "ternary"
	}
	return shapeErrorf("%s must be a %s operator, got %d operands", op, kind, len(args))
}

// printOperator classifies op into one of the emission shapes and writes it.
// Binary operators are always fully parenthesized: the pack carries no
// precedence metadata, so uniform parenthesization is the only form that
// re-parses into the intended grouping under any precedence table.
func (p *printer) printOperator(fn *pack.FunctionDefinition, op pack.RValueOperator, args []pack.Value) error {
	if sym, ok := infixSymbols[op]; ok {
		return p.printInfix(fn, op, args, sym)
	}
	switch op {
	case pack.OpNegative:
		return p.printPrefixParen(fn, op, args, "-")
	case pack.OpLogicalNot:
		return p.printPrefixParen(fn, op, args, "!")
	case pack.OpBitwiseNot:
		return p.printPrefixParen(fn, op, args, "~")

	case pack.OpPreIncrement:
		return p.printPrefix(fn, op, args, "++")
	case pack.OpPreDecrement:
		return p.printPrefix(fn, op, args, "--")
	case pack.OpPostIncrement:
		return p.printPostfix(fn, op, args, "++")
	case pack.OpPostDecrement:
		return p.printPostfix(fn, op, args, "--")
	case pack.OpArrayLength:
		return p.printPostfix(fn, op, args, ".length")

	case pack.OpIndex:
		if err := p.checkArity(op, args, 2); err != nil {
			return err
		}
		if err := p.printValue(fn, args[0]); err != nil {
			return err
		}
		p.writer.WriteString("[")
		if err := p.printValue(fn, args[1]); err != nil {
			return err
		}
		p.writer.WriteString("]")
		return nil

	case pack.OpIndexStruct, pack.OpVectorSwizzle:
		// Selector is carried as a string-kind literal argument.
		if err := p.checkArity(op, args, 2); err != nil {
			return err
		}
		if err := p.printValue(fn, args[0]); err != nil {
			return err
		}
		p.writer.WriteString(".")
		return p.printValue(fn, args[1])

	case pack.OpTernary:
		if err := p.checkArity(op, args, 3); err != nil {
			return err
		}
		p.writer.WriteString("((")
		if err := p.printValue(fn, args[0]); err != nil {
			return err
		}
		p.writer.WriteString(")" + space + "?" + space + "(")
		if err := p.printValue(fn, args[1]); err != nil {
			return err
		}
		p.writer.WriteString(")" + space + ":" + space + "(")
		if err := p.printValue(fn, args[2]); err != nil {
			return err
		}
		p.writer.WriteString("))")
		return nil

	default:
		// Call-like fallback, covers constructor-style aggregates.
		p.writer.WriteString("(")
		p.writer.WriteString(op.String())
		for _, arg := range args {
			p.writer.WriteString(space)
			if err := p.printValue(fn, arg); err != nil {
				return err
			}
		}
		p.writer.WriteString(")")
		return nil
	}
}

func (p *printer) printInfix(fn *pack.FunctionDefinition, op pack.RValueOperator, args []pack.Value, sym string) error {
	if err := p.checkArity(op, args, 2); err != nil {
		return err
	}
	p.writer.WriteString("(")
	if err := p.printValue(fn, args[0]); err != nil {
		return err
	}
	p.writer.WriteString(space + sym + space)
	if err := p.printValue(fn, args[1]); err != nil {
		return err
	}
	p.writer.WriteString(")")
	return nil
}

func (p *printer) printPrefixParen(fn *pack.FunctionDefinition, op pack.RValueOperator, args []pack.Value, sym string) error {
	if err := p.checkArity(op, args, 1); err != nil {
		return err
	}
	p.writer.WriteString(sym + "(")
	if err := p.printValue(fn, args[0]); err != nil {
		return err
	}
	p.writer.WriteString(")")
	return nil
}

func (p *printer) printPrefix(fn *pack.FunctionDefinition, op pack.RValueOperator, args []pack.Value, sym string) error {
	if err := p.checkArity(op, args, 1); err != nil {
		return err
	}
	p.writer.WriteString(sym)
	return p.printValue(fn, args[0])
}

func (p *printer) printPostfix(fn *pack.FunctionDefinition, op pack.RValueOperator, args []pack.Value, sym string) error {
	if err := p.checkArity(op, args, 1); err != nil {
		return err
	}
	if err := p.printValue(fn, args[0]); err != nil {
		return err
	}
	p.writer.WriteString(sym)
	return nil
}
