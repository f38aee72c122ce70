package glsl

import "astrict/internal/pack"

// printFunction emits one function. With withBody false and no definition
// anywhere in the pack, the prototype is an unused forward declaration and is
// skipped silently; with withBody true a missing definition is fatal.
func (p *printer) printFunction(id pack.FunctionID, withBody bool) error {
	fn, ok := p.pack.Definitions[id]
	if !ok {
		if !withBody {
			return nil
		}
		return missingEntity("function definition", id)
	}

	if err := p.printType(fn.ReturnType); err != nil {
		return err
	}
	p.writer.WriteString(space)
	if err := p.printFunctionName(fn.Name); err != nil {
		return err
	}
	p.writer.WriteString("(")
	parameters := make(map[pack.LocalSymbolID]struct{}, len(fn.Parameters))
	for i, param := range fn.Parameters {
		if i > 0 {
			p.writer.WriteString("," + space)
		}
		parameters[param] = struct{}{}
		if err := p.printLocalSymbol(fn, param, true); err != nil {
			return err
		}
	}
	p.writer.WriteString(")")
	if !withBody {
		p.writer.WriteString(";\n")
		return nil
	}

	p.writer.WriteString(space + "{\n")
	// Declare every non-parameter local in table order.
	for i := uint32(1); i <= fn.LocalSymbols.Len(); i++ {
		local := pack.LocalSymbolID(i)
		if _, isParam := parameters[local]; isParam {
			continue
		}
		p.writer.WriteString(indentUnit)
		if err := p.printLocalSymbol(fn, local, true); err != nil {
			return err
		}
		p.writer.WriteString(";\n")
	}
	if err := p.printBlock(fn, fn.Body, 1); err != nil {
		return err
	}
	p.writer.WriteString("}\n")
	return nil
}
