package glsl

import (
	"strconv"
	"strings"

	"astrict/internal/pack"
)

// printType emits a type reference: precision qualifier (when present), base
// name, then each array dimension in declared order.
func (p *printer) printType(id pack.TypeID) error {
	t := p.pack.Types.Get(uint32(id))
	if t == nil {
		return missingEntity("type definition", id)
	}
	if t.Precision != "" {
		p.writer.WriteString(t.Precision)
		p.writer.WriteString(space)
	}
	p.writer.WriteString(t.Name)
	for _, size := range t.ArraySizes {
		p.writer.WriteString("[")
		p.writer.WriteString(strconv.FormatUint(uint64(size), 10))
		p.writer.WriteString("]")
	}
	return nil
}

// printFunctionName emits the display portion of a mangled function name:
// everything before the first '(' marker.
func (p *printer) printFunctionName(id pack.FunctionID) error {
	name := p.pack.FunctionNames.Get(uint32(id))
	if name == nil {
		return missingEntity("function name", id)
	}
	display := *name
	if idx := strings.IndexByte(display, '('); idx >= 0 {
		display = display[:idx]
	}
	p.writer.WriteString(display)
	return nil
}

func (p *printer) printGlobalSymbol(id pack.GlobalSymbolID) error {
	if !id.IsValid() {
		p.writer.WriteString(invalidGlobalSymbolToken)
		return nil
	}
	sym := p.pack.GlobalSymbols.Get(uint32(id))
	if sym == nil {
		return missingEntity("global symbol", id)
	}
	p.writer.WriteString(sym.Name)
	return nil
}

// printLocalSymbol emits a local symbol reference. withType selects the
// declaration form (type, space, name) used for parameter lists and local
// declarations; use sites pass false.
func (p *printer) printLocalSymbol(fn *pack.FunctionDefinition, id pack.LocalSymbolID, withType bool) error {
	if !id.IsValid() {
		p.writer.WriteString(invalidLocalSymbolToken)
		return nil
	}
	sym := fn.LocalSymbols.Get(uint32(id))
	if sym == nil {
		return missingEntity("local symbol", id)
	}
	if withType {
		if err := p.printType(sym.Type); err != nil {
			return err
		}
		p.writer.WriteString(space)
	}
	p.writer.WriteString(sym.Name)
	return nil
}
