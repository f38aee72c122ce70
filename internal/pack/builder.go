package pack

// Hints sizes the builder's arenas up front.
type Hints struct{ Types, Functions, RValues, Globals, Blocks uint }

// Builder assembles a Pack. It is the producer-side (importer, codec, tests)
// counterpart of the read-only Pack consumed by regeneration.
type Builder struct {
	pack *Pack
}

func NewBuilder(hints Hints) *Builder {
	if hints.Types == 0 {
		hints.Types = 1 << 5
	}
	if hints.Functions == 0 {
		hints.Functions = 1 << 4
	}
	if hints.RValues == 0 {
		hints.RValues = 1 << 7
	}
	if hints.Globals == 0 {
		hints.Globals = 1 << 4
	}
	if hints.Blocks == 0 {
		hints.Blocks = 1 << 5
	}
	return &Builder{
		pack: &Pack{
			Types:           NewArena[Type](hints.Types),
			FunctionNames:   NewArena[string](hints.Functions),
			RValues:         NewArena[RValue](hints.RValues),
			GlobalSymbols:   NewArena[GlobalSymbol](hints.Globals),
			StatementBlocks: NewArena[StatementBlock](hints.Blocks),
			Definitions:     make(map[FunctionID]*FunctionDefinition),
		},
	}
}

func (b *Builder) AddType(t Type) TypeID {
	return TypeID(b.pack.Types.Allocate(t))
}

// AddFunctionName registers a mangled function name ("display(params...").
func (b *Builder) AddFunctionName(mangled string) FunctionID {
	return FunctionID(b.pack.FunctionNames.Allocate(mangled))
}

func (b *Builder) AddGlobalSymbol(name string) GlobalSymbolID {
	return GlobalSymbolID(b.pack.GlobalSymbols.Allocate(GlobalSymbol{Name: name}))
}

func (b *Builder) AddRValue(rv RValue) RValueID {
	return RValueID(b.pack.RValues.Allocate(rv))
}

func (b *Builder) AddBlock(stmts ...Statement) StatementBlockID {
	return StatementBlockID(b.pack.StatementBlocks.Allocate(StatementBlock{Statements: stmts}))
}

// AddDefinition records a function body for def.Name. DefinitionOrder keeps
// insertion order.
func (b *Builder) AddDefinition(def *FunctionDefinition) {
	b.pack.Definitions[def.Name] = def
	b.pack.DefinitionOrder = append(b.pack.DefinitionOrder, def.Name)
}

func (b *Builder) AddPrototype(id FunctionID) {
	b.pack.Prototypes = append(b.pack.Prototypes, id)
}

func (b *Builder) Build() *Pack {
	return b.pack
}
