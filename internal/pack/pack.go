// Package pack defines the id-indexed intermediate representation of a
// shading-language translation unit. Every entity lives in an arena owned by
// the Pack (or, for local symbols, by their FunctionDefinition) and is
// referred to only by its typed id; id 0 is the reserved "absent" sentinel in
// every id space.
package pack

// Type is a type reference: optional precision qualifier, base name and
// declared array dimensions.
type Type struct {
	Precision  string
	Name       string
	ArraySizes []uint32
}

// GlobalSymbol is a module-level variable or uniform.
type GlobalSymbol struct {
	Name string
}

// LocalSymbol is a function-local variable or parameter.
type LocalSymbol struct {
	Type TypeID
	Name string
}

// StatementBlock is one lexical scope: an ordered statement sequence.
// Blocks form a strict tree, a block id is referenced from at most one
// parent location.
type StatementBlock struct {
	Statements []Statement
}

// FunctionDefinition is a function with a body. Parameters is a subset of
// LocalSymbols; declaration emission for locals excludes exactly the
// parameters.
type FunctionDefinition struct {
	ReturnType   TypeID
	Name         FunctionID
	Parameters   []LocalSymbolID
	LocalSymbols *Arena[LocalSymbol]
	Body         StatementBlockID
}

// Pack is a whole translation unit. It is constructed once by the importing
// stage and is read-only for the duration of any regeneration pass.
//
// FunctionNames holds mangled names: the display name followed by '(' and
// parameter-type info. Prototypes and DefinitionOrder are independent
// orderings chosen by the producer; consumers must preserve both verbatim.
type Pack struct {
	Types           *Arena[Type]
	FunctionNames   *Arena[string]
	RValues         *Arena[RValue]
	GlobalSymbols   *Arena[GlobalSymbol]
	StatementBlocks *Arena[StatementBlock]

	Definitions map[FunctionID]*FunctionDefinition

	Prototypes      []FunctionID
	DefinitionOrder []FunctionID
}
