package pack

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the pack file format changes.
const packSchemaVersion uint16 = 1

// packFile is the on-disk snapshot of a Pack. Arena entries are stored as
// plain slices; ids are positional (1-based), so rebuilding the arenas in
// order reproduces every id exactly.
type packFile struct {
	Schema uint16

	Types           []Type
	FunctionNames   []string
	RValues         []RValue
	GlobalSymbols   []GlobalSymbol
	StatementBlocks []StatementBlock

	Definitions []definitionRecord

	Prototypes      []FunctionID
	DefinitionOrder []FunctionID
}

type definitionRecord struct {
	ReturnType   TypeID
	Name         FunctionID
	Parameters   []LocalSymbolID
	LocalSymbols []LocalSymbol
	Body         StatementBlockID
}

// EncodePack serializes a Pack into the versioned msgpack pack-file format.
func EncodePack(p *Pack) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pack: encode nil pack")
	}
	file := packFile{
		Schema:          packSchemaVersion,
		Types:           p.Types.Slice(),
		FunctionNames:   p.FunctionNames.Slice(),
		RValues:         p.RValues.Slice(),
		GlobalSymbols:   p.GlobalSymbols.Slice(),
		StatementBlocks: p.StatementBlocks.Slice(),
		Prototypes:      p.Prototypes,
		DefinitionOrder: p.DefinitionOrder,
	}
	// Definitions are stored in definition order so decoding is
	// deterministic even though the in-memory table is a map.
	for _, id := range p.DefinitionOrder {
		def, ok := p.Definitions[id]
		if !ok {
			return nil, fmt.Errorf("pack: definition order references unknown function %d", id)
		}
		file.Definitions = append(file.Definitions, definitionRecord{
			ReturnType:   def.ReturnType,
			Name:         def.Name,
			Parameters:   def.Parameters,
			LocalSymbols: def.LocalSymbols.Slice(),
			Body:         def.Body,
		})
	}
	return msgpack.Marshal(&file)
}

// DecodePack parses the versioned pack-file format back into a Pack.
func DecodePack(data []byte) (*Pack, error) {
	var file packFile
	if err := msgpack.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("pack: decode: %w", err)
	}
	if file.Schema != packSchemaVersion {
		return nil, fmt.Errorf("pack: unsupported schema version %d (want %d)", file.Schema, packSchemaVersion)
	}

	b := NewBuilder(Hints{
		Types:     uint(len(file.Types)),
		Functions: uint(len(file.FunctionNames)),
		RValues:   uint(len(file.RValues)),
		Globals:   uint(len(file.GlobalSymbols)),
		Blocks:    uint(len(file.StatementBlocks)),
	})
	for _, t := range file.Types {
		b.AddType(t)
	}
	for _, name := range file.FunctionNames {
		b.AddFunctionName(name)
	}
	for _, rv := range file.RValues {
		b.AddRValue(rv)
	}
	for _, g := range file.GlobalSymbols {
		b.AddGlobalSymbol(g.Name)
	}
	for _, blk := range file.StatementBlocks {
		b.AddBlock(blk.Statements...)
	}
	for _, rec := range file.Definitions {
		locals := NewArena[LocalSymbol](uint(len(rec.LocalSymbols)))
		for _, sym := range rec.LocalSymbols {
			locals.Allocate(sym)
		}
		b.AddDefinition(&FunctionDefinition{
			ReturnType:   rec.ReturnType,
			Name:         rec.Name,
			Parameters:   rec.Parameters,
			LocalSymbols: locals,
			Body:         rec.Body,
		})
	}
	p := b.Build()
	p.Prototypes = file.Prototypes
	// AddDefinition already rebuilt DefinitionOrder; keep the stored order
	// authoritative in case a producer reordered it after adding bodies.
	p.DefinitionOrder = file.DefinitionOrder
	return p, nil
}
