package pack

type (
	// главные сущности
	TypeID           uint32
	FunctionID       uint32
	GlobalSymbolID   uint32
	RValueID         uint32
	StatementBlockID uint32
	// per-function
	LocalSymbolID uint32
)

const (
	NoTypeID           TypeID           = 0
	NoFunctionID       FunctionID       = 0
	NoGlobalSymbolID   GlobalSymbolID   = 0
	NoRValueID         RValueID         = 0
	NoStatementBlockID StatementBlockID = 0
	NoLocalSymbolID    LocalSymbolID    = 0
)

func (id TypeID) IsValid() bool           { return id != NoTypeID }
func (id FunctionID) IsValid() bool       { return id != NoFunctionID }
func (id GlobalSymbolID) IsValid() bool   { return id != NoGlobalSymbolID }
func (id RValueID) IsValid() bool         { return id != NoRValueID }
func (id StatementBlockID) IsValid() bool { return id != NoStatementBlockID }
func (id LocalSymbolID) IsValid() bool    { return id != NoLocalSymbolID }
