package pack

type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueRValue
	ValueGlobalSymbol
	ValueLocalSymbol
)

// Value is any usable expression operand: a computed r-value, a global
// symbol or a local symbol. The zero Value (ValueInvalid) marks an absent
// optional operand and must never reach an emitter's dispatch.
type Value struct {
	Kind   ValueKind
	RValue RValueID
	Global GlobalSymbolID
	Local  LocalSymbolID
}

func RValueValue(id RValueID) Value {
	return Value{Kind: ValueRValue, RValue: id}
}

func GlobalValue(id GlobalSymbolID) Value {
	return Value{Kind: ValueGlobalSymbol, Global: id}
}

func LocalValue(id LocalSymbolID) Value {
	return Value{Kind: ValueLocalSymbol, Local: id}
}

// IsPresent reports whether the value slot is filled at all. A present value
// may still carry a sentinel id, which emitters render as a marker token.
func (v Value) IsPresent() bool {
	return v.Kind != ValueInvalid
}
