package pack

type LiteralKind uint8

const (
	LiteralUnset LiteralKind = iota
	LiteralBool
	LiteralInt
	LiteralUint
	LiteralFloat
	LiteralDouble
	// LiteralString exists only to carry member/swizzle selectors for
	// OpIndexStruct and OpVectorSwizzle; GLSL has no string literals.
	LiteralString
)

// Literal is an opaque constant payload attached to a literal r-value.
type Literal struct {
	Kind  LiteralKind
	Bool  bool
	Int   int64
	Uint  uint64
	Float float64
	Str   string
}

func BoolLiteral(v bool) Literal      { return Literal{Kind: LiteralBool, Bool: v} }
func IntLiteral(v int64) Literal      { return Literal{Kind: LiteralInt, Int: v} }
func UintLiteral(v uint64) Literal    { return Literal{Kind: LiteralUint, Uint: v} }
func FloatLiteral(v float64) Literal  { return Literal{Kind: LiteralFloat, Float: v} }
func DoubleLiteral(v float64) Literal { return Literal{Kind: LiteralDouble, Float: v} }
func StringLiteral(s string) Literal  { return Literal{Kind: LiteralString, Str: s} }
