package pack

type RValueKind uint8

const (
	RValueEvaluable RValueKind = iota
	RValueLiteral
)

// RValue is a computed expression node: either an evaluable (a built-in
// operator or a function call applied to arguments) or a literal constant.
// For an evaluable, Callee takes precedence when valid; otherwise Op is a
// built-in operator.
type RValue struct {
	Kind    RValueKind
	Op      RValueOperator
	Callee  FunctionID
	Args    []Value
	Literal Literal
}

func EvaluableOp(op RValueOperator, args ...Value) RValue {
	return RValue{Kind: RValueEvaluable, Op: op, Args: args}
}

func EvaluableCall(callee FunctionID, args ...Value) RValue {
	return RValue{Kind: RValueEvaluable, Callee: callee, Args: args}
}

func LiteralRValue(lit Literal) RValue {
	return RValue{Kind: RValueLiteral, Literal: lit}
}

// RValueOperator enumerates the built-in operators an evaluable may apply.
type RValueOperator uint8

const (
	OpInvalid RValueOperator = iota

	// Unary
	OpNegative
	OpLogicalNot
	OpBitwiseNot
	OpPreIncrement
	OpPreDecrement
	OpPostIncrement
	OpPostDecrement
	OpArrayLength

	// Binary
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLeftShift
	OpRightShift
	OpAnd
	OpInclusiveOr
	OpExclusiveOr
	OpEqual
	OpNotEqual
	OpLessThan
	OpGreaterThan
	OpLessThanEqual
	OpGreaterThanEqual
	OpLogicalAnd
	OpLogicalOr
	OpLogicalXor
	OpComma
	OpIndex
	OpIndexStruct
	OpVectorSwizzle

	// Assignment
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpAndAssign
	OpInclusiveOrAssign
	OpExclusiveOrAssign
	OpLeftShiftAssign
	OpRightShiftAssign

	// Ternary
	OpTernary

	// Misc
	OpConstructStruct
)

var rValueOperatorNames = [...]string{
	OpInvalid:           "Invalid",
	OpNegative:          "Negative",
	OpLogicalNot:        "LogicalNot",
	OpBitwiseNot:        "BitwiseNot",
	OpPreIncrement:      "PreIncrement",
	OpPreDecrement:      "PreDecrement",
	OpPostIncrement:     "PostIncrement",
	OpPostDecrement:     "PostDecrement",
	OpArrayLength:       "ArrayLength",
	OpAdd:               "Add",
	OpSub:               "Sub",
	OpMul:               "Mul",
	OpDiv:               "Div",
	OpMod:               "Mod",
	OpLeftShift:         "LeftShift",
	OpRightShift:        "RightShift",
	OpAnd:               "And",
	OpInclusiveOr:       "InclusiveOr",
	OpExclusiveOr:       "ExclusiveOr",
	OpEqual:             "Equal",
	OpNotEqual:          "NotEqual",
	OpLessThan:          "LessThan",
	OpGreaterThan:       "GreaterThan",
	OpLessThanEqual:     "LessThanEqual",
	OpGreaterThanEqual:  "GreaterThanEqual",
	OpLogicalAnd:        "LogicalAnd",
	OpLogicalOr:         "LogicalOr",
	OpLogicalXor:        "LogicalXor",
	OpComma:             "Comma",
	OpIndex:             "Index",
	OpIndexStruct:       "IndexStruct",
	OpVectorSwizzle:     "VectorSwizzle",
	OpAssign:            "Assign",
	OpAddAssign:         "AddAssign",
	OpSubAssign:         "SubAssign",
	OpMulAssign:         "MulAssign",
	OpDivAssign:         "DivAssign",
	OpModAssign:         "ModAssign",
	OpAndAssign:         "AndAssign",
	OpInclusiveOrAssign: "InclusiveOrAssign",
	OpExclusiveOrAssign: "ExclusiveOrAssign",
	OpLeftShiftAssign:   "LeftShiftAssign",
	OpRightShiftAssign:  "RightShiftAssign",
	OpTernary:           "Ternary",
	OpConstructStruct:   "ConstructStruct",
}

func (op RValueOperator) String() string {
	if int(op) < len(rValueOperatorNames) && rValueOperatorNames[op] != "" {
		return rValueOperatorNames[op]
	}
	return "Unknown"
}
