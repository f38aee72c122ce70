package pack

type StatementKind uint8

const (
	StmtExpr StatementKind = iota
	StmtIf
	StmtSwitch
	StmtBranch
	StmtLoop
)

// Statement is one entry of a statement block. Exactly the payload matching
// Kind is meaningful.
type Statement struct {
	Kind   StatementKind
	Expr   RValueID
	If     IfStatement
	Switch SwitchStatement
	Branch BranchStatement
	Loop   LoopStatement
}

// IfStatement. Else == NoStatementBlockID means no else block.
type IfStatement struct {
	Condition Value
	Then      StatementBlockID
	Else      StatementBlockID
}

type SwitchStatement struct {
	Condition Value
	Body      StatementBlockID
}

// BranchStatement. Operand is optional; an absent operand has the zero
// (ValueInvalid) Value.
type BranchStatement struct {
	Op      BranchOperator
	Operand Value
}

// LoopStatement. TestFirst selects pre-test (while/for) over post-test (do)
// form. Terminal == NoRValueID means no increment clause.
type LoopStatement struct {
	Condition Value
	Terminal  RValueID
	Body      StatementBlockID
	TestFirst bool
}

// BranchOperator enumerates labeled branch/jump statement kinds.
type BranchOperator uint8

const (
	BranchDiscard BranchOperator = iota
	BranchTerminateInvocation
	BranchDemote
	BranchTerminateRayEXT
	BranchIgnoreIntersectionEXT
	BranchReturn
	BranchBreak
	BranchContinue
	BranchCase
	BranchDefault
)

var branchOperatorNames = [...]string{
	BranchDiscard:               "Discard",
	BranchTerminateInvocation:   "TerminateInvocation",
	BranchDemote:                "Demote",
	BranchTerminateRayEXT:       "TerminateRayEXT",
	BranchIgnoreIntersectionEXT: "IgnoreIntersectionEXT",
	BranchReturn:                "Return",
	BranchBreak:                 "Break",
	BranchContinue:              "Continue",
	BranchCase:                  "Case",
	BranchDefault:               "Default",
}

func (op BranchOperator) String() string {
	if int(op) < len(branchOperatorNames) {
		return branchOperatorNames[op]
	}
	return "Unknown"
}

func ExprStatement(id RValueID) Statement {
	return Statement{Kind: StmtExpr, Expr: id}
}

func IfStmt(cond Value, then, elseBlock StatementBlockID) Statement {
	return Statement{Kind: StmtIf, If: IfStatement{Condition: cond, Then: then, Else: elseBlock}}
}

func SwitchStmt(cond Value, body StatementBlockID) Statement {
	return Statement{Kind: StmtSwitch, Switch: SwitchStatement{Condition: cond, Body: body}}
}

func BranchStmt(op BranchOperator, operand Value) Statement {
	return Statement{Kind: StmtBranch, Branch: BranchStatement{Op: op, Operand: operand}}
}

func LoopStmt(loop LoopStatement) Statement {
	return Statement{Kind: StmtLoop, Loop: loop}
}
