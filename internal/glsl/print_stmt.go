package glsl

import (
	"strings"

	"astrict/internal/pack"
)

var branchKeywords = [...]string{
	pack.BranchDiscard:               "discard",
	pack.BranchTerminateInvocation:   "terminateInvocation",
	pack.BranchDemote:                "demote",
	pack.BranchTerminateRayEXT:       "terminateRayEXT",
	pack.BranchIgnoreIntersectionEXT: "terminateIntersectionEXT",
	pack.BranchReturn:                "return",
	pack.BranchBreak:                 "break",
	pack.BranchContinue:              "continue",
	pack.BranchCase:                  "case",
	pack.BranchDefault:               "default",
}

// printBlock emits one statement block at the given nesting depth. Case and
// default labels use the parent depth's indent so they outdent one level from
// their case bodies.
func (p *printer) printBlock(fn *pack.FunctionDefinition, id pack.StatementBlockID, depth int) error {
	blk := p.pack.StatementBlocks.Get(uint32(id))
	if blk == nil {
		return missingEntity("block definition", id)
	}
	indentMinusOne := strings.Repeat(indentUnit, max(depth-1, 0))
	indent := indentMinusOne
	if depth > 0 {
		indent += indentUnit
	}
	for _, stmt := range blk.Statements {
		switch stmt.Kind {
		case pack.StmtExpr:
			p.writer.WriteString(indent)
			if err := p.printRValue(fn, stmt.Expr); err != nil {
				return err
			}
			p.writer.WriteString(";\n")

		case pack.StmtIf:
			p.writer.WriteString(indent + "if" + space + "(")
			if err := p.printValue(fn, stmt.If.Condition); err != nil {
				return err
			}
			p.writer.WriteString(")" + space + "{\n")
			if err := p.printBlock(fn, stmt.If.Then, depth+1); err != nil {
				return err
			}
			if stmt.If.Else.IsValid() {
				p.writer.WriteString(indent + "}" + space + "else" + space + "{\n")
				if err := p.printBlock(fn, stmt.If.Else, depth+1); err != nil {
					return err
				}
			}
			p.writer.WriteString(indent + "}\n")

		case pack.StmtSwitch:
			p.writer.WriteString(indent + "switch" + space + "(")
			if err := p.printValue(fn, stmt.Switch.Condition); err != nil {
				return err
			}
			p.writer.WriteString(")" + space + "{\n")
			if err := p.printBlock(fn, stmt.Switch.Body, depth+1); err != nil {
				return err
			}
			p.writer.WriteString(indent + "}\n")

		case pack.StmtBranch:
			if err := p.printBranch(fn, stmt.Branch, indent, indentMinusOne); err != nil {
				return err
			}

		case pack.StmtLoop:
			if err := p.printLoop(fn, stmt.Loop, indent, depth); err != nil {
				return err
			}

		default:
			return shapeErrorf("unreachable statement kind %d", stmt.Kind)
		}
	}
	return nil
}

func (p *printer) printBranch(fn *pack.FunctionDefinition, branch pack.BranchStatement, indent, indentMinusOne string) error {
	if int(branch.Op) >= len(branchKeywords) {
		return shapeErrorf("unreachable branch operator %d", branch.Op)
	}
	label := branch.Op == pack.BranchCase || branch.Op == pack.BranchDefault
	if label {
		p.writer.WriteString(indentMinusOne)
	} else {
		p.writer.WriteString(indent)
	}
	p.writer.WriteString(branchKeywords[branch.Op])
	if branch.Operand.IsPresent() {
		p.writer.WriteString(" ")
		if err := p.printValue(fn, branch.Operand); err != nil {
			return err
		}
	}
	if label {
		p.writer.WriteString(":\n")
	} else {
		p.writer.WriteString(";\n")
	}
	return nil
}

func (p *printer) printLoop(fn *pack.FunctionDefinition, loop pack.LoopStatement, indent string, depth int) error {
	if loop.TestFirst {
		if loop.Terminal.IsValid() {
			p.writer.WriteString(indent + "for" + space + "(;" + space)
			if err := p.printValue(fn, loop.Condition); err != nil {
				return err
			}
			p.writer.WriteString(";" + space)
			if err := p.printRValue(fn, loop.Terminal); err != nil {
				return err
			}
		} else {
			p.writer.WriteString(indent + "while" + space + "(")
			if err := p.printValue(fn, loop.Condition); err != nil {
				return err
			}
		}
		p.writer.WriteString(")" + space + "{\n")
		if err := p.printBlock(fn, loop.Body, depth+1); err != nil {
			return err
		}
		p.writer.WriteString(indent + "}\n")
		return nil
	}
	p.writer.WriteString(indent + "do" + space + "{\n")
	if err := p.printBlock(fn, loop.Body, depth+1); err != nil {
		return err
	}
	p.writer.WriteString(indent + "}" + space + "while" + space + "(")
	if err := p.printValue(fn, loop.Condition); err != nil {
		return err
	}
	p.writer.WriteString(");\n")
	return nil
}
