package glsl

import (
	"errors"
	"strings"
	"testing"

	"astrict/internal/pack"
)

func TestBinaryOperatorFullyParenthesized(t *testing.T) {
	f := newFixture()
	a := f.param("a")
	b := f.param("b")
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpAdd, a, b))

	if got := f.exprText(t, rv); got != "(a + b)" {
		t.Fatalf("want %q, got %q", "(a + b)", got)
	}
}

func TestNestedBinaryGroupingSurvivesAnyPrecedence(t *testing.T) {
	f := newFixture()
	a := f.param("a")
	b := f.param("b")
	c := f.param("c")
	sum := f.b.AddRValue(pack.EvaluableOp(pack.OpAdd, a, b))
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpMul, pack.RValueValue(sum), c))

	if got := f.exprText(t, rv); got != "((a + b) * c)" {
		t.Fatalf("want %q, got %q", "((a + b) * c)", got)
	}
}

func TestTernaryOperandsIndependentlyParenthesized(t *testing.T) {
	f := newFixture()
	c := f.param("c")
	d := f.param("d")
	e := f.param("e")
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpTernary, c, d, e))

	if got := f.exprText(t, rv); got != "((c) ? (d) : (e))" {
		t.Fatalf("want %q, got %q", "((c) ? (d) : (e))", got)
	}
}

func TestUnaryOperators(t *testing.T) {
	cases := []struct {
		op   pack.RValueOperator
		want string
	}{
		{pack.OpNegative, "-(a)"},
		{pack.OpLogicalNot, "!(a)"},
		{pack.OpBitwiseNot, "~(a)"},
		{pack.OpPreIncrement, "++a"},
		{pack.OpPreDecrement, "--a"},
		{pack.OpPostIncrement, "a++"},
		{pack.OpPostDecrement, "a--"},
		{pack.OpArrayLength, "a.length"},
	}
	for _, tc := range cases {
		f := newFixture()
		a := f.param("a")
		rv := f.b.AddRValue(pack.EvaluableOp(tc.op, a))
		if got := f.exprText(t, rv); got != tc.want {
			t.Fatalf("%s: want %q, got %q", tc.op, tc.want, got)
		}
	}
}

func TestCompoundAssignmentSymbols(t *testing.T) {
	cases := []struct {
		op   pack.RValueOperator
		want string
	}{
		{pack.OpAssign, "(a = b)"},
		{pack.OpAddAssign, "(a += b)"},
		{pack.OpModAssign, "(a %= b)"},
		{pack.OpLeftShiftAssign, "(a <<= b)"},
		{pack.OpRightShiftAssign, "(a >>= b)"},
		{pack.OpLogicalXor, "(a ^^ b)"},
		{pack.OpComma, "(a , b)"},
	}
	for _, tc := range cases {
		f := newFixture()
		a := f.param("a")
		b := f.param("b")
		rv := f.b.AddRValue(pack.EvaluableOp(tc.op, a, b))
		if got := f.exprText(t, rv); got != tc.want {
			t.Fatalf("%s: want %q, got %q", tc.op, tc.want, got)
		}
	}
}

func TestIndexingAddsNoParentheses(t *testing.T) {
	f := newFixture()
	a := f.param("a")
	i := f.param("i")
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpIndex, a, i))

	if got := f.exprText(t, rv); got != "a[i]" {
		t.Fatalf("want %q, got %q", "a[i]", got)
	}
}

func TestStructFieldAndSwizzleSelectors(t *testing.T) {
	f := newFixture()
	v := f.param("v")
	field := pack.RValueValue(f.b.AddRValue(pack.LiteralRValue(pack.StringLiteral("normal"))))
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpIndexStruct, v, field))
	if got := f.exprText(t, rv); got != "v.normal" {
		t.Fatalf("want %q, got %q", "v.normal", got)
	}

	f = newFixture()
	v = f.param("v")
	mask := pack.RValueValue(f.b.AddRValue(pack.LiteralRValue(pack.StringLiteral("xyz"))))
	rv = f.b.AddRValue(pack.EvaluableOp(pack.OpVectorSwizzle, v, mask))
	if got := f.exprText(t, rv); got != "v.xyz" {
		t.Fatalf("want %q, got %q", "v.xyz", got)
	}
}

func TestFallbackOperatorIsCallLike(t *testing.T) {
	f := newFixture()
	a := f.param("a")
	b := f.param("b")
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpConstructStruct, a, b))

	if got := f.exprText(t, rv); got != "(ConstructStruct a b)" {
		t.Fatalf("want %q, got %q", "(ConstructStruct a b)", got)
	}
}

func TestFunctionCallArguments(t *testing.T) {
	f := newFixture()
	a := f.param("a")
	b := f.param("b")
	callee := f.b.AddFunctionName("clamp(f1;f1;")
	rv := f.b.AddRValue(pack.EvaluableCall(callee, a, b))

	if got := f.exprText(t, rv); got != "clamp(a, b)" {
		t.Fatalf("want %q, got %q", "clamp(a, b)", got)
	}
}

func TestLiteralLexicalForms(t *testing.T) {
	cases := []struct {
		lit  pack.Literal
		want string
	}{
		{pack.BoolLiteral(true), "true"},
		{pack.BoolLiteral(false), "false"},
		{pack.IntLiteral(-7), "-7"},
		{pack.UintLiteral(3), "3u"},
		{pack.FloatLiteral(1), "1.0"},
		{pack.FloatLiteral(0.5), "0.5"},
		{pack.DoubleLiteral(2.5), "2.5lf"},
		{pack.Literal{}, "INVALID_LITERAL"},
	}
	for _, tc := range cases {
		f := newFixture()
		rv := f.b.AddRValue(pack.LiteralRValue(tc.lit))
		if got := f.exprText(t, rv); got != tc.want {
			t.Fatalf("literal kind %d: want %q, got %q", tc.lit.Kind, tc.want, got)
		}
	}
}

func TestSentinelIdsEmitMarkers(t *testing.T) {
	f := newFixture()
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpAdd,
		pack.RValueValue(pack.NoRValueID),
		pack.GlobalValue(pack.NoGlobalSymbolID)))
	if got := f.exprText(t, rv); got != "(INVALID_RVALUE + INVALID_GLOBAL_SYMBOL)" {
		t.Fatalf("unexpected sentinel rendering: %q", got)
	}

	f = newFixture()
	rv = f.b.AddRValue(pack.EvaluableOp(pack.OpNegative, pack.LocalValue(pack.NoLocalSymbolID)))
	if got := f.exprText(t, rv); got != "-(INVALID_LOCAL_SYMBOL)" {
		t.Fatalf("unexpected sentinel rendering: %q", got)
	}
}

func TestGlobalSymbolReference(t *testing.T) {
	f := newFixture()
	g := f.b.AddGlobalSymbol("u_time")
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpNegative, pack.GlobalValue(g)))
	if got := f.exprText(t, rv); got != "-(u_time)" {
		t.Fatalf("want %q, got %q", "-(u_time)", got)
	}
}

func TestArityMismatchIsShapeError(t *testing.T) {
	f := newFixture()
	a := f.param("a")
	rv := f.b.AddRValue(pack.EvaluableOp(pack.OpAdd, a))
	p := f.pack(pack.ExprStatement(rv))

	_, err := ToGLSL(p)
	var shape *ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("want ShapeError, got %v", err)
	}
	if !strings.Contains(shape.Detail, "Add") {
		t.Fatalf("error does not name the operator: %q", shape.Detail)
	}
}

func TestMissingRValueIsFatal(t *testing.T) {
	f := newFixture()
	p := f.pack(pack.ExprStatement(pack.RValueID(1234)))

	_, err := ToGLSL(p)
	var missing *MissingEntityError
	if !errors.As(err, &missing) {
		t.Fatalf("want MissingEntityError, got %v", err)
	}
	if missing.ID != 1234 {
		t.Fatalf("wrong id: %d", missing.ID)
	}
}

func TestSentinelExpressionStatement(t *testing.T) {
	f := newFixture()
	out := mustGenerate(t, f.pack(pack.ExprStatement(pack.NoRValueID)))
	want := "void main() {\n  INVALID_RVALUE;\n}\n"
	if out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
}
