package pack_test

import (
	"testing"

	"astrict/internal/glsl"
	"astrict/internal/pack"
)

func samplePack(t *testing.T) *pack.Pack {
	t.Helper()
	b := pack.NewBuilder(pack.Hints{})
	voidT := b.AddType(pack.Type{Name: "void"})
	floatT := b.AddType(pack.Type{Name: "float", Precision: "highp"})

	fid := b.AddFunctionName("main(")
	locals := pack.NewArena[pack.LocalSymbol](4)
	x := pack.LocalSymbolID(locals.Allocate(pack.LocalSymbol{Type: floatT, Name: "x"}))
	i := pack.LocalSymbolID(locals.Allocate(pack.LocalSymbol{Type: floatT, Name: "i"}))

	g := b.AddGlobalSymbol("u_scale")
	half := pack.RValueValue(b.AddRValue(pack.LiteralRValue(pack.FloatLiteral(0.5))))
	mul := b.AddRValue(pack.EvaluableOp(pack.OpMul, pack.GlobalValue(g), half))
	assign := b.AddRValue(pack.EvaluableOp(pack.OpAssign, pack.LocalValue(x), pack.RValueValue(mul)))
	inc := b.AddRValue(pack.EvaluableOp(pack.OpPostIncrement, pack.LocalValue(i)))

	loopBody := b.AddBlock(pack.ExprStatement(assign))
	body := b.AddBlock(
		pack.LoopStmt(pack.LoopStatement{
			Condition: pack.LocalValue(i),
			Terminal:  inc,
			Body:      loopBody,
			TestFirst: true,
		}),
		pack.BranchStmt(pack.BranchReturn, pack.Value{}),
	)

	b.AddDefinition(&pack.FunctionDefinition{
		ReturnType:   voidT,
		Name:         fid,
		LocalSymbols: locals,
		Body:         body,
	})
	b.AddPrototype(fid)
	return b.Build()
}

func TestPackCodecRoundTrip(t *testing.T) {
	original := samplePack(t)
	wantSrc, err := glsl.ToGLSL(original)
	if err != nil {
		t.Fatalf("generate original: %v", err)
	}

	data, err := pack.EncodePack(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := pack.DecodePack(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gotSrc, err := glsl.ToGLSL(decoded)
	if err != nil {
		t.Fatalf("generate decoded: %v", err)
	}
	if string(gotSrc) != string(wantSrc) {
		t.Fatalf("round trip changed output:\nwant %q\ngot  %q", wantSrc, gotSrc)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := pack.DecodePack([]byte("not a pack")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEncodeNilPack(t *testing.T) {
	if _, err := pack.EncodePack(nil); err == nil {
		t.Fatal("expected encode error")
	}
}
