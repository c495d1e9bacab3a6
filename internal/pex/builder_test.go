package pex

import (
	"testing"

	"github.com/papyc-lang/papyc/internal/diag"
	"github.com/papyc-lang/papyc/internal/token"
)

func TestLabelFixupResolvesToRelativeOffset(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	l := b.AllocLabel()
	b.Jmp(l) // instruction 0
	b.Nop()  // instruction 1
	b.Nop()  // instruction 2
	b.Nop()  // instruction 3
	b.PlaceLabel(l) // targetIdx == 4

	fn := b.PopulateFunction()
	arg := fn.Instructions[0].Args[0]
	if arg.Kind != KindInteger {
		t.Fatalf("expected the jmp arg to be lowered to an Integer, got %v", arg.Kind)
	}
	if arg.Int != 4 {
		t.Fatalf("expected relative offset 4, got %d", arg.Int)
	}
}

func TestBackwardLabelFixupIsNegative(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	l := b.AllocLabel()
	b.PlaceLabel(l) // targetIdx == 0
	b.Nop()          // instruction 0
	b.Nop()          // instruction 1
	b.Jmp(l)         // instruction 2

	fn := b.PopulateFunction()
	arg := fn.Instructions[2].Args[0]
	if arg.Int != -2 {
		t.Fatalf("expected relative offset -2, got %d", arg.Int)
	}
}

func TestUnplacedLabelIsFatal(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	l := b.AllocLabel()
	b.Jmp(l)

	defer func() {
		r := recover()
		if _, ok := r.(*diag.FatalError); !ok {
			t.Fatalf("expected *diag.FatalError, got %T", r)
		}
	}()
	b.PopulateFunction()
	t.Fatal("expected PopulateFunction to panic")
}

func TestTempPoolReusesDeadTemporaries(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	dst := b.AllocLocal("local", "Int")
	for i := 0; i < 5; i++ {
		tmp := b.AllocTemp("Int")
		b.Assign(tmp, Int(int32(i))) // binds tmp to a pool local
		b.Assign(dst, tmp)           // reads tmp, releasing it back to the pool
	}

	tempLocals := 0
	for _, l := range b.locals {
		if l.Type == "Int" && l.Name != "local" {
			tempLocals++
		}
	}
	if tempLocals != 1 {
		t.Fatalf("expected exactly one pooled ::tempN local to have been created, got %d", tempLocals)
	}
}

func TestLongLivedTempIsNeverImplicitlyReleased(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	counter := b.AllocLongLivedTemp("Int")
	b.Assign(counter, Int(0))
	dst := b.AllocLocal("x", "Int")
	// Reading counter repeatedly must not free its backing local: a
	// concurrently-allocated short-lived temp of the same type must get
	// its own, separate local.
	b.Assign(dst, counter)
	b.Assign(dst, counter)
	other := b.AllocTemp("Int")
	b.Assign(other, Int(1))
	b.Assign(dst, other)

	names := map[string]bool{}
	for _, l := range b.locals {
		names[l.Name] = true
	}
	if len(names) < 3 { // "x" plus two distinct temp locals
		t.Fatalf("expected the long-lived temp and the short-lived temp to use distinct locals, got %v", b.locals)
	}
}

func TestFreeLongLivedTempReturnsItToThePool(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	a := b.AllocLongLivedTemp("Int")
	b.Assign(a, Int(0))
	b.FreeLongLivedTemp(a)

	bTemp := b.AllocTemp("Int")
	dst := b.AllocLocal("x", "Int")
	b.Assign(bTemp, Int(1))
	b.Assign(dst, bTemp)

	tempLocals := 0
	for _, l := range b.locals {
		if l.Type == "Int" && l.Name != "x" {
			tempLocals++
		}
	}
	if tempLocals != 1 {
		t.Fatalf("expected the freed long-lived temp's local to be reused, got %d distinct temp locals", tempLocals)
	}
}

func TestUseBeforeAssignIsFatal(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	tmp := b.AllocTemp("Int")
	dst := b.AllocLocal("x", "Int")

	defer func() {
		r := recover()
		if _, ok := r.(*diag.FatalError); !ok {
			t.Fatalf("expected *diag.FatalError, got %T", r)
		}
	}()
	b.Assign(dst, tmp) // tmp was never written as a destination first
	t.Fatal("expected emit to panic")
}

func TestUnboundTemporaryIsFatalAtPopulate(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	_ = b.AllocTemp("Int") // allocated, never used

	defer func() {
		r := recover()
		if _, ok := r.(*diag.FatalError); !ok {
			t.Fatalf("expected *diag.FatalError, got %T", r)
		}
	}()
	b.PopulateFunction()
	t.Fatal("expected PopulateFunction to panic")
}

func TestDebugLineMapIsMonotonicNonDecreasing(t *testing.T) {
	dctx := diag.NewContext()
	dctx.PushNextLineOffset(token.Location{Start: 4, End: 5}) // line 2 starts at offset 5
	b := NewBuilder(dctx)

	b.SetLocation(token.Location{Start: 10, End: 11})
	b.Nop()
	// A location that would resolve to an earlier line than the previous
	// instruction (e.g. from a macro-expanded or reordered emission) must
	// be clamped forward, never regress the map.
	b.SetLocation(token.Location{Start: 0, End: 1})
	b.Nop()

	fn := b.PopulateFunction()
	if len(fn.InstructionLineMap) != 2 {
		t.Fatalf("expected 2 line map entries, got %d", len(fn.InstructionLineMap))
	}
	if fn.InstructionLineMap[1] < fn.InstructionLineMap[0] {
		t.Fatalf("line map regressed: %v", fn.InstructionLineMap)
	}
}

func TestCallMethodCarriesVariadicArgsAfterTheFixedThree(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	dst := b.AllocLocal("result", "Int")
	b.AllocLocal("self", "MyType")
	b.CallMethod("DoThing", Ident("self"), dst, Int(1), Str("two"))

	instr := b.instructions[0]
	if instr.Opcode != OpCallMethod {
		t.Fatalf("expected OpCallMethod, got %v", instr.Opcode)
	}
	if len(instr.Args) != 5 {
		t.Fatalf("expected 5 args (methodName, self, dest, 2 variadic), got %d", len(instr.Args))
	}
	if instr.Args[0].Str != "DoThing" {
		t.Fatalf("expected method name arg, got %v", instr.Args[0])
	}
}

func TestForEachNonArrayUsesGetCountAndGetAt(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	src := b.AllocLocal("list", "SomeCollection")

	var sawBody bool
	b.ForEach(false, "SomeCollection", src, "x", "SomeElement", func(x Value) {
		sawBody = true
		if x.Kind != KindIdentifier {
			t.Fatalf("expected x to be a bound identifier inside the loop body, got %v", x.Kind)
		}
	})
	if !sawBody {
		t.Fatal("expected the body callback to run")
	}

	fn := b.PopulateFunction()
	var sawGetCount, sawGetAt bool
	for _, instr := range fn.Instructions {
		if instr.Opcode == OpCallMethod && instr.Args[0].Str == "GetCount" {
			sawGetCount = true
		}
		if instr.Opcode == OpCallMethod && instr.Args[0].Str == "GetAt" {
			sawGetAt = true
		}
	}
	if !sawGetCount || !sawGetAt {
		t.Fatalf("expected GetCount and GetAt calls in the lowered loop, got %v", fn.Instructions)
	}
}

func TestForEachArrayUsesArrayOpcodesDirectly(t *testing.T) {
	b := NewBuilder(diag.NewContext())
	src := b.AllocLocal("arr", "Int[]")

	b.ForEach(true, "Int[]", src, "x", "Int", func(x Value) {})

	fn := b.PopulateFunction()
	var sawLength, sawGetElement bool
	for _, instr := range fn.Instructions {
		switch instr.Opcode {
		case OpArrayLength:
			sawLength = true
		case OpArrayGetElement:
			sawGetElement = true
		case OpCallMethod:
			t.Fatal("array iteration must not emit a virtual call")
		}
	}
	if !sawLength || !sawGetElement {
		t.Fatalf("expected arraylength and arraygetelement in the lowered loop, got %v", fn.Instructions)
	}
}
