package pex

// ForEach lowers a `for each x in expr ... end` loop to the builder's
// instruction stream (spec §4.E "ForEach lowering"). exprValue is the
// already-evaluated iteration source; isArray distinguishes the
// direct-indexing path from the GetCount/GetAt duck-typed path, and
// iterType is the local type iterVal is declared with (the array's own
// type, or expr's result type for a duck-typed collection). body lowers
// the loop's statements and may call CurrentBreakLabel/CurrentContinueLabel
// (already pushed for it) to emit break/continue jumps.
func (b *Builder) ForEach(isArray bool, iterType string, exprValue Value, declName, declType string, body func(x Value)) {
	counter := b.AllocLongLivedTemp("Int")
	iterVal := b.AllocLongLivedTemp(iterType)
	b.Assign(counter, Int(0))
	b.Assign(iterVal, exprValue)

	lBefore := b.AllocLabel()
	lAfter := b.AllocLabel()
	lContinue := b.AllocLabel()

	b.PlaceLabel(lBefore)

	cTemp := b.AllocTemp("Int")
	if isArray {
		b.ArrayLength(cTemp, iterVal)
	} else {
		b.CallMethod("GetCount", iterVal, cTemp)
	}

	bTemp := b.AllocTemp("Bool")
	b.CmpLt(bTemp, counter, cTemp)
	b.JmpF(bTemp, lAfter)

	x := b.AllocLocal(declName, declType)
	if isArray {
		b.ArrayGetElement(x, iterVal, counter)
	} else {
		b.CallMethod("GetAt", iterVal, x, counter)
	}

	b.PushBreakContinueScope(lAfter, lContinue)
	body(x)
	b.PopBreakContinueScope()

	b.PlaceLabel(lContinue)
	b.IAdd(counter, counter, Int(1))
	b.Jmp(lBefore)
	b.PlaceLabel(lAfter)

	b.FreeLongLivedTemp(iterVal)
	b.FreeLongLivedTemp(counter)
}
