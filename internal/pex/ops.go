package pex

// This file is the one-method-per-opcode surface fixup's destination table
// (opcode.go) is consulted against. Argument order in each method mirrors
// the opcode's fixed-arity listing (spec §6).

func (b *Builder) Nop() { b.emit(OpNop) }

func (b *Builder) IAdd(dest, a, c Value) { b.emit(OpIAdd, dest, a, c) }
func (b *Builder) FAdd(dest, a, c Value) { b.emit(OpFAdd, dest, a, c) }
func (b *Builder) ISub(dest, a, c Value) { b.emit(OpISub, dest, a, c) }
func (b *Builder) FSub(dest, a, c Value) { b.emit(OpFSub, dest, a, c) }
func (b *Builder) IMul(dest, a, c Value) { b.emit(OpIMul, dest, a, c) }
func (b *Builder) FMul(dest, a, c Value) { b.emit(OpFMul, dest, a, c) }
func (b *Builder) IDiv(dest, a, c Value) { b.emit(OpIDiv, dest, a, c) }
func (b *Builder) FDiv(dest, a, c Value) { b.emit(OpFDiv, dest, a, c) }
func (b *Builder) IMod(dest, a, c Value) { b.emit(OpIMod, dest, a, c) }

func (b *Builder) Not(dest, src Value) { b.emit(OpNot, dest, src) }
func (b *Builder) INeg(dest, src Value) { b.emit(OpINeg, dest, src) }
func (b *Builder) FNeg(dest, src Value) { b.emit(OpFNeg, dest, src) }
func (b *Builder) Assign(dest, src Value) { b.emit(OpAssign, dest, src) }
func (b *Builder) Cast(dest, src Value) { b.emit(OpCast, dest, src) }

func (b *Builder) CmpEq(dest, a, c Value) { b.emit(OpCmpEq, dest, a, c) }
func (b *Builder) CmpLt(dest, a, c Value) { b.emit(OpCmpLt, dest, a, c) }
func (b *Builder) CmpLte(dest, a, c Value) { b.emit(OpCmpLte, dest, a, c) }
func (b *Builder) CmpGt(dest, a, c Value) { b.emit(OpCmpGt, dest, a, c) }
func (b *Builder) CmpGte(dest, a, c Value) { b.emit(OpCmpGte, dest, a, c) }

func (b *Builder) Ret(v Value) { b.emit(OpRet, v) }

func (b *Builder) StrCat(dest, a, c Value) { b.emit(OpStrCat, dest, a, c) }

func (b *Builder) PropGet(dest, self Value, propName string) {
	b.emit(OpPropGet, dest, self, Str(propName))
}
func (b *Builder) PropSet(self Value, propName string, v Value) {
	b.emit(OpPropSet, self, Str(propName), v)
}

func (b *Builder) ArrayCreate(dest, size Value) { b.emit(OpArrayCreate, dest, size) }
func (b *Builder) ArrayLength(dest, arr Value)  { b.emit(OpArrayLength, dest, arr) }
func (b *Builder) ArrayGetElement(dest, arr, idx Value) {
	b.emit(OpArrayGetElement, dest, arr, idx)
}
func (b *Builder) ArraySetElement(arr, idx, v Value) {
	b.emit(OpArraySetElement, arr, idx, v)
}
func (b *Builder) ArrayFindElement(dest, arr, v, startIdx Value) {
	b.emit(OpArrayFindElement, dest, arr, v, startIdx)
}
func (b *Builder) ArrayRFindElement(dest, arr, v, startIdx Value) {
	b.emit(OpArrayRFindElement, dest, arr, v, startIdx)
}

func (b *Builder) Is(dest, v Value, typeName string) { b.emit(OpIs, dest, v, Str(typeName)) }

func (b *Builder) StructCreate(dest Value) { b.emit(OpStructCreate, dest) }
func (b *Builder) StructGet(dest, s Value, member string) {
	b.emit(OpStructGet, dest, s, Str(member))
}
func (b *Builder) StructSet(s Value, member string, v Value) {
	b.emit(OpStructSet, s, Str(member), v)
}
func (b *Builder) ArrayFindStruct(dest, arr Value, member string, v, startIdx Value) {
	b.emit(OpArrayFindStruct, dest, arr, Str(member), v, startIdx)
}
func (b *Builder) ArrayRFindStruct(dest, arr Value, member string, v, startIdx Value) {
	b.emit(OpArrayRFindStruct, dest, arr, Str(member), v, startIdx)
}

func (b *Builder) ArrayAdd(arr, v, count Value)    { b.emit(OpArrayAdd, arr, v, count) }
func (b *Builder) ArrayInsert(arr, v, idx Value)   { b.emit(OpArrayInsert, arr, v, idx) }
func (b *Builder) ArrayRemoveLast(arr Value)       { b.emit(OpArrayRemoveLast, arr) }
func (b *Builder) ArrayRemove(arr, idx, count Value) { b.emit(OpArrayRemove, arr, idx, count) }
func (b *Builder) ArrayClear(arr Value)            { b.emit(OpArrayClear, arr) }

func (b *Builder) Jmp(l *Label)               { b.emit(OpJmp, LabelValue(l)) }
func (b *Builder) JmpT(cond Value, l *Label)  { b.emit(OpJmpT, cond, LabelValue(l)) }
func (b *Builder) JmpF(cond Value, l *Label)  { b.emit(OpJmpF, cond, LabelValue(l)) }

// CallMethod emits a virtual dispatch call: methodName on self, storing its
// result in dest (ignored by the runtime when dest is None), followed by
// the variadic call arguments.
func (b *Builder) CallMethod(methodName string, self, dest Value, args ...Value) {
	full := append([]Value{Str(methodName), self, dest}, args...)
	b.emit(OpCallMethod, full...)
}

// CallParent emits a call to the named method on self's parent state/type.
func (b *Builder) CallParent(methodName string, self, dest Value, args ...Value) {
	full := append([]Value{Str(methodName), self, dest}, args...)
	b.emit(OpCallParent, full...)
}

// CallStatic emits a call to a static (global) function on typeName.
func (b *Builder) CallStatic(typeName, methodName string, dest Value, args ...Value) {
	full := append([]Value{Str(typeName), Str(methodName), dest}, args...)
	b.emit(OpCallStatic, full...)
}
