package pex

import (
	"fmt"

	"github.com/papyc-lang/papyc/internal/diag"
	"github.com/papyc-lang/papyc/internal/token"
)

// maxTempIndex bounds the monotonic ::tempN counter (spec §4.E "a
// monotonic counter capped at 65535; exhaustion is fatal").
const maxTempIndex = 65535

// maxDebugLine is the largest source line the instruction->line debug map
// can record (spec §6 "Debug output contract").
const maxDebugLine = 65535

// Instruction is one emitted bytecode operation: an opcode plus its fixed
// (and for call opcodes, variadic-tail) arguments (spec §3 "Instruction").
type Instruction struct {
	Opcode Opcode
	Args   []Value
}

// Function is what PopulateFunction hands back: the finalized instruction
// stream, the locals table (named locals plus every synthesized temp), and
// the parallel debug line map (spec §6).
type Function struct {
	Instructions       []Instruction
	Locals             []LocalVariable
	InstructionLineMap []uint16
}

type tempVarRefEntry struct {
	typeName  string
	longLived bool
	bound     bool
	local     LocalVariable
}

type tempDescriptor struct {
	freeVars []LocalVariable
}

type breakContinueScope struct {
	Break    *Label
	Continue *Label
}

// Builder accumulates one function body's instructions. It is not safe for
// concurrent use; spec §5 gives each file-compile worker (and each function
// within it) its own Builder.
type Builder struct {
	diagCtx *diag.Context

	instructions         []Instruction
	instructionLocations []token.Location
	currentLocation      token.Location

	locals        []LocalVariable
	labels        []*Label
	tempVarRefs   []tempVarRefEntry
	tempPool      map[string]*tempDescriptor
	nextTempIndex int

	breakContinueStack []breakContinueScope
}

// NewBuilder creates an empty Builder. diagCtx must outlive the Builder and
// must not be shared with any concurrently building Builder.
func NewBuilder(diagCtx *diag.Context) *Builder {
	return &Builder{diagCtx: diagCtx, tempPool: make(map[string]*tempDescriptor)}
}

// SetLocation sets the source location attributed to every instruction
// emitted from this point until the next SetLocation call.
func (b *Builder) SetLocation(loc token.Location) {
	b.currentLocation = loc
}

// AllocLabel creates a new unresolved Label.
func (b *Builder) AllocLabel() *Label {
	l := &Label{targetIdx: -1}
	b.labels = append(b.labels, l)
	return l
}

// PlaceLabel positions l at the index of the next-to-be-emitted
// instruction. Placing the same Label twice is fatal (spec §4.E
// "place_label").
func (b *Builder) PlaceLabel(l *Label) {
	if l.placed {
		b.diagCtx.LogicalFatal("pex: label placed more than once")
		return
	}
	l.targetIdx = len(b.instructions)
	l.placed = true
}

// AllocTemp returns a TemporaryVar placeholder of the given type. Its
// backing local is chosen, lazily, the first time it is used as an
// instruction's destination argument (spec §4.E "alloc_temp").
func (b *Builder) AllocTemp(typeName string) Value {
	idx := len(b.tempVarRefs)
	b.tempVarRefs = append(b.tempVarRefs, tempVarRefEntry{typeName: typeName})
	return Value{Kind: KindTemporaryVar, TempHandle: idx}
}

// AllocLongLivedTemp is AllocTemp for a temp that must survive past a
// single read: it is never auto-released on use and must be returned to
// the pool explicitly via FreeLongLivedTemp.
func (b *Builder) AllocLongLivedTemp(typeName string) Value {
	idx := len(b.tempVarRefs)
	b.tempVarRefs = append(b.tempVarRefs, tempVarRefEntry{typeName: typeName, longLived: true})
	return Value{Kind: KindTemporaryVar, TempHandle: idx}
}

// FreeLongLivedTemp returns v, previously obtained from AllocLongLivedTemp,
// to the pool for its type. Freeing a temp that was never written (so has
// no backing local yet) is a no-op: nothing was ever handed out of the
// pool for it.
func (b *Builder) FreeLongLivedTemp(v Value) {
	if v.Kind != KindTemporaryVar {
		b.diagCtx.LogicalFatal("pex: FreeLongLivedTemp called on a non-temporary value")
		return
	}
	entry := &b.tempVarRefs[v.TempHandle]
	if !entry.longLived {
		b.diagCtx.LogicalFatal("pex: FreeLongLivedTemp called on a temp not allocated as long-lived")
		return
	}
	if entry.bound {
		b.releasePoolLocal(entry.typeName, entry.local)
	}
}

// AllocLocal declares a stable, named local that is never pooled or
// reused (spec §4.E "alloc_local").
func (b *Builder) AllocLocal(name, typeName string) Value {
	b.locals = append(b.locals, LocalVariable{Name: name, Type: typeName})
	return Ident(name)
}

// PushBreakContinueScope pushes the labels `break`/`continue` should jump
// to inside the loop or switch currently being lowered.
func (b *Builder) PushBreakContinueScope(breakLabel, continueLabel *Label) {
	b.breakContinueStack = append(b.breakContinueStack, breakContinueScope{Break: breakLabel, Continue: continueLabel})
}

// PopBreakContinueScope pops the innermost break/continue scope.
func (b *Builder) PopBreakContinueScope() {
	if len(b.breakContinueStack) == 0 {
		b.diagCtx.LogicalFatal("pex: popped an empty break/continue scope stack")
		return
	}
	b.breakContinueStack = b.breakContinueStack[:len(b.breakContinueStack)-1]
}

// CurrentBreakLabel returns the innermost enclosing loop/switch's break
// target.
func (b *Builder) CurrentBreakLabel() *Label {
	return b.breakContinueStack[len(b.breakContinueStack)-1].Break
}

// CurrentContinueLabel returns the innermost enclosing loop's continue
// target.
func (b *Builder) CurrentContinueLabel() *Label {
	return b.breakContinueStack[len(b.breakContinueStack)-1].Continue
}

func (b *Builder) allocPoolLocal(typeName string) LocalVariable {
	desc := b.tempPool[typeName]
	if desc == nil {
		desc = &tempDescriptor{}
		b.tempPool[typeName] = desc
	}
	if n := len(desc.freeVars); n > 0 {
		local := desc.freeVars[n-1]
		desc.freeVars = desc.freeVars[:n-1]
		return local
	}
	if b.nextTempIndex > maxTempIndex {
		b.diagCtx.LogicalFatal("pex: exhausted the ::tempN name budget")
	}
	local := LocalVariable{Name: fmt.Sprintf("::temp%d", b.nextTempIndex), Type: typeName}
	b.nextTempIndex++
	b.locals = append(b.locals, local)
	return local
}

func (b *Builder) releasePoolLocal(typeName string, local LocalVariable) {
	desc := b.tempPool[typeName]
	if desc == nil {
		desc = &tempDescriptor{}
		b.tempPool[typeName] = desc
	}
	desc.freeVars = append(desc.freeVars, local)
}

// fixupArgs implements instruction finalization (spec §4.E "fixup"):
// resolve already-bound temporaries to identifiers and release them back
// to the pool, bind the destination slot's temporary if it has one, and
// fatal on anything left inconsistent.
func (b *Builder) fixupArgs(op Opcode, args []Value) {
	for i := range args {
		switch args[i].Kind {
		case KindInvalid:
			b.diagCtx.LogicalFatal("pex: attempted to use an invalid value in a %s instruction", op)
		case KindTemporaryVar:
			entry := &b.tempVarRefs[args[i].TempHandle]
			if entry.bound {
				args[i] = Ident(entry.local.Name)
				if !entry.longLived {
					b.releasePoolLocal(entry.typeName, entry.local)
				}
			}
		}
	}

	if dIdx := destIndex(op); dIdx >= 0 && dIdx < len(args) && args[dIdx].Kind == KindTemporaryVar {
		entry := &b.tempVarRefs[args[dIdx].TempHandle]
		local := b.allocPoolLocal(entry.typeName)
		entry.bound = true
		entry.local = local
		args[dIdx] = Ident(local.Name)
	}

	for i := range args {
		if args[i].Kind == KindTemporaryVar {
			b.diagCtx.LogicalFatal("pex: use of a temporary value before it is assigned")
		}
	}
}

func (b *Builder) emit(op Opcode, args ...Value) {
	b.fixupArgs(op, args)
	b.instructions = append(b.instructions, Instruction{Opcode: op, Args: args})
	b.instructionLocations = append(b.instructionLocations, b.currentLocation)
}

// PopulateFunction finalizes the builder's state into a Function: label
// arguments are lowered to relative offsets, every allocated label and
// temporary is checked for completeness, and the debug line map is built
// (spec §4.E "populate_function").
func (b *Builder) PopulateFunction() *Function {
	for idx := range b.instructions {
		args := b.instructions[idx].Args
		for ai := range args {
			if args[ai].Kind != KindLabel {
				continue
			}
			if !args[ai].Label.placed {
				b.diagCtx.LogicalFatal("pex: instruction references a label that was never placed")
			}
			args[ai] = Int(int32(args[ai].Label.targetIdx - idx))
		}
	}

	for _, l := range b.labels {
		if !l.placed {
			b.diagCtx.LogicalFatal("pex: an allocated label was never placed")
		}
	}
	for _, entry := range b.tempVarRefs {
		if !entry.bound {
			b.diagCtx.LogicalFatal("pex: a temporary local was allocated but never assigned")
		}
	}

	lineMap := make([]uint16, len(b.instructionLocations))
	prevLine, hint := 0, 1
	for i, loc := range b.instructionLocations {
		line := b.diagCtx.GetLocationLine(loc, hint)
		if line < prevLine {
			line = prevLine
		}
		if line > maxDebugLine {
			b.diagCtx.LogicalFatal("pex: source file exceeds the debug line map's line limit")
		}
		lineMap[i] = uint16(line)
		prevLine = line
		hint = line
	}

	return &Function{
		Instructions:       b.instructions,
		Locals:             b.locals,
		InstructionLineMap: lineMap,
	}
}
