// Package pex implements the bytecode function builder: streaming
// instruction emission, a pool of reusable temporary locals, label
// fixup, break/continue scopes, and the instruction->source-line debug
// map (spec §4.E).
package pex

// Kind is the closed set of argument kinds an instruction slot can hold
// (spec §3 "Instruction").
type Kind int

const (
	// KindInvalid marks a Value that was never assigned a real kind; using
	// one as an instruction argument is always a compiler bug (spec §9
	// "Invalid variant").
	KindInvalid Kind = iota
	KindNone
	KindInteger
	KindFloat
	KindBoolean
	KindString
	KindIdentifier
	KindLabel
	// KindTemporaryVar is a handle into the owning Builder's tempVarRefs
	// table, not a direct pointer to the local it will eventually bind to
	// (spec §9's redesign of the source's shared-mutable back-pointer).
	KindTemporaryVar
)

// Value is the tagged argument a builder instruction carries in each of
// its fixed/variadic slots.
type Value struct {
	Kind Kind

	Int     int32
	Float32 float32
	Bool    bool
	Str     string
	Ident   string
	Label   *Label

	// TempHandle indexes into the owning Builder's tempVarRefs table when
	// Kind == KindTemporaryVar.
	TempHandle int
}

// Invalid is the zero Value; also returned explicitly by callers that need
// to represent "no value produced" from a void-returning call (spec §9).
func Invalid() Value { return Value{Kind: KindInvalid} }

// None is the Papyrus "None" literal.
func None() Value { return Value{Kind: KindNone} }

// Int wraps a signed 32-bit integer literal.
func Int(v int32) Value { return Value{Kind: KindInteger, Int: v} }

// Float wraps a 32-bit float literal.
func Float(v float32) Value { return Value{Kind: KindFloat, Float32: v} }

// Bool wraps a boolean literal.
func Bool(v bool) Value { return Value{Kind: KindBoolean, Bool: v} }

// Str wraps a string literal. The builder doesn't intern it (that's the
// bytecode-level string table owned by the external PexFile, spec §6); it
// just carries the text through to wherever PopulateFunction hands
// instructions off.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// Ident wraps a bound identifier: a named local, parameter, or property.
func Ident(name string) Value { return Value{Kind: KindIdentifier, Ident: name} }

// LabelValue wraps a (possibly still-unresolved) Label as an instruction
// argument, later lowered to a relative offset by PopulateFunction.
func LabelValue(l *Label) Value { return Value{Kind: KindLabel, Label: l} }

// IsValid reports whether v is anything other than the Invalid sentinel.
func (v Value) IsValid() bool { return v.Kind != KindInvalid }
