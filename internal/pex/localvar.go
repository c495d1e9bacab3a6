package pex

// LocalVariable is a named function-local slot: either a stable
// surface-language local (spec §4.E "alloc_local") or a compiler-synthesized
// temporary (spec GLOSSARY "Temporary local").
type LocalVariable struct {
	Name string
	Type string
}
