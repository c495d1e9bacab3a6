package token

import "github.com/papyc-lang/papyc/internal/idarena"

// Location is a half-open byte range [Start, End) into the source buffer a
// token was lexed from. Line numbers are derived lazily from this by a
// reporting context; Location itself carries no line information (spec §3
// "Token").
type Location struct {
	Start, End int
}

// Kind is the closed set of token kinds: structural, operators, literals,
// and keywords (spec §3 "Token").
type Kind int

const (
	Unknown Kind = iota

	// Structural
	EOL
	END
	LParen
	RParen
	LSquare
	RSquare
	Dot
	Comma

	// Operators
	Equal
	CmpEq
	Exclaim
	CmpNeq
	Plus
	PlusEqual
	Minus
	MinusEqual
	Mul
	MulEqual
	Div
	DivEqual
	Mod
	ModEqual
	CmpLt
	CmpLte
	CmpGt
	CmpGte
	BooleanAnd
	BooleanOr

	// Literals
	Identifier
	DocComment
	String
	Integer
	Float

	firstKeyword
	// Base (Skyrim) keywords.
	KAs
	KAuto
	KAutoReadOnly
	KBool
	KElse
	KElseIf
	KEndEvent
	KEndFunction
	KEndIf
	KEndProperty
	KEndState
	KEndWhile
	KEvent
	KExtends
	KFalse
	KFloat
	KFunction
	KGlobal
	KIf
	KImport
	KInt
	KIs
	KLength
	KNative
	KNew
	KNone
	KParent
	KProperty
	KReturn
	KScriptName
	KSelf
	KState
	KString
	KTrue
	KWhile

	// Fallout 4 / Fallout 76 additions.
	KBetaOnly
	KConst
	KCustomEvent
	KCustomEventName
	KDebugOnly
	KEndGroup
	KEndStruct
	KGroup
	KScriptEventName
	KStruct
	KVar

	// Starfield additions.
	KGuard
	KEndGuard
	KTryGuard

	// Language extension keywords.
	KBreak
	KCase
	KContinue
	KDefault
	KDo
	KEndFor
	KEndForEach
	KEndSwitch
	KFor
	KForEach
	KIn
	KLoopWhile
	KStep
	KSwitch
	KTo
	lastKeyword
)

var prettyNames = map[Kind]string{
	Unknown: "Unknown", EOL: "EOL", END: "EOF",
	LParen: "(", RParen: ")", LSquare: "[", RSquare: "]", Dot: ".", Comma: ",",
	Equal: "=", CmpEq: "==", Exclaim: "!", CmpNeq: "!=",
	Plus: "+", PlusEqual: "+=", Minus: "-", MinusEqual: "-=",
	Mul: "*", MulEqual: "*=", Div: "/", DivEqual: "/=", Mod: "%", ModEqual: "%=",
	CmpLt: "<", CmpLte: "<=", CmpGt: ">", CmpGte: ">=",
	BooleanAnd: "&&", BooleanOr: "||",
	Identifier: "Identifier", DocComment: "Documentation Comment",
	String: "String", Integer: "Integer", Float: "Float",

	KAs: "As", KAuto: "Auto", KAutoReadOnly: "AutoReadOnly", KBool: "Bool",
	KElse: "Else", KElseIf: "ElseIf", KEndEvent: "EndEvent", KEndFunction: "EndFunction",
	KEndIf: "EndIf", KEndProperty: "EndProperty", KEndState: "EndState", KEndWhile: "EndWhile",
	KEvent: "Event", KExtends: "Extends", KFalse: "False", KFloat: "Float",
	KFunction: "Function", KGlobal: "Global", KIf: "If", KImport: "Import",
	KInt: "Int", KIs: "Is", KLength: "Length", KNative: "Native", KNew: "New",
	KNone: "None", KParent: "Parent", KProperty: "Property", KReturn: "Return",
	KScriptName: "ScriptName", KSelf: "Self", KState: "State", KString: "String",
	KTrue: "True", KWhile: "While",

	KBetaOnly: "BetaOnly", KConst: "Const", KCustomEvent: "CustomEvent",
	KCustomEventName: "CustomEventName", KDebugOnly: "DebugOnly", KEndGroup: "EndGroup",
	KEndStruct: "EndStruct", KGroup: "Group", KScriptEventName: "ScriptEventName",
	KStruct: "Struct", KVar: "Var",

	KGuard: "Guard", KEndGuard: "EndGuard", KTryGuard: "TryGuard",

	KBreak: "Break", KCase: "Case", KContinue: "Continue", KDefault: "Default",
	KDo: "Do", KEndFor: "EndFor", KEndForEach: "EndForEach", KEndSwitch: "EndSwitch",
	KFor: "For", KForEach: "ForEach", KIn: "In", KLoopWhile: "LoopWhile",
	KStep: "Step", KSwitch: "Switch", KTo: "To",
}

// Pretty renders a human-readable name for k, matching the source
// compiler's prettyTokenTypeNameMap (used by diagnostics, never by the
// lexer itself).
func (k Kind) Pretty() string {
	if s, ok := prettyNames[k]; ok {
		return s
	}
	return "Unknown"
}

func (k Kind) IsKeyword() bool { return k > firstKeyword && k < lastKeyword }

// Payload is the discriminated union a literal token carries (spec §3
// "Token"). Exactly one field is meaningful, selected by the owning
// Token's Kind.
type Payload struct {
	Int   int32
	Float float32
	Ident idarena.Ref
}

// Token is the tagged record the lexer produces (spec §3 "Token").
type Token struct {
	Kind     Kind
	Location Location
	Payload  Payload
}

// Text returns the interned identifier/string/doc-comment text carried by
// Payload.Ident. Valid only for Identifier, String, and DocComment tokens.
func (t Token) Text() string { return t.Payload.Ident.String() }
