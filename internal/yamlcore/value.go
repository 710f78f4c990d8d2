// Package yamlcore implements a YAML 1.2 parser core from scratch: a
// fast path for simple single-line documents, a recursive-descent parser
// for everything else, schema-driven scalar
// resolution (Failsafe/JSON/Core), and anchor/alias resolution bounded
// against billion-laughs blowups.
package yamlcore

// Kind enumerates the resolved shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
	// KindBadValue marks a node whose explicit tag conversion failed
	// (e.g. !!int applied to "not a number"); the original string is
	// retained for diagnostics.
	KindBadValue
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindBadValue:
		return "bad_value"
	default:
		return "unknown"
	}
}

// MapEntry preserves mapping key order, since YAML mappings are ordered on
// the wire even though their semantics are unordered.
type MapEntry struct {
	Key   *Value
	Value *Value
}

// Value is a single resolved YAML node. Exactly one of the typed fields is
// meaningful for a given Kind.
type Value struct {
	Kind Kind

	Bool bool
	Int  int64
	// Real holds a resolved float scalar's original source lexeme (e.g.
	// "+.inf", "3.140") rather than a converted float64, so the round
	// trip through this tree never loses precision or reformats the
	// text a caller wrote. Callers that need the numeric value parse it
	// on demand via parseRealLexeme.
	Real string
	Str  string
	Seq  []*Value
	Map  []MapEntry

	// Tag is the resolved tag URI, when one was explicit or inferred
	// (e.g. "tag:yaml.org,2002:str"). Empty when untagged.
	Tag string
	// Anchor is the anchor name this node was registered under, if any.
	Anchor string

	Line, Column int
}

func newNull() *Value           { return &Value{Kind: KindNull} }
func newBool(b bool) *Value     { return &Value{Kind: KindBool, Bool: b} }
func newInt(i int64) *Value     { return &Value{Kind: KindInt, Int: i} }
func newReal(text string) *Value { return &Value{Kind: KindFloat, Real: text} }
func newString(s string) *Value { return &Value{Kind: KindString, Str: s} }

// Get returns the value mapped to a string key in a KindMapping node, or
// nil if key is absent or v is not a mapping.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Kind != KindMapping {
		return nil
	}
	for _, e := range v.Map {
		if e.Key.Kind == KindString && e.Key.Str == key {
			return e.Value
		}
	}
	return nil
}

// IsNull reports whether v is absent or resolved to null.
func (v *Value) IsNull() bool {
	return v == nil || v.Kind == KindNull
}
