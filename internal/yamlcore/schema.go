package yamlcore

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Schema selects how plain (unquoted, untagged) scalars are resolved.
// Quoted scalars are always String regardless of the active schema.
type Schema int

const (
	// SchemaFailsafe resolves every plain scalar to String. Activated by
	// a %YAML 1.1 directive (a deliberately conservative choice — see
	// the design notes for why 1.1 maps here rather than to Core).
	SchemaFailsafe Schema = iota
	// SchemaCore is the default: the familiar YAML 1.1-ish regex set for
	// null/bool/int/float. Activated by %YAML 1.2 or no directive.
	SchemaCore
	// SchemaJSON is strict: true/false/null only, JSON numeric lexical
	// forms only.
	SchemaJSON
)

var (
	coreNull  = regexp.MustCompile(`^(~|null|Null|NULL|)$`)
	coreBool  = regexp.MustCompile(`^(true|True|TRUE|false|False|FALSE|yes|Yes|YES|no|No|NO|on|On|ON|off|Off|OFF)$`)
	coreInt   = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*|0o[0-7]+|0x[0-9a-fA-F]+)$`)
	coreFloat = regexp.MustCompile(`^[-+]?(\.inf|\.Inf|\.INF)$|^\.nan$|^\.NaN$|^\.NAN$|^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)

	jsonBool  = regexp.MustCompile(`^(true|false)$`)
	jsonInt   = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	jsonFloat = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)
)

// resolvePlainScalar converts a plain, untagged scalar's source text into
// a typed Value according to the active schema.
func resolvePlainScalar(schema Schema, text string) *Value {
	switch schema {
	case SchemaFailsafe:
		return newString(text)
	case SchemaJSON:
		return resolveJSONPlain(text)
	default:
		return resolveCorePlain(text)
	}
}

func resolveCorePlain(text string) *Value {
	if coreNull.MatchString(text) {
		return newNull()
	}
	if coreBool.MatchString(text) {
		return newBool(coreBoolValue(text))
	}
	if coreInt.MatchString(text) {
		if i, ok := parseCoreInt(text); ok {
			return newInt(i)
		}
	}
	if coreFloat.MatchString(text) {
		return newReal(text)
	}
	return newString(text)
}

func resolveJSONPlain(text string) *Value {
	switch text {
	case "null":
		return newNull()
	}
	if jsonBool.MatchString(text) {
		return newBool(text == "true")
	}
	if jsonInt.MatchString(text) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return newInt(i)
		}
	}
	if jsonFloat.MatchString(text) {
		return newReal(text)
	}
	return newString(text)
}

// parseRealLexeme converts a resolved float scalar's source lexeme
// (Value.Real) into a float64, for callers binding into an actual Go
// float field or interface{} value. It understands the YAML special
// forms (".inf", "-.inf", ".nan") that strconv.ParseFloat rejects.
func parseRealLexeme(text string) (float64, bool) {
	switch strings.ToLower(text) {
	case ".inf", "+.inf":
		return math.Inf(1), true
	case "-.inf":
		return math.Inf(-1), true
	case ".nan":
		return math.NaN(), true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f, true
	}
	return 0, false
}

func coreBoolValue(text string) bool {
	switch strings.ToLower(text) {
	case "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseCoreInt(text string) (int64, bool) {
	s := text
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var i int64
	var err error
	switch {
	case strings.HasPrefix(s, "0x"):
		i, err = strconv.ParseInt(s[2:], 16, 64)
	case strings.HasPrefix(s, "0o"):
		i, err = strconv.ParseInt(s[2:], 8, 64)
	default:
		i, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0, false
	}
	if neg {
		i = -i
	}
	return i, true
}

// applyExplicitTag forces a scalar's resolution to the tag's type,
// regardless of schema, yielding KindBadValue on conversion failure
// rather than an error (per spec: "failure yields BadValue").
func applyExplicitTag(tag, text string) *Value {
	switch tag {
	case "tag:yaml.org,2002:str":
		return newString(text)
	case "tag:yaml.org,2002:null":
		if coreNull.MatchString(text) || text == "" {
			return newNull()
		}
		return &Value{Kind: KindBadValue, Str: text, Tag: tag}
	case "tag:yaml.org,2002:bool":
		if jsonBool.MatchString(text) || coreBool.MatchString(text) {
			return newBool(coreBoolValue(text))
		}
		return &Value{Kind: KindBadValue, Str: text, Tag: tag}
	case "tag:yaml.org,2002:int":
		if i, ok := parseCoreInt(text); ok {
			return newInt(i)
		}
		return &Value{Kind: KindBadValue, Str: text, Tag: tag}
	case "tag:yaml.org,2002:float":
		if coreFloat.MatchString(text) {
			return newReal(text)
		}
		return &Value{Kind: KindBadValue, Str: text, Tag: tag}
	default:
		return newString(text)
	}
}

