package yamlcore

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf16"
)

// decodeEncoding strips a byte-order mark and transcodes UTF-16 input to
// UTF-8, per the encoding-detection rule at the byte-stream entry point. It
// returns a fatal error for an odd-length UTF-16 payload.
func decodeEncoding(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}):
		return string(raw[3:]), nil
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		return utf16ToString(raw[2:], false)
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		return utf16ToString(raw[2:], true)
	default:
		return string(raw), nil
	}
}

func utf16ToString(raw []byte, bigEndian bool) (string, error) {
	if len(raw)%2 != 0 {
		return "", newParseError(1, 1, 0, "odd-length UTF-16 payload")
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		if bigEndian {
			units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
		} else {
			units[i] = uint16(raw[2*i+1])<<8 | uint16(raw[2*i])
		}
	}
	return string(utf16.Decode(units)), nil
}

// document is one parsed document plus the raw warnings accumulated while
// parsing it.
type document struct {
	Value    *Value
	Warnings []string
}

// splitAndParseAll parses every document in src, handling %YAML/%TAG
// directives and --- / ... boundaries per document.
func splitAndParseAll(src string) ([]document, error) {
	cur := newCursor(src)
	var docs []document

	for {
		schema := SchemaCore
		if err := consumeDirectives(cur, &schema); err != nil {
			return nil, err
		}

		cur.skipBlankAndCommentLines()
		if cur.eof() {
			break
		}
		if strings.HasPrefix(cur.src[cur.pos:], "---") {
			after := cur.peekAt(3)
			if after == -1 || after == ' ' || after == '\n' || after == '\t' {
				cur.advance()
				cur.advance()
				cur.advance()
				cur.skipSpaces()
			}
		}

		pc := newParseCtx(schema)
		v, err := parseDocumentBody(cur, pc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, document{Value: v, Warnings: pc.warnings})

		cur.skipBlankAndCommentLines()
		if strings.HasPrefix(cur.src[cur.pos:], "...") {
			cur.advance()
			cur.advance()
			cur.advance()
		}
		cur.skipBlankAndCommentLines()
		if cur.eof() {
			break
		}
		// Content left over without a fresh "---" still starts another
		// document: the single-doc API reports it as an error, and the
		// multi-doc API returns it as a document of its own.
	}
	return docs, nil
}

// consumeDirectives consumes zero or more leading "%..." directive lines,
// updating schema on a recognized %YAML directive and silently accepting
// any other reserved directive name. %TAG directives are recognized but
// since this package only ever expands the "!!" and default "!" handles,
// a custom handle/prefix pair is accepted and otherwise ignored. An
// unsupported %YAML version (anything but 1.1 or 1.2) is a fatal error.
func consumeDirectives(cur *cursor, schema *Schema) error {
	for {
		cur.skipBlankAndCommentLines()
		if cur.eof() || cur.peek() != '%' {
			return nil
		}
		line := cur.restOfLine()
		lineErr := cur.errorf("invalid %%YAML directive: %q", line)
		cur.consumeToLineEnd()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "%YAML":
			if len(fields) < 2 {
				return lineErr
			}
			major, minor, ok := splitVersion(fields[1])
			if !ok || major != 1 || (minor != 1 && minor != 2) {
				return lineErr
			}
			if minor == 2 {
				*schema = SchemaCore
			} else {
				*schema = SchemaFailsafe
			}
		case "%TAG":
			// Per-document handle registration: accepted, not tracked
			// beyond the built-in "!"/"!!" handles this package resolves.
		default:
			// Reserved directive: silently accepted.
		}
	}
}

func splitVersion(s string) (major, minor int, ok bool) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	m, err1 := strconv.Atoi(parts[0])
	n, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return m, n, true
}
