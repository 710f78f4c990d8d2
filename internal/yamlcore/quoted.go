package yamlcore

import (
	"strconv"
	"strings"
)

// parseDoubleQuoted parses a double-quoted scalar, honoring C-style escapes
// (\n, \t, \", \\, \uXXXX, \xXX) and line-folding: an unescaped newline
// folds to a space (a blank line to a literal newline), while a
// backslash-escaped newline is a pure continuation consuming the next
// line's leading whitespace with no folded space.
func parseDoubleQuoted(cur *cursor) (*Value, error) {
	if cur.peek() != '"' {
		return nil, cur.errorf("expected '\"'")
	}
	cur.advance()

	var b strings.Builder
	for {
		r := cur.peek()
		switch {
		case r == -1:
			return nil, cur.errorf("unterminated double-quoted scalar")
		case r == '"':
			cur.advance()
			return newString(b.String()), nil
		case r == '\\':
			cur.advance()
			esc := cur.peek()
			switch esc {
			case 'n':
				b.WriteByte('\n')
				cur.advance()
			case 't':
				b.WriteByte('\t')
				cur.advance()
			case 'r':
				b.WriteByte('\r')
				cur.advance()
			case '"':
				b.WriteByte('"')
				cur.advance()
			case '\\':
				b.WriteByte('\\')
				cur.advance()
			case '0':
				b.WriteByte(0)
				cur.advance()
			case 'u':
				cur.advance()
				code, err := readHexEscape(cur, 4)
				if err != nil {
					return nil, err
				}
				b.WriteRune(rune(code))
			case 'x':
				cur.advance()
				code, err := readHexEscape(cur, 2)
				if err != nil {
					return nil, err
				}
				b.WriteRune(rune(code))
			case '\n':
				// Escaped line break: a pure continuation. Discard the
				// newline and the next line's leading whitespace, with
				// no folded space.
				cur.advance()
				for cur.peek() == ' ' || cur.peek() == '\t' {
					cur.advance()
				}
			default:
				b.WriteRune(esc)
				cur.advance()
			}
		case r == '\n':
			foldQuotedNewline(cur, &b)
		default:
			b.WriteRune(r)
			cur.advance()
		}
	}
}

// foldQuotedNewline folds an unescaped newline inside a quoted scalar: the
// cursor sits on the newline. A single line break becomes a space; each
// additional (blank) line break becomes a literal newline instead. Leading
// whitespace on the line the scalar resumes on is stripped.
func foldQuotedNewline(cur *cursor, b *strings.Builder) {
	cur.advance()
	blank := 0
	for {
		for cur.peek() == ' ' || cur.peek() == '\t' {
			cur.advance()
		}
		if cur.peek() != '\n' {
			break
		}
		cur.advance()
		blank++
	}
	if blank == 0 {
		b.WriteByte(' ')
		return
	}
	for i := 0; i < blank; i++ {
		b.WriteByte('\n')
	}
}

func readHexEscape(cur *cursor, digits int) (int64, error) {
	start := cur.pos
	for i := 0; i < digits; i++ {
		if cur.eof() {
			return 0, cur.errorf("truncated hex escape")
		}
		cur.advance()
	}
	code, err := strconv.ParseInt(cur.src[start:cur.pos], 16, 32)
	if err != nil {
		return 0, cur.errorf("invalid hex escape: %v", err)
	}
	return code, nil
}

// parseSingleQuoted parses a single-quoted scalar, where the only escape is
// '' for a literal single quote, and an embedded newline folds to a space
// (a blank line to a literal newline) the same way a double-quoted
// scalar's unescaped newlines do.
func parseSingleQuoted(cur *cursor) (*Value, error) {
	if cur.peek() != '\'' {
		return nil, cur.errorf("expected '\\''")
	}
	cur.advance()

	var b strings.Builder
	for {
		r := cur.peek()
		switch {
		case r == -1:
			return nil, cur.errorf("unterminated single-quoted scalar")
		case r == '\'':
			cur.advance()
			if cur.peek() == '\'' {
				b.WriteByte('\'')
				cur.advance()
				continue
			}
			return newString(b.String()), nil
		case r == '\n':
			foldQuotedNewline(cur, &b)
		default:
			b.WriteRune(r)
			cur.advance()
		}
	}
}

// parseMaybeMappingAfterKey is reached after a quoted scalar at block-node
// position: if it is followed by ": " (or end of line), it is the first key
// of a block mapping; otherwise it is the node's scalar value in its own
// right.
func parseMaybeMappingAfterKey(cur *cursor, indent int, keyText string, quoted bool, pctx ParametricContext, pc *parseCtx, anchor, tag string) (*Value, error) {
	cur.skipSpaces()
	if cur.peek() == ':' && (cur.peekAt(1) == ' ' || cur.peekAt(1) == -1 || cur.peekAt(1) == '\n') {
		cur.advance()
		cur.skipSpaces()

		rest := strings.TrimRight(cur.restOfLine(), " \t")
		trimmedRest := strings.TrimLeft(rest, " ")
		var (
			val *Value
			err error
		)
		if rest == "" || strings.HasPrefix(trimmedRest, "#") {
			cur.consumeToLineEnd()
			val, err = parseNode(cur, indent+1, BlockIn, pc)
		} else {
			val, err = parseInlineValue(cur, pc, indent)
		}
		if err != nil {
			return nil, err
		}

		entries := []MapEntry{{Key: newString(keyText), Value: val}}
		for {
			nextKey, nextVal, ok, err := parseOneMappingEntry(cur, indent, pc, false)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			entries = append(entries, MapEntry{Key: nextKey, Value: nextVal})
		}
		return finish(&Value{Kind: KindMapping, Map: entries}, anchor, pc), nil
	}

	cur.consumeToLineEnd()
	return finish(resolvePlainOrTagged(pc.schema, tag, keyText), anchor, pc), nil
}
