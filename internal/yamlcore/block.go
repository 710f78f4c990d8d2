package yamlcore

import "strings"

// parseBlockMapping is the BlockMappingFirstKey/Key/Value state group: it
// repeatedly parses "key: value" entries at exactly indent, returning once
// the next line dedents past indent or the document ends.
func parseBlockMapping(cur *cursor, indent int, pc *parseCtx) (*Value, error) {
	pc.states.push(stateBlockMappingFirstKey)
	defer pc.states.pop()

	var entries []MapEntry
	isFirst := true
	for {
		key, val, ok, err := parseOneMappingEntry(cur, indent, pc, isFirst)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		entries = append(entries, MapEntry{Key: key, Value: val})
		isFirst = false
	}
	return &Value{Kind: KindMapping, Map: entries}, nil
}

// parseOneMappingEntry parses a single "key: value" pair. When isFirst is
// false it first checks the next line is still at indent, returning
// ok=false (without error) if the mapping has ended.
func parseOneMappingEntry(cur *cursor, indent int, pc *parseCtx, isFirst bool) (key, val *Value, ok bool, err error) {
	if !isFirst {
		cur.skipBlankAndCommentLines()
		if cur.eof() {
			return nil, nil, false, nil
		}
		li := cur.currentIndent()
		if li != indent {
			return nil, nil, false, nil
		}
		if isDocumentMarker(cur, "---") || isDocumentMarker(cur, "...") {
			return nil, nil, false, nil
		}
		for i := 0; i < li; i++ {
			cur.advance()
		}
	}

	key, err = parseMappingKey(cur)
	if err != nil {
		return nil, nil, false, err
	}
	cur.skipSpaces()
	if cur.peek() != ':' {
		return nil, nil, false, cur.errorf("expected ':' after mapping key")
	}
	cur.advance()
	cur.skipSpaces()

	rest := strings.TrimRight(cur.restOfLine(), " \t")
	trimmedRest := strings.TrimLeft(rest, " ")
	if rest == "" || strings.HasPrefix(trimmedRest, "#") {
		cur.consumeToLineEnd()
		val, err = parseNode(cur, indent+1, BlockIn, pc)
	} else {
		val, err = parseInlineValue(cur, pc, indent)
	}
	if err != nil {
		return nil, nil, false, err
	}
	return key, val, true, nil
}

// parseMappingKey reads a mapping key: a quoted scalar, or a plain run of
// characters up to (but not including) the key-terminating ':'.
func parseMappingKey(cur *cursor) (*Value, error) {
	switch cur.peek() {
	case '"':
		return parseDoubleQuoted(cur)
	case '\'':
		return parseSingleQuoted(cur)
	default:
		start := cur.pos
		for {
			r := cur.peek()
			if r == -1 || r == '\n' {
				break
			}
			if r == ':' && (cur.peekAt(1) == ' ' || cur.peekAt(1) == -1 || cur.peekAt(1) == '\n') {
				break
			}
			cur.advance()
		}
		text := strings.TrimRight(cur.src[start:cur.pos], " \t")
		return newString(text), nil
	}
}

// parseBlockSequence is the BlockSequenceEntry state: repeatedly parses
// "- value" entries at exactly indent.
func parseBlockSequence(cur *cursor, indent int, pc *parseCtx) (*Value, error) {
	pc.states.push(stateBlockSequenceEntry)
	defer pc.states.pop()

	var items []*Value
	isFirst := true
	for {
		if !isFirst {
			cur.skipBlankAndCommentLines()
			if cur.eof() {
				break
			}
			li := cur.currentIndent()
			if li != indent {
				break
			}
			if isDocumentMarker(cur, "---") || isDocumentMarker(cur, "...") {
				break
			}
			for i := 0; i < li; i++ {
				cur.advance()
			}
		}
		isFirst = false

		if cur.peek() != '-' {
			return nil, cur.errorf("expected '-' sequence entry indicator")
		}
		cur.advance()
		if cur.peek() == ' ' {
			cur.skipSpaces()
		}

		rest := strings.TrimRight(cur.restOfLine(), " \t")
		trimmedRest := strings.TrimLeft(rest, " ")
		var (
			v   *Value
			err error
		)
		if rest == "" || strings.HasPrefix(trimmedRest, "#") {
			cur.consumeToLineEnd()
			v, err = parseNode(cur, indent+1, BlockIn, pc)
		} else if looksLikeMappingLine(cur) {
			// Compact "- key: value" entry: the mapping's indent is
			// measured from this line's content column, one past '-'.
			v, err = parseBlockMapping(cur, indent+2, pc)
		} else {
			v, err = parseInlineValue(cur, pc, indent)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return &Value{Kind: KindSequence, Seq: items}, nil
}

// parseInlineValue parses a node that appears after "key: " or "- " on the
// same source line: a flow collection, an alias, a quoted scalar, or a
// plain scalar running to end of line (folding onto subsequent lines
// indented more than minIndent, the enclosing mapping/sequence's indent).
func parseInlineValue(cur *cursor, pc *parseCtx, minIndent int) (*Value, error) {
	var anchor, tag string
	for {
		switch cur.peek() {
		case '&':
			cur.advance()
			anchor = readBareToken(cur)
			cur.skipSpaces()
			continue
		case '!':
			cur.advance()
			tag = readTagShorthand(cur)
			cur.skipSpaces()
			continue
		}
		break
	}

	// Node properties alone on the line: the node itself is the nested
	// block that follows on the next, more-indented lines.
	if rest := strings.TrimSpace(cur.restOfLine()); (anchor != "" || tag != "") && (rest == "" || strings.HasPrefix(rest, "#")) {
		cur.consumeToLineEnd()
		v, err := parseNode(cur, minIndent+1, BlockIn, pc)
		if err != nil {
			return nil, err
		}
		return finish(v, anchor, pc), nil
	}

	switch cur.peek() {
	case '*':
		cur.advance()
		name := readBareToken(cur)
		cur.consumeToLineEnd()
		return resolveAlias(cur, pc, name)
	case '[':
		v, err := parseFlowSequence(cur, pc)
		if err != nil {
			return nil, err
		}
		cur.consumeToLineEnd()
		return finish(v, anchor, pc), nil
	case '{':
		v, err := parseFlowMapping(cur, pc)
		if err != nil {
			return nil, err
		}
		cur.consumeToLineEnd()
		return finish(v, anchor, pc), nil
	case '"':
		v, err := parseDoubleQuoted(cur)
		if err != nil {
			return nil, err
		}
		cur.consumeToLineEnd()
		return finish(v, anchor, pc), nil
	case '\'':
		v, err := parseSingleQuoted(cur)
		if err != nil {
			return nil, err
		}
		cur.consumeToLineEnd()
		return finish(v, anchor, pc), nil
	case '|', '>':
		v, err := parseBlockScalar(cur, minIndent)
		if err != nil {
			return nil, err
		}
		return finish(v, anchor, pc), nil
	default:
		text := readPlainScalarLine(cur, minIndent)
		return finish(resolvePlainOrTagged(pc.schema, tag, text), anchor, pc), nil
	}
}

// readPlainScalarLine reads an unquoted scalar starting on the current
// line, stopping early at a comment (a '#' preceded by whitespace). It
// then folds in any subsequent lines indented more than minIndent that
// don't themselves start a new block construct (a mapping key, a
// sequence entry, or a document boundary marker): consecutive
// non-blank continuation lines join with a single space, and each run
// of blank lines between them collapses to that many literal newlines,
// the same folding rule flow.go's joinBlockScalarLines uses for folded
// block scalars.
func readPlainScalarLine(cur *cursor, minIndent int) string {
	lines := []string{readOnePlainLine(cur)}

	for {
		mark := *cur
		blankRuns := 0
		for !cur.eof() {
			indent := cur.currentIndent()
			atEOL := cur.pos+indent >= len(cur.src) || cur.src[cur.pos+indent] == '\n'
			if !atEOL {
				break
			}
			for !cur.eof() && cur.peek() != '\n' {
				cur.advance()
			}
			if !cur.eof() {
				cur.advance()
			}
			blankRuns++
		}
		if cur.eof() {
			*cur = mark
			break
		}

		indent := cur.currentIndent()
		if indent <= minIndent {
			*cur = mark
			break
		}
		for i := 0; i < indent; i++ {
			cur.advance()
		}
		if cur.peek() == '-' && (cur.peekAt(1) == ' ' || cur.peekAt(1) == -1 || cur.peekAt(1) == '\n') {
			*cur = mark
			break
		}
		if isDocumentMarker(cur, "---") || isDocumentMarker(cur, "...") {
			*cur = mark
			break
		}
		if looksLikeMappingLine(cur) {
			*cur = mark
			break
		}

		for i := 0; i < blankRuns; i++ {
			lines = append(lines, "")
		}
		lines = append(lines, readOnePlainLine(cur))
	}

	return foldPlainLines(lines)
}

// isDocumentMarker reports whether the cursor sits at a "---" or "..."
// document boundary marker: the token followed by whitespace, newline,
// or EOF, not merely as a prefix of a longer plain scalar.
func isDocumentMarker(cur *cursor, marker string) bool {
	if !strings.HasPrefix(cur.src[cur.pos:], marker) {
		return false
	}
	after := cur.peekAt(len(marker))
	return after == -1 || after == ' ' || after == '\t' || after == '\n'
}

// readOnePlainLine reads one line's worth of plain-scalar text from the
// cursor's current position, stopping early at a whitespace-preceded
// comment, and consumes through the line's trailing newline.
func readOnePlainLine(cur *cursor) string {
	start := cur.pos
	prevSpace := false
	for {
		r := cur.peek()
		if r == -1 || r == '\n' {
			break
		}
		if r == '#' && prevSpace {
			break
		}
		prevSpace = r == ' ' || r == '\t'
		cur.advance()
	}
	line := cur.src[start:cur.pos]
	cur.consumeToLineEnd()
	return strings.TrimSpace(line)
}

// foldPlainLines joins a plain scalar's lines per YAML line-folding: a
// single newline between non-blank lines becomes a space, and each
// blank line becomes a literal newline. Unlike a block scalar's body,
// a folded plain scalar carries no trailing newline.
func foldPlainLines(lines []string) string {
	var b strings.Builder
	for i, l := range lines {
		if l == "" {
			b.WriteByte('\n')
			continue
		}
		if i > 0 && lines[i-1] != "" {
			b.WriteByte(' ')
		}
		b.WriteString(l)
	}
	return b.String()
}
