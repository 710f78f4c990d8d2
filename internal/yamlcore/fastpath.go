package yamlcore

import "strings"

// fastPathParse attempts to recognize a whole document as one of the
// common simple shapes (a bare scalar, or a single-line flow collection or
// mapping) without going through document-boundary/directive handling.
// It refuses — returning ok=false, never an error — the instant any
// construct is present that the full parser must handle: directives,
// multi-document markers, node properties, explicit keys, or anything
// spanning more than one line (which rules out nested indentation and
// flow-inside-block by construction).
func fastPathParse(src string) (*Value, bool) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return newNull(), true
	}
	if strings.ContainsAny(trimmed, "\n\r") {
		return nil, false
	}
	if strings.HasPrefix(trimmed, "%") || strings.HasPrefix(trimmed, "---") || strings.HasPrefix(trimmed, "...") {
		return nil, false
	}
	if strings.ContainsAny(trimmed, "&*!") {
		return nil, false
	}
	if strings.Contains(trimmed, "? ") {
		return nil, false
	}
	if strings.Contains(trimmed, "#") {
		// A trailing comment is common enough to be worth a second look,
		// but distinguishing "# in a quoted string" from a real comment
		// needs the scanner; simplest safe choice is to refuse.
		return nil, false
	}

	cur := newCursor(trimmed)
	pc := newParseCtx(SchemaCore)
	v, err := parseNode(cur, 0, BlockOut, pc)
	if err != nil || !cur.eof() || len(pc.warnings) > 0 {
		return nil, false
	}
	return v, true
}
