package yamlcore

import "unicode/utf8"

// cursor is a rune-oriented read head over a document's source text. It is
// shared by the fast path and the full parser; neither recurses into the
// cursor itself, keeping scan depth bounded by document structure rather
// than by call-stack depth.
type cursor struct {
	src          string
	pos          int // byte offset
	line, column int // 1-indexed
}

func newCursor(src string) *cursor {
	return &cursor{src: src, line: 1, column: 1}
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

func (c *cursor) peek() rune {
	if c.eof() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r
}

func (c *cursor) peekAt(offset int) rune {
	p := c.pos
	for i := 0; i < offset && p < len(c.src); i++ {
		_, size := utf8.DecodeRuneInString(c.src[p:])
		p += size
	}
	if p >= len(c.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(c.src[p:])
	return r
}

func (c *cursor) advance() rune {
	if c.eof() {
		return -1
	}
	r, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r
}

func (c *cursor) errorf(format string, args ...interface{}) *ParseError {
	return newParseError(c.line, c.column, c.pos, format, args...)
}

// restOfLine returns the text from the cursor to (not including) the next
// newline, without consuming it.
func (c *cursor) restOfLine() string {
	idx := c.pos
	for idx < len(c.src) && c.src[idx] != '\n' {
		idx++
	}
	return c.src[c.pos:idx]
}

// skipBlankAndCommentLines advances past whole blank lines and full-line
// comments, always leaving the cursor at column 1 of the first line that
// holds meaningful content (or at EOF). It never consumes that line's own
// indentation, since callers measure it via currentIndent.
func (c *cursor) skipBlankAndCommentLines() {
	for !c.eof() {
		p := c.pos
		for p < len(c.src) && (c.src[p] == ' ' || c.src[p] == '\t') {
			p++
		}
		if p >= len(c.src) {
			c.pos = p
			return
		}
		switch c.src[p] {
		case '\n':
			for !c.eof() && c.peek() != '\n' {
				c.advance()
			}
			c.advance()
			continue
		case '#':
			for !c.eof() && c.peek() != '\n' {
				c.advance()
			}
			if !c.eof() {
				c.advance()
			}
			continue
		default:
			return
		}
	}
}

// currentIndent reports the column (0-indexed) of the first non-space
// character on the cursor's current line, without consuming input.
func (c *cursor) currentIndent() int {
	p := c.pos
	indent := 0
	for p < len(c.src) && c.src[p] == ' ' {
		p++
		indent++
	}
	return indent
}

// atLineStart reports whether the cursor sits at column 1.
func (c *cursor) atLineStart() bool { return c.column == 1 }

// skipSpaces advances past horizontal whitespace only (not newlines).
func (c *cursor) skipSpaces() {
	for c.peek() == ' ' || c.peek() == '\t' {
		c.advance()
	}
}

// consumeToLineEnd reads and returns the remainder of the current line,
// consuming it (and, if present, the trailing newline).
func (c *cursor) consumeToLineEnd() string {
	start := c.pos
	for !c.eof() && c.peek() != '\n' {
		c.advance()
	}
	line := c.src[start:c.pos]
	if !c.eof() {
		c.advance() // consume '\n'
	}
	return line
}
