package yamlcore

import "strings"

// aliasBudget bounds how many alias resolutions a single parse may
// perform, the guard against billion-laughs-style exponential expansion.
const aliasBudget = 1000

// parseCtx threads per-document parsing state: the active schema, the
// anchor table, and the remaining alias budget. One parseCtx exists per
// document; document boundaries reset it.
type parseCtx struct {
	schema     Schema
	anchors    map[string]*Value
	aliasesLeft int
	states     stateStack
	contexts   contextStack
	warnings   []string
}

func newParseCtx(schema Schema) *parseCtx {
	return &parseCtx{
		schema:      schema,
		anchors:     make(map[string]*Value),
		aliasesLeft: aliasBudget,
	}
}

// parseDocumentBody parses a single document's root node starting at the
// cursor's current position (block-out context, indent 0).
func parseDocumentBody(cur *cursor, pc *parseCtx) (*Value, error) {
	pc.states.push(stateDocumentContent)
	pc.contexts.push(BlockOut, -1)
	defer pc.contexts.pop()
	defer pc.states.pop()
	return parseNode(cur, 0, BlockOut, pc)
}

// parseNode is the BlockNode state: it looks at the current line's shape
// and dispatches to the right nested-construct parser, or falls through to
// a scalar.
func parseNode(cur *cursor, indent int, pctx ParametricContext, pc *parseCtx) (*Value, error) {
	cur.skipBlankAndCommentLines()
	if cur.eof() {
		return newNull(), nil
	}
	li := cur.currentIndent()
	if li < indent {
		return newNull(), nil
	}

	// Consume the line's indentation.
	for i := 0; i < li; i++ {
		cur.advance()
	}

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

	r := cur.peek()

	switch {
	case r == '*':
		cur.advance()
		name := readBareToken(cur)
		return resolveAlias(cur, pc, name)
	case r == '-' && (cur.peekAt(1) == ' ' || cur.peekAt(1) == -1 || cur.peekAt(1) == '\n'):
		v, err := parseBlockSequence(cur, li, pc)
		return finish(v, anchor, pc), err
	case r == '[':
		v, err := parseFlowSequence(cur, pc)
		return finish(v, anchor, pc), err
	case r == '{':
		v, err := parseFlowMapping(cur, pc)
		return finish(v, anchor, pc), err
	case r == '|' || r == '>':
		v, err := parseBlockScalar(cur, li)
		return finish(v, anchor, pc), err
	case r == '"':
		v, err := parseDoubleQuoted(cur)
		if err != nil {
			return nil, err
		}
		return parseMaybeMappingAfterKey(cur, li, v.Str, true, pctx, pc, anchor, tag)
	case r == '\'':
		v, err := parseSingleQuoted(cur)
		if err != nil {
			return nil, err
		}
		return parseMaybeMappingAfterKey(cur, li, v.Str, true, pctx, pc, anchor, tag)
	default:
		if looksLikeMappingLine(cur) {
			v, err := parseBlockMapping(cur, li, pc)
			return finish(v, anchor, pc), err
		}
		text := readPlainScalarLine(cur, li)
		val := resolvePlainOrTagged(pc.schema, tag, strings.TrimRight(text, " \t"))
		return finish(val, anchor, pc), nil
	}
}

func finish(v *Value, anchor string, pc *parseCtx) *Value {
	if v == nil {
		return v
	}
	if anchor != "" {
		v.Anchor = anchor
		pc.anchors[anchor] = v
	}
	return v
}

func resolvePlainOrTagged(schema Schema, tag, text string) *Value {
	if tag != "" {
		return applyExplicitTag(expandTag(tag), text)
	}
	return resolvePlainScalar(schema, text)
}

func expandTag(shorthand string) string {
	switch shorthand {
	case "!str", "!!str":
		return "tag:yaml.org,2002:str"
	case "!null", "!!null":
		return "tag:yaml.org,2002:null"
	case "!bool", "!!bool":
		return "tag:yaml.org,2002:bool"
	case "!int", "!!int":
		return "tag:yaml.org,2002:int"
	case "!float", "!!float":
		return "tag:yaml.org,2002:float"
	default:
		return shorthand
	}
}

func resolveAlias(cur *cursor, pc *parseCtx, name string) (*Value, error) {
	if pc.aliasesLeft <= 0 {
		pc.warnings = append(pc.warnings, "alias budget exceeded, resolving to null: *"+name)
		return newNull(), nil
	}
	pc.aliasesLeft--
	target, ok := pc.anchors[name]
	if !ok {
		pc.warnings = append(pc.warnings, "undefined alias, resolving to null: *"+name)
		return newNull(), nil
	}
	return target, nil
}

// looksLikeMappingLine reports whether the current line (from the cursor,
// which sits right after any indentation/anchor/tag already consumed)
// contains an unquoted top-level ": " or ends with ":", the signature of a
// block mapping key.
func looksLikeMappingLine(cur *cursor) bool {
	line := cur.restOfLine()
	inSingle, inDouble := false, false
	depth := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case inSingle || inDouble:
			continue
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
		case c == '#' && (i == 0 || line[i-1] == ' '):
			return false
		case c == ':' && depth == 0:
			if i+1 >= len(line) || line[i+1] == ' ' || line[i+1] == '\t' {
				return true
			}
		}
	}
	return false
}

func readBareToken(cur *cursor) string {
	start := cur.pos
	for {
		r := cur.peek()
		if r == -1 || r == ' ' || r == '\t' || r == '\n' || r == ',' || r == ']' || r == '}' {
			break
		}
		cur.advance()
	}
	return cur.src[start:cur.pos]
}

func readTagShorthand(cur *cursor) string {
	start := cur.pos - 1 // include the '!' already consumed by caller
	for {
		r := cur.peek()
		if r == -1 || r == ' ' || r == '\t' || r == '\n' {
			break
		}
		cur.advance()
	}
	return cur.src[start:cur.pos]
}
