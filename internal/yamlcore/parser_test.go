package yamlcore

import "testing"

func TestLooksLikeMappingLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"key: value", true},
		{"key:", true},
		{"plain scalar", false},
		{"http://example.com", false},
		{"a: [1, 2]", true},
		{"{a: 1}", false},
		{"quoted: \"has: colon\"", true},
		{"# key: value", false},
	}
	for _, c := range cases {
		cur := newCursor(c.line)
		if got := looksLikeMappingLine(cur); got != c.want {
			t.Errorf("looksLikeMappingLine(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestContextStackPushPop(t *testing.T) {
	var s contextStack
	if _, ok := s.top(); ok {
		t.Fatal("expected empty stack to report no top")
	}
	s.push(BlockIn, 2)
	s.push(FlowOut, 4)
	top, ok := s.top()
	if !ok || top.context != FlowOut || top.indent != 4 {
		t.Errorf("got %+v", top)
	}
	frame, ok := s.pop()
	if !ok || frame.context != FlowOut {
		t.Errorf("got %+v", frame)
	}
	frame, ok = s.pop()
	if !ok || frame.context != BlockIn {
		t.Errorf("got %+v", frame)
	}
	if _, ok := s.pop(); ok {
		t.Error("expected stack to be empty after popping both frames")
	}
}

func TestParametricContextInFlow(t *testing.T) {
	flowCtxs := []ParametricContext{FlowIn, FlowOut, FlowKey}
	for _, c := range flowCtxs {
		if !c.inFlow() {
			t.Errorf("%v.inFlow() = false, want true", c)
		}
	}
	blockCtxs := []ParametricContext{BlockIn, BlockOut, BlockKey}
	for _, c := range blockCtxs {
		if c.inFlow() {
			t.Errorf("%v.inFlow() = true, want false", c)
		}
	}
}

func TestResolveAliasUndefinedEmitsWarning(t *testing.T) {
	pc := newParseCtx(SchemaCore)
	cur := newCursor("")
	v, err := resolveAlias(cur, pc, "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindNull {
		t.Errorf("expected undefined alias to resolve to null, got %#v", v)
	}
	if len(pc.warnings) != 1 {
		t.Fatalf("expected one warning, got %v", pc.warnings)
	}
}

func TestResolveAliasBudgetExhausted(t *testing.T) {
	pc := newParseCtx(SchemaCore)
	pc.anchors["a"] = newString("x")
	pc.aliasesLeft = 0
	cur := newCursor("")
	v, err := resolveAlias(cur, pc, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindNull {
		t.Errorf("expected exhausted budget to resolve to null, got %#v", v)
	}
}
