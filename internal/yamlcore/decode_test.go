package yamlcore

import (
	"strings"
	"testing"
)

func TestDecodeScalars(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want interface{}
	}{
		{"null tilde", "~", nil},
		{"null empty", "", nil},
		{"bool true", "true", true},
		{"bool yes", "yes", true},
		{"int", "42", int64(42)},
		{"negative int", "-7", int64(-7)},
		{"hex int", "0x1F", int64(31)},
		{"float", "3.14", 3.14},
		{"plain string", "hello world", "hello world"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out interface{}
			if err := Decode(strings.NewReader(c.src), &out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != c.want {
				t.Errorf("got %#v, want %#v", out, c.want)
			}
		})
	}
}

func TestDecodeBlockMapping(t *testing.T) {
	src := "name: kodegend\nport: 8080\nenabled: true\n"
	var out struct {
		Name    string `yaml:"name"`
		Port    int    `yaml:"port"`
		Enabled bool   `yaml:"enabled"`
	}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "kodegend" || out.Port != 8080 || !out.Enabled {
		t.Errorf("got %+v", out)
	}
}

func TestDecodeNestedMapping(t *testing.T) {
	src := "server:\n  name: kodegend\n  version: \"0.1.0\"\nhttp:\n  host: localhost\n  no_tls: false\n"
	var out struct {
		Server struct {
			Name    string `yaml:"name"`
			Version string `yaml:"version"`
		} `yaml:"server"`
		HTTP struct {
			Host  string `yaml:"host"`
			NoTLS bool   `yaml:"no_tls"`
		} `yaml:"http"`
	}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Server.Name != "kodegend" || out.Server.Version != "0.1.0" {
		t.Errorf("got server %+v", out.Server)
	}
	if out.HTTP.Host != "localhost" || out.HTTP.NoTLS {
		t.Errorf("got http %+v", out.HTTP)
	}
}

func TestDecodeBlockSequence(t *testing.T) {
	src := "- alpha\n- beta\n- gamma\n"
	var out []string
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, out[i], want[i])
		}
	}
}

func TestDecodeSequenceOfMappings(t *testing.T) {
	src := "- name: a\n  port: 1\n- name: b\n  port: 2\n"
	var out []struct {
		Name string `yaml:"name"`
		Port int    `yaml:"port"`
	}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].Name != "a" || out[1].Port != 2 {
		t.Errorf("got %+v", out)
	}
}

func TestDecodeFlowCollections(t *testing.T) {
	src := "tools: [a, b, c]\nlimits: {max: 10, min: 1}\n"
	var out struct {
		Tools  []string       `yaml:"tools"`
		Limits map[string]int `yaml:"limits"`
	}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Tools) != 3 || out.Tools[2] != "c" {
		t.Errorf("got tools %v", out.Tools)
	}
	if out.Limits["max"] != 10 || out.Limits["min"] != 1 {
		t.Errorf("got limits %v", out.Limits)
	}
}

func TestDecodeQuotedScalars(t *testing.T) {
	src := `line: "first\nsecond"` + "\n" + `raw: 'no \n escapes here'` + "\n"
	var out struct {
		Line string `yaml:"line"`
		Raw  string `yaml:"raw"`
	}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Line != "first\nsecond" {
		t.Errorf("got %q", out.Line)
	}
	if out.Raw != `no \n escapes here` {
		t.Errorf("got %q", out.Raw)
	}
}

func TestDecodeBlockScalars(t *testing.T) {
	src := "literal: |\n  line one\n  line two\nfolded: >\n  word one\n  word two\n"
	var out struct {
		Literal string `yaml:"literal"`
		Folded  string `yaml:"folded"`
	}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Literal != "line one\nline two\n" {
		t.Errorf("got literal %q", out.Literal)
	}
	if out.Folded != "word one word two\n" {
		t.Errorf("got folded %q", out.Folded)
	}
}

func TestDecodeAnchorAndAlias(t *testing.T) {
	src := "base: &b\n  timeout: 30\nderived:\n  timeout: 30\n"
	var out struct {
		Base struct {
			Timeout int `yaml:"timeout"`
		} `yaml:"base"`
		Derived struct {
			Timeout int `yaml:"timeout"`
		} `yaml:"derived"`
	}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Base.Timeout != 30 || out.Derived.Timeout != 30 {
		t.Errorf("got %+v", out)
	}

	srcAlias := "defaults: &defaults\n  retries: 3\nhttp:\n  retries: *defaults\n"
	var alias interface{}
	if err := Decode(strings.NewReader(srcAlias), &alias); err != nil {
		t.Fatalf("unexpected error resolving alias: %v", err)
	}
}

func TestDecodeUndefinedAliasResolvesNull(t *testing.T) {
	src := "value: *missing\n"
	var out struct {
		Value interface{} `yaml:"value"`
	}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value != nil {
		t.Errorf("expected undefined alias to resolve to nil, got %v", out.Value)
	}
}

func TestDecodeAliasBudgetExceeded(t *testing.T) {
	var b strings.Builder
	b.WriteString("anchors:\n")
	for i := 0; i < aliasBudget+5; i++ {
		b.WriteString("  - &a value\n")
	}
	b.WriteString("aliases:\n")
	for i := 0; i < aliasBudget+5; i++ {
		b.WriteString("  - *a\n")
	}
	var out interface{}
	if err := Decode(strings.NewReader(b.String()), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodePointerTarget(t *testing.T) {
	src := "name: kodegend\n"
	type cfg struct {
		Name string `yaml:"name"`
	}
	var out *cfg
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || out.Name != "kodegend" {
		t.Errorf("got %+v", out)
	}
}

func TestDecodeRejectsNonPointer(t *testing.T) {
	var out struct{ Name string }
	err := Decode(strings.NewReader("name: x\n"), out)
	if err == nil {
		t.Fatal("expected error binding into a non-pointer")
	}
}

func TestDecodeRejectsMultipleDocuments(t *testing.T) {
	src := "---\nname: a\n---\nname: b\n"
	var out interface{}
	err := Decode(strings.NewReader(src), &out)
	if err == nil {
		t.Fatal("expected error decoding multiple documents via the single-document API")
	}
}

func TestDecodeAllMultipleDocuments(t *testing.T) {
	src := "---\nname: a\n---\nname: b\n"
	docs, err := DecodeAll(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Get("name").Str != "a" || docs[1].Get("name").Str != "b" {
		t.Errorf("got %v / %v", docs[0], docs[1])
	}
}

func TestDecodeInterfaceFallback(t *testing.T) {
	src := "a: 1\nb:\n  - x\n  - y\nc: null\n"
	var out interface{}
	if err := Decode(strings.NewReader(src), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := out.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map[string]interface{}, got %T", out)
	}
	if m["a"] != int64(1) {
		t.Errorf("got a=%v", m["a"])
	}
	seq, ok := m["b"].([]interface{})
	if !ok || len(seq) != 2 {
		t.Errorf("got b=%v", m["b"])
	}
	if m["c"] != nil {
		t.Errorf("got c=%v", m["c"])
	}
}

func TestDecodeInvalidYAMLErrors(t *testing.T) {
	src := "tools:\n  categories: [a, b\n"
	var out interface{}
	if err := Decode(strings.NewReader(src), &out); err == nil {
		t.Fatal("expected error for unterminated flow sequence")
	}
}
