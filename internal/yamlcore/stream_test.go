package yamlcore

import (
	"bytes"
	"testing"
	"unicode/utf16"
)

func TestDecodeEncodingUTF8BOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name: kodegend")...)
	src, err := decodeEncoding(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "name: kodegend" {
		t.Errorf("got %q", src)
	}
}

func TestDecodeEncodingUTF16LE(t *testing.T) {
	units := utf16.Encode([]rune("name: kodegend"))
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, u := range units {
		buf.WriteByte(byte(u))
		buf.WriteByte(byte(u >> 8))
	}
	src, err := decodeEncoding(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "name: kodegend" {
		t.Errorf("got %q", src)
	}
}

func TestDecodeEncodingUTF16BE(t *testing.T) {
	units := utf16.Encode([]rune("name: kodegend"))
	var buf bytes.Buffer
	buf.Write([]byte{0xFE, 0xFF})
	for _, u := range units {
		buf.WriteByte(byte(u >> 8))
		buf.WriteByte(byte(u))
	}
	src, err := decodeEncoding(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "name: kodegend" {
		t.Errorf("got %q", src)
	}
}

func TestDecodeEncodingOddLengthUTF16IsFatal(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 0x41, 0x00, 0x01}
	if _, err := decodeEncoding(raw); err == nil {
		t.Fatal("expected error for odd-length UTF-16 payload")
	}
}

func TestSplitAndParseAllMultiDocument(t *testing.T) {
	src := "---\nname: a\n---\nname: b\n...\n"
	docs, err := splitAndParseAll(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Value.Get("name").Str != "a" || docs[1].Value.Get("name").Str != "b" {
		t.Errorf("got %v / %v", docs[0].Value, docs[1].Value)
	}
}

func TestSplitAndParseAllSingleDocumentNoMarkers(t *testing.T) {
	src := "name: solo\n"
	docs, err := splitAndParseAll(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
}

func TestConsumeDirectivesYAML12SelectsCore(t *testing.T) {
	cur := newCursor("%YAML 1.2\n---\nflag: yes\n")
	schema := SchemaFailsafe
	if err := consumeDirectives(cur, &schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema != SchemaCore {
		t.Errorf("expected %%YAML 1.2 to select SchemaCore, got %v", schema)
	}
}

func TestConsumeDirectivesYAML11SelectsFailsafe(t *testing.T) {
	cur := newCursor("%YAML 1.1\n---\nflag: yes\n")
	schema := SchemaCore
	if err := consumeDirectives(cur, &schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema != SchemaFailsafe {
		t.Errorf("expected %%YAML 1.1 to select SchemaFailsafe, got %v", schema)
	}
}

func TestConsumeDirectivesUnknownVersionIsFatal(t *testing.T) {
	cur := newCursor("%YAML 2.0\n---\nflag: yes\n")
	schema := SchemaCore
	err := consumeDirectives(cur, &schema)
	if err == nil {
		t.Fatal("expected an unsupported %YAML version to be a fatal parse error")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("expected a *ParseError, got %T", err)
	}
}

func TestConsumeDirectivesTagAndReservedAccepted(t *testing.T) {
	cur := newCursor("%TAG !e! tag:example.com,2000:\n%RESERVED foo\n---\nflag: yes\n")
	schema := SchemaCore
	if err := consumeDirectives(cur, &schema); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema != SchemaCore {
		t.Errorf("expected %%TAG/reserved directives not to alter schema, got %v", schema)
	}
	if cur.peek() != '-' {
		t.Errorf("expected cursor positioned at the document marker after directives")
	}
}

func TestSplitAndParseAllPropagatesFatalDirectiveError(t *testing.T) {
	if _, err := splitAndParseAll("%YAML 3.0\n---\nflag: yes\n"); err == nil {
		t.Fatal("expected an unsupported %YAML version to fail the whole parse")
	}
}

func TestFastPathParseSimpleScalar(t *testing.T) {
	v, ok := fastPathParse("42")
	if !ok {
		t.Fatal("expected fast path to accept a bare scalar")
	}
	if v.Kind != KindInt || v.Int != 42 {
		t.Errorf("got %#v", v)
	}
}

func TestFastPathParseRefusesMultiline(t *testing.T) {
	if _, ok := fastPathParse("a: 1\nb: 2\n"); ok {
		t.Error("expected fast path to refuse multi-line input")
	}
}

func TestFastPathParseRefusesDirectivesAndMarkers(t *testing.T) {
	for _, src := range []string{"%YAML 1.2", "---", "...", "&anchor", "*alias", "!tag", "? key", "# comment"} {
		if _, ok := fastPathParse(src); ok {
			t.Errorf("expected fast path to refuse %q", src)
		}
	}
}

func TestFastPathParseEmptyIsNull(t *testing.T) {
	v, ok := fastPathParse("   ")
	if !ok {
		t.Fatal("expected fast path to accept blank input")
	}
	if v.Kind != KindNull {
		t.Errorf("got %#v", v)
	}
}
