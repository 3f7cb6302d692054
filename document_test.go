package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDocumentInsertDeleteRow(t *testing.T) {
	doc := NewDocument()
	doc.InsertRow(0, "first")
	doc.InsertRow(1, "second")
	if doc.NumRows() != 2 {
		t.Fatalf("numRows = %d, want 2", doc.NumRows())
	}
	if doc.Row(0).chars != "first" || doc.Row(1).chars != "second" {
		t.Fatalf("unexpected row contents")
	}

	doc.DeleteRow(0)
	if doc.NumRows() != 1 || doc.Row(0).chars != "second" {
		t.Fatalf("after delete: numRows=%d row0=%q", doc.NumRows(), doc.Row(0).chars)
	}
}

func TestDocumentSyntaxBindingRecomputesHighlight(t *testing.T) {
	doc := NewDocument()
	doc.InsertRow(0, "int a;")
	if doc.Row(0).hl[0] != HLNormal {
		t.Fatalf("before binding syntax, hl should be all normal")
	}
	doc.bindSyntax("a.c")
	if doc.Syntax() == nil || doc.Syntax().Name != "c" {
		t.Fatalf("syntax not bound to c")
	}
	if doc.Row(0).hl[0] != HLKeyword2 {
		t.Fatalf("hl[0] = %v, want HLKeyword2 (int)", doc.Row(0).hl[0])
	}
}

func TestDocumentSerializeRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.InsertRow(0, "line one")
	doc.InsertRow(1, "line two")

	serialized := doc.Serialize()
	if serialized != "line one\nline two\n" {
		t.Fatalf("serialize = %q", serialized)
	}
}

func TestDocumentLoadStripsTrailingCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.c")
	if err := os.WriteFile(path, []byte("int a;\r\nint b;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := NewDocument()
	if err := doc.Load(path); err != nil {
		t.Fatal(err)
	}

	if doc.NumRows() != 2 {
		t.Fatalf("numRows = %d, want 2", doc.NumRows())
	}
	if doc.Row(0).chars != "int a;" || doc.Row(1).chars != "int b;" {
		t.Fatalf("rows = %q, %q", doc.Row(0).chars, doc.Row(1).chars)
	}
	if doc.Dirty() {
		t.Fatal("freshly loaded document should not be dirty")
	}
	if doc.Syntax() == nil || doc.Syntax().Name != "c" {
		t.Fatalf("a.c should bind the c syntax")
	}
}

func TestDocumentSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	doc := NewDocument()
	doc.InsertRow(0, "hello")

	n, err := doc.Save(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != len("hello\n") {
		t.Fatalf("bytes written = %d, want %d", n, len("hello\n"))
	}
	if doc.Dirty() {
		t.Fatal("document should not be dirty after save")
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != "hello\n" {
		t.Fatalf("file contents = %q", contents)
	}
}

func TestDocumentDirtyBookkeeping(t *testing.T) {
	doc := NewDocument()
	if doc.Dirty() {
		t.Fatal("fresh document should not be dirty")
	}
	doc.InsertRow(0, "x")
	if !doc.Dirty() {
		t.Fatal("document should be dirty after an insert")
	}
}
