package main

import "testing"

func TestRowTabExpansion(t *testing.T) {
	row := newRow("a\tb")
	if len(row.render) != len(row.hl) {
		t.Fatalf("render/hl length mismatch: %d vs %d", len(row.render), len(row.hl))
	}
	// "a" then tab expands to the next TabStop boundary (column 8),
	// then "b".
	want := "a" + spaces(TabStop-1) + "b"
	if row.render != want {
		t.Fatalf("render = %q, want %q", row.render, want)
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func TestRowInsertDeleteByteRoundTrip(t *testing.T) {
	row := newRow("hello")
	row.insertByte(2, 'X', nil)
	if row.chars != "heXllo" {
		t.Fatalf("after insert: %q", row.chars)
	}
	row.deleteByte(2, nil)
	if row.chars != "hello" {
		t.Fatalf("after delete: %q", row.chars)
	}
}

func TestRowRenderHlLengthInvariant(t *testing.T) {
	for _, chars := range []string{"", "\t\t\t", "plain text", "a\tb\tc"} {
		row := newRow(chars)
		if len(row.render) != len(row.hl) {
			t.Errorf("chars=%q: |render|=%d != |hl|=%d", chars, len(row.render), len(row.hl))
		}
	}
}

func TestRowAppendBytes(t *testing.T) {
	row := newRow("foo")
	row.appendBytes("bar", nil)
	if row.chars != "foobar" {
		t.Fatalf("chars = %q, want foobar", row.chars)
	}
}
