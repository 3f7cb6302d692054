package main

import "testing"

func TestCxToRxTabs(t *testing.T) {
	row := newRow("a\tbc")
	// cx=0 -> rx=0 ("a" not yet consumed)
	// cx=1 -> rx=1 (just past "a")
	// cx=2 -> rx=8 (tab consumed, aligned to TabStop)
	tests := []struct {
		cx, want int
	}{
		{0, 0},
		{1, 1},
		{2, TabStop},
		{3, TabStop + 1},
	}
	for _, tt := range tests {
		if got := cxToRx(row, tt.cx); got != tt.want {
			t.Errorf("cxToRx(%d) = %d, want %d", tt.cx, got, tt.want)
		}
	}
}

func TestRxToCxRoundTrip(t *testing.T) {
	row := newRow("a\tbcdef")
	for rx := 0; rx < len(row.render); rx++ {
		cx := rxToCx(row, rx)
		back := cxToRx(row, cx)
		if back < rx {
			t.Errorf("rx=%d -> cx=%d -> rx=%d, want >= %d", rx, cx, back, rx)
		}
	}
}

func TestRxToCxNonTabExact(t *testing.T) {
	row := newRow("plain")
	for rx := 0; rx < len(row.render); rx++ {
		cx := rxToCx(row, rx)
		if cxToRx(row, cx) != rx {
			t.Errorf("non-tab round trip should be exact at rx=%d", rx)
		}
	}
}

func TestViewportScrollClampsToCursor(t *testing.T) {
	doc := NewDocument()
	for i := 0; i < 50; i++ {
		doc.InsertRow(i, "line")
	}
	vp := viewport{screenRows: 10, screenCols: 40}

	vp.scroll(doc, 20, 0)
	if vp.rowOff != 11 {
		t.Fatalf("rowOff = %d, want 11 (cy - screenRows + 1)", vp.rowOff)
	}

	vp.scroll(doc, 5, 0)
	if vp.rowOff != 5 {
		t.Fatalf("rowOff = %d, want 5 (cy < rowOff clamp)", vp.rowOff)
	}
}
