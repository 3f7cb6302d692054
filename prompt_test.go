package main

import "testing"

func TestFindActionMatchesAndRestoresHighlight(t *testing.T) {
	e := newTestEditor()
	e.doc.InsertRow(0, "int a;")
	e.doc.InsertRow(1, "int b;")
	e.find = newFindState()

	findAction(e, "b", Key('b'))

	if e.cy != 1 {
		t.Fatalf("cy = %d, want 1", e.cy)
	}
	wantCx := rxToCx(e.doc.Row(1), indexOf(e.doc.Row(1).render, "b"))
	if e.cx != wantCx {
		t.Fatalf("cx = %d, want %d", e.cx, wantCx)
	}

	matchIdx := indexOf(e.doc.Row(1).render, "b")
	if e.doc.Row(1).hl[matchIdx] != HLMatch {
		t.Fatalf("matched byte should be highlighted HLMatch")
	}

	// ENTER resets find state and leaves the match highlight cleared on
	// the next callback tick (the restore happens at the top of the
	// *next* call, per spec.md §4.7).
	findAction(e, "b", KeyEnter)
	if e.doc.Row(1).hl[matchIdx] != HLNormal {
		t.Fatalf("hl should be restored to normal after ENTER, got %v", e.doc.Row(1).hl[matchIdx])
	}
	if e.find.lastMatch != -1 || e.find.direction != 1 {
		t.Fatalf("find state should reset on ENTER: %+v", e.find)
	}
}

func TestFindEntryRestoresCursorOnCancel(t *testing.T) {
	e := newTestEditor()
	e.doc.InsertRow(0, "alpha")
	e.doc.InsertRow(1, "beta")
	e.cx, e.cy = 2, 0
	e.vp.colOff, e.vp.rowOff = 1, 0

	// Type "beta" (which moves the cursor to row 1), then a bare ESC:
	// the fake source times out after the ESC byte, so it decodes as
	// KeyEsc and cancels the search.
	e.keys = newKeyReader(&fakeSource{bytes: []byte("beta\x1b")})
	e.find2()

	if e.find.lastMatch != -1 {
		t.Fatalf("ESC should reset lastMatch")
	}
	if e.cx != 2 || e.cy != 0 || e.vp.colOff != 1 || e.vp.rowOff != 0 {
		t.Fatalf("cursor should be restored: cx=%d cy=%d colOff=%d rowOff=%d",
			e.cx, e.cy, e.vp.colOff, e.vp.rowOff)
	}
}
