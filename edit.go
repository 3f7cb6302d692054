package main

// insertChar implements spec.md §4.3, "insert_char": appends an empty
// row first if the cursor sits on the virtual line past EOF.
func (e *Editor) insertChar(b byte) {
	if e.cy == e.doc.NumRows() {
		e.doc.InsertRow(e.doc.NumRows(), "")
	}
	row := e.doc.Row(e.cy)
	row.insertByte(e.cx, b, e.doc.Syntax())
	e.doc.MarkDirty()
	e.cx++
}

// insertNewline implements spec.md §4.3, "insert_newline": splits the
// current row at cx, or inserts a bare empty row when cx is 0.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.doc.InsertRow(e.cy, "")
	} else {
		row := e.doc.Row(e.cy)
		tail := row.chars[e.cx:]
		row.truncate(e.cx, e.doc.Syntax())
		e.doc.InsertRow(e.cy+1, tail)
	}
	e.cy++
	e.cx = 0
}

// deleteChar implements spec.md §4.3, "delete_char": deletes the byte
// left of the cursor, joining with the previous row at a line start.
func (e *Editor) deleteChar() {
	if e.cy == e.doc.NumRows() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := e.doc.Row(e.cy)
	if e.cx > 0 {
		row.deleteByte(e.cx-1, e.doc.Syntax())
		e.doc.MarkDirty()
		e.cx--
		return
	}

	prev := e.doc.Row(e.cy - 1)
	e.cx = len(prev.chars)
	prev.appendBytes(row.chars, e.doc.Syntax())
	e.doc.MarkDirty()
	e.doc.DeleteRow(e.cy)
	e.cy--
}
