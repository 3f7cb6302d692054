package main

import "strings"

// findCallback is invoked after every keystroke during a prompt
// session; it receives the current buffer and the key that produced
// it (spec.md §4.7).
type findCallback func(e *Editor, query string, key Key)

// findState carries the across-call state of an incremental find
// session on a struct instead of the teacher's file-scope statics
// (spec.md §9, "Static-lifetime search state"). It lives on the Editor
// (Editor.find) and find2 resets it at the start of each search; the
// prompt loop neither owns it nor passes it to the callback, which
// reaches it through the Editor.
type findState struct {
	lastMatch  int // row index, or -1
	direction  int // +1 forward, -1 backward
	savedRow   int
	savedHL    []Highlight
	hasSavedHL bool
}

func newFindState() findState {
	return findState{lastMatch: -1, direction: 1}
}

// prompt displays format%buffer, refreshes, and reads keys until ENTER
// (with a nonempty buffer), or ESC (spec.md §4.7). ok is false on
// cancel.
func (e *Editor) prompt(format string, cb findCallback) (result string, ok bool) {
	var buf strings.Builder

	for {
		e.status.Infof(format, buf.String())
		e.refreshScroll()
		if err := e.Render(); err != nil {
			return "", false
		}

		key, err := e.keys.ReadKey()
		if err != nil {
			continue
		}

		switch key {
		case KeyEnter:
			if buf.Len() != 0 {
				if cb != nil {
					cb(e, buf.String(), key)
				}
				e.status.Info("")
				return buf.String(), true
			}
			if cb != nil {
				cb(e, buf.String(), key)
			}
		case KeyEsc:
			if cb != nil {
				cb(e, buf.String(), key)
			}
			e.status.Info("")
			return "", false
		case KeyBackspace, ctrl('h'), KeyDel:
			if buf.Len() > 0 {
				s := buf.String()
				buf.Reset()
				buf.WriteString(s[:len(s)-1])
			}
			if cb != nil {
				cb(e, buf.String(), key)
			}
		default:
			if key >= 0 && key < 128 && !isControlByte(byte(key)) {
				buf.WriteByte(byte(key))
			}
			if cb != nil {
				cb(e, buf.String(), key)
			}
		}
	}
}

// isControlByte mirrors the teacher's isControl: bytes below 32, or
// DEL, are control bytes and never get appended to a prompt buffer.
func isControlByte(b byte) bool {
	return b < 32 || b == 127
}

// find2 implements spec.md §4.7, "Editor find entry": save cursor and
// scroll state, prompt with the find callback, and restore on cancel.
func (e *Editor) find2() {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.vp.colOff, e.vp.rowOff

	e.find = newFindState()

	_, ok := e.prompt("Search: %s (Use ESC/Arrows/Enter)", findAction)

	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.vp.colOff, e.vp.rowOff = savedColOff, savedRowOff
	}
}

// findAction is the incremental-find callback of spec.md §4.7. On
// every call it first restores any previously-saved match highlight,
// then advances last_match/direction and paints the next match (if
// any) as HLMatch, saving that row's hl for restoration on the next
// call.
func findAction(e *Editor, query string, key Key) {
	fs := &e.find

	if fs.hasSavedHL {
		e.doc.Row(fs.savedRow).hl = fs.savedHL
		fs.hasSavedHL = false
		fs.savedHL = nil
	}

	if key == KeyEnter || key == KeyEsc {
		fs.lastMatch = -1
		fs.direction = 1
		return
	}

	switch key {
	case KeyArrowRight, KeyArrowDown:
		fs.direction = 1
	case KeyArrowLeft, KeyArrowUp:
		fs.direction = -1
	default:
		fs.direction = 1
		fs.lastMatch = -1
	}

	if fs.lastMatch == -1 {
		fs.direction = 1
	}

	if query == "" {
		return
	}

	numRows := e.doc.NumRows()
	if numRows == 0 {
		return
	}

	current := fs.lastMatch
	for i := 0; i < numRows; i++ {
		current += fs.direction
		if current == -1 {
			current = numRows - 1
		} else if current == numRows {
			current = 0
		}

		row := e.doc.Row(current)
		idx := strings.Index(row.render, query)
		if idx < 0 {
			continue
		}

		fs.lastMatch = current
		e.cy = current
		e.cx = rxToCx(row, idx)
		e.vp.rowOff = numRows

		fs.savedRow = current
		fs.savedHL = make([]Highlight, len(row.hl))
		copy(fs.savedHL, row.hl)
		fs.hasSavedHL = true

		for j := 0; j < len(query); j++ {
			row.hl[idx+j] = HLMatch
		}
		break
	}
}
