package main

import (
	"errors"
	"fmt"
)

// ErrQuit is returned by ProcessKeypress when the user has confirmed
// exit (spec.md §6, "Exit codes"; 0 on user quit).
var ErrQuit = errors.New("quit")

// KiloVersion is the welcome-screen version string (spec.md §6).
const KiloVersion = "0.0.1"

// quitTimes is KILO_QUIT_TIMES: extra Ctrl-Q presses required while
// dirty (spec.md Glossary).
const quitTimes = 2

// Editor is the single owned aggregate threading cursor, viewport,
// document, and message-bar state through the program (spec.md §9,
// "Global editor state" — replaces the teacher's package-level
// EditorConfig plus its file-scope find-state globals).
type Editor struct {
	doc *Document
	vp  viewport

	cx, cy int
	rx     int

	status    statusBar
	quitLeft  int
	find      findState
	term      *Terminal
	keys      *keyReader
}

// NewEditor constructs an Editor bound to the given terminal driver
// with the given screen dimensions (rows already includes the two
// reserved bars; NewEditor subtracts them per spec.md §3).
func NewEditor(term *Terminal, rows, cols int) *Editor {
	e := &Editor{
		doc:      NewDocument(),
		term:     term,
		quitLeft: quitTimes,
	}
	e.keys = newKeyReader(term)
	e.vp.screenRows = rows - 2
	e.vp.screenCols = cols
	return e
}

// Document exposes the bound document (used by tests and by main's
// startup load).
func (e *Editor) Document() *Document { return e.doc }

// refreshScroll applies the scroll invariants before drawing a frame
// (spec.md §4.5).
func (e *Editor) refreshScroll() {
	e.rx = e.vp.scroll(e.doc, e.cy, e.cx)
}

// ProcessKeypress reads one key and dispatches it to the appropriate
// editing or navigation action (spec.md §6, "Key bindings").
// It returns ErrQuit once the user has confirmed quitting.
func (e *Editor) ProcessKeypress() error {
	key, err := e.keys.ReadKey()
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}

	switch key {
	case ctrl('q'):
		if e.doc.Dirty() && e.quitLeft > 0 {
			e.status.Infof("Warning! File has unsaved changes. "+
				"Press Ctrl-Q %d more time(s) to quit.", e.quitLeft)
			e.quitLeft--
			return nil
		}
		return ErrQuit
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		e.moveCursor(key)
	case KeyPageUp, KeyPageDown:
		e.pageMove(key)
	case KeyHome:
		e.cx = 0
	case KeyEnd:
		if e.cy < e.doc.NumRows() {
			e.cx = len(e.doc.Row(e.cy).chars)
		}
	case KeyBackspace, ctrl('h'):
		e.deleteChar()
	case KeyDel:
		e.moveCursor(KeyArrowRight)
		e.deleteChar()
	case KeyEnter:
		e.insertNewline()
	case ctrl('l'), KeyEsc:
		// no-op (spec.md §6)
	case ctrl('s'):
		e.save()
	case ctrl('f'):
		e.find2()
	default:
		if key >= 0 && key < 256 {
			e.insertChar(byte(key))
		}
	}

	e.quitLeft = quitTimes
	return nil
}

// pageMove implements the observed PAGE_UP/PAGE_DOWN double-move of
// spec.md §6 and §9 (jump to the viewport edge, then simulate
// screen_rows arrow presses) — preserved verbatim per the Open
// Question decision in DESIGN.md.
func (e *Editor) pageMove(key Key) {
	if key == KeyPageUp {
		e.cy = e.vp.rowOff
	} else {
		e.cy = e.vp.rowOff + e.vp.screenRows - 1
		if e.cy > e.doc.NumRows() {
			e.cy = e.doc.NumRows()
		}
	}

	step := KeyArrowDown
	if key == KeyPageUp {
		step = KeyArrowUp
	}
	for i := 0; i < e.vp.screenRows; i++ {
		e.moveCursor(step)
	}
}

// moveCursor applies one arrow-key move with the line-boundary wraps
// of spec.md §4.5 and clamps cx to the (possibly new) row's length.
func (e *Editor) moveCursor(key Key) {
	switch key {
	case KeyArrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case KeyArrowDown:
		if e.cy < e.doc.NumRows() {
			e.cy++
		}
	case KeyArrowLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.doc.Row(e.cy).chars)
		}
	case KeyArrowRight:
		if e.cy < e.doc.NumRows() {
			row := e.doc.Row(e.cy)
			if e.cx < len(row.chars) {
				e.cx++
			} else if e.cx == len(row.chars) {
				e.cy++
				e.cx = 0
			}
		}
	}

	rowLen := 0
	if e.cy < e.doc.NumRows() {
		rowLen = len(e.doc.Row(e.cy).chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// save implements spec.md §6, "Save": prompts for a filename if none
// is set, writes the buffer, and reports success or failure on the
// status line.
func (e *Editor) save() {
	filename := e.doc.Filename()
	if filename == "" {
		name, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.status.Info("Save cancelled")
			return
		}
		filename = name
	}

	n, err := e.doc.Save(filename)
	if err != nil {
		e.status.Infof("Can't save! I/O error: %s", err.Error())
		return
	}
	e.status.Infof("%d bytes written to disk", n)
}
