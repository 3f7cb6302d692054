package main

import (
	"fmt"
	"os"
	"time"
)

// Render composes one frame into an output buffer and flushes it in a
// single write (spec.md §4.6). The caller is expected to have already
// run refreshScroll for this frame.
func (e *Editor) Render() error {
	buf := newOutputBuffer()

	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	e.drawRows(buf)
	e.drawStatusBar(buf)
	e.drawMessageBar(buf)

	fmt.Fprintf(buf, "\x1b[%d;%dH", (e.cy-e.vp.rowOff)+1, (e.rx-e.vp.colOff)+1)
	buf.WriteString("\x1b[?25h")

	return buf.Flush(os.Stdout)
}

func (e *Editor) drawRows(buf *outputBuffer) {
	for y := 0; y < e.vp.screenRows; y++ {
		fileRow := e.vp.rowOff + y
		if fileRow >= e.doc.NumRows() {
			e.drawEmptyLine(buf, y)
		} else {
			e.drawRow(buf, e.doc.Row(fileRow))
		}
		buf.WriteString("\x1b[K")
		buf.WriteString("\r\n")
	}
}

func (e *Editor) drawEmptyLine(buf *outputBuffer, y int) {
	if e.doc.NumRows() == 0 && y == e.vp.screenRows/3 {
		welcome := fmt.Sprintf("Kilo editor -- version %s", KiloVersion)
		if len(welcome) > e.vp.screenCols {
			welcome = welcome[:e.vp.screenCols]
		}
		padding := (e.vp.screenCols - len(welcome)) / 2
		if padding > 0 {
			buf.WriteString("~")
			padding--
		}
		for i := 0; i < padding; i++ {
			buf.WriteString(" ")
		}
		buf.WriteString(welcome)
		return
	}
	buf.WriteString("~")
}

// drawRow paints the visible column slice of row.render, switching SGR
// color on highlight-class transitions and rendering control bytes as
// an inverted glyph (spec.md §4.6).
func (e *Editor) drawRow(buf *outputBuffer, row *Row) {
	rsize := len(row.render)
	colOff := e.vp.colOff
	if colOff > rsize {
		colOff = rsize
	}
	length := rsize - colOff
	if length < 0 {
		length = 0
	}
	if length > e.vp.screenCols {
		length = e.vp.screenCols
	}

	currentColor := -1
	for i := colOff; i < colOff+length; i++ {
		c := row.render[i]
		hl := row.hl[i]

		if c < 32 || c == 127 {
			glyph := byte('?')
			if c <= 26 {
				glyph = '@' + c
			}
			buf.WriteString("\x1b[7m")
			buf.WriteByte(glyph)
			buf.WriteString("\x1b[m")
			if currentColor != -1 {
				fmt.Fprintf(buf, "\x1b[%dm", currentColor)
			}
			continue
		}

		if hl == HLNormal {
			if currentColor != -1 {
				buf.WriteString("\x1b[39m")
				currentColor = -1
			}
			buf.WriteByte(c)
			continue
		}

		color := syntaxColor(hl)
		if currentColor != color {
			fmt.Fprintf(buf, "\x1b[%dm", color)
			currentColor = color
		}
		buf.WriteByte(c)
	}
	buf.WriteString("\x1b[39m")
}

func (e *Editor) drawStatusBar(buf *outputBuffer) {
	buf.WriteString("\x1b[7m")

	name := e.doc.Filename()
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	status := fmt.Sprintf("%s - %d lines", name, e.doc.NumRows())
	if e.doc.Dirty() {
		status += " (modified)"
	}

	ftName := "no ft"
	if syn := e.doc.Syntax(); syn != nil {
		ftName = syn.Name
	}
	rStatus := fmt.Sprintf("%s | %d/%d", ftName, e.cy+1, e.doc.NumRows())

	length := len(status)
	if length > e.vp.screenCols {
		length = e.vp.screenCols
		status = status[:length]
	}
	buf.WriteString(status)

	for length < e.vp.screenCols {
		if e.vp.screenCols-length == len(rStatus) {
			buf.WriteString(rStatus)
			break
		}
		buf.WriteString(" ")
		length++
	}

	buf.WriteString("\x1b[m")
	buf.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(buf *outputBuffer) {
	buf.WriteString("\x1b[K")
	if e.status.Fresh(time.Now()) {
		msg := e.status.Text()
		if len(msg) > e.vp.screenCols {
			msg = msg[:e.vp.screenCols]
		}
		buf.WriteString(msg)
	}
}
