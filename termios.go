package main

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA

	// readTimeoutDeciseconds is VTIME in tenths of a second: a read
	// returns after at most 100ms even with no bytes available.
	readTimeoutDeciseconds = 1
)

// Terminal wraps the file descriptor of a TTY and owns the original
// termios so it can be restored on every exit path, including fatal
// error.
type Terminal struct {
	fd       int
	orig     unix.Termios
	rawSet   bool
	scratch  [1]byte
}

// NewTerminal binds a driver to the given file's descriptor (typically
// os.Stdin).
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{fd: int(f.Fd())}
}

// EnterRaw disables the flags listed in spec.md §4.1 and sets the
// character size to 8 bits with a 100ms read-timeout floor. The
// original termios is saved so LeaveRaw can restore it.
func (t *Terminal) EnterRaw() error {
	termios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	t.orig = *termios

	raw := *termios
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.INPCK |
		unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = readTimeoutDeciseconds

	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}
	t.rawSet = true
	return nil
}

// LeaveRaw restores the termios saved by EnterRaw. Safe to call more
// than once; a no-op if raw mode was never entered.
func (t *Terminal) LeaveRaw() error {
	if !t.rawSet {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.orig); err != nil {
		return fmt.Errorf("restore termios: %w", err)
	}
	t.rawSet = false
	return nil
}

// ReadByte performs one bounded read. ok is false when the 100ms
// timeout elapsed with no byte available.
func (t *Terminal) ReadByte() (b byte, ok bool, err error) {
	n, err := unix.Read(t.fd, t.scratch[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return t.scratch[0], true, nil
}

// WindowSize returns the terminal's row/column count, preferring the
// ioctl path and falling back to the cursor-position-report trick.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	if _, werr := os.Stdout.Write([]byte("\x1b[999C\x1b[999B")); werr != nil {
		return 0, 0, fmt.Errorf("probe cursor position: %w", werr)
	}
	return t.cursorPosition()
}

// cursorPosition issues a DSR query (ESC[6n) and parses the terminal's
// reply ESC [ rows ; cols R.
func (t *Terminal) cursorPosition() (rows, cols int, err error) {
	if _, err := os.Stdout.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("query cursor position: %w", err)
	}

	var buf bytes.Buffer
	var b [1]byte
	for {
		n, rerr := unix.Read(t.fd, b[:])
		if rerr != nil {
			return 0, 0, fmt.Errorf("read cursor position reply: %w", rerr)
		}
		if n == 0 {
			continue
		}
		if b[0] == 'R' {
			break
		}
		buf.WriteByte(b[0])
	}

	reply := buf.Bytes()
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, fmt.Errorf("malformed cursor position reply: %q", reply)
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parse cursor position reply: %w", err)
	}
	return rows, cols, nil
}
