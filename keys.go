package main

import (
	"errors"
	"io"
)

// Key is a decoded logical key event. Printable bytes and control bytes
// are represented by their own value; named keys live above the byte
// range so they never collide with a literal input byte.
type Key int

const (
	KeyArrowUp Key = iota + 1000
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDel
)

const (
	KeyBackspace = 127
	KeyEnter     = 13
	KeyEsc       = 27
)

// ctrl returns the control-key combination for a literal byte, matching
// the terminal's own behaviour of masking off the high bits.
func ctrl(b byte) Key {
	return Key(b & 0x1f)
}

// decoderState is the state of the small NFA that turns a raw byte
// stream into KeyEvents. Expressed as an explicit machine per the
// "Key decoder as state machine" design note, rather than the nested
// conditionals of the teacher's editorReadKey.
type decoderState int

const (
	stateGround decoderState = iota
	stateEsc
	stateCSI
	stateCSIDigit
	stateSS3
)

// byteSource is the bounded-read contract a keyReader decodes from.
// *Terminal satisfies it; tests use a fake to script byte sequences
// and timeouts without a real TTY.
type byteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// keyReader decodes one KeyEvent per ReadKey call from an underlying
// byte source with a bounded read (see Terminal.ReadByte).
type keyReader struct {
	term byteSource
}

func newKeyReader(t byteSource) *keyReader {
	return &keyReader{term: t}
}

var errReadTimeout = errors.New("read timeout")

// readByteBlocking blocks until a byte is available, retrying on the
// terminal driver's 100ms timeout floor.
func (k *keyReader) readByteBlocking() (byte, error) {
	for {
		b, ok, err := k.term.ReadByte()
		if err != nil {
			return 0, err
		}
		if ok {
			return b, nil
		}
	}
}

// readByteTimeout performs a single bounded read, returning
// errReadTimeout if no byte arrived within the driver's timeout.
func (k *keyReader) readByteTimeout() (byte, error) {
	b, ok, err := k.term.ReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errReadTimeout
	}
	return b, nil
}

// ReadKey blocks until one logical key event has been decoded.
func (k *keyReader) ReadKey() (Key, error) {
	b, err := k.readByteBlocking()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, err
	}

	if b != KeyEsc {
		return Key(b), nil
	}

	state := stateEsc

	first, err := k.readByteTimeout()
	if err != nil {
		if errors.Is(err, errReadTimeout) {
			return KeyEsc, nil
		}
		return 0, err
	}

	switch first {
	case '[':
		state = stateCSI
	case 'O':
		state = stateSS3
	default:
		return KeyEsc, nil
	}

	second, err := k.readByteTimeout()
	if err != nil {
		if errors.Is(err, errReadTimeout) {
			return KeyEsc, nil
		}
		return 0, err
	}

	if state == stateSS3 {
		switch second {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
		return KeyEsc, nil
	}

	// state == stateCSI
	switch {
	case second >= 'A' && second <= 'D':
		switch second {
		case 'A':
			return KeyArrowUp, nil
		case 'B':
			return KeyArrowDown, nil
		case 'C':
			return KeyArrowRight, nil
		case 'D':
			return KeyArrowLeft, nil
		}
	case second == 'H':
		return KeyHome, nil
	case second == 'F':
		return KeyEnd, nil
	case second >= '0' && second <= '9':
		tail, err := k.readByteTimeout()
		if err != nil {
			if errors.Is(err, errReadTimeout) {
				return KeyEsc, nil
			}
			return 0, err
		}
		if tail != '~' {
			return KeyEsc, nil
		}
		switch second {
		case '1', '7':
			return KeyHome, nil
		case '3':
			return KeyDel, nil
		case '4', '8':
			return KeyEnd, nil
		case '5':
			return KeyPageUp, nil
		case '6':
			return KeyPageDown, nil
		}
	}
	return KeyEsc, nil
}
