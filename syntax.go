package main

import "strings"

// Syntax is a filetype descriptor: the static record describing how to
// highlight a family of files (spec.md §3, "Filetype descriptor").
type Syntax struct {
	Name             string
	FileMatch        []string // patterns; a leading '.' matches an extension
	Keywords         []string // trailing '|' marks a secondary (type) keyword
	CommentStart     string
	HighlightNumbers bool
	HighlightStrings bool
}

// hldb is the built-in filetype table. The teacher
// (_examples/ekediala-kilo/kilo.go) declares a Go_HL_extension constant
// but never wires it into a full editorSyntax entry with keywords;
// SPEC_FULL completes that, per SPEC_FULL.md §4.4a.
var hldb = []*Syntax{
	{
		Name:      "c",
		FileMatch: []string{".c", ".h", ".cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return",
			"else", "struct", "union", "typedef", "static", "enum", "class",
			"case", "default", "goto",
			"int|", "long|", "double|", "float|", "char|", "unsigned|",
			"signed|", "void|",
		},
		CommentStart:     "//",
		HighlightNumbers: true,
		HighlightStrings: true,
	},
	{
		Name:      "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"func", "package", "import", "return", "if", "else", "for",
			"range", "switch", "case", "default", "break", "continue",
			"struct", "interface", "map", "chan", "go", "defer", "select",
			"var", "const", "type",
			"int|", "int32|", "int64|", "uint|", "uint32|", "uint64|",
			"float32|", "float64|", "string|", "bool|", "byte|", "rune|",
			"error|",
		},
		CommentStart:     "//",
		HighlightNumbers: true,
		HighlightStrings: true,
	},
}

// selectSyntax returns the first descriptor whose pattern matches
// filename, or nil if none matches (spec.md §4.4, "Filetype selection").
func selectSyntax(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	for _, syn := range hldb {
		for _, pattern := range syn.FileMatch {
			if strings.HasPrefix(pattern, ".") {
				if strings.HasSuffix(filename, pattern) {
					return syn
				}
				continue
			}
			if strings.Contains(filename, pattern) {
				return syn
			}
		}
	}
	return nil
}

// isSeparator reports whether b is whitespace, NUL, or one of the
// punctuation separators listed in spec.md §4.4.
func isSeparator(b byte) bool {
	if b == 0 || b == ' ' || b == '\t' {
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", b) >= 0
}

// updateSyntax runs the single left-to-right five-rule pass over
// row.render described in spec.md §4.4, writing row.hl. syn may be nil,
// in which case every byte stays HLNormal.
func updateSyntax(row *Row, syn *Syntax) {
	for i := range row.hl {
		row.hl[i] = HLNormal
	}
	if syn == nil {
		return
	}

	render := row.render
	prevSep := true
	inString := byte(0)

	i := 0
	for i < len(render) {
		c := render[i]
		var prevHL Highlight
		if i > 0 {
			prevHL = row.hl[i-1]
		} else {
			prevHL = HLNormal
		}

		// Rule 1: single-line comment.
		if inString == 0 && syn.CommentStart != "" &&
			strings.HasPrefix(render[i:], syn.CommentStart) {
			for j := i; j < len(render); j++ {
				row.hl[j] = HLComment
			}
			break
		}

		// Rule 2: string.
		if syn.HighlightStrings {
			if inString != 0 {
				row.hl[i] = HLString
				if c == '\\' && i+1 < len(render) {
					row.hl[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HLString
				i++
				continue
			}
		}

		// Rule 3: number.
		if syn.HighlightNumbers {
			isDigit := c >= '0' && c <= '9'
			if (isDigit && (prevSep || prevHL == HLNumber)) ||
				(c == '.' && prevHL == HLNumber) {
				row.hl[i] = HLNumber
				i++
				prevSep = false
				continue
			}
		}

		// Rule 4: keyword.
		if prevSep {
			if kw, secondary, ok := matchKeyword(render[i:], syn.Keywords); ok {
				class := HLKeyword1
				if secondary {
					class = HLKeyword2
				}
				for j := 0; j < len(kw); j++ {
					row.hl[i+j] = class
				}
				i += len(kw)
				prevSep = true
				continue
			}
		}

		// Rule 5: default.
		prevSep = isSeparator(c)
		i++
	}
}

// matchKeyword looks for a keyword from list at the start of s,
// requiring a separator (or end of string) immediately after the
// match. A trailing '|' on the stored keyword marks it secondary and
// is excluded from the match itself.
func matchKeyword(s string, list []string) (matched string, secondary bool, ok bool) {
	for _, kw := range list {
		word := kw
		sec := false
		if strings.HasSuffix(word, "|") {
			word = word[:len(word)-1]
			sec = true
		}
		if len(word) == 0 || !strings.HasPrefix(s, word) {
			continue
		}
		var after byte
		if len(s) > len(word) {
			after = s[len(word)]
		}
		if isSeparator(after) {
			return word, sec, true
		}
	}
	return "", false, false
}

// syntaxColor maps a highlight class to its SGR color code
// (spec.md §4.4, "Color mapping").
func syntaxColor(hl Highlight) int {
	switch hl {
	case HLComment:
		return 36
	case HLKeyword1:
		return 33
	case HLKeyword2:
		return 31
	case HLString:
		return 35
	case HLNumber:
		return 32
	case HLMatch:
		return 34
	default:
		return 39
	}
}
