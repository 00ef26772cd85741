package terminal

import (
	"fmt"
	"unicode/utf8"
)

// KeyCode identifies a decoded keystroke.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyCtrlD
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

var keyNames = map[KeyCode]string{
	KeyNone:      "none",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlD:     "ctrl+d",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyHome:      "home",
	KeyEnd:       "end",
}

// Key is a single keystroke. Rune is set for KeyRune only.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey returns the Key for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func (k Key) String() string {
	if k.Code == KeyRune {
		return string(k.Rune)
	}
	if name, ok := keyNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k.Code))
}

// KeyReader reads one keystroke at a time.
type KeyReader interface {
	ReadKey() (Key, error)
}

// csiKeys maps the final byte of "ESC [ x" and "ESC O x" sequences.
var csiKeys = map[byte]KeyCode{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeKeys maps the numeric parameter of "ESC [ n ~" sequences.
var tildeKeys = map[string]KeyCode{
	"1": KeyHome,
	"4": KeyEnd,
	"5": KeyPageUp,
	"6": KeyPageDown,
	"7": KeyHome,
	"8": KeyEnd,
}

// DecodeKey decodes the first keystroke in b and returns it together with
// the number of bytes it occupied. Unrecognized escape sequences decode as
// KeyNone and are consumed whole. A zero length means b holds an incomplete
// sequence and more input is needed.
func DecodeKey(b []byte) (Key, int) {
	if len(b) == 0 {
		return Key{Code: KeyNone}, 0
	}

	switch b[0] {
	case 0x03:
		return Key{Code: KeyCtrlC}, 1
	case 0x04:
		return Key{Code: KeyCtrlD}, 1
	case '\r', '\n':
		return Key{Code: KeyEnter}, 1
	case '\t':
		return Key{Code: KeyTab}, 1
	case 0x7f, 0x08:
		return Key{Code: KeyBackspace}, 1
	case 0x1b:
		return decodeEscape(b)
	}

	if !utf8.FullRune(b) {
		return Key{Code: KeyNone}, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return Key{Code: KeyNone}, 1
	}
	return RuneKey(r), size
}

func decodeEscape(b []byte) (Key, int) {
	if len(b) == 1 || (b[1] != '[' && b[1] != 'O') {
		return Key{Code: KeyEscape}, 1
	}
	if len(b) == 2 {
		return Key{Code: KeyNone}, 0
	}

	if code, ok := csiKeys[b[2]]; ok {
		return Key{Code: code}, 3
	}
	if b[1] == 'O' {
		return Key{Code: KeyNone}, 3
	}

	// ESC [ params final
	for i := 2; i < len(b); i++ {
		c := b[i]
		if c >= 0x40 && c <= 0x7e {
			if c == '~' {
				if code, ok := tildeKeys[string(b[2:i])]; ok {
					return Key{Code: code}, i + 1
				}
			}
			if code, ok := csiKeys[c]; ok {
				return Key{Code: code}, i + 1
			}
			return Key{Code: KeyNone}, i + 1
		}
	}
	return Key{Code: KeyNone}, 0
}
