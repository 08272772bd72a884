package termback

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vito/scrim/pkg/scrim"
)

// decodeAll turns raw terminal input into events. It returns whatever
// trailing bytes form an incomplete sequence so the caller can retry
// once more input arrives.
func decodeAll(data []byte) ([]scrim.Event, []byte) {
	var evs []scrim.Event
	for len(data) > 0 {
		ev, n, incomplete := decodeOne(data)
		if incomplete {
			break
		}
		data = data[n:]
		if ev != nil {
			evs = append(evs, ev)
		}
	}
	return evs, data
}

// decodeOne decodes the first event in data. A lone trailing escape
// byte is taken as the Esc key rather than held back: a real escape
// sequence arrives in one burst, a human pressing Esc does not.
func decodeOne(data []byte) (ev scrim.Event, n int, incomplete bool) {
	switch b := data[0]; {
	case b == 0x1b:
		return decodeEscape(data)
	case b == '\r' || b == '\n':
		return scrim.KeyEvent{Key: scrim.KeyEnter}, 1, false
	case b == '\t':
		return scrim.KeyEvent{Key: scrim.KeyTab}, 1, false
	case b == 0x7f || b == 0x08:
		return scrim.KeyEvent{Key: scrim.KeyBackspace}, 1, false
	case b == 0x03:
		return scrim.ExitEvent{}, 1, false
	case b < 0x20:
		if b >= 0x01 && b <= 0x1a {
			return scrim.CharEvent{Rune: rune('a' + b - 1), Mod: scrim.ModCtrl}, 1, false
		}
		return nil, 1, false
	default:
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && !utf8.FullRune(data) {
			return nil, 0, true
		}
		if r == utf8.RuneError {
			return nil, size, false
		}
		return scrim.CharEvent{Rune: r}, size, false
	}
}

func decodeEscape(data []byte) (ev scrim.Event, n int, incomplete bool) {
	if len(data) == 1 {
		return scrim.KeyEvent{Key: scrim.KeyEsc}, 1, false
	}
	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		return decodeSS3(data)
	default:
		// Alt chord: escape followed by the plain keystroke.
		inner, size, incomplete := decodeOne(data[1:])
		if incomplete {
			return nil, 0, true
		}
		return withAlt(inner), 1 + size, false
	}
}

func withAlt(ev scrim.Event) scrim.Event {
	switch ev := ev.(type) {
	case scrim.CharEvent:
		ev.Mod |= scrim.ModAlt
		return ev
	case scrim.KeyEvent:
		ev.Mod |= scrim.ModAlt
		return ev
	default:
		return ev
	}
}

// decodeCSI handles "\x1b[" sequences: cursor keys, function keys,
// tilde-coded keys with optional modifiers, and SGR mouse reports.
func decodeCSI(data []byte) (ev scrim.Event, n int, incomplete bool) {
	i := 2
	for ; ; i++ {
		if i >= len(data) {
			return nil, 0, true
		}
		if data[i] >= 0x40 && data[i] <= 0x7e {
			break
		}
	}
	body, final := string(data[2:i]), data[i]
	n = i + 1

	if strings.HasPrefix(body, "<") {
		return decodeSGRMouse(body[1:], final), n, false
	}

	params := csiParams(body)
	mod := scrim.Mod(0)
	if len(params) >= 2 {
		mod = modFromParam(params[1])
	}

	switch final {
	case 'A':
		return scrim.KeyEvent{Key: scrim.KeyUp, Mod: mod}, n, false
	case 'B':
		return scrim.KeyEvent{Key: scrim.KeyDown, Mod: mod}, n, false
	case 'C':
		return scrim.KeyEvent{Key: scrim.KeyRight, Mod: mod}, n, false
	case 'D':
		return scrim.KeyEvent{Key: scrim.KeyLeft, Mod: mod}, n, false
	case 'H':
		return scrim.KeyEvent{Key: scrim.KeyHome, Mod: mod}, n, false
	case 'F':
		return scrim.KeyEvent{Key: scrim.KeyEnd, Mod: mod}, n, false
	case 'Z':
		return scrim.KeyEvent{Key: scrim.KeyBacktab, Mod: mod}, n, false
	case '~':
		if len(params) == 0 {
			return nil, n, false
		}
		if key, ok := tildeKeys[params[0]]; ok {
			return scrim.KeyEvent{Key: key, Mod: mod}, n, false
		}
	}
	return nil, n, false
}

var tildeKeys = map[int]scrim.Key{
	1:  scrim.KeyHome,
	2:  scrim.KeyIns,
	3:  scrim.KeyDel,
	4:  scrim.KeyEnd,
	5:  scrim.KeyPageUp,
	6:  scrim.KeyPageDown,
	7:  scrim.KeyHome,
	8:  scrim.KeyEnd,
	11: scrim.KeyF1,
	12: scrim.KeyF2,
	13: scrim.KeyF3,
	14: scrim.KeyF4,
	15: scrim.KeyF5,
	17: scrim.KeyF6,
	18: scrim.KeyF7,
	19: scrim.KeyF8,
	20: scrim.KeyF9,
	21: scrim.KeyF10,
	23: scrim.KeyF11,
	24: scrim.KeyF12,
}

// decodeSS3 handles "\x1bO" sequences, the application-mode spellings
// of F1 through F4 and the cursor keys.
func decodeSS3(data []byte) (ev scrim.Event, n int, incomplete bool) {
	if len(data) < 3 {
		return nil, 0, true
	}
	n = 3
	switch data[2] {
	case 'P':
		return scrim.KeyEvent{Key: scrim.KeyF1}, n, false
	case 'Q':
		return scrim.KeyEvent{Key: scrim.KeyF2}, n, false
	case 'R':
		return scrim.KeyEvent{Key: scrim.KeyF3}, n, false
	case 'S':
		return scrim.KeyEvent{Key: scrim.KeyF4}, n, false
	case 'A':
		return scrim.KeyEvent{Key: scrim.KeyUp}, n, false
	case 'B':
		return scrim.KeyEvent{Key: scrim.KeyDown}, n, false
	case 'C':
		return scrim.KeyEvent{Key: scrim.KeyRight}, n, false
	case 'D':
		return scrim.KeyEvent{Key: scrim.KeyLeft}, n, false
	case 'H':
		return scrim.KeyEvent{Key: scrim.KeyHome}, n, false
	case 'F':
		return scrim.KeyEvent{Key: scrim.KeyEnd}, n, false
	}
	return nil, n, false
}

// decodeSGRMouse handles "\x1b[<b;x;yM" reports (final 'm' for release).
func decodeSGRMouse(body string, final byte) scrim.Event {
	parts := strings.Split(body, ";")
	if len(parts) != 3 {
		return nil
	}
	code, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}

	ev := scrim.MouseEvent{Pos: scrim.XY(x-1, y-1)}
	switch {
	case code&64 != 0:
		if code&1 == 0 {
			ev.Action = scrim.MouseWheelUp
		} else {
			ev.Action = scrim.MouseWheelDown
		}
	default:
		switch code & 3 {
		case 0:
			ev.Btn = scrim.ButtonLeft
		case 1:
			ev.Btn = scrim.ButtonMiddle
		case 2:
			ev.Btn = scrim.ButtonRight
		default:
			return nil
		}
		switch {
		case final == 'm':
			ev.Action = scrim.MouseRelease
		case code&32 != 0:
			ev.Action = scrim.MouseHold
		default:
			ev.Action = scrim.MousePress
		}
	}
	return ev
}

func csiParams(body string) []int {
	if body == "" {
		return nil
	}
	parts := strings.Split(body, ";")
	params := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			v = 0
		}
		params = append(params, v)
	}
	return params
}

func modFromParam(p int) scrim.Mod {
	if p <= 1 {
		return 0
	}
	bits := p - 1
	var m scrim.Mod
	if bits&1 != 0 {
		m |= scrim.ModShift
	}
	if bits&2 != 0 {
		m |= scrim.ModAlt
	}
	if bits&4 != 0 {
		m |= scrim.ModCtrl
	}
	return m
}
