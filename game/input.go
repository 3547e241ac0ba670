package game

import "strings"

// Key is one of the inputs the simulation understands
type Key uint8

const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
	KeyMissile
)

// Keys is the set of keys held during a frame. It is read, never consumed.
type Keys uint8

// Has reports whether k is held
func (ks Keys) Has(k Key) bool {
	return ks&Keys(k) != 0
}

// With returns the set with k added
func (ks Keys) With(k Key) Keys {
	return ks | Keys(k)
}

// Without returns the set with k removed
func (ks Keys) Without(k Key) Keys {
	return ks &^ Keys(k)
}

// HeldKeys builds a set from individual keys
func HeldKeys(keys ...Key) Keys {
	var ks Keys
	for _, k := range keys {
		ks = ks.With(k)
	}
	return ks
}

// ParseKey maps a DOM-style key code to a Key. Unrecognized codes report false
// and are meant to be ignored.
func ParseKey(code string) (Key, bool) {
	switch strings.TrimSpace(code) {
	case "ArrowUp":
		return KeyUp, true
	case "ArrowDown":
		return KeyDown, true
	case "ArrowLeft":
		return KeyLeft, true
	case "ArrowRight":
		return KeyRight, true
	case "Space":
		return KeyMissile, true
	default:
		return 0, false
	}
}

// ParseKeys builds a set from key codes, skipping unknown ones
func ParseKeys(codes ...string) Keys {
	var ks Keys
	for _, code := range codes {
		if k, ok := ParseKey(code); ok {
			ks = ks.With(k)
		}
	}
	return ks
}
