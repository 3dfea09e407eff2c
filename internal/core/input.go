package core

import "sort"

// Key names understood by the engine. Shells map their physical keys to these.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyA          = "a"
	KeyD          = "d"
	KeyW          = "w"
	KeyS          = "s"
	KeyFire       = " "
)

// ControlMode is the input device the player picked.
// It is informational: the engine consults touch and gyro targets by presence.
type ControlMode string

const (
	ControlKeyboard ControlMode = "keyboard"
	ControlMouse    ControlMode = "mouse"
	ControlGyro     ControlMode = "gyro"
)

// KeySet is the raw key-down state.
type KeySet map[string]bool

// Any returns true if at least one of the named keys is down.
func (k KeySet) Any(names ...string) bool {
	for _, n := range names {
		if k[n] {
			return true
		}
	}
	return false
}

// Clone creates a copy containing only the keys that are down.
func (k KeySet) Clone() KeySet {
	clone := make(KeySet, len(k))
	for name, down := range k {
		if down {
			clone[name] = true
		}
	}
	return clone
}

// Names returns the sorted names of all keys that are down.
func (k KeySet) Names() []string {
	names := make([]string, 0, len(k))
	for name, down := range k {
		if down {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
