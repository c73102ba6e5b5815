package chip8

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Keys is the pressed state of the 16 keypad keys, indexed by hex value 0x0-0xF.
type Keys [KeyCount]bool

// newlyPressed returns the lowest key that is pressed in k but was not pressed in prev.
func (k Keys) newlyPressed(prev Keys) (byte, bool) {
	for i, down := range k {
		if down && !prev[i] {
			return byte(i), true
		}
	}
	return 0, false
}

// keypad tracks the current key state and a pending key wait started by Fx0A.
type keypad struct {
	keys     Keys
	waiting  bool
	register byte
}

// set replaces the key state. If a key wait is pending and a key went down
// since the previous state, it returns that key and ends the wait.
func (k *keypad) set(keys Keys) (key byte, resolved bool) {
	prev := k.keys
	k.keys = keys
	if !k.waiting {
		return 0, false
	}
	key, resolved = keys.newlyPressed(prev)
	if resolved {
		k.waiting = false
	}
	return key, resolved
}

func (k *keypad) pressed(key byte) bool {
	return k.keys[key&0xF]
}
