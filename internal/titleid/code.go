package titleid

import (
	"encoding/binary"
	"fmt"
)

// reservedSlots is the number of install slots the platform keeps for itself.
const reservedSlots = 4095

// iosCodeLimit bounds the codes treated as system firmware (IOS) modules.
const iosCodeLimit = 255

// CodeString renders the four big-endian bytes of code, replacing anything
// outside [32,128) with '.'.
func CodeString(code uint32) string {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], code)
	out := make([]byte, len(raw))
	for i, b := range raw {
		if b >= 32 && b < 128 {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// InstallIndex converts a raw slot into the displayed install index. Slots
// below the reserved range yield negative values.
func InstallIndex(slot uint16) int {
	return int(slot) - reservedSlots
}

// HexHalf formats a 32-bit half as 8 uppercase, zero-padded hex digits.
func HexHalf(v uint32) string {
	return fmt.Sprintf("%08X", v)
}
