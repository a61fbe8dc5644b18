package checksum

// Filler is appended to a buffer to bring its length up to the alignment
// of the requested width.
const Filler byte = 'X'

// PadAmount returns how many filler bytes a buffer of the given length needs
// to become aligned for w.
func PadAmount(length int, w Width) int {
	alignment := w.Alignment()
	if alignment <= 1 {
		return 0
	}
	return (alignment - length%alignment) % alignment
}

// Pad returns buf extended with filler bytes until its length is a multiple
// of the alignment of w. The input is never modified; when no padding is
// needed buf itself is returned.
func Pad(buf []byte, w Width) []byte {
	n := PadAmount(len(buf), w)
	if n == 0 {
		return buf
	}

	padded := make([]byte, len(buf), len(buf)+n)
	copy(padded, buf)
	for i := 0; i < n; i++ {
		padded = append(padded, Filler)
	}
	return padded
}

// padNone is the pad function for Width8
func padNone(buf []byte) []byte {
	return buf
}

func pad16(buf []byte) []byte {
	return Pad(buf, Width16)
}

func pad32(buf []byte) []byte {
	return Pad(buf, Width32)
}
