package organizer

// letterPrefix converts a zero-based position into a bijective base-26 label:
// 0 -> "a", 25 -> "z", 26 -> "aa", 27 -> "ab". Shorter labels always come
// earlier in the sequence, so ordering prefixed names by (length, value)
// reproduces copy order exactly.
func letterPrefix(position int) string {
	n := position + 1
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('a' + n%26)
		n /= 26
	}
	return string(buf[i:])
}
