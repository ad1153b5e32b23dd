package voikko

import "unicode/utf8"

// The engine reports lengths and offsets in Unicode characters while
// Go strings index by byte. Every conversion between the two units goes
// through here.

// byteLen returns the number of bytes spanned by the first n characters
// of s, or len(s) when s has fewer than n characters.
func byteLen(s string, n int) int {
	off := 0
	for i := 0; i < n && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
