package literal

import "bytes"

// bmhSearcher implements Boyer-Moore-Horspool with Tim Raita's twist: check
// the last byte, then the first, then the middle, before paying for a full
// substring compare. bytes.IndexByte stands in for the memchr jump on the
// leading byte after each shift.
type bmhSearcher struct {
	pat   []byte
	shift [256]int
}

// newBMHSearcher builds the shift table for pat: shift[b] is how far to
// advance when the mismatching byte is b, defaulting to len(pat) and
// otherwise len(pat)-1 minus the last index of b within pat[:len(pat)-1].
func newBMHSearcher(pat []byte) *bmhSearcher {
	s := &bmhSearcher{pat: pat}
	for i := range s.shift {
		s.shift[i] = len(pat)
	}
	for i := 0; i < len(pat)-1; i++ {
		s.shift[pat[i]] = len(pat) - i - 1
	}
	return s
}

// find returns the index of the leftmost occurrence of the pattern in
// haystack, or -1 if absent.
func (s *bmhSearcher) find(haystack []byte) int {
	pat := s.pat
	if len(haystack) < len(pat) {
		return -1
	}
	i := bytes.IndexByte(haystack, pat[0])
	if i < 0 {
		return -1
	}
	for i <= len(haystack)-len(pat) {
		b := haystack[i+len(pat)-1]
		if b == pat[len(pat)-1] &&
			haystack[i] == pat[0] &&
			haystack[i+len(pat)/2] == pat[len(pat)/2] &&
			bytes.Equal(haystack[i:i+len(pat)], pat) {
			return i
		}
		i += s.shift[b]
		j := bytes.IndexByte(haystack[i:], pat[0])
		if j < 0 {
			return -1
		}
		i += j
	}
	return -1
}
