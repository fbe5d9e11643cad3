package util

// An asciiSet represents a set of ASCII bytes.
// This implementation is adapted from that of the strings package.
type asciiSet [8]uint32

func makeASCIISet(chars string) asciiSet {
	var as asciiSet
	for i := range len(chars) {
		c := chars[i]
		as[c/32] |= 1 << (c % 32)
	}
	return as
}

func (as *asciiSet) contains(c byte) bool {
	return (as[c/32] & (1 << (c % 32))) != 0
}

// bytes that never occur in the path component of a request target
// as exposed by [net/url.URL.Path]: the query and fragment delimiters,
// space, and ASCII control characters.
var pathForbidden = makeASCIISet(
	"?# \x7f" +
		"\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f" +
		"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f",
)

// IsValidPath reports whether p is acceptable as an exact request path,
// i.e. whether p is non-empty, starts with a slash,
// and contains none of the bytes in pathForbidden.
func IsValidPath(p string) bool {
	if len(p) == 0 || p[0] != '/' {
		return false
	}
	for i := range len(p) {
		if pathForbidden.contains(p[i]) {
			return false
		}
	}
	return true
}
