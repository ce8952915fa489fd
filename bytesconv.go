package httphead

// The largest accumulator value that can still take one more digit
// without overflowing int64.
const maxClampedPrefix = 922337203685477570

// ParseContentLength parses b as a signed decimal integer the way a
// Content-Length value is read: leading spaces and tabs are skipped, a
// single '-' is accepted, and digits are accumulated up to the first
// non-digit byte. A digit string that would overflow int64 yields 0
// instead of wrapping.
func ParseContentLength(b []byte) int64 {
	var (
		v   int64
		neg bool
		i   int
	)
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}
	for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
		if v > maxClampedPrefix {
			return 0
		}
		v = v*10 + int64(b[i]-'0')
	}
	if neg {
		return -v
	}
	return v
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}
	return c
}

// caseInsensitiveCompare reports whether a and s are equal under ASCII
// case folding. Lengths must match.
func caseInsensitiveCompare(a []byte, s string) bool {
	if len(a) != len(s) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toLower(a[i]) != toLower(s[i]) {
			return false
		}
	}
	return true
}

// hasPrefixFold reports whether a begins with prefix under ASCII case folding.
func hasPrefixFold(a []byte, prefix string) bool {
	return len(a) >= len(prefix) && caseInsensitiveCompare(a[:len(prefix)], prefix)
}

// parseUint parses an all-digit status code. Returns -1 on any non-digit.
func parseUint(b []byte) int {
	if len(b) == 0 {
		return -1
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return -1
		}
		if n > 1<<20 {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	return n
}
