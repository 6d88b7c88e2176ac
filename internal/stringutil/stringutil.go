package stringutil

// ToLowerASCII returns s with every ASCII uppercase letter (A-Z) mapped to its lowercase
// equivalent. All other bytes, including those of multibyte UTF-8 sequences, are left
// unchanged, so the result always has the same length as s and byte offsets in both strings
// designate the same characters. If s has no uppercase letter, s is returned as is.
func ToLowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if isUpperASCII(s[i]) {
			break
		}
	}
	if i == len(s) {
		return s
	}

	buf := make([]byte, len(s))
	copy(buf, s[:i])
	for ; i < len(s); i++ {
		buf[i] = LowerASCII(s[i])
	}
	return string(buf)
}

// LowerASCII converts an ASCII uppercase letter (A-Z) to lowercase (a-z).
// All other bytes are returned unchanged. Does not validate ASCII range;
func LowerASCII(b byte) byte {
	if isUpperASCII(b) {
		return b + ('a' - 'A')
	}
	return b
}

func isUpperASCII(b byte) bool {
	return 'A' <= b && b <= 'Z'
}
