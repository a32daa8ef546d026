package id

import "crypto/rand"

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewCode returns prefix + n random characters from an unambiguous
// upper-case alphabet, e.g. NewCode("LN-", 10) -> "LN-7KQZM2XWPD".
func NewCode(prefix string, n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	out := make([]byte, 0, len(prefix)+n)
	out = append(out, prefix...)
	for _, c := range b {
		out = append(out, codeAlphabet[int(c)%len(codeAlphabet)])
	}
	return string(out)
}
