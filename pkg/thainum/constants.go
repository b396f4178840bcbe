package thainum

// Unicode character classification utilities for Thai script.
// Thai Unicode Block: U+0E00 - U+0E7F

const (
	thaiStart = 0x0E00
	thaiEnd   = 0x0E7F
	thaiRange = thaiEnd - thaiStart + 1 // 128
)

// IsThaiChar checks if character is in the Thai Unicode range
func IsThaiChar(r rune) bool {
	return r >= thaiStart && r <= thaiEnd
}
