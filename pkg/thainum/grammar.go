package thainum

import (
	"strings"
)

// Structural grammar of a spelled-out Thai integer, expressed as a slot
// acceptor over the word vocabulary. A numeral is zero or more groups each
// terminated by ล้าน, then at most one trailing group. A group is one
// descending run of optional digit+place pairs (แสน หมื่น พัน ร้อย สิบ),
// then an optional trailing digit. Each place word appears at most once.

// placeSlot is one descending place of a group together with the digit
// words allowed as its coefficient.
type placeSlot struct {
	word   string
	digits []string
}

var (
	// สอง is the only form of 2 before แสน..ร้อย; ยี่ replaces it before
	// สิบ, and เอ็ด joins หนึ่ง only in the trailing units position.
	standardDigits = []string{"หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}
	tensDigits     = []string{"หนึ่ง", "ยี่", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}
	unitDigits     = []string{"หนึ่ง", "เอ็ด", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}

	groupSlots = []placeSlot{
		{word: "แสน", digits: standardDigits},
		{word: "หมื่น", digits: standardDigits},
		{word: "พัน", digits: standardDigits},
		{word: "ร้อย", digits: standardDigits},
		{word: "สิบ", digits: tensDigits},
	}
)

// matchAny returns the byte length of the word in words that prefixes
// s[pos:], or 0 when none does. No vocabulary word is a prefix of another,
// so at most one word can match.
func matchAny(s string, pos int, words []string) int {
	for _, w := range words {
		if strings.HasPrefix(s[pos:], w) {
			return len(w)
		}
	}
	return 0
}

// matchGroup consumes one group starting at pos and returns the position
// after the last consumed byte. Every slot is optional, so a group may be
// empty and pos comes back unchanged.
func matchGroup(s string, pos int) int {
	for _, slot := range groupSlots {
		if dl := matchAny(s, pos, slot.digits); dl > 0 && strings.HasPrefix(s[pos+dl:], slot.word) {
			pos += dl + len(slot.word)
			continue
		}
		if strings.HasPrefix(s[pos:], slot.word) {
			pos += len(slot.word)
		}
	}
	return pos + matchAny(s, pos, unitDigits)
}

// IsValidNumeral reports whether s is a well-formed spelled-out Thai
// integer. The whole string must be consumed; a prefix match is a failure.
// The zero word is valid only on its own.
func IsValidNumeral(s string) bool {
	if s == "" {
		return false
	}
	if s == ZeroWord {
		return true
	}
	// Every vocabulary word is Thai script; anything else cannot match.
	for _, r := range s {
		if !IsThaiChar(r) {
			return false
		}
	}
	pos := 0
	for {
		end := matchGroup(s, pos)
		if strings.HasPrefix(s[end:], MillionWord) {
			pos = end + len(MillionWord)
			continue
		}
		pos = end
		break
	}
	return pos == len(s)
}
