package thainum

import (
	"github.com/pkg/errors"
)

// Tokenize splits a numeral string into its vocabulary tokens using
// longest-match segmentation over the trie. No vocabulary word is a prefix
// of another, so on a grammatical numeral the segmentation is unique and
// covers the whole string with no gaps.
func (v *Vocabulary) Tokenize(text string) ([]Token, error) {
	runes := []rune(text)
	n := len(runes)
	tokens := make([]Token, 0, n/3) // vocabulary words average ~3 runes

	i := 0
	for i < n {
		node := v.trie
		var match *Token
		matchLen := 0

		limit := i + v.maxWordLength
		if limit > n {
			limit = n
		}
		for j := i; j < limit; j++ {
			node = node.getChild(runes[j])
			if node == nil {
				break
			}
			if node.token != nil {
				match = node.token
				matchLen = j - i + 1
			}
		}

		if match == nil {
			return nil, errors.Wrapf(ErrInvalidValue, "unrecognized word at rune %d of %q", i, text)
		}
		tokens = append(tokens, *match)
		i += matchLen
	}

	return tokens, nil
}
