package thainum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		input    string
		expected []Token
	}{
		{
			input: "สิบเอ็ด",
			expected: []Token{
				{Word: "สิบ", Kind: TokenPlace, Value: 10},
				{Word: "เอ็ด", Kind: TokenDigit, Value: 1},
			},
		},
		{
			input: "สองล้านสามแสน",
			expected: []Token{
				{Word: "สอง", Kind: TokenDigit, Value: 2},
				{Word: "ล้าน", Kind: TokenMillion, Value: 1000000},
				{Word: "สาม", Kind: TokenDigit, Value: 3},
				{Word: "แสน", Kind: TokenPlace, Value: 100000},
			},
		},
		{
			input: "ล้านล้าน",
			expected: []Token{
				{Word: "ล้าน", Kind: TokenMillion, Value: 1000000},
				{Word: "ล้าน", Kind: TokenMillion, Value: 1000000},
			},
		},
		{
			input: "ยี่สิบเก้า",
			expected: []Token{
				{Word: "ยี่", Kind: TokenDigit, Value: 2},
				{Word: "สิบ", Kind: TokenPlace, Value: 10},
				{Word: "เก้า", Kind: TokenDigit, Value: 9},
			},
		},
	}
	for _, c := range cases {
		tokens, err := DefaultVocabulary().Tokenize(c.input)
		require.NoError(t, err, "input %q", c.input)
		require.Equal(t, c.expected, tokens, "input %q", c.input)
	}
}

func TestTokenizeUnknownWord(t *testing.T) {
	for _, s := range []string{"กขค", "สิบqเอ็ด", "ศูนย์"} {
		_, err := DefaultVocabulary().Tokenize(s)
		require.ErrorIs(t, err, ErrInvalidValue, "input %q", s)
	}
}

func TestVocabularyLookup(t *testing.T) {
	v := DefaultVocabulary()

	require.True(t, v.Contains("หนึ่ง"))
	require.True(t, v.Contains("แสน"))
	require.True(t, v.Contains("ล้าน"))
	require.False(t, v.Contains("ศูนย์")) // zero is a literal, not a token
	require.False(t, v.Contains(""))

	tok, ok := v.Lookup("หมื่น")
	require.True(t, ok)
	require.Equal(t, Token{Word: "หมื่น", Kind: TokenPlace, Value: 10000}, tok)

	tok, ok = v.Lookup("ยี่")
	require.True(t, ok)
	require.Equal(t, Token{Word: "ยี่", Kind: TokenDigit, Value: 2}, tok)

	_, ok = v.Lookup("หนึ่งสอง")
	require.False(t, ok)
}

// The default vocabulary is built once and handed out by reference.
func TestDefaultVocabularyShared(t *testing.T) {
	require.Same(t, DefaultVocabulary(), DefaultVocabulary())
}

func BenchmarkTokenize(b *testing.B) {
	v := DefaultVocabulary()
	for i := 0; i < b.N; i++ {
		if _, err := v.Tokenize("สองล้านสามแสนหกร้อยสิบสอง"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkThaiwordToNum(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ThaiwordToNum("สิบห้าล้านล้าน"); err != nil {
			b.Fatal(err)
		}
	}
}
