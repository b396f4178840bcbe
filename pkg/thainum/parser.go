package thainum

import (
	"github.com/pkg/errors"
)

// Conversion failures fall into exactly two kinds; callers discriminate
// with errors.Is.
var (
	// ErrInvalidType reports a non-string input to ToNumber.
	ErrInvalidType = errors.New("input must be a string")
	// ErrInvalidValue reports text that does not denote a Thai numeral.
	ErrInvalidValue = errors.New("input is not a valid Thai numeral")
)

// ThaiwordToNum converts a spelled-out Thai numeral into its integer value.
//
//	ThaiwordToNum("ศูนย์")     // 0
//	ThaiwordToNum("สิบเอ็ด")   // 11
//	ThaiwordToNum("สองพัน")    // 2000
//	ThaiwordToNum("สิบห้าล้านล้าน") // 15000000000000
//
// The empty string and any string that is not a grammatical numeral fail
// with ErrInvalidValue. No partial results: either the whole string
// denotes a number or the call fails.
func ThaiwordToNum(word string) (int64, error) {
	if word == "" {
		return 0, errors.Wrap(ErrInvalidValue, "empty input")
	}
	if word == ZeroWord {
		return 0, nil
	}
	if !IsValidNumeral(word) {
		return 0, errors.Wrapf(ErrInvalidValue, "%q", word)
	}

	tokens, err := defaultVocab.Tokenize(word)
	if err != nil {
		return 0, err
	}
	return accumulate(tokens), nil
}

// ToNumber is the dynamically-typed variant of ThaiwordToNum for callers
// holding untyped values (e.g. decoded JSON). Non-string input fails with
// ErrInvalidType.
func ToNumber(v interface{}) (int64, error) {
	word, ok := v.(string)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidType, "got %T", v)
	}
	return ThaiwordToNum(word)
}

// accumulate reduces a token sequence left to right. pending holds a digit
// value not yet bound to a following place word; it starts at 1 so a
// leading place word gets an implicit coefficient of 1.
func accumulate(tokens []Token) int64 {
	var total int64
	pending := int64(1)

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenDigit:
			pending = tok.Value
		case TokenPlace:
			// Absent digit assumed 1 before powers of ten below a million.
			// The grammar keeps pending at its 1 default or an explicit
			// digit here; the floor also covers a relaxed grammar.
			coeff := pending
			if coeff < 1 {
				coeff = 1
			}
			total += coeff * tok.Value
			pending = 0
		case TokenMillion:
			// Absent digit assumed 0 before ล้าน: only the accumulation so
			// far is multiplied. Stacked ล้าน multiplies again.
			total = (total + pending) * tok.Value
			pending = 0
		}
	}

	// Trailing digit with no following place word.
	return total + pending
}
