package thainum

// TokenKind classifies a vocabulary word by its role in a numeral.
type TokenKind int

const (
	// TokenDigit is a digit word with a value in [1, 9].
	TokenDigit TokenKind = iota
	// TokenPlace is a place-value word from สิบ (10) to แสน (100000).
	TokenPlace
	// TokenMillion is ล้าน (1000000), which stacks for higher powers.
	TokenMillion
)

// Token is one vocabulary word recognized inside a numeral string.
type Token struct {
	Word  string
	Kind  TokenKind
	Value int64
}

const (
	// ZeroWord denotes 0 on its own and combines with nothing else.
	ZeroWord = "ศูนย์"
	// MillionWord is the chainable x1000000 multiplier.
	MillionWord = "ล้าน"

	millionValue = 1000000
)

// Digits maps Thai digit words to their values. เอ็ด and ยี่ are the
// alternate forms of 1 and 2 used only in the units and tens positions.
var Digits = map[string]int64{
	"หนึ่ง": 1,
	"เอ็ด":  1,
	"สอง":   2,
	"ยี่":   2,
	"สาม":   3,
	"สี่":   4,
	"ห้า":   5,
	"หก":    6,
	"เจ็ด":  7,
	"แปด":   8,
	"เก้า":  9,
}

// PowersOfTen maps Thai place-value words to their multipliers.
// ล้าน is excluded; it stacks and gets its own token kind.
var PowersOfTen = map[string]int64{
	"สิบ":   10,
	"ร้อย":  100,
	"พัน":   1000,
	"หมื่น": 10000,
	"แสน":   100000,
}

// trieNode stores vocabulary words with flat array optimization for the
// Thai Unicode range (0x0E00-0x0E7F).
type trieNode struct {
	// Flat array for O(1) Thai character lookup
	thaiChildren [thaiRange]*trieNode
	// Fallback map for non-Thai characters
	otherChildren map[rune]*trieNode
	token         *Token
}

func (n *trieNode) getChild(r rune) *trieNode {
	if r >= thaiStart && r <= thaiEnd {
		return n.thaiChildren[r-thaiStart]
	}
	if n.otherChildren == nil {
		return nil
	}
	return n.otherChildren[r]
}

func (n *trieNode) getOrCreateChild(r rune) *trieNode {
	if r >= thaiStart && r <= thaiEnd {
		idx := r - thaiStart
		if n.thaiChildren[idx] == nil {
			n.thaiChildren[idx] = &trieNode{}
		}
		return n.thaiChildren[idx]
	}
	if n.otherChildren == nil {
		n.otherChildren = make(map[rune]*trieNode)
	}
	child, exists := n.otherChildren[r]
	if !exists {
		child = &trieNode{}
		n.otherChildren[r] = child
	}
	return child
}

// Vocabulary holds the fixed numeral word set and its lookup trie.
// It is immutable after construction and safe for concurrent readers.
type Vocabulary struct {
	words         map[string]Token
	maxWordLength int
	trie          *trieNode
}

// NewVocabulary builds a vocabulary from the digit words, the place-value
// words, and the million word.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		words: make(map[string]Token),
		trie:  &trieNode{},
	}
	for word, value := range Digits {
		v.add(Token{Word: word, Kind: TokenDigit, Value: value})
	}
	for word, value := range PowersOfTen {
		v.add(Token{Word: word, Kind: TokenPlace, Value: value})
	}
	v.add(Token{Word: MillionWord, Kind: TokenMillion, Value: millionValue})
	return v
}

func (v *Vocabulary) add(tok Token) {
	v.words[tok.Word] = tok
	wordLen := len([]rune(tok.Word))
	if wordLen > v.maxWordLength {
		v.maxWordLength = wordLen
	}
	node := v.trie
	for _, r := range tok.Word {
		node = node.getOrCreateChild(r)
	}
	leaf := tok
	node.token = &leaf
}

// Contains checks if a word is in the vocabulary
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.words[word]
	return ok
}

// Lookup returns the token for an exact vocabulary word.
func (v *Vocabulary) Lookup(word string) (Token, bool) {
	tok, ok := v.words[word]
	return tok, ok
}

// defaultVocab is the process-wide vocabulary: built once at init,
// never mutated afterwards, shared by read-only reference.
var defaultVocab = NewVocabulary()

// DefaultVocabulary returns the shared numeral vocabulary.
func DefaultVocabulary() *Vocabulary {
	return defaultVocab
}
