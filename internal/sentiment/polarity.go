package sentiment

import "strings"

// PolarityScorer turns free text into a sentiment polarity in [-1,1].
type PolarityScorer interface {
	Score(text string) float64
}

// LexiconScorer is a word-list polarity scorer. It is deliberately
// simple: polarity is the balance of positive and negative token hits,
// with a bare "not"/"no" flipping the following sentiment word.
type LexiconScorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

var positiveWords = []string{
	"bullish", "moon", "mooning", "pump", "pumping", "rally", "surge",
	"breakout", "gain", "gains", "profit", "profits", "up", "soar",
	"soaring", "strong", "buy", "buying", "hold", "hodl", "good",
	"great", "excellent", "amazing", "love", "winner", "winning",
	"undervalued", "gem", "solid", "promising", "growth", "adoption",
	"partnership", "upgrade", "ath", "green", "rocket", "best",
}

var negativeWords = []string{
	"bearish", "dump", "dumping", "crash", "crashing", "scam", "rug",
	"rugpull", "fraud", "drop", "dropping", "down", "plunge", "plunging",
	"weak", "sell", "selling", "loss", "losses", "bad", "terrible",
	"awful", "hate", "loser", "losing", "overvalued", "bubble", "dead",
	"fear", "panic", "lawsuit", "hack", "hacked", "exploit", "red",
	"bleeding", "worst", "avoid", "warning", "ponzi",
}

// NewLexiconScorer builds the default scorer.
func NewLexiconScorer() *LexiconScorer {
	s := &LexiconScorer{
		positive: make(map[string]struct{}, len(positiveWords)),
		negative: make(map[string]struct{}, len(negativeWords)),
	}
	for _, w := range positiveWords {
		s.positive[w] = struct{}{}
	}
	for _, w := range negativeWords {
		s.negative[w] = struct{}{}
	}
	return s
}

// Score returns the polarity of text in [-1,1]. Text with no sentiment
// words scores 0.
func (s *LexiconScorer) Score(text string) float64 {
	tokens := tokenize(text)
	pos, neg := 0, 0
	negate := false
	for _, tok := range tokens {
		if tok == "not" || tok == "no" || tok == "never" {
			negate = true
			continue
		}
		_, isPos := s.positive[tok]
		_, isNeg := s.negative[tok]
		if negate && (isPos || isNeg) {
			isPos, isNeg = isNeg, isPos
		}
		if isPos {
			pos++
		}
		if isNeg {
			neg++
		}
		negate = false
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
