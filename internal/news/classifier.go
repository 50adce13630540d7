package news

import (
	"strings"

	"idx-signal-bot/internal/types"
)

// Classifier scores sentiment polarity and classifies the news category of
// a text blob. Stateless apart from its lexicon; safe for reuse across
// items within a run.
type Classifier struct {
	lex *Lexicon
}

// NewClassifier builds a classifier; a nil lexicon selects the default
// tables.
func NewClassifier(lex *Lexicon) *Classifier {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Classifier{lex: lex}
}

// ClassifyType maps a text blob to exactly one NewsType. Zero keyword
// categories hit yields UNKNOWN, more than one yields MIXED.
func (c *Classifier) ClassifyType(text string) types.NewsType {
	t := strings.ToLower(text)

	var matched []types.NewsType
	for _, nt := range typeOrder {
		if containsAny(t, c.lex.TypeKeywords[nt]) {
			matched = append(matched, nt)
		}
	}

	switch len(matched) {
	case 0:
		return types.NewsUnknown
	case 1:
		return matched[0]
	default:
		return types.NewsMixed
	}
}

// ScoreSentiment computes the sentiment score in [-2, 2] for a text blob.
// Each weighted group contributes its weight at most once; the title adds
// a recovery/pressure context adjustment; MIXED items with a negative
// running score get +1.
func (c *Classifier) ScoreSentiment(text, title string, newsType types.NewsType) int {
	t := strings.ToLower(text)

	score := 0
	for _, g := range c.lex.SentimentGroups {
		if containsAny(t, g.Phrases) {
			score += g.Weight
		}
	}

	score += c.contextAdjustment(title)

	if newsType == types.NewsMixed && score < 0 {
		score++
	}

	return clamp(score, -2, 2)
}

func (c *Classifier) contextAdjustment(title string) int {
	t := strings.ToLower(title)
	if containsAny(t, c.lex.RecoveryPhrases) {
		return 1
	}
	if containsAny(t, c.lex.PressurePhrases) {
		return -1
	}
	return 0
}

// containsAny reports whether any phrase occurs in the lowercased text.
func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
