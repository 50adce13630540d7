package engine

import (
	"fmt"

	"idx-signal-bot/internal/types"
)

// ModeRule tunes how aggressive the decision thresholds are. One rule set
// is active per run, never per item.
type ModeRule struct {
	BuyRSI        float64
	SellRSI       float64
	MinConfidence int
}

var modeRules = map[string]ModeRule{
	"TRADER":   {BuyRSI: 35, SellRSI: 65, MinConfidence: 60},
	"INVESTOR": {BuyRSI: 30, SellRSI: 70, MinConfidence: 75},
}

// RuleFor resolves a mode name to its rule set.
func RuleFor(mode string) (ModeRule, error) {
	rule, ok := modeRules[mode]
	if !ok {
		return ModeRule{}, fmt.Errorf("unknown mode '%s'", mode)
	}
	return rule, nil
}

var newsTypePoints = map[types.NewsType]int{
	types.NewsRegulatory:  30,
	types.NewsFundamental: 25,
	types.NewsPrice:       20,
	types.NewsMixed:       15,
	types.NewsMarket:      10,
	types.NewsUnknown:     5,
}

// Confidence fuses news type, sentiment magnitude and RSI extremity into a
// 0-100 score.
func Confidence(newsType types.NewsType, sentiment int, rsi types.RSIValue) int {
	score, ok := newsTypePoints[newsType]
	if !ok {
		score = newsTypePoints[types.NewsUnknown]
	}

	switch abs(sentiment) {
	case 2:
		score += 40
	case 1:
		score += 25
	}

	if rsi.Valid {
		switch {
		case rsi.Value <= 30 || rsi.Value >= 70:
			score += 30
		case rsi.Value <= 40 || rsi.Value >= 60:
			score += 20
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Decide maps the fused scores onto a discrete action. An unavailable RSI
// forces HOLD whatever the other inputs say.
func Decide(rule ModeRule, sentiment int, rsi types.RSIValue, confidence int) types.Action {
	if !rsi.Valid {
		return types.ActionHold
	}
	if sentiment >= 1 && rsi.Value <= rule.BuyRSI && confidence >= rule.MinConfidence {
		return types.ActionBuy
	}
	if sentiment <= -1 && rsi.Value >= rule.SellRSI && confidence >= rule.MinConfidence {
		return types.ActionSell
	}
	return types.ActionHold
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
