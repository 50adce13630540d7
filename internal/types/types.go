package types

import "time"

// NewsItem is one entry pulled from a feed source. Link doubles as the
// deduplication key across runs.
type NewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
	Link    string `json:"link"`
	Source  string `json:"source"`
}

// Emiten is one listed instrument from the master catalog.
type Emiten struct {
	Ticker  string
	Sector  string
	Aliases []string
}

// MarketTicker is the pseudo-entity substituted when a news item mentions
// no specific instrument. It carries no price series.
const MarketTicker = "MARKET"

// NewsType classifies what kind of news an item is.
type NewsType string

const (
	NewsRegulatory  NewsType = "REGULATORY"
	NewsFundamental NewsType = "FUNDAMENTAL"
	NewsPrice       NewsType = "PRICE"
	NewsMarket      NewsType = "MARKET"
	NewsMixed       NewsType = "MIXED"
	NewsUnknown     NewsType = "UNKNOWN"
)

// Action is the final trading call for one (item, emiten) pair.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// RSIValue is a computed RSI or an explicit unavailable marker. Value is
// meaningless when Valid is false.
type RSIValue struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Report is one emitted signal: a single (NewsItem, Emiten) evaluation.
type Report struct {
	Source     string    `json:"source"`
	Title      string    `json:"title"`
	Link       string    `json:"link"`
	Ticker     string    `json:"ticker"`
	NewsType   NewsType  `json:"news_type"`
	Sentiment  int       `json:"sentiment"`
	RSI        RSIValue  `json:"rsi"`
	Confidence int       `json:"confidence"`
	Mode       string    `json:"mode"`
	Action     Action    `json:"action"`
	Time       time.Time `json:"time"`
}

// RunSummary aggregates one batch run for logging.
type RunSummary struct {
	Sources   int `json:"sources"`
	Items     int `json:"items"`
	Skipped   int `json:"skipped"`
	Duplicate int `json:"duplicate"`
	Reports   int `json:"reports"`
	SendFails int `json:"send_fails"`
}
