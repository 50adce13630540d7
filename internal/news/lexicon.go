package news

import "idx-signal-bot/internal/types"

// SentimentGroup is one weighted phrase list. A group contributes its
// weight at most once per text, however many of its phrases occur.
type SentimentGroup struct {
	Name    string
	Weight  int
	Phrases []string
}

// Lexicon is the classifier's data: keyword tables kept separate from the
// matching logic so tests and operators can swap them without touching
// classification code.
type Lexicon struct {
	TypeKeywords    map[types.NewsType][]string
	SentimentGroups []SentimentGroup
	RecoveryPhrases []string // title context, +1
	PressurePhrases []string // title context, -1
}

// typeOrder fixes classification iteration order; MIXED and UNKNOWN are
// derived, never keyed.
var typeOrder = []types.NewsType{
	types.NewsRegulatory,
	types.NewsFundamental,
	types.NewsPrice,
	types.NewsMarket,
}

// DefaultLexicon returns the canonical Indonesian keyword tables.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		TypeKeywords: map[types.NewsType][]string{
			types.NewsRegulatory: {
				"ojk", "regulasi", "izin usaha", "sanksi", "bi rate",
				"suku bunga", "kebijakan", "aturan baru", "denda",
			},
			types.NewsFundamental: {
				"laba", "dividen", "pendapatan", "kinerja", "akuisisi",
				"ekspansi", "rugi bersih", "penjualan",
			},
			types.NewsPrice: {
				"anjlok", "melonjak", "rebound", "koreksi", "tekanan jual",
				"harga saham", "rekor tertinggi",
			},
			types.NewsMarket: {
				"ihsg", "bursa", "wall street", "rupiah", "pasar saham",
				"sentimen global", "the fed",
			},
		},
		SentimentGroups: []SentimentGroup{
			{
				Name:   "NEGATIVE_STRONG",
				Weight: -2,
				Phrases: []string{
					"anjlok", "gagal bayar", "rugi besar", "suspensi",
					"turun tajam", "dibekukan",
				},
			},
			{
				Name:   "NEGATIVE_WEAK",
				Weight: -1,
				Phrases: []string{
					"melemah", "turun", "tertekan", "outflow", "rugi",
					"beban", "ketidakpastian", "tekanan jual", "penurunan",
					"ditunda",
				},
			},
			{
				Name:   "POSITIVE_STRONG",
				Weight: 2,
				Phrases: []string{
					"laba naik signifikan", "melonjak", "rekor tertinggi",
					"lonjakan laba", "rating naik",
				},
			},
			{
				Name:   "POSITIVE_WEAK",
				Weight: 1,
				Phrases: []string{
					"laba naik", "dividen", "stimulus", "optimis", "rebound",
					"ekspansi", "harga naik", "bullish", "meningkat",
				},
			},
		},
		RecoveryPhrases: []string{"setelah anjlok", "pasca koreksi"},
		PressurePhrases: []string{"berpotensi tertekan"},
	}
}
