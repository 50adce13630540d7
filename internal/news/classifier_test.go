package news

import (
	"testing"

	"idx-signal-bot/internal/types"
)

func TestClassifyType(t *testing.T) {
	c := NewClassifier(nil)

	cases := []struct {
		text string
		want types.NewsType
	}{
		{"OJK jatuhkan sanksi kepada emiten", types.NewsRegulatory},
		{"Emiten catat laba bersih naik pada kuartal ketiga", types.NewsFundamental},
		{"Saham anjlok di sesi pertama", types.NewsPrice},
		{"IHSG ditutup menguat mengikuti wall street", types.NewsMarket},
		{"Harga saham anjlok setelah laba turun", types.NewsMixed},
		{"Direksi baru mulai menjabat pekan depan", types.NewsUnknown},
	}
	for _, tc := range cases {
		if got := c.ClassifyType(tc.text); got != tc.want {
			t.Errorf("ClassifyType(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyTypeTwoCategories(t *testing.T) {
	c := NewClassifier(nil)
	// Exactly two distinct categories (FUNDAMENTAL + MARKET) must yield MIXED.
	got := c.ClassifyType("dividen emiten di bursa dipangkas")
	if got != types.NewsMixed {
		t.Errorf("ClassifyType = %s, want MIXED", got)
	}
}

func TestScoreSentimentGroupOnce(t *testing.T) {
	c := NewClassifier(nil)
	// Two NEGATIVE_WEAK phrases still contribute -1 once.
	got := c.ScoreSentiment("saham turun karena tekanan jual", "", types.NewsPrice)
	if got != -1 {
		t.Errorf("score = %d, want -1 (weak group counted once)", got)
	}
}

func TestScoreSentimentClamp(t *testing.T) {
	c := NewClassifier(nil)

	// Strong and weak positive groups both hit: raw +3 clamps to +2.
	got := c.ScoreSentiment("laba naik signifikan dan dividen dinaikkan", "", types.NewsFundamental)
	if got != 2 {
		t.Errorf("positive score = %d, want 2", got)
	}

	// Strong and weak negative both hit: raw -3 clamps to -2.
	got = c.ScoreSentiment("saham anjlok, kinerja tertekan", "", types.NewsPrice)
	if got != -2 {
		t.Errorf("negative score = %d, want -2", got)
	}
}

func TestScoreSentimentBounds(t *testing.T) {
	c := NewClassifier(nil)
	texts := []string{
		"",
		"laba naik signifikan melonjak rekor tertinggi dividen stimulus",
		"anjlok gagal bayar melemah turun rugi outflow",
		"berita biasa tanpa kata kunci",
	}
	for _, text := range texts {
		for _, nt := range []types.NewsType{types.NewsMixed, types.NewsUnknown, types.NewsPrice} {
			got := c.ScoreSentiment(text, text, nt)
			if got < -2 || got > 2 {
				t.Errorf("ScoreSentiment(%q, %s) = %d, out of [-2,2]", text, nt, got)
			}
		}
	}
}

func TestContextAdjustment(t *testing.T) {
	c := NewClassifier(nil)

	// "setelah anjlok" in the title: NEGATIVE_STRONG -2 plus recovery +1.
	got := c.ScoreSentiment("saham rebound setelah anjlok", "saham rebound setelah anjlok", types.NewsPrice)
	// rebound (+1) + anjlok (-2) + recovery (+1) = 0
	if got != 0 {
		t.Errorf("recovery-adjusted score = %d, want 0", got)
	}

	got = c.ScoreSentiment("sektor bank berpotensi tertekan pekan ini", "sektor bank berpotensi tertekan pekan ini", types.NewsUnknown)
	// tertekan (-1) + pressure (-1) = -2
	if got != -2 {
		t.Errorf("pressure-adjusted score = %d, want -2", got)
	}
}

func TestMixedNegativeBump(t *testing.T) {
	c := NewClassifier(nil)
	text := "ihsg melemah, harga saham emiten turut turun"
	if nt := c.ClassifyType(text); nt != types.NewsMixed {
		t.Fatalf("ClassifyType = %s, want MIXED", nt)
	}
	// NEGATIVE_WEAK -1, then +1 for negative MIXED.
	if got := c.ScoreSentiment(text, "", types.NewsMixed); got != 0 {
		t.Errorf("mixed bump score = %d, want 0", got)
	}
}

func TestInjectedLexicon(t *testing.T) {
	lex := &Lexicon{
		TypeKeywords: map[types.NewsType][]string{
			types.NewsPrice: {"spike"},
		},
		SentimentGroups: []SentimentGroup{
			{Name: "POSITIVE_STRONG", Weight: 2, Phrases: []string{"spike"}},
		},
	}
	c := NewClassifier(lex)

	if got := c.ClassifyType("price spike today"); got != types.NewsPrice {
		t.Errorf("ClassifyType = %s, want PRICE", got)
	}
	if got := c.ScoreSentiment("price spike today", "", types.NewsPrice); got != 2 {
		t.Errorf("score = %d, want 2", got)
	}
}
