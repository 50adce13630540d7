package catalog

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	path := writeCatalog(t,
		"ticker,sector,aliases\n"+
			"BBCA,BANK,bca|bank central asia\n"+
			"ANTM,EMAS,antam|aneka tambang\n"+
			"UNVR,RUMAHTANGGA,unilever\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestExtractWholeWord(t *testing.T) {
	c := testCatalog(t)
	active := NewSectorSet([]string{"BANK", "EMAS", "RUMAHTANGGA"})

	got := c.Extract("Saham BCA menguat di sesi pertama", active)
	if len(got) != 1 || got[0] != "BBCA" {
		t.Errorf("Extract = %v, want [BBCA]", got)
	}

	// "bca" embedded in a longer token must not match.
	got = c.Extract("perusahaan abcadabra melaporkan kinerja", active)
	if len(got) != 0 {
		t.Errorf("Extract substring = %v, want none", got)
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	c := testCatalog(t)
	active := NewSectorSet(DefaultActiveSectors())

	for _, text := range []string{
		"ANTAM catat laba",
		"antam catat laba",
		"Antam catat laba",
	} {
		if got := c.Extract(text, active); len(got) != 1 || got[0] != "ANTM" {
			t.Errorf("Extract(%q) = %v, want [ANTM]", text, got)
		}
	}
}

func TestExtractSectorGating(t *testing.T) {
	c := testCatalog(t)
	active := NewSectorSet([]string{"BANK"}) // EMAS not monitored

	got := c.Extract("antam dan bca sama-sama menguat", active)
	if len(got) != 1 || got[0] != "BBCA" {
		t.Errorf("Extract = %v, want [BBCA] only", got)
	}
}

func TestExtractOncePerEmiten(t *testing.T) {
	c := testCatalog(t)
	active := NewSectorSet([]string{"BANK"})

	got := c.Extract("bca alias bank central asia membagikan dividen", active)
	if len(got) != 1 {
		t.Errorf("Extract = %v, want single BBCA despite two alias hits", got)
	}
}

func TestExtractMultiple(t *testing.T) {
	c := testCatalog(t)
	active := NewSectorSet(DefaultActiveSectors())

	got := c.Extract("unilever dan antam masuk jajaran top gainers", active)
	if len(got) != 2 {
		t.Fatalf("Extract = %v, want 2 tickers", got)
	}
}

func TestExtractEmpty(t *testing.T) {
	c := testCatalog(t)
	active := NewSectorSet(DefaultActiveSectors())

	if got := c.Extract("IHSG ditutup menguat tipis", active); len(got) != 0 {
		t.Errorf("Extract = %v, want none", got)
	}
}
