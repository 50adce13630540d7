package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"idx-signal-bot/internal/store"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Market</title>
<item>
  <title>Saham BBCA menguat</title>
  <link>https://example.com/berita/1</link>
  <description>&lt;p&gt;Bank Central Asia &lt;b&gt;mencatat&lt;/b&gt; kenaikan.&lt;/p&gt;</description>
</item>
<item>
  <title>IHSG ditutup melemah</title>
  <link>https://example.com/berita/2</link>
</item>
<item>
  <title>Tanpa tautan</title>
</item>
<item>
  <title>Berita ketiga</title>
  <link>https://example.com/berita/3</link>
</item>
</channel>
</rss>`

func TestRSSFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssBody)
	}))
	defer srv.Close()

	src := NewRSSSource("Contoh", srv.URL, 5*time.Second)
	if src.Name() != "Contoh" {
		t.Errorf("Name = %s", src.Name())
	}

	items, err := src.Fetch(context.Background(), 5)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	// Linkless entries are dropped.
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	first := items[0]
	if first.Title != "Saham BBCA menguat" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Link != "https://example.com/berita/1" {
		t.Errorf("link = %q", first.Link)
	}
	if first.Summary != "Bank Central Asia mencatat kenaikan." {
		t.Errorf("summary = %q, want HTML stripped", first.Summary)
	}
	if first.Source != "Contoh" {
		t.Errorf("source = %q", first.Source)
	}
}

func TestRSSFetchCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody)
	}))
	defer srv.Close()

	src := NewRSSSource("Contoh", srv.URL, 5*time.Second)
	items, err := src.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want cap of 1", len(items))
	}
}

func TestRSSFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewRSSSource("Rusak", srv.URL, 5*time.Second)
	if _, err := src.Fetch(context.Background(), 5); err == nil {
		t.Error("expected fetch error")
	}
}

func TestStripHTML(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Laba   <b>naik</b></p>\n<p>tajam</p>", "Laba naik tajam"},
	}
	for _, tc := range cases {
		if got := StripHTML(tc.in); got != tc.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

const listingBody = `<html><body>
<div class="artikel"><h2><a href="/berita/a">Emiten tambang cetak laba</a></h2><p>Ringkasan pertama.</p></div>
<div class="artikel"><h2><a href="https://other.example.com/b">Rupiah menguat</a></h2><p>Ringkasan kedua.</p></div>
<div class="artikel"><h2><a href="/berita/c">Berita ketiga</a></h2><p>Ringkasan ketiga.</p></div>
</body></html>`

func TestScrapeFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingBody)
	}))
	defer srv.Close()

	src := NewScrapeSource(store.Scrape{
		Name:            "Portal",
		URL:             srv.URL,
		ItemSelector:    "div.artikel",
		TitleSelector:   "h2 a",
		LinkSelector:    "h2 a",
		SummarySelector: "p",
	}, 5*time.Second)

	items, err := src.Fetch(context.Background(), 2)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want cap of 2", len(items))
	}

	if items[0].Title != "Emiten tambang cetak laba" {
		t.Errorf("title = %q", items[0].Title)
	}
	if items[0].Link != srv.URL+"/berita/a" {
		t.Errorf("relative link = %q, want absolute under %s", items[0].Link, srv.URL)
	}
	if items[1].Link != "https://other.example.com/b" {
		t.Errorf("absolute link rewritten: %q", items[1].Link)
	}
	if items[0].Summary != "Ringkasan pertama." {
		t.Errorf("summary = %q", items[0].Summary)
	}
}
