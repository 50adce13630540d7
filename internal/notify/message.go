package notify

import (
	"fmt"
	"strings"
	"time"

	"idx-signal-bot/internal/types"
)

const timestampLayout = "02-01-2006 15:04"

// wib is the exchange's timezone; fall back to a fixed UTC+7 offset
// when the zone database is unavailable.
var wib = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()

var actionBadges = map[types.Action]string{
	types.ActionBuy:  "🟢 BUY",
	types.ActionSell: "🔴 SELL",
	types.ActionHold: "⚪ HOLD",
}

// Render formats one report as the alert message body.
func Render(r types.Report) string {
	rsi := "N/A"
	if r.RSI.Valid {
		rsi = fmt.Sprintf("%.2f", r.RSI.Value)
	}

	badge, ok := actionBadges[r.Action]
	if !ok {
		badge = string(r.Action)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📰 %s\n", r.Source)
	fmt.Fprintf(&b, "%s\n\n", r.Title)
	fmt.Fprintf(&b, "Ticker: %s\n", r.Ticker)
	fmt.Fprintf(&b, "Jenis berita: %s\n", r.NewsType)
	fmt.Fprintf(&b, "Sentimen: %+d\n", r.Sentiment)
	fmt.Fprintf(&b, "RSI: %s\n", rsi)
	fmt.Fprintf(&b, "Confidence: %d%%\n", r.Confidence)
	fmt.Fprintf(&b, "Mode: %s\n", r.Mode)
	fmt.Fprintf(&b, "Aksi: %s\n\n", badge)
	fmt.Fprintf(&b, "%s\n", r.Link)
	fmt.Fprintf(&b, "🕒 %s WIB", r.Time.In(wib).Format(timestampLayout))
	return b.String()
}
