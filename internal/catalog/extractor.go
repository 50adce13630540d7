package catalog

// Extract returns the tickers whose sector is in the active set and at
// least one alias occurs in the text as a whole word, case-insensitive.
// Each emiten appears at most once, in catalog order. Pure function of
// (text, catalog, active set); an empty result is the caller's cue to
// substitute the MARKET pseudo-entity.
func (c *Catalog) Extract(text string, active SectorSet) []string {
	var found []string
	for _, e := range c.emitens {
		if !active.Has(e.Sector) {
			continue
		}
		for _, p := range c.patterns[e.Ticker] {
			if p.MatchString(text) {
				found = append(found, e.Ticker)
				break
			}
		}
	}
	return found
}
