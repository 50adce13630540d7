package interfaces

// SeenStore tracks already-processed news links across runs.
type SeenStore interface {
	Has(link string) bool
	Mark(link string) error
}
