package entity

// Page is an offset window over a listing.
type Page struct {
	Skip  int
	Limit int
}

const (
	// DefaultPageLimit is used when the caller does not ask for a limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps a single page.
	MaxPageLimit = 100
)

// Normalize clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}

	return p
}
