// Package viewport holds the thresholds and class names for the page's
// cosmetic scroll behavior. The behavior itself runs in static/site.js,
// which reads these values from data attributes on <body>.
package viewport

const (
	// DefaultScrollThreshold is the offset in pixels past which the
	// scroll-to-top button shows.
	DefaultScrollThreshold = 420
	// DefaultRevealRatio is the visible fraction at which a card is revealed.
	DefaultRevealRatio = 0.15

	// RevealClass marks elements the reveal observer watches.
	RevealClass = "reveal"
	// RevealedClass is added once an element has been revealed. It is
	// never removed.
	RevealedClass = "visible"
	// ScrollTopVisibleClass shows the scroll-to-top button.
	ScrollTopVisibleClass = "scroll-top--visible"
)

// Config carries the thresholds the page hands to its client script.
type Config struct {
	ScrollThreshold int
	RevealRatio     float64
}

func DefaultConfig() Config {
	return Config{ScrollThreshold: DefaultScrollThreshold, RevealRatio: DefaultRevealRatio}
}
