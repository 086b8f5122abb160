package logic

// DefaultTiltThreshold is the raw Y-axis reading at or above which the
// panel is considered upside down.
const DefaultTiltThreshold = 200

// Acceleration is a single raw 3-axis accelerometer sample.
type Acceleration struct {
	X, Y, Z int16
}

// Classifier turns accelerometer samples into an inverted/upright
// classification and detects changes between consecutive samples.
type Classifier struct {
	threshold int16
	inverted  bool
}

// NewClassifier creates a classifier that starts upright.
func NewClassifier(threshold int16) *Classifier {
	return &Classifier{threshold: threshold}
}

// Process classifies a sample. It returns the new classification and
// whether it differs from the previous sample's.
func (c *Classifier) Process(a Acceleration) (inverted bool, changed bool) {
	inverted = a.Y >= c.threshold
	changed = inverted != c.inverted
	c.inverted = inverted
	return inverted, changed
}

// Inverted returns the last classification.
func (c *Classifier) Inverted() bool {
	return c.inverted
}
