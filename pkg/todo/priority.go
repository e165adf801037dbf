package todo

// Priority is a single-letter urgency marker, A (most urgent) to Z.
// The natural byte ordering is the priority ordering.
type Priority byte

// NewPriority creates a priority from a letter.
// Anything outside A-Z is rejected.
func NewPriority(c byte) (Priority, bool) {
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return Priority(c), true
}

// Char returns the underlying letter.
func (p Priority) Char() byte {
	return byte(p)
}

func (p Priority) String() string {
	return "(" + string(rune(p)) + ")"
}

// ParsePriority parses a "(X)" token where X is A-Z.
// Any other shape fails with an InvalidPriorityError.
func ParsePriority(s string) (Priority, error) {
	if len(s) != 3 || s[0] != '(' || s[2] != ')' {
		return 0, &InvalidPriorityError{Input: s}
	}
	p, ok := NewPriority(s[1])
	if !ok {
		return 0, &InvalidPriorityError{Input: s}
	}
	return p, nil
}
