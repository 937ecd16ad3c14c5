package interact

// StatusLine stores the latest attachment status string for display.
// It is a pure observer: it owns no bodies and validates nothing.
type StatusLine struct {
	current string
}

func NewStatusLine() *StatusLine {
	return &StatusLine{current: StatusAttached}
}

func (s *StatusLine) SetStatus(text string) {
	s.current = text
}

func (s *StatusLine) Status() string {
	return s.current
}
