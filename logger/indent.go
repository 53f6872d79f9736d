package logger

// IndentScope raises the indentation of every line whose header is
// written while the scope is open. Scopes nest; close them in reverse
// order of creation, typically with defer.
type IndentScope struct {
	logger *Logger
	closed bool
}

// Indent increases the indentation depth by one level (two spaces)
func (l *Logger) Indent() *IndentScope {
	l.depth.Add(1)
	return &IndentScope{logger: l}
}

// Indented runs fn one indentation level deeper
func (l *Logger) Indented(fn func()) {
	s := l.Indent()
	defer s.Close()
	fn()
}

// Close restores the previous depth. It is safe to call more than once.
func (s *IndentScope) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	for {
		d := s.logger.depth.Load()
		if d <= 0 || s.logger.depth.CompareAndSwap(d, d-1) {
			return
		}
	}
}
