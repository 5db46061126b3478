package display

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal control sequences
const (
	ClearScreen         = "\033[2J"     // Clear entire screen
	ClearLineFromCursor = "\033[0K"     // Clear from cursor to end of line
	ClearScreenDown     = "\033[J"      // Clear from cursor to end of screen
	ClearScrollback     = "\033[3J"     // Clear scrollback buffer
	MoveCursorHome      = "\033[H"      // Move cursor to home position
	HideCursor          = "\033[?25l"   // Hide cursor
	ShowCursor          = "\033[?25h"   // Show cursor
	EnterAltScreen      = "\033[?1049h" // Switch to alternate screen buffer
	ExitAltScreen       = "\033[?1049l" // Return to normal screen buffer
)

// Screen redraws full frames in place. After the first frame it only homes the
// cursor and overwrites, so the terminal does not flicker on every file change.
type Screen struct {
	w                 io.Writer
	inAlternateScreen bool
	isFirstRender     bool
}

func NewScreen(w io.Writer) *Screen {
	return &Screen{w: w, isFirstRender: true}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EnterAlternateScreen switches to the alternate buffer and hides the cursor.
func (s *Screen) EnterAlternateScreen() {
	if s.inAlternateScreen {
		return
	}
	io.WriteString(s.w, EnterAltScreen+ClearScreen+MoveCursorHome+ClearScrollback+HideCursor)
	s.inAlternateScreen = true
	s.isFirstRender = true
}

// ExitAlternateScreen restores the normal buffer and the cursor.
func (s *Screen) ExitAlternateScreen() {
	if !s.inAlternateScreen {
		return
	}
	io.WriteString(s.w, ClearScreen+MoveCursorHome+ShowCursor+ExitAltScreen)
	s.inAlternateScreen = false
}

// Draw replaces the visible frame with frame.
func (s *Screen) Draw(frame string) error {
	var b strings.Builder
	if s.isFirstRender {
		b.WriteString(ClearScreen)
		s.isFirstRender = false
	}
	b.WriteString(MoveCursorHome)

	for _, line := range strings.Split(strings.TrimRight(frame, "\n"), "\n") {
		b.WriteString(line)
		b.WriteString(ClearLineFromCursor)
		b.WriteByte('\n')
	}
	// Leftovers from a taller previous frame.
	b.WriteString(ClearScreenDown)

	_, err := io.WriteString(s.w, b.String())
	return err
}
