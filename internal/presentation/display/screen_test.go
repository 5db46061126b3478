package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenDraw(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	require.NoError(t, s.Draw("line one\nline two\n"))
	first := buf.String()
	assert.True(t, strings.HasPrefix(first, ClearScreen+MoveCursorHome))
	assert.Contains(t, first, "line one"+ClearLineFromCursor+"\n")
	assert.Contains(t, first, "line two"+ClearLineFromCursor+"\n")
	assert.True(t, strings.HasSuffix(first, ClearScreenDown))

	buf.Reset()
	require.NoError(t, s.Draw("only"))
	second := buf.String()
	assert.NotContains(t, second, ClearScreen)
	assert.Equal(t, MoveCursorHome+"only"+ClearLineFromCursor+"\n"+ClearScreenDown, second)
}

func TestAlternateScreen(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	s.ExitAlternateScreen()
	assert.Empty(t, buf.String())

	s.EnterAlternateScreen()
	s.EnterAlternateScreen()
	assert.Equal(t, 1, strings.Count(buf.String(), EnterAltScreen))
	assert.Contains(t, buf.String(), HideCursor)

	s.ExitAlternateScreen()
	assert.Contains(t, buf.String(), ExitAltScreen)
	assert.Contains(t, buf.String(), ShowCursor)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
