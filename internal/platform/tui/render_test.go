package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frotz/internal/core"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		name string
		c    core.Color
		fg   lipgloss.TerminalColor
		bold bool
	}{
		{"default", core.ColorDefault, lipgloss.NoColor{}, false},
		{"red", core.ColorRed, lipgloss.Color("1"), false},
		{"bold yellow", core.ColorBrightYellow | core.Bold, lipgloss.Color("11"), true},
		{"dark gray", core.ColorDarkGray, lipgloss.Color("238"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := styleFor(tt.c)
			if got := st.GetForeground(); got != tt.fg {
				t.Errorf("foreground = %v, expected %v", got, tt.fg)
			}
			if got := st.GetBold(); got != tt.bold {
				t.Errorf("bold = %v, expected %v", got, tt.bold)
			}
		})
	}
}

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextWithColor(0, 1, "ab", core.ColorRed)
	s.SetWithColor(3, 1, '@', core.ColorBrightYellow|core.Bold)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d newlines, expected 2", got)
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "@") {
		t.Errorf("rendered screen lost its text: %q", out)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{0, time.Second},
		{-5, time.Second},
		{1000, time.Second / maxTickRate},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
