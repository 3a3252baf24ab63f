package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPaneVisualWidthMatchesBar(t *testing.T) {
	for active := range Panes {
		want := 0
		for i, p := range Panes {
			want += PaneVisualWidth(p, i == active)
			if i < len(Panes)-1 {
				want++
			}
		}
		bar := RenderPaneBar(active, want)
		if got := lipgloss.Width(bar); got != want {
			t.Fatalf("active=%d bar width = %d, want %d", active, got, want)
		}
	}
}

func TestPaneIdxByKey(t *testing.T) {
	if got := PaneIdxByKey('e'); got != 1 {
		t.Fatalf("PaneIdxByKey('e') = %d, want 1", got)
	}
	if got := PaneIdxByKey('z'); got != -1 {
		t.Fatalf("PaneIdxByKey('z') = %d, want -1", got)
	}
}
