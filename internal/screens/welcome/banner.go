package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sworddrill/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗    ██╗ ██████╗ ██████╗ ██████╗
 ██╔════╝██║    ██║██╔═══██╗██╔══██╗██╔══██╗
 ███████╗██║ █╗ ██║██║   ██║██████╔╝██║  ██║
 ╚════██║██║███╗██║██║   ██║██╔══██╗██║  ██║
 ███████║╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝
 ╚══════╝ ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝
              D  R  I  L  L`

const bannerCompact = "S W O R D   D R I L L"

// RenderBanner returns the SWORD DRILL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 48 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
