package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	// Syntax colors
	KeywordColor = lipgloss.AdaptiveColor{
		Light: "#7D56F4", // Violet
		Dark:  "#AD8CFF",
	}

	EntityColor = lipgloss.AdaptiveColor{
		Light: "#0A7E8C", // Teal
		Dark:  "#5FD7D7",
	}

	LiteralColor = lipgloss.AdaptiveColor{
		Light: "#A05A00", // Brown
		Dark:  "#FFAF5F",
	}

	// Status colors
	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}
)
