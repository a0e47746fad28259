package highlight

import "github.com/charmbracelet/lipgloss"

// Styles maps each tag to the terminal style a renderer applies to it.
type Styles struct {
	None   lipgloss.Style
	Number lipgloss.Style
	Match  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		None:   lipgloss.NewStyle(),
		Number: lipgloss.NewStyle().Foreground(lipgloss.Color("#DCA3A3")),
		Match:  lipgloss.NewStyle().Foreground(lipgloss.Color("#262626")).Background(lipgloss.Color("#268BD2")),
	}
}

// For returns the style for tag, falling back to None for unknown values.
func (s Styles) For(t Tag) lipgloss.Style {
	switch t {
	case TagNumber:
		return s.Number
	case TagMatch:
		return s.Match
	default:
		return s.None
	}
}
