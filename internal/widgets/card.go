package widgets

import "github.com/charmbracelet/lipgloss"

// Card is a bordered block with an optional title line.
type Card struct {
	Title  string
	Body   string
	Accent lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
	// Fill is the background inside and around the border; nil leaves the
	// terminal default.
	Fill  lipgloss.TerminalColor
	Thick bool
}

func (c Card) Render(width, height int) string {
	if width <= 2 {
		return ""
	}
	border := lipgloss.RoundedBorder()
	if c.Thick {
		border = lipgloss.ThickBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(c.Accent).
		Foreground(c.Text).
		Padding(0, 1).
		Width(width - 2)
	title := lipgloss.NewStyle().Foreground(c.Accent).Bold(true)
	if c.Fill != nil {
		style = style.Background(c.Fill).BorderBackground(c.Fill)
		title = title.Background(c.Fill)
	}
	if height > 2 {
		style = style.Height(height - 2)
	}
	body := c.Body
	if c.Title != "" {
		if body != "" {
			body = title.Render(c.Title) + "\n" + body
		} else {
			body = title.Render(c.Title)
		}
	}
	return style.Render(body)
}
