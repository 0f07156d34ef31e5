package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/sequence/internal/game/board"
)

// CornerIcon marks the four free corner squares.
const CornerIcon = "★"

var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	promptStyle   = lipgloss.NewStyle().MarginTop(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	cornerStyle   = cellStyle.Foreground(lipgloss.Color("220")).Bold(true)
	redStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Bold(true)
	blackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	sequenceStyle = lipgloss.NewStyle().Underline(true).Bold(true)
	lastMoveStyle = lipgloss.NewStyle().Reverse(true)
	markedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))
	winnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Border(lipgloss.DoubleBorder()).Padding(0, 2)

	// teamColors 队伍颜色
	teamColors = map[board.Team]lipgloss.Color{
		board.TeamOne:   lipgloss.Color("#1E63D6"),
		board.TeamTwo:   lipgloss.Color("#1F9D3A"),
		board.TeamThree: lipgloss.Color("#CD0000"),
	}
)

// TeamStyle returns the chip style for team.
func TeamStyle(team board.Team) lipgloss.Style {
	c, ok := teamColors[team]
	if !ok {
		return cellStyle
	}
	return cellStyle.Background(c).Foreground(lipgloss.Color("#FFFFFF"))
}
