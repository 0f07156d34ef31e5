// Package ui renders the board with lipgloss and steps through a game in a
// bubbletea terminal viewer.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/sequence/internal/game"
	"github.com/palemoky/sequence/internal/sound"
)

// DefaultInterval is the autoplay delay between turns.
const DefaultInterval = 500 * time.Millisecond

// Sounder plays a named audio cue.
type Sounder interface {
	Play(name string)
}

// Viewer is a bubbletea model that plays one game turn by turn.
type Viewer struct {
	game     *game.Game
	keys     keyMap
	help     help.Model
	timer    timer.Model
	interval time.Duration
	autoplay bool
	result   *game.Result
	sounds   Sounder
}

// NewViewer wraps g. interval sets the autoplay pace; zero uses DefaultInterval.
func NewViewer(g *game.Game, interval time.Duration) *Viewer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Viewer{
		game:     g,
		keys:     defaultKeys,
		help:     help.New(),
		interval: interval,
	}
}

// WithSound plays a cue after each turn.
func (v *Viewer) WithSound(s Sounder) *Viewer {
	v.sounds = s
	return v
}

// Result returns the outcome once the viewed game has finished.
func (v *Viewer) Result() (game.Result, bool) {
	if v.result == nil {
		return game.Result{}, false
	}
	return *v.result, true
}

// Autoplay reports whether turns advance on a timer.
func (v *Viewer) Autoplay() bool { return v.autoplay }

func (v *Viewer) Init() tea.Cmd { return nil }

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Step):
			v.step()
		case key.Matches(msg, v.keys.Finish):
			for v.result == nil {
				v.step()
			}
		case key.Matches(msg, v.keys.Autoplay):
			return v, v.toggleAutoplay()
		case key.Matches(msg, v.keys.Help):
			v.help.ShowAll = !v.help.ShowAll
		}
		return v, nil

	case timer.TimeoutMsg:
		if msg.ID != v.timer.ID() || !v.autoplay {
			return v, nil
		}
		v.step()
		if v.result != nil {
			v.autoplay = false
			return v, nil
		}
		return v, v.restartTimer()
	}

	var cmd tea.Cmd
	v.timer, cmd = v.timer.Update(msg)
	return v, cmd
}

func (v *Viewer) step() {
	if v.result != nil {
		return
	}
	res, done := v.game.RunTurn()
	if done {
		v.result = &res
	}
	if v.sounds != nil {
		if turn, ok := v.game.LastTurn(); ok {
			if cue := CueFor(turn, done); cue != "" {
				v.sounds.Play(cue)
			}
		}
	}
}

// CueFor picks the audio cue for a turn. Skipped turns stay silent unless a
// dead card was swapped.
func CueFor(t game.Turn, won bool) string {
	switch {
	case won:
		return sound.CueWin
	case t.Sequences > 0:
		return sound.CueSequence
	case t.Skipped && t.Dead != nil:
		return sound.CueDead
	case t.Skipped:
		return ""
	case t.Card.IsOneEyedJack():
		return sound.CueRemove
	default:
		return sound.CueChip
	}
}

func (v *Viewer) toggleAutoplay() tea.Cmd {
	if v.result != nil {
		return nil
	}
	v.autoplay = !v.autoplay
	if !v.autoplay {
		return v.timer.Stop()
	}
	return v.restartTimer()
}

func (v *Viewer) restartTimer() tea.Cmd {
	v.timer = timer.NewWithInterval(v.interval, v.interval)
	return v.timer.Init()
}

func (v *Viewer) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle(fmt.Sprintf("Sequence · game %s", v.game.ID().String()[:8])))
	sb.WriteString("\n")
	sb.WriteString(RenderLegend(v.game.NumTeams()))
	sb.WriteString("\n\n")

	up := v.game.UpIndex()
	opts := []RenderOption{WithMarkedCards(v.game.Hand(up)...)}
	last, played := v.game.LastTurn()
	if played && !last.Skipped {
		opts = append(opts, WithLastMove(last.Square))
	}
	sb.WriteString(boxStyle.Render(RenderBoard(v.game.Board(), opts...)))
	sb.WriteString("\n")

	if played {
		sb.WriteString(DescribeTurn(last))
		sb.WriteString("\n")
	}

	if v.result != nil {
		sb.WriteString(winnerStyle.Render(fmt.Sprintf("%s wins after %d turns", v.result.Winner, v.result.Turns)))
		sb.WriteString("\n")
	} else {
		team := game.PlayerTeam(v.game.NumTeams(), up)
		sb.WriteString(promptStyle.Render(fmt.Sprintf("Up: player %d (%s)  %s", up+1, team, RenderHand(v.game.Hand(up)))))
		sb.WriteString("\n")
		if v.autoplay {
			sb.WriteString(labelStyle.Render("autoplay " + v.timer.View()))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(v.help.View(v.keys))
	return docStyle.Render(sb.String())
}

// DescribeTurn summarises a turn record in one line.
func DescribeTurn(t game.Turn) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Turn %d: player %d (%s) ", t.Number, t.Player+1, t.Team)
	if t.Dead != nil {
		fmt.Fprintf(&sb, "swapped dead %s, ", t.Dead)
	}
	switch {
	case t.Skipped:
		sb.WriteString("had no playable card")
	case t.Card.IsOneEyedJack():
		fmt.Fprintf(&sb, "removed the chip on %s with %s", t.Square, t.Card)
	default:
		fmt.Fprintf(&sb, "played %s on %s", t.Card, t.Square)
	}
	if t.Sequences > 0 {
		fmt.Fprintf(&sb, ", completing sequence #%d", t.Sequences)
	}
	return sb.String()
}
