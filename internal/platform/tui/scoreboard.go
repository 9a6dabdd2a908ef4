package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/games/dodge"
	"github.com/vovakirdan/carlot/internal/storage"
	"github.com/vovakirdan/carlot/internal/theme"
)

// Scoreboard layout constants
const (
	maxScores     = 100 // Max scores to load
	tableMinWidth = 40
)

// scoresPage shows the Car Dodge high scores.
type scoresPage struct {
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	table  table.Model
	mode   theme.Theme // Mode the table styles were built for
	err    error
}

func newScoresPage() *scoresPage {
	return &scoresPage{
		table: table.New(
			table.WithColumns(scoreColumns(tableMinWidth)),
			table.WithFocused(true),
		),
	}
}

// scoreColumns spreads width over Rank, Player, Score and Date.
func scoreColumns(width int) []table.Column {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 14},
	}
	if extra := width - tableMinWidth; extra > 0 {
		columns[1].Width += min(extra, 12)
	}
	return columns
}

func (p *scoresPage) Enter(s *site) tea.Cmd {
	p.load(s.opts.Store)
	return nil
}

func (p *scoresPage) Leave(*site) {}

func (p *scoresPage) Typing() bool { return false }

func (p *scoresPage) Modal() bool { return false }

func (p *scoresPage) Help(k KeyMap) []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select}
}

// load reads the scores for the game.
func (p *scoresPage) load(store *storage.Store) {
	p.scores, p.stats, p.err = nil, nil, nil
	if store != nil {
		p.scores, p.err = store.TopScores(dodge.ID, maxScores)
		if p.err == nil {
			p.stats, p.err = store.GetGameStats(dodge.ID)
		}
	}

	rows := make([]table.Row, len(p.scores))
	for i, s := range p.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	p.table.SetRows(rows)
	p.table.GotoTop()
}

func (p *scoresPage) Update(s *site, a core.Action, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.table.SetColumns(scoreColumns(msg.Width - 8))
		p.table.SetHeight(max(s.bodyHeight()-8, 3))
		return nil
	case tea.KeyMsg:
		switch a {
		case core.ActionSelect:
			p.load(s.opts.Store)
			return nil
		case core.ActionUp, core.ActionDown:
			var cmd tea.Cmd
			p.table, cmd = p.table.Update(msg)
			return cmd
		}
	}
	return nil
}

// style rebuilds the table colors when the theme changes.
func (p *scoresPage) style(pal theme.Palette) {
	if p.mode == pal.Mode {
		return
	}
	p.mode = pal.Mode

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(pal.Border.GetForeground()).
		BorderBottom(true).
		Foreground(pal.Accent.GetForeground()).
		Bold(true)
	s.Cell = s.Cell.Foreground(pal.Base.GetForeground())
	s.Selected = s.Selected.
		Foreground(pal.Focused.GetForeground()).
		Reverse(true).
		Bold(false)
	p.table.SetStyles(s)
}

func (p *scoresPage) View(s *site, width, _ int) string {
	pal := s.palette()
	p.style(pal)

	var b strings.Builder
	b.WriteString(pal.Accent.Render("HIGH SCORES - Car Dodge"))
	b.WriteString("\n\n")

	switch {
	case s.opts.Store == nil:
		b.WriteString(pal.Muted.Italic(true).Render("Scores are not being recorded in this session."))
	case p.err != nil:
		b.WriteString(pal.Danger.Render("Cannot load scores: " + p.err.Error()))
	case len(p.scores) == 0:
		b.WriteString(pal.Muted.Italic(true).Render("No scores recorded yet.\nPlay a game to set a high score!"))
	default:
		b.WriteString(p.table.View())
		if p.stats != nil {
			b.WriteString("\n\n")
			b.WriteString(pal.Muted.Render(fmt.Sprintf(
				"%d games  best %d  average %.1f  last played %s",
				p.stats.GamesCount, p.stats.HighScore, p.stats.AvgScore,
				p.stats.LastPlayed.Format("Jan 02 15:04"),
			)))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(b.String())
}
