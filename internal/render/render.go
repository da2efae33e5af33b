// internal/render/render.go
//
// Display of solved rounds: coloured tiles for terminals and the emoji grid
// used in history rows and share text.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var (
	colorGreen  = lipgloss.Color("#6AAA64")
	colorYellow = lipgloss.Color("#C9B458")
	colorBlack  = lipgloss.Color("#3A3A3C")
	colorText   = lipgloss.Color("#FFFFFF")
)

// Styles holds the lipgloss styles used by the terminal renderer.
type Styles struct {
	Green   lipgloss.Style
	Yellow  lipgloss.Style
	Black   lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// DefaultStyles uses the Wordle tile colours.
func DefaultStyles() Styles {
	tile := lipgloss.NewStyle().Bold(true).Foreground(colorText).Padding(0, 1)
	return Styles{
		Green:   tile.Background(colorGreen),
		Yellow:  tile.Background(colorYellow),
		Black:   tile.Background(colorBlack),
		Label:   lipgloss.NewStyle().Faint(true),
		Success: lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
	}
}

func (s Styles) tile(t solver.Tile) lipgloss.Style {
	switch t {
	case solver.TileGreen:
		return s.Green
	case solver.TileYellow:
		return s.Yellow
	default:
		return s.Black
	}
}

// Emoji returns the share-grid square for a tile.
func Emoji(t solver.Tile) string {
	switch t {
	case solver.TileGreen:
		return "🟩"
	case solver.TileYellow:
		return "🟨"
	default:
		return "⬛"
	}
}

// EmojiRow renders one round as five squares.
func EmojiRow(r session.Round) string {
	var b strings.Builder
	for _, t := range r.Tiles {
		b.WriteString(Emoji(t))
	}
	return b.String()
}

// EmojiGrid renders rounds one per line.
func EmojiGrid(rounds []session.Round) string {
	rows := make([]string, 0, len(rounds))
	for _, r := range rounds {
		rows = append(rows, EmojiRow(r))
	}
	return strings.Join(rows, "\n")
}

// Tiles renders a round's letters on coloured tiles.
func (s Styles) Tiles(r session.Round) string {
	cells := make([]string, 0, solver.WordLength)
	for i, t := range r.Tiles {
		letter := " "
		if i < len(r.Guess) {
			letter = r.Guess[i : i+1]
		}
		cells = append(cells, s.tile(t).Render(letter))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Terminal is a session.Renderer writing styled rounds to an io.Writer.
type Terminal struct {
	W      io.Writer
	Styles Styles
}

// NewTerminal returns a Terminal with the default styles.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{W: w, Styles: DefaultStyles()}
}

func (t *Terminal) Render(r session.Round) {
	fmt.Fprintf(t.W, "%s %s\n", t.Styles.Label.Render(fmt.Sprintf("#%d", r.Attempt)), t.Styles.Tiles(r))
}

// Outcome prints the final line of a solve and its emoji grid.
func (t *Terminal) Outcome(o session.Outcome) {
	switch o.Status {
	case session.StatusSolved:
		fmt.Fprintln(t.W, t.Styles.Success.Render(fmt.Sprintf("Solved: %s in %d", o.Word, o.Attempts)))
	case session.StatusFailedExhausted:
		fmt.Fprintln(t.W, t.Styles.Failure.Render(fmt.Sprintf("Out of attempts after %d", o.Attempts)))
	case session.StatusFailedNoCandidates:
		fmt.Fprintln(t.W, t.Styles.Failure.Render("No candidates remain"))
	default:
		return
	}
	if len(o.Rounds) > 0 {
		fmt.Fprintln(t.W, EmojiGrid(o.Rounds))
	}
}
