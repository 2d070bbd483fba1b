// Package cli implements a command-line move log for matches between AI players.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"golang.org/x/term"
)

// UI prints the progress of a match to a writer, usually os.Stdout.
type UI struct {
	w     io.Writer
	color bool

	playerStyles [NumPlayers]lipgloss.Style
	winnerStyle  lipgloss.Style
}

// IsTerminal returns whether os.Stdout is a terminal, in which case colors can be used.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// New creates a UI writing to w. If color is false, no ANSI sequences are written.
func New(w io.Writer, color bool) *UI {
	ui := &UI{w: w, color: color}
	ui.playerStyles[PlayerFirst] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	ui.playerStyles[PlayerSecond] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	ui.winnerStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("13")).
		Foreground(lipgloss.Color("0")).
		Padding(1, 2)
	return ui
}

// render applies style if colors are enabled.
func (ui *UI) render(style lipgloss.Style, s string) string {
	if !ui.color {
		return s
	}
	return style.Render(s)
}

// terminalWidth returns the width of the terminal, or 0 if not writing to one.
func (ui *UI) terminalWidth() int {
	if !ui.color {
		return 0
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// printCentered prints each line of block centered in the terminal.
func (ui *UI) printCentered(block string) {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, lipgloss.Width(line))
	}
	indent := max((ui.terminalWidth()-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Fprintln(ui.w)
			continue
		}
		fmt.Fprintf(ui.w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// PlayerName returns the player name, styled with the player's color.
func (ui *UI) PlayerName(player PlayerNum) string {
	if player >= PlayerInvalid {
		return player.String()
	}
	return ui.render(ui.playerStyles[player], player.String())
}

// PrintMatch prints the header of a match.
func (ui *UI) PrintMatch(matchName string, width, height int, playerDescriptions [NumPlayers]string) {
	fmt.Fprintf(ui.w, "Match %s on a %dx%d board\n", matchName, width, height)
	for player, description := range playerDescriptions {
		fmt.Fprintf(ui.w, "  %s: %s\n", ui.PlayerName(PlayerNum(player)), description)
	}
	fmt.Fprintln(ui.w)
}

// PrintMove prints one line of the move log: moveNumber starts at 1.
func (ui *UI) PrintMove(moveNumber int, player PlayerNum, move Move, elapsed time.Duration) {
	fmt.Fprintf(ui.w, "%4d. %-6s -> %-8s (%s)\n", moveNumber, ui.PlayerName(player), move,
		elapsed.Round(time.Microsecond))
}

// PrintWinner prints the result of a finished match, or that it was interrupted if there is no winner.
func (ui *UI) PrintWinner(s State, moveNumber int) {
	winner := Winner(s)
	fmt.Fprintln(ui.w)
	if winner == PlayerInvalid {
		ui.printCentered(ui.render(ui.winnerStyle, fmt.Sprintf("*** No winner after %d moves ***", moveNumber)))
	} else {
		ui.printCentered(fmt.Sprintf("*** %s PLAYER WINS after %d moves!! ***",
			ui.render(ui.playerStyles[winner], strings.ToUpper(winner.String())), moveNumber))
	}
	fmt.Fprintln(ui.w)
}
