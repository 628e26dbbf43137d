// Package tui is a full screen terminal interface for playing against the computer.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lk16/reversi/internal/console"
	"github.com/lk16/reversi/internal/othello"
)

// maxMessages is the number of recent messages shown in the status view.
const maxMessages = 8

type UI struct {
	app       *tview.Application
	game      *othello.Game
	showHints bool

	root   *tview.Flex
	board  *tview.TextView
	status *tview.TextView
	input  *tview.InputField

	messages []string
	finished bool

	// quit stops the application, it is replaced in tests.
	quit func()

	// err is returned by Run once the application stops.
	err error
}

func New(game *othello.Game, showHints bool) *UI {
	ui := &UI{
		app:       tview.NewApplication(),
		game:      game,
		showHints: showHints,
		board:     tview.NewTextView(),
		status:    tview.NewTextView(),
		input:     tview.NewInputField(),
	}
	ui.quit = ui.app.Stop

	ui.board.SetBorder(true)
	ui.board.SetTitle(" Reversi ")

	ui.status.SetBorder(true)
	ui.status.SetBorderPadding(0, 0, 1, 1)
	ui.status.SetTitle(" Status ")
	ui.status.SetTitleAlign(tview.AlignLeft)

	ui.input.SetLabel("Move: ")
	ui.input.SetFieldWidth(4)
	ui.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := ui.input.GetText()
			ui.input.SetText("")
			ui.Submit(text)
		case tcell.KeyEscape:
			ui.quit()
		}
	})

	ui.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(ui.board, 23, 0, false).
			AddItem(ui.status, 0, 1, false), 12, 0, false).
		AddItem(ui.input, 1, 0, true)

	ui.root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			ui.quit()
			return nil
		}
		return event
	})

	ui.addMessage("You play white (○), the computer plays black (●).")
	ui.nextRound()
	ui.refresh()

	return ui
}

// Run blocks until the user quits.
func (ui *UI) Run() error {
	if err := ui.app.SetRoot(ui.root, true).SetFocus(ui.input).Run(); err != nil {
		return err
	}
	return ui.err
}

// Submit handles a line typed by the user: either a field to play or "q" to quit.
func (ui *UI) Submit(text string) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "q") {
		ui.quit()
		return
	}

	if ui.finished {
		ui.addMessage("The game is over, enter q to quit.")
		ui.refresh()
		return
	}

	ui.humanTurn(text)
	ui.refresh()
}

func (ui *UI) humanTurn(field string) {
	square, err := othello.ParseSquare(field)
	if err != nil {
		ui.addMessage(console.FieldErrorMessage(err))
		return
	}

	err = ui.game.ApplyHumanMove(square, ui.game.LegalMoves(othello.WHITE))
	if errors.Is(err, othello.ErrInvalidPlacement) {
		ui.addMessage(fmt.Sprintf("You cannot place a disc on %s.", square))
		return
	}
	if err != nil {
		ui.fail(err)
		return
	}

	ui.addMessage(fmt.Sprintf("You place a disc on %s.", square))
	if !ui.computerTurn() {
		return
	}
	ui.nextRound()
}

// nextRound plays rounds in which the human must pass, until the human can move or the game is over.
func (ui *UI) nextRound() {
	for !ui.game.IsGameOver() {
		if ui.game.CanMove(othello.WHITE) {
			return
		}

		ui.game.MarkSkipped(othello.WHITE)
		ui.addMessage("You have no legal move and must pass.")

		if !ui.computerTurn() {
			return
		}
	}

	ui.finish()
}

// computerTurn moves or skips for the computer. It returns false if the computer failed to move.
func (ui *UI) computerTurn() bool {
	if !ui.game.CanMove(othello.BLACK) {
		ui.game.MarkSkipped(othello.BLACK)
		ui.addMessage("The computer has no legal move and passes.")
		return true
	}

	square, err := ui.game.ApplyComputerMove()
	if err != nil {
		ui.fail(err)
		return false
	}

	ui.addMessage(fmt.Sprintf("The computer places a disc on %s.", square))
	return true
}

func (ui *UI) finish() {
	ui.finished = true

	switch ui.game.Winner() {
	case othello.WHITE:
		ui.addMessage("Game over. You win!")
	case othello.BLACK:
		ui.addMessage("Game over. The computer wins.")
	default:
		ui.addMessage("Game over. It's a tie.")
	}
}

func (ui *UI) fail(err error) {
	slog.Error("Game stopped", "game_id", ui.game.ID(), "error", err)
	ui.err = err
	ui.finished = true
	ui.addMessage(fmt.Sprintf("Error: %s", err))
}

func (ui *UI) addMessage(message string) {
	ui.messages = append(ui.messages, message)
	if len(ui.messages) > maxMessages {
		ui.messages = ui.messages[len(ui.messages)-maxMessages:]
	}
}

func (ui *UI) refresh() {
	var moves othello.MoveMap
	if ui.showHints && !ui.finished {
		moves = ui.game.LegalMoves(othello.WHITE)
	}
	ui.board.SetText(strings.Join(ui.game.Board().ASCIIArtLines(moves), "\n"))

	white, black := ui.game.Score()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: white %d, black %d\n\n", white, black)
	for _, message := range ui.messages {
		sb.WriteString(message + "\n")
	}
	if ui.finished {
		sb.WriteString("\nEnter q or press Escape to quit.")
	}
	ui.status.SetText(sb.String())
}
