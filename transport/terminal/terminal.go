package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

const (
	colorHuman   = "4" // blue
	colorMachine = "1" // red
	colorTie     = "2" // green
)

const helpText = `Commands:
  0-8   play the cell with that number
  new   start a new game
  help  show this help
  quit  leave
`

type gameManager interface {
	NewGame(ctx context.Context, machineFirst bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
}

// Terminal is the display/input surface: it reads cell numbers and renders the board.
type Terminal struct {
	logger  *slog.Logger
	manager gameManager

	in  io.Reader
	out *termenv.Output

	humanMark    string
	machineMark  string
	machineFirst bool
	color        bool

	game *entity.Game
}

type Option func(*Terminal)

func WithMarks(human, machine string) Option {
	return func(t *Terminal) {
		t.humanMark = human
		t.machineMark = machine
	}
}

func WithMachineFirst(enabled bool) Option {
	return func(t *Terminal) {
		t.machineFirst = enabled
	}
}

// WithColor - highlights winning lines, ignored when the output is not a terminal.
func WithColor(enabled bool) Option {
	return func(t *Terminal) {
		t.color = enabled
	}
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, opts ...Option) *Terminal {
	term := &Terminal{
		logger:  logger.With("component", "terminal"),
		manager: manager,

		in:  in,
		out: termenv.NewOutput(out),

		humanMark:   string(entity.HumanMark),
		machineMark: string(entity.MachineMark),
		color:       true,
	}

	for _, opt := range opts {
		opt(term)
	}

	return term
}

// Run - plays games until quit, end of input or a failure of the game manager.
func (that *Terminal) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if err := that.startGame(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(that.in)

	that.prompt()
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		quit, err := that.handle(ctx, strings.TrimSpace(scanner.Text()))
		if err != nil {
			return err
		}

		if quit {
			log.Info("player left")
			that.cleanup(ctx)
			return nil
		}

		that.prompt()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	that.cleanup(ctx)

	return nil
}

func (that *Terminal) handle(ctx context.Context, command string) (bool, error) {
	switch strings.ToLower(command) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "help", "?":
		that.print(helpText)
		return false, nil
	case "new":
		that.cleanup(ctx)
		return false, that.startGame(ctx)
	}

	cell, err := strconv.Atoi(command)
	if err != nil {
		that.printf("Unknown command %q, type help for the list.\n", command)
		return false, nil
	}

	return false, that.playCell(ctx, cell)
}

func (that *Terminal) playCell(ctx context.Context, cell int) error {
	if that.game.IsFinished() {
		that.print("The game is over, type new to play again.\n")
		return nil
	}

	game, err := that.manager.MakeTurn(ctx, that.game.ID, cell)
	switch {
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrNotYourTurn):
		that.printf("Invalid move, pick an empty cell between 0 and %d.\n", entity.BoardSize-1)
		return nil
	case err != nil:
		return fmt.Errorf("failed to play cell %d: %w", cell, err)
	}

	that.game = game
	that.render()

	return nil
}

func (that *Terminal) startGame(ctx context.Context) error {
	game, err := that.manager.NewGame(ctx, that.machineFirst)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.game = game
	that.print("New game. You play " + that.humanMark + ", the machine plays " + that.machineMark + ".\n")
	that.render()

	return nil
}

// cleanup - drops an unfinished game, finished ones are already gone from the store.
func (that *Terminal) cleanup(ctx context.Context) {
	if that.game == nil || that.game.IsFinished() {
		return
	}

	err := that.manager.DeleteGame(ctx, that.game.ID)
	if err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		that.logger.Error("failed to delete game", "gameID", that.game.ID, "error", err)
	}
}

func (that *Terminal) prompt() {
	if that.game != nil && that.game.IsOngoing() {
		that.print("Your move: ")
		return
	}
	that.print("> ")
}

func (that *Terminal) render() {
	game := that.game

	highlighted := make(map[int]string, entity.BoardSize)
	switch {
	case game.IsTie():
		for i := range entity.BoardSize {
			highlighted[i] = colorTie
		}
	case game.IsFinished():
		color := colorMachine
		if game.Winner == entity.Human {
			color = colorHuman
		}
		for _, cell := range game.WinningCells() {
			highlighted[cell] = color
		}
	}

	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := range 3 {
			cell := row*3 + col
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(that.styled(" "+that.cellText(game.Board[cell], cell)+" ", highlighted[cell]))
		}
		sb.WriteString("\n")
	}

	that.print(sb.String())

	switch {
	case game.IsTie():
		that.print("Tie Game!\n")
	case game.IsFinished() && game.Winner == entity.Human:
		that.print("You Win!\n")
	case game.IsFinished():
		that.print("You lose.\n")
	}
}

func (that *Terminal) cellText(player entity.Player, cell int) string {
	switch player {
	case entity.Human:
		return that.humanMark
	case entity.Machine:
		return that.machineMark
	default:
		return strconv.Itoa(cell)
	}
}

func (that *Terminal) styled(text, color string) string {
	if color == "" || !that.color {
		return text
	}

	return that.out.String(text).Background(that.out.Color(color)).Bold().String()
}

func (that *Terminal) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Terminal) printf(format string, args ...any) {
	that.print(fmt.Sprintf(format, args...))
}
