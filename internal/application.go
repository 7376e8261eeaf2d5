package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/terminal"
)

// RunApp - runs the application on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game stack and plays on the given streams until the player leaves or a signal arrives.
func Run(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	engine := minimax.NewEngine(logger, minimax.WithParallel(conf.ParallelSearch))
	gameRepo := repository.NewGameRepository()
	botService := service.NewBotService(logger, engine)
	gameManager := usecase.NewGameManager(logger, gameRepo, botService)

	term := terminal.New(logger, gameManager, in, out,
		terminal.WithMarks(conf.Marks.Human, conf.Marks.Machine),
		terminal.WithMachineFirst(conf.MachineFirst),
		terminal.WithColor(!conf.NoColor),
	)

	termErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting terminal session", "machineFirst", conf.MachineFirst, "parallelSearch", conf.ParallelSearch)
		termErrCh <- term.Run(ctx)
	}()

	select {
	case err := <-termErrCh:
		if err != nil {
			return fmt.Errorf("terminal session error: %w", err)
		}
		log.Info("Terminal session ended")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
