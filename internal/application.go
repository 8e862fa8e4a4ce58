package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	evaluator, err := search.New(conf.Engine.Algorithm)
	if err != nil {
		return fmt.Errorf("could not create evaluator: %w", err)
	}

	botService := service.NewBotService(logger, evaluator)
	terminal := console.New(os.Stdin, os.Stdout, conf.Console.Color)

	turnLoop := usecase.NewTurnLoop(logger, terminal, terminal, botService, usecase.Options{
		Hint:     conf.Console.Hint,
		Autoplay: conf.Engine.Autoplay,
	})

	log.Info("Starting game session", "algorithm", evaluator.Name(), "games", conf.Games)

	if err = turnLoop.Run(ctx, conf.Games); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("Game session finished")

	return nil
}
