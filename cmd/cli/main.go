package main

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/minaorangina/lostcities/config"
	"github.com/minaorangina/lostcities/deck"
	"github.com/minaorangina/lostcities/engine"
	"github.com/minaorangina/lostcities/players"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfg == nil {
		cfg = &config.Config{}
	}

	cmd := &cobra.Command{
		Use:           "lostcities",
		Short:         "Play Lost Cities for two at one terminal",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return play(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed; 0 picks one from the clock")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	flags.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "attempts a player gets for each turn")
	flags.StringVar(&cfg.PlayerUp, "up", cfg.PlayerUp, "name of the player who starts")
	flags.StringVar(&cfg.PlayerDown, "down", cfg.PlayerDown, "name of the other player")
	flags.BoolVar(&cfg.Color, "color", cfg.Color, "colour cards by expedition")

	return cmd
}

func play(cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "lostcities",
		Level:  cfg.Level(),
		Output: errOut,
	})

	seed := cfg.Seed
	if !cfg.Seeded() {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("shuffling", "seed", seed)

	// both players share the terminal, so they share one reader
	display := players.NewDisplay(cfg.Color)
	up, down := players.NewSharedKeyboardPlayers(cfg.PlayerUp, cfg.PlayerDown, in, out)

	match, err := engine.NewMatch(engine.MatchOpts{
		Up:          up.WithDisplay(display),
		Down:        down.WithDisplay(display),
		Source:      deck.NewXoshiro(seed),
		Logger:      logger,
		MaxAttempts: cfg.MaxAttempts,
	})
	if err != nil {
		return err
	}

	final, err := match.Run()
	if err != nil {
		return err
	}

	players.SendText(out, "\n%s\n", display.Board(final.Board()))
	players.SendText(out, "\nThe deck is empty: game over.\n")
	return nil
}
