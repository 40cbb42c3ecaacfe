package commands

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/terminal"
	"github.com/battlesnakeio/termsnake/version"
	"github.com/battlesnakeio/termsnake/worker"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "termsnake",
	Short:   "termsnake is the snake game, played in your terminal",
	Version: version.Version,
	Args:    cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		closeLog, err := setupLogging(config.LogLevel, config.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()

		return play()
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func play() error {
	game, err := rules.CreateInitialGame(config.BoardWidth, config.BoardHeight,
		rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	term, err := terminal.Open()
	if err != nil {
		return err
	}
	defer term.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	w := worker.New(term, config.TickRate())
	if err := w.Run(ctx, game); err != nil && errors.Cause(err) != context.Canceled {
		return errors.Wrap(err, "game stopped unexpectedly")
	}

	frame := game.Frame()
	log.Debug(spew.Sdump(frame))
	if frame.Crashed() {
		term.WaitForKey(config.GameOverHold)
	}
	return nil
}
