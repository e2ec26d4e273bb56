/*
Skirmish is the game client: it boots the window, renderer, asset manager
and simulation, then runs the vblank-paced main loop until the player quits
or the platform tears the window down.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/feralbyte/skirmish/engine"
	"github.com/feralbyte/skirmish/engine/core"
	"github.com/feralbyte/skirmish/game"
)

var (
	flagFullscreen  bool
	flagTimeStretch float64
	flagPort        uint16
	flagConfig      string
)

var rootCmd = &cobra.Command{
	Use:   "skirmish",
	Short: "Skirmish multiplayer arena client",
	Long: `Skirmish is the client for the skirmish multiplayer arena.

It opens a window, connects to the configured arena server and runs the
game loop paced by the display's vertical blank signal.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagFullscreen, "fullscreen", "f", defaultFullscreen, "Run in fullscreen on the primary monitor")
	rootCmd.Flags().Float64Var(&flagTimeStretch, "time-stretch", 1.0, "Global gameplay slowdown factor (must be nonzero)")
	rootCmd.Flags().Uint16VarP(&flagPort, "port", "p", 7777, "Arena server port")
	rootCmd.Flags().StringVar(&flagConfig, "config", "skirmish.toml", "Path to the client config file")
}

func run(cmd *cobra.Command, _ []string) error {
	// The flags parsed; from here on a failure is a runtime error and usage
	// output would only bury it. Flag errors still print usage.
	cmd.SilenceUsage = true

	// Precedence, lowest first: build default, config file, explicit flag.
	cfg := engine.DefaultConfig()
	cfg.Fullscreen = defaultFullscreen
	if err := cfg.LoadFile(flagConfig); err != nil {
		return err
	}
	if cmd.Flags().Changed("fullscreen") {
		cfg.Fullscreen = flagFullscreen
	}
	if cmd.Flags().Changed("time-stretch") {
		cfg.TimeStretch = flagTimeStretch
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}

	if err := core.SetLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	eng, err := engine.New(cfg, engine.DefaultProviders(game.New))
	if err != nil {
		return err
	}

	// Map process signals onto the terminal-event path so the loop exits
	// through normal control flow and teardown runs in order.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		core.LogInfo("Signal received, requesting shutdown.")
		eng.PostQuit()
	}()

	runErr := eng.Run()
	if err := eng.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err.Error())
	}
	return runErr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
