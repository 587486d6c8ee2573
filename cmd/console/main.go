package main

import (
	"log/slog"
	"os"

	"github.com/AdrianMos/cpp-examples/internal/config"
	"github.com/AdrianMos/cpp-examples/internal/console"
	"github.com/spf13/cobra"
)

type Commands []console.Command

func main() {
	slog.Info("starting console command")

	root := newRootCommand(initCommands())
	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	slog.Info("command finished")
}

func initCommands() *Commands {
	return &Commands{
		console.NewNewsDemoCommand(os.Stdout),
		console.NewFunctorDemoCommand(os.Stdout),
		console.NewDowncastDemoCommand(os.Stdout),
	}
}

func newRootCommand(commands *Commands) *cobra.Command {
	root := &cobra.Command{
		Use:           "news_console <command>",
		Short:         "Observer, functor and shared handle demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			config.GetConfig()
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if config.GetConfig().PauseOnExit {
				return console.WaitForKey(os.Stdin, os.Stdout)
			}
			return nil
		},
	}
	root.PersistentFlags().Bool("debug", false, "enable debug logging (NEWS_DEBUG)")
	root.PersistentFlags().Bool("pause", false, "wait for a key press before exit (NEWS_PAUSE_ON_EXIT)")
	if err := config.BindFlags(root.PersistentFlags()); err != nil {
		slog.Error("unable to bind flags", "error", err)
		os.Exit(1)
	}

	for _, cmd := range *commands {
		root.AddCommand(wrapCommand(cmd))
	}
	return root
}

// wrapCommand mounts a console command as a cobra subcommand.
func wrapCommand(cmd console.Command) *cobra.Command {
	return &cobra.Command{
		Use:   cmd.Name(),
		Short: cmd.Description(),
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			slog.Info("command found", "command", cmd.Name())
			return cmd.Run()
		},
	}
}
