//go:build !( js || wasm)

package main

import (
	"context"
	"github.com/fp4php/functional-collection/cmd"
	"github.com/fp4php/functional-collection/internal/log"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

var logLevel *int

var rootCmd = &cobra.Command{
	Use:          "fpc [subcommand]",
	Short:        "fpc refines the types flowing out of collection filters",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(slog.Level(*logLevel))
	},
}

func init() {
	logLevel = rootCmd.PersistentFlags().IntP("log-level", "l", int(slog.LevelWarn), "log level")
	rootCmd.AddCommand(cmd.RefineCmd)
	rootCmd.AddCommand(cmd.AnalyzeCmd)
	rootCmd.AddCommand(cmd.FamiliesCmd)
}
