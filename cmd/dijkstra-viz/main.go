// SPDX-License-Identifier: MIT

// Command dijkstra-viz steps through Dijkstra's shortest-path algorithm on
// small example graphs, in the terminal or as plain text.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "dijkstra-viz",
		Short:         "Watch Dijkstra's algorithm find a shortest path, one decision at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configPath string
	envFile    string
	logFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file with VISDIJKSTRA_* overrides (ignored when missing)")
	pf.StringVar(&logFile, "log-file", "", "write logs here instead of stderr")

	addGraphFlags(runCmd)
	addGraphFlags(playCmd)
	addGraphFlags(predictCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(examplesCmd)
}
