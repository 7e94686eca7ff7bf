// Package cmd is for command line interactions with the rnafold application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is for structured diagnostics on stderr. The fold core itself
// never logs, it returns errors.
var logger *zap.SugaredLogger

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "rnafold",
	Short: `Fold a linear RNA sequence around its largest loop.
The pairing between the two arms is optimized by a parallel branch search`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer l.Sync()
	logger = l.Sugar()

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("%v", err)
	}
}
