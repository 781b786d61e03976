package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnloop",
	Short: "AI micro-learning backend",
	Long:  "LearnLoop — daily AI micro-lessons, quizzes, and certification, generated on demand.",
	RunE: runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database DSN: a postgres:// URL or a SQLite path (overrides LEARNLOOP_DATABASE_DSN)")
	rootCmd.PersistentFlags().String("addr", "", "Listen address (overrides LEARNLOOP_ADDR)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
