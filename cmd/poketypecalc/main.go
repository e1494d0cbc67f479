// Command poketypecalc ranks single and dual types by how well their matchups cover the type chart.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "poketypecalc",
	Short:         "Type coverage calculator",
	Long:          "poketypecalc scores every type and every ordered pair of distinct types against the type chart and reports the best and worst of each.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
}

var (
	configPath string
	chartPath  string
	dbPath     string
	generation int
	logLevel   string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to a TOML config file (defaults to $POKETYPECALC_CONFIG)")
	flags.StringVar(&chartPath, "chart", "", "Path to a TOML type chart replacing the built-in chart")
	flags.StringVar(&dbPath, "db", "", "Path to a PokeAPI sqlite database to read the type chart from")
	flags.IntVar(&generation, "generation", 0, "Generation to read from the database (0 for latest)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error or disabled")
}

// loadEnv reads path into the environment. A missing file is not an error.
func loadEnv(path string) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("could not load env file")
	}
}

func main() {
	loadEnv(".env")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
