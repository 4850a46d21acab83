package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fadilmartias/profile-analyzer/internal/config"
	"github.com/fadilmartias/profile-analyzer/internal/ioc"
	"github.com/fadilmartias/profile-analyzer/internal/logger"
	"github.com/fadilmartias/profile-analyzer/internal/scoring"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app       = "profilectl"
	envPrefix = "PROFILECTL"
)

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "profilectl scores LinkedIn style profiles locally or against a running server",
	SilenceUsage: true,
}

// Execute executes the root command until it returns or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.String("engine", scoring.EngineHeuristic, "scoring engine: heuristic or basic")
	flags.String("keywords", "", "YAML keyword bank file (default is the built-in bank)")
	flags.Int("found-cap", scoring.DefaultFoundCap, "how many matched keywords a report lists")
	flags.BoolP("debug", "d", false, "verbose/debug output")
	flags.BoolP("json", "j", false, "json format for logging")

	for _, name := range []string{"engine", "keywords", "found-cap", "debug", "json"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

// newLogger writes to stderr so stdout carries only reports.
func newLogger() (*zap.Logger, error) {
	l, err := logger.NewTo("stderr", viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}
	return l, nil
}

func newEngine() (scoring.Engine, error) {
	_, engine, err := ioc.InitScoring(&config.ScoringConfig{
		Engine:          viper.GetString("engine"),
		KeywordBankFile: viper.GetString("keywords"),
		FoundCap:        viper.GetInt("found-cap"),
	})
	return engine, err
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
