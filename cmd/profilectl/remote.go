package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fadilmartias/profile-analyzer/internal/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var remoteCmd = &cobra.Command{
	Use:   "remote [FILE]",
	Short: "Score a profile or document on a running server",
	Long: "Without FILE the profile is read from the section flags or --file, like score.\n" +
		"With FILE the document is uploaded to /analyze_pdf.",
	Args: cobra.MaximumNArgs(1),
	RunE: runRemote,
}

func init() {
	rootCmd.AddCommand(remoteCmd)
	addProfileFlags(remoteCmd)

	remoteCmd.Flags().StringP("server", "s", "http://localhost:8000", "server base URL")
	remoteCmd.Flags().Duration("timeout", 90*time.Second, "request timeout")

	for _, name := range []string{"server", "timeout"} {
		if err := viper.BindPFlag(name, remoteCmd.Flags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

func runRemote(cmd *cobra.Command, args []string) error {
	l, err := newLogger()
	if err != nil {
		return err
	}
	defer l.Sync()

	c := client.New(viper.GetString("server"), viper.GetDuration("timeout"))

	version, engine, err := c.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("checking server health: %w", err)
	}
	l.Debug("server ready", zap.String("version", version), zap.String("engine", engine))

	var res *client.Result
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		res, err = c.AnalyzeFile(cmd.Context(), filepath.Base(args[0]), data)
		if err != nil {
			return err
		}
	} else {
		req, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}
		res, err = c.Analyze(cmd.Context(), req)
		if err != nil {
			return err
		}
	}

	if res.Note != "" {
		l.Warn(res.Note, zap.Int("overall_score", res.OverallScore))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(res.Raw))
	return err
}
