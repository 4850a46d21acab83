package main

import (
	"github.com/fadilmartias/profile-analyzer/internal/usecase"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile given as flags or a JSON/YAML file",
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	addProfileFlags(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	l, err := newLogger()
	if err != nil {
		return err
	}
	defer l.Sync()

	engine, err := newEngine()
	if err != nil {
		return err
	}

	req, err := profileFromFlags(cmd)
	if err != nil {
		return err
	}

	uc := usecase.NewAnalysisUsecase(engine, nil, 0, nil, l)
	resp, err := uc.AnalyzeText(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(cmd, resp)
}
