package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fadilmartias/profile-analyzer/internal/config"
	"github.com/fadilmartias/profile-analyzer/internal/dto"
	"github.com/fadilmartias/profile-analyzer/internal/ioc"
	"github.com/fadilmartias/profile-analyzer/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type documentReport struct {
	File   string                `json:"file"`
	Report *dto.AnalysisResponse `json:"report"`
}

var docsCmd = &cobra.Command{
	Use:   "docs FILE...",
	Short: "Extract and score PDF or text profile exports",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().IntP("concurrency", "c", runtime.NumCPU(), "documents processed at once")
	docsCmd.Flags().Bool("ocr", false, "fall back to tesseract OCR for scanned PDFs")

	for _, name := range []string{"concurrency", "ocr"} {
		if err := viper.BindPFlag(name, docsCmd.Flags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

func runDocs(cmd *cobra.Command, files []string) error {
	l, err := newLogger()
	if err != nil {
		return err
	}
	defer l.Sync()

	engine, err := newEngine()
	if err != nil {
		return err
	}

	for _, f := range files {
		if !usecase.SupportedDocument(f) {
			return fmt.Errorf("%s: %w", f, usecase.ErrUnsupportedDocument)
		}
	}

	extraction := *config.LoadExtractionConfig()
	if viper.GetBool("ocr") {
		extraction.OCREnabled = true
	}
	documents := ioc.InitDocumentExtractor(cmd.Context(), &extraction, config.LoadGeminiConfig(), l)
	uc := usecase.NewAnalysisUsecase(engine, documents, extraction.Timeout, nil, l)

	limit := viper.GetInt("concurrency")
	if limit < 1 {
		limit = 1
	}

	reports := make([]documentReport, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(limit)
	for i, f := range files {
		g.Go(func() error {
			data, err := os.ReadFile(f)
			if err != nil {
				return err
			}
			resp, err := uc.AnalyzeDocument(ctx, filepath.Base(f), data)
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			l.Debug("document scored", zap.String("file", f), zap.Int("overall_score", resp.OverallScore))
			reports[i] = documentReport{File: f, Report: resp}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return printJSON(cmd, reports)
}
