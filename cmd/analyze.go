package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/gridfit/gridfit/app"
	"github.com/gridfit/gridfit/core/analysis"
	"github.com/gridfit/gridfit/core/model"
)

var (
	inputPath  string
	outputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis from an input file",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file (yaml or json)")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "report destination, stdout when empty")
	if err := analyzeCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := readInput(inputPath)
	if err != nil {
		return err
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	rep, err := svc.Analyze(ctx, analysis.Input{
		Data:            data,
		Year:            cfg.Analysis.Year,
		PreferHT:        cfg.Analysis.PreferHT,
		IntervalMinutes: cfg.Analysis.IntervalMinutes,
		BufferKWh:       cfg.Analysis.BufferKWh,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	if outputPath == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(outputPath, out, 0o644)
}

// readInput parses a ManualEnergyData file in the same formats the
// configuration accepts.
func readInput(path string) (model.ManualEnergyData, error) {
	var data model.ManualEnergyData
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	case ".json":
		parser = kjson.Parser()
	default:
		return data, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return data, fmt.Errorf("read input: %w", err)
	}
	if err := k.UnmarshalWithConf("", &data, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return data, fmt.Errorf("parse input: %w", err)
	}
	return data, nil
}
