package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jexer122625/regassist/internal/adapter"
	"github.com/jexer122625/regassist/internal/keystore"
)

var (
	genModel       string
	genPrompt      string
	genFile        string
	genMaxTokens   int
	genTemperature float64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Send one prompt to a provider and print the result",
	Long: `generate performs a single provider call using the same routing,
credential lookup and response extraction as the HTTP service.

Examples:
  regassist generate --prompt "List the sections of a traditional 510(k)"
  regassist generate --model gemini-1.5-pro --file submission.txt`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genModel, "model", "", "model identifier (default from config)")
	generateCmd.Flags().StringVar(&genPrompt, "prompt", "", "prompt text")
	generateCmd.Flags().StringVar(&genFile, "file", "", "read the prompt from a file")
	generateCmd.Flags().IntVar(&genMaxTokens, "max-tokens", adapter.DefaultMaxTokens, "output token budget")
	generateCmd.Flags().Float64Var(&genTemperature, "temperature", adapter.DefaultTemperature, "sampling temperature")
	generateCmd.MarkFlagsMutuallyExclusive("prompt", "file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	text := genPrompt
	if genFile != "" {
		data, err := os.ReadFile(genFile)
		if err != nil {
			return fmt.Errorf("read prompt: %w", err)
		}
		text = string(data)
	}
	if text == "" {
		return errors.New("one of --prompt or --file is required")
	}

	model := genModel
	if model == "" {
		model = cfg.DefaultModel
	}

	router := buildRouter(cfg, keystore.NewMemory(nil), useMock)
	req := adapter.NewRequest(model, text)
	req.MaxTokens = genMaxTokens
	req.Temperature = genTemperature

	out, err := router.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
