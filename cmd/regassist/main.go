package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jexer122625/regassist/internal/config"
	"github.com/jexer122625/regassist/internal/extract"
	"github.com/jexer122625/regassist/internal/keystore"
	"github.com/jexer122625/regassist/internal/logger"
	"github.com/jexer122625/regassist/internal/server"
)

var version = "dev"

var (
	configPath string
	useMock    bool
	port       int
)

var rootCmd = &cobra.Command{
	Use:   "regassist",
	Short: "510(k) regulatory assistant LLM relay",
	Long: `regassist relays document-organization and checklist-review prompts
to OpenAI or Gemini and returns the generated markdown.

Examples:
  regassist --config config.yaml
  regassist --mock --port 8080
  regassist generate --model gemini-1.5-flash --prompt "Summarize 21 CFR 807.87"`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "use mock adapters instead of real LLM providers")
	rootCmd.Flags().IntVar(&port, "port", 0, "override listen port")

	rootCmd.AddCommand(generateCmd)
}

func main() {
	loadEnvFiles()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}

// setup loads config and installs the global logger.
func setup() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if _, err := logger.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		return cfg, fmt.Errorf("logger: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Port = port
	}

	keys := keystore.NewMemory(nil)
	router := buildRouter(cfg, keys, useMock)

	var ex extract.TextExtractor = extract.Nop{}
	if cfg.PDFExtraction {
		ex = extract.PDF{}
	} else {
		log.Info().Msg("pdf extraction disabled, uploaded PDFs yield empty text")
	}

	for p, st := range router.Status() {
		log.Info().
			Str("provider", string(p)).
			Str("name", st.Name).
			Bool("available", st.Available).
			Bool("configured", st.Configured).
			Msg("provider")
	}

	handler := server.SetupMux(server.Deps{
		Router:       router,
		Keys:         keys,
		Extractor:    ex,
		Models:       cfg.Models,
		DefaultModel: cfg.DefaultModel,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Version:      version,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("version", version).Msg("regassist listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-done:
	}
	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
