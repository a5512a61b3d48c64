// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doc2md CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc2md/internal/config"
	"github.com/pdiddy/doc2md/internal/pipeline"
	"github.com/pdiddy/doc2md/internal/render"
	"github.com/pdiddy/doc2md/internal/vision"
)

// version is set at build time via ldflags.
var version = "dev"

// cfgErr holds the config-file read result so an explicitly requested file
// that cannot be read fails the run instead of being silently skipped.
var cfgErr error

var rootCmd = &cobra.Command{
	Use:   "doc2md <input file>",
	Short: "Extract text from an image or PDF as Markdown via a vision model",
	Long: `doc2md transcribes a single image or PDF document to Markdown by sending
each page to a vision-capable model behind an OpenAI-compatible
chat-completions endpoint (a local Ollama instance by default).

Images are sent as-is; PDFs are rasterized page by page at 144 DPI. Pages
are processed strictly in order and the run aborts on the first failure, so
the output is either the complete document or nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "TOML config file (default: ./doc2md.toml or ~/.config/doc2md/doc2md.toml)")
	rootCmd.Flags().StringP("model", "m", "", "model identifier for text extraction (default: qwen2.5vl)")
	rootCmd.Flags().StringP("endpoint", "e", "", "OpenAI-compatible chat-completions URL")
	rootCmd.Flags().StringP("output", "o", "", "write the Markdown to this file instead of stdout")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout for model calls (default 5m)")
	rootCmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter (source, model, pages, timestamp)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		viper.SetConfigType("toml")
	} else {
		viper.SetConfigName("doc2md")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doc2md"))
		}
	}

	cfgErr = viper.ReadInConfig()
	if cfgErr == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	// A missing .env is fine; explicit config lives in doc2md.toml.
	_ = godotenv.Load()

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" && cfgErr != nil {
		return fmt.Errorf("reading config file %s: %w", cfgFile, cfgErr)
	}

	flagEndpoint, _ := cmd.Flags().GetString("endpoint")
	flagModel, _ := cmd.Flags().GetString("model")
	flagTimeout, _ := cmd.Flags().GetDuration("timeout")
	cfg := config.Resolve(flagEndpoint, flagModel, flagTimeout, viper.GetViper(), nil)

	log.Debug().Str("endpoint", cfg.Endpoint).Str("model", cfg.Model).Msg("configuration resolved")

	client := vision.NewClient(cfg, &http.Client{Timeout: cfg.Timeout}, log)

	result, err := pipeline.Process(cmd.Context(), client, render.New(), args[0], os.Stderr)
	if err != nil {
		return err
	}

	text := result.Markdown
	if fm, _ := cmd.Flags().GetBool("frontmatter"); fm {
		text, err = pipeline.WithFrontmatter(result, args[0], cfg.Model, time.Now())
		if err != nil {
			return err
		}
	}

	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing output file %s: %w", outPath, err)
		}
		log.Info().Str("path", outPath).Int("pages", result.Pages).Msg("markdown written")
		return nil
	}

	fmt.Println(text)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
