package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sevigo/code-sage/internal/core"
	"github.com/sevigo/code-sage/internal/wire"
)

var (
	outputFormat string
	parallel     int
)

var reviewCmd = &cobra.Command{
	Use:   "review [file|-]...",
	Short: "Review one or more source files",
	Long: `Review one or more source files with CodeSage.

Each file is sent to the model as-is and the reply is parsed into a summary
and a list of suggestions. Use "-" to read code from stdin.

Examples:
  codesage-cli review main.go
  codesage-cli review --format json a.py b.py
  cat snippet.js | codesage-cli review -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().StringVarP(&outputFormat, "format", "f", formatText, "Output format: text, json or yaml")
	reviewCmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "Maximum number of concurrent reviews")
	rootCmd.AddCommand(reviewCmd)
}

type reviewInput struct {
	name string
	code string
}

func runReview(cmd *cobra.Command, args []string) error {
	if !validFormat(outputFormat) {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
	if parallel < 1 {
		return fmt.Errorf("--parallel must be at least 1, got %d", parallel)
	}

	inputs, err := readInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: Check GEMINI_API_KEY or LLM_PROVIDER in your environment or .env file", err)
	}
	defer cleanup()

	reviews, err := reviewAll(ctx, appInstance.Reviewer, inputs, parallel)
	if err != nil {
		return err
	}

	return writeReviews(cmd.OutOrStdout(), outputFormat, reviews)
}

func reviewAll(ctx context.Context, reviewer core.Reviewer, inputs []reviewInput, limit int) ([]fileReview, error) {
	reviews := make([]fileReview, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, in := range inputs {
		g.Go(func() error {
			res, err := reviewer.Review(gctx, in.code)
			if err != nil {
				return fmt.Errorf("review of %s failed: %w", in.name, err)
			}
			reviews[i] = fileReview{File: in.name, ReviewResult: *res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func readInputs(args []string, stdin io.Reader) ([]reviewInput, error) {
	inputs := make([]reviewInput, 0, len(args))
	stdinUsed := false

	for _, arg := range args {
		var (
			data []byte
			err  error
		)
		if arg == "-" {
			if stdinUsed {
				return nil, fmt.Errorf("stdin can only be read once")
			}
			stdinUsed = true
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%s is empty: code is required", arg)
		}
		inputs = append(inputs, reviewInput{name: arg, code: string(data)})
	}
	return inputs, nil
}
