package main

import (
	"encoding/json"
	"errors"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NIRMALT04/bunker-locate/internal/model"
	"github.com/NIRMALT04/bunker-locate/internal/resolver"
	"github.com/NIRMALT04/bunker-locate/internal/store"
)

var (
	resolveNLP      bool
	resolveValidate bool
	resolveContext  string
)

// failureOutput is the JSON shape printed when resolution fails.
type failureOutput struct {
	Kind        resolver.FailureKind `json:"kind"`
	Message     string               `json:"message"`
	Suggestions []string             `json:"suggestions,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <text>",
	Short: "Resolve one place description to coordinates",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine, err := newEngine(cfg)
		if err != nil {
			return err
		}

		st, err := initStore(ctx, cfg)
		if err != nil {
			return err
		}
		if st != nil {
			defer st.Close()
		}

		text := strings.Join(args, " ")
		opts := model.Options{
			RequireValidation: resolveValidate,
			EnableNLP:         resolveNLP,
			QueryContext:      resolveContext,
		}

		start := time.Now()
		loc, err := engine.Resolve(ctx, text, opts)
		record(ctx, st, store.NewRecord(text, loc, err, time.Since(start)))

		if err != nil {
			var f *resolver.Failure
			if errors.As(err, &f) {
				out, mErr := json.MarshalIndent(failureOutput{
					Kind:        f.Kind,
					Message:     f.Message,
					Suggestions: f.Suggestions,
				}, "", "  ")
				if mErr != nil {
					return eris.Wrap(mErr, "marshal failure")
				}
				cmd.Println(string(out))
			}
			return err
		}

		zap.L().Info("resolved",
			zap.String("query", text),
			zap.String("source", string(loc.Source)),
			zap.Float64("confidence", loc.Confidence),
			zap.Duration("took", time.Since(start)),
		)

		out, err := json.MarshalIndent(loc, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		cmd.Println(string(out))
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveNLP, "nlp", false, "run the location extractor and blend its confidence into the score")
	resolveCmd.Flags().BoolVar(&resolveValidate, "validate", true, "check the result against the service region")
	resolveCmd.Flags().StringVar(&resolveContext, "context", "", "locality hint appended to provider queries")
	rootCmd.AddCommand(resolveCmd)
}
