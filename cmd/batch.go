package main

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NIRMALT04/bunker-locate/internal/model"
	"github.com/NIRMALT04/bunker-locate/internal/resolver"
	"github.com/NIRMALT04/bunker-locate/internal/store"
)

var (
	batchFile        string
	batchConcurrency int
	batchNLP         bool
)

// batchLine is one JSONL output row: the query plus either its resolution
// or its failure.
type batchLine struct {
	Query       string                  `json:"query"`
	Result      *model.ResolvedLocation `json:"result,omitempty"`
	Error       string                  `json:"error,omitempty"`
	Suggestions []string                `json:"suggestions,omitempty"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Resolve queries from a file, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		queries, err := readQueries(batchFile)
		if err != nil {
			return err
		}
		if len(queries) == 0 {
			zap.L().Info("no queries to resolve", zap.String("file", batchFile))
			return nil
		}

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

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.Concurrency
		}

		lines := make([]batchLine, len(queries))
		var resolved atomic.Int64

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, q := range queries {
			g.Go(func() error {
				line := resolveOne(gctx, engine, st, q)
				if line.Error == "" {
					resolved.Add(1)
				}
				lines[i] = line
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, line := range lines {
			if err := enc.Encode(line); err != nil {
				return eris.Wrap(err, "encode result")
			}
		}

		zap.L().Info("batch finished",
			zap.Int("total", len(queries)),
			zap.Int64("resolved", resolved.Load()),
			zap.Int64("failed", int64(len(queries))-resolved.Load()),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "path to a file with one query per line")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max concurrent resolutions (0 = config default)")
	batchCmd.Flags().BoolVar(&batchNLP, "nlp", false, "run the location extractor for each query")
	batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}

// readQueries loads non-empty lines from path. Lines starting with # are
// comments.
func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open query file %s", path)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "read query file %s", path)
	}
	return queries, nil
}

func resolveOne(ctx context.Context, engine *resolver.Engine, st store.Store, query string) batchLine {
	opts := model.Options{
		RequireValidation: true,
		EnableNLP:         batchNLP,
	}

	start := time.Now()
	loc, err := engine.Resolve(ctx, query, opts)
	record(ctx, st, store.NewRecord(query, loc, err, time.Since(start)))

	if err != nil {
		return batchLine{
			Query:       query,
			Error:       err.Error(),
			Suggestions: resolver.SuggestionsFrom(err),
		}
	}
	return batchLine{Query: query, Result: loc}
}
