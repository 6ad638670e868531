package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/flixgraph/flixgraph/recommend"
)

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:      "recommend",
		Usage:     "Recommend titles similar to a source title",
		ArgsUsage: "<title>",
		Flags: append(connectionFlags(),
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "maximum number of results (overrides config)",
			},
			&cli.StringFlag{
				Name:  "filter",
				Usage: "boolean expression over title, genre_score, actor_score, director_score, total_score",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output results as JSON",
			},
		),
		Action: runRecommend,
	}
}

func runRecommend(ctx context.Context, cmd *cli.Command) error {
	title := cmd.Args().First()
	if strings.TrimSpace(title) == "" {
		return ErrNoTitle
	}

	store, cfg, logger, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	defer func() {
		_ = store.Close(ctx)
		_ = logger.Sync()
	}()

	opts := []recommend.Option{recommend.WithLogger(logger)}

	if cfg.Recommend.Limit > 0 {
		opts = append(opts, recommend.WithLimit(cfg.Recommend.Limit))
	}

	if cfg.Recommend.CacheTTL > 0 {
		opts = append(opts, recommend.WithCache(cfg.Recommend.CacheTTL))
	}

	// Flag beats config.
	if n := int(cmd.Int("limit")); n > 0 {
		opts = append(opts, recommend.WithLimit(n))
	}

	engine := recommend.New(store, opts...)

	reqCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	recs, err := engine.Recommend(reqCtx, title)
	if err != nil {
		return err
	}

	recs, err = recommend.Filter(recs, cmd.String("filter"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return writeJSON(os.Stdout, recs)
	}

	renderRecommendations(os.Stdout, title, recs)

	return nil
}

func renderRecommendations(out *os.File, title string, recs []recommend.Recommendation) {
	styles := NewStyles(out)

	if len(recs) == 0 {
		fmt.Fprintln(out, styles.Warn.Render(fmt.Sprintf("no recommendations for %q", title)))

		return
	}

	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf("Titles similar to %q", title)))
	fmt.Fprintf(out, "%s\n", styles.Dim.Render(fmt.Sprintf("%-4s %-44s %8s %8s %10s %8s", "#", "TITLE", "GENRE", "ACTOR", "DIRECTOR", "TOTAL")))

	for i, rec := range recs {
		fmt.Fprintf(out, "%-4d %s %s\n",
			i+1,
			styles.Title.Render(fmt.Sprintf("%-44s", truncate(rec.Title, 44))),
			styles.Score.Render(fmt.Sprintf("%8.1f %8.1f %10.1f %8.1f",
				rec.GenreScore, rec.ActorScore, rec.DirectorScore, rec.TotalScore)))
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}
