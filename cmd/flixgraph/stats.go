package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/flixgraph/flixgraph"
	"github.com/flixgraph/flixgraph/analytics"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show catalog statistics",
		Flags: append(connectionFlags(),
			&cli.IntFlag{
				Name:  "top",
				Usage: "how many top actors/directors to show",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output results as JSON",
			},
		),
		Action: runStats,
	}
}

// statsReport bundles everything the stats command prints.
type statsReport struct {
	Overview     *analytics.Overview     `json:"overview"`
	ContentTypes []flixgraph.TypeCount   `json:"content_types"`
	Genres       []flixgraph.NameCount   `json:"genres"`
	TopActors    []flixgraph.NameCount   `json:"top_actors"`
	TopDirectors []flixgraph.NameCount   `json:"top_directors"`
}

func runStats(ctx context.Context, cmd *cli.Command) error {
	store, _, logger, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	defer func() {
		_ = store.Close(ctx)
		_ = logger.Sync()
	}()

	service := analytics.New(store, analytics.WithLogger(logger))

	reqCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	top := int(cmd.Int("top"))

	report := &statsReport{}

	report.Overview, err = service.Overview(reqCtx)
	if err != nil {
		return err
	}

	report.ContentTypes, err = service.ContentTypeSplit(reqCtx)
	if err != nil {
		return err
	}

	report.Genres, err = service.GenreDistribution(reqCtx)
	if err != nil {
		return err
	}

	report.TopActors, err = service.TopActors(reqCtx, top)
	if err != nil {
		return err
	}

	report.TopDirectors, err = service.TopDirectors(reqCtx, top)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return writeJSON(os.Stdout, report)
	}

	renderStats(os.Stdout, report)

	return nil
}

func renderStats(out *os.File, report *statsReport) {
	styles := NewStyles(out)

	fmt.Fprintln(out, styles.Header.Render("Nodes"))

	for _, c := range report.Overview.Nodes {
		fmt.Fprintf(out, "  %s %d\n", styles.Title.Render(fmt.Sprintf("%-12s", c.Label)), c.Count)
	}

	fmt.Fprintln(out, styles.Header.Render("Relationships"))

	for _, c := range report.Overview.Relationships {
		fmt.Fprintf(out, "  %s %d\n", styles.Title.Render(fmt.Sprintf("%-12s", c.Type)), c.Count)
	}

	fmt.Fprintln(out, styles.Header.Render("Content types"))

	for _, c := range report.ContentTypes {
		fmt.Fprintf(out, "  %s %d\n", styles.Title.Render(fmt.Sprintf("%-12s", string(c.ContentType))), c.Titles)
	}

	fmt.Fprintln(out, styles.Header.Render("Genres"))

	for _, c := range report.Genres {
		fmt.Fprintf(out, "  %s %d\n", styles.Title.Render(fmt.Sprintf("%-24s", c.Name)), c.Titles)
	}

	fmt.Fprintln(out, styles.Header.Render("Top actors"))

	for _, c := range report.TopActors {
		fmt.Fprintf(out, "  %s %d\n", styles.Title.Render(fmt.Sprintf("%-24s", c.Name)), c.Titles)
	}

	fmt.Fprintln(out, styles.Header.Render("Top directors"))

	for _, c := range report.TopDirectors {
		fmt.Fprintf(out, "  %s %d\n", styles.Title.Render(fmt.Sprintf("%-24s", c.Name)), c.Titles)
	}
}
