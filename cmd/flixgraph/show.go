package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a title's attributes and relations",
		ArgsUsage: "<title>",
		Flags: append(connectionFlags(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output results as JSON",
			},
		),
		Action: runShow,
	}
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	title := cmd.Args().First()
	if strings.TrimSpace(title) == "" {
		return ErrNoTitle
	}

	store, _, logger, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	defer func() {
		_ = store.Close(ctx)
		_ = logger.Sync()
	}()

	reqCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	details, err := store.TitleDetails(reqCtx, title)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return writeJSON(os.Stdout, details)
	}

	out := os.Stdout
	styles := NewStyles(out)

	fmt.Fprintln(out, styles.Header.Render(details.Name))
	fmt.Fprintf(out, "  %s %s, %d, %s, %s\n",
		styles.Dim.Render("Info:     "), details.ContentType, details.ReleaseYear, details.Rating, details.Duration)

	if details.Description != "" {
		fmt.Fprintf(out, "  %s %s\n", styles.Dim.Render("About:    "), details.Description)
	}

	fmt.Fprintf(out, "  %s %s\n", styles.Dim.Render("Genres:   "), strings.Join(details.Genres, ", "))
	fmt.Fprintf(out, "  %s %s\n", styles.Dim.Render("Cast:     "), strings.Join(details.Actors, ", "))
	fmt.Fprintf(out, "  %s %s\n", styles.Dim.Render("Directors:"), strings.Join(details.Directors, ", "))
	fmt.Fprintf(out, "  %s %s\n", styles.Dim.Render("Countries:"), strings.Join(details.Countries, ", "))

	return nil
}
