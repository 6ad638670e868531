package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/flixgraph/flixgraph/analytics"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search titles by name",
		ArgsUsage: "<substring>",
		Flags: append(connectionFlags(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output results as JSON",
			},
		),
		Action: runSearch,
	}
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	substring := cmd.Args().First()
	if strings.TrimSpace(substring) == "" {
		return ErrNoSearchTerm
	}

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

	titles, err := service.SearchTitles(reqCtx, substring)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return writeJSON(os.Stdout, titles)
	}

	styles := NewStyles(os.Stdout)

	if len(titles) == 0 {
		fmt.Println(styles.Warn.Render(fmt.Sprintf("no titles matching %q", substring)))

		return nil
	}

	for _, title := range titles {
		fmt.Println(styles.Title.Render(title))
	}

	return nil
}
