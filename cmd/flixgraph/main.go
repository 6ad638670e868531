// Package main provides the flixgraph CLI tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/flixgraph/flixgraph"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "flixgraph",
		Version: version,
		Usage:   "Netflix title graph explorer and recommender",
		Commands: []*cli.Command{
			recommendCommand(),
			statsCommand(),
			searchCommand(),
			showCommand(),
		},
	}

	err := app.Run(context.Background(), os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

// userMessage maps each error kind to a distinct message; the engine and
// stores only promise distinguishable kinds, wording is owned here.
func userMessage(err error) string {
	switch {
	case errors.Is(err, flixgraph.ErrNotFound):
		return fmt.Sprintf("not in the catalog: %v", err)
	case errors.Is(err, flixgraph.ErrUnavailable):
		return fmt.Sprintf("cannot reach the graph store, check the connection settings: %v", err)
	case errors.Is(err, flixgraph.ErrTimeout):
		return fmt.Sprintf("the graph store did not answer in time: %v", err)
	case errors.Is(err, flixgraph.ErrInvalidInput):
		return fmt.Sprintf("invalid request: %v", err)
	default:
		return err.Error()
	}
}
