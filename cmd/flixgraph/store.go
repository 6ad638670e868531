package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/flixgraph/flixgraph"
	"github.com/flixgraph/flixgraph/store/cypher"
)

var (
	ErrNoConnectionURI = errors.New("no connection URI specified (use --uri, NEO4J_URI, or .flixgraph.yaml)")
	ErrNoTitle         = errors.New("no title specified")
	ErrNoSearchTerm    = errors.New("no search term specified")
)

// connectionFlags are shared by every command.
func connectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "uri",
			Usage:   "Neo4j connection URI",
			Sources: cli.EnvVars("NEO4J_URI"),
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "Neo4j username",
			Sources: cli.EnvVars("NEO4J_USERNAME"),
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Neo4j password",
			Sources: cli.EnvVars("NEO4J_PASSWORD"),
		},
		&cli.StringFlag{
			Name:    "database",
			Usage:   "Neo4j database name",
			Sources: cli.EnvVars("NEO4J_DATABASE"),
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to config file (default: nearest .flixgraph.yaml)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "per-request deadline for store calls",
			Value: 30 * time.Second,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "verbose output",
		},
	}
}

// loadCLIConfig resolves the connection config: explicit flags win, then an
// explicit --config file, then the nearest .flixgraph.yaml plus NEO4J_* env.
func loadCLIConfig(cmd *cli.Command) (*flixgraph.Config, error) {
	if cmd.String("uri") != "" {
		cfg := &flixgraph.Config{
			Connection: flixgraph.ConnectionConfig{
				URI:      cmd.String("uri"),
				Username: cmd.String("username"),
				Password: cmd.String("password"),
				Database: cmd.String("database"),
			},
		}

		return cfg, cfg.Validate()
	}

	if path := cmd.String("config"); path != "" {
		cfg, err := flixgraph.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}

		return cfg, cfg.Validate()
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := flixgraph.LoadConfig(wd)
	if err != nil {
		if errors.Is(err, flixgraph.ErrInvalidInput) || errors.Is(err, flixgraph.ErrConfigNotFound) {
			return nil, ErrNoConnectionURI
		}

		return nil, err
	}

	return cfg, nil
}

// openStore builds the logger, config, and Neo4j store for a command.
func openStore(ctx context.Context, cmd *cli.Command) (*cypher.Store, *flixgraph.Config, *zap.Logger, error) {
	logger, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := cypher.New(ctx, cfg.Connection, cypher.WithLogger(logger))
	if err != nil {
		return nil, nil, nil, err
	}

	return store, cfg, logger, nil
}

// newLogger logs to stderr so stdout stays parseable.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
