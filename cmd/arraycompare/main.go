// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/arraycompare"
	"github.com/poiesic/arraycompare/cache"
	"github.com/poiesic/arraycompare/comparator"
	"github.com/poiesic/arraycompare/core"
	"github.com/urfave/cli/v2"
)

// errCheckFailed is returned by the check command when a probe fails.
var errCheckFailed = errors.New("comparison failed")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "arraycompare",
		Usage: "Compare string arrays against keyword matching strategies",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Run probes and report whether all of them succeed",
				ArgsUsage: "STRATEGY:DATA:KEYWORDS[:EXCEPTIONS]...",
				Description: "Each probe names a comparator strategy followed by comma-separated\n" +
					"data items, keywords and, optionally, exceptions. For example:\n\n" +
					"   arraycompare check is_not_equal:a,b,c:d contains_any:a,b:b",
				Action: checkCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "result-cache",
						Usage: "Caching strategy used to memoize the result",
						Value: cache.StrategySingleValue,
					},
				},
			},
			{
				Name:   "strategies",
				Usage:  "List registered comparator and caching strategies",
				Action: strategiesCommand,
			},
		},
	}
}

func checkCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("at least one probe is required")
	}

	toolkit, err := arraycompare.New(arraycompare.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to create toolkit: %w", err)
	}

	cmp, err := toolkit.NewComparator(comparator.WithResultCache(c.String("result-cache")))
	if err != nil {
		return fmt.Errorf("failed to create comparator: %w", err)
	}
	defer func() {
		if err := cmp.Close(); err != nil {
			slog.Error("error closing comparator", "err", err)
		}
	}()

	for i, arg := range c.Args().Slice() {
		strategy, sample, err := parseProbe(arg)
		if err != nil {
			return fmt.Errorf("probe %d: %w", i, err)
		}
		if err := cmp.AddSample(strategy, sample); err != nil {
			return fmt.Errorf("probe %d: %w", i, err)
		}
	}

	result := cmp.Result()
	fmt.Fprintln(c.App.Writer, result)
	if !result.Success {
		return errCheckFailed
	}
	return nil
}

func strategiesCommand(c *cli.Context) error {
	toolkit, err := arraycompare.New(arraycompare.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to create toolkit: %w", err)
	}

	fmt.Fprintln(c.App.Writer, "Comparator strategies:")
	for _, name := range toolkit.ComparatorStrategies().Names() {
		fmt.Fprintf(c.App.Writer, "  %s\n", name)
	}
	fmt.Fprintln(c.App.Writer, "Caching strategies:")
	for _, name := range toolkit.CachingStrategies().Names() {
		fmt.Fprintf(c.App.Writer, "  %s\n", name)
	}
	return nil
}

// parseProbe parses STRATEGY:DATA:KEYWORDS[:EXCEPTIONS]. The raw argument
// becomes the sample's tag.
func parseProbe(arg string) (string, core.Sample, error) {
	parts := strings.SplitN(arg, ":", 4)
	if len(parts) < 3 {
		return "", core.Sample{}, fmt.Errorf("invalid probe %q: want STRATEGY:DATA:KEYWORDS[:EXCEPTIONS]", arg)
	}
	if parts[0] == "" {
		return "", core.Sample{}, fmt.Errorf("invalid probe %q: strategy is empty", arg)
	}

	sample := core.Sample{
		Data:     splitList(parts[1]),
		Keywords: splitList(parts[2]),
		Tag:      arg,
	}
	if len(parts) == 4 {
		sample.Exceptions = splitList(parts[3])
	}
	return parts[0], sample, nil
}

// splitList splits a comma-separated list. An empty string is an empty list.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
