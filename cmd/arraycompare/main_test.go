package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/arraycompare/comparator"
	"github.com/poiesic/arraycompare/core"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"arraycompare"}, args...))
	return out.String(), err
}

func TestParseProbe(t *testing.T) {
	tests := []struct {
		name         string
		arg          string
		wantStrategy string
		wantSample   core.Sample
		wantErr      bool
	}{
		{
			name:         "data and keywords",
			arg:          "is_not_equal:a,b,c:d",
			wantStrategy: "is_not_equal",
			wantSample:   core.Sample{Data: []string{"a", "b", "c"}, Keywords: []string{"d"}},
		},
		{
			name:         "with exceptions",
			arg:          "contains_any_with_substring_search:x y,z:y:ign,skip",
			wantStrategy: "contains_any_with_substring_search",
			wantSample: core.Sample{
				Data:       []string{"x y", "z"},
				Keywords:   []string{"y"},
				Exceptions: []string{"ign", "skip"},
			},
		},
		{
			name:         "empty lists",
			arg:          "is_not_equal::",
			wantStrategy: "is_not_equal",
			wantSample:   core.Sample{},
		},
		{name: "too few parts", arg: "is_not_equal:a", wantErr: true},
		{name: "empty strategy", arg: ":a:b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, sample, err := parseProbe(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStrategy, strategy)
			tt.wantSample.Tag = tt.arg
			assert.Equal(t, tt.wantSample, sample)
		})
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("all probes succeed", func(t *testing.T) {
		out, err := runApp(t, "check", "is_not_equal:a,b,c:d", "contains_all:a,b:b")
		require.NoError(t, err)
		assert.Equal(t, "success\n", out)
	})

	t.Run("failing probe is reported", func(t *testing.T) {
		out, err := runApp(t, "check", "is_not_equal:a,b,c:d", "is_not_equal:a,b,c:a")
		require.ErrorIs(t, err, errCheckFailed)
		assert.Contains(t, out, "probe 1 failed")
		assert.Contains(t, out, "is_not_equal")
		id := core.Sample{
			Data:     []string{"a", "b", "c"},
			Keywords: []string{"a"},
			Tag:      "is_not_equal:a,b,c:a",
		}.Fingerprint()
		assert.Contains(t, out, fmt.Sprintf("id=%016x", uint64(id)))
	})

	t.Run("both lists empty fails", func(t *testing.T) {
		_, err := runApp(t, "check", "is_not_equal::")
		assert.ErrorIs(t, err, errCheckFailed)
	})

	t.Run("badger result cache", func(t *testing.T) {
		out, err := runApp(t, "check", "--result-cache", "badger", "contains_any:a,b:b")
		require.NoError(t, err)
		assert.Equal(t, "success\n", out)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := runApp(t, "check", "no_such_strategy:a:b")
		assert.ErrorIs(t, err, comparator.ErrUnknownProbeType)
	})

	t.Run("malformed probe", func(t *testing.T) {
		_, err := runApp(t, "check", "is_not_equal")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid probe")
	})

	t.Run("no probes", func(t *testing.T) {
		_, err := runApp(t, "check")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one probe")
	})
}

func TestStrategiesCommand(t *testing.T) {
	out, err := runApp(t, "strategies")
	require.NoError(t, err)
	assert.Contains(t, out, "Comparator strategies:")
	assert.Contains(t, out, "  is_not_equal\n")
	assert.Contains(t, out, "Caching strategies:")
	assert.Contains(t, out, "  badger\n")
	assert.Contains(t, out, "  single_value\n")
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		_, err := runApp(t, "--log-level", "invalid", "strategies")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		_, err := runApp(t, "-l", "debug", "strategies")
		require.NoError(t, err)
	})
}
