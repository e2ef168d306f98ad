// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	keyLogLevel  = "log.level"
	keyLogColor  = "log.color"
	keyTolerance = "tolerance"
)

// Defaults for keys absent from every source.
const (
	defaultLogLevel  = "info"
	defaultTolerance = 1e-10
)

// app carries what every subcommand needs once configuration is resolved.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	var configPath string

	root := &cobra.Command{
		Use:          "lvnum",
		Short:        "Numerical methods from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(configPath); err != nil {
				return err
			}
			a.log = newLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel), a.v.GetBool(keyLogColor))
			if used := a.v.ConfigFileUsed(); used != "" {
				a.log.Debug("config loaded", "file", used)
			}

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default lvnum.yaml)")
	pf.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	pf.Float64("tol", defaultTolerance, "default tolerance for iterative methods")
	_ = a.v.BindPFlag(keyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(keyTolerance, pf.Lookup("tol"))

	root.AddCommand(
		a.zerosCmd(),
		a.fitCmd(),
		a.integrateCmd(),
		a.solveCmd(),
		a.statsCmd(),
	)

	return root
}

// loadConfig layers defaults, the config file and LVNUM_* variables.
// A missing default config file is not an error; a missing explicit one is.
func (a *app) loadConfig(path string) error {
	v := a.v
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyLogColor, true)
	v.SetDefault(keyTolerance, defaultTolerance)

	v.SetEnvPrefix("LVNUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lvnum")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "lvnum"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// newLogger returns a tint-backed slog logger at the named level.
func newLogger(w io.Writer, level string, color bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	}))
}

// tolerance returns the resolved default tolerance (flag, env, file).
func (a *app) tolerance() float64 { return a.v.GetFloat64(keyTolerance) }
