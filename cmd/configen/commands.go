// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/configen/generator"
	"github.com/albertocavalcante/configen/internal/logger"
	"github.com/albertocavalcante/configen/internal/pipeline"
	"github.com/albertocavalcante/configen/internal/watch"
)

// ErrStale marks a check that found generated files out of date.
var ErrStale = errors.New("generated files out of date")

// app carries the state shared by every command of one invocation.
type app struct {
	fs afero.Fs
	v  *viper.Viper
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New()}

	root := &cobra.Command{
		Use:   "configen",
		Short: "Generate typed configuration accessors for Objective-C and Swift",
		Long: `configen reads a mapping file that declares variable names and types,
and a values file (plist, YAML, JSON or TOML) that supplies the values.
It writes a class exposing one typed static accessor per variable.

Examples:
  configen generate --hints Config/hints.map --values Config/dev.plist --template objc
  configen generate --hints hints.yaml --values prod.toml --class ProdConfig --import UIKit
  configen check --hints hints.map --values dev.plist --output-dir Generated
  configen list`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: configen.{yaml,toml,json} in the working directory)")
	pf.BoolP("verbose", "v", false, "log debug messages")
	pf.Bool("json-logs", false, "log JSON lines instead of text")

	root.AddCommand(
		a.generateCmd(),
		a.checkCmd(),
		a.watchCmd(),
		a.listCmd(),
		a.versionCmd(),
	)
	return root
}

// setup binds the running command's flags, reads the config file and
// initializes logging. Precedence: flag, CONFIGEN_* env, file, default.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v := a.v
	v.SetFs(a.fs)

	flags := cmd.Flags()
	if err := v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	for key, name := range map[string]string{"imports": "import", "options": "option"} {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind --%s", name)
			}
		}
	}

	v.SetEnvPrefix("CONFIGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("template", "swift")
	v.SetDefault("class", "AppConfig")
	v.SetDefault("output-dir", ".")

	if err := a.readConfig(); err != nil {
		return err
	}

	logger.Initialize(logger.Options{
		Verbose: v.GetBool("verbose"),
		JSON:    v.GetBool("json-logs"),
		Output:  cmd.ErrOrStderr(),
	})
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debugw("using config file", logger.FieldPath, used)
	}
	return nil
}

func (a *app) readConfig() error {
	v := a.v
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config file %s", path)
		}
		return nil
	}

	v.SetConfigName("configen")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config file")
		}
	}
	return nil
}

func (a *app) options() (pipeline.Options, error) {
	var opts pipeline.Options
	if err := a.v.Unmarshal(&opts); err != nil {
		return opts, errors.Wrap(err, "decode settings")
	}
	return opts, nil
}

func addInputFlags(f *pflag.FlagSet) {
	f.String("hints", "", "mapping file declaring variable names and types")
	f.String("values", "", "values file (.plist, .yaml, .yml, .json or .toml)")
	f.StringP("output-dir", "o", ".", "directory receiving the generated files")
	f.StringP("class", "c", "AppConfig", "name of the generated class and its files")
	f.StringP("template", "t", "swift", "output template (see configen list)")
	f.StringSlice("import", nil, "additional module imported by the implementation file (repeatable)")
	f.StringToString("option", nil, "template option as key=value, e.g. keyword=struct or superclass=BaseConfig")
}

func (a *app) generateCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the configuration class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}

			if !dryRun {
				_, err := pipeline.Generate(cmd.Context(), a.fs, opts)
				return err
			}

			res, err := pipeline.Build(cmd.Context(), a.fs, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range res.Output.Names() {
				fmt.Fprintf(out, "==> %s <==\n%s", name, res.Output.Files[name])
			}
			return nil
		},
	}
	addInputFlags(cmd.Flags())
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print to stdout without writing files")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail if the generated files are missing or out of date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			drifts, err := pipeline.Check(cmd.Context(), a.fs, opts)
			if err != nil {
				return err
			}
			if len(drifts) == 0 {
				return nil
			}

			out := cmd.OutOrStdout()
			for _, d := range drifts {
				if d.Missing {
					fmt.Fprintf(out, "%s: missing\n", d.Path)
					continue
				}
				fmt.Fprintf(out, "%s: out of date (-disk +generated)\n%s\n", d.Path, d.Diff)
			}
			err = errors.Newf("%d generated file(s) out of date", len(drifts))
			err = errors.WithHint(err, "run configen generate with the same settings")
			return errors.Mark(err, ErrStale)
		},
	}
	addInputFlags(cmd.Flags())
	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the mapping or values file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			w, err := watch.New(debounce, opts.HintsPath, opts.ValuesPath)
			if err != nil {
				return err
			}
			logger.Infow("watching inputs", "hints", opts.HintsPath, "values", opts.ValuesPath)
			return w.Run(cmd.Context(), func(ctx context.Context) error {
				_, err := pipeline.Generate(ctx, a.fs, opts)
				return err
			})
		},
	}
	addInputFlags(cmd.Flags())
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before regenerating")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := pterm.TableData{{"NAME", "FILES", "VERSION", "DESCRIPTION"}}
			for _, g := range generator.All() {
				meta := g.Metadata()
				data = append(data, []string{
					meta.Name,
					strings.Join(meta.FileExtensions, " "),
					meta.Version,
					meta.Description,
				})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Wrap(err, "render table")
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "configen %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
