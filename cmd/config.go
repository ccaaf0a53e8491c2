package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/config"
	"github.com/prism-cli/prism/constant"
	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/icon"
	"github.com/prism-cli/prism/style"
	"github.com/prism-cli/prism/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

// configFile is the path viper reads and writes the config from.
func configFile() string {
	return filepath.Join(where.Config(), constant.Prism+".toml")
}

// sortedFields returns the registered fields ordered by key.
func sortedFields() []config.Field {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)

	return lo.Map(keys, func(k string, _ int) config.Field {
		return config.Default[k]
	})
}

// configKey picks the key from the first positional argument or the --key flag.
func configKey(cmd *cobra.Command, args []string) (string, error) {
	k := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		k = args[0]
	}

	if k == "" {
		return "", errors.New("key is required as an argument or --key flag")
	}

	if _, ok := config.Default[k]; !ok {
		return "", errUnknownKey(k)
	}

	return k, nil
}

// applySetting parses values for k and stores the result in viper without writing the config file.
func applySetting(k string, values []string) (any, error) {
	if _, ok := config.Default[k]; !ok {
		return nil, errUnknownKey(k)
	}

	v, err := config.Parse(k, values)
	if err != nil {
		return nil, err
	}

	viper.Set(k, v)
	return v, nil
}

// saveConfig writes viper's state to the config file, creating it when missing.
func saveConfig() error {
	err := viper.WriteConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return viper.SafeWriteConfig()
	}
	return err
}

func done(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func withKeyFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("key", "k", "", usage)
	lo.Must0(cmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := sortedFields()

		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, k := range keys {
				field, ok := config.Default[k]
				if !ok {
					handleErr(errUnknownKey(k))
				}
				fields = append(fields, field)
			}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		pretty := lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		})
		fmt.Println(strings.Join(pretty, "\n\n"))
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Validate a value and write it to the config file",
	Example:           "  prism config set legacy.prefix '&'\n  prism config set placeholders.static server=Hub motd=Welcome",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := configKey(cmd, args)
		handleErr(err)

		values := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			values = args[1:]
		}

		v, err := applySetting(k, values)
		handleErr(err)
		handleErr(saveConfig())

		done("set %s to %s", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the effective value of a configuration key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		k, err := configKey(cmd, args)
		handleErr(err)
		fmt.Println(viper.Get(k))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the effective configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(filesystem.API().Remove(path))
		}

		handleErr(viper.SafeWriteConfig())
		done("wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		done("deleted config")
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore configuration values to their defaults",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for _, field := range config.Default {
				viper.Set(field.Key, field.Value)
			}
			handleErr(saveConfig())
			done("reset all config values")
			return
		}

		k, err := configKey(cmd, args)
		handleErr(err)

		field := config.Default[k]
		viper.Set(k, field.Value)
		handleErr(saveConfig())

		done("reset %s to %s", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configSetCmd, configGetCmd, configWriteCmd, configDeleteCmd, configResetCmd)

	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Keys to describe, all when omitted")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
	configInfoCmd.Flags().BoolP("json", "j", false, "Print fields as JSON")
	configInfoCmd.SetOut(os.Stdout)

	withKeyFlag(configSetCmd, "Key to update")
	configSetCmd.Flags().StringSliceP("value", "v", nil, "Value to set, repeat or separate with commas for lists and maps")

	withKeyFlag(configGetCmd, "Key to print")

	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	withKeyFlag(configResetCmd, "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
}
