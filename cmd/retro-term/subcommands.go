package main

import (
	"errors"
	"fmt"
	"strings"

	"retro-term/internal/config"
	"retro-term/internal/logger"
	"retro-term/internal/terminal"
	"retro-term/internal/tui/render"

	"github.com/spf13/cobra"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var styled bool
	cmd := &cobra.Command{
		Use:   "run <command...>",
		Short: "Dispatch one command and print the resulting output",
		Long: `Feeds the arguments, joined by spaces, through the same normalization and
dispatch as the interactive prompt and prints the echo and response lines.

Example:
  retro-term run contact`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if closer := setupLogging(cfg.LogPath); closer != nil {
				defer closer.Close()
			}

			lines := dispatchOnce(strings.Join(args, " "))
			var out []string
			if styled {
				out = render.LinesToStrings(render.RenderTranscript(lines, 0, render.NewStyles(cfg.Theme)))
			} else {
				out = render.PlainTranscript(lines)
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&styled, "styled", false, "keep colors and hyperlinks in the output")
	return cmd
}

// dispatchOnce 在一个空缓冲区上执行一次提交，返回产生的行。
func dispatchOnce(input string) []terminal.Line {
	buf := terminal.NewBuffer()
	terminal.NewDispatcher(buf, terminal.Options{Log: logger.Named("run")}).Submit(input)
	return buf.Lines()
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the terminal understands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range terminal.DefaultTable().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the retro-term config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.cfgPath
			if path == "" {
				path = config.DefaultPath()
			}
			err := config.Save(path, config.Default(), force)
			if errors.Is(err, config.ErrExists) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.AddCommand(initCmd)
	return cmd
}
