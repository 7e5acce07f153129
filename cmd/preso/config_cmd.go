package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/quellen/preso/internal/config"
	"github.com/quellen/preso/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage preso configuration.

Config file: ~/.config/preso/config.toml`,
		Example: `  preso config init   # Create default config
  preso config show   # Show effective config
  preso config path   # Print config file location`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  preso config init      # Create config at ~/.config/preso/config.toml
  preso config init -f   # Overwrite existing config
  preso config init -s   # Print default config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultFileContent()

			if stdout {
				out := output.FromContext(cmd.Context())
				out.Print(content)
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("locate config: %w", err)
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use -f to overwrite)", path)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}

			out := output.FromContext(cmd.Context())
			out.Println(path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			out := output.FromContext(cmd.Context())
			out.Println(path)
			return nil
		},
	}
}
