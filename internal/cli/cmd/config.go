package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sidepanel/internal/cli/styles"
	"github.com/bnema/sidepanel/internal/infrastructure/config"
)

var schemaOutputDir string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long:  `Show where the configuration lives, print the effective values, or export its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, the config file and SIDEPANEL_* environment overrides are merged.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml, for editors with schema support.
With --output, write config.schema.json into the given directory instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&schemaOutputDir, "output", "o", "", "directory to write config.schema.json to")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.Manager.GetConfigFile()
	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderPath(path, exists))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// runConfigValidate reports success; loading already rejected invalid files.
func runConfigValidate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderValid(app.Manager.GetConfigFile(), len(app.Config.Panels)))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if schemaOutputDir != "" {
		path, err := config.GenerateSchemaFile(schemaOutputDir)
		if err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten("schema", path))
		return nil
	}

	data, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
