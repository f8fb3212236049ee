/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/internal/iologger"
	app "github.com/gnames/conslaw/pkg"
	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dotEnvFile is read from the working directory when present.
const dotEnvFile = ".env"

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "conslaw",
		Short:   "Conservation status of species protected by Vietnamese laws",
		Long: `conslaw collects species from Vietnamese conservation law data files
and enriches them with conservation status from remote sources.

Commands:
  - iucn: query the IUCN Red List API v4
  - vnredlist: query the Vietnam Red List website
  - merge: fill Vietnamese common names of a status file
  - images: convert a species image sheet (.csv or .xlsx) to JSON
  - export: save law and status data into a SQLite database

Law data files are listed in ~/.config/conslaw/laws.yaml, settings are in
~/.config/conslaw/config.yaml.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (CONSLAW_*)
  3. .env file in the working directory
  4. Config file (config.yaml)
  5. Built-in defaults

Environment Variables:
    CONSLAW_IUCN_TOKEN       IUCN Red List API token (also IUCN_API_TOKEN)
    CONSLAW_IUCN_DELAY       pause between IUCN requests (e.g. 500ms)
    CONSLAW_VNREDLIST_DELAY  pause between website requests (e.g. 1.5s)
    CONSLAW_DATA_DIR         directory with law data files
    CONSLAW_LOG_LEVEL        log level (debug/info/warn/error)

  See 'go doc github.com/gnames/conslaw/pkg/config' for complete list.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "conslaw version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for conslaw")

	rootCmd.AddCommand(
		getIUCNCmd(),
		getVNRedListCmd(),
		getMergeCmd(),
		getImagesCmd(),
		getExportCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureLawsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping records written
	// so far.
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	_ = iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	readDotEnv(v)

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("CONSLAW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// IUCN configuration
	v.BindEnv("iucn.token", "CONSLAW_IUCN_TOKEN", "IUCN_API_TOKEN")
	v.BindEnv("iucn.base_url", "CONSLAW_IUCN_BASE_URL")
	v.BindEnv("iucn.delay", "CONSLAW_IUCN_DELAY")
	v.BindEnv("iucn.timeout", "CONSLAW_IUCN_TIMEOUT")

	// Vietnam Red List configuration
	v.BindEnv("vnredlist.base_url", "CONSLAW_VNREDLIST_BASE_URL")
	v.BindEnv("vnredlist.delay", "CONSLAW_VNREDLIST_DELAY")
	v.BindEnv("vnredlist.timeout", "CONSLAW_VNREDLIST_TIMEOUT")
	v.BindEnv("vnredlist.user_agent", "CONSLAW_VNREDLIST_USER_AGENT")

	// Data configuration
	v.BindEnv("data.dir", "CONSLAW_DATA_DIR")
	v.BindEnv("data.iucn_file", "CONSLAW_DATA_IUCN_FILE")
	v.BindEnv("data.vnredlist_file", "CONSLAW_DATA_VNREDLIST_FILE")

	// Log configuration
	v.BindEnv("log.level", "CONSLAW_LOG_LEVEL")
	v.BindEnv("log.format", "CONSLAW_LOG_FORMAT")
	v.BindEnv("log.destination", "CONSLAW_LOG_DESTINATION")

	v.AutomaticEnv()
}

// readDotEnv takes the IUCN token from .env unless the token is already
// set in the environment. Values of .env override config.yaml.
func readDotEnv(v *viper.Viper) {
	if !iofs.FileExists(dotEnvFile) {
		return
	}

	for _, key := range tokenEnvVars {
		if _, ok := os.LookupEnv(key); ok {
			return
		}
	}

	env := viper.New()
	env.SetConfigFile(dotEnvFile)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		slog.Warn("Cannot read .env file", "error", err)
		return
	}

	for _, key := range tokenEnvVars {
		if tok := env.GetString(key); tok != "" {
			v.Set("iucn.token", tok)
			slog.Info("IUCN token is taken from .env file", "variable", key)
			return
		}
	}
}

var tokenEnvVars = []string{"CONSLAW_IUCN_TOKEN", "IUCN_API_TOKEN"}
