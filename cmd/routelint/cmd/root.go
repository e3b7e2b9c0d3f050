package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tyriatrails/routelint/internal/cmd/globals"
	"github.com/tyriatrails/routelint/internal/cmd/output"
	"github.com/tyriatrails/routelint/pkg/dedupe"
	"github.com/tyriatrails/routelint/pkg/logging"
	"github.com/tyriatrails/routelint/pkg/mapref"
	"github.com/tyriatrails/routelint/pkg/resolve"
)

// defaultReferencePath is used when neither the flag nor the config file
// names a reference list.
const defaultReferencePath = "maps.yaml"

var (
	configFile    string
	globalFlags   *globals.Flags
	precisionFlag int

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
	// BuiltBy is the build system identifier.
	BuiltBy = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "routelint",
	Short: "Route record validation and repair",
	Long: `Routelint validates a directory tree of route records (named 3D waypoint
paths for game maps) against a canonical reference list of map names and ids.

It resolves misspelled, pluralized and apostrophe-mangled folder names to
canonical map entries, picks concrete map identifiers for ambiguous names,
detects routes with identical geometry, and can repair records that lack a
StartGameMapId.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date, builtBy string) {
	Version = version
	Commit = commit
	Date = date
	BuiltBy = builtBy

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.routelint.yaml)")
	rootCmd.PersistentFlags().IntVar(&precisionFlag, "precision", dedupe.DefaultPrecision,
		"Decimal precision for duplicate fingerprinting")
	globalFlags = globals.AddFlags(rootCmd)

	// Bind flags to viper
	for _, flag := range []string{"verbose", "quiet", "strict", "reference"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in the working directory first, then home
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".routelint")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("routelint")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}
	if _, err := output.ParseFormat(globalFlags.Output); err != nil {
		return err
	}
	return nil
}

// loadEnvFiles loads .env files from the working directory if present.
func loadEnvFiles() {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if (globalFlags != nil && globalFlags.Verbose) || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if (globalFlags != nil && globalFlags.Quiet) || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}

	cfg := logging.DefaultConfig()
	cfg.Level = level.String()
	if globalFlags != nil && globalFlags.NoColor {
		cfg.NoColor = true
	}
	logging.Configure(cfg)
}

// referencePath resolves the reference list location from flag, env and
// config, falling back to maps.yaml beside the working directory.
func referencePath() string {
	if globalFlags != nil && globalFlags.Reference != "" {
		return globalFlags.Reference
	}
	if path := viper.GetString("reference"); path != "" {
		return path
	}
	return defaultReferencePath
}

// loadIndex loads the canonical reference list. Failure here aborts the
// run: nothing can be validated without the reference.
func loadIndex() (*mapref.Index, error) {
	path := referencePath()
	idx, err := mapref.LoadIndex(path)
	if err != nil {
		return nil, err
	}
	logging.Debug().Str("reference", path).Int("entries", idx.Len()).Msg("Loaded reference list")
	return idx, nil
}

// loadOverrides builds the mode-default table, merging config-provided
// pattern->id pairs over the built-ins.
func loadOverrides() (*resolve.Overrides, error) {
	extra := make(map[string]int)
	for pattern, raw := range viper.GetStringMapString("mode_defaults") {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("mode_defaults[%q]: id %q is not numeric", pattern, raw)
		}
		extra[pattern] = id
	}
	return resolve.NewOverrides(extra)
}

// routesRoot picks the routes directory from the command arguments or
// configuration.
func routesRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if dir := viper.GetString("routes_dir"); dir != "" {
		return dir
	}
	return "."
}
