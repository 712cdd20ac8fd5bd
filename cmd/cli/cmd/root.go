package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	subspedia "github.com/angelospk/subspedia-go"
)

// Define configuration keys
const (
	CfgKeyBaseURL   = "api.baseurl"
	CfgKeyUserAgent = "api.useragent"
	CfgKeyTimeout   = "api.timeout" // Go duration string like "30s"
	CfgKeyLogLevel  = "log.level"
	CfgKeyJSON      = "output.json"
)

// SubspediaClient defines the client methods the commands use.
type SubspediaClient interface {
	SeriesInTranslation(ctx context.Context) ([]subspedia.TranslatingSeries, error)
	SeriesList(ctx context.Context) ([]subspedia.Series, error)
	LatestSubtitles(ctx context.Context) ([]subspedia.Subtitle, error)
	SeriesSubtitles(ctx context.Context, seriesID uint) ([]subspedia.Subtitle, error)
	SearchByName(ctx context.Context, name string) ([]subspedia.Series, error)
	SearchByID(ctx context.Context, id uint) (subspedia.Series, error)
}

// NewSubspediaClientFunc allows overriding the client creation for testing.
var NewSubspediaClientFunc = func(cfg subspedia.Config) (SubspediaClient, error) {
	return subspedia.NewClient(cfg)
}

var (
	// Used for flags.
	cfgFile string

	// Logger is shared by all commands. Its level comes from log.level.
	Logger = logrus.New()

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "subspedia",
		Short: "Browse Subspedia series and Italian subtitles from the command line.",
		Long: `subspedia queries the Subspedia API: the series catalog, the series
currently in translation, the latest subtitles and the subtitles of a series.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogger(cmd)
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.subspedia/config.yaml or ./config.yaml)")
	flags.String("base-url", "", "override the API base URL")
	flags.Duration("timeout", 0, "HTTP timeout for each request (0 disables it)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Bool("json", false, "print results as JSON")

	_ = viper.BindPFlag(CfgKeyBaseURL, flags.Lookup("base-url"))
	_ = viper.BindPFlag(CfgKeyTimeout, flags.Lookup("timeout"))
	_ = viper.BindPFlag(CfgKeyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(CfgKeyJSON, flags.Lookup("json"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".subspedia"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SUBSPEDIA") // e.g., SUBSPEDIA_API_BASEURL
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error reading config file (%s): %v\n", viper.ConfigFileUsed(), err)
		}
	}
}

// configureLogger points the shared logger at stderr and applies log.level.
func configureLogger(cmd *cobra.Command) error {
	Logger.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(viper.GetString(CfgKeyLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", viper.GetString(CfgKeyLogLevel), err)
	}
	Logger.SetLevel(level)
	return nil
}

// clientConfig builds the library configuration from viper settings.
func clientConfig() (subspedia.Config, error) {
	cfg := subspedia.Config{
		BaseURL:   viper.GetString(CfgKeyBaseURL),
		UserAgent: viper.GetString(CfgKeyUserAgent),
		Logger:    Logger,
	}

	if raw := viper.GetString(CfgKeyTimeout); raw != "" && raw != "0s" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", CfgKeyTimeout, raw, err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

// newClient creates the client for a command run.
func newClient() (SubspediaClient, error) {
	cfg, err := clientConfig()
	if err != nil {
		return nil, err
	}
	client, err := NewSubspediaClientFunc(cfg)
	if err != nil {
		Logger.WithError(err).Error("Failed to initialize Subspedia client")
		return nil, fmt.Errorf("failed to initialize Subspedia client: %w", err)
	}
	return client, nil
}
