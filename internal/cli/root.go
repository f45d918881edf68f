package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mfukuda/tidewatch/internal/config"
	"github.com/mfukuda/tidewatch/internal/logging"
	"github.com/mfukuda/tidewatch/internal/shioapi"
	"github.com/mfukuda/tidewatch/internal/ui"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tidewatch",
	Short: "Tide and weather viewer for fishing ports",
	Long: `Pick a fishing port and a date, fetch the tide and weather forecast
for that pair, and view the hourly tide table, tide curve chart, high/low
tide list and weather summary. Pass --station (and optionally --date) to
open a query directly, the same way a shareable link would.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromViper(viper.GetViper())
		if err != nil {
			return err
		}

		logger := logging.Discard()
		if cfg.LogFile != "" {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			logger = logging.New(f, cfg.LogLevel)
		}

		client := shioapi.NewClient(cfg.BaseURL, cfg.Timeout, logger)
		model := ui.NewModel(client, logger, ui.Options{
			Station: cfg.Station,
			Date:    cfg.Date,
		})

		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tidewatch.yaml)")
	rootCmd.Flags().StringP("station", "s", "", "station code to open directly (skips the picker)")
	rootCmd.Flags().StringP("date", "d", "", "date to fetch (YYYY-MM-DD; / and . separators accepted)")
	rootCmd.Flags().String("base-url", "", "override the forecast API base URL")

	_ = viper.BindPFlag("station", rootCmd.Flags().Lookup("station"))
	_ = viper.BindPFlag("date", rootCmd.Flags().Lookup("date"))
	_ = viper.BindPFlag("api.base_url", rootCmd.Flags().Lookup("base-url"))
}

// initConfig reads in the config file and TIDEWATCH_* env variables if set.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tidewatch")
	}

	viper.SetEnvPrefix("TIDEWATCH")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults and flags cover everything.
	_ = viper.ReadInConfig()
}
