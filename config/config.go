package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/headstamp/headstamp/constants/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config represents the structure of the configuration file
type Config struct {
	Version       string          `mapstructure:"version"`
	Theme         string          `mapstructure:"theme"`
	Name          string          `mapstructure:"name"`
	Email         string          `mapstructure:"email"`
	Width         int             `mapstructure:"width"`
	AddMissing    bool            `mapstructure:"add_missing"`
	PreserveWidth bool            `mapstructure:"preserve_width"`
	ClampSameDay  bool            `mapstructure:"clamp_same_day"`
	Recursive     bool            `mapstructure:"recursive"`
	Order         string          `mapstructure:"order"`
	Extensions    []string        `mapstructure:"extensions"`
	EnableCache   bool            `mapstructure:"enable_cache"`
	Timeline      *TimelineConfig `mapstructure:"timeline"`
}

// TimelineConfig controls how inserted timestamps are spread across the day.
type TimelineConfig struct {
	Enabled bool  `mapstructure:"enabled"`
	GapMin  int   `mapstructure:"gap_min"`
	GapMax  int   `mapstructure:"gap_max"`
	WorkMin int   `mapstructure:"work_min"`
	WorkMax int   `mapstructure:"work_max"`
	Seed    int64 `mapstructure:"seed"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version:       "1.0.0",
	Theme:         "dracula",
	Name:          "",
	Email:         "",
	Width:         80,
	AddMissing:    false,
	PreserveWidth: false,
	ClampSameDay:  true,
	Recursive:     false,
	Order:         "name",
	Extensions:    nil,
	EnableCache:   true,
	Timeline: &TimelineConfig{
		Enabled: true,
		GapMin:  60,
		GapMax:  120,
		WorkMin: 180,
		WorkMax: 360,
		Seed:    0,
	},
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("headstamp-config")
		viper.AddConfigPath(cwd)

		// Support both YAML and JSON formats
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigType("json")
			_ = viper.ReadInConfig()
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("theme", DefaultConfig.Theme)
	viper.SetDefault("name", DefaultConfig.Name)
	viper.SetDefault("email", DefaultConfig.Email)
	viper.SetDefault("width", DefaultConfig.Width)
	viper.SetDefault("add_missing", DefaultConfig.AddMissing)
	viper.SetDefault("preserve_width", DefaultConfig.PreserveWidth)
	viper.SetDefault("clamp_same_day", DefaultConfig.ClampSameDay)
	viper.SetDefault("recursive", DefaultConfig.Recursive)
	viper.SetDefault("order", DefaultConfig.Order)
	viper.SetDefault("extensions", DefaultConfig.Extensions)
	viper.SetDefault("enable_cache", DefaultConfig.EnableCache)
	viper.SetDefault("timeline.enabled", DefaultConfig.Timeline.Enabled)
	viper.SetDefault("timeline.gap_min", DefaultConfig.Timeline.GapMin)
	viper.SetDefault("timeline.gap_max", DefaultConfig.Timeline.GapMax)
	viper.SetDefault("timeline.work_min", DefaultConfig.Timeline.WorkMin)
	viper.SetDefault("timeline.work_max", DefaultConfig.Timeline.WorkMax)
	viper.SetDefault("timeline.seed", DefaultConfig.Timeline.Seed)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("theme", "HEADSTAMP_THEME")
	_ = viper.BindEnv("name", "HEADSTAMP_NAME")
	_ = viper.BindEnv("email", "HEADSTAMP_EMAIL")
	_ = viper.BindEnv("width", "HEADSTAMP_WIDTH")
	_ = viper.BindEnv("add_missing", "HEADSTAMP_ADD_MISSING")
	_ = viper.BindEnv("preserve_width", "HEADSTAMP_PRESERVE_WIDTH")
	_ = viper.BindEnv("clamp_same_day", "HEADSTAMP_CLAMP_SAME_DAY")
	_ = viper.BindEnv("order", "HEADSTAMP_ORDER")
	_ = viper.BindEnv("enable_cache", "HEADSTAMP_ENABLE_CACHE")
	_ = viper.BindEnv("timeline.seed", "HEADSTAMP_SEED")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag("name", rootCmd.PersistentFlags().Lookup("name"))
	_ = viper.BindPFlag("email", rootCmd.PersistentFlags().Lookup("email"))
	_ = viper.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
	_ = viper.BindPFlag("add_missing", rootCmd.PersistentFlags().Lookup("add_missing"))
	_ = viper.BindPFlag("preserve_width", rootCmd.PersistentFlags().Lookup("preserve_width"))
	_ = viper.BindPFlag("clamp_same_day", rootCmd.PersistentFlags().Lookup("clamp_same_day"))
	_ = viper.BindPFlag("recursive", rootCmd.PersistentFlags().Lookup("recursive"))
	_ = viper.BindPFlag("order", rootCmd.PersistentFlags().Lookup("order"))
	_ = viper.BindPFlag("extensions", rootCmd.PersistentFlags().Lookup("ext"))
	_ = viper.BindPFlag("enable_cache", rootCmd.PersistentFlags().Lookup("enable_cache"))
	_ = viper.BindPFlag("timeline.enabled", rootCmd.PersistentFlags().Lookup("timeline"))
	_ = viper.BindPFlag("timeline.gap_min", rootCmd.PersistentFlags().Lookup("gap_min"))
	_ = viper.BindPFlag("timeline.gap_max", rootCmd.PersistentFlags().Lookup("gap_max"))
	_ = viper.BindPFlag("timeline.work_min", rootCmd.PersistentFlags().Lookup("work_min"))
	_ = viper.BindPFlag("timeline.work_max", rootCmd.PersistentFlags().Lookup("work_max"))
	_ = viper.BindPFlag("timeline.seed", rootCmd.PersistentFlags().Lookup("seed"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Color theme for diff output (e.g., 'dracula', 'github', 'monokai')")
	rootCmd.PersistentFlags().String("name", DefaultConfig.Name, "Author name stamped into headers (falls back to git config user.name)")
	rootCmd.PersistentFlags().String("email", DefaultConfig.Email, "Author email stamped into headers (optional)")
	rootCmd.PersistentFlags().Int("width", DefaultConfig.Width, "Total column width of rendered header lines")
	rootCmd.PersistentFlags().Bool("add_missing", DefaultConfig.AddMissing, "Insert a header when a file does not have one")
	rootCmd.PersistentFlags().Bool("preserve_width", DefaultConfig.PreserveWidth, "Keep the width of an existing header when updating it")
	rootCmd.PersistentFlags().Bool("clamp_same_day", DefaultConfig.ClampSameDay, "Never let a same-day Updated stamp precede the Created stamp")
	rootCmd.PersistentFlags().BoolP("recursive", "r", DefaultConfig.Recursive, "Recurse into subdirectories")
	rootCmd.PersistentFlags().String("order", DefaultConfig.Order, "Order files before timestamping: 'name' or 'mtime'")
	rootCmd.PersistentFlags().StringSlice("ext", nil, "Restrict processing to these file extensions (default: all supported)")
	rootCmd.PersistentFlags().Bool("enable_cache", DefaultConfig.EnableCache, "Enable or disable the on-disk parse cache")

	// Timeline knobs for inserted timestamps
	rootCmd.PersistentFlags().Bool("timeline", DefaultConfig.Timeline.Enabled, "Spread inserted timestamps across the day instead of stamping one instant")
	rootCmd.PersistentFlags().Int("gap_min", DefaultConfig.Timeline.GapMin, "Minimum seconds between consecutive files")
	rootCmd.PersistentFlags().Int("gap_max", DefaultConfig.Timeline.GapMax, "Maximum seconds between consecutive files")
	rootCmd.PersistentFlags().Int("work_min", DefaultConfig.Timeline.WorkMin, "Minimum seconds between Created and Updated")
	rootCmd.PersistentFlags().Int("work_max", DefaultConfig.Timeline.WorkMax, "Maximum seconds between Created and Updated")
	rootCmd.PersistentFlags().Int64("seed", DefaultConfig.Timeline.Seed, "Seed for a reproducible timeline (0 derives it from the run time)")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}

// Validate checks cross-field constraints that viper cannot express.
func (c *Config) Validate() error {
	if c.Order != "name" && c.Order != "mtime" {
		return fmt.Errorf("invalid order %q: must be 'name' or 'mtime'", c.Order)
	}
	if c.Timeline != nil {
		if c.Timeline.GapMin > c.Timeline.GapMax {
			return fmt.Errorf("gap_min (%d) must not exceed gap_max (%d)", c.Timeline.GapMin, c.Timeline.GapMax)
		}
		if c.Timeline.WorkMin > c.Timeline.WorkMax {
			return fmt.Errorf("work_min (%d) must not exceed work_max (%d)", c.Timeline.WorkMin, c.Timeline.WorkMax)
		}
	}
	return nil
}

// NormalizedExtensions returns the configured extension overrides as
// lowercase dot-prefixed extensions, or nil when none were configured.
func (c *Config) NormalizedExtensions() []string {
	if len(c.Extensions) == 0 {
		return nil
	}
	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// GetConfigFileType returns the type of the configuration file based on its extension
func GetConfigFileType(filename string) string {
	if strings.HasSuffix(filename, ".json") {
		return "json"
	} else if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		return "yaml"
	}
	return ""
}
