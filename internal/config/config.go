package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ggonzalez94/nearcompat/internal/policy"
)

const (
	DefaultNetwork   = "testnet"
	DefaultTargetCLI = "near"
	DefaultLogLevel  = "warn"
)

type GlobalFlags struct {
	ConfigPath     string
	JSON           bool
	Plain          bool
	ResultsOnly    bool
	Network        string
	EnableCommands string
	NoHistory      bool
	Verbose        bool
	NoColor        bool
}

type Settings struct {
	OutputMode      string
	ResultsOnly     bool
	Network         string
	TargetCLI       string
	LogLevel        string
	Color           bool
	HistoryEnabled  bool
	HistoryPath     string
	HistoryLockPath string
	EnableCommands  policy.Allowlist
}

type fileConfig struct {
	Output         string   `yaml:"output"`
	Network        string   `yaml:"network"`
	TargetCLI      string   `yaml:"target_cli"`
	LogLevel       string   `yaml:"log_level"`
	Color          *bool    `yaml:"color"`
	EnableCommands []string `yaml:"enable_commands"`
	History        struct {
		Enabled  *bool  `yaml:"enabled"`
		Path     string `yaml:"path"`
		LockPath string `yaml:"lock_path"`
	} `yaml:"history"`
}

func Load(flags GlobalFlags) (Settings, error) {
	settings, err := defaultSettings()
	if err != nil {
		return Settings{}, err
	}

	cfgPath, err := resolveConfigPath(flags.ConfigPath)
	if err != nil {
		return Settings{}, err
	}

	if err := applyFileConfig(cfgPath, &settings); err != nil {
		return Settings{}, err
	}

	applyEnv(&settings)

	if err := applyFlags(flags, &settings); err != nil {
		return Settings{}, err
	}

	if settings.OutputMode == "" {
		settings.OutputMode = "json"
	}
	if settings.Network == "" {
		settings.Network = DefaultNetwork
	}
	if settings.TargetCLI == "" {
		settings.TargetCLI = DefaultTargetCLI
	}

	return settings, nil
}

func defaultSettings() (Settings, error) {
	historyPath, lockPath, err := defaultHistoryPaths()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		OutputMode:      "json",
		Network:         DefaultNetwork,
		TargetCLI:       DefaultTargetCLI,
		LogLevel:        DefaultLogLevel,
		Color:           true,
		HistoryEnabled:  false,
		HistoryPath:     historyPath,
		HistoryLockPath: lockPath,
	}, nil
}

func resolveConfigPath(input string) (string, error) {
	if strings.TrimSpace(input) != "" {
		return input, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "nearcompat", "config.yaml"), nil
}

func defaultHistoryPaths() (string, string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, "nearcompat")
	return filepath.Join(dir, "history.db"), filepath.Join(dir, "history.lock"), nil
}

func applyFileConfig(path string, settings *Settings) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	if cfg.Output != "" {
		settings.OutputMode = strings.ToLower(cfg.Output)
	}
	if cfg.Network != "" {
		settings.Network = strings.TrimSpace(cfg.Network)
	}
	if cfg.TargetCLI != "" {
		settings.TargetCLI = strings.TrimSpace(cfg.TargetCLI)
	}
	if cfg.LogLevel != "" {
		settings.LogLevel = strings.ToLower(cfg.LogLevel)
	}
	if cfg.Color != nil {
		settings.Color = *cfg.Color
	}
	if len(cfg.EnableCommands) > 0 {
		settings.EnableCommands = policy.Allowlist(cfg.EnableCommands)
	}
	if cfg.History.Enabled != nil {
		settings.HistoryEnabled = *cfg.History.Enabled
	}
	if cfg.History.Path != "" {
		settings.HistoryPath = expandHome(cfg.History.Path)
	}
	if cfg.History.LockPath != "" {
		settings.HistoryLockPath = expandHome(cfg.History.LockPath)
	}

	return nil
}

func applyEnv(settings *Settings) {
	if v := os.Getenv("NEARCOMPAT_OUTPUT"); v != "" {
		settings.OutputMode = strings.ToLower(v)
	}
	if v := os.Getenv("NEARCOMPAT_NETWORK"); v != "" {
		settings.Network = strings.TrimSpace(v)
	}
	if v := os.Getenv("NEARCOMPAT_TARGET_CLI"); v != "" {
		settings.TargetCLI = strings.TrimSpace(v)
	}
	if v := os.Getenv("NEARCOMPAT_LOG_LEVEL"); v != "" {
		settings.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("NEARCOMPAT_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.HistoryEnabled = b
		}
	}
	if v := os.Getenv("NEARCOMPAT_HISTORY_PATH"); v != "" {
		settings.HistoryPath = v
	}
	if v := os.Getenv("NEARCOMPAT_HISTORY_LOCK_PATH"); v != "" {
		settings.HistoryLockPath = v
	}
	if v := os.Getenv("NEARCOMPAT_ENABLE_COMMANDS"); v != "" {
		settings.EnableCommands = policy.ParseAllowlist(v)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		settings.Color = false
	}
}

func applyFlags(flags GlobalFlags, settings *Settings) error {
	if flags.JSON && flags.Plain {
		return fmt.Errorf("cannot use --json and --plain together")
	}
	if flags.JSON {
		settings.OutputMode = "json"
	}
	if flags.Plain {
		settings.OutputMode = "plain"
	}
	settings.ResultsOnly = flags.ResultsOnly

	if strings.TrimSpace(flags.Network) != "" {
		settings.Network = strings.TrimSpace(flags.Network)
	}
	if strings.TrimSpace(flags.EnableCommands) != "" {
		settings.EnableCommands = policy.ParseAllowlist(flags.EnableCommands)
	}
	if flags.NoHistory {
		settings.HistoryEnabled = false
	}
	if flags.Verbose {
		settings.LogLevel = "debug"
	}
	if flags.NoColor {
		settings.Color = false
	}

	if settings.OutputMode != "json" && settings.OutputMode != "plain" {
		return fmt.Errorf("output must be json or plain")
	}
	switch settings.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error")
	}

	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
