package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadPrecedenceFlagsOverEnvOverFile(t *testing.T) {
	configPath := writeConfig(t, "output: plain\nnetwork: localnet\ntarget_cli: near-cli-rs\n")

	t.Setenv("NEARCOMPAT_OUTPUT", "json")
	t.Setenv("NEARCOMPAT_NETWORK", "mainnet")
	flags := GlobalFlags{ConfigPath: configPath, Plain: true}
	settings, err := Load(flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.OutputMode != "plain" {
		t.Fatalf("expected flag to win, got output=%s", settings.OutputMode)
	}
	if settings.Network != "mainnet" {
		t.Fatalf("expected env network to beat file, got %s", settings.Network)
	}
	if settings.TargetCLI != "near-cli-rs" {
		t.Fatalf("expected target cli from file, got %s", settings.TargetCLI)
	}

	settings, err = Load(GlobalFlags{ConfigPath: configPath, Network: "testnet"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Network != "testnet" {
		t.Fatalf("expected --network to win, got %s", settings.Network)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	settings, err := Load(GlobalFlags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.OutputMode != "json" || settings.Network != DefaultNetwork || settings.TargetCLI != DefaultTargetCLI {
		t.Fatalf("unexpected defaults: %+v", settings)
	}
	if settings.HistoryEnabled {
		t.Fatal("history must be opt-in")
	}
	if filepath.Base(settings.HistoryPath) != "history.db" || filepath.Base(settings.HistoryLockPath) != "history.lock" {
		t.Fatalf("unexpected history paths: %s %s", settings.HistoryPath, settings.HistoryLockPath)
	}
}

func TestLoadHistoryAndColor(t *testing.T) {
	configPath := writeConfig(t, "color: true\nhistory:\n  enabled: true\n  path: /tmp/h.db\n  lock_path: /tmp/h.lock\n")
	settings, err := Load(GlobalFlags{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !settings.HistoryEnabled || settings.HistoryPath != "/tmp/h.db" || settings.HistoryLockPath != "/tmp/h.lock" {
		t.Fatalf("unexpected history settings: %+v", settings)
	}

	t.Setenv("NO_COLOR", "1")
	settings, err = Load(GlobalFlags{ConfigPath: configPath, NoHistory: true})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.HistoryEnabled {
		t.Fatal("expected --no-history to disable history")
	}
	if settings.Color {
		t.Fatal("expected NO_COLOR to disable color")
	}
}

func TestLoadVerboseSetsDebug(t *testing.T) {
	configPath := writeConfig(t, "log_level: error\n")
	settings, err := Load(GlobalFlags{ConfigPath: configPath, Verbose: true})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %s", settings.LogLevel)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		flags GlobalFlags
	}{
		{name: "json and plain", flags: GlobalFlags{JSON: true, Plain: true}},
		{name: "bad output", body: "output: yaml\n"},
		{name: "bad log level", body: "log_level: loud\n"},
		{name: "bad yaml", body: "output: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.flags.ConfigPath = writeConfig(t, tc.body)
			if _, err := Load(tc.flags); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/x/history.db"); got != filepath.Join(home, "x", "history.db") {
		t.Fatalf("unexpected expansion: %s", got)
	}
	if got := expandHome("/abs/history.db"); got != "/abs/history.db" {
		t.Fatalf("unexpected expansion: %s", got)
	}
}

func TestLoadEnableCommands(t *testing.T) {
	configPath := writeConfig(t, "enable_commands:\n  - deploy\n  - view\n")
	settings, err := Load(GlobalFlags{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(settings.EnableCommands) != 2 || settings.EnableCommands[1] != "view" {
		t.Fatalf("unexpected allowlist from file: %v", settings.EnableCommands)
	}

	t.Setenv("NEARCOMPAT_ENABLE_COMMANDS", "stake")
	settings, err = Load(GlobalFlags{ConfigPath: configPath, EnableCommands: " history , keys,"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(settings.EnableCommands) != 2 || settings.EnableCommands[0] != "history" || settings.EnableCommands[1] != "keys" {
		t.Fatalf("expected flag allowlist to win, got %v", settings.EnableCommands)
	}
}

func TestLoadEnableCommandsFromEnvNormalizes(t *testing.T) {
	t.Setenv("NEARCOMPAT_ENABLE_COMMANDS", " Deploy ,History   List,,")
	settings, err := Load(GlobalFlags{ConfigPath: writeConfig(t, "")})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{"deploy", "history list"}
	if len(settings.EnableCommands) != len(want) {
		t.Fatalf("unexpected allowlist: %q", settings.EnableCommands)
	}
	for i := range want {
		if settings.EnableCommands[i] != want[i] {
			t.Fatalf("unexpected allowlist: %q", settings.EnableCommands)
		}
	}
	if err := settings.EnableCommands.Check("history list"); err != nil {
		t.Fatalf("expected history list allowed: %v", err)
	}
	if err := settings.EnableCommands.Check("history clear"); err == nil {
		t.Fatal("expected history clear blocked")
	}
}
