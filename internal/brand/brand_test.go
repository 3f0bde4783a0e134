package brand

import (
	"os"
	"testing"
)

func TestGet(t *testing.T) {
	b := Get()
	if b.Name == "" {
		t.Error("Brand name should not be empty")
	}
	// Version is a global variable, not in the struct
	if Version == "" {
		t.Error("Global Version should be initialized (to dev default)")
	}
	if Name == "" {
		t.Error("Global Name should be initialized")
	}
	if BinaryName != LowerName {
		t.Errorf("BinaryName %q should match LowerName %q", BinaryName, LowerName)
	}
}

func TestGetDirectories(t *testing.T) {
	cleanEnv := func() {
		os.Unsetenv(ConfigEnvPrefix + "_PREFIX")
		os.Unsetenv(ConfigEnvPrefix + "_CONFIG_DIR")
		os.Unsetenv(ConfigEnvPrefix + "_STATE_DIR")
		os.Unsetenv(ConfigEnvPrefix + "_LOG_DIR")
	}
	cleanEnv()
	defer cleanEnv()

	// Defaults
	if GetConfigDir() != DefaultConfigDir {
		t.Errorf("Expected default config dir %s, got %s", DefaultConfigDir, GetConfigDir())
	}
	if GetStateDir() != DefaultStateDir {
		t.Errorf("Expected default state dir %s, got %s", DefaultStateDir, GetStateDir())
	}
	if GetLogDir() != DefaultLogDir {
		t.Errorf("Expected default log dir %s, got %s", DefaultLogDir, GetLogDir())
	}

	// Explicit override wins
	os.Setenv(ConfigEnvPrefix+"_STATE_DIR", "/tmp/pstate")
	if GetStateDir() != "/tmp/pstate" {
		t.Errorf("STATE_DIR override not honored: %s", GetStateDir())
	}
	os.Unsetenv(ConfigEnvPrefix + "_STATE_DIR")

	// Prefix fallback
	os.Setenv(ConfigEnvPrefix+"_PREFIX", "/tmp/pfx")
	if GetStateDir() != "/tmp/pfx/state" {
		t.Errorf("PREFIX fallback not honored: %s", GetStateDir())
	}
	if GetConfigDir() != "/tmp/pfx/config" {
		t.Errorf("PREFIX fallback not honored for config: %s", GetConfigDir())
	}
}

func TestConfigFilePath(t *testing.T) {
	os.Unsetenv(ConfigEnvPrefix + "_CONFIG_DIR")
	os.Unsetenv(ConfigEnvPrefix + "_PREFIX")
	want := DefaultConfigDir + "/" + ConfigFileName
	if got := ConfigFilePath(); got != want {
		t.Errorf("ConfigFilePath() = %s, want %s", got, want)
	}
}
