package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wiiuid/internal/config"
	"wiiuid/internal/testsupport"
	"wiiuid/internal/uidsys"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
	recordPath string
}

var cliRecords = []uidsys.TitleRecord{
	{TitleID: 0x0000000100000002, InstallSlot: 0x1000},
	{TitleID: 0x0001000248415A41, InstallSlot: 0x1001},
	{TitleID: 0x0001000052534245, InstallSlot: 0x1010},
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)

	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("WIIUID_TITLE_DB", "")

	configPath := filepath.Join(homeDir, ".config", "wiiuid", "config.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	recordPath := filepath.Join(base, "uid.sys")
	testsupport.WriteUIDFile(t, recordPath, cliRecords...)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
		recordPath: recordPath,
	}
}

func (e *cliTestEnv) rewriteConfig(t *testing.T) {
	t.Helper()
	testsupport.WriteConfig(t, e.configPath, e.cfg)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
