// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bookmycook/bookmycook/internal/config"
	"github.com/spf13/cobra"
)

// isolate points the user config dir and working directory at empty temp
// directories so no real bookmycook.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Int("code.length", 6, "")
	cmd.Flags().String("code.charset", "digits", "")
	return cmd
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	c, used, err := config.LoadConfig(newCmd(), "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != "" {
		t.Fatalf("read %s in an empty directory", used)
	}
	if c.Language != "en" || c.Code.Length != 6 || c.Code.Charset != "digits" || c.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadConfig_FileEnvAndFlags(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "language: de\ncode:\n  length: 4\n  charset: alphanumeric\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, used, err := config.LoadConfig(newCmd(), path)
	if err != nil || used != path {
		t.Fatalf("LoadConfig: used=%q err=%v", used, err)
	}
	if c.Language != "de" || c.Code.Length != 4 || c.Code.Charset != "alphanumeric" || c.Log.Level != "debug" {
		t.Fatalf("file values not applied: %+v", c)
	}

	t.Setenv("BOOKMYCOOK_CODE_LENGTH", "8")
	c, _, err = config.LoadConfig(newCmd(), path)
	if err != nil || c.Code.Length != 8 {
		t.Fatalf("env not applied: %+v %v", c, err)
	}

	cmd := newCmd()
	if err := cmd.Flags().Set("code.length", "5"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	c, _, err = config.LoadConfig(cmd, path)
	if err != nil || c.Code.Length != 5 {
		t.Fatalf("flag not applied: %+v %v", c, err)
	}
}

func TestLoadConfig_UserConfigDir(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, "bookmycook")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bookmycook.yaml"), []byte("code:\n  length: 7\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, used, err := config.LoadConfig(nil, "")
	if err != nil || used == "" || c.Code.Length != 7 {
		t.Fatalf("LoadConfig: %+v used=%q err=%v", c, used, err)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("BOOKMYCOOK_CODE_LENGTH", "0")

	_, _, err := config.LoadConfig(newCmd(), "")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	valid := config.Config{Language: "en", Code: config.CodeConfig{Length: 6, Charset: "digits"}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := map[string]config.Config{
		"length":   {Language: "en", Code: config.CodeConfig{Length: 0}},
		"charset":  {Language: "en", Code: config.CodeConfig{Length: 6, Charset: "emoji"}},
		"language": {Language: "not a tag!", Code: config.CodeConfig{Length: 6}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if err := c.Validate(); !errors.Is(err, config.ErrInvalidConfig) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := config.Config{Language: "de", Code: config.CodeConfig{Length: 4, Charset: "digits"}, Log: config.LogConfig{Level: "warn"}}
	path, err := config.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}

	loaded, used, err := config.LoadConfig(nil, "")
	if err != nil || used != path {
		t.Fatalf("LoadConfig after write: used=%q err=%v, want %s", used, err, path)
	}
	if loaded != c {
		t.Fatalf("loaded %+v, want %+v", loaded, c)
	}
}
