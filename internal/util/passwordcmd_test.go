// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"encoding/base64"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "helper.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+content), 0700); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunPasswordCommand(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    string
		wantErr string
	}{
		{name: "plain", script: "echo s3cret\n", want: "s3cret"},
		{name: "no trailing newline", script: "printf 'notrail'\n", want: "notrail"},
		{name: "strips one newline", script: "printf 'pw\\n\\n'\n", want: "pw\n"},
		{name: "keeps spaces", script: "printf '  pw  '\n", want: "  pw  "},
		{name: "base64", script: "printf 'base64:" + base64.StdEncoding.EncodeToString([]byte("decoded")) + "'\n", want: "decoded"},
		{name: "hex", script: "printf 'hex:" + hex.EncodeToString([]byte("hexval")) + "'\n", want: "hexval"},
		{name: "empty", script: "", wantErr: "empty output"},
		{name: "bad hex", script: "printf 'hex:zz'\n", wantErr: "invalid hex"},
		{name: "exit status", script: "exit 3\n", wantErr: "command failed"},
		{name: "too much output", script: "i=0; while [ $i -lt 1000 ]; do printf 'aaaaaaaaaa'; i=$((i+1)); done\n", wantErr: "exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &PasswordCommandConfig{Argv: []string{makeScript(t, tt.script)}}
			got, err := RunPasswordCommand(cfg, "key-0")
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("RunPasswordCommand() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RunPasswordCommand() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RunPasswordCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunPasswordCommand_Args(t *testing.T) {
	script := makeScript(t, "echo \"$1|$2|$3\"\n")
	got, err := RunPasswordCommand(&PasswordCommandConfig{Argv: []string{script, "vault"}}, "key-2")
	if err != nil {
		t.Fatalf("RunPasswordCommand() error = %v", err)
	}
	if got != "read|vault|key-2" {
		t.Errorf("args = %q, want read|vault|key-2", got)
	}
}

func TestRunPasswordCommand_EnvNotInherited(t *testing.T) {
	t.Setenv("EQSHELL_TEST_LEAK", "leaked")
	script := makeScript(t, "echo \"${EQSHELL_TEST_LEAK:-none}-${VAULT}\"\n")
	cfg := &PasswordCommandConfig{Argv: []string{script}, Env: map[string]string{"VAULT": "v1"}}
	got, err := RunPasswordCommand(cfg, "key-0")
	if err != nil {
		t.Fatalf("RunPasswordCommand() error = %v", err)
	}
	if got != "none-v1" {
		t.Errorf("env = %q, want none-v1", got)
	}
}

func TestValidatePasswordCommand(t *testing.T) {
	dir := t.TempDir()
	writable := filepath.Join(dir, "writable.sh")
	if err := os.WriteFile(writable, []byte("#!/bin/sh\n"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(writable, 0777); err != nil {
		t.Fatal(err)
	}
	noexec := filepath.Join(dir, "noexec.sh")
	if err := os.WriteFile(noexec, []byte("#!/bin/sh\n"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		argv    []string
		wantErr string
	}{
		{"disabled", nil, ""},
		{"ok", []string{makeScript(t, "echo x\n")}, ""},
		{"relative", []string{"helper.sh"}, "absolute"},
		{"missing", []string{filepath.Join(dir, "nope")}, "no such file"},
		{"directory", []string{dir}, "directory"},
		{"not executable", []string{noexec}, "not executable"},
		{"world writable", []string{writable}, "writable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordCommand(&PasswordCommandConfig{Argv: tt.argv})
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidatePasswordCommand() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidatePasswordCommand() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
