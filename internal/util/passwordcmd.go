// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package util

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"
)

const (
	// passwordCommandTimeout bounds one password helper invocation.
	passwordCommandTimeout = 5 * time.Second

	// maxPasswordOutputBytes caps helper stdout.
	maxPasswordOutputBytes = 8 * 1024
)

// PasswordCommandConfig describes an external helper that supplies key passwords.
type PasswordCommandConfig struct {
	Argv []string          // Command and arguments; argv[0] must be absolute
	Env  map[string]string // Explicit environment (the process env is not inherited)
}

// Enabled reports whether a helper is configured.
func (c *PasswordCommandConfig) Enabled() bool {
	return c != nil && len(c.Argv) > 0
}

// RunPasswordCommand asks the helper for the password identified by label.
//
// The helper is invoked as:
//
//	argv[0] read argv[1:]... label
//
// Exactly one trailing newline is stripped from its stdout. Output prefixed
// with "base64:" or "hex:" is decoded. Empty output, NUL bytes and output
// over 8 KB are errors. Stderr is discarded.
func RunPasswordCommand(cfg *PasswordCommandConfig, label string) (string, error) {
	resolvedPath, err := validateAndResolveArgv(cfg.Argv)
	if err != nil {
		return "", err
	}

	args := make([]string, 0, len(cfg.Argv)+1)
	args = append(args, "read")
	args = append(args, cfg.Argv[1:]...)
	args = append(args, label)

	ctx, cancel := context.WithTimeout(context.Background(), passwordCommandTimeout)
	defer cancel()

	// Own process group so a timeout kills the helper's children too.
	cmd := exec.Command(resolvedPath, args...) //nolint:gosec // validated above
	cmd.Env = buildCommandEnv(cfg.Env)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stderr = io.Discard

	var stdout bytes.Buffer
	lw := &limitedWriter{w: &stdout, remaining: maxPasswordOutputBytes}
	cmd.Stdout = lw

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("password_command: failed to start: %w", err)
	}

	waitDone := make(chan error, 1)
	go func() { waitDone <- cmd.Wait() }()

	select {
	case err = <-waitDone:
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		<-waitDone
		return "", fmt.Errorf("password_command: timed out after %s", passwordCommandTimeout)
	}
	if err != nil {
		return "", fmt.Errorf("password_command: command failed: %w", err)
	}
	if lw.truncated {
		return "", fmt.Errorf("password_command: stdout exceeded %d bytes", maxPasswordOutputBytes)
	}

	output := stdout.Bytes()
	output = bytes.TrimSuffix(output, []byte("\n"))
	output = bytes.TrimSuffix(output, []byte("\r"))
	if len(output) == 0 {
		return "", fmt.Errorf("password_command: command produced empty output")
	}
	if bytes.IndexByte(output, 0) >= 0 {
		return "", fmt.Errorf("password_command: output contains NUL bytes")
	}
	return decodePasswordOutput(output)
}

func decodePasswordOutput(output []byte) (string, error) {
	switch {
	case bytes.HasPrefix(output, []byte("base64:")):
		decoded, err := base64.StdEncoding.DecodeString(string(output[len("base64:"):]))
		if err != nil {
			return "", fmt.Errorf("password_command: invalid base64 output: %w", err)
		}
		return string(decoded), nil
	case bytes.HasPrefix(output, []byte("hex:")):
		decoded, err := hex.DecodeString(string(output[len("hex:"):]))
		if err != nil {
			return "", fmt.Errorf("password_command: invalid hex output: %w", err)
		}
		return string(decoded), nil
	default:
		return string(output), nil
	}
}

// ValidatePasswordCommand checks a configured helper without running it.
func ValidatePasswordCommand(cfg *PasswordCommandConfig) error {
	if !cfg.Enabled() {
		return nil
	}
	_, err := validateAndResolveArgv(cfg.Argv)
	return err
}

func validateAndResolveArgv(argv []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("password_command: must be non-empty")
	}
	path := argv[0]
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("password_command: argv[0] must be an absolute path, got %q", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("password_command: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("password_command: %s is a directory", path)
	}
	perm := info.Mode().Perm()
	if perm&0111 == 0 {
		return "", fmt.Errorf("password_command: %s is not executable (mode %04o)", path, perm)
	}
	if perm&0022 != 0 {
		return "", fmt.Errorf("password_command: %s is group or world writable (mode %04o)", path, perm)
	}
	return path, nil
}

func buildCommandEnv(declared map[string]string) []string {
	env := make([]string, 0, len(declared))
	for k, v := range declared {
		env = append(env, k+"="+v)
	}
	return env
}

// limitedWriter drops everything past remaining bytes and records that it did.
type limitedWriter struct {
	w         io.Writer
	remaining int64
	truncated bool
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	n := len(p)
	if lw.remaining <= 0 {
		lw.truncated = true
		return n, nil
	}
	if int64(n) > lw.remaining {
		p = p[:lw.remaining]
		lw.truncated = true
	}
	written, err := lw.w.Write(p)
	lw.remaining -= int64(written)
	if err != nil {
		return written, err
	}
	// Full length so the child never sees a short write.
	return n, nil
}

var stdinReader *bufio.Reader

// ReadPassword prompts on w and reads a password from stdin without echo.
// Non-terminal stdin is read one line at a time.
func ReadPassword(w io.Writer, prompt string) (string, error) {
	_, _ = fmt.Fprint(w, prompt)

	fd := int(os.Stdin.Fd()) // #nosec G115 - file descriptors are small integers
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
