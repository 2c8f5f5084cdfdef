// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// eqpass-file is a password helper for eqshell that keeps one plaintext file
// per signing key in a directory. eqshell runs it as
//
//	eqpass-file read <dir> <label>   prints the password stored in <dir>/<label>
//	eqpass-file write <dir> <label>  stores stdin as the password for <label>,
//	                                 then prints it back for verification
//
// Labels are the names eqshell prompts for: key-1, key-2, ... for unlocks and
// the account id for locks.
//
// INSECURE / DEV ONLY: passwords are stored in plaintext.
//
// Usage in config.yaml:
//
//	password_command: ["/path/to/eqpass-file", "/path/to/password-dir"]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run implements the helper and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) != 3 {
		_, _ = fmt.Fprintln(stderr, "Usage: eqpass-file <read|write> <dir> <label>")
		return 2
	}
	verb, dir, label := args[0], args[1], args[2]

	if label == "" || label != filepath.Base(label) || strings.HasPrefix(label, ".") {
		_, _ = fmt.Fprintf(stderr, "eqpass-file: invalid label %q\n", label)
		return 2
	}
	path := filepath.Join(dir, label)

	switch verb {
	case "read":
		data, err := os.ReadFile(path)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "eqpass-file: read %s: %v\n", path, err)
			return 1
		}
		// eqshell strips one trailing newline itself.
		_, _ = stdout.Write(data)

	case "write":
		password, err := io.ReadAll(stdin)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "eqpass-file: read stdin: %v\n", err)
			return 1
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			_, _ = fmt.Fprintf(stderr, "eqpass-file: %v\n", err)
			return 1
		}
		if err := os.WriteFile(path, password, 0600); err != nil {
			_, _ = fmt.Fprintf(stderr, "eqpass-file: write %s: %v\n", path, err)
			return 1
		}
		_, _ = stdout.Write(password)

	default:
		_, _ = fmt.Fprintf(stderr, "eqpass-file: unknown verb %q (expected read or write)\n", verb)
		return 2
	}
	return 0
}
