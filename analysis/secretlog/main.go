// Package main implements a static check that flags passwords or access
// tokens passed to log, print or error calls.
//
// It is line based: string literals are blanked out, then a line is reported
// when it contains an output call and an identifier that names a secret.
// Function calls whose names mention a secret (ReadPassword(...)) are fine.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// outputCall matches calls that write to logs, terminals or error strings.
var outputCall = regexp.MustCompile(`\b(fmt\.(Print|Println|Printf|Fprint|Fprintf|Fprintln|Sprintf|Errorf)|util\.(Debug|Warn)|Logger\.\w+|slog\.\w+|log\.\w+)\(`)

// secretIdent matches identifiers that hold secret values.
var secretIdent = regexp.MustCompile(`(?i)\b\w*(password|passwd|passphrase|accesstoken|secret)s?\b`)

// Identifiers that merely describe secrets.
var safeIdents = regexp.MustCompile(`(?i)(count|len|label|helper|command|cmd|config|env|prompt|path|file|dir)$`)

// Files whose output of secrets is the point of the program.
var exemptFiles = map[string]string{
	"cmd/eqpass-file/main.go": "password helper prints the stored password to eqshell",
}

type finding struct {
	file    string
	line    int
	content string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: secretlog <repo-root>")
		os.Exit(1)
	}
	os.Exit(run(os.Args[1], os.Stdout))
}

func run(root string, w io.Writer) int {
	var findings []finding
	var filesChecked int

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			base := filepath.Base(path)
			if base == "vendor" || base == ".git" || base == "analysis" || strings.HasPrefix(base, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		for exempt := range exemptFiles {
			if strings.HasSuffix(filepath.ToSlash(path), exempt) {
				return nil
			}
		}

		filesChecked++
		findings = append(findings, checkFile(path)...)
		return nil
	})
	if err != nil {
		_, _ = fmt.Fprintf(w, "Error walking directory: %v\n", err)
		return 2
	}

	_, _ = fmt.Fprintf(w, "Secret Logging Analysis\n")
	_, _ = fmt.Fprintf(w, "=======================\n")
	_, _ = fmt.Fprintf(w, "Files checked: %d\n\n", filesChecked)

	if len(findings) == 0 {
		_, _ = fmt.Fprintln(w, "No issues found.")
		return 0
	}

	_, _ = fmt.Fprintf(w, "Potential issues: %d\n\n", len(findings))
	for _, f := range findings {
		_, _ = fmt.Fprintf(w, "%s:%d\n", f.file, f.line)
		_, _ = fmt.Fprintf(w, "  Line: %s\n\n", strings.TrimSpace(f.content))
	}
	return 1
}

func checkFile(path string) []finding {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = file.Close() }()

	var findings []finding
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if leaksSecret(line) {
			findings = append(findings, finding{file: path, line: lineNum, content: line})
		}
	}
	return findings
}

// leaksSecret reports whether line passes a secret-named value to an output call.
func leaksSecret(line string) bool {
	code := stripStringLiterals(line)
	if !outputCall.MatchString(code) {
		return false
	}
	for _, loc := range secretIdent.FindAllStringIndex(code, -1) {
		ident := code[loc[0]:loc[1]]
		if safeIdents.MatchString(ident) {
			continue
		}
		if strings.HasSuffix(code[:loc[0]], "len(") {
			continue
		}
		// A call such as ReadPassword(...) produces the secret, it does not print it.
		if rest := strings.TrimLeft(code[loc[1]:], " "); strings.HasPrefix(rest, "(") {
			continue
		}
		// Selector prefixes such as r.Password.X are fine when X is not secret.
		if loc[1] < len(code) && code[loc[1]] == '.' {
			continue
		}
		return true
	}
	return false
}

// stripStringLiterals replaces the contents of string literals with spaces.
func stripStringLiterals(line string) string {
	var b strings.Builder
	var quote rune
	escaped := false
	for _, ch := range line {
		switch {
		case quote == 0:
			if ch == '"' || ch == '`' {
				quote = ch
			}
			b.WriteRune(ch)
		case escaped:
			escaped = false
			b.WriteRune(' ')
		case ch == '\\' && quote == '"':
			escaped = true
			b.WriteRune(' ')
		case ch == quote:
			quote = 0
			b.WriteRune(ch)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}
