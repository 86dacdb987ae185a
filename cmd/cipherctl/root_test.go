package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cipher-backend/crypto"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), errOut.String(), err
}

func TestCipherCommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"hill", "encrypt", "--key", "3,2;5,7", "HELLO"}, "DLDCKX"},
		{[]string{"hill", "decrypt", "-k", "3, 2; 5, 7", "DLDCKX"}, "HELLO"},
		{[]string{"hill", "decrypt", "--keep-padding", "DLDCKX"}, "HELLOX"},
		{[]string{"playfair", "encrypt", "--key", "KEYWORD", "HELLO"}, "GYIZSC"},
		{[]string{"playfair", "decrypt", "--key", "KEYWORD", "--keep-filler", "GYIZSC"}, "HELXLO"},
		{[]string{"vigenere", "encrypt", "ATTACK", "AT", "DAWN"}, "LXFOPVEFRNHR"},
		{[]string{"vigenere", "decrypt", "--key", "LEMON", "LXFOPVEFRNHR"}, "ATTACKATDAWN"},
	}
	for _, tc := range cases {
		got, _, err := run(t, tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %q want %q", tc.args, got, tc.want)
		}
	}
}

func TestHillInvalidKeyCommand(t *testing.T) {
	_, _, err := run(t, "hill", "encrypt", "--key", "1,2;3,4", "HI")
	if !errors.Is(err, crypto.ErrInvalidKey) {
		t.Fatalf("err=%v want ErrInvalidKey", err)
	}
	if _, _, err := run(t, "hill", "encrypt", "--key", "1,x;3,4", "HI"); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestVerboseLogsSteps(t *testing.T) {
	_, logs, err := run(t, "--verbose", "playfair", "encrypt", "HELLO")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(logs, "playfair digraph") != 3 || !strings.Contains(logs, "rule=column") {
		t.Fatalf("unexpected logs:\n%s", logs)
	}
}

func TestConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	body := "defaults:\n  vigenere_key: KEY\n  playfair_key: MONARCHY\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	got, _, err := run(t, "--config", path, "vigenere", "encrypt", "HELLO")
	if err != nil || got != "RIJVS" {
		t.Fatalf("got %q,%v want RIJVS", got, err)
	}
	square, _, err := run(t, "--config", path, "square")
	if err != nil || !strings.HasPrefix(square, "M O N A R") {
		t.Fatalf("square=%q,%v", square, err)
	}
}

func TestSquareAndTable(t *testing.T) {
	square, _, err := run(t, "square", "KEYWORD")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(square, "\n")
	if len(lines) != 5 || lines[2] != "F G H I L" {
		t.Fatalf("square=%q", square)
	}

	table, _, err := run(t, "table")
	if err != nil {
		t.Fatal(err)
	}
	if rows := strings.Split(table, "\n"); len(rows) != 26 || rows[25] != "ZABCDEFGHIJKLMNOPQRSTUVWXY" {
		t.Fatalf("unexpected table")
	}
}

func TestAnalyze(t *testing.T) {
	out, _, err := run(t, "analyze", "--key", "LEMON", "ATTACK AT DAWN")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"letters: 12", "ciphertext: LXFOPVEFRNHR", "key stream: LEMONLEMONLE"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHillOversizedKeyCommand(t *testing.T) {
	rows := make([]string, 9)
	for i := range rows {
		rows[i] = "1"
	}
	_, _, err := run(t, "hill", "encrypt", "--key", strings.Join(rows, ";"), "HI")
	if !errors.Is(err, crypto.ErrInvalidKey) {
		t.Fatalf("err=%v want ErrInvalidKey", err)
	}
}
