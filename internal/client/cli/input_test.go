package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText_ReadsLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("a@x.com\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter email", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "a@x.com" {
		t.Fatalf("got %q want %q", got, "a@x.com")
	}
	if !strings.Contains(out.String(), "Enter email") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  a@x.com \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter email", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "a@x.com" {
		t.Fatalf("got %q want %q", got, "a@x.com")
	}
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no-newline"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter email", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "no-newline" {
		t.Fatalf("got %q want %q", got, "no-newline")
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	got, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("GetPassword error: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("got %q want %q", got, "hunter2")
	}
	if !strings.Contains(out.String(), "Enter password:") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetPassword_Error(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
