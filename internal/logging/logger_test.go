package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"WARNING": logrus.WarnLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"bogus":   logrus.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "spent.log")
	logger, closer, err := New("info", path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.WithField("component", "test").Info("hello")
	logger.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "component=test") {
		t.Fatalf("log = %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatal("debug line written at info level")
	}
}

func TestNew_WriterFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New("debug", "", &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("to buffer")
	if !strings.Contains(buf.String(), "to buffer") {
		t.Fatalf("buffer = %q", buf.String())
	}
}
