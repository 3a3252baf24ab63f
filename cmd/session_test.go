package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/spent/internal/cli"
	"github.com/theirongolddev/spent/internal/controller"
	"github.com/theirongolddev/spent/internal/view"

	"github.com/spf13/cobra"
)

func isolate(t *testing.T, backend string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	flagBackend = backend
	t.Cleanup(func() { flagBackend = "" })
}

func TestOpenSession_PersistsAcrossSessions(t *testing.T) {
	for _, backend := range []string{"sqlite", "file"} {
		t.Run(backend, func(t *testing.T) {
			isolate(t, backend)
			ctx := context.Background()

			var out, errOut bytes.Buffer
			s, err := openSession(ctx, cli.NewPrinter(&out, &errOut))
			if err != nil {
				t.Fatalf("openSession: %v", err)
			}
			if err := s.ctrl.Submit(ctx, "food", "12.25"); err != nil {
				t.Fatalf("Submit: %v", err)
			}
			s.Close()

			s, err = openSession(ctx, cli.NewPrinter(&out, &errOut))
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer s.Close()
			list := s.store.List()
			if len(list) != 1 || list[0].Category != "food" || list[0].Amount != 12.25 {
				t.Fatalf("reloaded list = %+v", list)
			}
			if errOut.Len() != 0 {
				t.Fatalf("unexpected notices: %q", errOut.String())
			}
		})
	}
}

func TestOpenSession_UnknownBackendFallsBackToMemory(t *testing.T) {
	isolate(t, "carrier-pigeon")

	var out, errOut bytes.Buffer
	s, err := openSession(context.Background(), cli.NewPrinter(&out, &errOut))
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	defer s.Close()

	if !strings.Contains(errOut.String(), storageUnavailable) {
		t.Fatalf("stderr = %q, want storage warning", errOut.String())
	}
	if err := s.ctrl.Submit(context.Background(), "food", "1"); err != nil {
		t.Fatalf("Submit on memory fallback: %v", err)
	}
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	isolate(t, "file")
	flagCurrency = "€"
	t.Cleanup(func() { flagCurrency = "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Backend != "file" || cfg.Display.Currency != "€" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func testCommand() *cobra.Command {
	c := &cobra.Command{}
	c.SetContext(context.Background())
	return c
}

func TestRunAdd_RejectedInputIsReportedOnce(t *testing.T) {
	isolate(t, "memory")

	err := runAdd(testCommand(), []string{"food", "abc"})
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if err := runAdd(testCommand(), []string{"food", "4"}); err != nil {
		t.Fatalf("valid add: %v", err)
	}
}

func TestRunConfig_DoesNotCreateStorage(t *testing.T) {
	for _, backend := range []string{"sqlite", "file"} {
		t.Run(backend, func(t *testing.T) {
			isolate(t, backend)
			dataDir := filepath.Join(t.TempDir(), "data")
			flagDataDir = dataDir
			t.Cleanup(func() { flagDataDir = "" })

			if err := runConfig(testCommand(), nil); err != nil {
				t.Fatalf("runConfig: %v", err)
			}
			if _, err := os.Stat(dataDir); !os.IsNotExist(err) {
				t.Fatalf("data dir stat err = %v, want not-exist", err)
			}
		})
	}
}

type noticeSurface struct{ notices []controller.Notice }

func (n *noticeSurface) Render(view.Model) {}
func (n *noticeSurface) Notify(notice controller.Notice) { n.notices = append(n.notices, notice) }
func (n *noticeSurface) ClearInput() {}

func TestOpenSession_FallbackWarningIsSticky(t *testing.T) {
	isolate(t, "carrier-pigeon")

	surface := &noticeSurface{}
	s, err := openSession(context.Background(), surface)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	defer s.Close()

	if len(surface.notices) != 1 {
		t.Fatalf("notices = %+v", surface.notices)
	}
	if n := surface.notices[0]; !n.Sticky || n.Message != storageUnavailable {
		t.Fatalf("notice = %+v, want sticky storage warning", n)
	}
}
