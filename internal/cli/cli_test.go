package cli

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/transit-catalog/subway/internal/config"
	"github.com/transit-catalog/subway/internal/server"
	"github.com/transit-catalog/subway/internal/store/memstore"
)

func startServer(t *testing.T) string {
	t.Helper()

	cfg := &config.ServerEnvironment{
		Environment:        "test",
		MaxRequestBodySize: 4096,
		RequestTimeout:     5 * time.Second,
		StoreBackend:       config.StoreBackendMemory,
	}
	srv := server.NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), memstore.New())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

// run executes subway-cli with args against apiURL and returns stdout
func run(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--api-url", apiURL}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestLineCommands(t *testing.T) {
	apiURL := startServer(t)

	for _, name := range []string{"연신내역", "불광역"} {
		if _, err := run(t, apiURL, "stations", "create", name); err != nil {
			t.Fatalf("stations create %s: %v", name, err)
		}
	}

	out, err := run(t, apiURL, "lines", "create", "3호선", "--color", "주황색", "--up", "1", "--down", "2", "--distance", "10")
	if err != nil {
		t.Fatalf("lines create: %v", err)
	}
	if !strings.Contains(out, "연신내역 - 불광역") {
		t.Errorf("expected stations in table output, got:\n%s", out)
	}

	if _, err := run(t, apiURL, "lines", "update", "1", "--name", "2호선", "--color", "초록색"); err != nil {
		t.Fatalf("lines update: %v", err)
	}

	out, err = run(t, apiURL, "-o", "yaml", "lines", "get", "1")
	if err != nil {
		t.Fatalf("lines get: %v", err)
	}

	var lines []lineYAML
	if err := yaml.Unmarshal([]byte(out), &lines); err != nil {
		t.Fatalf("yaml output did not parse: %v\n%s", err, out)
	}
	if len(lines) != 1 || lines[0].Name != "2호선" || lines[0].Distance != 10 {
		t.Errorf("unexpected line: %+v", lines)
	}

	if _, err := run(t, apiURL, "lines", "delete", "1"); err != nil {
		t.Fatalf("lines delete: %v", err)
	}

	out, err = run(t, apiURL, "-o", "json", "lines", "list")
	if err != nil {
		t.Fatalf("lines list: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected empty list, got %s", out)
	}
}

func TestCommandErrors(t *testing.T) {
	apiURL := startServer(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown line", []string{"lines", "get", "7"}, "404"},
		{"bad id", []string{"lines", "get", "seven"}, "positive integer"},
		{"same stations", []string{"lines", "create", "1호선", "--color", "남색", "--up", "1", "--down", "1", "--distance", "3"}, "400"},
		{"reset without confirmation", []string{"reset"}, "--yes"},
		{"bad output format", []string{"-o", "xml", "lines", "list"}, "invalid --output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, apiURL, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestResetCommand(t *testing.T) {
	apiURL := startServer(t)

	if _, err := run(t, apiURL, "stations", "create", "연신내역"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, apiURL, "reset", "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	out, err := run(t, apiURL, "-o", "json", "stations", "list")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected no stations after reset, got %s", out)
	}
}
