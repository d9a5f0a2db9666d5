package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		log   func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("placed") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("placed") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("placed") }, true},
		{"warn at error", log.ErrorLevel, func(l *log.Logger) { l.Warn("placed") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newLogger(&buf, tt.level))
			if got := strings.Contains(buf.String(), "placed"); got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("tick")

	if !regexp.MustCompile(`^\d\d:\d\d:\d\d\.\d\d `).MatchString(buf.String()) {
		t.Errorf("output %q does not start with an HH:MM:SS.ms timestamp", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Placed 3 items")

	if !regexp.MustCompile(`Placed 3 items \(\d+(\.\d+)?[nµm]?s\)`).MatchString(buf.String()) {
		t.Errorf("output = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	custom := newLogger(&bytes.Buffer{}, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext() did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}
}

func TestRootAttachesLogger(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	var got *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = loggerFromContext(cmd.Context())
			return nil
		},
	})
	root.SetArgs([]string{"probe"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != c.Logger {
		t.Error("subcommand context does not carry the CLI logger")
	}
}
