package pixcoords

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := NewTable(map[rune][]string{'A': {"#"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "table loaded") || !strings.Contains(buf.String(), "glyphs=1") {
		t.Errorf("expected a debug record for the loaded table, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("nil logger should discard everything")
	}
}
