package jigsaw

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should report disabled at every level")
	}
}

func TestLogger_SetAndRestore(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Error("configured logger produced no output")
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Info("quiet")
	if buf.Len() != 0 {
		t.Error("nil logger should restore silence")
	}
}

func TestLogger_GenerationLogsAreOptional(t *testing.T) {
	// Generation must work with logging disabled (the default).
	SetLogger(nil)
	_, err := Generate(context.Background(), gradientImage(400, 300),
		Config{Difficulty: Easy}, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
}
