package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandlerAddsContextAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buf, nil),
	})

	ctx := WithAttrs(context.Background(), slog.String("sessionID", "d1b4s3ss10n"))

	logger.InfoContext(ctx, "render succeeded")

	if got := buf.String(); !strings.Contains(got, "sessionID=d1b4s3ss10n") {
		t.Errorf("expected record to carry the context attribute, got '%s'", got)
	}
}

func TestWithAttrsMerges(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buf, nil),
	})

	ctx := WithAttrs(context.Background(), slog.String("first", "a"))
	ctx = WithAttrs(ctx, slog.String("second", "b"))

	logger.InfoContext(ctx, "message")

	got := buf.String()

	if !strings.Contains(got, "first=a") || !strings.Contains(got, "second=b") {
		t.Errorf("expected both attributes in the record, got '%s'", got)
	}
}

func TestContextWithoutAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buf, nil),
	})

	logger.InfoContext(context.Background(), "message")

	if got := buf.String(); !strings.Contains(got, "msg=message") {
		t.Errorf("expected the record to pass through, got '%s'", got)
	}
}
