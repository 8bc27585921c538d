package logging

import (
	"context"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Run("nil context returns default", func(t *testing.T) {
		//nolint:staticcheck // exercising the nil guard on purpose
		if FromContext(nil) != Default() {
			t.Error("expected default logger for nil context")
		}
	})

	t.Run("empty context returns default", func(t *testing.T) {
		if FromContext(context.Background()) != Default() {
			t.Error("expected default logger for empty context")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		tl := NewTestLogger(t)
		ctx := WithLogger(context.Background(), tl.Logger)
		if FromContext(ctx) != tl.Logger {
			t.Error("expected logger stored in context")
		}
	})
}

func TestWithPackage(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithPackage(ctx, "busybox")

	Ctx(ctx).Info().Msg("selecting candidate")

	if !tl.Contains(`"package":"busybox"`) {
		t.Errorf("expected package field in output, got %s", tl.Output())
	}
}

func TestWithSession(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithSession(ctx, "a4f-0001")

	Ctx(ctx).Info().Msg("comparing scans")

	if !tl.Contains(`"session":"a4f-0001"`) {
		t.Errorf("expected session field in output, got %s", tl.Output())
	}
}
