package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStop(t *testing.T) {
	var buf bytes.Buffer
	s := (&ui{w: &buf}).startSpinner(context.Background(), "Finding components...")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Finding components...") {
		t.Errorf("spinner output %q lacks the message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should clear its line on Stop, output ends %q", out[max(0, len(out)-10):])
	}
	if s.Cancelled() {
		t.Error("Stop alone should not count as cancellation")
	}
}

func TestSpinnerStopTwice(t *testing.T) {
	s := (&ui{w: &bytes.Buffer{}}).startSpinner(context.Background(), "twice")
	s.Stop()
	s.Stop()
}

func TestSpinnerContextEnds(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx, cancel
		}},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 20*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()
			s := (&ui{w: &bytes.Buffer{}}).startSpinner(ctx, "waiting")
			<-ctx.Done()
			s.Stop()
			if !s.Cancelled() {
				t.Error("spinner should report cancellation once its context ends")
			}
		})
	}
}
