package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a status line with the elapsed time until it is stopped
// or its context ends, then clears the line. Only the animation goroutine
// writes to w.
type spinner struct {
	w       io.Writer
	message string
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
}

// startSpinner starts a spinner on the status writer.
func (u *ui) startSpinner(ctx context.Context, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		w:       u.w,
		message: message,
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	width := 0
	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			text := fmt.Sprintf(" %s (%s)", s.message, time.Since(start).Truncate(100*time.Millisecond))
			width = max(width, len(frame)+len(text))
			fmt.Fprint(s.w, "\r"+styleSpinner.Render(frame)+styleDim.Render(text))
		}
	}
}

// Stop ends the animation and waits for the line to be cleared.
// Calling Stop more than once is safe.
func (s *spinner) Stop() {
	s.once.Do(s.cancel)
	<-s.stopped
}

// Cancelled reports whether the caller's context ended, as opposed to an
// explicit Stop.
func (s *spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
