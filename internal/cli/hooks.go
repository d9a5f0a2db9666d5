package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/felixfbecker/resizegrid/pkg/observability"
)

// sessionStats counts gestures and renders for the status line and logs
// them. It implements observability.GestureHooks and
// observability.RenderHooks.
type sessionStats struct {
	logger *log.Logger

	gestures   int
	proposals  int
	renders    int
	lastRender time.Duration
}

var (
	_ observability.GestureHooks = (*sessionStats)(nil)
	_ observability.RenderHooks  = (*sessionStats)(nil)
)

func newSessionStats(logger *log.Logger) *sessionStats {
	return &sessionStats{logger: logger}
}

// install registers s as the global hooks and returns a function that
// restores the defaults.
func (s *sessionStats) install() (restore func()) {
	observability.SetGestureHooks(s)
	observability.SetRenderHooks(s)
	return observability.Reset
}

func (s *sessionStats) OnGestureStart(key, operation string) {
	s.logger.Debug("gesture started", "key", key, "operation", operation)
}

func (s *sessionStats) OnLayoutChange(key, operation, reason string) {
	s.proposals++
	s.logger.Debug("layout proposed", "key", key, "operation", operation, "reason", reason)
}

func (s *sessionStats) OnGestureEnd(key, operation string, duration time.Duration) {
	s.gestures++
	s.logger.Info("gesture", "key", key, "operation", operation, "duration", duration.Round(time.Millisecond))
}

func (s *sessionStats) OnRender(items int, duration time.Duration, err error) {
	s.renders++
	s.lastRender = duration
	if err != nil {
		s.logger.Warn("render failed", "items", items, "err", err)
	}
}

func (s *sessionStats) String() string {
	return fmt.Sprintf("%d gestures · %d proposals · %d renders (last %s)",
		s.gestures, s.proposals, s.renders, s.lastRender.Round(time.Microsecond))
}
