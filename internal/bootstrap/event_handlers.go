package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/ChoreWheel_Go/internal/event"
	"github.com/osse101/ChoreWheel_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the in-process consumers of wheel events.
// Today that is only the prometheus collector.
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	return nil
}
