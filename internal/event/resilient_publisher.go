package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/ChoreWheel_Go/internal/logger"
)

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// Publish never fails the caller: a spin that committed must not be reported as
// failed because a subscriber hiccuped.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewResilientPublisher creates a publisher that appends exhausted events to deadLetterPath
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		shutdown:   make(chan struct{}),
	}, nil
}

// Publish implements Bus
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry publishes synchronously and falls back to background retries on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"max_retries", p.maxRetries)

	select {
	case <-p.shutdown:
		logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", event.Type)
		p.writeDeadLetter(event, 1, err)
		return
	default:
	}

	p.wg.Add(1)
	go p.retryLoop(event, err)
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()

	// Detached from the request context, which is gone by now
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, attempt))
		select {
		case <-p.shutdown:
			timer.Stop()
			log.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type, "attempt", attempt)
			p.writeDeadLetter(event, attempt, lastErr)
			return
		case <-timer.C:
		}

		if err := p.inner.Publish(ctx, event); err != nil {
			lastErr = err
			log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", err)
			continue
		}

		log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
		return
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "attempts", p.maxRetries)
	p.writeDeadLetter(event, p.maxRetries+1, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterFailed, "event_type", event.Type, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-letters their events and closes the file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return errors.Join(ctx.Err(), p.deadLetter.Close())
	}

	return p.deadLetter.Close()
}
