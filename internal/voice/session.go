package voice

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/angelmondragon/orderchat-backend/pkg/logger"
	"github.com/angelmondragon/orderchat-backend/pkg/metrics"
)

// State of the voice capture session.
type State string

const (
	StateIdle      State = "idle"
	StateListening State = "listening"
)

// EventKind identifies an inbound event from the speech engine boundary.
type EventKind string

const (
	EventInterim EventKind = "interim"
	EventFinal   EventKind = "final"
	EventError   EventKind = "error"
	// EventEnded signals the engine stopped without a final transcript or
	// an error, e.g. a dropped capture stream.
	EventEnded EventKind = "ended"
)

// Event is one inbound speech engine event.
type Event struct {
	Kind       EventKind `json:"kind"`
	Transcript string    `json:"transcript,omitempty"`
	Message    string    `json:"message,omitempty"`
}

// Recognizer is the outbound surface of the speech engine: start and stop
// the underlying capture. The engine reports back through HandleEvent.
type Recognizer interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handlers receive the session's observable outcomes.
type Handlers struct {
	// OnInterim fires for every partial transcript while listening.
	OnInterim func(ctx context.Context, transcript string)
	// OnFinal fires once with the finished transcript; the session is
	// idle again when it runs.
	OnFinal func(ctx context.Context, transcript string)
	// OnError fires when the engine fails; the session is idle again.
	OnError func(ctx context.Context, message string)
}

// Session serializes access to one underlying capture resource. Start is
// idempotent while listening and Stop is a no-op while idle, so at most
// one capture is ever active. An unexpected end while still listening is
// retried once before it degrades to an error.
type Session struct {
	mu         sync.Mutex
	state      State
	resumed    bool
	recognizer Recognizer
	handlers   Handlers
	logg       *logger.Logger
	metrics    *metrics.ChatMetrics
}

// NewSession builds an idle voice session.
func NewSession(recognizer Recognizer, handlers Handlers, chatMetrics *metrics.ChatMetrics, logg *logger.Logger) (*Session, error) {
	if recognizer == nil {
		return nil, fmt.Errorf("recognizer required")
	}
	return &Session{
		state:      StateIdle,
		recognizer: recognizer,
		handlers:   handlers,
		logg:       logg,
		metrics:    chatMetrics,
	}, nil
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins listening. Calling Start while already listening is a no-op.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateListening {
		return nil
	}

	s.state = StateListening
	s.resumed = false
	if err := s.recognizer.Start(ctx); err != nil {
		s.state = StateIdle
		return fmt.Errorf("start voice capture: %w", err)
	}
	return nil
}

// Stop ends the capture. Stopping an idle session is a no-op.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return nil
	}
	s.state = StateIdle
	if err := s.recognizer.Stop(); err != nil {
		return fmt.Errorf("stop voice capture: %w", err)
	}
	return nil
}

// HandleEvent applies one inbound engine event.
func (s *Session) HandleEvent(ctx context.Context, event Event) {
	s.mu.Lock()

	if s.state != StateListening {
		s.mu.Unlock()
		return
	}
	s.metrics.IncVoiceEvent(string(event.Kind))

	switch event.Kind {
	case EventInterim:
		handler := s.handlers.OnInterim
		s.mu.Unlock()
		if handler != nil {
			handler(ctx, strings.TrimSpace(event.Transcript))
		}

	case EventFinal:
		s.state = StateIdle
		_ = s.recognizer.Stop()
		handler := s.handlers.OnFinal
		s.mu.Unlock()
		transcript := strings.TrimSpace(event.Transcript)
		if handler != nil && transcript != "" {
			handler(ctx, transcript)
		}

	case EventError:
		s.state = StateIdle
		_ = s.recognizer.Stop()
		handler := s.handlers.OnError
		s.mu.Unlock()
		if handler != nil {
			handler(ctx, event.Message)
		}

	case EventEnded:
		if !s.resumed {
			// One automatic resumption keeps a dropped capture alive.
			s.resumed = true
			err := s.recognizer.Start(ctx)
			if err == nil {
				s.mu.Unlock()
				if s.logg != nil {
					s.logg.Warn(ctx, "voice capture ended unexpectedly, resumed")
				}
				return
			}
		}
		s.state = StateIdle
		handler := s.handlers.OnError
		s.mu.Unlock()
		if handler != nil {
			handler(ctx, "voice capture ended unexpectedly")
		}

	default:
		s.mu.Unlock()
	}
}
