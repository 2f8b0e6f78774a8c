package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalid is returned by Submit when validation fails.
var ErrInvalid = errors.New("invalid submission")

// Delivery states recorded for a stored message.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Store persists messages and their delivery state.
type Store interface {
	SaveMessage(ctx context.Context, m Message) error
	MarkDelivery(ctx context.Context, id, status string) error
}

// Service validates, records and relays submissions.
type Service struct {
	store Store
	relay Relay
	log   *zap.Logger
	now   func() time.Time
}

// NewService wires a Service. store may be nil when persistence is disabled.
func NewService(store Store, relay Relay, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, relay: relay, log: log, now: time.Now}
}

// Submit handles one form post. Field errors come back together with
// ErrInvalid; relay failures wrap ErrRelay.
func (s *Service) Submit(ctx context.Context, sub Submission) (Message, FieldErrors, error) {
	if errs := sub.Validate(); errs != nil {
		return Message{}, errs, ErrInvalid
	}

	m := Message{
		ID:         uuid.NewString(),
		Submission: sub.Scrubbed(),
		ReceivedAt: s.now().UTC(),
	}
	if s.store != nil {
		if err := s.store.SaveMessage(ctx, m); err != nil {
			return Message{}, nil, fmt.Errorf("save message: %w", err)
		}
	}

	status := StatusSent
	relayErr := s.relay.Deliver(ctx, m)
	if relayErr != nil {
		status = StatusFailed
		s.log.Error("relay contact message", zap.String("id", m.ID), zap.Error(relayErr))
	}
	if s.store != nil {
		if err := s.store.MarkDelivery(ctx, m.ID, status); err != nil {
			s.log.Warn("record delivery status", zap.String("id", m.ID), zap.Error(err))
		}
	}
	if relayErr != nil {
		if !errors.Is(relayErr, ErrRelay) {
			relayErr = fmt.Errorf("%w: %v", ErrRelay, relayErr)
		}
		return m, nil, relayErr
	}

	s.log.Info("contact message delivered", zap.String("id", m.ID))
	return m, nil, nil
}
