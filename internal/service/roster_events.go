package service

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"mergington.dev/backend/internal/infra"
	"mergington.dev/backend/internal/pkg/jetstream"
	"mergington.dev/backend/internal/pkg/observability"
)

type RosterEventType string

const (
	RosterEventSignup     RosterEventType = "signup"
	RosterEventUnregister RosterEventType = "unregister"
)

// RosterEvent is published after a roster change has been applied to the store.
type RosterEvent struct {
	Type       RosterEventType `json:"type"`
	Activity   string          `json:"activity"`
	Email      string          `json:"email"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// RosterPublisher is the subset of nats.JetStreamContext used to publish roster events.
type RosterPublisher interface {
	PublishMsg(m *nats.Msg, opts ...nats.PubOpt) (*nats.PubAck, error)
}

type RosterEvents struct {
	publisher RosterPublisher
}

// NewRosterEvents returns a publisher that does nothing when js is nil.
func NewRosterEvents(js nats.JetStreamContext) *RosterEvents {
	e := &RosterEvents{}
	if js != nil {
		e.publisher = js
	}
	return e
}

func NewRosterEventsWithPublisher(publisher RosterPublisher) *RosterEvents {
	return &RosterEvents{publisher: publisher}
}

// Publish emits an event for an applied roster change. Failures are logged and
// counted but never returned: the store already holds the change.
func (e *RosterEvents) Publish(ctx context.Context, typ RosterEventType, activity, email string) {
	if e == nil || e.publisher == nil {
		return
	}

	subject := infra.RosterSubjectPrefix + string(typ)
	msg, id, err := jetstream.NewMsg(subject, RosterEvent{
		Type:       typ,
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
	if err == nil {
		_, err = e.publisher.PublishMsg(msg, nats.AckWait(time.Second*2))
	}

	if err != nil {
		observability.RosterEventsPublished.WithLabelValues(subject, "error").Inc()
		log.Ctx(ctx).Warn().
			Err(err).
			Str("evt.name", "roster.event.publish_failed").
			Str("subject", subject).
			Msg("failed to publish roster event")
		return
	}

	observability.RosterEventsPublished.WithLabelValues(subject, "ok").Inc()
	log.Ctx(ctx).Debug().
		Str("evt.name", "roster.event.published").
		Str("subject", subject).
		Str("msgId", id).
		Msg("published roster event")
}
