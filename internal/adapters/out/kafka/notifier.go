// Package kafka publishes task and route status transitions.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var _ ports.Notifier = (*Notifier)(nil)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// TransitionEvent is the JSON value written for each transition. The message
// key is the entity id, so all events of one task or route share a partition.
type TransitionEvent struct {
	Entity    string      `json:"entity"`
	ID        kernel.UUID `json:"id"`
	CompanyID kernel.UUID `json:"company_id"`
	ActorID   kernel.UUID `json:"actor_id"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	At        time.Time   `json:"at"`
	Cascade   bool        `json:"cascade"`
}

func newTransitionEvent(t kernel.Transition) TransitionEvent {
	return TransitionEvent{
		Entity:    t.Entity,
		ID:        t.ID,
		CompanyID: t.CompanyID,
		ActorID:   t.ActorID,
		From:      t.From,
		To:        t.To,
		At:        t.At.UTC(),
		Cascade:   t.Cascade,
	}
}

type Notifier struct {
	w     messageWriter
	topic string
	log   zerolog.Logger
}

func NewNotifier(brokers []string, topic string, log zerolog.Logger) *Notifier {
	return newNotifierWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, topic, log)
}

func newNotifierWithWriter(w messageWriter, topic string, log zerolog.Logger) *Notifier {
	return &Notifier{w: w, topic: topic, log: log}
}

func (n *Notifier) Notify(ctx context.Context, t kernel.Transition) error {
	value, err := json.Marshal(newTransitionEvent(t))
	if err != nil {
		return errors.Wrap(err, "marshal transition")
	}

	if err = n.w.WriteMessages(ctx, kafka.Message{
		Topic: n.topic,
		Key:   []byte(t.ID.String()),
		Value: value,
		Time:  t.At,
	}); err != nil {
		n.log.Warn().Err(err).
			Str("entity", t.Entity).
			Str("id", t.ID.String()).
			Str("to", t.To).
			Msg("transition not published")
		return errors.Wrapf(err, "kafka publish %s transition", t.Entity)
	}

	n.log.Debug().
		Str("entity", t.Entity).
		Str("id", t.ID.String()).
		Str("from", t.From).
		Str("to", t.To).
		Bool("cascade", t.Cascade).
		Msg("transition published")
	return nil
}

// Close flushes pending writes when the writer supports it.
func (n *Notifier) Close() error {
	if c, ok := n.w.(interface{ Close() error }); ok {
		return errors.Wrap(c.Close(), "close kafka writer")
	}
	return nil
}
