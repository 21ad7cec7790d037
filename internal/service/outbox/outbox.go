// Package outbox implements the transactional outbox: events are written in
// the same transaction as the state change that produced them, then a relay
// publishes pending rows to NATS. Delivery is at-least-once; consumers must
// tolerate duplicates.
package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Bemyself19/sehatynet_backend/config"
	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	entoutbox "github.com/Bemyself19/sehatynet_backend/internal/repo/outboxmessage"
)

// SubjectPrefix is the root of all fulfillment event subjects,
// e.g. sehatynet.request.confirmed.<request_id>.
const SubjectPrefix = "sehatynet.request"

// Event is a request lifecycle event queued for dispatch.
type Event struct {
	Type      string
	RequestID uuid.UUID
	Payload   map[string]any
}

// Subject returns the NATS subject the event is published to.
func (e Event) Subject() string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, e.Type, e.RequestID)
}

// Enqueue writes an outbox row using the given client, which should belong
// to the transaction that performs the state change.
func Enqueue(ctx context.Context, c *repo.OutboxMessageClient, evt Event) error {
	payload := evt.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	payload["request_id"] = evt.RequestID.String()

	_, err := c.Create().
		SetEventType(evt.Type).
		SetSubject(evt.Subject()).
		SetEntityID(evt.RequestID).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("enqueue outbox event %s: %w", evt.Type, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Relay
// ---------------------------------------------------------------------------

// Relay polls for undispatched rows and publishes them to NATS with
// exponential backoff on failure.
type Relay struct {
	db  *repo.Client
	nc  *nats.Conn
	cfg config.OutboxConfig
}

func NewRelay(db *repo.Client, nc *nats.Conn, cfg config.OutboxConfig) *Relay {
	if cfg.PollIntervalSeconds < 1 {
		cfg.PollIntervalSeconds = 2
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 10
	}
	if cfg.BackoffBaseSeconds < 1 {
		cfg.BackoffBaseSeconds = 5
	}
	return &Relay{db: db, nc: nc, cfg: cfg}
}

// Run blocks until ctx is cancelled, draining due rows every poll interval.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(r.cfg.PollIntervalSeconds) * time.Second)
	defer ticker.Stop()

	slog.Info("outbox_relay: started",
		"poll_interval_s", r.cfg.PollIntervalSeconds,
		"batch_size", r.cfg.BatchSize,
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox_relay: stopped")
			return
		case <-ticker.C:
			if err := r.DrainOnce(ctx); err != nil {
				slog.Warn("outbox_relay: drain failed", "err", err)
			}
		}
	}
}

// DrainOnce publishes one batch of due rows. Rows that fail to publish are
// rescheduled; rows over the attempt cap are logged and left parked with
// next_attempt_at far in the future.
func (r *Relay) DrainOnce(ctx context.Context) error {
	now := time.Now()

	msgs, err := r.db.OutboxMessage.Query().
		Where(
			entoutbox.Dispatched(false),
			entoutbox.NextAttemptAtLTE(now),
		).
		Order(entoutbox.ByCreatedAt()).
		Limit(r.cfg.BatchSize).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query outbox: %w", err)
	}

	for _, m := range msgs {
		if err := r.publish(ctx, m); err != nil {
			r.reschedule(ctx, m, err)
			continue
		}

		err := r.db.OutboxMessage.UpdateOne(m).
			SetDispatched(true).
			SetDispatchedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			// The publish succeeded but the mark failed; the row will be
			// re-published next cycle. At-least-once allows this.
			slog.Warn("outbox_relay: mark dispatched failed", "id", m.ID, "err", err)
		}
	}

	return nil
}

func (r *Relay) publish(_ context.Context, m *repo.OutboxMessage) error {
	data, err := encodePayload(m.Payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := r.nc.Publish(m.Subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", m.Subject, err)
	}
	return nil
}

func (r *Relay) reschedule(ctx context.Context, m *repo.OutboxMessage, cause error) {
	attempts := m.Attempts + 1
	next := time.Now().Add(backoff(attempts, r.cfg.BackoffBaseSeconds))

	if attempts >= r.cfg.MaxAttempts {
		// Park the row a day out so it stops churning; operators can reset
		// next_attempt_at after fixing the broker.
		next = time.Now().Add(24 * time.Hour)
		slog.Error("outbox_relay: message exceeded max attempts",
			"id", m.ID, "event", m.EventType, "attempts", attempts, "err", cause)
	}

	err := r.db.OutboxMessage.UpdateOne(m).
		SetAttempts(attempts).
		SetNextAttemptAt(next).
		SetLastError(cause.Error()).
		Exec(ctx)
	if err != nil {
		slog.Warn("outbox_relay: reschedule failed", "id", m.ID, "err", err)
	}
}

// backoff returns base * 2^(attempts-1), capped at 10 minutes.
func backoff(attempts, baseSeconds int) time.Duration {
	d := time.Duration(baseSeconds) * time.Second
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= 10*time.Minute {
			return 10 * time.Minute
		}
	}
	return d
}
