package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Bemyself19/sehatynet_backend/config"
	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	"github.com/Bemyself19/sehatynet_backend/internal/service/notification"
	"github.com/Bemyself19/sehatynet_backend/internal/service/outbox"
	"github.com/Bemyself19/sehatynet_backend/pkg/email"
)

// WorkerModule registers the outbox relay and the NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	Email    *email.Client
}

func RegisterWorkers(p WorkerParams) {
	relay := outbox.NewRelay(p.DB, p.NC, p.Cfg.Outbox)

	var cancel context.CancelFunc
	done := make(chan struct{})

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var relayCtx context.Context
			relayCtx, cancel = context.WithCancel(context.Background())
			go func() {
				defer close(done)
				relay.Run(relayCtx)
			}()

			startRequestEventWorker(p.Cfg, p.NC, p.DB, p.NotifSvc, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Subscriptions are torn down by the NATS drain in ProvideNatsClient.
			if cancel != nil {
				cancel()
				select {
				case <-done:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// request_event_worker
// ---------------------------------------------------------------------------

// eventNotice is the in-app notification text for a lifecycle event. Events
// absent from the table are patient-initiated and produce no notification.
type eventNotice struct {
	title string
	body  string
}

var requestNotices = map[string]eventNotice{
	outbox.EventRequestConfirmed: {
		title: "Request confirmed",
		body:  "Your provider confirmed every item is available.",
	},
	outbox.EventRequestPartial: {
		title: "Some items are unavailable",
		body:  "Your provider could only source part of your request. Review the offer to accept the available items or choose another provider.",
	},
	outbox.EventRequestOutOfStock: {
		title: "Items out of stock",
		body:  "Your provider could not fulfill your request. You can reassign it to another provider.",
	},
	outbox.EventRequestReady: {
		title: "Ready for pickup",
		body:  "Your request has been prepared and is ready for pickup.",
	},
	outbox.EventRequestCompleted: {
		title: "Request completed",
		body:  "Your request has been completed.",
	},
	outbox.EventRequestReassigned: {
		title: "Request reassigned",
		body:  "Your request was moved to a new provider and is pending again.",
	},
}

// startRequestEventWorker consumes relayed fulfillment events and fans them
// out to the patient: an in-app notification row always, email when the
// patient's preferences allow it. Delivery is at-least-once, so a broker
// redelivery can duplicate a notification; that is accepted.
func startRequestEventWorker(
	cfg *config.Config,
	nc *nats.Conn,
	db *repo.Client,
	notifSvc notification.Service,
	emailCli *email.Client,
) {
	_, err := nc.Subscribe(outbox.SubjectPrefix+".>", func(msg *nats.Msg) {
		// Subject layout: sehatynet.request.<event_type>.<request_id>
		parts := strings.Split(msg.Subject, ".")
		if len(parts) != 4 {
			return
		}
		eventType := parts[2]
		requestID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}

		notice, ok := requestNotices[eventType]
		if !ok {
			return
		}

		payload, err := outbox.DecodePayload(msg.Data)
		if err != nil {
			slog.Warn("request_event_worker: bad payload", "subject", msg.Subject, "err", err)
			return
		}
		patientIDStr, _ := payload["patient_id"].(string)
		patientID, err := uuid.Parse(patientIDStr)
		if err != nil {
			slog.Warn("request_event_worker: missing patient_id", "subject", msg.Subject)
			return
		}

		ctx := context.Background()

		body := notice.body
		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: patientID,
			Type:   "request_" + eventType,
			Title:  notice.title,
			Body:   &body,
			Data:   map[string]any{"request_id": requestID.String()},
		})
		if err != nil {
			slog.Warn("request_event_worker: create notification failed",
				"request_id", requestID, "err", err)
		}

		sendRequestEmail(ctx, cfg, db, notifSvc, emailCli, eventType, requestID, patientID)
	})
	if err != nil {
		slog.Error("request_event_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("request_event_worker: started")
}

// sendRequestEmail emails the patient about a lifecycle event when their
// preferences allow it and they have an address on file.
func sendRequestEmail(
	ctx context.Context,
	cfg *config.Config,
	db *repo.Client,
	notifSvc notification.Service,
	emailCli *email.Client,
	eventType string,
	requestID, patientID uuid.UUID,
) {
	prefs, err := notifSvc.GetPrefs(ctx, patientID)
	if err != nil {
		slog.Warn("request_event_worker: load prefs failed", "user_id", patientID, "err", err)
		return
	}
	if !prefs.RequestEmail {
		return
	}

	patient, err := db.User.Get(ctx, patientID)
	if err != nil {
		slog.Warn("request_event_worker: patient not found", "user_id", patientID, "err", err)
		return
	}
	if patient.Email == nil || *patient.Email == "" {
		return
	}

	r, err := db.MedicalRequest.Get(ctx, requestID)
	if err != nil {
		slog.Warn("request_event_worker: request not found", "request_id", requestID, "err", err)
		return
	}

	data := email.RequestEmailData{
		Email:        *patient.Email,
		RequestTitle: r.Title,
		RequestType:  string(r.Type),
		BaseURL:      cfg.Server.Domain,
	}
	if patient.FirstName != nil {
		data.FirstName = *patient.FirstName
	}
	if r.Feedback != nil {
		data.Feedback = *r.Feedback
	}
	if p, err := db.User.Get(ctx, r.ProviderID); err == nil {
		data.ProviderName = displayName(p)
	}

	var m email.Message
	switch eventType {
	case outbox.EventRequestReady:
		m = email.BuildRequestReadyEmail(data)
	case outbox.EventRequestPartial:
		m = email.BuildPartialOfferEmail(data)
	case outbox.EventRequestOutOfStock:
		m = email.BuildOutOfStockEmail(data)
	case outbox.EventRequestCompleted:
		m = email.BuildRequestCompletedEmail(data)
	default:
		// Confirmed and reassigned stay in-app only.
		return
	}

	if err := emailCli.Send(ctx, m); err != nil {
		slog.Warn("request_event_worker: send email failed",
			"request_id", requestID, "event", eventType, "err", err)
	}
}

func displayName(u *repo.User) string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	return strings.Join(parts, " ")
}
