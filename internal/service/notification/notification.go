package notification

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	entnotif "github.com/Bemyself19/sehatynet_backend/internal/repo/notification"
	entpref "github.com/Bemyself19/sehatynet_backend/internal/repo/notificationpref"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	UserID uuid.UUID
	Type   string
	Title  string
	Body   *string
	Data   map[string]any
}

type UpsertPrefsRequest struct {
	RequestSMS   bool
	RequestEmail bool
	RequestPush  bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error)
	MarkRead(ctx context.Context, notifID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	GetPrefs(ctx context.Context, userID uuid.UUID) (*repo.NotificationPref, error)
	UpsertPrefs(ctx context.Context, userID uuid.UUID, req UpsertPrefsRequest) (*repo.NotificationPref, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &notificationService{db: db}
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	c := s.db.Notification.Create().
		SetUserID(req.UserID).
		SetType(req.Type).
		SetTitle(req.Title)

	if req.Body != nil {
		c = c.SetBody(*req.Body)
	}
	if req.Data != nil {
		c = c.SetData(req.Data)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) ([]*repo.Notification, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Notification.Query().
		Where(entnotif.UserID(userID))

	if unreadOnly {
		q = q.Where(entnotif.IsRead(false))
	}

	notifs, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notifID, userID uuid.UUID) error {
	n, err := s.db.Notification.Query().
		Where(entnotif.ID(notifID), entnotif.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get notification: %w", err)
	}

	return s.db.Notification.UpdateOne(n).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.db.Notification.Update().
		Where(entnotif.UserID(userID), entnotif.IsRead(false)).
		SetIsRead(true).
		Exec(ctx)
}

func (s *notificationService) GetPrefs(ctx context.Context, userID uuid.UUID) (*repo.NotificationPref, error) {
	pref, err := s.db.NotificationPref.Query().
		Where(entpref.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Return defaults without persisting
			return &repo.NotificationPref{
				UserID:       userID,
				RequestSms:   true,
				RequestEmail: true,
				RequestPush:  true,
			}, nil
		}
		return nil, fmt.Errorf("get notification prefs: %w", err)
	}
	return pref, nil
}

func (s *notificationService) UpsertPrefs(ctx context.Context, userID uuid.UUID, req UpsertPrefsRequest) (*repo.NotificationPref, error) {
	existing, err := s.db.NotificationPref.Query().
		Where(entpref.UserID(userID)).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return nil, fmt.Errorf("get notification prefs: %w", err)
		}
		// Not found — create
		pref, cErr := s.db.NotificationPref.Create().
			SetUserID(userID).
			SetRequestSms(req.RequestSMS).
			SetRequestEmail(req.RequestEmail).
			SetRequestPush(req.RequestPush).
			Save(ctx)
		if cErr != nil {
			return nil, fmt.Errorf("create notification prefs: %w", cErr)
		}
		return pref, nil
	}

	pref, err := s.db.NotificationPref.UpdateOne(existing).
		SetRequestSms(req.RequestSMS).
		SetRequestEmail(req.RequestEmail).
		SetRequestPush(req.RequestPush).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update notification prefs: %w", err)
	}
	return pref, nil
}
