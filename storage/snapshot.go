package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"echofeed/models"
)

// Persistence keys: one per collection plus a separate session slot. The
// layout matches the data this store inherited, so existing blobs load as-is.
const (
	KeyUsers             = "users"
	KeyPosts             = "posts"
	KeyComments          = "comments"
	KeyPostActivities    = "post_activities"
	KeyCommentActivities = "comment_activities"
	KeyLikeActivities    = "like_activities"
	KeySession           = "auth_user"
)

// Keys lists every persistence key, session slot included.
var Keys = []string{
	KeyUsers,
	KeyPosts,
	KeyComments,
	KeyPostActivities,
	KeyCommentActivities,
	KeyLikeActivities,
	KeySession,
}

// Snapshot is the full persisted state of the entity store.
type Snapshot struct {
	Users             []models.User
	Posts             []models.Post
	Comments          []models.Comment
	PostActivities    []models.PostActivity
	CommentActivities []models.CommentActivity
	LikeActivities    []models.LikeActivity
}

// Adapter reads and writes snapshots through a KV store. Loading is
// tolerant: absent or malformed blobs become empty collections, never a
// startup failure.
type Adapter struct {
	kv     KV
	logger *zap.Logger
}

func NewAdapter(kv KV, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{kv: kv, logger: logger}
}

// SaveAll writes every collection. Full-snapshot on purpose: collections are
// small and there is a single writer.
func (a *Adapter) SaveAll(ctx context.Context, snap Snapshot) error {
	entries := []struct {
		key   string
		value any
	}{
		{KeyUsers, snap.Users},
		{KeyPosts, snap.Posts},
		{KeyComments, snap.Comments},
		{KeyPostActivities, snap.PostActivities},
		{KeyCommentActivities, snap.CommentActivities},
		{KeyLikeActivities, snap.LikeActivities},
	}
	for _, e := range entries {
		b, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.key, err)
		}
		if err := a.kv.Set(ctx, e.key, string(b)); err != nil {
			return fmt.Errorf("write %s: %w", e.key, err)
		}
	}
	return nil
}

// LoadAll reads every collection, skipping anything unreadable.
func (a *Adapter) LoadAll(ctx context.Context) Snapshot {
	return Snapshot{
		Users:             loadKey[models.User](ctx, a, KeyUsers),
		Posts:             loadKey[models.Post](ctx, a, KeyPosts),
		Comments:          loadKey[models.Comment](ctx, a, KeyComments),
		PostActivities:    loadKey[models.PostActivity](ctx, a, KeyPostActivities),
		CommentActivities: loadKey[models.CommentActivity](ctx, a, KeyCommentActivities),
		LikeActivities:    loadKey[models.LikeActivity](ctx, a, KeyLikeActivities),
	}
}

func loadKey[T any](ctx context.Context, a *Adapter, key string) []T {
	s, found, err := a.kv.Get(ctx, key)
	if err != nil {
		a.logger.Warn("blob read failed, starting empty", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		a.logger.Warn("malformed blob, starting empty", zap.String("key", key), zap.Error(err))
		return nil
	}
	return out
}

// SaveSession persists the password-stripped session user in its own slot.
func (a *Adapter) SaveSession(ctx context.Context, user models.AuthUser) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := a.kv.Set(ctx, KeySession, string(b)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearSession removes the session slot. Absence of the key means "no
// session".
func (a *Adapter) ClearSession(ctx context.Context) error {
	return a.kv.Delete(ctx, KeySession)
}

// LoadSession returns the persisted session user, or nil when the slot is
// absent or unreadable.
func (a *Adapter) LoadSession(ctx context.Context) *models.AuthUser {
	s, found, err := a.kv.Get(ctx, KeySession)
	if err != nil {
		a.logger.Warn("session read failed", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	var user models.AuthUser
	if err := json.Unmarshal([]byte(s), &user); err != nil {
		a.logger.Warn("malformed session blob", zap.Error(err))
		return nil
	}
	return &user
}

// Reset deletes every persistence key, session slot included.
func (a *Adapter) Reset(ctx context.Context) error {
	for _, key := range Keys {
		if err := a.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}
