// Package store implements the in-memory entity store behind the feed: the
// canonical collections of users, posts, comments, and activity logs, the
// domain operations that mutate them, and the session of the signed-in user.
// Every successful mutation writes a full snapshot through the storage
// adapter and emits a change event to subscribers.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"echofeed/models"
	"echofeed/storage"
)

// Store owns the canonical collections. All access goes through its methods;
// the mutex exists because notification timers and the UI program run on
// separate goroutines, but the design remains single-writer.
type Store struct {
	mu sync.RWMutex

	users             []models.User
	posts             []models.Post
	comments          []models.Comment
	postActivities    []models.PostActivity
	commentActivities []models.CommentActivity
	likeActivities    []models.LikeActivity

	current *models.AuthUser

	adapter *storage.Adapter
	logger  *zap.Logger
	watcher *watcher

	now   func() time.Time
	newID func() string
}

func New(adapter *storage.Adapter, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		adapter: adapter,
		logger:  logger,
		watcher: newWatcher(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Load restores the collections and the session slot from persistence.
// Missing or unreadable blobs leave the respective collection empty.
func (s *Store) Load(ctx context.Context) {
	snap := s.adapter.LoadAll(ctx)
	session := s.adapter.LoadSession(ctx)

	s.mu.Lock()
	s.users = snap.Users
	s.posts = snap.Posts
	s.comments = snap.Comments
	s.postActivities = snap.PostActivities
	s.commentActivities = snap.CommentActivities
	s.likeActivities = snap.LikeActivities
	s.current = session
	s.mu.Unlock()

	s.logger.Info("store loaded",
		zap.Int("users", len(snap.Users)),
		zap.Int("posts", len(snap.Posts)),
		zap.Int("comments", len(snap.Comments)),
		zap.Bool("session", session != nil),
	)
}

// persist writes a full snapshot of every collection. Called with s.mu held.
// Write failures are logged and swallowed: the in-memory state stays
// authoritative and availability wins over durability here.
func (s *Store) persist(ctx context.Context) {
	snap := storage.Snapshot{
		Users:             s.users,
		Posts:             s.posts,
		Comments:          s.comments,
		PostActivities:    s.postActivities,
		CommentActivities: s.commentActivities,
		LikeActivities:    s.likeActivities,
	}
	if err := s.adapter.SaveAll(ctx, snap); err != nil {
		s.logger.Warn("snapshot write failed", zap.Error(err))
	}
}

// saveSession mirrors the current session to its own slot. Called with s.mu
// held.
func (s *Store) saveSession(ctx context.Context) {
	var err error
	if s.current != nil {
		err = s.adapter.SaveSession(ctx, *s.current)
	} else {
		err = s.adapter.ClearSession(ctx)
	}
	if err != nil {
		s.logger.Warn("session write failed", zap.Error(err))
	}
}

// Counts returns the sizes of the three primary collections.
func (s *Store) Counts() (users, posts, comments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.posts), len(s.comments)
}
