package store

import (
	"sort"

	"echofeed/models"
)

// Activity appends run inside mutations with s.mu held. The logs are
// append-only; nothing in the store mutates or removes a record once added.

func (s *Store) appendPostActivity(userID, postID string, typ models.ActivityType, title, content string) {
	s.postActivities = append(s.postActivities, models.PostActivity{
		ID:          s.newID(),
		UserID:      userID,
		PostID:      postID,
		Type:        typ,
		CreatedAt:   s.now(),
		PostTitle:   title,
		PostContent: content,
	})
}

func (s *Store) appendCommentActivity(userID, commentID, postID string, typ models.ActivityType, content, postTitle string) {
	s.commentActivities = append(s.commentActivities, models.CommentActivity{
		ID:             s.newID(),
		UserID:         userID,
		CommentID:      commentID,
		PostID:         postID,
		Type:           typ,
		CreatedAt:      s.now(),
		CommentContent: content,
		PostTitle:      postTitle,
	})
}

func (s *Store) appendLikeActivity(userID, postID string, typ models.ActivityType, postTitle, postAuthor string) {
	s.likeActivities = append(s.likeActivities, models.LikeActivity{
		ID:         s.newID(),
		UserID:     userID,
		PostID:     postID,
		Type:       typ,
		CreatedAt:  s.now(),
		PostTitle:  postTitle,
		PostAuthor: postAuthor,
	})
}

// UserPostActivities returns one user's post history, newest first.
func (s *Store) UserPostActivities(userID string) []models.PostActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.PostActivity
	for _, a := range s.postActivities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UserCommentActivities returns one user's comment history, newest first.
func (s *Store) UserCommentActivities(userID string) []models.CommentActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.CommentActivity
	for _, a := range s.commentActivities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UserLikeActivities returns one user's like history, newest first.
func (s *Store) UserLikeActivities(userID string) []models.LikeActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.LikeActivity
	for _, a := range s.likeActivities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
