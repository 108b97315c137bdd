package store

import (
	"context"

	"echofeed/models"
)

// LikePost adds userID to a post's likes set. Liking twice is an error, not
// a silent no-op, so callers can tell the difference.
func (s *Store) LikePost(ctx context.Context, postID, userID string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.posts {
		if s.posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewPostNotFoundError()
	}
	if s.posts[idx].LikedBy(userID) {
		s.mu.Unlock()
		return models.NewAlreadyLikedError()
	}

	s.posts[idx].Likes = append(s.posts[idx].Likes, userID)
	author := s.resolveAuthor(s.posts[idx].AuthorID)
	s.appendLikeActivity(userID, postID, models.ActivityLike, s.posts[idx].Title, author.DisplayName)

	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "post", Action: "like", ID: postID})
	return nil
}

// UnlikePost removes userID from a post's likes set.
func (s *Store) UnlikePost(ctx context.Context, postID, userID string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.posts {
		if s.posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewPostNotFoundError()
	}

	likeIdx := -1
	for i, id := range s.posts[idx].Likes {
		if id == userID {
			likeIdx = i
			break
		}
	}
	if likeIdx == -1 {
		s.mu.Unlock()
		return models.NewNotLikedError()
	}

	s.posts[idx].Likes = append(s.posts[idx].Likes[:likeIdx], s.posts[idx].Likes[likeIdx+1:]...)
	author := s.resolveAuthor(s.posts[idx].AuthorID)
	s.appendLikeActivity(userID, postID, models.ActivityUnlike, s.posts[idx].Title, author.DisplayName)

	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "post", Action: "unlike", ID: postID})
	return nil
}
