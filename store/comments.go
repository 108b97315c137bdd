package store

import (
	"context"
	"sort"

	"echofeed/models"
)

// unknownPostTitle is the snapshot placeholder when a comment's parent post
// cannot be resolved for the activity record.
const unknownPostTitle = "Unknown post"

// ListComments returns a post's comments joined with their authors, oldest
// first (thread order).
func (s *Store) ListComments(postID string) []models.CommentWithAuthor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.CommentWithAuthor
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, models.CommentWithAuthor{
				Comment: c,
				Author:  s.resolveAuthor(c.AuthorID),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// postTitleForSnapshot resolves the parent post's title for an activity
// record, falling back to a placeholder. Called with s.mu held.
func (s *Store) postTitleForSnapshot(postID string) string {
	for _, p := range s.posts {
		if p.ID == postID {
			return p.Title
		}
	}
	return unknownPostTitle
}

// AddComment appends a comment for the signed-in user. The postId is not
// validated against the posts collection; only the activity snapshot
// tolerates a missing parent. Deliberately permissive.
func (s *Store) AddComment(ctx context.Context, postID, content, authorID string) (models.Comment, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return models.Comment{}, models.NewNotAuthenticatedError("comment")
	}

	comment := models.Comment{
		ID:        s.newID(),
		Content:   content,
		PostID:    postID,
		AuthorID:  authorID,
		CreatedAt: s.now(),
	}
	s.comments = append(s.comments, comment)
	s.appendCommentActivity(authorID, comment.ID, postID, models.ActivityCreate, content, s.postTitleForSnapshot(postID))

	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "comment", Action: "create", ID: comment.ID})
	return comment, nil
}

// UpdateComment overwrites a comment's content. Only the author may edit.
func (s *Store) UpdateComment(ctx context.Context, commentID, content string) (models.Comment, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.comments {
		if s.comments[i].ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.Comment{}, models.NewCommentNotFoundError()
	}
	if s.current == nil || s.comments[idx].AuthorID != s.current.ID {
		s.mu.Unlock()
		return models.Comment{}, models.NewForbiddenError("edit your own comments")
	}

	now := s.now()
	postID := s.comments[idx].PostID
	s.comments[idx].Content = content
	s.comments[idx].UpdatedAt = &now
	s.appendCommentActivity(s.current.ID, commentID, postID, models.ActivityUpdate, content, s.postTitleForSnapshot(postID))

	updated := s.comments[idx]
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "comment", Action: "update", ID: commentID})
	return updated, nil
}

// DeleteComment removes a comment, logging a delete activity with the
// comment's own content. Only the author may delete.
func (s *Store) DeleteComment(ctx context.Context, commentID string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.comments {
		if s.comments[i].ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewCommentNotFoundError()
	}
	if s.current == nil || s.comments[idx].AuthorID != s.current.ID {
		s.mu.Unlock()
		return models.NewForbiddenError("delete your own comments")
	}

	comment := s.comments[idx]
	s.appendCommentActivity(s.current.ID, commentID, comment.PostID, models.ActivityDelete, comment.Content, s.postTitleForSnapshot(comment.PostID))
	s.comments = append(s.comments[:idx], s.comments[idx+1:]...)

	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "comment", Action: "delete", ID: commentID})
	return nil
}
