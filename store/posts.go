package store

import (
	"context"
	"sort"

	"echofeed/models"
)

// joinPost attaches the resolved author and live comment count. Called with
// s.mu held.
func (s *Store) joinPost(p models.Post) models.PostWithAuthor {
	count := 0
	for _, c := range s.comments {
		if c.PostID == p.ID {
			count++
		}
	}
	return models.PostWithAuthor{
		Post:         p,
		Author:       s.resolveAuthor(p.AuthorID),
		CommentCount: count,
	}
}

// ListPosts returns every post joined with author and comment count, newest
// first.
func (s *Store) ListPosts() []models.PostWithAuthor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PostWithAuthor, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, s.joinPost(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ListPostsByAuthor returns one author's posts, newest first.
func (s *Store) ListPostsByAuthor(userID string) []models.PostWithAuthor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.PostWithAuthor
	for _, p := range s.posts {
		if p.AuthorID == userID {
			out = append(out, s.joinPost(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GetPost returns a single joined post or PostNotFound.
func (s *Store) GetPost(id string) (models.PostWithAuthor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return s.joinPost(p), nil
		}
	}
	return models.PostWithAuthor{}, models.NewPostNotFoundError()
}

// CreatePost creates a post for the signed-in user with an empty likes set
// and logs a create activity.
func (s *Store) CreatePost(ctx context.Context, title, content, imageURL, authorID string) (models.PostWithAuthor, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return models.PostWithAuthor{}, models.NewNotAuthenticatedError("create a post")
	}

	post := models.Post{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		AuthorID:  authorID,
		CreatedAt: s.now(),
		Likes:     []string{},
	}
	s.posts = append(s.posts, post)
	s.appendPostActivity(authorID, post.ID, models.ActivityCreate, title, content)

	joined := s.joinPost(post)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "post", Action: "create", ID: post.ID})
	return joined, nil
}

// UpdatePost overwrites a post's mutable fields. Only the author may edit.
func (s *Store) UpdatePost(ctx context.Context, postID, title, content, imageURL string) (models.Post, error) {
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
		return models.Post{}, models.NewPostNotFoundError()
	}
	if s.current == nil || s.posts[idx].AuthorID != s.current.ID {
		s.mu.Unlock()
		return models.Post{}, models.NewForbiddenError("edit your own posts")
	}

	now := s.now()
	s.posts[idx].Title = title
	s.posts[idx].Content = content
	s.posts[idx].ImageURL = imageURL
	s.posts[idx].UpdatedAt = &now
	s.appendPostActivity(s.current.ID, postID, models.ActivityUpdate, title, content)

	updated := s.posts[idx]
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "post", Action: "update", ID: postID})
	return updated, nil
}

// DeletePost removes a post and every comment referencing it in one
// mutation, logging a delete activity with the pre-deletion title and
// content. Only the author may delete.
func (s *Store) DeletePost(ctx context.Context, postID string) error {
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
	if s.current == nil || s.posts[idx].AuthorID != s.current.ID {
		s.mu.Unlock()
		return models.NewForbiddenError("delete your own posts")
	}

	post := s.posts[idx]
	s.appendPostActivity(s.current.ID, postID, models.ActivityDelete, post.Title, post.Content)

	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	s.posts = append(s.posts[:idx], s.posts[idx+1:]...)

	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "post", Action: "delete", ID: postID})
	return nil
}
