package models

import (
	"slices"
	"time"
)

type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	AuthorID  string     `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	// Likes holds the ids of users who liked the post, each at most once.
	Likes []string `json:"likes"`
}

// LikedBy reports whether userID is in the post's likes set.
func (p *Post) LikedBy(userID string) bool {
	return slices.Contains(p.Likes, userID)
}

// PostWithAuthor is a Post joined with its resolved author and live comment
// count. Computed at query time, never persisted.
type PostWithAuthor struct {
	Post
	Author       AuthUser `json:"author"`
	CommentCount int      `json:"commentCount"`
}
