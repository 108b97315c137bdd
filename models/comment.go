package models

import "time"

// Comment represents a comment on a post. Comments live and die with their
// parent post: deleting the post removes them in the same mutation.
type Comment struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	PostID    string     `json:"postId"`
	AuthorID  string     `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CommentWithAuthor is a Comment joined with its resolved author.
type CommentWithAuthor struct {
	Comment
	Author AuthUser `json:"author"`
}
