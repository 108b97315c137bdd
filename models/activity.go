package models

import "time"

// ActivityType tags an audit record with the action it captures.
type ActivityType string

const (
	ActivityCreate ActivityType = "create"
	ActivityUpdate ActivityType = "update"
	ActivityDelete ActivityType = "delete"
	ActivityLike   ActivityType = "like"
	ActivityUnlike ActivityType = "unlike"
)

// PostActivity records a post mutation. Activity records are append-only and
// carry a denormalized snapshot of the post text at the time of the action,
// so history stays readable after the post itself changes or disappears.
type PostActivity struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	PostID      string       `json:"postId"`
	Type        ActivityType `json:"type"`
	CreatedAt   time.Time    `json:"createdAt"`
	PostTitle   string       `json:"postTitle"`
	PostContent string       `json:"postContent"`
}

// CommentActivity records a comment mutation with the comment's content and
// the parent post's title at the time of the action.
type CommentActivity struct {
	ID             string       `json:"id"`
	UserID         string       `json:"userId"`
	CommentID      string       `json:"commentId"`
	PostID         string       `json:"postId"`
	Type           ActivityType `json:"type"`
	CreatedAt      time.Time    `json:"createdAt"`
	CommentContent string       `json:"commentContent"`
	PostTitle      string       `json:"postTitle"`
}

// LikeActivity records a like or unlike with the post title and the author's
// display name as they were at the time of the action.
type LikeActivity struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	PostID     string       `json:"postId"`
	Type       ActivityType `json:"type"`
	CreatedAt  time.Time    `json:"createdAt"`
	PostTitle  string       `json:"postTitle"`
	PostAuthor string       `json:"postAuthor"`
}
