// Package seed populates a first-run store with sample users, posts, and
// comments so the feed has something to show.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"echofeed/models"
	"echofeed/store"
)

type sampleUser struct {
	displayName string
	email       string
	password    string
	avatarURL   string
}

var sampleUsers = []sampleUser{
	{
		displayName: "John Doe",
		email:       "john@example.com",
		password:    "password123",
		avatarURL:   "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=300",
	},
	{
		displayName: "Jane Smith",
		email:       "jane@example.com",
		password:    "password123",
		avatarURL:   "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=300",
	},
}

var samplePosts = []struct {
	title   string
	content string
}{
	{
		title:   "Hello from the feed",
		content: "First post! Trying out the new feed. Comments and likes welcome.",
	},
	{
		title:   "Weekend reading list",
		content: "Three articles on storage engines that are worth your time. Links in the comments.",
	},
	{
		title:   "Show and tell",
		content: "Built a tiny terminal client for this feed over the weekend. It is rough but it works.",
	},
}

var sampleComments = []string{
	"Nice one, welcome!",
	"Looking forward to the links.",
	"Ship it.",
}

// Run registers the sample users and writes a few posts and comments through
// the store, so activities and persistence stay consistent with normal use.
// It is a no-op when users already exist, and leaves the store signed out.
func Run(ctx context.Context, st *store.Store, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if users, _, _ := st.Counts(); users > 0 {
		logger.Info("seed skipped, store not empty", zap.Int("users", users))
		return nil
	}

	var authors []models.AuthUser
	for _, su := range sampleUsers {
		// Register signs the new user in, which is what lets the
		// following writes pass the session check.
		u, err := st.Register(ctx, su.displayName, su.email, su.password, su.avatarURL)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", su.email, err)
		}
		authors = append(authors, u)
	}

	var postIDs []string
	for i, sp := range samplePosts {
		author := authors[i%len(authors)]
		if _, err := st.Login(ctx, sampleUsers[i%len(authors)].email, sampleUsers[i%len(authors)].password); err != nil {
			return fmt.Errorf("seed login: %w", err)
		}
		p, err := st.CreatePost(ctx, sp.title, sp.content, "", author.ID)
		if err != nil {
			return fmt.Errorf("seed post %q: %w", sp.title, err)
		}
		postIDs = append(postIDs, p.ID)
	}

	for i, content := range sampleComments {
		commenter := authors[(i+1)%len(authors)]
		if _, err := st.Login(ctx, sampleUsers[(i+1)%len(authors)].email, sampleUsers[(i+1)%len(authors)].password); err != nil {
			return fmt.Errorf("seed login: %w", err)
		}
		if _, err := st.AddComment(ctx, postIDs[i%len(postIDs)], content, commenter.ID); err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
		if err := st.LikePost(ctx, postIDs[i%len(postIDs)], commenter.ID); err != nil && models.CodeOf(err) != models.CodeAlreadyLiked {
			return fmt.Errorf("seed like: %w", err)
		}
	}

	st.Logout(ctx)

	users, posts, comments := st.Counts()
	logger.Info("seed complete",
		zap.Int("users", users),
		zap.Int("posts", posts),
		zap.Int("comments", comments),
	)
	return nil
}
