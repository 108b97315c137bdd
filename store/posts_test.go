package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofeed/models"
)

func TestCreatePostUnauthenticated(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreatePost(ctx(), "T", "C", "", "whoever")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotAuthenticated, models.CodeOf(err))

	_, posts, _ := s.Counts()
	assert.Zero(t, posts, "failed create must not mutate the store")
	assert.Empty(t, s.UserPostActivities("whoever"))
}

func TestCreatePostRoundTrip(t *testing.T) {
	s, adapter := newTestStore(t)
	u, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	created, err := s.CreatePost(ctx(), "T", "C", "", u.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", created.Title)
	assert.Equal(t, u.ID, created.Author.ID)
	assert.Zero(t, created.CommentCount)
	assert.Empty(t, created.Likes)

	// Reload from persistence into a fresh store.
	reopened := New(adapter, nil)
	reopened.Load(ctx())

	got, err := reopened.GetPost(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "C", got.Content)
	assert.Equal(t, u.ID, got.Author.ID)
	assert.Equal(t, u.DisplayName, got.Author.DisplayName)
	assert.Zero(t, got.CommentCount)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt), "timestamps survive serialization")
}

func TestGetPostNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.GetPost("missing")
	require.Error(t, err)
	assert.Equal(t, models.CodePostNotFound, models.CodeOf(err))
}

func TestListPostsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreatePost(ctx(), title, "body", "", u.ID)
		require.NoError(t, err)
	}

	posts := s.ListPosts()
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)
	assert.Equal(t, "first", posts[2].Title)
}

func TestListPostsByAuthor(t *testing.T) {
	s, _ := newTestStore(t)
	alice, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	_, err = s.CreatePost(ctx(), "from alice", "body", "", alice.ID)
	require.NoError(t, err)

	bob, err := s.Register(ctx(), "Bob", "bob@example.com", "secret", "")
	require.NoError(t, err)
	_, err = s.CreatePost(ctx(), "from bob", "body", "", bob.ID)
	require.NoError(t, err)

	posts := s.ListPostsByAuthor(alice.ID)
	require.Len(t, posts, 1)
	assert.Equal(t, "from alice", posts[0].Title)
}

func TestMissingAuthorGetsPlaceholder(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	// Dangling authorId: the post outlives the reference.
	post, err := s.CreatePost(ctx(), "T", "C", "", u.ID)
	require.NoError(t, err)
	s.mu.Lock()
	s.posts[0].AuthorID = "ghost"
	s.mu.Unlock()

	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UnknownUserID, got.Author.ID)
	assert.Equal(t, "Unknown User", got.Author.DisplayName)
}

func TestUpdatePost(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	post, err := s.CreatePost(ctx(), "T", "C", "", u.ID)
	require.NoError(t, err)

	updated, err := s.UpdatePost(ctx(), post.ID, "T2", "C2", "")
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	require.NotNil(t, updated.UpdatedAt)

	acts := s.UserPostActivities(u.ID)
	require.Len(t, acts, 2)
	assert.Equal(t, models.ActivityUpdate, acts[0].Type, "newest activity first")
	assert.Equal(t, "T2", acts[0].PostTitle)
}

func TestUpdatePostByNonAuthorForbidden(t *testing.T) {
	s, _ := newTestStore(t)
	alice, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	post, err := s.CreatePost(ctx(), "T", "C", "", alice.ID)
	require.NoError(t, err)

	bob, err := s.Register(ctx(), "Bob", "bob@example.com", "secret", "")
	require.NoError(t, err)

	_, err = s.UpdatePost(ctx(), post.ID, "hijack", "hijack", "")
	require.Error(t, err)
	assert.Equal(t, models.CodeForbidden, models.CodeOf(err))

	got, err := s.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title, "forbidden update must not mutate")
	assert.Nil(t, got.UpdatedAt)
	assert.Empty(t, s.UserPostActivities(bob.ID), "no activity for a rejected mutation")
}

func TestUpdatePostUnauthenticatedForbidden(t *testing.T) {
	s, _ := newTestStore(t)
	alice, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	post, err := s.CreatePost(ctx(), "T", "C", "", alice.ID)
	require.NoError(t, err)
	s.Logout(ctx())

	_, err = s.UpdatePost(ctx(), post.ID, "T2", "C2", "")
	require.Error(t, err)
	assert.Equal(t, models.CodeForbidden, models.CodeOf(err))
}

func TestDeletePostCascadesComments(t *testing.T) {
	s, _ := newTestStore(t)
	u, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	doomed, err := s.CreatePost(ctx(), "doomed", "to be deleted", "", u.ID)
	require.NoError(t, err)
	kept, err := s.CreatePost(ctx(), "kept", "stays", "", u.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.AddComment(ctx(), doomed.ID, "on doomed", u.ID)
		require.NoError(t, err)
	}
	_, err = s.AddComment(ctx(), kept.ID, "on kept", u.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(ctx(), doomed.ID))

	_, posts, comments := s.Counts()
	assert.Equal(t, 1, posts)
	assert.Equal(t, 1, comments, "only the surviving post's comment remains")
	assert.Empty(t, s.ListComments(doomed.ID))

	acts := s.UserPostActivities(u.ID)
	require.NotEmpty(t, acts)
	assert.Equal(t, models.ActivityDelete, acts[0].Type)
	assert.Equal(t, "doomed", acts[0].PostTitle, "delete activity captures the pre-deletion title")
	assert.Equal(t, "to be deleted", acts[0].PostContent)

	_, err = s.GetPost(doomed.ID)
	assert.Equal(t, models.CodePostNotFound, models.CodeOf(err))
}

func TestDeletePostByNonAuthorForbidden(t *testing.T) {
	s, _ := newTestStore(t)
	alice, err := s.Register(ctx(), "Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	post, err := s.CreatePost(ctx(), "T", "C", "", alice.ID)
	require.NoError(t, err)

	_, err = s.Register(ctx(), "Bob", "bob@example.com", "secret", "")
	require.NoError(t, err)

	err = s.DeletePost(ctx(), post.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeForbidden, models.CodeOf(err))

	_, posts, _ := s.Counts()
	assert.Equal(t, 1, posts)
}
