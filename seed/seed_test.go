package seed

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofeed/storage"
	"echofeed/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	kv := storage.NewRedisKV(storage.NewRedisClient(mr.Addr()))
	t.Cleanup(func() { _ = kv.Close() })
	return store.New(storage.NewAdapter(kv, nil), nil)
}

func TestRunPopulatesEmptyStore(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, nil))

	users, posts, comments := st.Counts()
	assert.Equal(t, len(sampleUsers), users)
	assert.Equal(t, len(samplePosts), posts)
	assert.Equal(t, len(sampleComments), comments)
	assert.Nil(t, st.CurrentUser(), "seeding leaves the store signed out")

	feed := st.ListPosts()
	require.NotEmpty(t, feed)
	for _, p := range feed {
		assert.NotEqual(t, "Unknown User", p.Author.DisplayName, "seeded posts have real authors")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, st, nil))
	usersBefore, postsBefore, _ := st.Counts()

	require.NoError(t, Run(ctx, st, nil))
	usersAfter, postsAfter, _ := st.Counts()
	assert.Equal(t, usersBefore, usersAfter)
	assert.Equal(t, postsBefore, postsAfter)
}

func TestSeededCredentialsWork(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, Run(ctx, st, nil))

	user, err := st.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.DisplayName)
}
