package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf/service"
)

type key struct {
	user string
	book int
}

// fakeShelf is an in-memory shelf.Repository.
type fakeShelf struct {
	marks   map[key]bool
	failSet error
}

func newFakeShelf() *fakeShelf {
	return &fakeShelf{marks: make(map[key]bool)}
}

func (f *fakeShelf) Status(_ context.Context, userID string, bookID int) (bool, error) {
	read, ok := f.marks[key{userID, bookID}]
	if !ok {
		return false, shelf.ErrEntryNotFound
	}
	return read, nil
}

func (f *fakeShelf) Statuses(_ context.Context, userID string) (map[int]bool, error) {
	out := make(map[int]bool)
	for k, read := range f.marks {
		if k.user == userID {
			out[k.book] = read
		}
	}
	return out, nil
}

func (f *fakeShelf) SetStatus(_ context.Context, userID string, bookID int, read bool) error {
	if f.failSet != nil {
		return f.failSet
	}
	f.marks[key{userID, bookID}] = read
	return nil
}

func TestStatus_MissingEntryMeansUnread(t *testing.T) {
	svc := service.NewService(newFakeShelf())

	read, err := svc.Status(context.Background(), "u-1", 7)
	require.NoError(t, err)
	assert.False(t, read)
}

func TestToggle_RoundTrip(t *testing.T) {
	svc := service.NewService(newFakeShelf())
	ctx := context.Background()

	read, err := svc.Toggle(ctx, "u-1", 7)
	require.NoError(t, err)
	assert.True(t, read)

	read, err = svc.Toggle(ctx, "u-1", 7)
	require.NoError(t, err)
	assert.False(t, read)

	// Back where we started, entry present with read=false.
	read, err = svc.Status(ctx, "u-1", 7)
	require.NoError(t, err)
	assert.False(t, read)
}

func TestToggle_PersistFailureKeepsState(t *testing.T) {
	repo := newFakeShelf()
	repo.failSet = errors.New("disk full")
	svc := service.NewService(repo)

	read, err := svc.Toggle(context.Background(), "u-1", 7)
	assert.Error(t, err)
	assert.False(t, read)
	assert.Empty(t, repo.marks)
}

func TestStatuses(t *testing.T) {
	repo := newFakeShelf()
	repo.marks[key{"u-1", 1}] = true
	repo.marks[key{"u-1", 2}] = false
	repo.marks[key{"u-2", 3}] = true
	svc := service.NewService(repo)

	marks, err := svc.Statuses(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: false}, marks)
}
