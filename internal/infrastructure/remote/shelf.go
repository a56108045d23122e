package remote

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf"
)

// entry fetches the shelf relation for one (user, book) pair.
func (c *Client) entry(ctx context.Context, userID string, bookID int) (*shelfDTO, error) {
	path := "/shelf/user/" + userID + "/book/" + strconv.Itoa(bookID)

	var d shelfDTO
	if err := c.get(ctx, path, &d); err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, shelf.ErrEntryNotFound
		}
		return nil, fmt.Errorf("shelf entry: %w", err)
	}
	return &d, nil
}

// Status reports the stored read mark; missing relation means unread.
func (c *Client) Status(ctx context.Context, userID string, bookID int) (bool, error) {
	d, err := c.entry(ctx, userID, bookID)
	if err != nil {
		return false, err
	}
	return d.StatusRead, nil
}

// Statuses bulk-loads the user's shelf.
func (c *Client) Statuses(ctx context.Context, userID string) (map[int]bool, error) {
	var entries []shelfDTO
	if err := c.get(ctx, "/shelf/user/"+userID+"/", &entries); err != nil {
		return nil, fmt.Errorf("user shelf: %w", err)
	}

	out := make(map[int]bool, len(entries))
	for _, e := range entries {
		out[e.BookID] = e.StatusRead
	}
	return out, nil
}

// SetStatus updates the existing relation or creates one.
func (c *Client) SetStatus(ctx context.Context, userID string, bookID int, read bool) error {
	uid, err := strconv.Atoi(userID)
	if err != nil {
		return fmt.Errorf("bad user id %q: %w", userID, err)
	}

	existing, err := c.entry(ctx, userID, bookID)
	switch {
	case err == nil:
		body := shelfUpdateDTO{StatusRead: read}
		if err := c.put(ctx, "/shelf/"+strconv.Itoa(existing.ID), body, nil); err != nil {
			return fmt.Errorf("update shelf: %w", err)
		}
		return nil
	case err == shelf.ErrEntryNotFound:
		body := shelfCreateDTO{BookID: bookID, UserID: uid, StatusRead: read}
		if err := c.post(ctx, "/shelf/", body, nil); err != nil {
			return fmt.Errorf("create shelf entry: %w", err)
		}
		return nil
	default:
		return err
	}
}
