package remote

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/catalog"
	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/logger"
)

const catalogCacheKey = "catalog:books"

// LoadCatalog aggregates books, lookup tables and comment threads into
// enriched book records. Name resolution happens here, once per load,
// never per render.
func (c *Client) LoadCatalog(ctx context.Context) ([]catalog.Book, error) {
	var cached []catalog.Book
	if found, err := c.cache.Get(ctx, catalogCacheKey, &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		logger.Error("catalog cache get", err)
	}

	var (
		books    []bookDTO
		authors  []authorDTO
		genres   []genreDTO
		comments []commentDTO
		users    []userDTO
	)

	if err := c.get(ctx, "/books/", &books); err != nil {
		if statusCode(err) == 0 {
			return nil, fmt.Errorf("%w: %v", catalog.ErrUnavailable, err)
		}
		return nil, fmt.Errorf("load books: %w", err)
	}
	if err := c.get(ctx, "/authors/", &authors); err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	if err := c.get(ctx, "/genres/", &genres); err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	if err := c.get(ctx, "/book-comments/", &comments); err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	// Comment author names come from the users list; losing them only
	// degrades the display, so this call is allowed to fail.
	if err := c.get(ctx, "/users/", &users); err != nil {
		logger.Error("load users for comment names", err)
	}

	authorNames := make(map[int]string, len(authors))
	for _, a := range authors {
		authorNames[a.ID] = a.Name
	}
	genreNames := make(map[int]string, len(genres))
	for _, g := range genres {
		genreNames[g.ID] = g.Name
	}
	userNames := make(map[int]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}

	sort.SliceStable(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	threads := make(map[int][]catalog.Comment)
	for _, cm := range comments {
		threads[cm.BookID] = append(threads[cm.BookID], cm.toComment(userNames))
	}

	out := make([]catalog.Book, len(books))
	for i, b := range books {
		book := catalog.Book{
			ID:       b.ID,
			Title:    b.Title,
			Author:   authorNames[b.AuthorID],
			Year:     b.Year,
			Genre:    genreNames[b.GenreID],
			Comments: threads[b.ID],
		}
		if b.Description != nil {
			book.Description = *b.Description
		}
		if book.Author == "" {
			book.Author = "Автор #" + strconv.Itoa(b.AuthorID)
		}
		out[i] = book
	}

	if err := c.cache.Set(ctx, catalogCacheKey, out, c.cacheTTL); err != nil {
		logger.Error("catalog cache set", err)
	}
	return out, nil
}

// AddComment posts one comment and returns it as stored. The catalog
// cache is dropped so the next load sees the new thread entry.
func (c *Client) AddComment(ctx context.Context, bookID int, userID, userName, text string) (catalog.Comment, error) {
	uid, err := strconv.Atoi(userID)
	if err != nil {
		return catalog.Comment{}, fmt.Errorf("bad user id %q: %w", userID, err)
	}

	var created commentDTO
	body := commentCreateDTO{BookID: bookID, UserID: uid, CommentText: text}
	if err := c.post(ctx, "/book-comments/", body, &created); err != nil {
		return catalog.Comment{}, fmt.Errorf("add comment: %w", err)
	}

	if err := c.cache.Delete(ctx, catalogCacheKey); err != nil {
		logger.Error("catalog cache invalidate", err)
	}

	cm := created.toComment(map[int]string{uid: userName})
	return cm, nil
}
