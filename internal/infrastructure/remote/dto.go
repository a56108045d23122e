package remote

import (
	"strconv"
	"time"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/catalog"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
)

// Wire shapes of the backend. Field names follow its JSON exactly.

type bookDTO struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	AuthorID    int     `json:"author_id"`
	GenreID     int     `json:"genre_id"`
	Year        int     `json:"year"`
}

type authorDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type commentDTO struct {
	ID          int    `json:"id"`
	BookID      int    `json:"book_id"`
	UserID      int    `json:"user_id"`
	CommentText string `json:"comment_text"`
	CreatedAt   string `json:"created_at"`
}

type commentCreateDTO struct {
	BookID      int    `json:"book_id"`
	UserID      int    `json:"user_id"`
	CommentText string `json:"comment_text"`
}

type userDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}

type userCreateDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

type loginResponseDTO struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
	Email   string `json:"email"`
}

type roleDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type shelfDTO struct {
	ID         int  `json:"id"`
	BookID     int  `json:"book_id"`
	UserID     int  `json:"user_id"`
	StatusRead bool `json:"status_read"`
}

type shelfCreateDTO struct {
	BookID     int  `json:"book_id"`
	UserID     int  `json:"user_id"`
	StatusRead bool `json:"status_read"`
}

type shelfUpdateDTO struct {
	StatusRead bool `json:"status_read"`
}

func (d userDTO) toUser() *user.User {
	return &user.User{
		ID:    strconv.Itoa(d.ID),
		Name:  d.Name,
		Email: d.Email,
	}
}

func (d commentDTO) toComment(userNames map[int]string) catalog.Comment {
	name, ok := userNames[d.UserID]
	if !ok {
		name = "Пользователь " + strconv.Itoa(d.UserID)
	}
	return catalog.Comment{
		ID:        strconv.Itoa(d.ID),
		AuthorID:  strconv.Itoa(d.UserID),
		Author:    name,
		Text:      d.CommentText,
		CreatedAt: parseTimestamp(d.CreatedAt),
	}
}

// parseTimestamp accepts the backend's ISO format with or without zone.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
