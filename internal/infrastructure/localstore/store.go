// Package localstore keeps users, comment threads and read marks in a
// single JSON file, emulating the browser-storage variant of the UI.
// Books always come from the embedded demonstration dataset.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/catalog"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/shelf"
	"github.com/Dan4i4ek31/Final-Project-2.0/internal/domains/user"
)

const bcryptCost = 10

// defaultRoles stands in for the backend's roles table.
var defaultRoles = []user.Role{
	{ID: 1, Name: "Читатель"},
	{ID: 2, Name: "Библиотекарь"},
	{ID: 3, Name: "Администратор"},
}

type storedUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	RoleID       int    `json:"role_id"`
}

type storedComment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"comment_text"`
	CreatedAt time.Time `json:"created_at"`
}

// fileState is the on-disk shape. Map keys are strings because JSON
// object keys always are.
type fileState struct {
	Users    []storedUser               `json:"users"`
	Comments map[string][]storedComment `json:"comments"`
	Reads    map[string]map[string]bool `json:"reads"`
}

// Store implements the three repositories over one state file. Writes
// rewrite the file atomically (tmp + rename).
type Store struct {
	path string

	mu  sync.Mutex
	st  fileState
	now func() time.Time
}

// Open loads the state file, creating empty state when it is missing.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		st: fileState{
			Comments: make(map[string][]storedComment),
			Reads:    make(map[string]map[string]bool),
		},
		now: time.Now,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.st); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	if s.st.Comments == nil {
		s.st.Comments = make(map[string][]storedComment)
	}
	if s.st.Reads == nil {
		s.st.Reads = make(map[string]map[string]bool)
	}
	return s, nil
}

// save must be called with the lock held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

// ════════════════════════════════════════════════════════════════
// catalog.Repository
// ════════════════════════════════════════════════════════════════

// LoadCatalog returns the embedded dataset with the stored comment
// threads attached.
func (s *Store) LoadCatalog(context.Context) ([]catalog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := catalog.Seed()
	for i := range books {
		thread := s.st.Comments[strconv.Itoa(books[i].ID)]
		if len(thread) == 0 {
			continue
		}
		cs := make([]catalog.Comment, len(thread))
		for j, c := range thread {
			cs[j] = catalog.Comment{
				ID:        c.ID,
				AuthorID:  c.UserID,
				Author:    c.UserName,
				Text:      c.Text,
				CreatedAt: c.CreatedAt,
			}
		}
		books[i].Comments = cs
	}
	return books, nil
}

// AddComment appends to the stored thread of one book.
func (s *Store) AddComment(_ context.Context, bookID int, userID, userName, text string) (catalog.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := storedComment{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: s.now(),
	}

	key := strconv.Itoa(bookID)
	s.st.Comments[key] = append(s.st.Comments[key], c)
	if err := s.save(); err != nil {
		// roll back the in-memory append so state and file agree
		s.st.Comments[key] = s.st.Comments[key][:len(s.st.Comments[key])-1]
		return catalog.Comment{}, err
	}

	return catalog.Comment{
		ID:        c.ID,
		AuthorID:  c.UserID,
		Author:    c.UserName,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}, nil
}

// ════════════════════════════════════════════════════════════════
// user.Repository
// ════════════════════════════════════════════════════════════════

func (s *Store) Register(_ context.Context, req user.RegisterRequest) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.st.Users {
		if u.Email == req.Email {
			return nil, user.ErrDuplicateUser
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	stored := storedUser{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
	}
	s.st.Users = append(s.st.Users, stored)
	if err := s.save(); err != nil {
		s.st.Users = s.st.Users[:len(s.st.Users)-1]
		return nil, err
	}

	return &user.User{ID: stored.ID, Name: stored.Name, Email: stored.Email}, nil
}

func (s *Store) Login(_ context.Context, email, password string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.st.Users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, user.ErrInvalidCredentials
		}
		return &user.User{ID: u.ID, Name: u.Name, Email: u.Email}, nil
	}
	return nil, user.ErrInvalidCredentials
}

func (s *Store) GetUser(_ context.Context, id string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.st.Users {
		if u.ID == id {
			return &user.User{ID: u.ID, Name: u.Name, Email: u.Email}, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *Store) ListRoles(context.Context) ([]user.Role, error) {
	out := make([]user.Role, len(defaultRoles))
	copy(out, defaultRoles)
	return out, nil
}

// ════════════════════════════════════════════════════════════════
// shelf.Repository
// ════════════════════════════════════════════════════════════════

func (s *Store) Status(_ context.Context, userID string, bookID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks, ok := s.st.Reads[userID]
	if !ok {
		return false, shelf.ErrEntryNotFound
	}
	read, ok := marks[strconv.Itoa(bookID)]
	if !ok {
		return false, shelf.ErrEntryNotFound
	}
	return read, nil
}

func (s *Store) Statuses(_ context.Context, userID string) (map[int]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]bool)
	for key, read := range s.st.Reads[userID] {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out[id] = read
	}
	return out, nil
}

func (s *Store) SetStatus(_ context.Context, userID string, bookID int, read bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks := s.st.Reads[userID]
	if marks == nil {
		marks = make(map[string]bool)
		s.st.Reads[userID] = marks
	}

	key := strconv.Itoa(bookID)
	prev, had := marks[key]
	marks[key] = read
	if err := s.save(); err != nil {
		if had {
			marks[key] = prev
		} else {
			delete(marks, key)
		}
		return err
	}
	return nil
}
