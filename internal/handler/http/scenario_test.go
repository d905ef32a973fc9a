// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/service"
	"github.com/moonburnt/the-tempest/internal/store"
	"github.com/moonburnt/the-tempest/internal/utils"
	"github.com/moonburnt/the-tempest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUsers is an in-memory store.UserRepository.
type memoryUsers struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int64
}

func (m *memoryUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Login]; ok {
		return models.User{}, store.ErrLoginAlreadyExists
	}
	m.nextID++
	user.UserID = m.nextID
	m.users[user.Login] = user
	return user, nil
}

func (m *memoryUsers) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[login]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (m *memoryUsers) TouchLastAccess(_ context.Context, userID int64, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for login, user := range m.users {
		if user.UserID == userID {
			user.LastAccessAt = now
			m.users[login] = user
			return nil
		}
	}
	return store.ErrNoUserWasFound
}

func (m *memoryUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

// memoryFiles is an in-memory store.FileRepository.
type memoryFiles struct {
	mu      sync.Mutex
	records []models.FileRecord
}

func (m *memoryFiles) Insert(_ context.Context, record models.FileRecord) (models.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.Location == record.Location && r.StoredName == record.StoredName {
			return models.FileRecord{}, store.ErrDuplicateStoredName
		}
	}
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, record)
	return record, nil
}

func (m *memoryFiles) TouchAccess(_ context.Context, storedName, location string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		r := &m.records[i]
		if r.Location == location && r.StoredName == storedName {
			if r.LastAccessedAt.Before(now) {
				r.LastAccessedAt = now
			}
			return nil
		}
	}
	return store.ErrFileRecordNotFound
}

func (m *memoryFiles) ListByUploader(_ context.Context, login string) ([]models.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.FileRecord
	for _, r := range m.records {
		if r.UploaderLogin == login {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryFiles) sorted(limit uint64, by func(models.FileRecord) time.Time) []models.FileRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := slices.Clone(m.records)
	slices.SortStableFunc(out, func(a, b models.FileRecord) int { return by(a).Compare(by(b)) })
	if uint64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func (m *memoryFiles) ListOldestUploaded(_ context.Context, limit uint64) ([]models.FileRecord, error) {
	return m.sorted(limit, func(r models.FileRecord) time.Time { return r.UploadedAt }), nil
}

func (m *memoryFiles) ListLeastRecentlyAccessed(_ context.Context, limit uint64) ([]models.FileRecord, error) {
	return m.sorted(limit, func(r models.FileRecord) time.Time { return r.LastAccessedAt }), nil
}

func (m *memoryFiles) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.records)), nil
}

// newTestServer serves the full router over real services, an in-memory
// metadata store and a disk storage rooted in a temporary directory. opts
// adjust the configuration before the services are built.
func newTestServer(t *testing.T, opts ...func(*config.StructuredConfig)) (*httptest.Server, string) {
	t.Helper()

	root := filepath.Join(t.TempDir(), "uploads")
	disk, err := store.NewDiskStorage(root, logger.Nop())
	require.NoError(t, err)

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "the-tempest",
			TokenDuration: time.Hour,
			BcryptCost:    bcrypt.MinCost,
		},
		Auth: config.Auth{MinLoginLength: 6, MaxLoginLength: 15, MinPasswordLength: 6, MaxPasswordLength: 64},
		Storage: config.Storage{
			Files: config.Files{UploadDir: root, AllowedExtensions: []string{".txt", ".png", ".jpg", ".jpeg", ".gif"}},
		},
		Server: config.Server{MaxUploadSize: 4 << 20, RequestTimeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	storages := &store.Storages{
		UserRepository: &memoryUsers{users: make(map[string]models.User)},
		FileRepository: &memoryFiles{},
		FileStorage:    disk,
	}
	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)

	server := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(server.Close)

	return server, root
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Message
}

func TestRoundTrip_UploadedBytesComeBackUnchanged(t *testing.T) {
	server, _ := newTestServer(t)
	client := utils.NewHTTPClient(server.URL)

	payload := make([]byte, 256<<10)
	_, err := rand.Read(payload)
	require.NoError(t, err)

	resp, err := client.R().SetFileReader("file", "blob.png", bytes.NewReader(payload)).Post("/upload")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	link := resp.Header().Get("Location")
	require.NotEmpty(t, link)

	resp, err = client.R().Get(link)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.True(t, bytes.Equal(payload, resp.Body()))
}

// allowFiveCharLogins lowers the login bound so that "alice" registers.
func allowFiveCharLogins(cfg *config.StructuredConfig) {
	cfg.Auth.MinLoginLength = 5
}

func TestScenario_DefaultBoundsRejectShortLogin(t *testing.T) {
	server, _ := newTestServer(t)
	client := utils.NewHTTPClient(server.URL)

	resp, err := client.R().SetFormData(map[string]string{"login": "alice", "password": "secret1"}).Post("/auth/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "login length is out of bounds", errorMessage(t, resp.Body()))
}

func TestScenario_RegisterLoginUploadDownload(t *testing.T) {
	server, root := newTestServer(t, allowFiveCharLogins)
	client := utils.NewHTTPClient(server.URL)
	creds := map[string]string{"login": "alice", "password": "secret1"}

	// register
	resp, err := client.R().SetFormData(creds).Post("/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())
	require.Equal(t, "/", resp.Header().Get("Location"))

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"authenticated":false}`, string(resp.Body()))

	resp, err = client.R().SetFormData(creds).Post("/auth/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	// login
	resp, err = client.R().SetFormData(map[string]string{"login": "alice", "password": "wrong-pass"}).Post("/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, "invalid password", errorMessage(t, resp.Body()))

	resp, err = client.R().SetFormData(creds).Post("/auth/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())
	require.Equal(t, "/my_uploads", resp.Header().Get("Location"))

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	assert.JSONEq(t, `{"authenticated":true,"login":"alice"}`, string(resp.Body()))

	resp, err = client.R().Get("/my_uploads")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"files":[],"length":0}`, string(resp.Body()))

	// authenticated upload lands in the user directory
	resp, err = client.R().SetFileReader("file", "photo.jpg", bytes.NewReader([]byte("jpg bytes"))).Post("/upload")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	userLink := resp.Header().Get("Location")
	assert.Regexp(t, regexp.MustCompile(`^/uploads/alice/photo-[0-9a-f-]{36}\.jpg$`), userLink)
	_, err = os.Stat(filepath.Join(root, "alice", filepath.Base(userLink)))
	require.NoError(t, err)

	resp, err = client.R().Get(userLink)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "jpg bytes", string(resp.Body()))

	resp, err = client.R().Get("/my_uploads")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	var list models.UploadList
	require.NoError(t, json.Unmarshal(resp.Body(), &list))
	require.Equal(t, 1, list.Length)
	assert.Equal(t, "photo.jpg", list.Files[0].OriginalName)
	assert.Equal(t, "alice", list.Files[0].UploaderLogin)
	assert.Equal(t, "alice", list.Files[0].Location)

	// logout drops the session
	resp, err = client.R().Get("/auth/logout")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())
	require.Equal(t, "/", resp.Header().Get("Location"))

	resp, err = client.R().Get("/my_uploads")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	// anonymous upload lands in the root
	resp, err = client.R().SetFileReader("file", "my notes.TXT", bytes.NewReader([]byte("hello"))).Post("/upload")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	anonLink := resp.Header().Get("Location")
	assert.Regexp(t, regexp.MustCompile(`^/uploads/my_notes-[0-9a-f-]{36}\.txt$`), anonLink)
	_, err = os.Stat(filepath.Join(root, filepath.Base(anonLink)))
	require.NoError(t, err)

	// rejected extension writes nothing
	entries, err := os.ReadDir(root)
	require.NoError(t, err)

	resp, err = client.R().SetFileReader("file", "tool.exe", bytes.NewReader([]byte("MZ"))).Post("/upload")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Equal(t, "invalid file type", errorMessage(t, resp.Body()))

	after, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, after, len(entries))

	// unknown file
	resp, err = client.R().Get("/uploads/missing.txt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	// other user's files stay downloadable without a session
	resp, err = client.R().Post(userLink)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().Get("/api/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"users":1,"files":2}`, string(resp.Body()))
}
