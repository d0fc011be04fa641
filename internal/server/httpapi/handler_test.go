package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/ASLawan/alx-files-manager/internal/logging"
	"github.com/ASLawan/alx-files-manager/internal/server/models"
	filesrepo "github.com/ASLawan/alx-files-manager/internal/server/repositories/files"
	"github.com/ASLawan/alx-files-manager/internal/server/services"
	"github.com/ASLawan/alx-files-manager/internal/server/sessions"
	"github.com/ASLawan/alx-files-manager/internal/server/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- in-memory repositories ---

type memUsersRepo struct {
	users []*models.User
}

func (m *memUsersRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, user)
	return user, nil
}

func (m *memUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsersRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsersRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type memFilesRepo struct {
	nodes []*models.FileNode
}

func (m *memFilesRepo) Create(_ context.Context, node *models.FileNode) (*models.FileNode, error) {
	node.ID = primitive.NewObjectID()
	m.nodes = append(m.nodes, node)
	return node, nil
}

func (m *memFilesRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.FileNode, error) {
	for _, n := range m.nodes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memFilesRepo) GetOwned(_ context.Context, id, userID primitive.ObjectID) (*models.FileNode, error) {
	for _, n := range m.nodes {
		if n.ID == id && n.UserID == userID {
			return n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memFilesRepo) List(_ context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]*models.FileNode, error) {
	if page < 0 {
		page = 0
	}
	matched := []*models.FileNode{}
	for _, n := range m.nodes {
		if n.UserID != userID {
			continue
		}
		if (n.ParentID == nil) != (parentID == nil) {
			continue
		}
		if n.ParentID != nil && *n.ParentID != *parentID {
			continue
		}
		matched = append(matched, n)
	}
	start := page * filesrepo.PageSize
	if start >= int64(len(matched)) {
		return []*models.FileNode{}, nil
	}
	end := start + filesrepo.PageSize
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[start:end], nil
}

func (m *memFilesRepo) SetVisibility(_ context.Context, id, userID primitive.ObjectID, isPublic bool) (*models.FileNode, error) {
	for _, n := range m.nodes {
		if n.ID == id && n.UserID == userID {
			n.IsPublic = isPublic
			return n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memFilesRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.nodes)), nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

// --- fixture ---

type apiFixture struct {
	srv *httptest.Server
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	usersRepo := &memUsersRepo{}
	filesRepo := &memFilesRepo{}
	store := sessions.NewMemoryStore()
	blobs := storage.NewDiskStore(t.TempDir())

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	h := NewHandler(
		services.NewUserService(usersRepo, store),
		services.NewFileService(filesRepo, usersRepo, store, blobs),
		services.NewAppService(store, okPinger{}, usersRepo, filesRepo),
		logger,
	)

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)

	return &apiFixture{srv: srv}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, f.srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (f *apiFixture) register(t *testing.T, email, password string) map[string]any {
	t.Helper()
	resp, body := f.do(t, http.MethodPost, "/users", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func (f *apiFixture) connect(t *testing.T, email, password string) string {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, f.srv.URL+"/connect", nil)
	require.NoError(t, err)
	req.SetBasicAuth(email, password)

	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := map[string]string{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out["token"])
	return out["token"]
}

// --- tests ---

func TestPostUsers(t *testing.T) {
	f := newAPIFixture(t)

	user := f.register(t, "bob@dylan.com", "toto1234!")
	assert.Equal(t, "bob@dylan.com", user["email"])
	assert.NotEmpty(t, user["id"])

	resp, body := f.do(t, http.MethodPost, "/users", "", map[string]string{"email": "bob@dylan.com", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Already exist"}`, string(body))

	resp, body = f.do(t, http.MethodPost, "/users", "", map[string]string{"password": "pw"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Missing email"}`, string(body))

	resp, body = f.do(t, http.MethodPost, "/users", "", map[string]string{"email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Missing password"}`, string(body))
}

func TestConnectDisconnectMe(t *testing.T) {
	f := newAPIFixture(t)
	registered := f.register(t, "bob@dylan.com", "toto1234!")

	token := f.connect(t, "bob@dylan.com", "toto1234!")

	resp, body := f.do(t, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, registered["id"], me["id"])
	assert.Equal(t, "bob@dylan.com", me["email"])

	resp, _ = f.do(t, http.MethodGet, "/disconnect", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, string(body))
}

func TestConnect_BadCredentials(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "bob@dylan.com", "toto1234!")

	req, err := http.NewRequest(http.MethodGet, f.srv.URL+"/connect", nil)
	require.NoError(t, err)
	req.SetBasicAuth("bob@dylan.com", "wrong")

	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// No Authorization header at all.
	resp, _ = f.do(t, http.MethodGet, "/connect", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDisconnect_UnknownToken(t *testing.T) {
	f := newAPIFixture(t)

	resp, _ := f.do(t, http.MethodGet, "/disconnect", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = f.do(t, http.MethodGet, "/disconnect", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPostFiles(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "bob@dylan.com", "toto1234!")
	token := f.connect(t, "bob@dylan.com", "toto1234!")

	// Folder at root; parentId sent as the number 0.
	resp, body := f.do(t, http.MethodPost, "/files", token, map[string]any{
		"name": "images", "type": "folder", "parentId": 0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	folder := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &folder))
	assert.Equal(t, float64(0), folder["parentId"])
	assert.NotContains(t, folder, "localPath")

	// File inside the folder; parentId sent as a hex string.
	resp, body = f.do(t, http.MethodPost, "/files", token, map[string]any{
		"name": "a.txt", "type": "file", "parentId": folder["id"], "data": "aGVsbG8=",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	file := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &file))
	assert.Equal(t, folder["id"], file["parentId"])
	assert.NotEmpty(t, file["localPath"])

	tests := []struct {
		name    string
		payload map[string]any
		wantMsg string
	}{
		{"missing name", map[string]any{"type": "file", "data": "eA=="}, "Missing name"},
		{"missing type", map[string]any{"name": "a.txt", "data": "eA=="}, "Missing type"},
		{"missing data", map[string]any{"name": "a.txt", "type": "file"}, "Missing data"},
		{"parent not found", map[string]any{"name": "a.txt", "type": "file", "data": "eA==", "parentId": "64d2f8f80000000000000000"}, "Parent not found"},
		{"parent not a folder", map[string]any{"name": "b.txt", "type": "file", "data": "eA==", "parentId": file["id"]}, "Parent is not a folder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := f.do(t, http.MethodPost, "/files", token, tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantMsg), string(body))
		})
	}

	// No session at all.
	resp, _ = f.do(t, http.MethodPost, "/files", "", map[string]any{"name": "x", "type": "folder"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetFilesIndex_Pagination(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "bob@dylan.com", "toto1234!")
	token := f.connect(t, "bob@dylan.com", "toto1234!")

	for i := 0; i < 25; i++ {
		resp, body := f.do(t, http.MethodPost, "/files", token, map[string]any{
			"name": fmt.Sprintf("f%02d.txt", i), "type": "file", "data": "eA==",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := f.do(t, http.MethodGet, "/files?page=0", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page0 []map[string]any
	require.NoError(t, json.Unmarshal(body, &page0))
	assert.Len(t, page0, 20)

	resp, body = f.do(t, http.MethodGet, "/files?page=1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page1 []map[string]any
	require.NoError(t, json.Unmarshal(body, &page1))
	assert.Len(t, page1, 5)

	seen := map[any]bool{}
	for _, n := range page0 {
		seen[n["id"]] = true
	}
	for _, n := range page1 {
		assert.False(t, seen[n["id"]])
	}
}

func TestGetFileByID(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "a@dylan.com", "pw")
	f.register(t, "b@dylan.com", "pw")
	tokenA := f.connect(t, "a@dylan.com", "pw")
	tokenB := f.connect(t, "b@dylan.com", "pw")

	resp, body := f.do(t, http.MethodPost, "/files", tokenA, map[string]any{
		"name": "a.txt", "type": "file", "data": "eA==",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	file := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &file))
	id := file["id"].(string)

	resp, _ = f.do(t, http.MethodGet, "/files/"+id, tokenA, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/files/"+id, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Not found"}`, string(body))

	resp, _ = f.do(t, http.MethodGet, "/files/"+id, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFileDataScenario(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "a@dylan.com", "pw")
	f.register(t, "b@dylan.com", "pw")
	tokenA := f.connect(t, "a@dylan.com", "pw")
	tokenB := f.connect(t, "b@dylan.com", "pw")

	resp, body := f.do(t, http.MethodPost, "/files", tokenA, map[string]any{
		"name": "a.txt", "type": "file", "parentId": 0, "isPublic": false, "data": "aGVsbG8=",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	file := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &file))
	require.NotEmpty(t, file["id"])
	require.NotEmpty(t, file["localPath"])
	id := file["id"].(string)

	// Another user's token: private record stays hidden.
	resp, body = f.do(t, http.MethodGet, "/files/"+id+"/data", tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Not found"}`, string(body))

	// The owner reads the bytes back.
	resp, body = f.do(t, http.MethodGet, "/files/"+id+"/data", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(body))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	// Publish, then an anonymous request succeeds.
	resp, _ = f.do(t, http.MethodPut, "/files/"+id+"/publish", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/files/"+id+"/data", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(body))

	// Unpublish hides it again.
	resp, _ = f.do(t, http.MethodPut, "/files/"+id+"/unpublish", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = f.do(t, http.MethodGet, "/files/"+id+"/data", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetFileData_Folder(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "bob@dylan.com", "pw")
	token := f.connect(t, "bob@dylan.com", "pw")

	resp, body := f.do(t, http.MethodPost, "/files", token, map[string]any{"name": "docs", "type": "folder"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	folder := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &folder))

	resp, body = f.do(t, http.MethodGet, "/files/"+folder["id"].(string)+"/data", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"A folder doesn't have content"}`, string(body))
}

func TestStatusAndStats(t *testing.T) {
	f := newAPIFixture(t)

	resp, body := f.do(t, http.MethodGet, "/status", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"redis":true,"db":true}`, string(body))

	f.register(t, "bob@dylan.com", "pw")
	token := f.connect(t, "bob@dylan.com", "pw")
	resp, _ = f.do(t, http.MethodPost, "/files", token, map[string]any{"name": "docs", "type": "folder"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/stats", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"users":1,"files":1}`, string(body))
}
