package endpoints_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/api/mosques/endpoints"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/http/middleware"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
)

const jwtSecret = "supersecret"

// fakeStore is an in-memory db.Store covering the directory surface.
type fakeStore struct {
	mosques map[int]model.Mosque
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{mosques: make(map[int]model.Mosque), nextID: 1}
}

func (f *fakeStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return 0, fmt.Errorf("not implemented")
}
func (f *fakeStore) GetUserByEmail(email string) (*model.User, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeStore) GetUserByID(id int) (*model.User, error) {
	return &model.User{ID: id, Email: "admin@example.com"}, nil
}
func (f *fakeStore) UpdateUserProfile(id int, email string, name, city *string) error {
	return fmt.Errorf("not implemented")
}

func (f *fakeStore) CreateMosque(name, address, city string, lat, lon *float64, photoURL *string, createdBy int) (model.Mosque, error) {
	now := time.Now()
	mq := model.Mosque{
		ID: f.nextID, Name: name, Address: address, City: city,
		Latitude: lat, Longitude: lon, PhotoURL: photoURL,
		CreatedBy: createdBy, CreatedAt: now, UpdatedAt: now,
	}
	f.mosques[f.nextID] = mq
	f.nextID++
	return mq, nil
}

func (f *fakeStore) GetMosqueByID(id int) (model.Mosque, error) {
	mq, ok := f.mosques[id]
	if !ok {
		return model.Mosque{}, sql.ErrNoRows
	}
	return mq, nil
}

func (f *fakeStore) ListMosques(city string) ([]model.Mosque, error) {
	out := make([]model.Mosque, 0, len(f.mosques))
	for _, mq := range f.mosques {
		if city == "" || strings.EqualFold(mq.City, city) {
			out = append(out, mq)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateMosque(id int, name, address, city *string, lat, lon *float64, photoURL *string) error {
	mq, ok := f.mosques[id]
	if !ok {
		return sql.ErrNoRows
	}
	if name != nil {
		mq.Name = *name
	}
	if address != nil {
		mq.Address = *address
	}
	if city != nil {
		mq.City = *city
	}
	if photoURL != nil {
		mq.PhotoURL = photoURL
	}
	mq.UpdatedAt = time.Now()
	f.mosques[id] = mq
	return nil
}

func (f *fakeStore) DeleteMosque(id int) error {
	delete(f.mosques, id)
	return nil
}

func setupRouter(t *testing.T, store *fakeStore) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		endpoints.DirectoryPublicModule(store),
	)
	api.MountGroup(r, api.GroupConfig{Prefix: "/api", Auth: true, SecretKey: jwtSecret, Store: store},
		endpoints.DirectoryAdminModule(store, nil),
	)

	token, err := middleware.GenerateJWT(1, jwtSecret)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return r, token
}

func TestCreateAndListMosques(t *testing.T) {
	store := newFakeStore()
	router, token := setupRouter(t, store)

	body, _ := json.Marshal(map[string]any{
		"name":    "Jama Masjid",
		"address": "1 Old City Rd",
		"city":    "Hyderabad",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/mosques", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("create failed: %s", w.Body.String())
	}

	// listing is public and filters by city
	req = httptest.NewRequest(http.MethodGet, "/api/mosques?city=hyderabad", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %s", w.Body.String())
	}
	var listed []struct {
		Name string `json:"name"`
	}
	json.Unmarshal(w.Body.Bytes(), &listed)
	if len(listed) != 1 || listed[0].Name != "Jama Masjid" {
		t.Fatalf("listed = %+v", listed)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/mosques?city=Chennai", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	json.Unmarshal(w.Body.Bytes(), &listed)
	if len(listed) != 0 {
		t.Fatalf("city filter leaked: %+v", listed)
	}
}

func TestGetMosqueNotFound(t *testing.T) {
	router, _ := setupRouter(t, newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/api/mosques/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateMosqueRequiresAuth(t *testing.T) {
	router, _ := setupRouter(t, newFakeStore())

	body, _ := json.Marshal(map[string]any{"name": "x", "address": "y", "city": "z"})
	req := httptest.NewRequest(http.MethodPost, "/api/mosques", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestUpdateMosquePartial(t *testing.T) {
	store := newFakeStore()
	router, token := setupRouter(t, store)

	mq, _ := store.CreateMosque("Old Name", "Addr", "Delhi", nil, nil, nil, 1)

	newName := "New Name"
	body, _ := json.Marshal(map[string]any{"name": newName})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/mosques/%d", mq.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %s", w.Body.String())
	}

	got, _ := store.GetMosqueByID(mq.ID)
	if got.Name != newName || got.City != "Delhi" {
		t.Fatalf("partial update wrong: %+v", got)
	}
}

func TestDeleteMosque(t *testing.T) {
	store := newFakeStore()
	router, token := setupRouter(t, store)
	mq, _ := store.CreateMosque("To Remove", "Addr", "Delhi", nil, nil, nil, 1)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/mosques/%d", mq.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %s", w.Body.String())
	}
	if _, err := store.GetMosqueByID(mq.ID); err == nil {
		t.Fatal("mosque still present after delete")
	}
}
