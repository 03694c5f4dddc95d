package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/adapters/http/middleware"
	memorystorage "github.com/gourav02/acda-org/internal/adapters/storage/memory"
	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/services"
)

type fakeSessions struct {
	principal *domain.Principal
}

func (f *fakeSessions) Principal(_ context.Context) (domain.Principal, bool) {
	if f.principal == nil {
		return domain.Principal{}, false
	}
	return *f.principal, true
}

func (f *fakeSessions) SignIn(_ context.Context, admin *domain.Admin) error {
	f.principal = &domain.Principal{ID: admin.ID.Hex(), Name: admin.Username}
	return nil
}

func (f *fakeSessions) SignOut(_ context.Context) error {
	f.principal = nil
	return nil
}

type fakeEventStore struct {
	events map[string]*domain.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[string]*domain.Event)}
}

func (f *fakeEventStore) Insert(_ context.Context, event *domain.Event) error {
	event.ID = primitive.NewObjectID()
	f.events[event.ID.Hex()] = event
	return nil
}

func (f *fakeEventStore) FindByID(_ context.Context, id string) (*domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (f *fakeEventStore) Delete(_ context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventStore) List(_ context.Context, _ domain.EventListKind, _ time.Time) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(f.events))
	for _, e := range f.events {
		events = append(events, *e)
	}
	return events, nil
}

type fakeImageHost struct {
	uploads   int
	destroyed []string
}

func (f *fakeImageHost) Upload(_ context.Context, r io.Reader) (*domain.UploadedAsset, error) {
	_, _ = io.Copy(io.Discard, r)
	f.uploads++
	return &domain.UploadedAsset{
		URL:      "https://img.example/asset",
		PublicID: "asset",
		Format:   "jpg",
	}, nil
}

func (f *fakeImageHost) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

type fakePhotoStore struct {
	photos []*domain.EventPhoto
}

func (f *fakePhotoStore) Insert(_ context.Context, photo *domain.EventPhoto) error {
	photo.ID = primitive.NewObjectID()
	f.photos = append(f.photos, photo)
	return nil
}

func (f *fakePhotoStore) ListByYear(_ context.Context, year int) ([]domain.EventPhoto, error) {
	var out []domain.EventPhoto
	for _, p := range f.photos {
		if year == 0 || p.Year == year {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeAdminStore struct {
	admins map[string]*domain.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*domain.Admin)}
}

func (f *fakeAdminStore) Insert(_ context.Context, admin *domain.Admin) error {
	admin.ID = primitive.NewObjectID()
	f.admins[admin.Username] = admin
	return nil
}

func (f *fakeAdminStore) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

type fakeMailer struct {
	sent []domain.ContactMessage
}

func (f *fakeMailer) SendContactNotification(_ context.Context, msg domain.ContactMessage) (string, error) {
	f.sent = append(f.sent, msg)
	return "email-1", nil
}

// testApp wires real services over in-memory fakes behind the same routes
// the server mounts.
type testApp struct {
	router     *chi.Mux
	sessions   *fakeSessions
	eventStore *fakeEventStore
	imageHost  *fakeImageHost
	photoStore *fakePhotoStore
	adminStore *fakeAdminStore
	mailer     *fakeMailer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zap.NewNop()
	clock := func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}

	app := &testApp{
		sessions:   &fakeSessions{},
		eventStore: newFakeEventStore(),
		imageHost:  &fakeImageHost{},
		photoStore: &fakePhotoStore{},
		adminStore: newFakeAdminStore(),
		mailer:     &fakeMailer{},
	}

	eventService, err := services.NewEventService(app.eventStore, app.imageHost, domain.DefaultUploadLimits(), logger, clock)
	if err != nil {
		t.Fatalf("building event service: %v", err)
	}
	photoService, err := services.NewPhotoService(app.photoStore, clock)
	if err != nil {
		t.Fatalf("building photo service: %v", err)
	}
	adminService, err := services.NewAdminService(app.adminStore, clock)
	if err != nil {
		t.Fatalf("building admin service: %v", err)
	}
	limiter, err := services.NewRateLimiterService(
		memorystorage.NewLimiterStore(),
		domain.RateLimitRule{Requests: 5, Window: time.Hour},
		nil,
	)
	if err != nil {
		t.Fatalf("building rate limiter: %v", err)
	}
	contactService, err := services.NewContactService(limiter, app.mailer, logger)
	if err != nil {
		t.Fatalf("building contact service: %v", err)
	}

	events := NewEventsHandler(eventService, logger)
	photos := NewPhotosHandler(photoService, app.sessions, logger)
	contact := NewContactHandler(contactService, logger)
	admin := NewAdminHandler(adminService, app.sessions, logger)
	auth := NewAuthHandler(adminService, app.sessions, logger)

	r := chi.NewRouter()
	r.Route("/api/events", func(r chi.Router) {
		r.Get("/list", events.List)
		r.Get("/photos", photos.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(app.sessions))
			r.Post("/create", events.Create)
			r.Delete("/delete", events.Delete)
			r.Post("/upload", photos.Upload)
		})
	})
	r.Post("/api/admin/create", admin.Create)
	r.Get("/api/admin/create", admin.Count)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)
		r.Get("/session", auth.Session)
	})
	r.Post("/api/contact", contact.Submit)

	app.router = r
	return app
}

func (a *testApp) signIn() {
	a.sessions.principal = &domain.Principal{ID: primitive.NewObjectID().Hex(), Name: "admin"}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response body %q: %v", rec.Body.String(), err)
	}
	return body
}
