package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fswbarber/booking-api/internal/config"
	dbpkg "github.com/fswbarber/booking-api/internal/db"
	"github.com/fswbarber/booking-api/internal/models"
	"github.com/fswbarber/booking-api/internal/routes"
	"github.com/fswbarber/booking-api/internal/session"
)

var dbSeq atomic.Int64

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	store  *session.MemoryStore
}

type fakeUploader struct {
	lastKey string
}

func (f *fakeUploader) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	f.lastKey = key
	return "https://cdn.test/" + key, nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := session.NewMemoryStore()
	cfg := &config.Config{SessionTTL: time.Hour}

	router := gin.New()
	routes.RegisterRoutes(router, db, store, &fakeUploader{}, cfg)

	return &testEnv{router: router, db: db, store: store}
}

// ------------------------------
// seeds
// ------------------------------

func (e *testEnv) createUser(t *testing.T, name, email, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}

	return user
}

func (e *testEnv) createShop(t *testing.T, name string) models.Barbershop {
	t.Helper()

	shop := models.Barbershop{Name: name, Address: "Rua X, 100"}
	if err := e.db.Create(&shop).Error; err != nil {
		t.Fatalf("create shop %s: %v", name, err)
	}

	return shop
}

func (e *testEnv) createService(t *testing.T, shop models.Barbershop, name string, price float64) models.Service {
	t.Helper()

	svc := models.Service{BarbershopID: shop.ID, Name: name, Price: price}
	if err := e.db.Create(&svc).Error; err != nil {
		t.Fatalf("create service %s: %v", name, err)
	}

	return svc
}

func (e *testEnv) createBooking(t *testing.T, user models.User, svc models.Service, date time.Time) models.Booking {
	t.Helper()

	bk := models.Booking{UserID: user.ID, ServiceID: svc.ID, Date: date}
	if err := e.db.Create(&bk).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	return bk
}

func (e *testEnv) login(t *testing.T, user models.User) string {
	t.Helper()

	token, err := e.store.Create(context.Background(), user.ID, time.Hour)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	return token
}

// ------------------------------
// requests
// ------------------------------

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}

	return out
}

func (e *testEnv) countLogs(t *testing.T, action string) int64 {
	t.Helper()

	var count int64
	if err := e.db.Model(&models.Log{}).Where("action = ?", action).Count(&count).Error; err != nil {
		t.Fatalf("count logs: %v", err)
	}

	return count
}
