package userControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vihansr/Ecommerce-Website/auth"
	"github.com/vihansr/Ecommerce-Website/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", Register(db))
	r.POST("/login", Login(db))
	r.GET("/logout", Logout())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	db := setupTestDB(t)
	r := newRouter(db)

	w := doJSON(t, r, "POST", "/register", `{"username":"alice","password":"hunter22"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var user models.User
	if err := db.Where("username = ?", "alice").First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Fatalf("password stored unhashed: %q", user.PasswordHash)
	}

	w = doJSON(t, r, "POST", "/login", `{"username":"alice","password":"hunter22"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == auth.SessionCookie {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("login did not set a session cookie")
	}

	userID, err := auth.VerifySessionToken(sessionCookie.Value)
	if err != nil {
		t.Fatalf("session token does not verify: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("session identifies %q, want %q", userID, user.ID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	db := setupTestDB(t)
	r := newRouter(db)

	w := doJSON(t, r, "POST", "/register", `{"username":"bob","password":"first"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first register status = %d", w.Code)
	}

	var original models.User
	if err := db.Where("username = ?", "bob").First(&original).Error; err != nil {
		t.Fatalf("first user missing: %v", err)
	}

	w = doJSON(t, r, "POST", "/register", `{"username":"bob","password":"second"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want %d", w.Code, http.StatusConflict)
	}

	var count int64
	db.Model(&models.User{}).Where("username = ?", "bob").Count(&count)
	if count != 1 {
		t.Fatalf("user count = %d, want 1", count)
	}

	var after models.User
	db.Where("username = ?", "bob").First(&after)
	if after.ID != original.ID || after.PasswordHash != original.PasswordHash {
		t.Fatal("first user's record was modified by the duplicate attempt")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	db := setupTestDB(t)
	r := newRouter(db)

	doJSON(t, r, "POST", "/register", `{"username":"carol","password":"right"}`)

	wrongPass := doJSON(t, r, "POST", "/login", `{"username":"carol","password":"wrong"}`)
	unknownUser := doJSON(t, r, "POST", "/login", `{"username":"nobody","password":"whatever"}`)

	if wrongPass.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want both 401", wrongPass.Code, unknownUser.Code)
	}
	if wrongPass.Body.String() != unknownUser.Body.String() {
		t.Fatalf("failure responses differ: %q vs %q", wrongPass.Body.String(), unknownUser.Body.String())
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	db := setupTestDB(t)
	r := newRouter(db)

	w := doJSON(t, r, "GET", "/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == auth.SessionCookie {
			if ck.MaxAge >= 0 {
				t.Fatalf("session cookie not expired, MaxAge = %d", ck.MaxAge)
			}
			return
		}
	}
	t.Fatal("logout did not touch the session cookie")
}
