package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/ShashankRaghuram1509/learnify-spotify/caching"
	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger.InitLogger(logging.DEBUG)
	if err := database.InitDB(t.TempDir() + "/test.db"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { database.CloseDB() })
	caching.Flush()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api")
	NewAuthController(api)
	NewCourseController(api)
	NewEnrollmentController(api)
	NewPremiumController(api)
	NewUserAdminController(api)
	return engine
}

func postJSON(engine *gin.Engine, path, token string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func getJSON(engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		Id        int    `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		IsPremium bool   `json:"isPremium"`
	} `json:"user"`
}

func TestSignupLoginFlow(t *testing.T) {
	engine := setupRouter(t)

	w := postJSON(engine, "/api/auth/signup", "", gin.H{
		"name":     "Grace",
		"email":    "grace@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var signup authResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	assert.NotEmpty(t, signup.Token)
	assert.Equal(t, "grace@example.com", signup.User.Email)
	assert.False(t, signup.User.IsPremium)
	// The password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")

	// Duplicate signup is a 400, not a 500.
	w = postJSON(engine, "/api/auth/signup", "", gin.H{
		"name":     "Grace Again",
		"email":    "GRACE@example.com",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(engine, "/api/auth/login", "", gin.H{
		"email":    "grace@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(engine, "/api/auth/login", "", gin.H{
		"email":    "grace@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown user fails with the same status as a wrong password.
	w = postJSON(engine, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutes(t *testing.T) {
	engine := setupRouter(t)

	w := getJSON(engine, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = getJSON(engine, "/api/me", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(engine, "/api/auth/login", "", gin.H{
		"email":    "user@learnify.com",
		"password": "password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var login authResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = getJSON(engine, "/api/me", login.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@learnify.com")

	// A plain user is forbidden from the admin surface.
	w = getJSON(engine, "/api/admin/users", login.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postJSON(engine, "/api/auth/login", "", gin.H{
		"email":    "admin@learnify.com",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var adminLogin authResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &adminLogin))

	w = getJSON(engine, "/api/admin/users", adminLogin.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEnrollmentEndpoints(t *testing.T) {
	engine := setupRouter(t)

	// Anonymous check is answered, not rejected.
	w := getJSON(engine, "/api/enrollments/check/dsa-java", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"requiresAuth":true`)

	w = postJSON(engine, "/api/enrollments/dsa-java", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login := loginAs(t, engine, "user@learnify.com", "password")

	w = postJSON(engine, "/api/enrollments/dsa-java", login.Token, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = postJSON(engine, "/api/enrollments/dsa-java", login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	w = postJSON(engine, "/api/enrollments/react-advanced", login.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"requiresPremium":true`)

	w = postJSON(engine, "/api/enrollments/no-such-course", login.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getJSON(engine, "/api/enrollments/user", login.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dsa-java")
}

func TestCatalogIsPublic(t *testing.T) {
	engine := setupRouter(t)

	w := getJSON(engine, "/api/courses", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var courses []model.Course
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	assert.Len(t, courses, 5)

	w = getJSON(engine, "/api/courses/dsa-java", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = getJSON(engine, "/api/courses/no-such-course", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Catalog writes require an admin token.
	w = postJSON(engine, "/api/courses", "", model.Course{Code: "x", Title: "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func loginAs(t *testing.T, engine *gin.Engine, email, password string) authResponse {
	t.Helper()
	w := postJSON(engine, "/api/auth/login", "", gin.H{"email": email, "password": password})
	assert.Equal(t, http.StatusOK, w.Code)
	var login authResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	return login
}

func TestStaleTokenSeesFreshUserState(t *testing.T) {
	engine := setupRouter(t)

	login := loginAs(t, engine, "user@learnify.com", "password")

	w := postJSON(engine, "/api/enrollments/react-advanced", login.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Upgrade through the premium flow, then retry with the ORIGINAL token:
	// the guard reloads the user, so the old token now passes the gate.
	w = postJSON(engine, "/api/premium/subscribe", login.Token, gin.H{
		"cardHolder": "Test User",
		"cardNumber": "4111111111111111",
		"expiryDate": "12/27",
		"cvv":        "123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(engine, "/api/enrollments/react-advanced", login.Token, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}
