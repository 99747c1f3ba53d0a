package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/apperr"
	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/repository/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newGateFixture(t *testing.T) (*gin.Engine, *memory.Store, uint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	user := &models.User{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "hash"}
	require.NoError(t, store.Users().Create(context.Background(), user))

	r := gin.New()
	r.GET("/me", AuthRequired(testSecret, store.Users()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": ActingUserID(c)})
	})
	return r, store, user.ID
}

func get(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateMissingCookie(t *testing.T) {
	r, _, _ := newGateFixture(t)
	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateMalformedToken(t *testing.T) {
	r, _, _ := newGateFixture(t)
	w := get(r, "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateExpiredToken(t *testing.T) {
	r, _, userID := newGateFixture(t)

	tok, err := auth.GenerateToken(userID, testSecret, -time.Minute)
	require.NoError(t, err)

	w := get(r, tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateWrongSignature(t *testing.T) {
	r, _, userID := newGateFixture(t)

	tok, err := auth.GenerateToken(userID, []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	w := get(r, tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateValidToken(t *testing.T) {
	r, _, userID := newGateFixture(t)

	tok, err := auth.GenerateToken(userID, testSecret, time.Hour)
	require.NoError(t, err)

	w := get(r, tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
}

// brokenUserRepo fails every lookup the way a dead database would.
type brokenUserRepo struct{}

func (brokenUserRepo) Create(context.Context, *models.User) error { return errStoreDown }
func (brokenUserRepo) FindByID(context.Context, uint) (*models.User, error) {
	return nil, errStoreDown
}
func (brokenUserRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, errStoreDown
}
func (brokenUserRepo) Update(context.Context, *models.User) error { return errStoreDown }
func (brokenUserRepo) List(context.Context) ([]models.User, error) {
	return nil, errStoreDown
}

var errStoreDown = fmt.Errorf("%w: connection refused", apperr.ErrStore)

func TestGateStoreFailureIsNotUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(testSecret, brokenUserRepo{}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tok, err := auth.GenerateToken(1, testSecret, time.Hour)
	require.NoError(t, err)

	w := get(r, tok)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
}

func TestGateUnknownUser(t *testing.T) {
	r, _, _ := newGateFixture(t)

	tok, err := auth.GenerateToken(999, testSecret, time.Hour)
	require.NoError(t, err)

	w := get(r, tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
