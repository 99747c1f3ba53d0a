package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/handlers"
	"inkwell/internal/repository/memory"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	secret := []byte("api-test-secret")

	uploader := services.NewImgurUploader("") // never reached in these tests
	userService := services.NewUserService(store.Users(), uploader, secret, 24*time.Hour)
	blogService := services.NewBlogService(store.Blogs(), store.Users(), uploader)
	commentService := services.NewCommentService(store.Comments(), store.Blogs(), store.Users())

	r := gin.New()
	RegisterRoutes(r, Deps{
		Auth:      handlers.NewAuthHandler(userService, 24*time.Hour),
		Users:     handlers.NewUserHandler(userService),
		Blogs:     handlers.NewBlogHandler(blogService),
		Comments:  handlers.NewCommentHandler(commentService),
		JWTSecret: secret,
		UserRepo:  store.Users(),
	})
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email string) []*http.Cookie {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/v1/user/register", map[string]string{
		"first_name": "A", "last_name": "B", "email": email, "password": "secret1",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/v1/user/login", map[string]string{
		"email": email, "password": "secret1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestCreateRequiresAuthentication(t *testing.T) {
	r := newAPI(t)

	w := doJSON(r, http.MethodPost, "/api/v1/blog", map[string]string{"title": "T", "category": "C"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublishedListingIsPublic(t *testing.T) {
	r := newAPI(t)

	// Nothing published: the explicit empty outcome.
	w := doJSON(r, http.MethodGet, "/api/v1/blog/get-published-blogs", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No published blogs found")
	assert.Contains(t, w.Body.String(), `"blogs":[]`)
}

func TestBlogLifecycleOverHTTP(t *testing.T) {
	r := newAPI(t)
	cookies := login(t, r, "author@example.com")

	// Create a draft.
	w := doJSON(r, http.MethodPost, "/api/v1/blog", map[string]string{"title": "Hello", "category": "tech"}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Blog struct {
			ID          uint `json:"id"`
			IsPublished bool `json:"is_published"`
		} `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Blog.ID)
	assert.False(t, created.Blog.IsPublished)

	// Drafts stay out of the public listing.
	w = doJSON(r, http.MethodGet, "/api/v1/blog/get-published-blogs", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Publish explicitly, then toggle back.
	path := "/api/v1/blog/1"
	w = doJSON(r, http.MethodPatch, path+"?publish=true", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Blog is Published")

	w = doJSON(r, http.MethodGet, "/api/v1/blog/get-published-blogs", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPatch, path, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Blog is Unpublished")

	// Like twice: still a single entry in the likes set.
	w = doJSON(r, http.MethodGet, "/api/v1/blog/1/like", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodGet, "/api/v1/blog/1/like", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/blog/get-all-blogs", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all struct {
		Blogs []struct {
			Likes []uint `json:"likes"`
		} `json:"blogs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all.Blogs, 1)
	assert.Len(t, all.Blogs[0].Likes, 1)

	// Comment, then delete the blog; the comment goes with it.
	w = doJSON(r, http.MethodPost, "/api/v1/comment/1/create", map[string]string{"content": "first"}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodDelete, "/api/v1/blog/delete/1", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/v1/comment/1/all", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteByNonAuthorIsForbidden(t *testing.T) {
	r := newAPI(t)
	authorCookies := login(t, r, "author@example.com")
	otherCookies := login(t, r, "other@example.com")

	w := doJSON(r, http.MethodPost, "/api/v1/blog", map[string]string{"title": "T", "category": "C"}, authorCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/v1/blog/delete/1", nil, otherCookies)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Still there for the author.
	w = doJSON(r, http.MethodGet, "/api/v1/blog/get-own-blogs", nil, authorCookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"T"`)
}

func TestLoginDoesNotLeakWhichCredentialFailed(t *testing.T) {
	r := newAPI(t)
	login(t, r, "a@b.com")

	wrongPassword := doJSON(r, http.MethodPost, "/api/v1/user/login", map[string]string{
		"email": "a@b.com", "password": "nope123",
	}, nil)
	unknownEmail := doJSON(r, http.MethodPost, "/api/v1/user/login", map[string]string{
		"email": "ghost@b.com", "password": "secret1",
	}, nil)

	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestTotalLikesForNewUser(t *testing.T) {
	r := newAPI(t)
	cookies := login(t, r, "fresh@example.com")

	w := doJSON(r, http.MethodGet, "/api/v1/blog/my-blogs/likes", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalBlogs":0`)
	assert.Contains(t, w.Body.String(), `"totalLikes":0`)
}
