package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycboard/internal/domain"
	"kycboard/internal/repository/memory"
)

func newDirectoryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	students := memory.NewStudentRepository()
	posts := memory.NewBoardPostRepository()
	require.NoError(t, memory.Seed(context.Background(), students, posts))

	router := gin.New()
	NewDirectoryHandler(students, posts).RegisterRoutes(router)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDirectory_Students(t *testing.T) {
	router := newDirectoryRouter(t)

	rec := serve(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var students []domain.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	require.Len(t, students, 4)
	assert.Equal(t, "david", students[0].Name)

	rec = serve(router, http.MethodPost, "/users", `{"name":"nora","age":33,"maritalStatus":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, domain.Student{ID: 5, Name: "nora", Age: 33, MaritalStatus: true}, created)

	rec = serve(router, http.MethodGet, "/users/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":5,"name":"nora","age":33,"maritalStatus":true}`, rec.Body.String())

	rec = serve(router, http.MethodPut, "/users/5", `{"id":99,"name":"nora","age":34}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":5,"name":"nora","age":34,"maritalStatus":false}`, rec.Body.String())

	rec = serve(router, http.MethodDelete, "/users/5", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodGet, "/users/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", rec.Body.String())

	rec = serve(router, http.MethodPut, "/users/5", `{"name":"nora","age":34}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodDelete, "/users/5", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDirectory_StudentValidation(t *testing.T) {
	router := newDirectoryRouter(t)

	testCases := []struct {
		name   string
		method string
		path   string
		body   string
		text   string
	}{
		{"missing name", http.MethodPost, "/users", `{"age":20}`, `"name" is required`},
		{"negative age", http.MethodPost, "/users", `{"name":"x","age":-1}`, `"age" must be between 0 and 150`},
		{"malformed body", http.MethodPost, "/users", `{`, "Invalid request body"},
		{"bad id", http.MethodGet, "/users/abc", "", "Invalid id"},
		{"zero id", http.MethodDelete, "/users/0", "", "Invalid id"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.text, rec.Body.String())
		})
	}
}

func TestDirectory_Posts(t *testing.T) {
	router := newDirectoryRouter(t)

	rec := serve(router, http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []domain.BoardPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 2)

	rec = serve(router, http.MethodPost, "/posts", `{"userId":3,"content":"Post by mike"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":3,"userId":3,"content":"Post by mike"}`, rec.Body.String())

	rec = serve(router, http.MethodPut, "/posts/1", `{"userId":1,"content":"edited"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"userId":1,"content":"edited"}`, rec.Body.String())

	rec = serve(router, http.MethodPost, "/posts", `{"content":"anonymous"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `"userId" must be a positive number`, rec.Body.String())

	rec = serve(router, http.MethodDelete, "/posts/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodGet, "/posts/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Post not found", rec.Body.String())

	rec = serve(router, http.MethodPut, "/posts/1", `{"userId":1,"content":"again"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Post not found", rec.Body.String())
}
