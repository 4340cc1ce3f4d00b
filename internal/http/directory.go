package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kycboard/internal/domain"
	"kycboard/internal/repository"
	"kycboard/internal/validation"
)

// DirectoryHandler serves the unauthenticated student and board post directory.
type DirectoryHandler struct {
	students repository.StudentRepository
	posts    repository.BoardPostRepository
}

func NewDirectoryHandler(students repository.StudentRepository, posts repository.BoardPostRepository) *DirectoryHandler {
	return &DirectoryHandler{
		students: students,
		posts:    posts,
	}
}

func (h *DirectoryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.listStudents)
	router.POST("/users", h.createStudent)
	router.GET("/users/:id", h.getStudent)
	router.PUT("/users/:id", h.updateStudent)
	router.DELETE("/users/:id", h.deleteStudent)

	router.GET("/posts", h.listPosts)
	router.POST("/posts", h.createPost)
	router.GET("/posts/:id", h.getPost)
	router.PUT("/posts/:id", h.updatePost)
	router.DELETE("/posts/:id", h.deletePost)
}

type studentRequest struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	MaritalStatus bool   `json:"maritalStatus"`
}

func (r studentRequest) toDomain(id int64) (*domain.Student, error) {
	if err := validation.Student(r.Name, r.Age).Err(); err != nil {
		return nil, err
	}
	return &domain.Student{ID: id, Name: r.Name, Age: r.Age, MaritalStatus: r.MaritalStatus}, nil
}

type boardPostRequest struct {
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

func (r boardPostRequest) toDomain(id int64) (*domain.BoardPost, error) {
	if err := validation.BoardPost(r.UserID, r.Content).Err(); err != nil {
		return nil, err
	}
	return &domain.BoardPost{ID: id, UserID: r.UserID, Content: r.Content}, nil
}

func (h *DirectoryHandler) listStudents(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *DirectoryHandler) createStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	student, err := req.toDomain(0)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.students.Create(c.Request.Context(), student); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

func (h *DirectoryHandler) getStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		respondMissing(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *DirectoryHandler) updateStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	student, err := req.toDomain(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.students.Update(c.Request.Context(), student); err != nil {
		respondMissing(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *DirectoryHandler) deleteStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.students.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DirectoryHandler) listPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *DirectoryHandler) createPost(c *gin.Context) {
	var req boardPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	post, err := req.toDomain(0)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.posts.Create(c.Request.Context(), post); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *DirectoryHandler) getPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		respondMissing(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *DirectoryHandler) updatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req boardPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}
	post, err := req.toDomain(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.posts.Update(c.Request.Context(), post); err != nil {
		respondMissing(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *DirectoryHandler) deletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondMissing(c *gin.Context, err error, msg string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.String(http.StatusNotFound, msg)
		return
	}
	respondError(c, err)
}
