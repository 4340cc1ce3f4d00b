package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kycboard/internal/domain"
	"kycboard/internal/service"
)

// Handler wires the account service routes to domain services.
type Handler struct {
	users    service.UserService
	tokens   *service.TokenService
	kyc      service.KYCService
	posts    service.PostService
	accounts service.AccountService
	logger   *logrus.Logger
}

func NewHandler(
	users service.UserService,
	tokens *service.TokenService,
	kyc service.KYCService,
	posts service.PostService,
	accounts service.AccountService,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:    users,
		tokens:   tokens,
		kyc:      kyc,
		posts:    posts,
		accounts: accounts,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	protected := api.Group("", Guard(h.tokens, h.logger))
	{
		protected.DELETE("/user/delete", h.deleteAccount)
		protected.POST("/kyc", h.createKYC)
		protected.GET("/kyc", h.listKYC)
		protected.POST("/post", h.createPost)
		protected.GET("/post", h.listPosts)
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type kycRequest struct {
	Document string `json:"document"`
}

type postRequest struct {
	Content string `json:"content"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.WithFields(requestFields(c)).WithField("user_id", user.ID).Info("user registered")
	c.String(http.StatusCreated, "User registered")
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid credentials")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) deleteAccount(c *gin.Context) {
	userID, _ := CurrentUserID(c)
	if err := h.accounts.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, "User and associated data deleted")
}

func (h *Handler) createKYC(c *gin.Context) {
	var req kycRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := CurrentUserID(c)
	if _, err := h.kyc.Create(c.Request.Context(), userID, req.Document); err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusCreated, "KYC created")
}

func (h *Handler) listKYC(c *gin.Context) {
	userID, _ := CurrentUserID(c)
	records, err := h.kyc.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]KYCResponse, len(records))
	for i := range records {
		resp[i] = kycToResponse(records[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := CurrentUserID(c)
	if _, err := h.posts.Create(c.Request.Context(), userID, req.Content); err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusCreated, "Post created")
}

func (h *Handler) listPosts(c *gin.Context) {
	userID, _ := CurrentUserID(c)
	posts, err := h.posts.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

type KYCResponse struct {
	ID        string `json:"id"`
	Document  string `json:"document"`
	Archived  bool   `json:"archived"`
	CreatedAt string `json:"created_at"`
}

type PostResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func kycToResponse(kyc domain.KYC) KYCResponse {
	return KYCResponse{
		ID:        kyc.ID,
		Document:  kyc.Document,
		Archived:  kyc.ObjectKey != "",
		CreatedAt: kyc.CreatedAt.Format(time.RFC3339),
	}
}

func postToResponse(post domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
	}
}
