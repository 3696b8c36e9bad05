package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account and credit requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase usecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateUser handles POST /api/users. An existing account is returned as is.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.GetOrCreateUser(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, h.logger, err, "Error creating user")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Error loading user")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Error listing users")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// UpdateCredits handles POST /api/users/:id/credits
func (h *UserHandler) UpdateCredits(c *gin.Context) {
	var req dto.CreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.ApplyCreditDelta(c.Request.Context(), c.Param("id"), *req.Amount, req.Description)
	if err != nil {
		respondError(c, h.logger, err, "Error updating credits")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListTransactions handles GET /api/users/:id/transactions?limit=
func (h *UserHandler) ListTransactions(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	userID := c.Param("id")
	transactions, err := h.userUseCase.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, h.logger, err, "Error listing transactions")
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(userID, transactions))
}

// GetUsage handles GET /api/users/:id/usage
func (h *UserHandler) GetUsage(c *gin.Context) {
	userID := c.Param("id")
	total, err := h.userUseCase.TotalDebited(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Error loading usage")
		return
	}

	c.JSON(http.StatusOK, dto.UsageResponse{UserID: userID, TotalDebited: total})
}

// parseLimit reads the optional limit query parameter. Zero means default.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "limit must be a non-negative integer",
		})
		return 0, false
	}
	return limit, true
}
