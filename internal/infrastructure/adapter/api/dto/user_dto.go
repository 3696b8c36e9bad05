package dto

import (
	"time"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

// CreateUserRequest is the body of POST /api/users
type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
}

// CreditsRequest is the body of POST /api/users/:id/credits.
// Amount is a pointer so an explicit 0 is accepted and a missing field is not.
type CreditsRequest struct {
	Amount      *int64 `json:"amount" binding:"required,min=-1000000000,max=1000000000"`
	Description string `json:"description" binding:"max=255"`
}

// UserResponse is the public user record
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Credits   int64     `json:"credits"`
	IsPro     bool      `json:"isPro"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse wraps GET /api/users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// TransactionResponse is one credit log entry
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	UserID      string    `json:"userId"`
	Amount      int64     `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse wraps GET /api/users/:id/transactions
type TransactionListResponse struct {
	UserID       string                `json:"userId"`
	Transactions []TransactionResponse `json:"transactions"`
}

// UsageResponse reports how many credits a user has spent
type UsageResponse struct {
	UserID       string `json:"userId"`
	TotalDebited int64  `json:"totalDebited"`
}

// NewUserResponse maps a user entity to its JSON shape
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Credits:   u.Credits,
		IsPro:     u.IsPro,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserListResponse maps a slice of users
func NewUserListResponse(users []*entity.User) UserListResponse {
	out := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, NewUserResponse(u))
	}
	return out
}

// NewTransactionListResponse maps a slice of transactions
func NewTransactionListResponse(userID string, transactions []*entity.Transaction) TransactionListResponse {
	out := TransactionListResponse{
		UserID:       userID,
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}
	for _, t := range transactions {
		out.Transactions = append(out.Transactions, TransactionResponse{
			ID:          t.ID,
			UserID:      t.UserID,
			Amount:      t.Amount,
			Type:        string(t.Type),
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}
	return out
}
