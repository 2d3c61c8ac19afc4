package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetUsers      = "users retrieved successfully"
	MessageSuccessGetUserDetail = "user retrieved successfully"
	MessageSuccessRegisterUser  = "user registered successfully"
	MessageSuccessUpdateUser    = "user updated successfully"
	MessageSuccessDeleteUser    = "user deleted successfully"

	MessageFailedGetUsers      = "failed to get users"
	MessageFailedGetUserDetail = "failed to get user detail"
	MessageFailedRegisterUser  = "failed to register user"
	MessageFailedUpdateUser    = "failed to update user"
	MessageFailedDeleteUser    = "failed to delete user"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

type (
	RegisterUserRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Role  string `json:"role" validate:"omitempty,oneof=user admin"`
	}

	UpdateUserRequest struct {
		Name  *string `json:"name" validate:"omitempty,min=1"`
		Email *string `json:"email" validate:"omitempty,email"`
		Role  *string `json:"role" validate:"omitempty,oneof=user admin"`
	}

	// UserDrinkResponse lists a user's active drinks; tombstoned drinks are
	// filtered out before shaping.
	UserDrinkResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Published bool      `json:"published"`
		Serves    int       `json:"serves"`
		SaveCount int       `json:"save_count"`
		CreatedAt time.Time `json:"created_at"`
	}

	UserResponse struct {
		ID     string              `json:"id"`
		Name   string              `json:"name"`
		Email  string              `json:"email"`
		Role   string              `json:"role"`
		Drinks []UserDrinkResponse `json:"drinks"`
	}
)
