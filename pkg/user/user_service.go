package user

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"Cocktail-Catalog/internal/utils/mailing"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		GetUsers(ctx context.Context, orderBy string) ([]domain.UserResponse, error)
		GetUserByID(ctx context.Context, id string) (domain.UserResponse, error)
		RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) (string, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) GetUsers(ctx context.Context, orderBy string) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx, orderBy)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, shapeUser(user))
	}
	return result, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.UserResponse, error) {
	// A malformed id can never match a uuid column; treat it as not found
	// instead of letting the dialect reject it.
	if _, err := uuid.Parse(id); err != nil {
		return domain.UserResponse{}, fmt.Errorf("user with id %s: %w", id, domain.ErrUserNotFound)
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, fmt.Errorf("user with id %s: %w", id, domain.ErrUserNotFound)
		}
		return domain.UserResponse{}, err
	}
	return shapeUser(user), nil
}

func (s *userService) RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &entities.User{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.UserResponse{}, err
	}

	// Welcome mail is best effort; a broken SMTP setup must not fail signup.
	go func(name, email string) {
		if err := mailing.SendWelcomeMail(name, email); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", email, err)
		}
	}(user.Name, user.Email)

	return shapeUser(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.UserResponse{}, fmt.Errorf("user with id %s: %w", id, domain.ErrUserNotFound)
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, fmt.Errorf("user with id %s: %w", id, domain.ErrUserNotFound)
		}
		return domain.UserResponse{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.UserResponse{}, err
	}
	return shapeUser(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("user with id %s: %w", id, domain.ErrUserNotFound)
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user with id %s: %w", id, domain.ErrUserNotFound)
		}
		return "", err
	}
	return fmt.Sprintf("User: %s was deleted successfully", id), nil
}

func shapeUser(user *entities.User) domain.UserResponse {
	drinks := make([]domain.UserDrinkResponse, 0, len(user.Drinks))
	for _, drink := range user.Drinks {
		drinks = append(drinks, domain.UserDrinkResponse{
			ID:        drink.ID.String(),
			Name:      drink.Name,
			Published: drink.Published,
			Serves:    drink.Serves,
			SaveCount: drink.SaveCount,
			CreatedAt: drink.CreatedAt,
		})
	}

	return domain.UserResponse{
		ID:     user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Drinks: drinks,
	}
}
