package drink

import (
	"Cocktail-Catalog/domain"
	"Cocktail-Catalog/entities"
	"Cocktail-Catalog/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DrinkService interface {
		GetDrinks(ctx context.Context, query domain.DrinkQuery) ([]domain.DrinkResponse, error)
		GetDrinkByID(ctx context.Context, id string) (domain.DrinkShowResult, error)
		CreateDrink(ctx context.Context, req domain.CreateDrinkRequest) (domain.DrinkResponse, error)
		UpdateDrink(ctx context.Context, id string, req domain.UpdateDrinkRequest) (domain.DrinkResponse, error)
		DeleteDrink(ctx context.Context, id string) (domain.DrinkDeleteResult, error)
		UploadDrinkImage(ctx context.Context, req domain.UploadDrinkImageRequest) (domain.DrinkResponse, error)
	}

	drinkService struct {
		drinkRepository DrinkRepository
		s3              storage.AwsS3
	}
)

func NewDrinkService(drinkRepository DrinkRepository, s3 storage.AwsS3) DrinkService {
	return &drinkService{
		drinkRepository: drinkRepository,
		s3:              s3,
	}
}

func (s *drinkService) GetDrinks(ctx context.Context, query domain.DrinkQuery) ([]domain.DrinkResponse, error) {
	drinks, err := s.drinkRepository.GetDrinks(ctx, query)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DrinkResponse, 0, len(drinks))
	for _, drink := range drinks {
		result = append(result, shapeDrink(drink))
	}
	return result, nil
}

func (s *drinkService) GetDrinkByID(ctx context.Context, id string) (domain.DrinkShowResult, error) {
	// A malformed id can never match a uuid column; treat it as not found
	// instead of letting the dialect reject it.
	if _, err := uuid.Parse(id); err != nil {
		return domain.DrinkShowResult{}, fmt.Errorf("drink with id %s: %w", id, domain.ErrDrinkNotFound)
	}

	drink, err := s.drinkRepository.GetDrinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DrinkShowResult{}, fmt.Errorf("drink with id %s: %w", id, domain.ErrDrinkNotFound)
		}
		return domain.DrinkShowResult{}, err
	}

	// A tombstoned drink only answers with its deletion message, never with
	// its stored fields.
	if drink.DeletedAt != nil {
		return domain.DrinkShowResult{
			Deleted: true,
			Message: fmt.Sprintf("%s has been deleted.", drink.Name),
		}, nil
	}

	shaped := shapeDrink(drink)
	return domain.DrinkShowResult{Drink: &shaped}, nil
}

func (s *drinkService) CreateDrink(ctx context.Context, req domain.CreateDrinkRequest) (domain.DrinkResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.DrinkResponse{}, domain.ErrParseUUID
	}

	serves := 1
	if req.Serves != nil {
		serves = *req.Serves
	}

	drink := &entities.Drink{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Notes:       req.Notes,
		Directions:  req.Directions,
		Serves:      serves,
	}

	if err := s.drinkRepository.CreateDrink(ctx, drink, req.Ingredients); err != nil {
		return domain.DrinkResponse{}, err
	}

	created, err := s.drinkRepository.GetDrinkByID(ctx, drink.ID.String())
	if err != nil {
		return domain.DrinkResponse{}, err
	}
	return shapeDrink(created), nil
}

// UpdateDrink merges the present patch fields into the stored row. It is
// allowed on a tombstoned drink but never touches DeletedAt; only DeleteDrink
// writes that column.
func (s *drinkService) UpdateDrink(ctx context.Context, id string, req domain.UpdateDrinkRequest) (domain.DrinkResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.DrinkResponse{}, fmt.Errorf("drink with id %s: %w", id, domain.ErrDrinkNotFound)
	}

	drink, err := s.drinkRepository.GetDrinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DrinkResponse{}, fmt.Errorf("drink with id %s: %w", id, domain.ErrDrinkNotFound)
		}
		return domain.DrinkResponse{}, err
	}

	if req.Name != nil {
		drink.Name = *req.Name
	}
	if req.Description != nil {
		drink.Description = *req.Description
	}
	if req.Notes != nil {
		drink.Notes = *req.Notes
	}
	if req.Directions != nil {
		drink.Directions = *req.Directions
	}
	if req.Published != nil {
		drink.Published = *req.Published
	}
	if req.Serves != nil {
		drink.Serves = *req.Serves
	}
	if req.SaveCount != nil {
		drink.SaveCount = *req.SaveCount
	}

	if err := s.drinkRepository.UpdateDrink(ctx, drink); err != nil {
		return domain.DrinkResponse{}, err
	}
	return shapeDrink(drink), nil
}

func (s *drinkService) DeleteDrink(ctx context.Context, id string) (domain.DrinkDeleteResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.DrinkDeleteResult{}, fmt.Errorf("drink with id %s: %w", id, domain.ErrDrinkNotFound)
	}

	drink, err := s.drinkRepository.GetDrinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DrinkDeleteResult{}, fmt.Errorf("drink with id %s: %w", id, domain.ErrDrinkNotFound)
		}
		return domain.DrinkDeleteResult{}, err
	}

	// Repeat deletes are a no-op; the first tombstone is terminal.
	if drink.DeletedAt != nil {
		return domain.DrinkDeleteResult{
			AlreadyDeleted: true,
			Message:        fmt.Sprintf("%s already deleted.", drink.Name),
		}, nil
	}

	tombstoned, err := s.drinkRepository.SetDrinkDeleted(ctx, id, time.Now())
	if err != nil {
		return domain.DrinkDeleteResult{}, err
	}
	// A concurrent delete got there first; its tombstone stands.
	if !tombstoned {
		return domain.DrinkDeleteResult{
			AlreadyDeleted: true,
			Message:        fmt.Sprintf("%s already deleted.", drink.Name),
		}, nil
	}

	return domain.DrinkDeleteResult{
		Message: fmt.Sprintf("%s deleted successfully.", drink.Name),
	}, nil
}

func (s *drinkService) UploadDrinkImage(ctx context.Context, req domain.UploadDrinkImageRequest) (domain.DrinkResponse, error) {
	if _, err := uuid.Parse(req.DrinkID); err != nil {
		return domain.DrinkResponse{}, fmt.Errorf("drink with id %s: %w", req.DrinkID, domain.ErrDrinkNotFound)
	}

	drink, err := s.drinkRepository.GetDrinkByID(ctx, req.DrinkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DrinkResponse{}, fmt.Errorf("drink with id %s: %w", req.DrinkID, domain.ErrDrinkNotFound)
		}
		return domain.DrinkResponse{}, err
	}

	var objectKey string
	if drink.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(drink.ImageURL)
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		fileName := fmt.Sprintf("%s-%d", drink.ID.String(), time.Now().Unix())
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "drinks", storage.AllowImage...)
	}
	if err != nil {
		return domain.DrinkResponse{}, err
	}

	drink.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.drinkRepository.UpdateDrink(ctx, drink); err != nil {
		return domain.DrinkResponse{}, err
	}
	return shapeDrink(drink), nil
}

// shapeDrink flattens a drink's junction rows into recipe lines for the API.
// Every stored association becomes exactly one line.
func shapeDrink(drink *entities.Drink) domain.DrinkResponse {
	ingredients := make([]domain.DrinkIngredientResponse, 0, len(drink.Ingredients))
	for _, line := range drink.Ingredients {
		name := ""
		if line.Ingredient != nil {
			name = line.Ingredient.Name
		}
		ingredients = append(ingredients, domain.DrinkIngredientResponse{
			Name:   name,
			Amount: formatAmount(line.Amount, line.AmountUnit),
		})
	}

	return domain.DrinkResponse{
		ID:          drink.ID.String(),
		Name:        drink.Name,
		Description: drink.Description,
		Notes:       drink.Notes,
		Directions:  drink.Directions,
		Published:   drink.Published,
		Serves:      drink.Serves,
		SaveCount:   drink.SaveCount,
		ImageURL:    drink.ImageURL,
		UserID:      drink.UserID.String(),
		CreatedAt:   drink.CreatedAt,
		UpdatedAt:   drink.UpdatedAt,
		Ingredients: ingredients,
	}
}

// formatAmount joins amount and unit into one display string, e.g. "2 oz".
func formatAmount(amount string, unit *string) string {
	if unit == nil || *unit == "" {
		return amount
	}
	return amount + " " + *unit
}
