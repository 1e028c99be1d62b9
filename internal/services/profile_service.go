package services

import (
	"context"

	"github.com/google/uuid"

	dbm "mealweek/internal/models/db_models"
	"mealweek/internal/models/request_models"
	"mealweek/internal/repositories"
	"mealweek/pkg/utils"
)

type ProfileServiceInterface interface {
	SaveProfile(ctx context.Context, accountID string, prefs request_models.PlanPreferences) (*dbm.DietaryProfile, error)
	GetProfile(ctx context.Context, accountID string) (*dbm.DietaryProfile, error)
	DeleteProfile(ctx context.Context, accountID string) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

// SaveProfile upserts the single dietary profile of the account.
func (p *ProfileService) SaveProfile(ctx context.Context, accountID string, prefs request_models.PlanPreferences) (*dbm.DietaryProfile, error) {
	if _, ok := utils.GoalMacroRatios[prefs.Goal]; !ok {
		return nil, utils.ErrInvalidInput
	}
	if prefs.CaloriesTarget <= 0 {
		return nil, utils.ErrInvalidInput
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	profile := &dbm.DietaryProfile{
		AccountID:          accountUUID,
		Goal:               prefs.Goal,
		DietType:           prefs.DietType,
		CaloriesTarget:     prefs.CaloriesTarget,
		Allergies:          prefs.Allergies,
		CuisinePreferences: prefs.CuisinePreferences,
		Dislikes:           prefs.Dislikes,
	}

	saved, err := p.profileRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return saved, nil
}

// GetProfile returns (nil, nil) for an account without a profile; the
// endpoint renders that as data: null.
func (p *ProfileService) GetProfile(ctx context.Context, accountID string) (*dbm.DietaryProfile, error) {

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	profile, err := p.profileRepo.GetByAccountId(ctx, accountUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return profile, nil
}

func (p *ProfileService) DeleteProfile(ctx context.Context, accountID string) error {

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if err := p.profileRepo.DeleteByAccountId(ctx, accountUUID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
