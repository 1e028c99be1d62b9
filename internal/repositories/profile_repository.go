package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mealweek/internal/models/db_models"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *db_models.DietaryProfile) (*db_models.DietaryProfile, error)
	GetByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.DietaryProfile, error)
	DeleteByAccountId(ctx context.Context, accountID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert keeps at most one profile per account: the existing row is
// overwritten in place, otherwise a new one is created.
func (p *profileRepository) Upsert(ctx context.Context, profile *db_models.DietaryProfile) (*db_models.DietaryProfile, error) {

	existing, err := p.GetByAccountId(ctx, profile.AccountID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if err := p.db.WithContext(ctx).Create(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	}

	existing.Goal = profile.Goal
	existing.DietType = profile.DietType
	existing.CaloriesTarget = profile.CaloriesTarget
	existing.Allergies = profile.Allergies
	existing.CuisinePreferences = profile.CuisinePreferences
	existing.Dislikes = profile.Dislikes

	if err := p.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (p *profileRepository) GetByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.DietaryProfile, error) {

	var profile db_models.DietaryProfile
	err := p.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (p *profileRepository) DeleteByAccountId(ctx context.Context, accountID uuid.UUID) error {
	return p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&db_models.DietaryProfile{}).Error
}
