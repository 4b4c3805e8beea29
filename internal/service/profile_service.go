package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
	"github.com/limbo/fitdash/internal/repository"
	"github.com/limbo/fitdash/pkg/entity"
)

type ProfileService struct {
	repo repository.ProfilesRepositoryI
	now  func() time.Time
}

func NewProfileService(repo repository.ProfilesRepositoryI) *ProfileService {
	if repo == nil {
		log.Fatal("on profile service provided nil repo")
	}
	InitValidator()
	return &ProfileService{
		repo: repo,
		now:  time.Now,
	}
}

func (ps *ProfileService) Get(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	profile, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching profile error: " + err.Error())
	}
	return profile, nil
}

func (ps *ProfileService) Save(ctx context.Context, uid uuid.UUID, req *ProfileRequest) (*entity.UserProfile, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty profile", errorvalues.ErrValidation)
	}
	if err := validate.Struct(*req); err != nil {
		return nil, validationError(errorvalues.ErrValidation, err)
	}
	profile := &entity.UserProfile{
		UserID:        uid,
		Height:        req.Height,
		Weight:        req.Weight,
		TargetWeight:  req.TargetWeight,
		Goal:          req.Goal,
		ActivityLevel: req.ActivityLevel,
		UpdatedAt:     ps.now().UTC(),
	}
	if err := ps.repo.Upsert(ctx, profile); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, err
		}
		return nil, errors.New("repository saving profile error: " + err.Error())
	}
	return profile, nil
}
