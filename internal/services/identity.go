package service

import (
	"context"
	"database/sql"
	stdErrors "errors"

	"github.com/gamerfleet/merch-backend/internal/errors"
	"github.com/gamerfleet/merch-backend/internal/models"
	repository "github.com/gamerfleet/merch-backend/internal/repositories"
)

// IdentityService turns an external identity assertion into the local
// surrogate user id, creating the user row on first contact.
type IdentityService interface {
	Resolve(ctx context.Context, identity *models.Identity) (int64, error)
}

type identityService struct {
	repo repository.UserRepository
}

func NewIdentityService(repo repository.UserRepository) IdentityService {
	return &identityService{repo: repo}
}

func (s *identityService) Resolve(ctx context.Context, identity *models.Identity) (int64, error) {

	userID, err := s.repo.EnsureUser(ctx, identity.Subject, identity.Email)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return 0, errors.StorageInconsistencyError("User row missing after creation").WithError(err)
		}
		return 0, errors.DatabaseError("Failed to resolve user").WithError(err)
	}

	return userID, nil
}
