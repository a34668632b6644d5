package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookit-api/internal/domain/user"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
	"bookit-api/internal/pkg/clock"
	"bookit-api/internal/pkg/errs"
	"bookit-api/internal/pkg/jwt"
	"bookit-api/internal/pkg/password"
	"bookit-api/internal/usecase/shared"
)

type AuthUseCase interface {
	Register(ctx context.Context, name string, credentials user.Credentials) (*user.User, error)
	Login(ctx context.Context, credentials user.Credentials) (jwt.TokenPair, *user.User, error)
	Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	userRepo   shared.UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(uow shared.UnitOfWork, userRepo shared.UserRepository, jwtService *jwt.Service, clock clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		uow:        uow,
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, name string, credentials user.Credentials) (*user.User, error) {
	userName, err := user.NewName(name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	newUser := user.NewUser(a.clock.Now(), userName, credentials.Email(), hash)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), newUser)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailAlreadyExists)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return newUser, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (jwt.TokenPair, *user.User, error) {
	var found *user.User
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		u, err := a.userRepo.FindByEmail(ctx, dbtx, credentials.Email().Value())
		if err != nil {
			return err
		}
		found = u
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return jwt.TokenPair{}, nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return jwt.TokenPair{}, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(found.PasswordHash(), credentials.Password().Value()); err != nil {
		return jwt.TokenPair{}, nil, errs.ErrInvalidCredentials
	}

	pair, err := a.jwtService.GenerateTokenPair(found.ID(), found.Role())
	if err != nil {
		return jwt.TokenPair{}, nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return pair, found, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The role is
// re-read from storage so role changes take effect at rotation time.
func (a *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return jwt.TokenPair{}, errs.Mark(err, errs.ErrTokenValidation)
	}

	current, err := a.GetCurrentUser(ctx, claims.UserID)
	if err != nil {
		return jwt.TokenPair{}, errs.Mark(err, errs.ErrTokenValidation)
	}

	pair, err := a.jwtService.GenerateTokenPair(current.ID(), current.Role())
	if err != nil {
		return jwt.TokenPair{}, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return pair, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	var found *user.User
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		u, err := a.userRepo.FindByID(ctx, dbtx, userID)
		if err != nil {
			return err
		}
		found = u
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return found, nil
}
