package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bookit-api/internal/domain/user"
	"bookit-api/internal/infra"
	"bookit-api/internal/pkg/errs"
	"bookit-api/internal/pkg/password"
	"bookit-api/internal/usecase/shared"
)

// UpdateProfileInput carries optional profile changes; nil fields are left
// untouched.
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

type UserUseCase interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*user.User, error)
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserUseCase {
	return &userUseCaseImpl{uow: uow}
}

func (u *userUseCaseImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*user.User, error) {
	var updated *user.User
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Users().FindByID(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			name, err := user.NewName(*input.Name)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			current.ChangeName(name)
		}
		if input.Email != nil {
			email, err := user.NewEmail(*input.Email)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			current.ChangeEmail(email)
		}
		if input.Password != nil {
			pw, err := user.NewPassword(*input.Password)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			hash, err := password.HashPassword(pw.Value())
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			current.ChangePasswordHash(hash)
		}

		if err := tx.Users().Update(ctx, tx.DB(), current); err != nil {
			return err
		}

		updated = current
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errs.ErrEmailAlreadyExists)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return updated, nil
}
