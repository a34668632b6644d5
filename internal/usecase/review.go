package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bookit-api/internal/domain/review"
	"bookit-api/internal/domain/user"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
	"bookit-api/internal/pkg/clock"
	"bookit-api/internal/pkg/errs"
	"bookit-api/internal/usecase/shared"
)

type ReviewInput struct {
	Rating  int
	Comment string
}

type ReviewUseCase interface {
	Create(ctx context.Context, actorID uuid.UUID, bookingID uuid.UUID, input ReviewInput) (*review.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*review.Review, error)
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*review.Review, error)
	Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role, input ReviewInput) (*review.Review, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error
}

type reviewUseCaseImpl struct {
	uow         shared.UnitOfWork
	reviewRepo  shared.ReviewRepository
	serviceRepo shared.ServiceRepository
	clock       clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, reviewRepo shared.ReviewRepository, serviceRepo shared.ServiceRepository, clock clock.Clock) ReviewUseCase {
	return &reviewUseCaseImpl{
		uow:         uow,
		reviewRepo:  reviewRepo,
		serviceRepo: serviceRepo,
		clock:       clock,
	}
}

// Create enforces the review gate: the booking must exist, belong to the
// author, and be completed. One review per booking is guaranteed by the
// unique index.
func (r *reviewUseCaseImpl) Create(ctx context.Context, actorID uuid.UUID, bookingID uuid.UUID, input ReviewInput) (*review.Review, error) {
	rating, comment, err := validateReviewInput(input)
	if err != nil {
		return nil, err
	}

	var created *review.Review
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return err
		}
		if !b.IsOwnedBy(actorID) {
			return errs.ErrForbidden
		}

		rev, err := review.NewReview(r.clock.Now(), b, actorID, rating, comment)
		if err != nil {
			return errs.Mark(err, errs.ErrBookingNotCompleted)
		}

		if err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			return err
		}

		created = rev
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound),
			errors.Is(err, errs.ErrForbidden),
			errors.Is(err, errs.ErrBookingNotCompleted):
			return nil, err
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errs.ErrReviewAlreadyExists)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return created, nil
}

func (r *reviewUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var found *review.Review
	err := r.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		rev, err := r.reviewRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			return err
		}
		found = rev
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReviewNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return found, nil
}

func (r *reviewUseCaseImpl) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*review.Review, error) {
	var reviews []*review.Review
	err := r.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if _, err := r.serviceRepo.FindByID(ctx, dbtx, serviceID); err != nil {
			return err
		}

		list, err := r.reviewRepo.ListByService(ctx, dbtx, serviceID)
		if err != nil {
			return err
		}
		reviews = list
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return reviews, nil
}

func (r *reviewUseCaseImpl) Update(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role, input ReviewInput) (*review.Review, error) {
	rating, comment, err := validateReviewInput(input)
	if err != nil {
		return nil, err
	}

	var updated *review.Review
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reviews().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		// Only the author may edit; admins can delete but not rewrite.
		if !current.IsOwnedBy(actorID) {
			return errs.ErrForbidden
		}

		current.Update(rating, comment)
		if err := tx.Reviews().Update(ctx, tx.DB(), current); err != nil {
			return err
		}

		updated = current
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrReviewNotFound)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return updated, nil
}

func (r *reviewUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reviews().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if !canModifyReview(current, actorID, role) {
			return errs.ErrForbidden
		}

		return tx.Reviews().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrReviewNotFound)
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return nil
}

func validateReviewInput(input ReviewInput) (review.Rating, review.Comment, error) {
	rating, err := review.NewRating(input.Rating)
	if err != nil {
		return 0, "", errs.Mark(err, errs.ErrDomainValidation)
	}
	comment, err := review.NewComment(input.Comment)
	if err != nil {
		return 0, "", errs.Mark(err, errs.ErrDomainValidation)
	}
	return rating, comment, nil
}
