package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bookit-api/internal/domain/service"
	"bookit-api/internal/infra"
	"bookit-api/internal/infra/db"
	"bookit-api/internal/pkg/clock"
	"bookit-api/internal/pkg/errs"
	"bookit-api/internal/usecase/shared"
)

type ServiceInput struct {
	Title           string
	Description     string
	Price           float64
	DurationMinutes int
	IsActive        bool
}

// UpdateServiceInput carries a partial catalog update; nil fields keep their
// current values.
type UpdateServiceInput struct {
	Title           *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	IsActive        *bool
}

type ServiceUseCase interface {
	Create(ctx context.Context, input ServiceInput) (*service.Service, error)
	Get(ctx context.Context, id uuid.UUID) (*service.Service, error)
	List(ctx context.Context, filter shared.ServiceFilter) ([]*service.Service, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateServiceInput) (*service.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceUseCaseImpl struct {
	uow         shared.UnitOfWork
	serviceRepo shared.ServiceRepository
	clock       clock.Clock
}

func NewServiceUseCase(uow shared.UnitOfWork, serviceRepo shared.ServiceRepository, clock clock.Clock) ServiceUseCase {
	return &serviceUseCaseImpl{
		uow:         uow,
		serviceRepo: serviceRepo,
		clock:       clock,
	}
}

func (s *serviceUseCaseImpl) Create(ctx context.Context, input ServiceInput) (*service.Service, error) {
	svc, err := service.NewService(s.clock.Now(), input.Title, input.Description, input.Price, input.DurationMinutes, input.IsActive)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Create(ctx, tx.DB(), svc)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return svc, nil
}

func (s *serviceUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	var found *service.Service
	err := s.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		svc, err := s.serviceRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			return err
		}
		found = svc
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return found, nil
}

func (s *serviceUseCaseImpl) List(ctx context.Context, filter shared.ServiceFilter) ([]*service.Service, error) {
	var services []*service.Service
	err := s.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		list, err := s.serviceRepo.List(ctx, dbtx, filter)
		if err != nil {
			return err
		}
		services = list
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return services, nil
}

func (s *serviceUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input UpdateServiceInput) (*service.Service, error) {
	var updated *service.Service
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Services().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		title := current.Title()
		description := current.Description()
		price := current.Price()
		duration := current.DurationMinutes()
		isActive := current.IsActive()
		if input.Title != nil {
			title = *input.Title
		}
		if input.Description != nil {
			description = *input.Description
		}
		if input.Price != nil {
			price = *input.Price
		}
		if input.DurationMinutes != nil {
			duration = *input.DurationMinutes
		}
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		if err := current.Update(title, description, price, duration, isActive); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Services().Update(ctx, tx.DB(), current); err != nil {
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
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return updated, nil
}

func (s *serviceUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrServiceNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return nil
}
