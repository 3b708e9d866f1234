package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/shopcore/customer-service/internal/errors"
	"github.com/shopcore/customer-service/internal/events"
	"github.com/shopcore/customer-service/internal/model"
	"github.com/shopcore/customer-service/internal/repository"
)

// CustomerStore is the contract the controller delegates to.
type CustomerStore interface {
	List(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, in model.CustomerInput) (*model.Customer, error)
	Update(ctx context.Context, id string, in model.CustomerInput) (*model.Customer, error)
	Delete(ctx context.Context, id string) (*model.Customer, error)
}

// CustomerService implements CustomerStore over the repository and
// publishes a change event after every successful mutation.
type CustomerService struct {
	Repo      repository.CustomerRepositoryInterface
	Publisher events.Publisher
	Logger    *zap.Logger
}

// NewCustomerService wires the store with its collaborators.
func NewCustomerService(repo repository.CustomerRepositoryInterface, publisher events.Publisher, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{Repo: repo, Publisher: publisher, Logger: logger}
}

// List returns all customers, possibly an empty slice.
func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.Repo.ListAll(ctx)
}

// Get returns the customer or a CustomerNotFoundError.
func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewCustomerNotFound(id)
	}
	return c, nil
}

// Exists reports whether a customer exists for the ID.
func (s *CustomerService) Exists(ctx context.Context, id string) (bool, error) {
	return s.Repo.Exists(ctx, id)
}

// Create stores a new customer and emits a created event.
func (s *CustomerService) Create(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	c, err := s.Repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(events.ActionCreated, c.ID)
	return c, nil
}

// Update overwrites an existing customer and emits an updated event.
func (s *CustomerService) Update(ctx context.Context, id string, in model.CustomerInput) (*model.Customer, error) {
	c, err := s.Repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewCustomerNotFound(id)
	}
	s.publish(events.ActionUpdated, c.ID)
	return c, nil
}

// Delete removes the customer, returning the deleted row, and emits a
// deleted event.
func (s *CustomerService) Delete(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewCustomerNotFound(id)
	}
	s.publish(events.ActionDeleted, c.ID)
	return c, nil
}

// publish emits a change event; a publish failure is logged, never
// turned into a request failure.
func (s *CustomerService) publish(action, customerID string) {
	if s.Publisher == nil {
		return
	}
	ev := events.CustomerEvent{
		Action:     action,
		CustomerID: customerID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ev); err != nil {
		s.Logger.Error("failed to publish customer event",
			zap.String("action", action),
			zap.String("customer_id", customerID),
			zap.Error(err))
	}
}
