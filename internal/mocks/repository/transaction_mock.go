package repository

import (
	"context"

	"bistro/internal/domain/repository"
)

// StubRepositoryFactory hands out fixed repositories, usually mocks.
type StubRepositoryFactory struct {
	Users       repository.UserRepository
	Restaurants repository.RestaurantRepository
	Reviews     repository.ReviewRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) RestaurantRepo() repository.RestaurantRepository {
	return f.Restaurants
}

func (f *StubRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return f.Reviews
}

// PassthroughTransactionManager runs the callback directly against the
// stub factory, with no transaction semantics. BeginErr, when set, is
// returned without invoking the callback, simulating a failure to open
// the transaction.
type PassthroughTransactionManager struct {
	Factory  repository.RepositoryFactory
	BeginErr error
}

func (tm *PassthroughTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if tm.BeginErr != nil {
		return tm.BeginErr
	}

	return fn(tm.Factory)
}
