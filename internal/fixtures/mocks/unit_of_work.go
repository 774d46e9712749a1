// Package mocks holds testify mocks for the repository interfaces, in mockery's
// expecter style.
package mocks

import (
	"context"

	"github.com/amirasaad/onlinebanking/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock type for the UnitOfWork type
type MockUnitOfWork struct {
	mock.Mock
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &_m.Mock}
}

// Do provides a mock function with given fields: ctx, fn
func (_m *MockUnitOfWork) Do(ctx context.Context, fn func(repository.UnitOfWork) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for Do")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockUnitOfWork_Do_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Do'
type MockUnitOfWork_Do_Call struct {
	*mock.Call
}

// Do is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) Do(ctx interface{}, fn interface{}) *MockUnitOfWork_Do_Call {
	return &MockUnitOfWork_Do_Call{Call: _e.mock.On("Do", ctx, fn)}
}

func (_c *MockUnitOfWork_Do_Call) Run(run func(ctx context.Context, fn func(repository.UnitOfWork) error)) *MockUnitOfWork_Do_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(repository.UnitOfWork) error))
	})
	return _c
}

func (_c *MockUnitOfWork_Do_Call) Return(_a0 error) *MockUnitOfWork_Do_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUnitOfWork_Do_Call) RunAndReturn(run func(context.Context, func(repository.UnitOfWork) error) error) *MockUnitOfWork_Do_Call {
	_c.Call.Return(run)
	return _c
}

// AccountRepository provides a mock function with no fields
func (_m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AccountRepository")
	}

	if rf, ok := ret.Get(0).(func() (repository.AccountRepository, error)); ok {
		return rf()
	}
	var r0 repository.AccountRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.AccountRepository)
	}
	return r0, ret.Error(1)
}

// MockUnitOfWork_AccountRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AccountRepository'
type MockUnitOfWork_AccountRepository_Call struct {
	*mock.Call
}

// AccountRepository is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) AccountRepository() *MockUnitOfWork_AccountRepository_Call {
	return &MockUnitOfWork_AccountRepository_Call{Call: _e.mock.On("AccountRepository")}
}

func (_c *MockUnitOfWork_AccountRepository_Call) Return(_a0 repository.AccountRepository, _a1 error) *MockUnitOfWork_AccountRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUnitOfWork_AccountRepository_Call) RunAndReturn(run func() (repository.AccountRepository, error)) *MockUnitOfWork_AccountRepository_Call {
	_c.Call.Return(run)
	return _c
}

// TransactionRepository provides a mock function with no fields
func (_m *MockUnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for TransactionRepository")
	}

	if rf, ok := ret.Get(0).(func() (repository.TransactionRepository, error)); ok {
		return rf()
	}
	var r0 repository.TransactionRepository
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.TransactionRepository)
	}
	return r0, ret.Error(1)
}

// MockUnitOfWork_TransactionRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TransactionRepository'
type MockUnitOfWork_TransactionRepository_Call struct {
	*mock.Call
}

// TransactionRepository is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) TransactionRepository() *MockUnitOfWork_TransactionRepository_Call {
	return &MockUnitOfWork_TransactionRepository_Call{Call: _e.mock.On("TransactionRepository")}
}

func (_c *MockUnitOfWork_TransactionRepository_Call) Return(_a0 repository.TransactionRepository, _a1 error) *MockUnitOfWork_TransactionRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUnitOfWork_TransactionRepository_Call) RunAndReturn(run func() (repository.TransactionRepository, error)) *MockUnitOfWork_TransactionRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)
