package mocks

import (
	"context"

	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepository type
type MockTransactionRepository struct {
	mock.Mock
}

type MockTransactionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionRepository) EXPECT() *MockTransactionRepository_Expecter {
	return &MockTransactionRepository_Expecter{mock: &_m.Mock}
}

// MockTransactionRepository_Call is a *mock.Call shared by every
// TransactionRepository method.
type MockTransactionRepository_Call struct {
	*mock.Call
}

func (_c *MockTransactionRepository_Call) Return(returnArguments ...interface{}) *MockTransactionRepository_Call {
	_c.Call.Return(returnArguments...)
	return _c
}

func (_c *MockTransactionRepository_Call) RunAndReturn(run interface{}) *MockTransactionRepository_Call {
	_c.Call.Return(run)
	return _c
}

// Load provides a mock function with given fields: ctx
func (_m *MockTransactionRepository) Load(ctx context.Context) (repository.LoadReport, error) {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for Load")
	}
	if rf, ok := ret.Get(0).(func(context.Context) (repository.LoadReport, error)); ok {
		return rf(ctx)
	}
	var r0 repository.LoadReport
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.LoadReport)
	}
	return r0, ret.Error(1)
}

func (_e *MockTransactionRepository_Expecter) Load(ctx interface{}) *MockTransactionRepository_Call {
	return &MockTransactionRepository_Call{Call: _e.mock.On("Load", ctx)}
}

// Append provides a mock function with given fields: ctx, tx
func (_m *MockTransactionRepository) Append(ctx context.Context, tx *account.Transaction) error {
	ret := _m.Called(ctx, tx)
	if len(ret) == 0 {
		panic("no return value specified for Append")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *account.Transaction) error); ok {
		return rf(ctx, tx)
	}
	return ret.Error(0)
}

func (_e *MockTransactionRepository_Expecter) Append(ctx interface{}, tx interface{}) *MockTransactionRepository_Call {
	return &MockTransactionRepository_Call{Call: _e.mock.On("Append", ctx, tx)}
}

// HistoryFor provides a mock function with given fields: number
func (_m *MockTransactionRepository) HistoryFor(number int) []*account.Transaction {
	ret := _m.Called(number)
	if len(ret) == 0 {
		panic("no return value specified for HistoryFor")
	}
	if rf, ok := ret.Get(0).(func(int) []*account.Transaction); ok {
		return rf(number)
	}
	var r0 []*account.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*account.Transaction)
	}
	return r0
}

func (_e *MockTransactionRepository_Expecter) HistoryFor(number interface{}) *MockTransactionRepository_Call {
	return &MockTransactionRepository_Call{Call: _e.mock.On("HistoryFor", number)}
}

// Count provides a mock function with no fields
func (_m *MockTransactionRepository) Count() int {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for Count")
	}
	if rf, ok := ret.Get(0).(func() int); ok {
		return rf()
	}
	return ret.Int(0)
}

func (_e *MockTransactionRepository_Expecter) Count() *MockTransactionRepository_Call {
	return &MockTransactionRepository_Call{Call: _e.mock.On("Count")}
}

var _ repository.TransactionRepository = (*MockTransactionRepository)(nil)

// NewMockTransactionRepository creates a new instance of MockTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
