package mocks

import (
	"context"

	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
	"github.com/amirasaad/onlinebanking/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepository type
type MockAccountRepository struct {
	mock.Mock
}

type MockAccountRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountRepository) EXPECT() *MockAccountRepository_Expecter {
	return &MockAccountRepository_Expecter{mock: &_m.Mock}
}

// MockAccountRepository_Call is a *mock.Call with typed Return helpers shared by
// every AccountRepository method.
type MockAccountRepository_Call struct {
	*mock.Call
}

// Return sets the values returned by the call.
func (_c *MockAccountRepository_Call) Return(returnArguments ...interface{}) *MockAccountRepository_Call {
	_c.Call.Return(returnArguments...)
	return _c
}

// RunAndReturn makes the call return whatever run returns. run must have the
// method's exact signature.
func (_c *MockAccountRepository_Call) RunAndReturn(run interface{}) *MockAccountRepository_Call {
	_c.Call.Return(run)
	return _c
}

// Load provides a mock function with given fields: ctx
func (_m *MockAccountRepository) Load(ctx context.Context) (repository.LoadReport, error) {
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

func (_e *MockAccountRepository_Expecter) Load(ctx interface{}) *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("Load", ctx)}
}

// Save provides a mock function with given fields: ctx
func (_m *MockAccountRepository) Save(ctx context.Context) error {
	ret := _m.Called(ctx)
	if len(ret) == 0 {
		panic("no return value specified for Save")
	}
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		return rf(ctx)
	}
	return ret.Error(0)
}

func (_e *MockAccountRepository_Expecter) Save(ctx interface{}) *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("Save", ctx)}
}

// Count provides a mock function with no fields
func (_m *MockAccountRepository) Count() int {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for Count")
	}
	if rf, ok := ret.Get(0).(func() int); ok {
		return rf()
	}
	return ret.Int(0)
}

func (_e *MockAccountRepository_Expecter) Count() *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("Count")}
}

// All provides a mock function with no fields
func (_m *MockAccountRepository) All() []*account.Account {
	ret := _m.Called()
	if len(ret) == 0 {
		panic("no return value specified for All")
	}
	if rf, ok := ret.Get(0).(func() []*account.Account); ok {
		return rf()
	}
	var r0 []*account.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*account.Account)
	}
	return r0
}

func (_e *MockAccountRepository_Expecter) All() *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("All")}
}

// FindByNumber provides a mock function with given fields: number
func (_m *MockAccountRepository) FindByNumber(number int) (*account.Account, error) {
	ret := _m.Called(number)
	if len(ret) == 0 {
		panic("no return value specified for FindByNumber")
	}
	if rf, ok := ret.Get(0).(func(int) (*account.Account, error)); ok {
		return rf(number)
	}
	var r0 *account.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*account.Account)
	}
	return r0, ret.Error(1)
}

func (_e *MockAccountRepository_Expecter) FindByNumber(number interface{}) *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("FindByNumber", number)}
}

// Register provides a mock function with given fields: ctx, acc
func (_m *MockAccountRepository) Register(ctx context.Context, acc *account.Account) error {
	ret := _m.Called(ctx, acc)
	if len(ret) == 0 {
		panic("no return value specified for Register")
	}
	if rf, ok := ret.Get(0).(func(context.Context, *account.Account) error); ok {
		return rf(ctx, acc)
	}
	return ret.Error(0)
}

func (_e *MockAccountRepository_Expecter) Register(ctx interface{}, acc interface{}) *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("Register", ctx, acc)}
}

// UpdateBalance provides a mock function with given fields: ctx, number, balance
func (_m *MockAccountRepository) UpdateBalance(ctx context.Context, number int, balance money.Money) error {
	ret := _m.Called(ctx, number, balance)
	if len(ret) == 0 {
		panic("no return value specified for UpdateBalance")
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, money.Money) error); ok {
		return rf(ctx, number, balance)
	}
	return ret.Error(0)
}

func (_e *MockAccountRepository_Expecter) UpdateBalance(ctx interface{}, number interface{}, balance interface{}) *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("UpdateBalance", ctx, number, balance)}
}

// UpdateBalances provides a mock function with given fields: ctx, updates
// The variadic updates are matched as a single slice argument.
func (_m *MockAccountRepository) UpdateBalances(ctx context.Context, updates ...repository.BalanceUpdate) error {
	ret := _m.Called(ctx, updates)
	if len(ret) == 0 {
		panic("no return value specified for UpdateBalances")
	}
	if rf, ok := ret.Get(0).(func(context.Context, ...repository.BalanceUpdate) error); ok {
		return rf(ctx, updates...)
	}
	return ret.Error(0)
}

func (_e *MockAccountRepository_Expecter) UpdateBalances(ctx interface{}, updates interface{}) *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("UpdateBalances", ctx, updates)}
}

// UpdatePassword provides a mock function with given fields: ctx, number, password
func (_m *MockAccountRepository) UpdatePassword(ctx context.Context, number int, password string) error {
	ret := _m.Called(ctx, number, password)
	if len(ret) == 0 {
		panic("no return value specified for UpdatePassword")
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) error); ok {
		return rf(ctx, number, password)
	}
	return ret.Error(0)
}

func (_e *MockAccountRepository_Expecter) UpdatePassword(ctx interface{}, number interface{}, password interface{}) *MockAccountRepository_Call {
	return &MockAccountRepository_Call{Call: _e.mock.On("UpdatePassword", ctx, number, password)}
}

var _ repository.AccountRepository = (*MockAccountRepository)(nil)

// NewMockAccountRepository creates a new instance of MockAccountRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
