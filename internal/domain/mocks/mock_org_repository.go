package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockOrgRepository is a mock of OrgRepository interface
type MockOrgRepository struct {
	ctrl     *gomock.Controller
	recorder *MockOrgRepositoryMockRecorder
}

// MockOrgRepositoryMockRecorder is the mock recorder for MockOrgRepository
type MockOrgRepositoryMockRecorder struct {
	mock *MockOrgRepository
}

// NewMockOrgRepository creates a new mock instance
func NewMockOrgRepository(ctrl *gomock.Controller) *MockOrgRepository {
	mock := &MockOrgRepository{ctrl: ctrl}
	mock.recorder = &MockOrgRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockOrgRepository) EXPECT() *MockOrgRepositoryMockRecorder {
	return m.recorder
}

// GetByID mocks base method
func (m *MockOrgRepository) GetByID(ctx context.Context, id string) (*domain.Org, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Org)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID
func (mr *MockOrgRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockOrgRepository)(nil).GetByID), ctx, id)
}

// List mocks base method
func (m *MockOrgRepository) List(ctx context.Context) ([]*domain.Org, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*domain.Org)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List
func (mr *MockOrgRepositoryMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockOrgRepository)(nil).List), ctx)
}

// Update mocks base method
func (m *MockOrgRepository) Update(ctx context.Context, org *domain.Org) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, org)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update
func (mr *MockOrgRepositoryMockRecorder) Update(ctx, org interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockOrgRepository)(nil).Update), ctx, org)
}
