package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockLeadService is a mock of LeadService interface
type MockLeadService struct {
	ctrl     *gomock.Controller
	recorder *MockLeadServiceMockRecorder
}

// MockLeadServiceMockRecorder is the mock recorder for MockLeadService
type MockLeadServiceMockRecorder struct {
	mock *MockLeadService
}

// NewMockLeadService creates a new mock instance
func NewMockLeadService(ctrl *gomock.Controller) *MockLeadService {
	mock := &MockLeadService{ctrl: ctrl}
	mock.recorder = &MockLeadServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockLeadService) EXPECT() *MockLeadServiceMockRecorder {
	return m.recorder
}

// List mocks base method
func (m *MockLeadService) List(ctx context.Context, orgID string, filter domain.LeadFilter) ([]*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, orgID, filter)
	ret0, _ := ret[0].([]*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List
func (mr *MockLeadServiceMockRecorder) List(ctx, orgID, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockLeadService)(nil).List), ctx, orgID, filter)
}

// Get mocks base method
func (m *MockLeadService) Get(ctx context.Context, orgID, id string) (*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, orgID, id)
	ret0, _ := ret[0].(*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get
func (mr *MockLeadServiceMockRecorder) Get(ctx, orgID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockLeadService)(nil).Get), ctx, orgID, id)
}

// Create mocks base method
func (m *MockLeadService) Create(ctx context.Context, orgID string, req *domain.CreateLeadRequest) (*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, orgID, req)
	ret0, _ := ret[0].(*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create
func (mr *MockLeadServiceMockRecorder) Create(ctx, orgID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockLeadService)(nil).Create), ctx, orgID, req)
}

// Update mocks base method
func (m *MockLeadService) Update(ctx context.Context, orgID string, req *domain.UpdateLeadRequest) (*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, orgID, req)
	ret0, _ := ret[0].(*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update
func (mr *MockLeadServiceMockRecorder) Update(ctx, orgID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockLeadService)(nil).Update), ctx, orgID, req)
}
