package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockWorkOrderRepository is a mock of WorkOrderRepository interface
type MockWorkOrderRepository struct {
	ctrl     *gomock.Controller
	recorder *MockWorkOrderRepositoryMockRecorder
}

// MockWorkOrderRepositoryMockRecorder is the mock recorder for MockWorkOrderRepository
type MockWorkOrderRepositoryMockRecorder struct {
	mock *MockWorkOrderRepository
}

// NewMockWorkOrderRepository creates a new mock instance
func NewMockWorkOrderRepository(ctrl *gomock.Controller) *MockWorkOrderRepository {
	mock := &MockWorkOrderRepository{ctrl: ctrl}
	mock.recorder = &MockWorkOrderRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockWorkOrderRepository) EXPECT() *MockWorkOrderRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method
func (m *MockWorkOrderRepository) Create(ctx context.Context, workOrder *domain.WorkOrder) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, workOrder)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create
func (mr *MockWorkOrderRepositoryMockRecorder) Create(ctx, workOrder interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockWorkOrderRepository)(nil).Create), ctx, workOrder)
}

// GetByLead mocks base method
func (m *MockWorkOrderRepository) GetByLead(ctx context.Context, leadID string) (*domain.WorkOrder, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByLead", ctx, leadID)
	ret0, _ := ret[0].(*domain.WorkOrder)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByLead indicates an expected call of GetByLead
func (mr *MockWorkOrderRepositoryMockRecorder) GetByLead(ctx, leadID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByLead", reflect.TypeOf((*MockWorkOrderRepository)(nil).GetByLead), ctx, leadID)
}
