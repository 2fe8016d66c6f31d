package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockTodayQueueService is a mock of TodayQueueService interface
type MockTodayQueueService struct {
	ctrl     *gomock.Controller
	recorder *MockTodayQueueServiceMockRecorder
}

// MockTodayQueueServiceMockRecorder is the mock recorder for MockTodayQueueService
type MockTodayQueueServiceMockRecorder struct {
	mock *MockTodayQueueService
}

// NewMockTodayQueueService creates a new mock instance
func NewMockTodayQueueService(ctrl *gomock.Controller) *MockTodayQueueService {
	mock := &MockTodayQueueService{ctrl: ctrl}
	mock.recorder = &MockTodayQueueServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockTodayQueueService) EXPECT() *MockTodayQueueServiceMockRecorder {
	return m.recorder
}

// GenerateTodayQueue mocks base method
func (m *MockTodayQueueService) GenerateTodayQueue(ctx context.Context, orgID string) ([]*domain.TodayQueueItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateTodayQueue", ctx, orgID)
	ret0, _ := ret[0].([]*domain.TodayQueueItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateTodayQueue indicates an expected call of GenerateTodayQueue
func (mr *MockTodayQueueServiceMockRecorder) GenerateTodayQueue(ctx, orgID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateTodayQueue", reflect.TypeOf((*MockTodayQueueService)(nil).GenerateTodayQueue), ctx, orgID)
}
