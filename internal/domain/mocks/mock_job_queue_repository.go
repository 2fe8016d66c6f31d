package mocks

import (
	"context"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockJobQueueRepository is a mock of JobQueueRepository interface
type MockJobQueueRepository struct {
	ctrl     *gomock.Controller
	recorder *MockJobQueueRepositoryMockRecorder
}

// MockJobQueueRepositoryMockRecorder is the mock recorder for MockJobQueueRepository
type MockJobQueueRepositoryMockRecorder struct {
	mock *MockJobQueueRepository
}

// NewMockJobQueueRepository creates a new mock instance
func NewMockJobQueueRepository(ctrl *gomock.Controller) *MockJobQueueRepository {
	mock := &MockJobQueueRepository{ctrl: ctrl}
	mock.recorder = &MockJobQueueRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockJobQueueRepository) EXPECT() *MockJobQueueRepositoryMockRecorder {
	return m.recorder
}

// Enqueue mocks base method
func (m *MockJobQueueRepository) Enqueue(ctx context.Context, entry *domain.JobQueueEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enqueue", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// Enqueue indicates an expected call of Enqueue
func (mr *MockJobQueueRepositoryMockRecorder) Enqueue(ctx, entry interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enqueue", reflect.TypeOf((*MockJobQueueRepository)(nil).Enqueue), ctx, entry)
}

// FetchPending mocks base method
func (m *MockJobQueueRepository) FetchPending(ctx context.Context, topic string, limit int) ([]*domain.JobQueueEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchPending", ctx, topic, limit)
	ret0, _ := ret[0].([]*domain.JobQueueEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FetchPending indicates an expected call of FetchPending
func (mr *MockJobQueueRepositoryMockRecorder) FetchPending(ctx, topic, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchPending", reflect.TypeOf((*MockJobQueueRepository)(nil).FetchPending), ctx, topic, limit)
}

// MarkAsProcessing mocks base method
func (m *MockJobQueueRepository) MarkAsProcessing(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkAsProcessing", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkAsProcessing indicates an expected call of MarkAsProcessing
func (mr *MockJobQueueRepositoryMockRecorder) MarkAsProcessing(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkAsProcessing", reflect.TypeOf((*MockJobQueueRepository)(nil).MarkAsProcessing), ctx, id)
}

// MarkAsDone mocks base method
func (m *MockJobQueueRepository) MarkAsDone(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkAsDone", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkAsDone indicates an expected call of MarkAsDone
func (mr *MockJobQueueRepositoryMockRecorder) MarkAsDone(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkAsDone", reflect.TypeOf((*MockJobQueueRepository)(nil).MarkAsDone), ctx, id)
}

// MarkAsFailed mocks base method
func (m *MockJobQueueRepository) MarkAsFailed(ctx context.Context, id string, errorMsg string, nextRetryAt *time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkAsFailed", ctx, id, errorMsg, nextRetryAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkAsFailed indicates an expected call of MarkAsFailed
func (mr *MockJobQueueRepositoryMockRecorder) MarkAsFailed(ctx, id, errorMsg, nextRetryAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkAsFailed", reflect.TypeOf((*MockJobQueueRepository)(nil).MarkAsFailed), ctx, id, errorMsg, nextRetryAt)
}

// MoveToDeadLetter mocks base method
func (m *MockJobQueueRepository) MoveToDeadLetter(ctx context.Context, entry *domain.JobQueueEntry, finalError string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MoveToDeadLetter", ctx, entry, finalError)
	ret0, _ := ret[0].(error)
	return ret0
}

// MoveToDeadLetter indicates an expected call of MoveToDeadLetter
func (mr *MockJobQueueRepositoryMockRecorder) MoveToDeadLetter(ctx, entry, finalError interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MoveToDeadLetter", reflect.TypeOf((*MockJobQueueRepository)(nil).MoveToDeadLetter), ctx, entry, finalError)
}

// GetStats mocks base method
func (m *MockJobQueueRepository) GetStats(ctx context.Context) (*domain.JobQueueStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStats", ctx)
	ret0, _ := ret[0].(*domain.JobQueueStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStats indicates an expected call of GetStats
func (mr *MockJobQueueRepositoryMockRecorder) GetStats(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStats", reflect.TypeOf((*MockJobQueueRepository)(nil).GetStats), ctx)
}
