package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockChatAccountRepository is a mock of ChatAccountRepository interface
type MockChatAccountRepository struct {
	ctrl     *gomock.Controller
	recorder *MockChatAccountRepositoryMockRecorder
}

// MockChatAccountRepositoryMockRecorder is the mock recorder for MockChatAccountRepository
type MockChatAccountRepositoryMockRecorder struct {
	mock *MockChatAccountRepository
}

// NewMockChatAccountRepository creates a new mock instance
func NewMockChatAccountRepository(ctrl *gomock.Controller) *MockChatAccountRepository {
	mock := &MockChatAccountRepository{ctrl: ctrl}
	mock.recorder = &MockChatAccountRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockChatAccountRepository) EXPECT() *MockChatAccountRepositoryMockRecorder {
	return m.recorder
}

// GetActiveByExternalID mocks base method
func (m *MockChatAccountRepository) GetActiveByExternalID(ctx context.Context, provider, externalPhoneID string) (*domain.ChatAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveByExternalID", ctx, provider, externalPhoneID)
	ret0, _ := ret[0].(*domain.ChatAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveByExternalID indicates an expected call of GetActiveByExternalID
func (mr *MockChatAccountRepositoryMockRecorder) GetActiveByExternalID(ctx, provider, externalPhoneID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveByExternalID", reflect.TypeOf((*MockChatAccountRepository)(nil).GetActiveByExternalID), ctx, provider, externalPhoneID)
}

// GetActiveByOrg mocks base method
func (m *MockChatAccountRepository) GetActiveByOrg(ctx context.Context, orgID, provider string) (*domain.ChatAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveByOrg", ctx, orgID, provider)
	ret0, _ := ret[0].(*domain.ChatAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveByOrg indicates an expected call of GetActiveByOrg
func (mr *MockChatAccountRepositoryMockRecorder) GetActiveByOrg(ctx, orgID, provider interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveByOrg", reflect.TypeOf((*MockChatAccountRepository)(nil).GetActiveByOrg), ctx, orgID, provider)
}

// Upsert mocks base method
func (m *MockChatAccountRepository) Upsert(ctx context.Context, account *domain.ChatAccount) (*domain.ChatAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, account)
	ret0, _ := ret[0].(*domain.ChatAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Upsert indicates an expected call of Upsert
func (mr *MockChatAccountRepositoryMockRecorder) Upsert(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockChatAccountRepository)(nil).Upsert), ctx, account)
}
