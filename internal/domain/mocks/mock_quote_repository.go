package mocks

import (
	"context"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockQuoteRepository is a mock of QuoteRepository interface
type MockQuoteRepository struct {
	ctrl     *gomock.Controller
	recorder *MockQuoteRepositoryMockRecorder
}

// MockQuoteRepositoryMockRecorder is the mock recorder for MockQuoteRepository
type MockQuoteRepositoryMockRecorder struct {
	mock *MockQuoteRepository
}

// NewMockQuoteRepository creates a new mock instance
func NewMockQuoteRepository(ctrl *gomock.Controller) *MockQuoteRepository {
	mock := &MockQuoteRepository{ctrl: ctrl}
	mock.recorder = &MockQuoteRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockQuoteRepository) EXPECT() *MockQuoteRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method
func (m *MockQuoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, quote)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create
func (mr *MockQuoteRepositoryMockRecorder) Create(ctx, quote interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockQuoteRepository)(nil).Create), ctx, quote)
}

// GetByID mocks base method
func (m *MockQuoteRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Quote, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, orgID, id)
	ret0, _ := ret[0].(*domain.Quote)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID
func (mr *MockQuoteRepositoryMockRecorder) GetByID(ctx, orgID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockQuoteRepository)(nil).GetByID), ctx, orgID, id)
}

// GetByPublicID mocks base method
func (m *MockQuoteRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Quote, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPublicID", ctx, publicID)
	ret0, _ := ret[0].(*domain.Quote)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByPublicID indicates an expected call of GetByPublicID
func (mr *MockQuoteRepositoryMockRecorder) GetByPublicID(ctx, publicID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPublicID", reflect.TypeOf((*MockQuoteRepository)(nil).GetByPublicID), ctx, publicID)
}

// UpdateStatus mocks base method
func (m *MockQuoteRepository) UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus
func (mr *MockQuoteRepositoryMockRecorder) UpdateStatus(ctx, id, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockQuoteRepository)(nil).UpdateStatus), ctx, id, status)
}

// TrackView mocks base method
func (m *MockQuoteRepository) TrackView(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TrackView", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// TrackView indicates an expected call of TrackView
func (mr *MockQuoteRepositoryMockRecorder) TrackView(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TrackView", reflect.TypeOf((*MockQuoteRepository)(nil).TrackView), ctx, id)
}

// MarkInsertedInChat mocks base method
func (m *MockQuoteRepository) MarkInsertedInChat(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkInsertedInChat", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkInsertedInChat indicates an expected call of MarkInsertedInChat
func (mr *MockQuoteRepositoryMockRecorder) MarkInsertedInChat(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkInsertedInChat", reflect.TypeOf((*MockQuoteRepository)(nil).MarkInsertedInChat), ctx, id)
}

// GetAcceptedByLead mocks base method
func (m *MockQuoteRepository) GetAcceptedByLead(ctx context.Context, leadID string) (*domain.Quote, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAcceptedByLead", ctx, leadID)
	ret0, _ := ret[0].(*domain.Quote)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAcceptedByLead indicates an expected call of GetAcceptedByLead
func (mr *MockQuoteRepositoryMockRecorder) GetAcceptedByLead(ctx, leadID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAcceptedByLead", reflect.TypeOf((*MockQuoteRepository)(nil).GetAcceptedByLead), ctx, leadID)
}

// ListUnopened mocks base method
func (m *MockQuoteRepository) ListUnopened(ctx context.Context, orgID string, since time.Time, limit int) ([]*domain.UnopenedQuote, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUnopened", ctx, orgID, since, limit)
	ret0, _ := ret[0].([]*domain.UnopenedQuote)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUnopened indicates an expected call of ListUnopened
func (mr *MockQuoteRepositoryMockRecorder) ListUnopened(ctx, orgID, since, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUnopened", reflect.TypeOf((*MockQuoteRepository)(nil).ListUnopened), ctx, orgID, since, limit)
}
