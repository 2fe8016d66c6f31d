package mocks

import (
	"context"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/converso/converso/internal/domain"
)

// MockLeadRepository is a mock of LeadRepository interface
type MockLeadRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLeadRepositoryMockRecorder
}

// MockLeadRepositoryMockRecorder is the mock recorder for MockLeadRepository
type MockLeadRepositoryMockRecorder struct {
	mock *MockLeadRepository
}

// NewMockLeadRepository creates a new mock instance
func NewMockLeadRepository(ctrl *gomock.Controller) *MockLeadRepository {
	mock := &MockLeadRepository{ctrl: ctrl}
	mock.recorder = &MockLeadRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockLeadRepository) EXPECT() *MockLeadRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method
func (m *MockLeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, lead)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create
func (mr *MockLeadRepositoryMockRecorder) Create(ctx, lead interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockLeadRepository)(nil).Create), ctx, lead)
}

// GetByID mocks base method
func (m *MockLeadRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, orgID, id)
	ret0, _ := ret[0].(*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID
func (mr *MockLeadRepositoryMockRecorder) GetByID(ctx, orgID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockLeadRepository)(nil).GetByID), ctx, orgID, id)
}

// GetByConversation mocks base method
func (m *MockLeadRepository) GetByConversation(ctx context.Context, orgID, conversationID string) (*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByConversation", ctx, orgID, conversationID)
	ret0, _ := ret[0].(*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByConversation indicates an expected call of GetByConversation
func (mr *MockLeadRepositoryMockRecorder) GetByConversation(ctx, orgID, conversationID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByConversation", reflect.TypeOf((*MockLeadRepository)(nil).GetByConversation), ctx, orgID, conversationID)
}

// List mocks base method
func (m *MockLeadRepository) List(ctx context.Context, orgID string, filter domain.LeadFilter) ([]*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, orgID, filter)
	ret0, _ := ret[0].([]*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List
func (mr *MockLeadRepositoryMockRecorder) List(ctx, orgID, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockLeadRepository)(nil).List), ctx, orgID, filter)
}

// Update mocks base method
func (m *MockLeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, lead)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update
func (mr *MockLeadRepositoryMockRecorder) Update(ctx, lead interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockLeadRepository)(nil).Update), ctx, lead)
}

// UpdateStage mocks base method
func (m *MockLeadRepository) UpdateStage(ctx context.Context, orgID, id string, stage domain.LeadStage) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStage", ctx, orgID, id, stage)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStage indicates an expected call of UpdateStage
func (mr *MockLeadRepositoryMockRecorder) UpdateStage(ctx, orgID, id, stage interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStage", reflect.TypeOf((*MockLeadRepository)(nil).UpdateStage), ctx, orgID, id, stage)
}

// UpdateLastRepliedAt mocks base method
func (m *MockLeadRepository) UpdateLastRepliedAt(ctx context.Context, orgID, id string, repliedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateLastRepliedAt", ctx, orgID, id, repliedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateLastRepliedAt indicates an expected call of UpdateLastRepliedAt
func (mr *MockLeadRepositoryMockRecorder) UpdateLastRepliedAt(ctx, orgID, id, repliedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateLastRepliedAt", reflect.TypeOf((*MockLeadRepository)(nil).UpdateLastRepliedAt), ctx, orgID, id, repliedAt)
}

// MarkPriceResistance mocks base method
func (m *MockLeadRepository) MarkPriceResistance(ctx context.Context, orgID, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkPriceResistance", ctx, orgID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkPriceResistance indicates an expected call of MarkPriceResistance
func (mr *MockLeadRepositoryMockRecorder) MarkPriceResistance(ctx, orgID, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkPriceResistance", reflect.TypeOf((*MockLeadRepository)(nil).MarkPriceResistance), ctx, orgID, id)
}

// ListIdle mocks base method
func (m *MockLeadRepository) ListIdle(ctx context.Context, orgID string, before time.Time, limit int) ([]*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListIdle", ctx, orgID, before, limit)
	ret0, _ := ret[0].([]*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListIdle indicates an expected call of ListIdle
func (mr *MockLeadRepositoryMockRecorder) ListIdle(ctx, orgID, before, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListIdle", reflect.TypeOf((*MockLeadRepository)(nil).ListIdle), ctx, orgID, before, limit)
}

// ListHighValue mocks base method
func (m *MockLeadRepository) ListHighValue(ctx context.Context, orgID string, minTotal float64, limit int) ([]*domain.HighValueLead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListHighValue", ctx, orgID, minTotal, limit)
	ret0, _ := ret[0].([]*domain.HighValueLead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListHighValue indicates an expected call of ListHighValue
func (mr *MockLeadRepositoryMockRecorder) ListHighValue(ctx, orgID, minTotal, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListHighValue", reflect.TypeOf((*MockLeadRepository)(nil).ListHighValue), ctx, orgID, minTotal, limit)
}

// ListPriceResistant mocks base method
func (m *MockLeadRepository) ListPriceResistant(ctx context.Context, orgID string, limit int) ([]*domain.Lead, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPriceResistant", ctx, orgID, limit)
	ret0, _ := ret[0].([]*domain.Lead)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPriceResistant indicates an expected call of ListPriceResistant
func (mr *MockLeadRepositoryMockRecorder) ListPriceResistant(ctx, orgID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPriceResistant", reflect.TypeOf((*MockLeadRepository)(nil).ListPriceResistant), ctx, orgID, limit)
}

// ListByStages mocks base method
func (m *MockLeadRepository) ListByStages(ctx context.Context, orgID string, stages []domain.LeadStage) ([]*domain.LeadWithContact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByStages", ctx, orgID, stages)
	ret0, _ := ret[0].([]*domain.LeadWithContact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByStages indicates an expected call of ListByStages
func (mr *MockLeadRepositoryMockRecorder) ListByStages(ctx, orgID, stages interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByStages", reflect.TypeOf((*MockLeadRepository)(nil).ListByStages), ctx, orgID, stages)
}

// ListLostSince mocks base method
func (m *MockLeadRepository) ListLostSince(ctx context.Context, orgID string, since time.Time) ([]*domain.LeadWithContact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListLostSince", ctx, orgID, since)
	ret0, _ := ret[0].([]*domain.LeadWithContact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListLostSince indicates an expected call of ListLostSince
func (mr *MockLeadRepositoryMockRecorder) ListLostSince(ctx, orgID, since interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListLostSince", reflect.TypeOf((*MockLeadRepository)(nil).ListLostSince), ctx, orgID, since)
}

// ListInactiveBefore mocks base method
func (m *MockLeadRepository) ListInactiveBefore(ctx context.Context, orgID string, cutoff time.Time) ([]*domain.LeadWithContact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListInactiveBefore", ctx, orgID, cutoff)
	ret0, _ := ret[0].([]*domain.LeadWithContact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListInactiveBefore indicates an expected call of ListInactiveBefore
func (mr *MockLeadRepositoryMockRecorder) ListInactiveBefore(ctx, orgID, cutoff interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListInactiveBefore", reflect.TypeOf((*MockLeadRepository)(nil).ListInactiveBefore), ctx, orgID, cutoff)
}
