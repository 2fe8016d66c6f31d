package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_work_order_repository.go -package mocks github.com/converso/converso/internal/domain WorkOrderRepository

// WorkOrderStatusPending is the initial status of a generated work order
const WorkOrderStatusPending = "PENDING"

// WorkOrder is generated when a lead is won. At most one per lead
// (unique index on lead_id).
type WorkOrder struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	OrgID     string    `json:"org_id"`
	Customer  string    `json:"customer"`
	Service   string    `json:"service"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkOrderRepository defines data access for work orders
type WorkOrderRepository interface {
	// Create inserts a work order. Returns *ErrAlreadyExists when the lead
	// already has one.
	Create(ctx context.Context, workOrder *WorkOrder) error

	// GetByLead returns the lead's work order, or nil when none
	GetByLead(ctx context.Context, leadID string) (*WorkOrder, error)
}
