package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/converso/converso/internal/domain"
)

// WorkOrderRepository implements domain.WorkOrderRepository
type WorkOrderRepository struct {
	db *sql.DB
}

// NewWorkOrderRepository creates a new WorkOrderRepository
func NewWorkOrderRepository(db *sql.DB) domain.WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// Create inserts a work order. The unique index on lead_id turns a
// concurrent double-create into *ErrAlreadyExists.
func (r *WorkOrderRepository) Create(ctx context.Context, workOrder *domain.WorkOrder) error {
	if workOrder.ID == "" {
		workOrder.ID = uuid.New().String()
	}
	if workOrder.Status == "" {
		workOrder.Status = domain.WorkOrderStatusPending
	}
	workOrder.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("work_orders").
		Columns("id", "lead_id", "org_id", "customer", "service", "price", "status", "created_at").
		Values(workOrder.ID, workOrder.LeadID, workOrder.OrgID, workOrder.Customer,
			workOrder.Service, workOrder.Price, workOrder.Status, workOrder.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return &domain.ErrAlreadyExists{Entity: "work_order", Key: workOrder.LeadID}
		}
		return fmt.Errorf("failed to create work order: %w", err)
	}
	return nil
}

// GetByLead returns the lead's work order, or nil when none
func (r *WorkOrderRepository) GetByLead(ctx context.Context, leadID string) (*domain.WorkOrder, error) {
	query, args, err := psql.
		Select("id", "lead_id", "org_id", "customer", "service", "price", "status", "created_at").
		From("work_orders").
		Where(sq.Eq{"lead_id": leadID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	workOrder := &domain.WorkOrder{}
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&workOrder.ID, &workOrder.LeadID, &workOrder.OrgID, &workOrder.Customer,
			&workOrder.Service, &workOrder.Price, &workOrder.Status, &workOrder.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return workOrder, nil
}
