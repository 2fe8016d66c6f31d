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

// ChatAccountRepository implements domain.ChatAccountRepository
type ChatAccountRepository struct {
	db *sql.DB
}

// NewChatAccountRepository creates a new ChatAccountRepository
func NewChatAccountRepository(db *sql.DB) domain.ChatAccountRepository {
	return &ChatAccountRepository{db: db}
}

var chatAccountColumns = []string{
	"id", "org_id", "provider", "external_phone_id", "account_sid",
	"auth_token", "is_active", "created_at",
}

// GetActiveByExternalID resolves a provider destination to a registered
// account, or nil when no active account matches
func (r *ChatAccountRepository) GetActiveByExternalID(ctx context.Context, provider, externalPhoneID string) (*domain.ChatAccount, error) {
	query, args, err := psql.
		Select(chatAccountColumns...).
		From("chat_accounts").
		Where(sq.Eq{"provider": provider, "external_phone_id": externalPhoneID, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	account, err := r.scanOne(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetActiveByOrg returns the org's active account for a provider, or nil
func (r *ChatAccountRepository) GetActiveByOrg(ctx context.Context, orgID, provider string) (*domain.ChatAccount, error) {
	query, args, err := psql.
		Select(chatAccountColumns...).
		From("chat_accounts").
		Where(sq.Eq{"org_id": orgID, "provider": provider, "is_active": true}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	account, err := r.scanOne(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Upsert creates the account or updates credentials and reactivates it
func (r *ChatAccountRepository) Upsert(ctx context.Context, account *domain.ChatAccount) (*domain.ChatAccount, error) {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.IsActive = true
	account.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("chat_accounts").
		Columns(chatAccountColumns...).
		Values(account.ID, account.OrgID, account.Provider, account.ExternalPhoneID,
			account.AccountSID, account.AuthToken, account.IsActive, account.CreatedAt).
		Suffix(`ON CONFLICT (provider, external_phone_id) DO UPDATE SET
			org_id = EXCLUDED.org_id,
			account_sid = EXCLUDED.account_sid,
			auth_token = EXCLUDED.auth_token,
			is_active = TRUE`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to upsert chat account: %w", err)
	}

	return r.GetActiveByExternalID(ctx, account.Provider, account.ExternalPhoneID)
}

func (r *ChatAccountRepository) scanOne(ctx context.Context, query string, args []interface{}) (*domain.ChatAccount, error) {
	account := &domain.ChatAccount{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&account.ID, &account.OrgID, &account.Provider, &account.ExternalPhoneID,
			&account.AccountSID, &account.AuthToken, &account.IsActive, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat account: %w", err)
	}
	return account, nil
}
