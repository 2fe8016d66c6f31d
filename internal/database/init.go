package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/converso/converso/internal/database/schema"
)

// InitializeDatabase creates all necessary database tables if they don't exist
func InitializeDatabase(db *sql.DB, defaultOrgName, ownerEmail string) error {
	// Run all table creation queries
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Create a default org on first boot so single-tenant installs work
	// out of the box
	if defaultOrgName != "" {
		var exists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM orgs)").Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check org existence: %w", err)
		}

		if !exists {
			query := `
				INSERT INTO orgs (id, name, owner_email, created_at)
				VALUES ($1, $2, $3, $4)
			`
			_, err = db.Exec(query,
				uuid.New().String(),
				defaultOrgName,
				ownerEmail,
				time.Now().UTC(),
			)
			if err != nil {
				return fmt.Errorf("failed to create default org: %w", err)
			}
		}
	}

	return nil
}
