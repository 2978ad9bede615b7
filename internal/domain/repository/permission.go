package repository

import (
	"context"

	"github.com/bnema/codeora/internal/domain/entity"
)

// PermissionRepository defines operations for permission persistence.
type PermissionRepository interface {
	// Get retrieves the permission record for a specific origin and permission type.
	// Returns nil if no record exists (treat as "prompt" state).
	Get(ctx context.Context, origin string, permType entity.PermissionType) (*entity.PermissionRecord, error)

	// Set saves or updates a permission record.
	Set(ctx context.Context, record *entity.PermissionRecord) error

	// Delete removes a permission record for a specific origin and type.
	Delete(ctx context.Context, origin string, permType entity.PermissionType) error

	// GetAll retrieves all permission records for an origin.
	GetAll(ctx context.Context, origin string) ([]*entity.PermissionRecord, error)

	// List returns every stored record, ordered by origin then type.
	List(ctx context.Context) ([]*entity.PermissionRecord, error)

	// DeleteAll removes every record for origin, or all records when origin
	// is empty. It returns the number of rows removed.
	DeleteAll(ctx context.Context, origin string) (int64, error)
}
