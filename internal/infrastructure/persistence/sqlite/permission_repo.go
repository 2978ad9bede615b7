package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/domain/repository"
	"github.com/bnema/codeora/internal/logging"
)

const (
	getPermissionSQL = `SELECT origin, permission_type, decision, updated_at
FROM permissions WHERE origin = ? AND permission_type = ?`

	setPermissionSQL = `INSERT INTO permissions (origin, permission_type, decision, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (origin, permission_type) DO UPDATE SET
    decision = excluded.decision,
    updated_at = excluded.updated_at`

	deletePermissionSQL = `DELETE FROM permissions WHERE origin = ? AND permission_type = ?`

	listPermissionsByOriginSQL = `SELECT origin, permission_type, decision, updated_at
FROM permissions WHERE origin = ? ORDER BY permission_type`

	listPermissionsSQL = `SELECT origin, permission_type, decision, updated_at
FROM permissions ORDER BY origin, permission_type`

	deletePermissionsByOriginSQL = `DELETE FROM permissions WHERE origin = ?`
	deleteAllPermissionsSQL      = `DELETE FROM permissions`
)

type permissionRepo struct {
	db  func(ctx context.Context) (*sql.DB, error)
	now func() time.Time
}

// NewPermissionRepository creates a new SQLite-backed permission repository.
func NewPermissionRepository(db *sql.DB) repository.PermissionRepository {
	return &permissionRepo{
		db:  func(context.Context) (*sql.DB, error) { return db, nil },
		now: time.Now,
	}
}

// NewLazyPermissionRepository creates a repository that opens the database
// through provider on first use.
func NewLazyPermissionRepository(provider port.DatabaseProvider) repository.PermissionRepository {
	return &permissionRepo{db: provider.DB, now: time.Now}
}

func (r *permissionRepo) Get(ctx context.Context, origin string, permType entity.PermissionType) (*entity.PermissionRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Str("type", string(permType)).Msg("getting permission")

	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}

	record, err := scanPermission(db.QueryRowContext(ctx, getPermissionSQL, origin, string(permType)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission %s for %s: %w", permType, origin, err)
	}
	return record, nil
}

func (r *permissionRepo) Set(ctx context.Context, record *entity.PermissionRecord) error {
	log := logging.FromContext(ctx)

	if record == nil {
		log.Error().Msg("cannot set nil permission record")
		return errors.New("cannot set nil permission record")
	}

	log.Debug().
		Str("origin", record.Origin).
		Str("type", string(record.Type)).
		Str("decision", string(record.Decision)).
		Msg("setting permission")

	db, err := r.db(ctx)
	if err != nil {
		return err
	}

	updatedAt := record.UpdatedAt
	if updatedAt == 0 {
		updatedAt = r.now().Unix()
	}

	if _, err := db.ExecContext(ctx, setPermissionSQL,
		record.Origin, string(record.Type), string(record.Decision), updatedAt,
	); err != nil {
		return fmt.Errorf("set permission %s for %s: %w", record.Type, record.Origin, err)
	}
	return nil
}

func (r *permissionRepo) Delete(ctx context.Context, origin string, permType entity.PermissionType) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Str("type", string(permType)).Msg("deleting permission")

	db, err := r.db(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, deletePermissionSQL, origin, string(permType)); err != nil {
		return fmt.Errorf("delete permission %s for %s: %w", permType, origin, err)
	}
	return nil
}

func (r *permissionRepo) GetAll(ctx context.Context, origin string) ([]*entity.PermissionRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Msg("getting all permissions for origin")

	return r.query(ctx, listPermissionsByOriginSQL, origin)
}

func (r *permissionRepo) List(ctx context.Context) ([]*entity.PermissionRecord, error) {
	return r.query(ctx, listPermissionsSQL)
}

func (r *permissionRepo) DeleteAll(ctx context.Context, origin string) (int64, error) {
	log := logging.FromContext(ctx)

	db, err := r.db(ctx)
	if err != nil {
		return 0, err
	}

	var res sql.Result
	if origin == "" {
		res, err = db.ExecContext(ctx, deleteAllPermissionsSQL)
	} else {
		res, err = db.ExecContext(ctx, deletePermissionsByOriginSQL, origin)
	}
	if err != nil {
		return 0, fmt.Errorf("delete permissions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	log.Info().Str("origin", origin).Int64("removed", n).Msg("permissions reset")
	return n, nil
}

func (r *permissionRepo) query(ctx context.Context, query string, args ...any) ([]*entity.PermissionRecord, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*entity.PermissionRecord
	for rows.Next() {
		record, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPermission(row rowScanner) (*entity.PermissionRecord, error) {
	var (
		origin, permType, decision string
		updatedAt                  int64
	)
	if err := row.Scan(&origin, &permType, &decision, &updatedAt); err != nil {
		return nil, err
	}
	return &entity.PermissionRecord{
		Origin:    origin,
		Type:      entity.PermissionType(permType),
		Decision:  entity.PermissionDecision(decision),
		UpdatedAt: updatedAt,
	}, nil
}
