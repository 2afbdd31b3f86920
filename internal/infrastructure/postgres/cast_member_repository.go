package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/infrastructure/metrics"
)

// CastMemberRepository implements repository.CastMemberRepository using PostgreSQL.
type CastMemberRepository struct {
	db DBTX
}

// NewCastMemberRepository creates a new CastMemberRepository instance.
func NewCastMemberRepository(db DBTX) *CastMemberRepository {
	return &CastMemberRepository{db: db}
}

func (r *CastMemberRepository) Save(ctx context.Context, member *model.CastMember) error {
	const query = `
		INSERT INTO cast_members (id, name, type)
		VALUES ($1, $2, $3)
	`

	countQuery(metrics.DBQueryInsert, metrics.TableCastMembers)
	_, err := r.db.Exec(ctx, query, member.ID, member.Name, member.Type.String())
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create cast member: %w", err)
	}

	return nil
}

func (r *CastMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CastMember, error) {
	const query = `
		SELECT id, name, type
		FROM cast_members
		WHERE id = $1
	`

	countQuery(metrics.DBQuerySelect, metrics.TableCastMembers)
	member, err := scanCastMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cast member by ID: %w", err)
	}

	return member, nil
}

func (r *CastMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM cast_members WHERE id = $1`

	countQuery(metrics.DBQueryDelete, metrics.TableCastMembers)
	if err := execAffectingOne(ctx, r.db, query, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete cast member: %w", err)
	}

	return nil
}

func (r *CastMemberRepository) Update(ctx context.Context, member *model.CastMember) error {
	const query = `
		UPDATE cast_members
		SET name = $2, type = $3
		WHERE id = $1
	`

	countQuery(metrics.DBQueryUpdate, metrics.TableCastMembers)
	if err := execAffectingOne(ctx, r.db, query, member.ID, member.Name, member.Type.String()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update cast member: %w", err)
	}

	return nil
}

func (r *CastMemberRepository) List(ctx context.Context) ([]*model.CastMember, error) {
	const query = `SELECT id, name, type FROM cast_members`

	countQuery(metrics.DBQuerySelect, metrics.TableCastMembers)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cast members: %w", err)
	}
	defer rows.Close()

	members := []*model.CastMember{}
	for rows.Next() {
		member, err := scanCastMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cast member: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cast members: %w", err)
	}

	return members, nil
}

func scanCastMember(row pgx.Row) (*model.CastMember, error) {
	var (
		id         uuid.UUID
		memberType string
		member     model.CastMember
	)

	if err := row.Scan(&id, &member.Name, &memberType); err != nil {
		return nil, err
	}

	member.Entity = model.NewEntity(id)
	member.Type = model.CastMemberType(memberType)
	return &member, nil
}

var _ repository.CastMemberRepository = (*CastMemberRepository)(nil)
