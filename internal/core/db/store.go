package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/solatis/translit/internal/types"
)

// TransformRow is one stored transform without its rules.
type TransformRow struct {
	ID        types.TransformID `db:"transform_id"`
	Name      string            `db:"name"`
	Source    string            `db:"source"`
	Target    string            `db:"target"`
	Variant   string            `db:"variant"`
	Direction string            `db:"direction"`
}

// Store is a types.ResourceStore over the transforms tables. It only holds
// the shared/transforms category.
type Store struct {
	q *Queries
}

var _ types.ResourceStore = (*Store)(nil)

// NewStore wraps a migrated database.
func NewStore(db *sqlx.DB) (*Store, error) {
	q, err := LoadQueries(db)
	if err != nil {
		return nil, err
	}
	return &Store{q: q}, nil
}

func holdsCategory(namespace, category string) bool {
	return namespace == types.NamespaceShared && category == types.CategoryTransforms
}

func (s *Store) ResourceExists(ctx context.Context, namespace, category, name string) (bool, error) {
	if !holdsCategory(namespace, category) {
		return false, nil
	}
	var n int
	if err := s.q.Get(ctx, &n, "count-transform", name); err != nil {
		return false, fmt.Errorf("checking transform %q: %w", name, err)
	}
	return n > 0, nil
}

func (s *Store) GetResource(ctx context.Context, namespace, category, name string) (*types.Resource, error) {
	if !holdsCategory(namespace, category) {
		return nil, fmt.Errorf("%w: %s/%s/%s", types.ErrResourceNotFound, namespace, category, name)
	}
	var row TransformRow
	err := s.q.Get(ctx, &row, "get-transform", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s/%s", types.ErrResourceNotFound, namespace, category, name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading transform %q: %w", name, err)
	}
	var rules []string
	if err := s.q.Select(ctx, &rules, "list-transform-rules", row.ID); err != nil {
		return nil, fmt.Errorf("reading rules of %q: %w", name, err)
	}
	return &types.Resource{Transforms: []types.TransformSource{{
		Source:    row.Source,
		Target:    row.Target,
		Variant:   row.Variant,
		Direction: row.Direction,
		Rules:     rules,
	}}}, nil
}

// ListTransforms returns every stored transform ordered by name.
func (s *Store) ListTransforms(ctx context.Context) ([]TransformRow, error) {
	var rows []TransformRow
	if err := s.q.Select(ctx, &rows, "list-transforms"); err != nil {
		return nil, fmt.Errorf("listing transforms: %w", err)
	}
	return rows, nil
}

// ImportResource stores the first transform of res under name, replacing
// any earlier version.
func (s *Store) ImportResource(ctx context.Context, name string, res *types.Resource) (types.TransformID, error) {
	if res == nil || len(res.Transforms) == 0 {
		return "", fmt.Errorf("importing %q: %w", name, types.ErrEmptyResource)
	}
	src := res.Transforms[0]
	id := types.NewTransformID()

	var createdAt any = time.Now().UTC()
	if s.q.db.DriverName() == "sqlite3" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	err := s.q.InTx(ctx, func(tx *Queries) error {
		if _, err := tx.Exec(ctx, "delete-transform-rules", name); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, "delete-transform", name); err != nil {
			return err
		}
		direction := types.ParseDirection(src.Direction).String()
		if _, err := tx.Exec(ctx, "insert-transform", id, name, src.Source, src.Target, src.Variant, direction, createdAt); err != nil {
			return err
		}
		for i, rule := range src.Rules {
			if _, err := tx.Exec(ctx, "insert-transform-rule", id, i, rule); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("importing %q: %w", name, err)
	}
	T().Debugf("imported transform %s as %s (%d rules)", name, id, len(src.Rules))
	return id, nil
}
