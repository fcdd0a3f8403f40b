package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krish-maurya/Daily-Planner/internal/model"
)

type GoalRepo struct {
	pool *pgxpool.Pool
}

func NewGoalRepo(pool *pgxpool.Pool) *GoalRepo {
	return &GoalRepo{
		pool: pool,
	}
}

func (r *GoalRepo) Create(ctx context.Context, g model.Goal) (model.Goal, error) {
	g.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO goals (id, owner_id, title, description, target_value, current_value, unit, category, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, owner_id, title, description, target_value, current_value, unit, category, deadline, created_at
	`, g.ID, g.OwnerID, g.Title, g.Description, g.TargetValue, g.CurrentValue, g.Unit, g.Category, g.Deadline).Scan(
		&g.ID, &g.OwnerID, &g.Title, &g.Description, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.Category, &g.Deadline, &g.CreatedAt,
	)
	return g, err
}

func (r *GoalRepo) Get(ctx context.Context, ownerID, id string) (model.Goal, error) {
	var g model.Goal
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, title, description, target_value, current_value, unit, category, deadline, created_at
		FROM goals
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID).Scan(
		&g.ID, &g.OwnerID, &g.Title, &g.Description, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.Category, &g.Deadline, &g.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return g, ErrNotFound
	}
	return g, err
}

func (r *GoalRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Goal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, title, description, target_value, current_value, unit, category, deadline, created_at
		FROM goals
		WHERE owner_id = $1
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Title, &g.Description, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.Category, &g.Deadline, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *GoalRepo) Update(ctx context.Context, ownerID, id string, upd model.GoalUpdate) (model.Goal, error) {
	var g model.Goal
	err := r.pool.QueryRow(ctx, `
		UPDATE goals
		SET title         = COALESCE($3, title),
		    description   = COALESCE($4, description),
		    target_value  = COALESCE($5, target_value),
		    current_value = COALESCE($6, current_value),
		    unit          = COALESCE($7, unit),
		    category      = COALESCE($8, category),
		    deadline      = COALESCE($9, deadline)
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, target_value, current_value, unit, category, deadline, created_at
	`, id, ownerID, upd.Title, upd.Description, upd.TargetValue, upd.CurrentValue, upd.Unit, upd.Category, upd.Deadline).Scan(
		&g.ID, &g.OwnerID, &g.Title, &g.Description, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.Category, &g.Deadline, &g.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return g, ErrNotFound
	}
	return g, err
}

func (r *GoalRepo) Delete(ctx context.Context, ownerID, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM goals WHERE id = $1 AND owner_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetProgress overwrites current_value in one statement. The value is stored
// verbatim, including values above target_value or below zero; completion is
// derived at read time.
func (r *GoalRepo) SetProgress(ctx context.Context, ownerID, id string, currentValue float64) (model.Goal, error) {
	var g model.Goal
	err := r.pool.QueryRow(ctx, `
		UPDATE goals
		SET current_value = $3
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, target_value, current_value, unit, category, deadline, created_at
	`, id, ownerID, currentValue).Scan(
		&g.ID, &g.OwnerID, &g.Title, &g.Description, &g.TargetValue, &g.CurrentValue, &g.Unit, &g.Category, &g.Deadline, &g.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return g, ErrNotFound
	}
	return g, err
}
