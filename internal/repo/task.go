package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krish-maurya/Daily-Planner/internal/model"
)

var ErrNotFound = errors.New("not found")

type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	t.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (id, owner_id, title, description, category, priority, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, title, description, category, priority, date, completed
	`, t.ID, t.OwnerID, t.Title, t.Description, t.Category, t.Priority, t.Date).Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Category, &t.Priority, &t.Date, &t.Completed,
	)
	return t, err
}

func (r *TaskRepo) Get(ctx context.Context, ownerID, id string) (model.Task, error) {
	var t model.Task
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, title, description, category, priority, date, completed
		FROM tasks
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID).Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Category, &t.Priority, &t.Date, &t.Completed,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrNotFound
	}
	return t, err
}

func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, title, description, category, priority, date, completed
		FROM tasks
		WHERE owner_id = $1
		ORDER BY date, id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *TaskRepo) ListByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, title, description, category, priority, date, completed
		FROM tasks
		WHERE owner_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, id
	`, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *TaskRepo) Update(ctx context.Context, ownerID, id string, upd model.TaskUpdate) (model.Task, error) {
	var t model.Task
	err := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title       = COALESCE($3, title),
		    description = COALESCE($4, description),
		    category    = COALESCE($5, category),
		    priority    = COALESCE($6, priority),
		    date        = COALESCE($7, date),
		    completed   = COALESCE($8, completed)
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, category, priority, date, completed
	`, id, ownerID, upd.Title, upd.Description, upd.Category, upd.Priority, upd.Date, upd.Completed).Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Category, &t.Priority, &t.Date, &t.Completed,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrNotFound
	}
	return t, err
}

func (r *TaskRepo) Delete(ctx context.Context, ownerID, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1 AND owner_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleCompletion negates the flag in a single statement, so two
// concurrent toggles never read the same stale value.
func (r *TaskRepo) ToggleCompletion(ctx context.Context, ownerID, id string) (model.Task, error) {
	var t model.Task
	err := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET completed = NOT completed
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, category, priority, date, completed
	`, id, ownerID).Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Category, &t.Priority, &t.Date, &t.Completed,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrNotFound
	}
	return t, err
}

func scanTasks(rows pgx.Rows) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Category, &t.Priority, &t.Date, &t.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
