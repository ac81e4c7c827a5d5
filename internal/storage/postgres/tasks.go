package postgres

import (
	"database/sql"

	"github.com/julianstephens/dayboard/internal/models"
)

func (s *Store) SaveTask(task models.Task) error {
	var habitID sql.NullString
	if task.HabitID != "" {
		habitID = sql.NullString{String: task.HabitID, Valid: true}
	}
	var completedAt sql.NullTime
	if task.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *task.CompletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO tasks (
			id, title, description, due_date, kind, habit_id,
			completed, discarded, completed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			due_date = EXCLUDED.due_date,
			completed = EXCLUDED.completed,
			discarded = EXCLUDED.discarded,
			completed_at = EXCLUDED.completed_at,
			updated_at = EXCLUDED.updated_at`,
		task.ID, task.Title, task.Description, task.DueDate, string(task.Kind), habitID,
		task.Completed, task.Discarded, completedAt, task.CreatedAt, task.UpdatedAt,
	)
	return err
}

func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec("DELETE FROM tasks WHERE id = $1", id)
	return err
}

func (s *Store) loadTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, due_date, kind, habit_id,
		       completed, discarded, completed_at, created_at, updated_at
		FROM tasks ORDER BY due_date, created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var kind string
		var habitID sql.NullString
		var completedAt sql.NullTime

		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.DueDate, &kind, &habitID,
			&t.Completed, &t.Discarded, &completedAt, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}

		t.Kind = models.TaskKind(kind)
		t.HabitID = habitID.String
		if completedAt.Valid {
			ts := completedAt.Time
			t.CompletedAt = &ts
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
