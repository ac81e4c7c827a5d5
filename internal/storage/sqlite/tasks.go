package sqlite

import (
	"database/sql"
	"time"

	"github.com/julianstephens/dayboard/internal/models"
)

func (s *Store) SaveTask(task models.Task) error {
	var habitID sql.NullString
	if task.HabitID != "" {
		habitID = sql.NullString{String: task.HabitID, Valid: true}
	}
	var completedAt sql.NullString
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: formatTime(*task.CompletedAt), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO tasks (
			id, title, description, due_date, kind, habit_id,
			completed, discarded, completed_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, task.DueDate, string(task.Kind), habitID,
		task.Completed, task.Discarded, completedAt, formatTime(task.CreatedAt), formatTime(task.UpdatedAt),
	)
	return err
}

func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
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
		var kind, createdAt, updatedAt string
		var habitID, completedAt sql.NullString

		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.DueDate, &kind, &habitID,
			&t.Completed, &t.Discarded, &completedAt, &createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}

		t.Kind = models.TaskKind(kind)
		t.HabitID = habitID.String
		if completedAt.Valid {
			if ts, err := parseTime(completedAt.String); err == nil {
				t.CompletedAt = &ts
			}
		}
		t.CreatedAt, _ = parseTime(createdAt)
		t.UpdatedAt, _ = parseTime(updatedAt)

		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
