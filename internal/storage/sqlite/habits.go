package sqlite

import (
	"fmt"

	"github.com/julianstephens/dayboard/internal/models"
)

func (s *Store) SaveHabit(habit models.Habit) error {
	days, err := models.EncodeWeekdays(habit.Frequency.Days)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO habits (
			id, title, description, frequency_type, frequency_days,
			streak, last_completed_date, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			frequency_type = excluded.frequency_type,
			frequency_days = excluded.frequency_days,
			streak = excluded.streak,
			last_completed_date = excluded.last_completed_date,
			updated_at = excluded.updated_at`,
		habit.ID, habit.Title, habit.Description, string(habit.Frequency.Type), days,
		habit.Streak, habit.LastCompletedDate, formatTime(habit.CreatedAt), formatTime(habit.UpdatedAt),
	)
	return err
}

func (s *Store) DeleteHabit(id string) error {
	_, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	return err
}

func (s *Store) loadHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, frequency_type, frequency_days,
		       streak, last_completed_date, created_at, updated_at
		FROM habits ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var freqType, days, createdAt, updatedAt string

		if err := rows.Scan(
			&h.ID, &h.Title, &h.Description, &freqType, &days,
			&h.Streak, &h.LastCompletedDate, &createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}

		h.Frequency.Type = models.FrequencyType(freqType)
		if h.Frequency.Days, err = models.DecodeWeekdays(days); err != nil {
			return nil, fmt.Errorf("habit %s: %w", h.ID, err)
		}
		h.CreatedAt, _ = parseTime(createdAt)
		h.UpdatedAt, _ = parseTime(updatedAt)

		habits = append(habits, h)
	}
	return habits, rows.Err()
}
