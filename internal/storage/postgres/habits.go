package postgres

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
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			frequency_type = EXCLUDED.frequency_type,
			frequency_days = EXCLUDED.frequency_days,
			streak = EXCLUDED.streak,
			last_completed_date = EXCLUDED.last_completed_date,
			updated_at = EXCLUDED.updated_at`,
		habit.ID, habit.Title, habit.Description, string(habit.Frequency.Type), days,
		habit.Streak, habit.LastCompletedDate, habit.CreatedAt, habit.UpdatedAt,
	)
	return err
}

func (s *Store) DeleteHabit(id string) error {
	_, err := s.db.Exec("DELETE FROM habits WHERE id = $1", id)
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
		var freqType, days string

		if err := rows.Scan(
			&h.ID, &h.Title, &h.Description, &freqType, &days,
			&h.Streak, &h.LastCompletedDate, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, err
		}

		h.Frequency.Type = models.FrequencyType(freqType)
		if h.Frequency.Days, err = models.DecodeWeekdays(days); err != nil {
			return nil, fmt.Errorf("habit %s: %w", h.ID, err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}
