// Package jsonfile keeps every record in one JSON document. It is selected
// when the storage target ends in ".json".
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/julianstephens/dayboard/internal/models"
)

const formatVersion = 1

type document struct {
	Version  int                     `json:"version"`
	Settings models.Settings         `json:"settings"`
	Tasks    map[string]models.Task  `json:"tasks"`
	Habits   map[string]models.Habit `json:"habits"`
}

type Store struct {
	path string
	mu   sync.Mutex
	doc  *document
}

func New(path string) *Store {
	return &Store{
		path: path,
	}
}

func emptyDocument() *document {
	return &document{
		Version: formatVersion,
		Tasks:   make(map[string]models.Task),
		Habits:  make(map[string]models.Habit),
	}
}

// Init creates the file if it does not exist yet. An existing file is loaded
// rather than overwritten.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = emptyDocument()
	return s.save()
}

func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'dayboard init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := emptyDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > formatVersion {
		return fmt.Errorf("storage format version (%d) is newer than supported version (%d) - please upgrade dayboard", doc.Version, formatVersion)
	}
	if doc.Tasks == nil {
		doc.Tasks = make(map[string]models.Task)
	}
	if doc.Habits == nil {
		doc.Habits = make(map[string]models.Habit)
	}
	s.doc = doc
	return nil
}

func (s *Store) Close() error {
	return nil
}

// save writes through a temp file and rename so a crash never leaves a
// truncated document. Callers hold s.mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".dayboard-*.json")
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *Store) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *Store) LoadAll() (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return models.Snapshot{}, err
	}

	snap := models.Snapshot{Settings: s.doc.Settings}
	for _, t := range s.doc.Tasks {
		snap.Tasks = append(snap.Tasks, t)
	}
	sort.Slice(snap.Tasks, func(i, j int) bool {
		a, b := snap.Tasks[i], snap.Tasks[j]
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	for _, h := range s.doc.Habits {
		snap.Habits = append(snap.Habits, h)
	}
	sort.Slice(snap.Habits, func(i, j int) bool {
		a, b := snap.Habits[i], snap.Habits[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return snap, nil
}

func (s *Store) SaveTask(task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Tasks[task.ID] = task
	return s.save()
}

func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	delete(s.doc.Tasks, id)
	return s.save()
}

func (s *Store) SaveHabit(habit models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Habits[habit.ID] = habit
	return s.save()
}

func (s *Store) DeleteHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	delete(s.doc.Habits, id)
	return s.save()
}

func (s *Store) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *Store) GetConfigPath() string {
	return s.path
}
