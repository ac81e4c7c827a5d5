package models

// Snapshot is everything a storage backend holds, loaded in one call.
type Snapshot struct {
	Tasks    []Task   `json:"tasks"`
	Habits   []Habit  `json:"habits"`
	Settings Settings `json:"settings"`
}
