package domain

// Task represents a task in the domain model.
// Field names and JSON tags match the persisted column names and the wire format.
type Task struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"isCompleted"`
}

// NewTask creates a new Task with the given name and completion flag.
// The ID is assigned by the store on creation.
func NewTask(name string, isCompleted bool) Task {
	return Task{
		Name:        name,
		IsCompleted: isCompleted,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != ""
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
