package task

// Task is a unit of work owned by a single agent.
//
// TaskID is assigned by the database and never reused: SQLite's AUTOINCREMENT
// keeps ids strictly increasing even after rows are deleted. TimeCreated and
// DueBy are milliseconds since the Unix epoch.
type Task struct {
	TaskID      int64  `gorm:"primaryKey;autoIncrement" json:"task_id"`
	Title       string `gorm:"not null;type:text" json:"title"`
	Description string `gorm:"not null;type:text" json:"description"`
	Category    string `gorm:"type:text;default:general" json:"category"`
	TimeCreated int64  `json:"time_created"`
	CreatedBy   string `gorm:"not null;type:text;default:0" json:"created_by"`
	DueBy       int64  `json:"due_by"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
