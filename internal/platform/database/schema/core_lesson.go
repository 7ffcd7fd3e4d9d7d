package schema

// CoreLessonTable represents the 'core.lesson' table
type CoreLessonTable struct {
	Table     string
	ID        string
	ModuleID  string
	Title     string
	Content   string
	Position  string
	CreatedAt string
	UpdatedAt string
}

// CoreLesson is the schema definition for core.lesson
var CoreLesson = CoreLessonTable{
	Table:     "core.lesson",
	ID:        "id",
	ModuleID:  "moduleid",
	Title:     "title",
	Content:   "content",
	Position:  "position",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CoreLessonTable) Columns() []string {
	return []string{
		t.ID, t.ModuleID, t.Title, t.Content, t.Position,
		t.CreatedAt, t.UpdatedAt,
	}
}
