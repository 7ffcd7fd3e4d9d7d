package schema

// CoreModuleTable represents the 'core.module' table
type CoreModuleTable struct {
	Table     string
	ID        string
	CourseID  string
	Title     string
	Position  string
	CreatedAt string
	UpdatedAt string
}

// CoreModule is the schema definition for core.module
var CoreModule = CoreModuleTable{
	Table:     "core.module",
	ID:        "id",
	CourseID:  "courseid",
	Title:     "title",
	Position:  "position",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t CoreModuleTable) Columns() []string {
	return []string{t.ID, t.CourseID, t.Title, t.Position, t.CreatedAt, t.UpdatedAt}
}
