package schema

// CoreCourseTable represents the 'core.course' table
type CoreCourseTable struct {
	Table       string
	ID          string
	UserID      string
	Title       string
	Description string
	Slug        string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
}

// CoreCourse is the schema definition for core.course
var CoreCourse = CoreCourseTable{
	Table:       "core.course",
	ID:          "id",
	UserID:      "userid",
	Title:       "title",
	Description: "description",
	Slug:        "slug",
	IsPublished: "ispublished",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CoreCourseTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Title, t.Description, t.Slug, t.IsPublished,
		t.CreatedAt, t.UpdatedAt,
	}
}
