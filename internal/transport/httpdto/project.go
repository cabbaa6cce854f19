package httpdto

// CreateProjectRequest is used for POST /user/projects
type CreateProjectRequest struct {
	Text  string `json:"text" binding:"required"`
	Title string `json:"title,omitempty"`
	Link  string `json:"link,omitempty"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Title     string `json:"title,omitempty"`
	Link      string `json:"link,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ProjectsResponse is returned when listing projects
type ProjectsResponse struct {
	Projects []ProjectDTO `json:"projects"`
}

// MigrateResponse is returned after a bulk project import
type MigrateResponse struct {
	Migrated int    `json:"migrated"`
	Message  string `json:"message"`
}
