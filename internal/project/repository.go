package project

// Repository holds the projects of a session in creation order.
type Repository struct {
	projects []*Project
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Len returns the number of projects.
func (r *Repository) Len() int {
	return len(r.projects)
}

// Create adds a new project with the given description.
func (r *Repository) Create(description string) (*Project, error) {
	p, err := New(description)
	if err != nil {
		return nil, err
	}
	r.projects = append(r.projects, p)
	return p, nil
}

// Add appends an existing project.
func (r *Repository) Add(p *Project) {
	r.projects = append(r.projects, p)
}

// Get returns the project at a 1-based index. An out-of-range index is an
// *IndexError; there is no placeholder project.
func (r *Repository) Get(index int) (*Project, error) {
	if index < 1 || index > len(r.projects) {
		return nil, indexError(EntityProject, index)
	}
	return r.projects[index-1], nil
}

// Delete removes the project at a 1-based index.
func (r *Repository) Delete(index int) (*Project, error) {
	p, err := r.Get(index)
	if err != nil {
		return nil, err
	}
	r.projects = append(r.projects[:index-1], r.projects[index:]...)
	return p, nil
}

// All returns the projects in creation order.
func (r *Repository) All() []*Project {
	return append([]*Project(nil), r.projects...)
}
