package domain

import "go.trai.ch/zerr"

// Project is a catalog entry under its disambiguated project name.
type Project struct {
	Name  string
	Entry CatalogEntry
}

// ProjectIndex keeps catalog entries by project name in insertion order.
type ProjectIndex struct {
	byName map[string]int
	order  []Project
}

// NewProjectIndex creates a new empty ProjectIndex.
func NewProjectIndex() *ProjectIndex {
	return &ProjectIndex{
		byName: make(map[string]int),
	}
}

// Add indexes entry under name.
// It returns ErrDuplicateProjectName if the name is already taken.
func (x *ProjectIndex) Add(name string, entry CatalogEntry) error {
	if i, exists := x.byName[name]; exists {
		err := zerr.With(zerr.Wrap(ErrDuplicateProjectName, "index project"), "project_name", name)
		err = zerr.With(err, "first_output_path", x.order[i].Entry.OutputPath)
		return zerr.With(err, "duplicate_output_path", entry.OutputPath)
	}
	x.byName[name] = len(x.order)
	x.order = append(x.order, Project{Name: name, Entry: entry})
	return nil
}

// Projects returns a copy of the indexed projects in insertion order.
func (x *ProjectIndex) Projects() []Project {
	out := make([]Project, len(x.order))
	copy(out, x.order)
	return out
}
