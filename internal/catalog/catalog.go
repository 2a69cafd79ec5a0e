package catalog

import (
	"errors"
	"fmt"

	"github.com/viraj5503/portfolio-api/internal/model"
)

// ErrNotFound is returned when a requested record does not exist in the catalog.
var ErrNotFound = errors.New("not found")

// Catalog is the immutable, in-memory store of portfolio content. It is built
// once at startup from the static tables in data.go and only ever read after
// that, so it is safe to share across request handlers without locking.
type Catalog struct {
	personal       model.PersonalInfo
	about          model.AboutInfo
	projects       []model.Project
	projectIndex   map[int]model.Project
	skills         model.SkillsData
	education      []model.Education
	certifications []model.Certification
	experience     []model.Experience
	languages      []model.Language
	achievements   []string
}

// New builds the catalog from the static content tables. It fails when two
// projects share an id, since id is the single-project lookup key; a defect
// in the hand-authored data should stop the process before it serves anything.
func New() (*Catalog, error) {
	index := make(map[int]model.Project, len(projects))
	for _, p := range projects {
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate project id %d", p.ID)
		}
		index[p.ID] = p
	}
	return &Catalog{
		personal:       personalInfo,
		about:          aboutInfo,
		projects:       projects,
		projectIndex:   index,
		skills:         skillsData,
		education:      education,
		certifications: certifications,
		experience:     experience,
		languages:      languages,
		achievements:   achievements,
	}, nil
}

// Personal returns the hero-section record.
func (c *Catalog) Personal() model.PersonalInfo { return c.personal }

// About returns the about-section record.
func (c *Catalog) About() model.AboutInfo { return c.about }

// Projects returns all projects in authored order.
func (c *Catalog) Projects() []model.Project { return c.projects }

// ProjectByID returns the project with the given id, or ErrNotFound when no
// project matches.
func (c *Catalog) ProjectByID(id int) (model.Project, error) {
	p, ok := c.projectIndex[id]
	if !ok {
		return model.Project{}, ErrNotFound
	}
	return p, nil
}

// Skills returns the grouped skills record.
func (c *Catalog) Skills() model.SkillsData { return c.skills }

// Education returns all education entries.
func (c *Catalog) Education() []model.Education { return c.education }

// Certifications returns all certification entries.
func (c *Catalog) Certifications() []model.Certification { return c.certifications }

// Experience returns all work-experience entries.
func (c *Catalog) Experience() []model.Experience { return c.experience }

// Languages returns all language entries.
func (c *Catalog) Languages() []model.Language { return c.languages }

// Achievements returns the achievements list.
func (c *Catalog) Achievements() []string { return c.achievements }
