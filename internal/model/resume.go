package model

import "github.com/google/uuid"

// TemplateID selects one of the three interchangeable visual templates.
type TemplateID string

const (
	TemplateModern  TemplateID = "modern"
	TemplateClassic TemplateID = "classic"
	TemplateMinimal TemplateID = "minimal"
)

// Valid reports whether the id names a known template.
func (t TemplateID) Valid() bool {
	return t == TemplateModern || t == TemplateClassic || t == TemplateMinimal
}

// Language selects one of the static string tables.
type Language string

const (
	LangEnglish Language = "en"
	LangGerman  Language = "de"
)

func (l Language) Valid() bool { return l == LangEnglish || l == LangGerman }

// PersonalInfo is the singleton header record of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub   string `json:"github,omitempty" validate:"omitempty,url"`
	Summary  string `json:"summary" validate:"min=10"`
}

// Experience is one work-history entry. The id is minted at add time and is
// stable across edits. When Current is false the end date should be set, but
// that is advisory only and never enforced at the data layer.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Keywords    string `json:"keywords,omitempty"`
	Description string `json:"description" validate:"min=10"`
}

func (e Experience) EntityID() string { return e.ID }

// Education is one schooling entry.
type Education struct {
	ID          string `json:"id"`
	School      string `json:"school" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

func (e Education) EntityID() string { return e.ID }

// Skill carries a 1-5 level that is part of the contract but not currently
// visualized by any template.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"min=1,max=5"`
}

func (s Skill) EntityID() string { return s.ID }

// Project is one portfolio entry.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"min=10"`
	Link         string `json:"link,omitempty" validate:"omitempty,url"`
	GitHub       string `json:"github,omitempty" validate:"omitempty,url"`
	Technologies string `json:"technologies,omitempty"`
}

func (p Project) EntityID() string { return p.ID }

// Entity is any collection member with a stable id.
type Entity interface {
	EntityID() string
}

// ResumeData is the document aggregate. Collection order is insertion order
// and is rendered top to bottom.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// AppState wraps the document with the UI selection state. Its JSON form is
// exactly the durable snapshot record.
type AppState struct {
	ResumeData       ResumeData `json:"resumeData"`
	SelectedTemplate TemplateID `json:"selectedTemplate"`
	APIKey           string     `json:"apiKey"`
	Language         Language   `json:"language"`
}

// InitialState returns the empty state a fresh session starts from.
func InitialState() AppState {
	return AppState{
		ResumeData: ResumeData{
			Experience: []Experience{},
			Education:  []Education{},
			Skills:     []Skill{},
			Projects:   []Project{},
		},
		SelectedTemplate: TemplateModern,
		Language:         LangEnglish,
	}
}

// NewID mints a stable collection-entry id.
func NewID() string { return uuid.NewString() }

// Clone returns a deep copy so callers can hand out state without aliasing
// the store's collections.
func (s AppState) Clone() AppState {
	out := s
	out.ResumeData = s.ResumeData.Clone()
	return out
}

func (d ResumeData) Clone() ResumeData {
	out := d
	out.Experience = append([]Experience{}, d.Experience...)
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]Skill{}, d.Skills...)
	out.Projects = append([]Project{}, d.Projects...)
	return out
}
