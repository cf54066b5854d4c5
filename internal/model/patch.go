package model

// Partial-update types. Each field is a pointer so a JSON body only carries
// the fields the form actually changed; Apply merges set fields into the
// target and leaves the rest alone.

type PersonalInfoPatch struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

func (p PersonalInfoPatch) Apply(info *PersonalInfo) {
	setString(&info.FullName, p.FullName)
	setString(&info.Email, p.Email)
	setString(&info.Phone, p.Phone)
	setString(&info.Location, p.Location)
	setString(&info.Website, p.Website)
	setString(&info.LinkedIn, p.LinkedIn)
	setString(&info.GitHub, p.GitHub)
	setString(&info.Summary, p.Summary)
}

type ExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Keywords    *string `json:"keywords,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p ExperiencePatch) Apply(e *Experience) {
	setString(&e.Company, p.Company)
	setString(&e.Position, p.Position)
	setString(&e.StartDate, p.StartDate)
	setString(&e.EndDate, p.EndDate)
	setBool(&e.Current, p.Current)
	setString(&e.Keywords, p.Keywords)
	setString(&e.Description, p.Description)
}

type EducationPatch struct {
	School      *string `json:"school,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p EducationPatch) Apply(e *Education) {
	setString(&e.School, p.School)
	setString(&e.Degree, p.Degree)
	setString(&e.Field, p.Field)
	setString(&e.StartDate, p.StartDate)
	setString(&e.EndDate, p.EndDate)
	setBool(&e.Current, p.Current)
	setString(&e.Description, p.Description)
}

type SkillPatch struct {
	Name  *string `json:"name,omitempty"`
	Level *int    `json:"level,omitempty"`
}

func (p SkillPatch) Apply(s *Skill) {
	setString(&s.Name, p.Name)
	if p.Level != nil {
		s.Level = *p.Level
	}
}

type ProjectPatch struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Link         *string `json:"link,omitempty"`
	GitHub       *string `json:"github,omitempty"`
	Technologies *string `json:"technologies,omitempty"`
}

func (p ProjectPatch) Apply(pr *Project) {
	setString(&pr.Name, p.Name)
	setString(&pr.Description, p.Description)
	setString(&pr.Link, p.Link)
	setString(&pr.GitHub, p.GitHub)
	setString(&pr.Technologies, p.Technologies)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
