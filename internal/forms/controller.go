// Package forms implements the per-collection form controllers. Each
// controller keeps a transient editable draft of one store collection and
// pushes every field change straight through to the store; the draft exists
// for responsiveness, the store stays authoritative.
package forms

import (
	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

// ops binds one store collection's operations to the generic controller.
type ops[T model.Entity, P any] struct {
	list   func() []T
	add    func(T)
	update func(id string, patch P)
	remove func(id string)
	apply  func(P, *T)
	check  func(T) []model.FieldError
}

// Controller mirrors one store collection. Add and Remove perform the local
// splice and the store call as one logical action; SetField updates the
// draft immediately and propagates the same partial to the store.
type Controller[T model.Entity, P any] struct {
	ops    ops[T, P]
	drafts []T
	errs   map[string][]model.FieldError
}

func newController[T model.Entity, P any](o ops[T, P]) *Controller[T, P] {
	c := &Controller[T, P]{ops: o, errs: map[string][]model.FieldError{}}
	c.Resync()
	return c
}

// Drafts returns the controller's current draft list.
func (c *Controller[T, P]) Drafts() []T {
	return append([]T{}, c.drafts...)
}

// Errors returns the advisory validation messages for one entry. They are
// informational only; the draft has already been persisted regardless.
func (c *Controller[T, P]) Errors(id string) []model.FieldError {
	return c.errs[id]
}

// Add appends the entry locally and in the store.
func (c *Controller[T, P]) Add(entry T) {
	c.drafts = append(c.drafts, entry)
	c.ops.add(entry)
	c.validate(entry)
}

// SetField merges the partial into the local draft and pushes the identical
// partial to the store. Validation runs as an independent pass over the new
// draft; invalid fields still persist (the user's draft is never lost).
func (c *Controller[T, P]) SetField(id string, patch P) {
	for i := range c.drafts {
		if c.drafts[i].EntityID() == id {
			c.ops.apply(patch, &c.drafts[i])
			c.ops.update(id, patch)
			c.validate(c.drafts[i])
			return
		}
	}
	// Unknown id: the store may have diverged (external add/remove); it is
	// authoritative, so re-derive the draft list and retry once.
	c.Resync()
	for i := range c.drafts {
		if c.drafts[i].EntityID() == id {
			c.ops.apply(patch, &c.drafts[i])
			c.ops.update(id, patch)
			c.validate(c.drafts[i])
			return
		}
	}
}

// Remove drops the entry locally and in the store.
func (c *Controller[T, P]) Remove(id string) {
	kept := c.drafts[:0]
	for _, d := range c.drafts {
		if d.EntityID() != id {
			kept = append(kept, d)
		}
	}
	c.drafts = kept
	delete(c.errs, id)
	c.ops.remove(id)
}

// Resync re-derives the draft list from the store's id list.
func (c *Controller[T, P]) Resync() {
	c.drafts = c.ops.list()
	for _, d := range c.drafts {
		c.validate(d)
	}
}

func (c *Controller[T, P]) validate(entry T) {
	errs := c.ops.check(entry)
	if len(errs) == 0 {
		delete(c.errs, entry.EntityID())
		return
	}
	c.errs[entry.EntityID()] = errs
}

// NewExperienceController builds the controller for the experience list.
func NewExperienceController(s *store.Store) *Controller[model.Experience, model.ExperiencePatch] {
	return newController(ops[model.Experience, model.ExperiencePatch]{
		list:   func() []model.Experience { return s.State().ResumeData.Experience },
		add:    s.AddExperience,
		update: s.UpdateExperience,
		remove: s.RemoveExperience,
		apply:  model.ExperiencePatch.Apply,
		check:  model.ValidateExperience,
	})
}

func NewEducationController(s *store.Store) *Controller[model.Education, model.EducationPatch] {
	return newController(ops[model.Education, model.EducationPatch]{
		list:   func() []model.Education { return s.State().ResumeData.Education },
		add:    s.AddEducation,
		update: s.UpdateEducation,
		remove: s.RemoveEducation,
		apply:  model.EducationPatch.Apply,
		check:  model.ValidateEducation,
	})
}

func NewSkillController(s *store.Store) *Controller[model.Skill, model.SkillPatch] {
	return newController(ops[model.Skill, model.SkillPatch]{
		list:   func() []model.Skill { return s.State().ResumeData.Skills },
		add:    s.AddSkill,
		update: s.UpdateSkill,
		remove: s.RemoveSkill,
		apply:  model.SkillPatch.Apply,
		check:  model.ValidateSkill,
	})
}

func NewProjectController(s *store.Store) *Controller[model.Project, model.ProjectPatch] {
	return newController(ops[model.Project, model.ProjectPatch]{
		list:   func() []model.Project { return s.State().ResumeData.Projects },
		add:    s.AddProject,
		update: s.UpdateProject,
		remove: s.RemoveProject,
		apply:  model.ProjectPatch.Apply,
		check:  model.ValidateProject,
	})
}
