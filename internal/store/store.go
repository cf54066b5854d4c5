// Package store holds the single source of truth for a builder session: the
// resume document plus UI selection state. Every mutation is atomic, written
// through to durable storage, and announced to subscribers before the call
// returns.
package store

import (
	"errors"
	"log"
	"sync"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
)

// Store is an injectable state container. Tests instantiate isolated
// instances; nothing here is process-global.
type Store struct {
	mu    sync.RWMutex
	state model.AppState
	repo  repository.SnapshotRepo

	subMu   sync.Mutex
	subs    map[int]func(model.AppState)
	nextSub int
}

// New creates a store on the initial empty state.
func New(repo repository.SnapshotRepo) *Store {
	return &Store{
		state: model.InitialState(),
		repo:  repo,
		subs:  map[int]func(model.AppState){},
	}
}

// Restore replaces the initial state with the durable snapshot, if one
// exists and validates. It runs once at startup, before anything renders, so
// a returning session never sees a flash of empty state. An unreadable or
// invalid snapshot is discarded and the session starts fresh.
func Restore(repo repository.SnapshotRepo) *Store {
	s := New(repo)
	snap, err := repo.Load()
	switch {
	case errors.Is(err, repository.ErrNoSnapshot):
	case err != nil:
		log.Printf("warning: discarding durable snapshot: %v", err)
	default:
		s.state = snap
	}
	return s
}

// State returns a deep copy of the current state.
func (s *Store) State() model.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers a callback invoked after every mutation with a copy of
// the new state. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(model.AppState)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// mutate applies fn under the write lock, persists the snapshot, then
// notifies subscribers. Persistence is write-through on every mutation, so
// serialization stays cheap enough to run per keystroke.
func (s *Store) mutate(fn func(*model.AppState)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Save(snapshot); err != nil {
			log.Printf("warning: failed to persist snapshot: %v", err)
		}
	}
	s.notify(snapshot)
}

func (s *Store) notify(state model.AppState) {
	s.subMu.Lock()
	fns := make([]func(model.AppState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(state)
	}
}

// SetResumeData replaces the whole aggregate (used on restore/import).
func (s *Store) SetResumeData(data model.ResumeData) {
	s.mutate(func(st *model.AppState) { st.ResumeData = data.Clone() })
}

// UpdatePersonalInfo shallow-merges the patch into the singleton record.
func (s *Store) UpdatePersonalInfo(p model.PersonalInfoPatch) {
	s.mutate(func(st *model.AppState) { p.Apply(&st.ResumeData.PersonalInfo) })
}

func (s *Store) AddExperience(e model.Experience) {
	s.mutate(func(st *model.AppState) {
		st.ResumeData.Experience = append(st.ResumeData.Experience, e)
	})
}

// UpdateExperience is a no-op when the id is unknown; it never fails.
func (s *Store) UpdateExperience(id string, p model.ExperiencePatch) {
	s.mutate(func(st *model.AppState) {
		patchByID(st.ResumeData.Experience, id, p.Apply)
	})
}

func (s *Store) RemoveExperience(id string) {
	s.mutate(func(st *model.AppState) {
		st.ResumeData.Experience = removeByID(st.ResumeData.Experience, id)
	})
}

func (s *Store) AddEducation(e model.Education) {
	s.mutate(func(st *model.AppState) {
		st.ResumeData.Education = append(st.ResumeData.Education, e)
	})
}

func (s *Store) UpdateEducation(id string, p model.EducationPatch) {
	s.mutate(func(st *model.AppState) {
		patchByID(st.ResumeData.Education, id, p.Apply)
	})
}

func (s *Store) RemoveEducation(id string) {
	s.mutate(func(st *model.AppState) {
		st.ResumeData.Education = removeByID(st.ResumeData.Education, id)
	})
}

func (s *Store) AddSkill(sk model.Skill) {
	s.mutate(func(st *model.AppState) {
		st.ResumeData.Skills = append(st.ResumeData.Skills, sk)
	})
}

func (s *Store) UpdateSkill(id string, p model.SkillPatch) {
	s.mutate(func(st *model.AppState) {
		patchByID(st.ResumeData.Skills, id, p.Apply)
	})
}

func (s *Store) RemoveSkill(id string) {
	s.mutate(func(st *model.AppState) {
		st.ResumeData.Skills = removeByID(st.ResumeData.Skills, id)
	})
}

func (s *Store) AddProject(p model.Project) {
	s.mutate(func(st *model.AppState) {
		st.ResumeData.Projects = append(st.ResumeData.Projects, p)
	})
}

func (s *Store) UpdateProject(id string, p model.ProjectPatch) {
	s.mutate(func(st *model.AppState) {
		patchByID(st.ResumeData.Projects, id, p.Apply)
	})
}

func (s *Store) RemoveProject(id string) {
	s.mutate(func(st *model.AppState) {
		st.ResumeData.Projects = removeByID(st.ResumeData.Projects, id)
	})
}

func (s *Store) SetTemplate(id model.TemplateID) {
	s.mutate(func(st *model.AppState) { st.SelectedTemplate = id })
}

func (s *Store) SetAPIKey(key string) {
	s.mutate(func(st *model.AppState) { st.APIKey = key })
}

func (s *Store) SetLanguage(lang model.Language) {
	s.mutate(func(st *model.AppState) { st.Language = lang })
}

// Reset restores the initial empty state and purges the durable snapshot so
// a reload cannot resurrect old data.
func (s *Store) Reset() {
	s.mu.Lock()
	s.state = model.InitialState()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Delete(); err != nil {
			log.Printf("warning: failed to delete snapshot: %v", err)
		}
	}
	s.notify(snapshot)
}

func patchByID[T model.Entity](list []T, id string, apply func(*T)) {
	for i := range list {
		if list[i].EntityID() == id {
			apply(&list[i])
			return
		}
	}
}

func removeByID[T model.Entity](list []T, id string) []T {
	out := list[:0]
	for _, item := range list {
		if item.EntityID() != id {
			out = append(out, item)
		}
	}
	return out
}
