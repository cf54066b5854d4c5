// Package http exposes the builder session over a small JSON API plus the
// server-rendered preview and the PDF export download.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/ats"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
)

type Handler struct {
	store    *store.Store
	exporter *usecase.Exporter
	ai       *ai.Client
}

func NewHandler(s *store.Store, e *usecase.Exporter, client *ai.Client) *Handler {
	return &Handler{store: s, exporter: e, ai: client}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/state", h.GetState)
	app.Put("/resume", h.SetResumeData)
	app.Patch("/resume/personal-info", h.UpdatePersonalInfo)

	app.Post("/resume/experience", h.AddExperience)
	app.Patch("/resume/experience/:id", h.UpdateExperience)
	app.Delete("/resume/experience/:id", h.RemoveExperience)

	app.Post("/resume/education", h.AddEducation)
	app.Patch("/resume/education/:id", h.UpdateEducation)
	app.Delete("/resume/education/:id", h.RemoveEducation)

	app.Post("/resume/skills", h.AddSkill)
	app.Patch("/resume/skills/:id", h.UpdateSkill)
	app.Delete("/resume/skills/:id", h.RemoveSkill)

	app.Post("/resume/projects", h.AddProject)
	app.Patch("/resume/projects/:id", h.UpdateProject)
	app.Delete("/resume/projects/:id", h.RemoveProject)

	app.Put("/template", h.SetTemplate)
	app.Put("/language", h.SetLanguage)
	app.Put("/api-key", h.SetAPIKey)
	app.Post("/reset", h.Reset)

	app.Get("/preview", h.Preview)
	app.Post("/export", h.Export)
	app.Post("/ai/generate", h.Generate)
	app.Post("/ats/score", h.ScoreATS)
}

func (h *Handler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.store.State())
}

func (h *Handler) SetResumeData(c *fiber.Ctx) error {
	var data model.ResumeData
	if err := c.BodyParser(&data); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.store.SetResumeData(data)
	return c.JSON(h.store.State())
}

func (h *Handler) UpdatePersonalInfo(c *fiber.Ctx) error {
	var patch model.PersonalInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.store.UpdatePersonalInfo(patch)

	// Validation is advisory: the patch is already persisted, the messages
	// ride along for inline display.
	info := h.store.State().ResumeData.PersonalInfo
	return c.JSON(fiber.Map{
		"personalInfo": info,
		"errors":       model.ValidatePersonalInfo(info),
	})
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	var e model.Experience
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	e.ID = model.NewID()
	h.store.AddExperience(e)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"experience": e,
		"errors":     model.ValidateExperience(e),
	})
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var patch model.ExperiencePatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "invalid payload")
	}
	// Unknown ids are a silent no-op by contract.
	h.store.UpdateExperience(c.Params("id"), patch)
	return c.JSON(h.store.State().ResumeData.Experience)
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	h.store.RemoveExperience(c.Params("id"))
	return c.JSON(h.store.State().ResumeData.Experience)
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	var e model.Education
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	e.ID = model.NewID()
	h.store.AddEducation(e)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"education": e,
		"errors":    model.ValidateEducation(e),
	})
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var patch model.EducationPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.store.UpdateEducation(c.Params("id"), patch)
	return c.JSON(h.store.State().ResumeData.Education)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	h.store.RemoveEducation(c.Params("id"))
	return c.JSON(h.store.State().ResumeData.Education)
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var s model.Skill
	if err := c.BodyParser(&s); err != nil {
		return badRequest(c, "invalid payload")
	}
	s.ID = model.NewID()
	h.store.AddSkill(s)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"skill":  s,
		"errors": model.ValidateSkill(s),
	})
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	var patch model.SkillPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.store.UpdateSkill(c.Params("id"), patch)
	return c.JSON(h.store.State().ResumeData.Skills)
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	h.store.RemoveSkill(c.Params("id"))
	return c.JSON(h.store.State().ResumeData.Skills)
}

func (h *Handler) AddProject(c *fiber.Ctx) error {
	var p model.Project
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid payload")
	}
	p.ID = model.NewID()
	h.store.AddProject(p)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"project": p,
		"errors":  model.ValidateProject(p),
	})
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	var patch model.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.store.UpdateProject(c.Params("id"), patch)
	return c.JSON(h.store.State().ResumeData.Projects)
}

func (h *Handler) RemoveProject(c *fiber.Ctx) error {
	h.store.RemoveProject(c.Params("id"))
	return c.JSON(h.store.State().ResumeData.Projects)
}

func (h *Handler) SetTemplate(c *fiber.Ctx) error {
	var req struct {
		Template model.TemplateID `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if !req.Template.Valid() {
		return badRequest(c, "unknown template")
	}
	h.store.SetTemplate(req.Template)
	return c.JSON(h.store.State())
}

func (h *Handler) SetLanguage(c *fiber.Ctx) error {
	var req struct {
		Language model.Language `json:"language"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if !req.Language.Valid() {
		return badRequest(c, "unknown language")
	}
	h.store.SetLanguage(req.Language)
	return c.JSON(h.store.State())
}

func (h *Handler) SetAPIKey(c *fiber.Ctx) error {
	var req struct {
		APIKey string `json:"apiKey"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.store.SetAPIKey(req.APIKey)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) Reset(c *fiber.Ctx) error {
	h.store.Reset()
	return c.JSON(h.store.State())
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	state := h.store.State()
	html, err := render.Render(state.ResumeData, state.SelectedTemplate, state.Language)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	state := h.store.State()
	html, err := render.Render(state.ResumeData, state.SelectedTemplate, state.Language)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.exporter.Export(c.Context(), html, render.PreviewTargetID, state.ResumeData.PersonalInfo.FullName)
	switch {
	case errors.Is(err, usecase.ErrExportBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrTargetMissing):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export PDF: " + err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.PDF)
}

type generateReq struct {
	Kind              string `json:"kind"`
	Role              string `json:"role,omitempty"`
	ExperienceSummary string `json:"experienceSummary,omitempty"`
	Company           string `json:"company,omitempty"`
	Keywords          string `json:"keywords,omitempty"`
	Text              string `json:"text,omitempty"`
	APIKey            string `json:"apiKey,omitempty"`
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	var req generateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	var prompt string
	switch req.Kind {
	case "summary":
		prompt = ai.SummaryPrompt(req.Role, req.ExperienceSummary)
	case "experience":
		prompt = ai.ExperienceDescriptionPrompt(req.Role, req.Company, req.Keywords)
	case "improve":
		prompt = ai.ImprovePrompt(req.Text)
	default:
		return badRequest(c, "unknown prompt kind")
	}

	key := req.APIKey
	if key == "" {
		key = h.store.State().APIKey
	}

	text, err := h.ai.Generate(c.Context(), key, prompt)
	if err != nil {
		// A rejected credential is never persisted.
		var apiErr *ai.APIError
		switch {
		case errors.Is(err, ai.ErrCredentialMissing):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "credential_missing"})
		case errors.As(err, &apiErr):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": apiErr.Error(), "status": apiErr.Status})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}
	}

	// The call succeeded, so an explicitly supplied key is accepted and
	// persisted for subsequent calls.
	if req.APIKey != "" {
		h.store.SetAPIKey(req.APIKey)
	}
	return c.JSON(fiber.Map{"text": text})
}

func (h *Handler) ScoreATS(c *fiber.Ctx) error {
	var req struct {
		JobDescription string `json:"jobDescription"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.JSON(ats.Score(h.store.State().ResumeData, req.JobDescription))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
