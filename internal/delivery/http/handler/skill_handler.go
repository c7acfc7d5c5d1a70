package handler

import (
	"skill-manager/internal/delivery/http/dto"
	"skill-manager/internal/delivery/http/middleware"
	"skill-manager/internal/domain/skill"
	"skill-manager/internal/pkg/response"
	"skill-manager/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type createSkillRequest struct {
	Label string `json:"label"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.Find)
	grp.Post("/", guard, h.Create)
	grp.Get("/:id", h.Get)
	grp.Delete("/:id", guard, h.Delete)
}

func (h *SkillHandler) Find(c fiber.Ctx) error {
	page, err := dto.ParsePage(c.Query("page"), c.Query("size"), usecase.DefaultSkillPage)
	if err != nil {
		return middleware.FromDomain(err)
	}

	items, err := h.uc.FindSkills(c.Context(), page)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, items)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), usecase.AddSkillInput{Label: req.Label})
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, created)
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	id, err := skill.ParseID(c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}

	s, err := h.uc.GetSkill(c.Context(), id)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, s)
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := skill.ParseID(c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}

	if err := h.uc.DeleteSkill(c.Context(), id); err != nil {
		return middleware.FromDomain(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
