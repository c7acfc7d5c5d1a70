package handler

import (
	"skill-manager/internal/delivery/http/dto"
	"skill-manager/internal/delivery/http/middleware"
	"skill-manager/internal/domain/project"
	"skill-manager/internal/pkg/response"
	"skill-manager/internal/store"
	"skill-manager/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type createProjectRequest struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.Find)
	grp.Post("/", guard, h.Create)
	grp.Get("/:id", h.Get)
	grp.Delete("/:id", guard, h.Delete)
}

func (h *ProjectHandler) Find(c fiber.Ctx) error {
	page, err := dto.ParsePage(c.Query("page"), c.Query("size"), store.All)
	if err != nil {
		return middleware.FromDomain(err)
	}

	items, err := h.uc.FindProjects(c.Context(), page)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, items)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req createProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddProject(c.Context(), usecase.AddProjectInput{Label: req.Label, Description: req.Description})
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, created)
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := project.ParseID(c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}

	p, err := h.uc.GetProject(c.Context(), id)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, p)
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := project.ParseID(c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}

	if err := h.uc.DeleteProject(c.Context(), id); err != nil {
		return middleware.FromDomain(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
