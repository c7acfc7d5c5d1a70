package handler

import (
	"skill-manager/internal/delivery/http/dto"
	"skill-manager/internal/delivery/http/middleware"
	"skill-manager/internal/domain/employee"
	"skill-manager/internal/pkg/response"
	"skill-manager/internal/store"
	"skill-manager/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployeeHandler struct {
	uc     usecase.EmployeeUsecase
	assign usecase.AssignmentUsecase
}

func NewEmployeeHandler(uc usecase.EmployeeUsecase, assign usecase.AssignmentUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, assign: assign}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/employees")
	grp.Get("/", h.Find)
	grp.Post("/", guard, h.Create)
	grp.Get("/:id", h.Get)
	grp.Delete("/:id", guard, h.Delete)
	grp.Post("/:id/projects", guard, h.AssignProject)
	grp.Post("/:id/skills", guard, h.AssignSkill)
}

func (h *EmployeeHandler) Find(c fiber.Ctx) error {
	page, err := dto.ParsePage(c.Query("page"), c.Query("size"), store.All)
	if err != nil {
		return middleware.FromDomain(err)
	}

	items, err := h.uc.FindEmployees(c.Context(), page)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, items)
}

func (h *EmployeeHandler) Create(c fiber.Ctx) error {
	var req dto.AddEmployeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddEmployee(c.Context(), req.Input())
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, created)
}

func (h *EmployeeHandler) Get(c fiber.Ctx) error {
	id, err := employee.ParseID(c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}

	e, err := h.uc.GetEmployee(c.Context(), id)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, e)
}

func (h *EmployeeHandler) Delete(c fiber.Ctx) error {
	id, err := employee.ParseID(c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}

	if err := h.uc.DeleteEmployee(c.Context(), id); err != nil {
		return middleware.FromDomain(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EmployeeHandler) AssignProject(c fiber.Ctx) error {
	id, err := employee.ParseID(c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}

	var req dto.AssignProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	in, err := req.Input()
	if err != nil {
		return middleware.FromDomain(err)
	}

	pa, err := h.assign.AssignProjectToEmployee(c.Context(), id, in)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, pa)
}

func (h *EmployeeHandler) AssignSkill(c fiber.Ctx) error {
	id, err := employee.ParseID(c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}

	var req dto.AssignSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	in, err := req.Input()
	if err != nil {
		return middleware.FromDomain(err)
	}

	sa, err := h.assign.AssignSkillToEmployee(c.Context(), id, in)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Record(c, fiber.StatusOK, sa)
}
