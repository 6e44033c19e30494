package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/school-personnel/internal/model"
	"github.com/deppfellow/school-personnel/internal/server"
	"github.com/deppfellow/school-personnel/internal/service"
	"github.com/deppfellow/school-personnel/internal/validation"
	"github.com/labstack/echo/v4"
)

// ProfessorIDRequest identifies a professor by the :id path segment.
type ProfessorIDRequest struct {
	ID model.ID `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *ProfessorIDRequest) Validate() error {
	return validation.Struct(r)
}

// CreateProfessorRequest is the JSON body of POST /professor/add/.
type CreateProfessorRequest struct {
	model.ProfessorPayload
}

func (r *CreateProfessorRequest) Validate() error {
	return r.ProfessorPayload.Validate()
}

// UpdateProfessorRequest combines the :id path segment with the full
// replacement body.
type UpdateProfessorRequest struct {
	ID model.ID `param:"id" json:"-" validate:"required,gt=0"`
	model.ProfessorPayload
}

func (r *UpdateProfessorRequest) Validate() error {
	return validation.Struct(r)
}

type IndexResponse struct {
	Message string `json:"message"`
}

type ProfessorHandler struct {
	Handler
	professors *service.ProfessorService
}

func NewProfessorHandler(s *server.Server, professors *service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{
		Handler:    NewHandler(s),
		professors: professors,
	}
}

// ProfessorLocation is the canonical URL of a professor.
func ProfessorLocation(id model.ID) string {
	return fmt.Sprintf("/professor/%d/", id)
}

func (h *ProfessorHandler) Index(c echo.Context, _ *EmptyRequest) (IndexResponse, error) {
	return IndexResponse{Message: "Index responding"}, nil
}

func (h *ProfessorHandler) List(c echo.Context, _ *EmptyRequest) ([]model.Professor, error) {
	return h.professors.ListProfessors(c.Request().Context())
}

func (h *ProfessorHandler) Get(c echo.Context, req *ProfessorIDRequest) (model.Professor, error) {
	return h.professors.GetProfessor(c.Request().Context(), req.ID)
}

func (h *ProfessorHandler) Create(c echo.Context, req *CreateProfessorRequest) (string, error) {
	professor, err := h.professors.CreateProfessor(c.Request().Context(), req.ProfessorPayload)
	if err != nil {
		return "", err
	}

	c.Response().Header().Set(echo.HeaderLocation, ProfessorLocation(professor.ID))
	return fmt.Sprintf("Professor %s has been created correctly", professor), nil
}

func (h *ProfessorHandler) Update(c echo.Context, req *UpdateProfessorRequest) (string, error) {
	professor, err := h.professors.UpdateProfessor(c.Request().Context(), req.ID, req.ProfessorPayload)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Professor %s modified correctly", professor), nil
}

func (h *ProfessorHandler) Delete(c echo.Context, req *ProfessorIDRequest) (string, error) {
	professor, err := h.professors.DeleteProfessor(c.Request().Context(), req.ID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Professor %s deleted correctly", professor), nil
}

func (h *ProfessorHandler) IndexHandler() echo.HandlerFunc {
	return Handle(h.Handler, h.Index, http.StatusOK, &EmptyRequest{})
}

func (h *ProfessorHandler) ListHandler() echo.HandlerFunc {
	return Handle(h.Handler, h.List, http.StatusOK, &EmptyRequest{})
}

func (h *ProfessorHandler) GetHandler() echo.HandlerFunc {
	return Handle(h.Handler, h.Get, http.StatusOK, &ProfessorIDRequest{})
}

// CreateHandler answers 200 with a plain-text confirmation, like the
// other write endpoints.
func (h *ProfessorHandler) CreateHandler() echo.HandlerFunc {
	return HandleText(h.Handler, h.Create, http.StatusOK, &CreateProfessorRequest{})
}

func (h *ProfessorHandler) UpdateHandler() echo.HandlerFunc {
	return HandleText(h.Handler, h.Update, http.StatusOK, &UpdateProfessorRequest{})
}

func (h *ProfessorHandler) DeleteHandler() echo.HandlerFunc {
	return HandleText(h.Handler, h.Delete, http.StatusOK, &ProfessorIDRequest{})
}
