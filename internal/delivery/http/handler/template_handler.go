package handler

import (
	"net/http"

	"github.com/laudohub/laudohub-api/internal/converter"
	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/template"
	"github.com/laudohub/laudohub-api/pkg/response"

	"github.com/gorilla/mux"
)

type TemplateHandler struct {
	registry *template.Registry
}

func NewTemplateHandler(registry *template.Registry) *TemplateHandler {
	return &TemplateHandler{registry: registry}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	category := template.Category(r.URL.Query().Get("category"))

	templates := h.registry.List(category)

	response.Success(w, http.StatusOK, "Templates retrieved successfully", &dto.TemplateListResponse{
		Templates: converter.TemplatesToResponses(templates),
		Total:     len(templates),
	})
}

func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.registry.Get(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Template not found")
		return
	}

	response.Success(w, http.StatusOK, "Template retrieved successfully", converter.TemplateToResponse(tmpl))
}
