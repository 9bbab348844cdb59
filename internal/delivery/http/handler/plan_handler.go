package handler

import (
	"net/http"

	"github.com/laudohub/laudohub-api/internal/converter"
	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/subscription"
	"github.com/laudohub/laudohub-api/pkg/response"
)

type PlanHandler struct{}

func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans := subscription.Plans()

	response.Success(w, http.StatusOK, "Plans retrieved successfully", &dto.PlanListResponse{
		Plans: converter.PlansToResponses(plans),
		Total: len(plans),
	})
}
