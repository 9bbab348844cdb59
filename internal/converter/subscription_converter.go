package converter

import (
	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/subscription"
)

// PlanToResponse converts a subscription Plan to DTO
func PlanToResponse(plan subscription.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:       plan.ID,
		Name:     plan.Name,
		Price:    plan.Price,
		Interval: plan.Interval,
		Features: plan.Features,
		Limits: dto.PlanLimitsResponse{
			Reports:          plan.Limits.Reports,
			Patients:         plan.Limits.Patients,
			WhatsappMessages: plan.Limits.WhatsappMessages,
			Storage:          plan.Limits.Storage,
		},
		Popular: plan.Popular,
	}
}

// PlansToResponses converts the plan catalog to DTOs
func PlansToResponses(plans []subscription.Plan) []dto.PlanResponse {
	responses := make([]dto.PlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = PlanToResponse(plan)
	}
	return responses
}
