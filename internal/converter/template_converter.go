package converter

import (
	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/template"
)

// TemplateToResponse converts a Template to TemplateResponse DTO
func TemplateToResponse(t *template.Template) *dto.TemplateResponse {
	if t == nil {
		return nil
	}

	fields := make([]dto.TemplateFieldResponse, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = dto.TemplateFieldResponse{
			ID:          f.ID,
			Label:       f.Label,
			Type:        string(f.Type),
			Required:    f.Required,
			Options:     f.Options,
			Placeholder: f.Placeholder,
		}
	}

	return &dto.TemplateResponse{
		ID:           t.ID,
		Name:         t.Name,
		Category:     string(t.Category),
		Icon:         t.Icon,
		DefaultPrice: t.DefaultPrice,
		Fields:       fields,
	}
}

// TemplatesToResponses converts a slice of Templates to DTOs
func TemplatesToResponses(templates []*template.Template) []dto.TemplateResponse {
	responses := make([]dto.TemplateResponse, len(templates))
	for i, t := range templates {
		resp := TemplateToResponse(t)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
