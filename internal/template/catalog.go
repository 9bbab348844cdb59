package template

import "github.com/shopspring/decimal"

// Builtin returns the registry with the built-in medical and dental catalog.
// A registration error here is a configuration error and should abort startup.
func Builtin() (*Registry, error) {
	r := NewRegistry()
	for _, t := range builtinTemplates() {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func builtinTemplates() []Template {
	return []Template{
		{
			ID:           "blood-test",
			Name:         "Exame de Sangue",
			Category:     CategoryMedical,
			Icon:         "🩸",
			DefaultPrice: decimal.NewFromInt(150),
			Fields: []Field{
				{ID: "hemoglobin", Label: "Hemoglobina", Type: FieldText, Required: true, Placeholder: "Ex: 14.5 g/dL"},
				{ID: "glucose", Label: "Glicose", Type: FieldText, Required: true, Placeholder: "Ex: 95 mg/dL"},
				{ID: "cholesterol", Label: "Colesterol Total", Type: FieldText, Placeholder: "Ex: 180 mg/dL"},
				{ID: "observations", Label: "Observações", Type: FieldTextarea, Placeholder: "Observações adicionais..."},
			},
		},
		{
			ID:           "xray",
			Name:         "Raio-X",
			Category:     CategoryMedical,
			Icon:         "🦴",
			DefaultPrice: decimal.NewFromInt(120),
			Fields: []Field{
				{ID: "region", Label: "Região Examinada", Type: FieldSelect, Required: true, Options: []string{"Tórax", "Abdome", "Membros", "Coluna", "Crânio"}},
				{ID: "findings", Label: "Achados", Type: FieldTextarea, Required: true, Placeholder: "Descreva os achados radiológicos..."},
				{ID: "conclusion", Label: "Conclusão", Type: FieldTextarea, Required: true, Placeholder: "Conclusão diagnóstica..."},
			},
		},
		{
			ID:           "ecg",
			Name:         "Eletrocardiograma",
			Category:     CategoryMedical,
			Icon:         "💓",
			DefaultPrice: decimal.NewFromInt(80),
			Fields: []Field{
				{ID: "rhythm", Label: "Ritmo", Type: FieldSelect, Required: true, Options: []string{"Sinusal", "Fibrilação Atrial", "Flutter Atrial", "Outro"}},
				{ID: "frequency", Label: "Frequência (bpm)", Type: FieldNumber, Required: true, Placeholder: "70"},
				{ID: "axis", Label: "Eixo Elétrico", Type: FieldText, Placeholder: "Normal, Desviado à esquerda, etc."},
				{ID: "interpretation", Label: "Interpretação", Type: FieldTextarea, Required: true, Placeholder: "Interpretação do ECG..."},
			},
		},
		{
			ID:           "dental-exam",
			Name:         "Exame Clínico Odontológico",
			Category:     CategoryDental,
			Icon:         "🦷",
			DefaultPrice: decimal.NewFromInt(100),
			Fields: []Field{
				{ID: "chief_complaint", Label: "Queixa Principal", Type: FieldTextarea, Required: true, Placeholder: "Motivo da consulta..."},
				{ID: "oral_hygiene", Label: "Higiene Oral", Type: FieldSelect, Required: true, Options: []string{"Boa", "Regular", "Deficiente"}},
				{ID: "gums", Label: "Estado Gengival", Type: FieldSelect, Required: true, Options: []string{"Saudável", "Gengivite", "Periodontite"}},
				{ID: "teeth_condition", Label: "Condição Dentária", Type: FieldTextarea, Required: true, Placeholder: "Descreva o estado dos dentes..."},
				{ID: "treatment_plan", Label: "Plano de Tratamento", Type: FieldTextarea, Required: true, Placeholder: "Tratamentos recomendados..."},
			},
		},
		{
			ID:           "dental-xray",
			Name:         "Radiografia Odontológica",
			Category:     CategoryDental,
			Icon:         "📷",
			DefaultPrice: decimal.NewFromInt(60),
			Fields: []Field{
				{ID: "xray_type", Label: "Tipo de Radiografia", Type: FieldSelect, Required: true, Options: []string{"Periapical", "Panorâmica", "Bite-wing", "Oclusal"}},
				{ID: "region", Label: "Região/Dente", Type: FieldText, Required: true, Placeholder: "Ex: Dente 16, Região anterior, etc."},
				{ID: "findings", Label: "Achados Radiográficos", Type: FieldTextarea, Required: true, Placeholder: "Descreva os achados..."},
				{ID: "diagnosis", Label: "Diagnóstico", Type: FieldTextarea, Required: true, Placeholder: "Diagnóstico baseado na imagem..."},
			},
		},
		{
			ID:           "orthodontic",
			Name:         "Avaliação Ortodôntica",
			Category:     CategoryDental,
			Icon:         "🔧",
			DefaultPrice: decimal.NewFromInt(200),
			Fields: []Field{
				{ID: "facial_analysis", Label: "Análise Facial", Type: FieldTextarea, Required: true, Placeholder: "Análise do perfil facial..."},
				{ID: "occlusion", Label: "Oclusão", Type: FieldSelect, Required: true, Options: []string{"Classe I", "Classe II", "Classe III"}},
				{ID: "crowding", Label: "Apinhamento", Type: FieldSelect, Required: true, Options: []string{"Ausente", "Leve", "Moderado", "Severo"}},
				{ID: "treatment_plan", Label: "Plano Ortodôntico", Type: FieldTextarea, Required: true, Placeholder: "Plano de tratamento ortodôntico..."},
			},
		},
	}
}
