package dto

import (
	"time"

	"skm_backend/internals/features/skm/model"
	helper "skm_backend/internals/helpers"
)

type CreateQuestionRequest struct {
	Question string `json:"question" validate:"required,min=1,max=225"`
	Acronim  string `json:"acronim" validate:"required,min=1,max=225"`
	Option1  string `json:"option_1" validate:"required,min=1,max=225"`
	Option2  string `json:"option_2" validate:"required,min=1,max=225"`
	Option3  string `json:"option_3" validate:"required,min=1,max=225"`
	Option4  string `json:"option_4" validate:"required,min=1,max=225"`
}

func (r CreateQuestionRequest) ToModel() model.QuestionModel {
	return model.QuestionModel{
		Question: r.Question,
		Acronim:  r.Acronim,
		Option1:  r.Option1,
		Option2:  r.Option2,
		Option3:  r.Option3,
		Option4:  r.Option4,
	}
}

type UpdateQuestionRequest struct {
	ID       uint                      `json:"id" validate:"required,min=1"`
	Question helper.PatchField[string] `json:"question" validate:"omitnil,min=1,max=225"`
	Acronim  helper.PatchField[string] `json:"acronim" validate:"omitnil,min=1,max=225"`
	Option1  helper.PatchField[string] `json:"option_1" validate:"omitnil,min=1,max=225"`
	Option2  helper.PatchField[string] `json:"option_2" validate:"omitnil,min=1,max=225"`
	Option3  helper.PatchField[string] `json:"option_3" validate:"omitnil,min=1,max=225"`
	Option4  helper.PatchField[string] `json:"option_4" validate:"omitnil,min=1,max=225"`
	Status   helper.PatchField[bool]   `json:"status"`
}

// Apply menyalin field yang dikirim ke m dan mengembalikan map kolom yang berubah.
func (r UpdateQuestionRequest) Apply(m *model.QuestionModel) map[string]any {
	changes := map[string]any{}
	if r.Question.Apply(&m.Question) {
		changes["question"] = m.Question
	}
	if r.Acronim.Apply(&m.Acronim) {
		changes["acronim"] = m.Acronim
	}
	if r.Option1.Apply(&m.Option1) {
		changes["option_1"] = m.Option1
	}
	if r.Option2.Apply(&m.Option2) {
		changes["option_2"] = m.Option2
	}
	if r.Option3.Apply(&m.Option3) {
		changes["option_3"] = m.Option3
	}
	if r.Option4.Apply(&m.Option4) {
		changes["option_4"] = m.Option4
	}
	if r.Status.Apply(&m.Status) {
		changes["status"] = m.Status
	}
	return changes
}

type QuestionResponse struct {
	ID        uint      `json:"id"`
	Question  string    `json:"question"`
	Acronim   string    `json:"acronim"`
	Option1   string    `json:"option_1"`
	Option2   string    `json:"option_2"`
	Option3   string    `json:"option_3"`
	Option4   string    `json:"option_4"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m model.QuestionModel) QuestionResponse {
	return QuestionResponse{
		ID:        m.ID,
		Question:  m.Question,
		Acronim:   m.Acronim,
		Option1:   m.Option1,
		Option2:   m.Option2,
		Option3:   m.Option3,
		Option4:   m.Option4,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
