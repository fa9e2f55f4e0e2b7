package dto

import (
	"time"

	"skm_backend/internals/features/skm/model"
	questionDto "skm_backend/internals/features/skm/question/dto"
	respondenDto "skm_backend/internals/features/skm/responden/dto"
)

type CreateResponseRequest struct {
	QuestionID   uint `json:"question_id" validate:"required,min=1"`
	RespondenID  uint `json:"responden_id" validate:"required,min=1"`
	SelectOption int  `json:"select_option" validate:"required,min=1,max=4"`
}

type UpdateResponseRequest struct {
	ID           uint `json:"id" validate:"required,min=1"`
	SelectOption int  `json:"select_option" validate:"required,min=1,max=4"`
}

type ResponseResponse struct {
	ID               uint      `json:"id"`
	QuestionID       uint      `json:"question_id"`
	RespondenID      uint      `json:"responden_id"`
	SelectOption     int       `json:"select_option"`
	SelectOptionText string    `json:"select_option_text"`
	CreatedAt        time.Time `json:"created_at"`

	Question  *questionDto.QuestionResponse   `json:"question,omitempty"`
	Responden *respondenDto.RespondenResponse `json:"responden,omitempty"`
}

// QuestionWithResponses: GET /skm/responses, satu entri per pertanyaan.
type QuestionWithResponses struct {
	questionDto.QuestionResponse
	Responses []ResponseResponse `json:"responses"`
}

func FromModel(m model.ResponseModel) ResponseResponse {
	out := ResponseResponse{
		ID:               m.ID,
		QuestionID:       m.QuestionID,
		RespondenID:      m.RespondenID,
		SelectOption:     m.SelectOption,
		SelectOptionText: m.SelectOptionText,
		CreatedAt:        m.CreatedAt,
	}
	if m.Question != nil {
		q := questionDto.FromModel(*m.Question)
		out.Question = &q
	}
	if m.Responden != nil {
		r := respondenDto.FromModel(*m.Responden)
		out.Responden = &r
	}
	return out
}

func FromModels(rows []model.ResponseModel) []ResponseResponse {
	out := make([]ResponseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

func FromQuestionModels(rows []model.QuestionModel) []QuestionWithResponses {
	out := make([]QuestionWithResponses, 0, len(rows))
	for _, q := range rows {
		out = append(out, QuestionWithResponses{
			QuestionResponse: questionDto.FromModel(q),
			Responses:        FromModels(q.Responses),
		})
	}
	return out
}
