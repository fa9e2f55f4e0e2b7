package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"skm_backend/internals/features/forms/model"
	helper "skm_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateFormRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255" errmsg:"Nama minimal 2 karakter"`
	Description *string `json:"description" validate:"omitnil,max=5000"`
}

func (r *CreateFormRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

func (r CreateFormRequest) ToModel(userID uint, shareURL string) model.FormModel {
	m := model.FormModel{
		UserID:   userID,
		Name:     r.Name,
		Content:  model.EmptyContent,
		ShareURL: shareURL,
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	return m
}

/* =========================================================
   UPDATE (PATCH /forms): hanya content & published
   ========================================================= */

type UpdateFormRequest struct {
	ID        uint                      `json:"id" validate:"required,min=1"`
	Content   helper.PatchField[string] `json:"content"`
	Published helper.PatchField[bool]   `json:"published"`
}

// Apply mengembalikan kolom yang berubah untuk Updates(map).
func (r UpdateFormRequest) Apply(m *model.FormModel) map[string]any {
	changes := map[string]any{}
	if r.Content.Apply(&m.Content) {
		changes["content"] = m.Content
	}
	if r.Published.Apply(&m.Published) {
		changes["published"] = m.Published
	}
	return changes
}

/* =========================================================
   PUBLIC SUBMISSION (PATCH /forms/url)
   ========================================================= */

type SubmitFormRequest struct {
	ShareURL string  `json:"shareURL" validate:"required,min=1,max=64"`
	Content  *string `json:"content"`
}

func (r SubmitFormRequest) ToDetailModel(formID uint) model.FormDetailsModel {
	content := model.EmptyContent
	if r.Content != nil && *r.Content != "" {
		content = *r.Content
	}
	return model.FormDetailsModel{FormID: formID, Content: content}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type FormResponse struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Published   bool      `json:"published"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Visit       int64     `json:"visit"`
	Submissions int64     `json:"submissions"`
	ShareURL    string    `json:"shareURL"`
	UserID      uint      `json:"userId"`
}

type FormDetailResponse struct {
	ID        uint      `json:"id"`
	FormID    uint      `json:"formId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type FormWithDetailsResponse struct {
	FormResponse
	FormDetails []FormDetailResponse `json:"formDetails"`
}

func FromFormModel(m model.FormModel) FormResponse {
	return FormResponse{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		Published:   m.Published,
		Name:        m.Name,
		Description: m.Description,
		Content:     m.Content,
		Visit:       m.Visit,
		Submissions: m.Submissions,
		ShareURL:    m.ShareURL,
		UserID:      m.UserID,
	}
}

func FromFormModels(rows []model.FormModel) []FormResponse {
	out := make([]FormResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromFormModel(r))
	}
	return out
}

func FromFormDetailModel(m model.FormDetailsModel) FormDetailResponse {
	return FormDetailResponse{ID: m.ID, FormID: m.FormID, Content: m.Content, CreatedAt: m.CreatedAt}
}

func FromFormWithDetails(m model.FormModel) FormWithDetailsResponse {
	details := make([]FormDetailResponse, 0, len(m.FormDetails))
	for _, d := range m.FormDetails {
		details = append(details, FromFormDetailModel(d))
	}
	return FormWithDetailsResponse{FormResponse: FromFormModel(m), FormDetails: details}
}

/* =========================================================
   STATISTICS
   ========================================================= */

type FormStatisticsResponse struct {
	TotalVisit               int64 `json:"totalVisit"`
	TotalSubmission          int64 `json:"totalSubmission"`
	TotalSubmissionThisMonth int64 `json:"totalSubmissionThisMonth"`
}

type SubmissionDistribution struct {
	Form  string `json:"form"`
	Count int64  `json:"count"`
}

type DailySubmissionCount struct {
	Date  datatypes.Date `json:"date"`
	Count int64          `json:"count"`
}
