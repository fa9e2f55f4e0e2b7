package dto

import (
	"strings"
	"time"

	"skm_backend/internals/features/skm/model"
	helper "skm_backend/internals/helpers"
)

// Placeholder untuk kontak yang tidak diisi responden.
const EmptyContact = "-"

type CreateRespondenRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Email       string  `json:"email" validate:"omitempty,email,max=255"`
	Address     string  `json:"address" validate:"omitempty,max=255"`
	Phone       string  `json:"phone" validate:"omitempty,max=20"`
	Age         int     `json:"age" validate:"required,min=1"`
	Education   string  `json:"education" validate:"required,min=1,max=255"`
	Profession  string  `json:"profession" validate:"required,min=1,max=255"`
	ServiceType string  `json:"service_type" validate:"required,min=1,max=255"`
	Gender      string  `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Suggestions *string `json:"suggestions" validate:"omitnil,max=5000"`
}

func (r *CreateRespondenRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Gender = strings.ToUpper(strings.TrimSpace(r.Gender))
}

func (r CreateRespondenRequest) ToModel() model.RespondenModel {
	return model.RespondenModel{
		Name:        r.Name,
		Email:       orDash(r.Email),
		Address:     orDash(r.Address),
		Phone:       orDash(r.Phone),
		Age:         r.Age,
		Education:   r.Education,
		Profession:  r.Profession,
		ServiceType: r.ServiceType,
		Gender:      r.Gender,
		Suggestions: r.Suggestions,
	}
}

func orDash(s string) string {
	if s == "" {
		return EmptyContact
	}
	return s
}

type UpdateRespondenRequest struct {
	ID          uint                      `json:"id" validate:"required,min=1"`
	Name        helper.PatchField[string] `json:"name" validate:"omitnil,min=1,max=255"`
	Email       helper.PatchField[string] `json:"email" validate:"omitnil,min=1,max=255"`
	Address     helper.PatchField[string] `json:"address" validate:"omitnil,min=1,max=255"`
	Phone       helper.PatchField[string] `json:"phone" validate:"omitnil,min=1,max=20"`
	Age         helper.PatchField[int]    `json:"age" validate:"omitnil,min=1"`
	Education   helper.PatchField[string] `json:"education" validate:"omitnil,min=1,max=255"`
	Profession  helper.PatchField[string] `json:"profession" validate:"omitnil,min=1,max=255"`
	ServiceType helper.PatchField[string] `json:"service_type" validate:"omitnil,min=1,max=255"`
	Gender      helper.PatchField[string] `json:"gender" validate:"omitnil,oneof=MALE FEMALE"`
	Suggestions helper.PatchField[string] `json:"suggestions" validate:"omitnil,max=5000"`
}

func (r UpdateRespondenRequest) Apply(m *model.RespondenModel) map[string]any {
	changes := map[string]any{}
	if r.Name.Apply(&m.Name) {
		changes["name"] = m.Name
	}
	if r.Email.Apply(&m.Email) {
		changes["email"] = m.Email
	}
	if r.Address.Apply(&m.Address) {
		changes["address"] = m.Address
	}
	if r.Phone.Apply(&m.Phone) {
		changes["phone"] = m.Phone
	}
	if r.Age.Apply(&m.Age) {
		changes["age"] = m.Age
	}
	if r.Education.Apply(&m.Education) {
		changes["education"] = m.Education
	}
	if r.Profession.Apply(&m.Profession) {
		changes["profession"] = m.Profession
	}
	if r.ServiceType.Apply(&m.ServiceType) {
		changes["service_type"] = m.ServiceType
	}
	if r.Gender.Apply(&m.Gender) {
		changes["gender"] = m.Gender
	}
	// suggestions nullable: null eksplisit mengosongkan
	if r.Suggestions.ApplyNullable(&m.Suggestions) {
		changes["suggestions"] = m.Suggestions
	}
	return changes
}

type RespondenResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Age         int       `json:"age"`
	Education   string    `json:"education"`
	Profession  string    `json:"profession"`
	ServiceType string    `json:"service_type"`
	Gender      string    `json:"gender"`
	Suggestions *string   `json:"suggestions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModel(m model.RespondenModel) RespondenResponse {
	return RespondenResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Address:     m.Address,
		Phone:       m.Phone,
		Age:         m.Age,
		Education:   m.Education,
		Profession:  m.Profession,
		ServiceType: m.ServiceType,
		Gender:      m.Gender,
		Suggestions: m.Suggestions,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(rows []model.RespondenModel) []RespondenResponse {
	out := make([]RespondenResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

type GenderCount struct {
	Total  int64  `json:"total"`
	Gender string `json:"gender"`
}

// ListQuery: ?page=&limit=&search=
type ListQuery struct {
	Paging helper.Paging
	Search string
}
