package model

import "time"

const EmptyContent = "[]"

type FormModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"userId"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	Content     string    `gorm:"type:text;not null;default:'[]'" json:"content"`
	ShareURL    string    `gorm:"column:share_url;type:varchar(64);uniqueIndex;not null" json:"shareURL"`
	Published   bool      `gorm:"not null;default:false" json:"published"`
	Visit       int64     `gorm:"not null;default:0" json:"visit"`
	Submissions int64     `gorm:"not null;default:0" json:"submissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	FormDetails []FormDetailsModel `gorm:"foreignKey:FormID" json:"formDetails,omitempty"`
}

func (FormModel) TableName() string {
	return "forms"
}

// Satu kiriman publik terhadap sebuah form.
type FormDetailsModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FormID    uint      `gorm:"column:form_id;not null;index" json:"formId"`
	Content   string    `gorm:"type:text;not null;default:'[]'" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (FormDetailsModel) TableName() string {
	return "form_details"
}
