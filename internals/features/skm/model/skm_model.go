package model

import "time"

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"

	// Jumlah slot pilihan jawaban per pertanyaan bersifat tetap.
	OptionCount = 4
)

type QuestionModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"type:varchar(225);not null" json:"question"`
	Acronim   string    `gorm:"type:varchar(225);not null" json:"acronim"`
	Option1   string    `gorm:"column:option_1;type:varchar(225);not null" json:"option_1"`
	Option2   string    `gorm:"column:option_2;type:varchar(225);not null" json:"option_2"`
	Option3   string    `gorm:"column:option_3;type:varchar(225);not null" json:"option_3"`
	Option4   string    `gorm:"column:option_4;type:varchar(225);not null" json:"option_4"`
	Status    bool      `gorm:"not null;default:false" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Responses []ResponseModel `gorm:"foreignKey:QuestionID" json:"responses,omitempty"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// OptionText mengembalikan label pilihan ke-n (1..4).
func (q QuestionModel) OptionText(n int) (string, bool) {
	switch n {
	case 1:
		return q.Option1, true
	case 2:
		return q.Option2, true
	case 3:
		return q.Option3, true
	case 4:
		return q.Option4, true
	default:
		return "", false
	}
}

type RespondenModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null;default:'-'" json:"email"`
	Address     string    `gorm:"type:varchar(255);not null;default:'-'" json:"address"`
	Phone       string    `gorm:"type:varchar(20);not null;default:'-'" json:"phone"`
	Age         int       `gorm:"not null" json:"age"`
	Education   string    `gorm:"type:varchar(255);not null" json:"education"`
	Profession  string    `gorm:"type:varchar(255);not null" json:"profession"`
	ServiceType string    `gorm:"column:service_type;type:varchar(255);not null" json:"service_type"`
	Gender      string    `gorm:"type:varchar(10);not null" json:"gender"`
	Suggestions *string   `gorm:"type:text" json:"suggestions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Responses []ResponseModel `gorm:"foreignKey:RespondenID" json:"responses,omitempty"`
}

func (RespondenModel) TableName() string {
	return "responden"
}

type ResponseModel struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	QuestionID       uint      `gorm:"column:question_id;not null;index" json:"question_id"`
	RespondenID      uint      `gorm:"column:responden_id;not null;index" json:"responden_id"`
	SelectOption     int       `gorm:"column:select_option;not null" json:"select_option"`
	SelectOptionText string    `gorm:"column:select_option_text;type:varchar(225);not null" json:"select_option_text"`
	CreatedAt        time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Question  *QuestionModel  `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Responden *RespondenModel `gorm:"foreignKey:RespondenID" json:"responden,omitempty"`
}

func (ResponseModel) TableName() string {
	return "responses"
}
