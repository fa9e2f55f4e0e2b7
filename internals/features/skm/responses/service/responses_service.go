package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skm_backend/internals/constants"
	"skm_backend/internals/features/skm/model"
	"skm_backend/internals/features/skm/responses/dto"
	userService "skm_backend/internals/features/users/service"
	helper "skm_backend/internals/helpers"
	authHelper "skm_backend/internals/helpers/auth"
)

type ResponsesService struct {
	DB *gorm.DB
}

func NewResponsesService(db *gorm.DB) *ResponsesService {
	return &ResponsesService{DB: db}
}

// Save: pertanyaan dicek lebih dulu, baru responden. Teks opsi dibekukan saat ditulis.
func (s *ResponsesService) Save(ctx context.Context, req dto.CreateResponseRequest) (*dto.ResponseResponse, error) {
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}

	q, err := s.question(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureResponden(ctx, req.RespondenID); err != nil {
		return nil, err
	}

	text, ok := q.OptionText(req.SelectOption)
	if !ok {
		return nil, helper.NewValidationError("select_option", "select_option must be between 1 and 4")
	}

	m := model.ResponseModel{
		QuestionID:       q.ID,
		RespondenID:      req.RespondenID,
		SelectOption:     req.SelectOption,
		SelectOptionText: text,
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return nil, s.missingParent(ctx, req.QuestionID, req.RespondenID, err)
		}
		return nil, err
	}
	res := dto.FromModel(m)
	return &res, nil
}

func (s *ResponsesService) FindByID(ctx context.Context, id uint) (*dto.ResponseResponse, error) {
	var m model.ResponseModel
	err := s.DB.WithContext(ctx).
		Preload("Question").
		Preload("Responden").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(constants.NotFound("responses"))
		}
		return nil, err
	}
	res := dto.FromModel(m)
	return &res, nil
}

func (s *ResponsesService) FindByQuestionID(ctx context.Context, questionID uint) ([]dto.ResponseResponse, error) {
	if _, err := s.question(ctx, questionID); err != nil {
		return nil, err
	}
	var rows []model.ResponseModel
	if err := s.DB.WithContext(ctx).
		Preload("Question").
		Preload("Responden").
		Where("question_id = ?", questionID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

// FindByRespondenID: semua jawaban satu responden beserta pertanyaannya.
func (s *ResponsesService) FindByRespondenID(ctx context.Context, respondenID uint) ([]dto.ResponseResponse, error) {
	if err := s.ensureResponden(ctx, respondenID); err != nil {
		return nil, err
	}
	var rows []model.ResponseModel
	if err := s.DB.WithContext(ctx).
		Preload("Question").
		Where("responden_id = ?", respondenID).
		Order("question_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

// Update mengganti pilihan dan menangkap ulang teks opsi dari pertanyaan saat ini.
func (s *ResponsesService) Update(ctx context.Context, actor *authHelper.Identity, req dto.UpdateResponseRequest) (*dto.ResponseResponse, error) {
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	var m model.ResponseModel
	if err := s.DB.WithContext(ctx).Preload("Question").First(&m, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(constants.NotFound("responses"))
		}
		return nil, err
	}
	if m.Question == nil {
		return nil, helper.NotFound(constants.NotFound("question"))
	}

	text, _ := m.Question.OptionText(req.SelectOption)
	m.SelectOption = req.SelectOption
	m.SelectOptionText = text
	if err := s.DB.WithContext(ctx).Model(&m).Updates(map[string]any{
		"select_option":      m.SelectOption,
		"select_option_text": m.SelectOptionText,
	}).Error; err != nil {
		return nil, err
	}
	res := dto.FromModel(m)
	return &res, nil
}

// FindAllWithQuestions: setiap pertanyaan beserta seluruh jawabannya.
func (s *ResponsesService) FindAllWithQuestions(ctx context.Context) ([]dto.QuestionWithResponses, error) {
	var rows []model.QuestionModel
	if err := s.DB.WithContext(ctx).
		Preload("Responses", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return dto.FromQuestionModels(rows), nil
}

func (s *ResponsesService) question(ctx context.Context, id uint) (*model.QuestionModel, error) {
	var q model.QuestionModel
	if err := s.DB.WithContext(ctx).First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(constants.NotFound("question"))
		}
		return nil, err
	}
	return &q, nil
}

// missingParent: pertanyaan/responden terhapus di antara pengecekan dan insert.
func (s *ResponsesService) missingParent(ctx context.Context, questionID, respondenID uint, cause error) error {
	if _, err := s.question(ctx, questionID); err != nil {
		return err
	}
	if err := s.ensureResponden(ctx, respondenID); err != nil {
		return err
	}
	return cause
}

func (s *ResponsesService) ensureResponden(ctx context.Context, id uint) error {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.RespondenModel{}).Where("id = ?", id).Count(&total).Error; err != nil {
		return err
	}
	if total == 0 {
		return helper.NotFound(constants.NotFound("responden"))
	}
	return nil
}
