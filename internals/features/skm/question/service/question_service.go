package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"skm_backend/internals/constants"
	"skm_backend/internals/features/skm/model"
	"skm_backend/internals/features/skm/question/dto"
	userService "skm_backend/internals/features/users/service"
	helper "skm_backend/internals/helpers"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/log"
)

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

func (s *QuestionService) Save(ctx context.Context, actor *authHelper.Identity, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	q := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(&q).Error; err != nil {
		return nil, err
	}
	log.Printf("[SKM] %s menambah pertanyaan id=%d (%s)", actor.Email, q.ID, q.Acronim)

	res := dto.FromModel(q)
	return &res, nil
}

func (s *QuestionService) FindByID(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	q, err := s.load(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	res := dto.FromModel(*q)
	return &res, nil
}

func (s *QuestionService) FindAll(ctx context.Context) ([]dto.QuestionResponse, error) {
	var rows []model.QuestionModel
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return dto.FromModels(rows), nil
}

// Update: teks opsi yang berubah tidak menyentuh select_option_text jawaban lama.
func (s *QuestionService) Update(ctx context.Context, actor *authHelper.Identity, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	q, err := s.load(ctx, s.DB, req.ID)
	if err != nil {
		return nil, err
	}
	if changes := req.Apply(q); len(changes) > 0 {
		if err := s.DB.WithContext(ctx).Model(q).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	res := dto.FromModel(*q)
	return &res, nil
}

// Remove menghapus jawaban yang merujuk pertanyaan lalu pertanyaannya, dalam satu transaksi.
func (s *QuestionService) Remove(ctx context.Context, actor *authHelper.Identity, id uint) (string, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return "", err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q, err := s.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", q.ID).Delete(&model.ResponseModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuestionModel{}, q.ID).Error
	})
	if err != nil {
		return "", err
	}
	log.Printf("[SKM] %s menghapus pertanyaan id=%d", actor.Email, id)
	return "OK", nil
}

func (s *QuestionService) load(ctx context.Context, db *gorm.DB, id uint) (*model.QuestionModel, error) {
	var q model.QuestionModel
	if err := db.WithContext(ctx).First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(constants.NotFound("question"))
		}
		return nil, err
	}
	return &q, nil
}
