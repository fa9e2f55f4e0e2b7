package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"skm_backend/internals/constants"
	"skm_backend/internals/features/skm/model"
	"skm_backend/internals/features/skm/responden/dto"
	userService "skm_backend/internals/features/users/service"
	helper "skm_backend/internals/helpers"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/log"
)

// kolom teks yang ikut dicari oleh ?search=
var searchColumns = []string{"name", "phone", "profession", "education", "service_type"}

// wildcard LIKE dari input dicari sebagai karakter biasa
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type RespondenService struct {
	DB *gorm.DB
}

func NewRespondenService(db *gorm.DB) *RespondenService {
	return &RespondenService{DB: db}
}

// Save dipakai endpoint publik; tidak butuh identitas.
func (s *RespondenService) Save(ctx context.Context, req dto.CreateRespondenRequest) (*dto.RespondenResponse, error) {
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	res := dto.FromModel(m)
	return &res, nil
}

func (s *RespondenService) FindByID(ctx context.Context, actor *authHelper.Identity, id uint) (*dto.RespondenResponse, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}
	m, err := s.load(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	res := dto.FromModel(*m)
	return &res, nil
}

func (s *RespondenService) FindAll(ctx context.Context, actor *authHelper.Identity, q dto.ListQuery) ([]dto.RespondenResponse, int64, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, 0, err
	}

	base := s.DB.WithContext(ctx).Model(&model.RespondenModel{})
	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		clauses := make([]string, 0, len(searchColumns))
		args := make([]any, 0, len(searchColumns))
		for _, col := range searchColumns {
			clauses = append(clauses, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
			args = append(args, like)
		}
		base = base.Where(strings.Join(clauses, " OR "), args...)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.RespondenModel
	if err := base.Session(&gorm.Session{}).
		Order("id ASC").
		Offset(q.Paging.Offset).
		Limit(q.Paging.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return dto.FromModels(rows), total, nil
}

func (s *RespondenService) Update(ctx context.Context, actor *authHelper.Identity, req dto.UpdateRespondenRequest) (*dto.RespondenResponse, error) {
	if req.Gender.IsSet() {
		g := strings.ToUpper(strings.TrimSpace(*req.Gender.Value))
		req.Gender = helper.Set(g)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	m, err := s.load(ctx, s.DB, req.ID)
	if err != nil {
		return nil, err
	}
	if changes := req.Apply(m); len(changes) > 0 {
		if err := s.DB.WithContext(ctx).Model(m).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	res := dto.FromModel(*m)
	return &res, nil
}

// Remove: jawaban responden dihapus lebih dulu, atomik bersama respondennya.
func (s *RespondenService) Remove(ctx context.Context, actor *authHelper.Identity, id uint) (string, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return "", err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("responden_id = ?", m.ID).Delete(&model.ResponseModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.RespondenModel{}, m.ID).Error
	})
	if err != nil {
		return "", err
	}
	log.Printf("[SKM] %s menghapus responden id=%d", actor.Email, id)
	return "OK", nil
}

func (s *RespondenService) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.RespondenModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, helper.NotFound(constants.NotFound("responden"))
	}
	return total, nil
}

func (s *RespondenService) CountByGender(ctx context.Context) ([]dto.GenderCount, error) {
	var rows []dto.GenderCount
	if err := s.DB.WithContext(ctx).
		Model(&model.RespondenModel{}).
		Select("gender, COUNT(*) AS total").
		Group("gender").
		Order("gender ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, helper.NotFound(constants.NotFound("responden"))
	}
	return rows, nil
}

func (s *RespondenService) load(ctx context.Context, db *gorm.DB, id uint) (*model.RespondenModel, error) {
	var m model.RespondenModel
	if err := db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(constants.NotFound("responden"))
		}
		return nil, err
	}
	return &m, nil
}
