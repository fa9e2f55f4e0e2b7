package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"skm_backend/internals/configs"
	"skm_backend/internals/constants"
	"skm_backend/internals/features/forms/dto"
	"skm_backend/internals/features/forms/model"
	userService "skm_backend/internals/features/users/service"
	helper "skm_backend/internals/helpers"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/helpers/dbtime"
	"skm_backend/internals/log"
)

// MonthlyWindowDays: jendela grafik kiriman harian.
const MonthlyWindowDays = 30

type FormService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{DB: db, Now: time.Now}
}

func (s *FormService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/* =========================================================
   ADMIN: CRUD form milik sendiri
   ========================================================= */

func (s *FormService) Save(ctx context.Context, actor *authHelper.Identity, req dto.CreateFormRequest) (*dto.FormResponse, error) {
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	form := req.ToModel(actor.ID, uuid.NewString())
	if err := s.DB.WithContext(ctx).Create(&form).Error; err != nil {
		return nil, err
	}
	log.Printf("[FORM] %s membuat form id=%d", actor.Email, form.ID)

	res := dto.FromFormModel(form)
	return &res, nil
}

func (s *FormService) FindAll(ctx context.Context, actor *authHelper.Identity) ([]dto.FormResponse, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}
	var rows []model.FormModel
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", actor.ID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return dto.FromFormModels(rows), nil
}

func (s *FormService) FindByID(ctx context.Context, formID uint) (*dto.FormWithDetailsResponse, error) {
	var form model.FormModel
	err := s.DB.WithContext(ctx).
		Preload("FormDetails", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&form, formID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(constants.NotFound("form"))
		}
		return nil, err
	}
	res := dto.FromFormWithDetails(form)
	return &res, nil
}

// Update hanya menyentuh form milik actor; form orang lain terlihat sebagai not found.
func (s *FormService) Update(ctx context.Context, actor *authHelper.Identity, req dto.UpdateFormRequest) (*dto.FormResponse, error) {
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	var form model.FormModel
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", req.ID, actor.ID).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(constants.NotFound("form"))
		}
		return nil, err
	}

	changes := req.Apply(&form)
	if len(changes) > 0 {
		if err := s.DB.WithContext(ctx).Model(&form).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	res := dto.FromFormModel(form)
	return &res, nil
}

func (s *FormService) Remove(ctx context.Context, actor *authHelper.Identity, formID uint) (string, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return "", err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var form model.FormModel
		if err := tx.Select("id").First(&form, formID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound(constants.NotFound("form"))
			}
			return err
		}
		if err := tx.Where("form_id = ?", form.ID).Delete(&model.FormDetailsModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FormModel{}, form.ID).Error
	})
	if err != nil {
		return "", err
	}
	log.Printf("[FORM] %s menghapus form id=%d", actor.Email, formID)
	return "OK", nil
}

/* =========================================================
   PUBLIC: share URL
   ========================================================= */

// FindByURL menaikkan visit setiap kali dipanggil.
func (s *FormService) FindByURL(ctx context.Context, shareURL string) (*dto.FormResponse, error) {
	var form model.FormModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.FormModel{}).
			Where("share_url = ?", shareURL).
			UpdateColumn("visit", gorm.Expr("visit + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.NotFound(constants.NotFound("form"))
		}
		return tx.Where("share_url = ?", shareURL).First(&form).Error
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromFormModel(form)
	return &out, nil
}

// UpdateDetails menyimpan satu kiriman publik; hanya untuk form yang sudah published.
func (s *FormService) UpdateDetails(ctx context.Context, req dto.SubmitFormRequest) (*dto.FormWithDetailsResponse, error) {
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}

	var form model.FormModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("share_url = ? AND published = ?", req.ShareURL, true).First(&form).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound(constants.NotFound("form"))
			}
			return err
		}
		if err := tx.Model(&model.FormModel{}).
			Where("id = ?", form.ID).
			UpdateColumn("submissions", gorm.Expr("submissions + ?", 1)).Error; err != nil {
			return err
		}
		detail := req.ToDetailModel(form.ID)
		if err := tx.Create(&detail).Error; err != nil {
			if helper.IsForeignKeyViolation(err) {
				return helper.NotFound(constants.NotFound("form"))
			}
			return err
		}
		return tx.Preload("FormDetails", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
			First(&form, form.ID).Error
	})
	if err != nil {
		return nil, err
	}
	res := dto.FromFormWithDetails(form)
	return &res, nil
}

func (s *FormService) FindDetailByID(ctx context.Context, detailID uint) (*dto.FormDetailResponse, error) {
	var detail model.FormDetailsModel
	if err := s.DB.WithContext(ctx).First(&detail, detailID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(constants.NotFound("form detail"))
		}
		return nil, err
	}
	res := dto.FromFormDetailModel(detail)
	return &res, nil
}

/* =========================================================
   STATISTIK (admin)
   ========================================================= */

func (s *FormService) Statistics(ctx context.Context, actor *authHelper.Identity) (*dto.FormStatisticsResponse, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	var out dto.FormStatisticsResponse
	start, end := dbtime.MonthBounds(s.now(), configs.Location())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&model.FormModel{}).
			Select("COALESCE(SUM(visit), 0)").
			Row().Scan(&out.TotalVisit)
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&model.FormDetailsModel{}).Count(&out.TotalSubmission).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&model.FormDetailsModel{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Count(&out.TotalSubmissionThisMonth).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FormService) SubmissionDistribution(ctx context.Context, actor *authHelper.Identity) ([]dto.SubmissionDistribution, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}
	rows := []dto.SubmissionDistribution{}
	err := s.DB.WithContext(ctx).
		Table("form_details").
		Select("forms.name AS form, COUNT(form_details.id) AS count").
		Joins("JOIN forms ON forms.id = form_details.form_id").
		Group("forms.name").
		Order("forms.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlySubmissionCount: jumlah kiriman per hari (zona aplikasi) untuk 30 hari terakhir.
func (s *FormService) MonthlySubmissionCount(ctx context.Context, actor *authHelper.Identity) ([]dto.DailySubmissionCount, error) {
	if err := userService.EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	loc := configs.Location()
	since := dbtime.TrailingDaysStart(s.now(), MonthlyWindowDays, loc)

	var stamps []time.Time
	if err := s.DB.WithContext(ctx).
		Model(&model.FormDetailsModel{}).
		Where("created_at >= ?", since.UTC()).
		Order("created_at ASC").
		Pluck("created_at", &stamps).Error; err != nil {
		return nil, err
	}
	return BucketByDay(stamps, loc), nil
}

// BucketByDay mengelompokkan timestamp per tanggal kalender di loc, urut naik.
func BucketByDay(stamps []time.Time, loc *time.Location) []dto.DailySubmissionCount {
	out := []dto.DailySubmissionCount{}
	var (
		current time.Time
		idx     = -1
	)
	for _, ts := range stamps {
		day := dbtime.StartOfDay(ts, loc)
		if idx < 0 || !day.Equal(current) {
			out = append(out, dto.DailySubmissionCount{Date: datatypes.Date(day)})
			current = day
			idx++
		}
		out[idx].Count++
	}
	return out
}
