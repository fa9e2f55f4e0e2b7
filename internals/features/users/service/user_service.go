package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skm_backend/internals/configs"
	"skm_backend/internals/constants"
	formModel "skm_backend/internals/features/forms/model"
	"skm_backend/internals/features/users/dto"
	"skm_backend/internals/features/users/model"
	helper "skm_backend/internals/helpers"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/log"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// EnsureActor memastikan identitas yang bertindak masih ada di database.
func EnsureActor(ctx context.Context, db *gorm.DB, actor *authHelper.Identity) error {
	if _, err := authHelper.RequireAuthenticated(actor); err != nil {
		return err
	}
	var total int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", actor.ID).Count(&total).Error; err != nil {
		return err
	}
	if total == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}
	return nil
}

// ResolveIdentity dipakai middleware untuk memetakan klaim token ke user tersimpan.
func (s *UserService) ResolveIdentity(ctx context.Context, userID uint) (*authHelper.Identity, error) {
	var user model.UserModel
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &authHelper.Identity{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}, nil
}

func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	log.Printf("[USER] register %s", req.Email)

	user, err := s.createUser(ctx, req.Email, req.Password, req.Name, constants.RoleUser)
	if err != nil {
		return nil, err
	}
	res := dto.FromUserModel(*user)
	return &res, nil
}

func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponse, error) {
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}

	var user model.UserModel
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.BadRequest(constants.MsgLoginFailed)
	}
	if err != nil {
		return nil, err
	}
	if !authHelper.CheckPasswordHash(req.Password, user.Password) {
		return nil, helper.BadRequest(constants.MsgLoginFailed)
	}

	token, err := authHelper.GenerateToken(authHelper.Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, configs.JWTSecret, configs.JWTExpiry)
	if err != nil {
		return nil, err
	}

	res := dto.FromUserModel(user)
	res.Token = token
	return &res, nil
}

func (s *UserService) Current(ctx context.Context, actor *authHelper.Identity) (*dto.UserResponse, error) {
	if _, err := authHelper.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	var user model.UserModel
	if err := s.DB.WithContext(ctx).First(&user, actor.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, constants.MsgUnauthorized)
		}
		return nil, err
	}
	res := dto.FromUserModel(user)
	return &res, nil
}

func (s *UserService) AdminAddUser(ctx context.Context, actor *authHelper.Identity, req dto.AdminRegisterRequest) (*dto.UserResponse, error) {
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return nil, err
	}
	if err := EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		return nil, err
	}
	log.Printf("[USER] %s menambahkan %s sebagai %s", actor.Email, user.Email, user.Role)
	res := dto.FromUserModel(*user)
	return &res, nil
}

func (s *UserService) FindAllUsers(ctx context.Context, actor *authHelper.Identity) ([]dto.UserResponse, error) {
	if err := EnsureActor(ctx, s.DB, actor); err != nil {
		return nil, err
	}
	var users []model.UserModel
	if err := s.DB.WithContext(ctx).
		Select("id", "email", "name", "role").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return dto.FromUserModels(users), nil
}

// RemoveUser menghapus user beserta form miliknya dan seluruh kiriman form tsb.
func (s *UserService) RemoveUser(ctx context.Context, actor *authHelper.Identity, userID uint) (string, error) {
	if err := EnsureActor(ctx, s.DB, actor); err != nil {
		return "", err
	}
	if actor.ID == userID {
		return "", helper.BadRequest("cannot remove yourself")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.UserModel
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound(constants.NotFound("user"))
			}
			return err
		}

		formIDs := tx.Model(&formModel.FormModel{}).Select("id").Where("user_id = ?", user.ID)
		if err := tx.Where("form_id IN (?)", formIDs).Delete(&formModel.FormDetailsModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&formModel.FormModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return "", err
	}
	log.Printf("[USER] %s menghapus user id=%d", actor.Email, userID)
	return "OK", nil
}

func (s *UserService) FindEmailsByRole(ctx context.Context, role string) ([]string, error) {
	var emails []string
	err := s.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", role).
		Order("id ASC").
		Pluck("email", &emails).Error
	return emails, err
}

func (s *UserService) createUser(ctx context.Context, email, password, name, role string) (*model.UserModel, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&total).Error; err != nil {
		return nil, err
	}
	if total != 0 {
		return nil, helper.BadRequest(constants.MsgUserExist)
	}

	hashed, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.UserModel{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     role,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.BadRequest(constants.MsgUserExist)
		}
		return nil, err
	}
	return &user, nil
}
