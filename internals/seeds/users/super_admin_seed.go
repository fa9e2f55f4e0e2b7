package users

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"skm_backend/internals/constants"
	"skm_backend/internals/features/users/model"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/log"
)

type SuperAdminSeed struct {
	Email    string
	Password string
	Name     string
}

// SeedSuperAdmin membuat akun SUPER_ADMIN pertama. Email yang sudah ada dilewati.
func SeedSuperAdmin(db *gorm.DB, data SuperAdminSeed) error {
	data.Email = strings.TrimSpace(strings.ToLower(data.Email))
	if data.Email == "" || data.Password == "" {
		return fmt.Errorf("SEED_SUPERADMIN_EMAIL dan SEED_SUPERADMIN_PASSWORD wajib diisi")
	}
	if data.Name == "" {
		data.Name = "Super Admin"
	}

	var total int64
	if err := db.Model(&model.UserModel{}).Where("email = ?", data.Email).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
		return nil
	}

	// 🔐 Hash password sebelum disimpan
	hashed, err := authHelper.HashPassword(data.Password)
	if err != nil {
		return fmt.Errorf("hash password '%s': %w", data.Email, err)
	}

	user := model.UserModel{
		Email:    data.Email,
		Password: hashed,
		Name:     data.Name,
		Role:     constants.RoleSuperAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("insert super admin '%s': %w", data.Email, err)
	}
	log.Printf("✅ Berhasil insert super admin '%s'", data.Email)
	return nil
}
