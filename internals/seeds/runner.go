package seeds

import (
	"gorm.io/gorm"

	"skm_backend/internals/configs"
	"skm_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) error {

	//* User
	return users.SeedSuperAdmin(db, users.SuperAdminSeed{
		Email:    configs.SeedSuperAdminEmail,
		Password: configs.SeedSuperAdminPassword,
		Name:     configs.SeedSuperAdminName,
	})
}
