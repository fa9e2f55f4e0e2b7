package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skm_backend/internals/constants"
	skmModel "skm_backend/internals/features/skm/model"
	userModel "skm_backend/internals/features/users/model"
	authHelper "skm_backend/internals/helpers/auth"
)

// SeedUser menyimpan user dengan role tertentu dan mengembalikan identitasnya.
func SeedUser(t *testing.T, db *gorm.DB, email, role string) *authHelper.Identity {
	t.Helper()
	u := userModel.UserModel{Email: email, Password: "x", Name: "Tester", Role: role}
	require.NoError(t, db.Create(&u).Error)
	return &authHelper.Identity{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func SeedAdmin(t *testing.T, db *gorm.DB) *authHelper.Identity {
	return SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)
}

func SeedQuestion(t *testing.T, db *gorm.DB, acronim string) skmModel.QuestionModel {
	t.Helper()
	q := skmModel.QuestionModel{
		Question: "Bagaimana pendapat Saudara tentang " + acronim + "?",
		Acronim:  acronim,
		Option1:  "Tidak sesuai",
		Option2:  "Kurang sesuai",
		Option3:  "Sesuai",
		Option4:  "Sangat sesuai",
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func SeedResponden(t *testing.T, db *gorm.DB, name, gender string) skmModel.RespondenModel {
	t.Helper()
	r := skmModel.RespondenModel{
		Name:        name,
		Email:       "-",
		Address:     "-",
		Phone:       "-",
		Age:         30,
		Education:   "S1",
		Profession:  "PNS",
		ServiceType: "Perizinan",
		Gender:      gender,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func SeedResponse(t *testing.T, db *gorm.DB, q skmModel.QuestionModel, r skmModel.RespondenModel, option int) skmModel.ResponseModel {
	t.Helper()
	text, _ := q.OptionText(option)
	m := skmModel.ResponseModel{QuestionID: q.ID, RespondenID: r.ID, SelectOption: option, SelectOptionText: text}
	require.NoError(t, db.Create(&m).Error)
	return m
}
