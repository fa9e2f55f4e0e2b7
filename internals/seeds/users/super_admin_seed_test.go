package users_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skm_backend/internals/constants"
	"skm_backend/internals/features/users/model"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/seeds/users"
	"skm_backend/internals/testutil"
)

func TestSeedSuperAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed := users.SuperAdminSeed{Email: " Root@SKM.go.id ", Password: "rahasia"}

	require.NoError(t, users.SeedSuperAdmin(db, seed))
	require.NoError(t, users.SeedSuperAdmin(db, seed))

	var all []model.UserModel
	require.NoError(t, db.Find(&all).Error)
	require.Len(t, all, 1)
	assert.Equal(t, "root@skm.go.id", all[0].Email)
	assert.Equal(t, constants.RoleSuperAdmin, all[0].Role)
	assert.Equal(t, "Super Admin", all[0].Name)
	assert.True(t, authHelper.CheckPasswordHash("rahasia", all[0].Password))
}

func TestSeedSuperAdmin_RequiresCredentials(t *testing.T) {
	db := testutil.NewTestDB(t)
	assert.Error(t, users.SeedSuperAdmin(db, users.SuperAdminSeed{Email: "root@skm.go.id"}))
}
