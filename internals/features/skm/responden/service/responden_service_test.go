package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skm_backend/internals/features/skm/model"
	"skm_backend/internals/features/skm/responden/dto"
	"skm_backend/internals/features/skm/responden/service"
	helper "skm_backend/internals/helpers"
	"skm_backend/internals/testutil"
)

func validCreate() dto.CreateRespondenRequest {
	return dto.CreateRespondenRequest{
		Name:        "Siti",
		Age:         27,
		Education:   "SMA",
		Profession:  "Wiraswasta",
		ServiceType: "Perizinan",
		Gender:      "female",
	}
}

func TestSave_DefaultsContactToDash(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)

	res, err := svc.Save(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, dto.EmptyContact, res.Email)
	assert.Equal(t, dto.EmptyContact, res.Address)
	assert.Equal(t, dto.EmptyContact, res.Phone)
	assert.Equal(t, model.GenderFemale, res.Gender)
	assert.Nil(t, res.Suggestions)
}

func TestSave_RejectsUnknownGender(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)

	req := validCreate()
	req.Gender = "OTHER"
	_, err := svc.Save(context.Background(), req)

	var verr *helper.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "gender", verr.Fields[0].Field)
}

func TestFindAll_PaginationAndSearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)
	admin := testutil.SeedAdmin(t, db)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		testutil.SeedResponden(t, db, fmt.Sprintf("Warga %02d", i), model.GenderMale)
	}
	r := validCreate()
	r.Name = "Ani"
	r.ServiceType = "Kependudukan"
	_, err := svc.Save(ctx, r)
	require.NoError(t, err)

	rows, total, err := svc.FindAll(ctx, admin, dto.ListQuery{Paging: helper.NewPaging("2", "5", 10, 100)})
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
	require.Len(t, rows, 5)
	assert.Equal(t, "Warga 06", rows[0].Name)

	rows, total, err = svc.FindAll(ctx, admin, dto.ListQuery{Paging: helper.NewPaging("1", "", 10, 100), Search: "kependudukan"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ani", rows[0].Name)

	_, _, err = svc.FindAll(ctx, nil, dto.ListQuery{Paging: helper.NewPaging("1", "", 10, 100)})
	assert.Equal(t, fiber.StatusUnauthorized, testutil.StatusOf(err))
}

func TestFindAll_SearchTreatsWildcardsLiterally(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)
	admin := testutil.SeedAdmin(t, db)
	ctx := context.Background()

	testutil.SeedResponden(t, db, "Warga 01", model.GenderMale)
	testutil.SeedResponden(t, db, "Warga 02", model.GenderFemale)
	testutil.SeedResponden(t, db, "Diskon_100%", model.GenderFemale)

	for _, term := range []string{"%", "_", "n_1"} {
		rows, total, err := svc.FindAll(ctx, admin, dto.ListQuery{Paging: helper.NewPaging("1", "", 10, 100), Search: term})
		require.NoError(t, err, term)
		assert.Equal(t, int64(1), total, term)
		require.Len(t, rows, 1, term)
		assert.Equal(t, "Diskon_100%", rows[0].Name, term)
	}
}

func TestFindAll_HugePageReturnsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)
	admin := testutil.SeedAdmin(t, db)
	testutil.SeedResponden(t, db, "Warga 01", model.GenderMale)

	paging := helper.NewPaging("99999999999999999999999", "10", 10, 100)
	rows, total, err := svc.FindAll(context.Background(), admin, dto.ListQuery{Paging: paging})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, rows)
}

func TestUpdate_PresenceSemantics(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)
	admin := testutil.SeedAdmin(t, db)
	ctx := context.Background()

	note := "Pelayanan cepat"
	req := validCreate()
	req.Suggestions = &note
	created, err := svc.Save(ctx, req)
	require.NoError(t, err)

	res, err := svc.Update(ctx, admin, dto.UpdateRespondenRequest{ID: created.ID, Age: helper.Set(40)})
	require.NoError(t, err)
	assert.Equal(t, 40, res.Age)
	require.NotNil(t, res.Suggestions)
	assert.Equal(t, note, *res.Suggestions)
	assert.Equal(t, created.Name, res.Name)

	// null eksplisit mengosongkan saran
	res, err = svc.Update(ctx, admin, dto.UpdateRespondenRequest{
		ID:          created.ID,
		Suggestions: helper.PatchField[string]{Present: true},
		Gender:      helper.Set("male"),
	})
	require.NoError(t, err)
	assert.Nil(t, res.Suggestions)
	assert.Equal(t, model.GenderMale, res.Gender)

	got, err := svc.FindByID(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Suggestions)
	assert.Equal(t, 40, got.Age)

	_, err = svc.Update(ctx, admin, dto.UpdateRespondenRequest{ID: created.ID, Age: helper.Set(0)})
	var verr *helper.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Fields[0].Field)
}

func TestRemove_DeletesResponsesAtomically(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)
	admin := testutil.SeedAdmin(t, db)
	ctx := context.Background()

	q1 := testutil.SeedQuestion(t, db, "U1")
	q2 := testutil.SeedQuestion(t, db, "U2")
	target := testutil.SeedResponden(t, db, "Budi", model.GenderMale)
	other := testutil.SeedResponden(t, db, "Sari", model.GenderFemale)
	testutil.SeedResponse(t, db, q1, target, 4)
	testutil.SeedResponse(t, db, q2, target, 3)
	testutil.SeedResponse(t, db, q1, other, 2)

	res, err := svc.Remove(ctx, admin, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "OK", res)

	var orphan, remaining int64
	require.NoError(t, db.Model(&model.ResponseModel{}).Where("responden_id = ?", target.ID).Count(&orphan).Error)
	require.NoError(t, db.Model(&model.ResponseModel{}).Count(&remaining).Error)
	assert.Zero(t, orphan)
	assert.Equal(t, int64(1), remaining)

	_, err = svc.FindByID(ctx, admin, target.ID)
	assert.EqualError(t, err, "responden not found")
}

func TestRemove_RollsBackWhenParentDeleteFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)
	admin := testutil.SeedAdmin(t, db)

	q := testutil.SeedQuestion(t, db, "U1")
	target := testutil.SeedResponden(t, db, "Budi", model.GenderMale)
	testutil.SeedResponse(t, db, q, target, 4)

	// gagalkan DELETE responden setelah jawaban terhapus
	require.NoError(t, db.Exec(`CREATE TRIGGER block_responden_delete BEFORE DELETE ON responden
		BEGIN SELECT RAISE(ABORT, 'blocked'); END`).Error)

	_, err := svc.Remove(context.Background(), admin, target.ID)
	require.Error(t, err)

	var responses, respondens int64
	require.NoError(t, db.Model(&model.ResponseModel{}).Count(&responses).Error)
	require.NoError(t, db.Model(&model.RespondenModel{}).Count(&respondens).Error)
	assert.Equal(t, int64(1), responses)
	assert.Equal(t, int64(1), respondens)
}

func TestCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewRespondenService(db)
	ctx := context.Background()

	_, err := svc.CountAll(ctx)
	assert.EqualError(t, err, "responden not found")
	_, err = svc.CountByGender(ctx)
	assert.Equal(t, fiber.StatusNotFound, testutil.StatusOf(err))

	testutil.SeedResponden(t, db, "A", model.GenderMale)
	testutil.SeedResponden(t, db, "B", model.GenderFemale)
	testutil.SeedResponden(t, db, "C", model.GenderFemale)

	total, err := svc.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	groups, err := svc.CountByGender(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.GenderCount{
		{Total: 2, Gender: model.GenderFemale},
		{Total: 1, Gender: model.GenderMale},
	}, groups)
}
