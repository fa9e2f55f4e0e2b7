package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skm_backend/internals/constants"
	"skm_backend/internals/features/forms/dto"
	"skm_backend/internals/features/forms/model"
	"skm_backend/internals/features/forms/service"
	helper "skm_backend/internals/helpers"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/testutil"
)

func newForm(t *testing.T, svc *service.FormService, actor *authHelper.Identity, name string) *dto.FormResponse {
	t.Helper()
	res, err := svc.Save(context.Background(), actor, dto.CreateFormRequest{Name: name})
	require.NoError(t, err)
	return res
}

func TestSave_GeneratesShareURLAndDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)

	desc := "  Survei layanan  "
	res, err := svc.Save(context.Background(), admin, dto.CreateFormRequest{Name: " Form A ", Description: &desc})
	require.NoError(t, err)

	assert.NotZero(t, res.ID)
	assert.Equal(t, "Form A", res.Name)
	assert.Equal(t, "Survei layanan", res.Description)
	assert.Equal(t, model.EmptyContent, res.Content)
	assert.Len(t, res.ShareURL, 36)
	assert.False(t, res.Published)
	assert.Equal(t, admin.ID, res.UserID)
}

func TestSave_ValidationAndActor(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)

	_, err := svc.Save(context.Background(), admin, dto.CreateFormRequest{Name: "A"})
	var verr *helper.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Equal(t, "Nama minimal 2 karakter", verr.Fields[0].Message)

	_, err = svc.Save(context.Background(), nil, dto.CreateFormRequest{Name: "Form"})
	assert.Equal(t, fiber.StatusUnauthorized, testutil.StatusOf(err))

	ghost := &authHelper.Identity{ID: 999, Role: constants.RoleAdmin}
	_, err = svc.Save(context.Background(), ghost, dto.CreateFormRequest{Name: "Form"})
	assert.Equal(t, fiber.StatusUnauthorized, testutil.StatusOf(err))
}

func TestFindAll_OnlyOwnForms(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	a := testutil.SeedUser(t, db, "a@skm.go.id", constants.RoleAdmin)
	b := testutil.SeedUser(t, db, "b@skm.go.id", constants.RoleAdmin)

	newForm(t, svc, a, "Form A1")
	newForm(t, svc, a, "Form A2")
	newForm(t, svc, b, "Form B1")

	rows, err := svc.FindAll(context.Background(), a)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Form A2", rows[0].Name)
	for _, r := range rows {
		assert.Equal(t, a.ID, r.UserID)
	}
}

func TestUpdate_PresentFalseIsApplied(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)
	form := newForm(t, svc, admin, "Form")
	ctx := context.Background()

	res, err := svc.Update(ctx, admin, dto.UpdateFormRequest{
		ID:        form.ID,
		Content:   helper.Set(`[{"type":"text"}]`),
		Published: helper.Set(true),
	})
	require.NoError(t, err)
	assert.True(t, res.Published)

	// hanya published=false: content tetap
	res, err = svc.Update(ctx, admin, dto.UpdateFormRequest{ID: form.ID, Published: helper.Set(false)})
	require.NoError(t, err)
	assert.False(t, res.Published)
	assert.Equal(t, `[{"type":"text"}]`, res.Content)

	// diulang: state akhir sama
	again, err := svc.Update(ctx, admin, dto.UpdateFormRequest{ID: form.ID, Published: helper.Set(false)})
	require.NoError(t, err)
	assert.Equal(t, res.Content, again.Content)
	assert.Equal(t, res.Published, again.Published)

	other := testutil.SeedUser(t, db, "other@skm.go.id", constants.RoleAdmin)
	_, err = svc.Update(ctx, other, dto.UpdateFormRequest{ID: form.ID, Published: helper.Set(true)})
	assert.Equal(t, fiber.StatusNotFound, testutil.StatusOf(err))
}

func TestFindByURL_IncrementsVisit(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)
	form := newForm(t, svc, admin, "Form")
	ctx := context.Background()

	first, err := svc.FindByURL(ctx, form.ShareURL)
	require.NoError(t, err)
	second, err := svc.FindByURL(ctx, form.ShareURL)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Visit)
	assert.Equal(t, int64(2), second.Visit)

	_, err = svc.FindByURL(ctx, "tidak-ada")
	assert.Equal(t, fiber.StatusNotFound, testutil.StatusOf(err))
	assert.EqualError(t, err, "form not found")
}

func TestUpdateDetails_RequiresPublished(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)
	form := newForm(t, svc, admin, "Form")
	ctx := context.Background()

	content := `[{"answer":"ya"}]`
	_, err := svc.UpdateDetails(ctx, dto.SubmitFormRequest{ShareURL: form.ShareURL, Content: &content})
	assert.Equal(t, fiber.StatusNotFound, testutil.StatusOf(err))

	_, err = svc.Update(ctx, admin, dto.UpdateFormRequest{ID: form.ID, Published: helper.Set(true)})
	require.NoError(t, err)

	res, err := svc.UpdateDetails(ctx, dto.SubmitFormRequest{ShareURL: form.ShareURL, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Submissions)
	require.Len(t, res.FormDetails, 1)
	assert.Equal(t, content, res.FormDetails[0].Content)

	detail, err := svc.FindDetailByID(ctx, res.FormDetails[0].ID)
	require.NoError(t, err)
	assert.Equal(t, form.ID, detail.FormID)

	_, err = svc.FindDetailByID(ctx, 9999)
	assert.EqualError(t, err, "form detail not found")
}

func TestUpdateDetails_FormGoneBeforeInsertIsNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)
	form := newForm(t, svc, admin, "Form")
	ctx := context.Background()

	_, err := svc.Update(ctx, admin, dto.UpdateFormRequest{ID: form.ID, Published: helper.Set(true)})
	require.NoError(t, err)

	// pelanggaran FK saat insert kiriman, seperti form yang dihapus bersamaan
	require.NoError(t, db.Exec(`CREATE TRIGGER form_details_fk BEFORE INSERT ON form_details
		BEGIN SELECT RAISE(ABORT, 'FOREIGN KEY constraint failed'); END`).Error)

	_, err = svc.UpdateDetails(ctx, dto.SubmitFormRequest{ShareURL: form.ShareURL})
	assert.Equal(t, fiber.StatusNotFound, testutil.StatusOf(err))
	assert.EqualError(t, err, "form not found")

	var stored model.FormModel
	require.NoError(t, db.First(&stored, form.ID).Error)
	assert.Zero(t, stored.Submissions)
}

func TestRemove_DeletesDetails(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)
	form := newForm(t, svc, admin, "Form")
	ctx := context.Background()

	require.NoError(t, db.Create(&model.FormDetailsModel{FormID: form.ID, Content: "[]"}).Error)
	require.NoError(t, db.Create(&model.FormDetailsModel{FormID: form.ID, Content: "[]"}).Error)

	res, err := svc.Remove(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.Equal(t, "OK", res)

	var details int64
	require.NoError(t, db.Model(&model.FormDetailsModel{}).Count(&details).Error)
	assert.Zero(t, details)

	_, err = svc.FindByID(ctx, form.ID)
	assert.EqualError(t, err, "form not found")

	_, err = svc.Remove(ctx, admin, form.ID)
	assert.Equal(t, fiber.StatusNotFound, testutil.StatusOf(err))
}

func TestStatisticsAndDistribution(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)
	ctx := context.Background()

	now := time.Date(2026, 10, 15, 5, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	a := newForm(t, svc, admin, "Form A")
	b := newForm(t, svc, admin, "Form B")
	require.NoError(t, db.Model(&model.FormModel{}).Where("id = ?", a.ID).Update("visit", 5).Error)
	require.NoError(t, db.Model(&model.FormModel{}).Where("id = ?", b.ID).Update("visit", 2).Error)

	rows := []model.FormDetailsModel{
		{FormID: a.ID, Content: "[]", CreatedAt: now.Add(-time.Hour)},
		{FormID: a.ID, Content: "[]", CreatedAt: now.Add(-2 * time.Hour)},
		{FormID: b.ID, Content: "[]", CreatedAt: now.AddDate(0, -2, 0)},
	}
	require.NoError(t, db.Create(&rows).Error)

	stats, err := svc.Statistics(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalVisit)
	assert.Equal(t, int64(3), stats.TotalSubmission)
	assert.Equal(t, int64(2), stats.TotalSubmissionThisMonth)

	dist, err := svc.SubmissionDistribution(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, []dto.SubmissionDistribution{{Form: "Form A", Count: 2}, {Form: "Form B", Count: 1}}, dist)

	daily, err := svc.MonthlySubmissionCount(ctx, admin)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, int64(2), daily[0].Count)
}

func TestStatistics_EmptyStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFormService(db)
	admin := testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)

	stats, err := svc.Statistics(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, dto.FormStatisticsResponse{}, *stats)

	dist, err := svc.SubmissionDistribution(context.Background(), admin)
	require.NoError(t, err)
	assert.Empty(t, dist)
}

func TestBucketByDay_UsesJakartaCalendar(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	stamps := []time.Time{
		time.Date(2026, 10, 1, 16, 0, 0, 0, time.UTC), // 1 Okt 23:00 WIB
		time.Date(2026, 10, 1, 17, 30, 0, 0, time.UTC), // 2 Okt 00:30 WIB
		time.Date(2026, 10, 2, 3, 0, 0, 0, time.UTC),
	}
	out := service.BucketByDay(stamps, loc)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].Count)
	assert.Equal(t, int64(2), out[1].Count)
	assert.Equal(t, 2, time.Time(out[1].Date).Day())
}
