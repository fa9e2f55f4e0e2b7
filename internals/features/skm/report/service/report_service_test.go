package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skm_backend/internals/constants"
	"skm_backend/internals/features/skm/model"
	"skm_backend/internals/features/skm/report/engine"
	"skm_backend/internals/features/skm/report/service"
	userService "skm_backend/internals/features/users/service"
	"skm_backend/internals/helpers/mailer"
	"skm_backend/internals/testutil"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	seen []bool // lampiran ada saat Send dipanggil
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	for _, p := range msg.Attachments {
		_, err := os.Stat(p)
		f.seen = append(f.seen, err == nil)
	}
	return f.err
}

type fakeRecipients struct {
	emails []string
	err    error
}

func (f fakeRecipients) FindEmailsByRole(context.Context, string) ([]string, error) {
	return f.emails, f.err
}

func seedSurvey(t *testing.T, db *gorm.DB) {
	t.Helper()
	q1 := testutil.SeedQuestion(t, db, "U1")
	q2 := testutil.SeedQuestion(t, db, "U2")
	testutil.SeedQuestion(t, db, "U3")
	a := testutil.SeedResponden(t, db, "Budi", model.GenderMale)
	b := testutil.SeedResponden(t, db, "Sari", model.GenderFemale)
	testutil.SeedResponse(t, db, q1, a, 4)
	testutil.SeedResponse(t, db, q1, b, 3)
	testutil.SeedResponse(t, db, q2, a, 2)
}

func TestSummary(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSurvey(t, db)

	s, err := service.NewReportService(db).Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, s.Questions, 3)
	assert.InDelta(t, 1.0/3.0, s.Weight, 1e-12)
	assert.Equal(t, 3.5, s.Questions[0].NRR)
	assert.Equal(t, int64(2), s.Questions[0].Count)
	assert.Equal(t, engine.CategoryPoor, s.Questions[1].Category)
	assert.False(t, s.Questions[2].HasData)
	assert.InDelta(t, (3.5+2.0)/3.0*25, s.IKM, 0.01)
}

func TestRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSurvey(t, db)

	rows, err := service.NewReportService(db).Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Budi", rows[0].Responden)
	assert.Equal(t, "U1", rows[0].Acronim)
	assert.Equal(t, "Sangat sesuai", rows[0].SelectOptionText)
	assert.False(t, rows[0].CreatedAt.IsZero())
}

func TestExport_EmptyStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	buf, err := service.NewReportService(db).Export(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func newJob(t *testing.T, db *gorm.DB, sender *fakeSender, recipients fakeRecipients) (*service.ReportJob, string) {
	t.Helper()
	dir := t.TempDir()
	now := func() time.Time { return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC) }
	reports := service.NewReportService(db)
	reports.Now = now
	return &service.ReportJob{
		Reports:    reports,
		Recipients: recipients,
		Mailer:     sender,
		TempDir:    dir,
		Now:        now,
	}, dir
}

func TestReportJob_SendsAndCleansUp(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedSurvey(t, db)
	sender := &fakeSender{}
	job, dir := newJob(t, db, sender, fakeRecipients{emails: []string{"root@skm.go.id"}})

	require.NoError(t, job.Run(context.Background()))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "Laporan SKM - 1 Oktober 2026", msg.Subject)
	assert.Equal(t, []string{"root@skm.go.id"}, msg.To)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "laporan-skm-2026-10-01.xlsx", filepath.Base(msg.Attachments[0]))
	assert.Equal(t, []bool{true}, sender.seen)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReportJob_RemovesFileWhenSendFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	sender := &fakeSender{err: errors.New("smtp down")}
	job, dir := newJob(t, db, sender, fakeRecipients{emails: []string{"root@skm.go.id"}})

	err := job.Run(context.Background())
	assert.EqualError(t, err, "smtp down")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReportJob_NoSuperAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	sender := &fakeSender{}
	job, dir := newJob(t, db, sender, fakeRecipients{})

	require.NoError(t, job.Run(context.Background()))
	assert.Empty(t, sender.sent)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReportJob_RecipientLookupFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	sender := &fakeSender{}
	job, dir := newJob(t, db, sender, fakeRecipients{err: errors.New("db gone")})

	assert.Error(t, job.Run(context.Background()))
	assert.Empty(t, sender.sent)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReportJob_SuperAdminsFromUserService(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedUser(t, db, "root@skm.go.id", constants.RoleSuperAdmin)
	testutil.SeedUser(t, db, "admin@skm.go.id", constants.RoleAdmin)

	sender := &fakeSender{}
	job, _ := newJob(t, db, sender, fakeRecipients{})
	job.Recipients = userService.NewUserService(db)

	require.NoError(t, job.Run(context.Background()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"root@skm.go.id"}, sender.sent[0].To)
}
