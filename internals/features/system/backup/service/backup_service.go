package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"skm_backend/internals/configs"
	"skm_backend/internals/constants"
	"skm_backend/internals/features/system/backup/dto"
	helper "skm_backend/internals/helpers"
	"skm_backend/internals/helpers/mailer"
	"skm_backend/internals/log"
)

const (
	FilePrefix    = "backup-survei-app-"
	sqlSuffix     = ".sql"
	archiveSuffix = ".sql.gz"

	// nama arsip unik per detik
	fileStampLayout = "2006-01-02-150405"
)

// RecipientFinder: sumber alamat email penerima arsip backup.
type RecipientFinder interface {
	FindEmailsByRole(ctx context.Context, role string) ([]string, error)
}

type BackupService struct {
	Dir        string
	Retention  time.Duration
	Dumper     Dumper
	Recipients RecipientFinder
	Mailer     mailer.Sender
	Now        func() time.Time
}

func NewBackupService(recipients RecipientFinder, sender mailer.Sender) *BackupService {
	return &BackupService{
		Dir:        configs.BackupDir,
		Retention:  configs.BackupRetentionDays * 24 * time.Hour,
		Dumper:     NewPgDumper(),
		Recipients: recipients,
		Mailer:     sender,
		Now:        time.Now,
	}
}

func (s *BackupService) Name() string { return "backup" }

func (s *BackupService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Run: dump → gzip → hapus .sql → email SUPER_ADMIN → hapus arsip > retention.
func (s *BackupService) Run(ctx context.Context) error {
	_, err := s.RunWithResult(ctx)
	return err
}

func (s *BackupService) RunWithResult(ctx context.Context) (*dto.RunResponse, error) {
	now := s.now()
	date := now.UTC().Format("2006-01-02")
	stamp := now.UTC().Format(fileStampLayout)

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, err
	}

	sqlPath := filepath.Join(s.Dir, FilePrefix+stamp+sqlSuffix)
	archivePath := sqlPath + ".gz"

	if err := s.Dumper.Dump(ctx, sqlPath); err != nil {
		_ = os.Remove(sqlPath)
		log.Printf("[BACKUP] ❌ dump gagal: %v", err)
		return nil, err
	}
	if err := compressFile(sqlPath, archivePath); err != nil {
		_ = os.Remove(sqlPath)
		log.Printf("[BACKUP] ❌ kompres gagal: %v", err)
		return nil, err
	}
	if err := os.Remove(sqlPath); err != nil {
		return nil, err
	}
	log.Printf("[BACKUP] ✅ backup dibuat: %s", filepath.Base(archivePath))

	recipients, err := s.Recipients.FindEmailsByRole(ctx, constants.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if len(recipients) > 0 {
		if err := s.Mailer.Send(ctx, mailer.BackupMessage(recipients, date, archivePath)); err != nil {
			return nil, err
		}
	} else {
		log.Printf("[BACKUP] tidak ada SUPER_ADMIN, arsip tidak dikirim")
	}

	removed, err := reapOldBackups(s.Dir, s.Retention, now)
	if err != nil {
		return nil, err
	}

	file, err := describe(archivePath)
	if err != nil {
		return nil, err
	}
	return &dto.RunResponse{File: file, Recipients: len(recipients), Removed: removed}, nil
}

// List: arsip yang masih tersimpan, terbaru lebih dulu.
func (s *BackupService) List() ([]dto.BackupFile, error) {
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return []dto.BackupFile{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := []dto.BackupFile{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), FilePrefix) {
			continue
		}
		f, err := describe(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

// Restore memulihkan database dari arsip di Dir. name harus nama file polos.
func (s *BackupService) Restore(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || filepath.Base(name) != name || !strings.HasPrefix(name, FilePrefix) {
		return helper.NewValidationError("file", "file must be a backup file name")
	}
	gzipped := strings.HasSuffix(name, archiveSuffix)
	if !gzipped && !strings.HasSuffix(name, sqlSuffix) {
		return helper.NewValidationError("file", "file must be a .sql or .sql.gz backup")
	}

	path := filepath.Join(s.Dir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return helper.NotFound(constants.NotFound("backup"))
		}
		return err
	}

	src, err := openArchive(path, gzipped)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := s.Dumper.Restore(ctx, src); err != nil {
		log.Printf("[BACKUP] ❌ restore %s gagal: %v", name, err)
		return err
	}
	log.Printf("[BACKUP] ✅ database dipulihkan dari %s", name)
	return nil
}

func describe(path string) (dto.BackupFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return dto.BackupFile{}, err
	}
	return dto.BackupFile{Name: info.Name(), Size: info.Size(), ModifiedAt: info.ModTime()}, nil
}
