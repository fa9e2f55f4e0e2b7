package service

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"skm_backend/internals/log"
)

// reapOldBackups menghapus arsip backup yang lebih tua dari retention.
func reapOldBackups(dir string, retention time.Duration, now time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	threshold := now.Add(-retention)

	var removed []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), FilePrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			log.Printf("[BACKUP-REAPER] stat %s gagal: %v", e.Name(), err)
			continue
		}
		if !info.ModTime().Before(threshold) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			log.Printf("[BACKUP-REAPER] hapus %s gagal: %v", e.Name(), err)
			continue
		}
		removed = append(removed, e.Name())
		log.Printf("[BACKUP-REAPER] menghapus backup lama: %s", e.Name())
	}
	return removed, nil
}
