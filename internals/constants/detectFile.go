package constants

import (
	"path/filepath"
	"strings"
)

// DetectContentType menebak MIME dari ekstensi file lampiran/unduhan.
func DetectContentType(filename string) string {
	name := strings.ToLower(filename)
	if strings.HasSuffix(name, ".sql.gz") {
		return "application/gzip"
	}

	switch filepath.Ext(name) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".gz":
		return "application/gzip"
	case ".sql":
		return "application/sql"
	case ".csv":
		return "text/csv"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
