package mailer

import (
	"fmt"
)

const appTitle = "Aplikasi Survei Disdik Kota Palangka Raya"

func BackupMessage(to []string, date, archivePath string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Database Backup - %s", date),
		Text:    fmt.Sprintf("Database backup untuk %s sudah di lampirkan.", date),
		HTML: fmt.Sprintf(`<h2>Database Backup %s</h2>
<p>Halo Admin,</p>
<p>Database backup untuk tanggal %s telah selesai dibuat.</p>
<p>File backup terlampir pada email ini.</p>
<p>Terimakasih,<br>Backup System</p>`, appTitle, date),
		Attachments: []string{archivePath},
	}
}

func ReportMessage(to []string, date, reportPath string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Laporan SKM - %s", date),
		Text:    fmt.Sprintf("Laporan Survei Kepuasan Masyarakat untuk tanggal %s terlampir.", date),
		HTML: fmt.Sprintf(`<h2>Laporan SKM</h2>
<p>Halo,</p>
<p>Berikut terlampir laporan Survei Kepuasan Masyarakat untuk tanggal %s.</p>
<p>Best regards,<br>Sistem Laporan</p>`, date),
		Attachments: []string{reportPath},
	}
}
