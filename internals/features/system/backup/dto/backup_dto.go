package dto

import "time"

type BackupFile struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

type RestoreRequest struct {
	File string `json:"file" validate:"required,max=255"`
}

type RunResponse struct {
	File       BackupFile `json:"file"`
	Recipients int        `json:"recipients"`
	Removed    []string   `json:"removed"`
}
