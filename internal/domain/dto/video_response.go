package dto

import (
	"vidvault/internal/domain/model"
)

// VideoResponse is the success document returned after an upload.
type VideoResponse struct {
	Video *model.Video `json:"video"`
}

// ErrorResponse is the failure document: a machine-readable kind plus a
// human-readable message, never internal paths or secrets.
type ErrorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}
