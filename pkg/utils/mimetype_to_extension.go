package utils

import "strings"

// mimeTypeToExtension maps the media MIME types the service works with to
// their usual file extensions. Storage keys and asset URLs carry these
// extensions so that downstream tooling can tell asset formats apart.
var mimeTypeToExtension = map[string]string{
	"image/bmp":                ".bmp",
	"image/gif":                ".gif",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/tiff":               ".tif",
	"image/webp":               ".webp",
	"video/avi":                ".avi",
	"video/mpeg":               ".mpeg",
	"video/mp4":                ".mp4",
	"video/ogg":                ".ogv",
	"video/quicktime":          ".mov",
	"video/webm":               ".webm",
	"video/x-flv":              ".flv",
	"video/x-matroska":         ".mkv",
	"video/x-ms-wmv":           ".wmv",
	"application/octet-stream": ".bin",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME
// type, defaulting to ".bin" when the type is unknown.
func GetExtensionFromMimeType(mimeType string) string {
	// Drop parameters if present (e.g., "video/mp4; codecs=avc1").
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[cleaned]; ok {
		return ext
	}

	return ".bin"
}
