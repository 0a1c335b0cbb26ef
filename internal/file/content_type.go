package file

import (
	"path/filepath"
	"strings"
)

// DefaultContentType is used for unknown or missing extensions
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".json": "application/json",
	".txt":  "text/plain",
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".ts":   "application/typescript",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".mp4":  "video/mp4",
	".mp3":  "audio/mpeg",
}

// ContentType returns the MIME type for a file path based on its extension
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if contentType, ok := contentTypes[ext]; ok {
		return contentType
	}
	return DefaultContentType
}
