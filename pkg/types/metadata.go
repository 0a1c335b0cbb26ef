package types

import "strings"

// AppName is the App-Name tag value attached to every upload
const AppName = "hb-explorer"

// Tag names attached to every transaction
const (
	TagContentType = "Content-Type"
	TagAppName     = "App-Name"
	TagFileName    = "File-Name"
	TagFilePath    = "File-Path"
)

// UploadTarget describes a single file discovered for upload
type UploadTarget struct {
	AbsolutePath string `json:"absolutePath"`
	RelativePath string `json:"relativePath"` // Slash-separated, relative to the input root
	FileName     string `json:"fileName"`
	Size         int64  `json:"size"`
}

// DisplayName returns the name used in console output and the summary
func (t UploadTarget) DisplayName() string {
	if t.RelativePath != "" {
		return t.RelativePath
	}
	return t.FileName
}

// HasDistinctPath reports whether the file lives below the input root
func (t UploadTarget) HasDistinctPath() bool {
	return t.RelativePath != "" && t.RelativePath != t.FileName
}

// Tag is a name/value pair attached to a transaction
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BuildTags returns the ordered transaction tags for target
func BuildTags(target UploadTarget, contentType string) []Tag {
	tags := []Tag{
		{Name: TagContentType, Value: contentType},
		{Name: TagAppName, Value: AppName},
		{Name: TagFileName, Value: target.FileName},
	}
	if target.HasDistinctPath() {
		tags = append(tags, Tag{Name: TagFilePath, Value: target.RelativePath})
	}
	return tags
}

// UploadOutcome is recorded once a file's upload completes
type UploadOutcome struct {
	File          string `json:"file"`
	TransactionID string `json:"transactionId"`
	URL           string `json:"url"`
}

// TransactionURL builds the gateway retrieval URL for a transaction id
func TransactionURL(baseURL, txID string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + txID
}
