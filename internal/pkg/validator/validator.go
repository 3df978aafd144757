package validator

import (
	"path/filepath"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// IsValidMonth validates a calendar month in YYYY-MM format.
func IsValidMonth(month string) bool {
	return monthRegex.MatchString(month)
}

// MaxDocumentSize is the upload limit for timesheet and receipt documents.
const MaxDocumentSize = 20 << 20 // 20 MiB

var allowedDocumentExts = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx"}

var allowedDocumentMediaTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// IsAllowedDocumentExt checks the file name extension against the accepted
// document formats (PDF, Word, Excel).
func IsAllowedDocumentExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return IsInSlice(ext, allowedDocumentExts)
}

// IsAllowedDocumentMediaType checks a declared media type against the accepted
// document formats. Parameters after ";" are ignored.
func IsAllowedDocumentMediaType(mediaType string) bool {
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return IsInSlice(mediaType, allowedDocumentMediaTypes)
}

// IsAllowedDocument accepts a file when either its extension or its declared
// media type matches an accepted document format.
func IsAllowedDocument(filename, mediaType string) bool {
	return IsAllowedDocumentExt(filename) || IsAllowedDocumentMediaType(mediaType)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
