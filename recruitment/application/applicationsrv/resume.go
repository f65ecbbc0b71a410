package applicationsrv

import (
	"path/filepath"
	"strings"

	"github.com/Abraxas-365/crewdesk/recruitment/application"
)

// MaxResumeSize is the largest resume accepted, in bytes
const MaxResumeSize = 5 * 1024 * 1024

// genericContentType is what clients send when they do not know the type
const genericContentType = "application/octet-stream"

var resumeContentTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

var resumeExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// validateResume checks size and type and returns the extension to store under
func validateResume(r *application.ResumeUpload) (string, error) {
	if r.Size() == 0 {
		return "", application.ErrInvalidAttachment().WithDetail("reason", "empty file")
	}
	if r.Size() > MaxResumeSize {
		return "", application.ErrInvalidAttachment().
			WithDetail("file_size", r.Size()).
			WithDetail("max_size", MaxResumeSize)
	}

	ext := strings.ToLower(filepath.Ext(r.Filename))
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(r.ContentType, ";")[0]))
	if contentType == genericContentType {
		contentType = ""
	}

	_, extOK := resumeExtensions[ext]
	typeExt, typeOK := resumeContentTypes[contentType]

	// a declared type and a present extension must each be allowed
	switch {
	case ext != "" && !extOK, contentType != "" && !typeOK, ext == "" && contentType == "":
		return "", application.ErrInvalidAttachment().
			WithDetail("content_type", r.ContentType).
			WithDetail("filename", r.Filename)
	case extOK:
		return ext, nil
	default:
		return typeExt, nil
	}
}

// ResumeContentType maps a stored resume name back to its MIME type
func ResumeContentType(filename string) string {
	if ct, ok := resumeExtensions[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
