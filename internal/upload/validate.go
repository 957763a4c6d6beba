package upload

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxResumeSize is the upload ceiling: 5 MiB.
const MaxResumeSize int64 = 5 << 20

const (
	MIMEPDF  = "application/pdf"
	MIMEDOC  = "application/msword"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// allowedTypes maps each accepted MIME type to its file extension.
var allowedTypes = map[string]string{
	MIMEPDF:  ".pdf",
	MIMEDOC:  ".doc",
	MIMEDOCX: ".docx",
}

// containerTypes is what content sniffing reports for a truncated or minimal
// document of each Office type.
var containerTypes = map[string]string{
	MIMEDOC:  "application/x-ole-storage",
	MIMEDOCX: "application/zip",
}

// File is a candidate resume. Data is optional; when present the content is
// sniffed and must agree with the declared type.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// size is the larger of the declared size and the bytes actually present.
func (f File) size() int64 {
	return max(f.Size, int64(len(f.Data)))
}

// Validate checks a file against the size ceiling and the type allow-list. It
// never performs I/O.
func Validate(f File) error {
	if f.Name == "" && f.size() == 0 {
		return &UploadError{Message: "Please select a file", Cause: ErrNoFile}
	}
	if f.size() > MaxResumeSize {
		return &UploadError{
			Message: fmt.Sprintf("File size must be less than %d MB", MaxResumeSize>>20),
			Cause:   ErrFileTooLarge,
		}
	}

	declared, err := declaredType(f)
	if err != nil {
		return err
	}

	if len(f.Data) > 0 && !contentMatches(declared, f.Data) {
		return unsupported(fmt.Errorf("content looks like %s, not %s", mimetype.Detect(f.Data).String(), declared))
	}
	return nil
}

// declaredType resolves the MIME type from the content type or, failing that, the
// file extension. The extension must agree with the type when both are present.
func declaredType(f File) (string, error) {
	ext := strings.ToLower(filepath.Ext(f.Name))

	declared := ""
	if f.ContentType != "" {
		mt, _, err := mime.ParseMediaType(f.ContentType)
		if err != nil {
			return "", unsupported(err)
		}
		declared = strings.ToLower(mt)
	} else {
		for mt, e := range allowedTypes {
			if e == ext {
				declared = mt
			}
		}
	}

	wantExt, ok := allowedTypes[declared]
	if !ok {
		return "", unsupported(fmt.Errorf("type %q", declared))
	}
	if ext != "" && ext != wantExt {
		return "", unsupported(fmt.Errorf("extension %q does not match %s", ext, declared))
	}
	return declared, nil
}

func contentMatches(declared string, data []byte) bool {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is(declared) {
			return true
		}
	}
	if container, ok := containerTypes[declared]; ok {
		return detected.Is(container)
	}
	return false
}

func unsupported(cause error) *UploadError {
	return &UploadError{
		Message: "Only PDF, DOC and DOCX files are allowed",
		Cause:   fmt.Errorf("%w: %v", ErrUnsupportedType, cause),
	}
}
