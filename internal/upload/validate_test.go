package upload

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<<>>\n%%EOF\n")

func zipBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestValidate_AcceptsAllowedTypes(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{"pdf by type", File{Name: "cv.pdf", ContentType: MIMEPDF, Size: 1024}},
		{"pdf with params", File{Name: "cv.PDF", ContentType: "application/pdf; charset=binary", Size: 1024}},
		{"doc by extension", File{Name: "cv.doc", Size: 2048}},
		{"docx by type", File{Name: "cv.docx", ContentType: MIMEDOCX, Size: 2048}},
		{"pdf content", File{Name: "cv.pdf", ContentType: MIMEPDF, Data: pdfBytes}},
		{"exactly 5 MB", File{Name: "cv.pdf", ContentType: MIMEPDF, Size: MaxResumeSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Validate(tt.file))
		})
	}
}

func TestValidate_RejectsSixMegabytes(t *testing.T) {
	err := Validate(File{Name: "cv.pdf", ContentType: MIMEPDF, Size: 6 << 20})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileTooLarge))

	var uerr *UploadError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "File size must be less than 5 MB", uerr.Message)
}

func TestValidate_SizeUsesLargerOfDeclaredAndActual(t *testing.T) {
	data := append(append([]byte{}, pdfBytes...), make([]byte, 6<<20)...)
	err := Validate(File{Name: "cv.pdf", ContentType: MIMEPDF, Size: 1, Data: data})
	assert.True(t, errors.Is(err, ErrFileTooLarge))
}

func TestValidate_RejectsExecutable(t *testing.T) {
	tests := []File{
		{Name: "setup.exe", ContentType: "application/x-msdownload", Size: 100},
		{Name: "setup.exe", Size: 100},
		{Name: "setup.exe", ContentType: MIMEPDF, Size: 100},
		{Name: "cv.pdf", ContentType: MIMEPDF, Data: append([]byte("MZ\x90\x00\x03\x00\x00\x00"), make([]byte, 64)...)},
	}

	for _, f := range tests {
		err := Validate(f)
		require.Error(t, err, "file %+v", f.Name)
		assert.True(t, errors.Is(err, ErrUnsupportedType))
	}
}

func TestValidate_DocxContainer(t *testing.T) {
	data := zipBytes(t)
	assert.NoError(t, Validate(File{Name: "cv.docx", ContentType: MIMEDOCX, Data: data}))
	assert.True(t, errors.Is(Validate(File{Name: "cv.pdf", ContentType: MIMEPDF, Data: data}), ErrUnsupportedType))
}

func TestValidate_EmptySelection(t *testing.T) {
	assert.True(t, errors.Is(Validate(File{}), ErrNoFile))
}
