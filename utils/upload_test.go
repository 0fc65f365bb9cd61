package utils

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateUniqueFilename(t *testing.T) {
	tests := []struct {
		name       string
		original   string
		wantPrefix string
		wantSuffix string
	}{
		{"spaces and parens collapsed", "My Photo (1).PNG", "My-Photo-1-", ".png"},
		{"path components stripped", "../../etc/passwd", "passwd-", ""},
		{"windows path stripped", `C:\Users\x\icon.png`, "icon-", ".png"},
		{"only symbols falls back", "???.jpg", "upload-", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateUniqueFilename(tt.original)
			if strings.ContainsAny(got, `/\`) {
				t.Fatalf("generated name contains path separators: %q", got)
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("expected prefix %q, got %q", tt.wantPrefix, got)
			}
			if tt.wantSuffix != "" && !strings.HasSuffix(got, tt.wantSuffix) {
				t.Errorf("expected suffix %q, got %q", tt.wantSuffix, got)
			}
		})
	}
}

func TestGenerateUniqueFilenameTruncatesStem(t *testing.T) {
	got := GenerateUniqueFilename(strings.Repeat("a", 80) + ".png")
	stem := strings.SplitN(got, "-", 2)[0]
	if len(stem) > 20 {
		t.Errorf("stem not truncated to 20 chars: %q", stem)
	}
}

func TestValidateUpload(t *testing.T) {
	if err := ValidateUpload("image/png", 1024); err != nil {
		t.Errorf("png should be accepted: %v", err)
	}
	if err := ValidateUpload("image/jpeg; charset=binary", 1024); err != nil {
		t.Errorf("content type parameters should be ignored: %v", err)
	}

	err := ValidateUpload("application/pdf", 1024)
	var rejected *UploadRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected UploadRejectedError, got %v", err)
	}
	if !strings.Contains(rejected.Reason, "File type not allowed") {
		t.Errorf("unexpected rejection reason: %q", rejected.Reason)
	}

	err = ValidateUpload("image/png", MaxUploadSize+1)
	if !errors.As(err, &rejected) {
		t.Fatalf("expected UploadRejectedError, got %v", err)
	}
	if !strings.Contains(rejected.Reason, "File size too large") {
		t.Errorf("unexpected rejection reason: %q", rejected.Reason)
	}
}

// multipartUpload builds a request carrying one file part with the given content type.
func multipartUpload(t *testing.T, filename, contentType string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	partHeader.Set("Content-Type", contentType)
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	writer.Close()

	r := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	file, header, err := r.FormFile("file")
	if err != nil {
		t.Fatalf("FormFile failed: %v", err)
	}
	return file, header
}

func withTempUploadDir(t *testing.T) string {
	t.Helper()
	original := UploadDir
	UploadDir = t.TempDir()
	t.Cleanup(func() { UploadDir = original })
	return UploadDir
}

func TestSaveAndDeleteUploadedFile(t *testing.T) {
	dir := withTempUploadDir(t)

	file, header := multipartUpload(t, "brand icon.png", "image/png", []byte("fake-png-bytes"))
	defer file.Close()

	url, filename, err := SaveUploadedFile(file, header)
	if err != nil {
		t.Fatalf("SaveUploadedFile failed: %v", err)
	}
	if !strings.HasPrefix(url, UploadURLPrefix) {
		t.Errorf("url must start with %s, got %q", UploadURLPrefix, url)
	}
	if !strings.HasPrefix(filename, "brand-icon-") || !strings.HasSuffix(filename, ".png") {
		t.Errorf("unexpected stored filename: %q", filename)
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Error("stored content mismatch")
	}

	if !DeleteUploadedFile(url) {
		t.Error("first delete should succeed")
	}
	if DeleteUploadedFile(url) {
		t.Error("second delete of the same url should report false")
	}
}

func TestSaveUploadedFileRejectsDisallowedType(t *testing.T) {
	dir := withTempUploadDir(t)

	file, header := multipartUpload(t, "notes.txt", "text/plain", []byte("hello"))
	defer file.Close()

	_, _, err := SaveUploadedFile(file, header)
	var rejected *UploadRejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected UploadRejectedError, got %v", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("ReadDir failed: %v", readErr)
	}
	if len(entries) != 0 {
		t.Error("rejected upload must not leave files behind")
	}
}

func TestDeleteUploadedFileOutsideManagedPrefix(t *testing.T) {
	withTempUploadDir(t)

	if DeleteUploadedFile("/etc/passwd") {
		t.Error("paths outside the upload prefix must be refused")
	}
	if DeleteUploadedFile("relative/path.png") {
		t.Error("non-prefixed paths must be refused")
	}
}
