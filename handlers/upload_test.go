package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"browserconfig/models"
	"browserconfig/utils"
)

func uploadRequest(t *testing.T, filename, contentType string, content []byte) *http.Request {
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
	return r
}

func TestUploadFileStoresImage(t *testing.T) {
	rec := httptest.NewRecorder()
	UploadFile(rec, uploadRequest(t, "site icon.png", "image/png", []byte("fake-png")))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	data := resp.Data.(map[string]interface{})
	url, _ := data["url"].(string)
	filename, _ := data["filename"].(string)

	if !strings.HasPrefix(url, utils.UploadURLPrefix) {
		t.Errorf("url must be under %s, got %q", utils.UploadURLPrefix, url)
	}
	if !strings.HasPrefix(filename, "site-icon-") || !strings.HasSuffix(filename, ".png") {
		t.Errorf("unexpected stored filename: %q", filename)
	}

	if _, err := os.Stat(filepath.Join(utils.UploadDir, filename)); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestUploadFileRejectsDisallowedType(t *testing.T) {
	rec := httptest.NewRecorder()
	UploadFile(rec, uploadRequest(t, "payload.exe", "application/octet-stream", []byte("MZ")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "File type not allowed") {
		t.Errorf("rejection must name the constraint, got %q", resp.Message)
	}
}

func TestUploadFileRequiresFileField(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("other", "value")
	writer.Close()

	r := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	r.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	UploadFile(rec, r)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when file field is missing, got %d", rec.Code)
	}
}
