package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/mariage/internal/models"
	"github.com/terraincognita07/mariage/internal/storage"
)

func uploadRequest(t *testing.T, authCookie string, title string, fileName string, content string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if title != "" {
		if err := writer.WriteField("title", title); err != nil {
			t.Fatalf("write title field: %v", err)
		}
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/documents", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Cookie", authCookie)
	return request
}

func TestDocumentUploadStoresFileAndDeleteRemovesIt(t *testing.T) {
	env := newTestApp(t)
	authCookie := env.register(t, "docs@example.com", "Docs")
	couple := env.createCouple(t, authCookie, "")

	response := env.send(t, uploadRequest(t, authCookie, "Devis traiteur", "devis.pdf", "%PDF-1.4 quote"))
	assertStatus(t, response, http.StatusCreated)
	document := models.Document{}
	decodeJSON(t, response, &document)

	expectedPrefix := fmt.Sprintf("%s/documents/%d/", storage.PublicPrefix, couple.ID)
	if !strings.HasPrefix(document.FileURL, expectedPrefix) || !strings.HasSuffix(document.FileURL, ".pdf") {
		t.Fatalf("unexpected file url %q", document.FileURL)
	}
	if document.Category != models.DefaultDocumentCategory || document.FileName != "devis.pdf" {
		t.Fatalf("unexpected document metadata %+v", document)
	}

	storedPath := filepath.Join(env.uploadDir, filepath.FromSlash(strings.TrimPrefix(document.FileURL, storage.PublicPrefix+"/")))
	stored, err := os.ReadFile(storedPath)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(stored) != "%PDF-1.4 quote" {
		t.Fatalf("unexpected stored content %q", string(stored))
	}

	assertStatus(t, env.do(t, http.MethodGet, document.FileURL, "", nil), http.StatusOK)

	response = env.do(t, http.MethodDelete, fmt.Sprintf("/api/documents/%d", document.ID), authCookie, nil)
	assertStatus(t, response, http.StatusOK)
	if _, err := os.Stat(storedPath); !os.IsNotExist(err) {
		t.Fatalf("expected stored file to be removed, stat err=%v", err)
	}
}

func TestDocumentUploadValidation(t *testing.T) {
	env := newTestApp(t)
	authCookie := env.register(t, "badfile@example.com", "Badfile")
	env.createCouple(t, authCookie, "")

	cases := []struct {
		name     string
		title    string
		fileName string
		field    string
	}{
		{name: "missing title", title: "", fileName: "plan.png", field: "title"},
		{name: "missing file", title: "Plan de table", fileName: "", field: "file"},
		{name: "forbidden extension", title: "Script", fileName: "run.exe", field: "file"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			response := env.send(t, uploadRequest(t, authCookie, tc.title, tc.fileName, "content"))
			assertStatus(t, response, http.StatusBadRequest)

			payload := map[string]string{}
			decodeJSON(t, response, &payload)
			if payload["field"] != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, payload["field"])
			}
		})
	}
}

func TestDocumentUploadRateLimit(t *testing.T) {
	env := newTestApp(t)
	env.handler.uploadLimiter = newUploadLimiter(uploadRatePerMinute, 1)
	authCookie := env.register(t, "burst@example.com", "Burst")

	assertStatus(t, env.send(t, uploadRequest(t, authCookie, "", "a.pdf", "a")), http.StatusBadRequest)
	assertStatus(t, env.send(t, uploadRequest(t, authCookie, "", "b.pdf", "b")), http.StatusTooManyRequests)
}
