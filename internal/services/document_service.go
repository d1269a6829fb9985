package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/terraincognita07/mariage/internal/models"
)

const MaxDocumentSize int64 = 10 << 20

var allowedDocumentExtensions = map[string]struct{}{
	".pdf":  {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".doc":  {},
	".docx": {},
	".xls":  {},
	".xlsx": {},
	".txt":  {},
}

// DocumentFileStore keeps uploaded files and hands back the public path
// stored on the document row.
type DocumentFileStore interface {
	Save(coupleID uint, extension string, content io.Reader) (string, error)
	Remove(fileURL string) error
}

type DocumentUpload struct {
	Title    string
	Category string
	FileName string
	MimeType string
	Size     int64
	Content  io.Reader
}

type DocumentInput struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
}

type DocumentService struct {
	documents ScopedRepository[models.Document]
	couples   CoupleMemberLookup
	files     DocumentFileStore
}

func NewDocumentService(documents ScopedRepository[models.Document], couples CoupleMemberLookup, files DocumentFileStore) *DocumentService {
	return &DocumentService{documents: documents, couples: couples, files: files}
}

func (service *DocumentService) List(userID uint) ([]models.Document, error) {
	return service.documents.ListForUser(userID)
}

func (service *DocumentService) Upload(userID uint, upload DocumentUpload, now time.Time) (models.Document, error) {
	title := strings.TrimSpace(upload.Title)
	if title == "" {
		return models.Document{}, invalidField("title", CodeRequired)
	}
	if upload.Content == nil || strings.TrimSpace(upload.FileName) == "" {
		return models.Document{}, invalidField("file", CodeRequired)
	}
	extension := strings.ToLower(filepath.Ext(upload.FileName))
	if _, ok := allowedDocumentExtensions[extension]; !ok {
		return models.Document{}, invalidField("file", CodeInvalid)
	}
	if upload.Size > MaxDocumentSize {
		return models.Document{}, invalidField("file", CodeTooLarge)
	}
	category := strings.TrimSpace(upload.Category)
	if category == "" {
		category = models.DefaultDocumentCategory
	}

	couple, err := findCoupleForMember(service.couples, userID)
	if err != nil {
		return models.Document{}, err
	}

	fileURL, err := service.files.Save(couple.ID, extension, upload.Content)
	if err != nil {
		return models.Document{}, fmt.Errorf("store document file: %w", err)
	}

	document := models.Document{
		CoupleID:   couple.ID,
		Title:      title,
		Category:   category,
		FileURL:    fileURL,
		FileName:   filepath.Base(upload.FileName),
		MimeType:   strings.TrimSpace(upload.MimeType),
		Size:       upload.Size,
		UploadedAt: now,
	}
	if err := service.documents.Create(&document); err != nil {
		if removeErr := service.files.Remove(fileURL); removeErr != nil {
			return models.Document{}, errors.Join(err, fmt.Errorf("%w: %s: %v", ErrDocumentFileCleanup, fileURL, removeErr))
		}
		return models.Document{}, err
	}
	return document, nil
}

func (service *DocumentService) Update(userID uint, documentID uint, input DocumentInput) (models.Document, error) {
	document, err := service.documents.FindForUser(documentID, userID)
	if err != nil {
		return models.Document{}, normalizeNotFound(err)
	}

	if err := mergeRequiredText("title", &document.Title, input.Title); err != nil {
		return models.Document{}, err
	}
	if input.Category != nil {
		document.Category = strings.TrimSpace(*input.Category)
		if document.Category == "" {
			document.Category = models.DefaultDocumentCategory
		}
	}

	if err := service.documents.Save(&document); err != nil {
		return models.Document{}, err
	}
	return document, nil
}

// Delete removes the row first. A failure to remove the stored file is
// reported as ErrDocumentFileCleanup after the row is already gone.
func (service *DocumentService) Delete(userID uint, documentID uint) error {
	document, err := service.documents.FindForUser(documentID, userID)
	if err != nil {
		return normalizeNotFound(err)
	}
	if err := service.documents.DeleteForUser(documentID, userID); err != nil {
		return normalizeNotFound(err)
	}
	if err := service.files.Remove(document.FileURL); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentFileCleanup, err)
	}
	return nil
}
