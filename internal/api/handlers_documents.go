package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/services"
)

func (handler *Handler) ListDocuments(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	documents, err := handler.services.Documents.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(documents)
}

func (handler *Handler) UploadDocument(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	now := handler.currentTime()
	if !handler.uploadLimiter.allow(user.ID, now) {
		return handler.apiError(c, fiber.StatusTooManyRequests, "error.too_many_uploads")
	}

	upload := services.DocumentUpload{
		Title:    c.FormValue("title"),
		Category: c.FormValue("category"),
	}
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		defer file.Close()

		upload.FileName = fileHeader.Filename
		upload.MimeType = fileHeader.Header.Get(fiber.HeaderContentType)
		upload.Size = fileHeader.Size
		upload.Content = file
	}

	document, err := handler.services.Documents.Upload(user.ID, upload, now)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(document)
}

func (handler *Handler) UpdateDocument(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	documentID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}
	input := services.DocumentInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidPayload(c)
	}

	document, err := handler.services.Documents.Update(user.ID, documentID, input)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(document)
}

func (handler *Handler) DeleteDocument(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	documentID, err := parseIDParam(c)
	if err != nil {
		return handler.invalidID(c)
	}

	err = handler.services.Documents.Delete(user.ID, documentID)
	if errors.Is(err, services.ErrDocumentFileCleanup) {
		// The row is gone; a leftover file is only worth a log line.
		log.Printf("document %d: %v", documentID, err)
		err = nil
	}
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return deletedResponse(c)
}
