package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) sendCSV(c *fiber.Ctx, filename string, headers []string, rows [][]string) error {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(headers); err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return handler.respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buffer.Bytes())
}
