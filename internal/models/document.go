package models

import "time"

const DefaultDocumentCategory = "other"

type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CoupleID   uint      `gorm:"not null;index" json:"coupleId"`
	Title      string    `gorm:"not null" json:"title"`
	Category   string    `gorm:"not null;default:other" json:"category"`
	FileURL    string    `gorm:"column:file_url;not null" json:"fileUrl"`
	FileName   string    `gorm:"not null;default:''" json:"fileName"`
	MimeType   string    `gorm:"not null;default:''" json:"mimeType"`
	Size       int64     `gorm:"not null;default:0" json:"size"`
	UploadedAt time.Time `gorm:"not null" json:"uploadedAt"`
}
