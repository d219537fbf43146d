package models

import "time"

type AssetType string

const (
	AssetImage    AssetType = "image"
	AssetVideo    AssetType = "video"
	AssetDocument AssetType = "document"
)

// Asset is a creative file in the shared library.
type Asset struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       AssetType `json:"type"`
	URL        string    `json:"url"`
	Size       string    `json:"size"`
	Dimension  string    `json:"dimension,omitempty"`
	UploadDate time.Time `json:"upload_date"`
	ClientName string    `json:"client_name"`
	UploadedBy string    `json:"uploaded_by"`
}
