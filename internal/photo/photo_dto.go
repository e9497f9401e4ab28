package photo

import "io"

type UploadPhotoRequest struct {
	OwnerType string `form:"owner_type" binding:"required"`
	OwnerID   string `form:"owner_id" binding:"required,uuid"`
	Caption   string `form:"caption" binding:"omitempty,max=255"`
	IsPrimary bool   `form:"is_primary"`
}

// FileInput is the uploaded file as received from the multipart form.
type FileInput struct {
	Name   string
	Size   int64
	Reader io.Reader
}

type ListFilter struct {
	OwnerType string `form:"owner_type" binding:"required"`
	OwnerID   string `form:"owner_id" binding:"required,uuid"`
}

type PhotoResponse struct {
	ID          string `json:"id"`
	OwnerType   string `json:"owner_type"`
	OwnerID     string `json:"owner_id"`
	URL         string `json:"url"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Caption     string `json:"caption,omitempty"`
	IsPrimary   bool   `json:"is_primary"`
	SortOrder   int    `json:"sort_order"`
	UploadedBy  string `json:"uploaded_by"`
	CreatedAt   string `json:"created_at"`
}
