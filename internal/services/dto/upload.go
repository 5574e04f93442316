package dto

type UploadResponse struct {
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type DeleteUploadRequest struct {
	URL string `json:"url" binding:"required" validate:"required"`
}
