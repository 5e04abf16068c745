package response

import "import_admin/internal/usecase"

type UploadedImageResponse struct {
	Filename string   `json:"filename"`
	ImageURL string   `json:"image_url"`
	Size     string   `json:"size"`
	Warnings []string `json:"warnings,omitempty"`
}

func FromUploadedImage(u usecase.UploadedImage) UploadedImageResponse {
	return UploadedImageResponse{Filename: u.Filename, ImageURL: u.URL, Size: u.Size, Warnings: u.Warnings}
}
