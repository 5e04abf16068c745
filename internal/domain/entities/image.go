package entities

// ImageUpload is the backend answer to a multipart upload.
type ImageUpload struct {
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

type ImageDelete struct {
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
}
