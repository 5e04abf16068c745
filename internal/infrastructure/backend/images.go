package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"import_admin/internal/domain/entities"
)

// UploadImage posts the file as multipart form field "file".
func (c *Client) UploadImage(ctx context.Context, importID, filename, contentType string, data []byte) (entities.ImageUpload, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return entities.ImageUpload{}, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return entities.ImageUpload{}, fmt.Errorf("build multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return entities.ImageUpload{}, fmt.Errorf("build multipart: %w", err)
	}

	body, err := c.send(ctx, request{
		op:          "images.upload",
		method:      http.MethodPost,
		path:        escape("imports", importID, "images"),
		body:        &buf,
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return entities.ImageUpload{}, err
	}

	var out entities.ImageUpload
	if err := json.Unmarshal(body, &out); err != nil {
		return entities.ImageUpload{}, &Error{Kind: KindResponse, Operation: "images.upload", Detail: "malformed response body", Err: err}
	}
	return out, nil
}

func (c *Client) DeleteImage(ctx context.Context, importID, filename string) (entities.ImageDelete, error) {
	var out entities.ImageDelete
	err := c.do(ctx, "images.delete", http.MethodDelete, escape("imports", importID, "images", filename), nil, &out)
	return out, err
}
