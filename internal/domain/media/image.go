// Package media validates image files before they are sent to the backend
// and renders the small preview shown next to the upload form.
package media

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

const (
	MaxFileSize  int64 = 10 * 1024 * 1024
	PreviewWidth       = 200
)

var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var allowedMIMETypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}

// ValidationError lists every problem found in one file.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid image: " + strings.Join(e.Problems, ", ")
}

// Image is a file that passed validation.
type Image struct {
	Filename string
	MIMEType string
	Size     int64
	Width    int
	Height   int
	Data     []byte
	// Preview is a JPEG thumbnail PreviewWidth pixels wide.
	Preview  []byte
	Warnings []string
}

// Validate checks extension, sniffed content type, size and that the content decodes.
// A content type outside the allowed list is only a warning when the extension is valid.
func Validate(filename string, data []byte) (*Image, error) {
	var problems, warnings []string

	ext := strings.ToLower(filepath.Ext(filename))
	extOK := contains(allowedExtensions, ext)
	if !extOK {
		problems = append(problems, "file type not allowed, allowed extensions: "+strings.Join(allowedExtensions, ", "))
	}

	size := int64(len(data))
	if size == 0 {
		problems = append(problems, "file is empty")
	}
	if size > MaxFileSize {
		problems = append(problems, fmt.Sprintf("file too large, max size: %dMB", MaxFileSize/(1024*1024)))
	}

	detected := mimetype.Detect(data)
	mimeType := detected.String()
	if !isAllowedMIME(detected) {
		if extOK {
			warnings = append(warnings, fmt.Sprintf("content type %s does not match extension %s", mimeType, ext))
		} else {
			problems = append(problems, "content type not allowed, allowed types: "+strings.Join(allowedMIMETypes, ", "))
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ValidationError{Problems: []string{"file is not a readable image"}}
	}

	var buf bytes.Buffer
	thumb := imaging.Resize(img, PreviewWidth, 0, imaging.Lanczos)
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}

	bounds := img.Bounds()
	return &Image{
		Filename: filepath.Base(filename),
		MIMEType: mimeType,
		Size:     size,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Data:     data,
		Preview:  buf.Bytes(),
		Warnings: warnings,
	}, nil
}

func isAllowedMIME(m *mimetype.MIME) bool {
	for _, t := range allowedMIMETypes {
		if m.Is(t) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// FormatFileSize renders a byte count as "2.5 MB".
func FormatFileSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := math.Round(float64(n)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
