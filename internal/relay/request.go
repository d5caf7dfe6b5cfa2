package relay

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"

	"phone2mail/internal/validation"
)

const (
	emailField = "email"
	photoField = "photo"

	// room for the email part and multipart framing on top of the photo
	formOverhead = 1 << 20
	maxMemory    = 32 << 20
)

// ParseUploadRequest reads the email and photo parts of a multipart request.
// A missing part yields ErrMissingFields; a photo larger than maxSize
// yields ErrPhotoTooLarge.
func ParseUploadRequest(w http.ResponseWriter, r *http.Request, maxSize int64) (*UploadRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+formOverhead)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, ErrPhotoTooLarge
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("Error removing multipart temp files")
		}
	}()

	req := &UploadRequest{
		RecipientEmail: strings.TrimSpace(r.PostFormValue(emailField)),
	}

	file, header, err := r.FormFile(photoField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	defer func(file multipart.File) {
		if err := file.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing photo")
		}
	}(file)

	if header.Size > maxSize {
		return nil, ErrPhotoTooLarge
	}

	photo, err := readPhoto(file, header)
	if err != nil {
		return nil, err
	}
	req.Photo = photo

	return req, nil
}

func readPhoto(file io.Reader, header *multipart.FileHeader) (*Photo, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading photo: %w", err)
	}

	photo := &Photo{Bytes: data}
	if len(data) > 0 {
		photo.MimeType = mimetype.Detect(data).String()
	}
	photo.Filename = attachmentName(header.Filename, data)

	return photo, nil
}

// attachmentName strips any client supplied directories and falls back to
// "photo" plus the sniffed extension.
func attachmentName(original string, data []byte) string {
	name := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	if name != "." && name != "/" && name != "" {
		return name
	}
	if len(data) == 0 {
		return "photo"
	}
	return "photo" + mimetype.Detect(data).Extension()
}

// Validate checks field presence first, then the field formats.
func (req *UploadRequest) Validate() error {
	if req.RecipientEmail == "" || req.Photo == nil {
		return ErrMissingFields
	}

	if err := validation.Validate(req); err != nil {
		for _, fieldErr := range validation.FormatError(err) {
			switch fieldErr.Field {
			case "recipientemail":
				return fmt.Errorf("%w: %s", ErrInvalidEmail, fieldErr.Error)
			case "mimetype":
				return fmt.Errorf("%w: %s", ErrNotImage, fieldErr.Error)
			}
		}
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	return nil
}
