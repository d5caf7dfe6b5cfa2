package relay

// UploadRequest is one submission of the upload form. It only lives for the
// duration of the request that carried it.
type UploadRequest struct {
	RecipientEmail string `validate:"required,email"`
	Photo          *Photo `validate:"required"`
}

// Photo is the uploaded file. MimeType is sniffed from the content and is
// empty for a zero-byte upload.
type Photo struct {
	Filename string `validate:"required"`
	MimeType string `validate:"omitempty,imagemime"`
	Bytes    []byte
}

// SendResult is the JSON body returned to the form.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
