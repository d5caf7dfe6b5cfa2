package relay

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone2mail/internal/mailer"
)

func TestService_SendValidatesBeforeProvider(t *testing.T) {
	tests := []struct {
		name    string
		req     *UploadRequest
		wantErr error
	}{
		{
			name:    "No photo",
			req:     &UploadRequest{RecipientEmail: "user@example.com"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "No email",
			req:     &UploadRequest{Photo: &Photo{Filename: "photo.jpg", MimeType: "image/jpeg", Bytes: jpegBytes(16)}},
			wantErr: ErrMissingFields,
		},
		{
			name:    "Bad email",
			req:     &UploadRequest{RecipientEmail: "user@", Photo: &Photo{Filename: "photo.jpg", MimeType: "image/jpeg", Bytes: jpegBytes(16)}},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "Not an image",
			req:     &UploadRequest{RecipientEmail: "user@example.com", Photo: &Photo{Filename: "a.pdf", MimeType: "application/pdf", Bytes: []byte("%PDF")}},
			wantErr: ErrNotImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := NewService(sender, testFrom)

			err := svc.Send(context.Background(), tt.req, "relay-1")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, sender.callCount())
		})
	}
}

func TestService_SendWrapsProviderError(t *testing.T) {
	cause := &mailer.ProviderError{Provider: "fake", Err: errors.New("quota exceeded")}
	svc := NewService(&fakeSender{err: cause}, testFrom)

	err := svc.Send(context.Background(), &UploadRequest{
		RecipientEmail: "user@example.com",
		Photo:          &Photo{Filename: "photo.jpg", MimeType: "image/jpeg", Bytes: jpegBytes(16)},
	}, "relay-1")

	var pe *mailer.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "fake", pe.Provider)
	assert.Equal(t, "fake", svc.Provider())
}

func TestAttachmentName(t *testing.T) {
	tests := []struct {
		name     string
		original string
		data     []byte
		want     string
	}{
		{"Plain name", "IMG_0001.HEIC", nil, "IMG_0001.HEIC"},
		{"Windows path", `C:\Users\me\IMG_0002.jpg`, nil, "IMG_0002.jpg"},
		{"Unix path", "/sdcard/DCIM/IMG_0003.png", nil, "IMG_0003.png"},
		{"Empty with JPEG bytes", "", jpegBytes(32), "photo.jpg"},
		{"Empty without bytes", "", nil, "photo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attachmentName(tt.original, tt.data))
		})
	}
}
