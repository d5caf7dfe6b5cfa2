package pages

// UploadPageProps configures the upload form.
type UploadPageProps struct {
	Endpoint string // URL the form posts to
	MaxSize  string // human readable upload limit
}
