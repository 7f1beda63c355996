package models

// Blob is a stored object: raw bytes plus the metadata served with them.
type Blob struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	ETag        string `json:"etag"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// UploadResult is returned after an image upload.
type UploadResult struct {
	ImageURL string `json:"imageUrl"`
	Key      string `json:"key"`
}
