package models

// UploadArtifact is a stored upload.
type UploadArtifact struct {
	// OriginalName is the file name sent by the client.
	OriginalName string `json:"original_name"`

	// StoredName is the collision-free sanitized name on disk.
	StoredName string `json:"stored_name"`

	// Path is the absolute location of the file on disk. Never serialized.
	Path string `json:"-"`

	// PublicPath is the URL path the file is served from.
	PublicPath string `json:"path"`

	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// UploadResult is the data returned by the image upload endpoint.
type UploadResult struct {
	Path string `json:"path"`
}
