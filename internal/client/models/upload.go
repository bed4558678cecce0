package models

// PickedImage is a locally selected photo, pending upload. Path is the local
// reference shown optimistically while the upload is in flight.
type PickedImage struct {
	Path     string
	FileName string
	MIMEType string
	Data     []byte
}

// UploadResult is the transient value produced by the media host in response
// to a raw image payload. It has no identity of its own; it only bridges the
// upload call and the backend profile patch.
type UploadResult struct {
	RemoteURL string
}
