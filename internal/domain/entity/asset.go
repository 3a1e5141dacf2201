package entity

import "io"

// UploadedAsset is the in-flight representation of one upload: the raw
// content, its media type, and the byte length. It lives for a single
// pipeline invocation and is never persisted as a struct.
type UploadedAsset struct {
	Content   io.Reader
	MediaType string
	Size      int64
}
