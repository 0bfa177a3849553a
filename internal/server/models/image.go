package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cardboard/internal/common"
)

// MaxImageSize caps uploaded card images and avatars.
const MaxImageSize = 5 << 20

var imageTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
}

// Image is an uploaded picture travelling from the client to storage.
type Image struct {
	Ext         string
	ContentType string
	Data        []byte
}

// Validate lower-cases Ext, fills a missing ContentType and enforces the
// allowed formats and size.
func (i *Image) Validate() error {
	i.Ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(i.Ext), "."))
	ct, ok := imageTypes[i.Ext]
	if !ok {
		return fmt.Errorf("%w: unsupported image type %q", common.ErrorValidation, i.Ext)
	}
	if i.ContentType == "" {
		i.ContentType = ct
	}
	if len(i.Data) == 0 {
		return fmt.Errorf("%w: image is empty", common.ErrorValidation)
	}
	if len(i.Data) > MaxImageSize {
		return fmt.Errorf("%w: image exceeds %d bytes", common.ErrorValidation, MaxImageSize)
	}
	return nil
}
