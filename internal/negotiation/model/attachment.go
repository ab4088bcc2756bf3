package model

import "mindi/pkg/errors"

type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentDocument AttachmentType = "document"
	AttachmentVoice    AttachmentType = "voice"
)

// Attachment is metadata only; bytes live in the external content store and
// are fetched by id. The type field closes the union: each variant has its
// own required fields.
type Attachment struct {
	ID       string         `json:"id"`
	Type     AttachmentType `json:"type"`
	Filename string         `json:"filename"`
	Size     int64          `json:"size"`

	// image / document
	MimeType string `json:"mime_type,omitempty"`
	// voice
	DurationSeconds int `json:"duration_seconds,omitempty"`
}

func (a Attachment) Validate() error {
	if a.ID == "" {
		return errors.InvalidArg("attachment id is required")
	}
	if a.Size <= 0 {
		return errors.InvalidArg("attachment size must be positive")
	}
	switch a.Type {
	case AttachmentImage, AttachmentDocument:
		if a.MimeType == "" {
			return errors.InvalidArg("attachment mime type is required")
		}
	case AttachmentVoice:
		if a.DurationSeconds <= 0 {
			return errors.InvalidArg("voice attachment duration must be positive")
		}
	default:
		return errors.InvalidArg("unknown attachment type")
	}
	if a.Filename == "" {
		return errors.InvalidArg("attachment filename is required")
	}
	return nil
}
