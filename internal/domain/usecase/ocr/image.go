package ocr

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
)

// DecodeImage decodes base64 image data. A data URL prefix such as
// "data:image/png;base64," is accepted and ignored.
func (o *OCRUseCase) DecodeImage(encoded string) (*usecase.Image, error) {
	payload := strings.TrimSpace(encoded)
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		}
	}
	payload = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, payload)

	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", errs.ErrInvalidImage)
	}

	if int64(base64.StdEncoding.DecodedLen(len(payload))) > o.maxImageBytes+3 {
		return nil, fmt.Errorf("%w: limit is %d bytes", errs.ErrImageTooLarge, o.maxImageBytes)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidImage, err)
		}
	}

	return o.ValidateImage(data)
}

// ValidateImage checks the size limit and sniffs the format of raw image bytes
func (o *OCRUseCase) ValidateImage(data []byte) (*usecase.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", errs.ErrInvalidImage)
	}
	if int64(len(data)) > o.maxImageBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", errs.ErrImageTooLarge, len(data), o.maxImageBytes)
	}

	mime := mimetype.Detect(data)
	for m := mime; m != nil; m = m.Parent() {
		if _, ok := o.formats[m.String()]; ok {
			return &usecase.Image{Data: data, MimeType: m.String()}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedImageFormat, mime.String())
}
