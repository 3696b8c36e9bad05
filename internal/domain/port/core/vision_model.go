package core

import "context"

// InferenceRequest is a single image plus the instruction to apply to it
type InferenceRequest struct {
	Image       []byte
	MimeType    string
	Instruction string
}

// VisionModel is a vision-capable language model.
// Infer returns the raw text reply; callers parse it.
//
// Possible errors:
//   - errs.UpstreamError: transport or provider failure
//   - context.Canceled: the caller went away
type VisionModel interface {
	Infer(ctx context.Context, req InferenceRequest) (string, error)
	// Name identifies the provider in logs and errors
	Name() string
}
