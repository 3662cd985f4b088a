package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Format is a renderer output format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

var supportedFormats = map[Format]string{
	FormatSVG: "image/svg+xml",
	FormatPNG: "image/png",
}

// ParseFormat validates a caller-supplied format string.
func ParseFormat(raw string) (Format, error) {
	format := Format(raw)
	if _, ok := supportedFormats[format]; !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "'%s'", raw)
	}
	return format, nil
}

// ContentType returns the MIME type associated with the format.
func (f Format) ContentType() string {
	return supportedFormats[f]
}

// RenderRequest is a single renderable document body plus the requested
// output format. The body must be non-empty and the format supported.
type RenderRequest struct {
	Content string
	Format  Format
}

func NewRenderRequest(content string, format Format) (*RenderRequest, error) {
	if _, ok := supportedFormats[format]; !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "'%s'", format)
	}
	if content == "" {
		return nil, errors.New("empty content")
	}
	return &RenderRequest{Content: content, Format: format}, nil
}

// FailureCategory classifies a render failure.
type FailureCategory string

const (
	// FailureInvocation means the renderer could not be started at all,
	// e.g. a missing runtime or artifact.
	FailureInvocation FailureCategory = "invocation"
	// FailureProcessing means the renderer ran but reported an error.
	FailureProcessing FailureCategory = "processing"
)

// RenderFailure carries the diagnostic of a failed render.
type RenderFailure struct {
	Category FailureCategory
	Message  string
}

func (f *RenderFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Category, f.Message)
}

// RenderResult is the outcome of one render operation: either a binary
// payload tagged with its content type, or a failure. Never both.
type RenderResult struct {
	payload     []byte
	contentType string
	failure     *RenderFailure
}

func NewRenderSuccess(payload []byte, contentType string) *RenderResult {
	return &RenderResult{
		payload:     payload,
		contentType: contentType,
	}
}

func NewRenderFailure(category FailureCategory, message string) *RenderResult {
	return &RenderResult{
		failure: &RenderFailure{
			Category: category,
			Message:  message,
		},
	}
}

func (r *RenderResult) Succeeded() bool {
	return r.failure == nil
}

func (r *RenderResult) Payload() []byte {
	return r.payload
}

func (r *RenderResult) ContentType() string {
	return r.contentType
}

func (r *RenderResult) Failure() *RenderFailure {
	return r.failure
}
