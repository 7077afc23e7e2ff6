package comic

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brogergvhs/hqnews/internal/script"
)

var (
	ErrBadState      = errors.New("invalid comic state")
	ErrStateTooLarge = errors.New("comic state too large")
)

// maxStateLen bounds the decoded form field; six panels fit in a few KB.
const maxStateLen = 64 << 10

// EncodeState serializes a result for the download form, so the browser
// carries its own generation between requests. Only what the export reads is
// kept: the full headline is dropped in favour of the capped display title.
func EncodeState(r *GenerationResult) (string, error) {
	exp := *r
	exp.Item.Title = ""
	exp.Warnings = nil

	b, err := json.Marshal(&exp)
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding.EncodeToString(b)
	if len(enc) > maxStateLen {
		return "", fmt.Errorf("%w: size %d", ErrStateTooLarge, len(enc))
	}

	return enc, nil
}

func DecodeState(s string) (*GenerationResult, error) {
	if s == "" || len(s) > maxStateLen {
		return nil, fmt.Errorf("%w: size %d", ErrBadState, len(s))
	}

	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadState, err)
	}

	var r GenerationResult
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadState, err)
	}

	if len(r.Panels) != script.PanelCount {
		return nil, fmt.Errorf("%w: %d panels", ErrBadState, len(r.Panels))
	}
	for i, p := range r.Panels {
		if p.Index != i+1 {
			return nil, fmt.Errorf("%w: panel %d has index %d", ErrBadState, i+1, p.Index)
		}
	}

	return &r, nil
}
