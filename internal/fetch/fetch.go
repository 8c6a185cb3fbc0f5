// Package fetch retrieves a single object from an object store (or local disk)
// and decodes it as UTF-8 text.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/KaramelBytes/salesreport-cli/internal/logging"
)

// ErrInvalidUTF8 indicates the object body is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Fetcher downloads one object per call.
type Fetcher struct {
	// Timeout bounds the whole download; 0 means none.
	Timeout time.Duration
	Log     logging.Logger
}

// Fetch reads src fully and returns Content, or Unavailable on any failure.
func (f *Fetcher) Fetch(ctx context.Context, src Source) Result {
	log := f.Log
	if log == nil {
		log = logging.NoOpLogger{}
	}
	name := src.String()
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	start := time.Now()
	body, err := src.Open(ctx)
	if err != nil {
		log.Debug("fetch failed", "source", name, "error", err)
		return Unavailable{Source: name, Reason: err}
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		log.Debug("read failed", "source", name, "error", err)
		return Unavailable{Source: name, Reason: fmt.Errorf("read body: %w", err)}
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return Unavailable{Source: name, Reason: ErrInvalidUTF8}
	}
	log.Debug("fetched object", "source", name, "bytes", len(data), "duration", time.Since(start))
	return Content{Source: name, Text: string(data)}
}
