package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

func (c *HTTPClient) sendMultipart(ctx context.Context, method, path string, p models.Payload, out any) error {
	var buf bytes.Buffer
	contentType, err := encodeMultipart(&buf, p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out)
}

// encodeMultipart writes the payload to w and returns the content type with
// its boundary.
func encodeMultipart(w io.Writer, p models.Payload) (string, error) {
	mw := multipart.NewWriter(w)

	for _, f := range p.Fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	for _, f := range p.Files {
		if err := writeFile(mw, f); err != nil {
			return "", err
		}
	}

	if err := mw.Close(); err != nil {
		return "", err
	}
	return mw.FormDataContentType(), nil
}

func writeFile(mw *multipart.Writer, f models.FormFile) error {
	src, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Field, err)
	}
	defer src.Close()

	part, err := mw.CreateFormFile(f.Field, filepath.Base(f.Path))
	if err != nil {
		return fmt.Errorf("create part %s: %w", f.Field, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy %s: %w", f.Field, err)
	}
	return nil
}
