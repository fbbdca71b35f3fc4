package app

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

// BindMultipartFile opens the form file stored under key.
func BindMultipartFile(c echo.Context, key string) (multipart.File, error) {
	header, err := c.FormFile(key)
	if err != nil {
		return nil, fmt.Errorf("reading multipart form: %w", err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening form file: %w", err)
	}

	return f, nil
}

// DetectContentType returns the MIME type of input and a new reader
// containing the whole data from input.
func DetectContentType(input io.Reader) (string, io.Reader, error) {
	// header will store the bytes mimetype uses for detection.
	header := bytes.NewBuffer(nil)

	// After DetectReader, the data read from input is copied into header.
	mtype, err := mimetype.DetectReader(io.TeeReader(input, header))
	if err != nil {
		return "", nil, err
	}

	// Concatenate back the header to the rest of the file.
	recycled := io.MultiReader(header, input)

	return mtype.String(), recycled, err
}
