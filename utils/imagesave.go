package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// SaveImageWithThumb stores the uploaded image under dir and writes a
// resized JPEG thumbnail next to it under dir/thumb. Returns the saved
// file name and the thumbnail name.
func SaveImageWithThumb(file multipart.File, header *multipart.FileHeader, dir string, thumbWidth int) (string, string, error) {
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image %q: %w", header.Filename, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)
	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", "", fmt.Errorf("failed to save image: %w", err)
	}
	if _, err := out.Write(buf); err != nil {
		out.Close()
		return "", "", fmt.Errorf("failed to write image: %w", err)
	}
	out.Close()

	thumbDir := filepath.Join(dir, "thumb")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return name, "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	thumbImg := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	thumbName := name[:len(name)-len(filepath.Ext(name))] + ".jpg"
	tout, err := os.Create(filepath.Join(thumbDir, thumbName))
	if err != nil {
		return name, "", fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	defer tout.Close()

	if err := jpeg.Encode(tout, thumbImg, &jpeg.Options{Quality: 85}); err != nil {
		return name, "", fmt.Errorf("failed to encode thumbnail JPEG: %w", err)
	}

	return name, thumbName, nil
}
