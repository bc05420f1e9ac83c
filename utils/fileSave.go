package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveImage decodes an uploaded image, writes the original, and saves a
// width-bound thumbnail alongside it. Returns the stored filename.
func SaveImage(file multipart.File, header *multipart.FileHeader, folder string, thumbWidth int) (string, error) {
	ext := filepath.Ext(header.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	if err := EnsureDir(folder); err != nil {
		return "", err
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return "", err
	}

	id := GetUUID()
	filename := fmt.Sprintf("%s%s", id, ext)
	if err := imaging.Save(img, filepath.Join(folder, filename)); err != nil {
		return "", err
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	thumbName := fmt.Sprintf("%s_thumb%s", id, ext)
	if err := imaging.Save(thumb, filepath.Join(folder, thumbName)); err != nil {
		return "", err
	}

	return filename, nil
}
