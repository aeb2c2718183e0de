package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	imageMaxDim     = 1600
	imageMaxUpload  = 5 * 1024 * 1024
	imageWebPQuality = 80
)

// ImageExt reports whether the extension belongs to an image we re-encode.
func ImageExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

// CompressToWebP decodes an uploaded image (jpeg/png/webp, sniffed by MIME
// with extension fallback), downscales it keep-aspect to at most
// imageMaxDim, and re-encodes it as lossy WebP.
func CompressToWebP(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > imageMaxUpload {
		return nil, fmt.Errorf("file too large (%d bytes)", fh.Size)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	img, err := decodeImage(buf.Bytes(), fh.Filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > imageMaxDim || b.Dy() > imageMaxDim {
		img = imaging.Fit(img, imageMaxDim, imageMaxDim, imaging.CatmullRom)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: imageWebPQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return out.Bytes(), nil
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// GenerateUniqueFilename builds "<uuid>-<sanitized original>" for storage.
func GenerateUniqueFilename(originalFilename string) string {
	safe := filenameRe.ReplaceAllString(originalFilename, "_")
	return fmt.Sprintf("%s-%s", uuid.New().String(), safe)
}
