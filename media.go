package portfolio

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
	maxUploadSize = 50 << 20 // 50MB, enough for short videos
)

// mediaCategories are the accepted upload categories.
var mediaCategories = map[string]bool{
	"general":    true,
	"profile":    true,
	"hero":       true,
	"background": true,
	"blog":       true,
	"video":      true,
}

func (a *App) handleMediaList(c echo.Context) error {
	fileType := c.QueryParam("file_type")
	if fileType != "" && fileType != "image" && fileType != "video" {
		return validationErr("file_type", "must be image or video")
	}
	assets, err := a.Store.ListMedia(fileType)
	if err != nil {
		return err
	}
	if assets == nil {
		assets = []MediaAsset{}
	}
	return c.JSON(http.StatusOK, assets)
}

func (a *App) handleMediaUpload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return validationErr("file", "required")
	}
	if file.Size > maxUploadSize {
		return validationErr("file", "too large (max 50MB)")
	}

	category := c.FormValue("category")
	if category == "" {
		category = "general"
	}
	if !mediaCategories[category] {
		return validationErr("category", "unknown category")
	}
	description := c.FormValue("description")

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	fileType, err := detectFileType(file, src)
	if err != nil {
		return err
	}

	var filename string
	var data []byte
	switch fileType {
	case "image":
		filename, data, err = processImage(src, file.Filename)
		if err != nil {
			return validationErr("file", "invalid image: "+err.Error())
		}
	case "video":
		data, err = io.ReadAll(src)
		if err != nil {
			return err
		}
		filename = slugifyFilename(file.Filename) + strings.ToLower(filepath.Ext(file.Filename))
	}

	filename, err = a.ensureUniqueFilename(filename)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.Config.UploadsDir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.Config.UploadsDir, filename), data, 0o644); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}

	asset := MediaAsset{
		ID:           uuid.NewString(),
		Filename:     filename,
		OriginalName: file.Filename,
		Path:         "/uploads/" + filename,
		FileType:     fileType,
		Category:     category,
		Size:         int64(len(data)),
		Description:  description,
		UploadedAt:   time.Now().UTC(),
	}
	if err := a.Store.SaveMedia(asset); err != nil {
		// The row is the source of truth for the library; drop the
		// orphaned file rather than leave it unreachable.
		_ = os.Remove(filepath.Join(a.Config.UploadsDir, filename))
		return err
	}
	return c.JSON(http.StatusOK, asset)
}

func (a *App) handleMediaDelete(c echo.Context) error {
	asset, err := a.Store.GetMedia(c.Param("id"))
	if err != nil {
		return err
	}
	// Ignore a missing file; the record is what matters.
	_ = os.Remove(filepath.Join(a.Config.UploadsDir, asset.Filename))
	if err := a.Store.DeleteMedia(asset.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "media deleted"})
}

// detectFileType derives image|video from the declared MIME type,
// sniffing the content when the client did not declare one. Anything
// else is rejected. The reader is rewound before returning.
func detectFileType(file *multipart.FileHeader, src io.ReadSeeker) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		head := make([]byte, 512)
		n, err := src.Read(head)
		if err != nil && err != io.EOF {
			return "", err
		}
		contentType = http.DetectContentType(head[:n])
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image", nil
	case strings.HasPrefix(contentType, "video/"):
		return "video", nil
	}
	return "", validationErr("file", "unsupported type "+contentType)
}

// processImage decodes an image, resizes it to maxImageWidth if wider,
// and re-encodes it as JPEG. Returns the stored filename and bytes.
func processImage(src io.Reader, originalName string) (string, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return slugifyFilename(originalName) + ".jpg", buf.Bytes(), nil
}

// slugifyFilename converts a filename (without extension) to a
// URL-safe slug.
func slugifyFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	slug := Slugify(base)
	if slug == "" {
		slug = "upload"
	}
	return slug
}

// ensureUniqueFilename appends a counter while the candidate filename
// exists on disk or in the media table.
func (a *App) ensureUniqueFilename(filename string) (string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	candidate := filename
	for counter := 1; ; counter++ {
		taken, err := a.Store.mediaFilenameTaken(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			if _, err := os.Stat(filepath.Join(a.Config.UploadsDir, candidate)); os.IsNotExist(err) {
				return candidate, nil
			}
		}
		candidate = fmt.Sprintf("%s-%d%s", base, counter+1, ext)
	}
}
