package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"adminpanel/utils"
	"adminpanel/utils/response"

	"github.com/google/uuid"
)

// maxUploadSize caps uploaded images at 5 MiB.
const maxUploadSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandler persists a single validated image, either to the local
// uploads directory or to R2, depending on configuration.
type UploadHandler struct {
	Dir     string
	Storage string // "local" or "r2"
}

type uploadResult struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	URL      string `json:"url"`
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		response.Error(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	if header.Size > maxUploadSize {
		response.Error(w, http.StatusBadRequest, "File size must be less than 5MB")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to read file: "+err.Error())
		return
	}
	if len(data) > maxUploadSize {
		response.Error(w, http.StatusBadRequest, "File size must be less than 5MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := uuid.New().String() + ext

	if h.Storage == "r2" {
		url, err := utils.UploadToR2(data, filename, contentType)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "Failed to store file: "+err.Error())
			return
		}
		response.Success(w, http.StatusOK, "File uploaded successfully", &uploadResult{
			Filename: filename,
			Path:     url,
			URL:      url,
		})
		return
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to store file: "+err.Error())
		return
	}
	if err := os.WriteFile(filepath.Join(h.Dir, filename), data, 0o644); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to store file: "+err.Error())
		return
	}

	path := "/uploads/" + filename
	response.Success(w, http.StatusOK, "File uploaded successfully", &uploadResult{
		Filename: filename,
		Path:     path,
		URL:      path,
	})
}
