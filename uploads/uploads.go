// Package uploads stores design and avatar images on local disk. The page
// scripts POST the file here before submitting their form, then send only
// the returned URL onward.
package uploads

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"stytchup/utils"
)

const (
	maxUploadBytes = 8 << 20
	thumbWidth     = 300
)

type Handlers struct {
	Dir string
}

// Image accepts a single multipart "image" file, saves a JPEG original and
// a 300px-wide thumbnail, and returns their URLs.
func (h *Handlers) Image(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "file too large or malformed upload")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	imageURL, thumbURL, err := h.save(file)
	if err != nil {
		log.Println("image upload:", err)
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "could not process image")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"imageUrl":     imageURL,
		"thumbnailUrl": thumbURL,
	})
}

func (h *Handlers) save(src multipart.File) (string, string, error) {
	img, err := imaging.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	id := uuid.NewString()
	name := id + ".jpg"
	thumbDir := filepath.Join(h.Dir, "thumb")

	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dirs: %w", err)
	}

	if err := imaging.Save(img, filepath.Join(h.Dir, name)); err != nil {
		return "", "", fmt.Errorf("save original: %w", err)
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, name)); err != nil {
		return "", "", fmt.Errorf("save thumbnail: %w", err)
	}

	return "/uploads/" + name, "/uploads/thumb/" + name, nil
}
