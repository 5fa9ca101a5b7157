package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/qr-menu-app/config"
	"github.com/yeremiapane/qr-menu-app/utils"
)

type UploadController struct {
	UploadDir string
}

func NewUploadController() *UploadController {
	return &UploadController{UploadDir: "static/uploads"}
}

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// UploadFile -> single image upload for menu items (owner only).
// Extension allow-list plus a 10MB cap; the stored name is prefixed
// with unix nanos so concurrent uploads never collide.
func (uc *UploadController) UploadFile(c *gin.Context) {
	c.Request.ParseMultipartForm(10 << 20)

	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no file part"))
		return
	}
	if file.Filename == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no selected file"))
		return
	}
	if file.Size > 10<<20 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("file too large"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid file type"))
		return
	}

	if err := os.MkdirAll(uc.UploadDir, 0755); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error creating upload directory"))
		return
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst := filepath.Join(uc.UploadDir, filename)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving file"))
		return
	}

	url := fmt.Sprintf("%s/static/uploads/%s", config.BaseURL(), filename)
	utils.InfoLogger.Printf("File uploaded: %s", filename)

	c.JSON(http.StatusOK, gin.H{"url": url})
}
