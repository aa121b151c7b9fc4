// File: controllers/upload_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"xtrnia/apperr"
	"xtrnia/assets"
	"xtrnia/middleware"
	"xtrnia/services"
)

// multipart envelope allowance on top of the file ceiling
const multipartSlack = 1 << 20

// ---------------- Upload Controller ----------------

type UploadController struct {
	Uploads UploadServiceInterface
}

func NewUploadController(uploads UploadServiceInterface) *UploadController {
	return &UploadController{Uploads: uploads}
}

// accept pulls the "file" form field and runs it through the upload gate.
func (uc *UploadController) accept(c *gin.Context, kind assets.Kind) (*assets.Asset, bool) {
	if limit, err := services.Limit(kind); err == nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartSlack)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			middleware.RespondError(c, apperr.New(apperr.TooLarge, "File size exceeds limit"), "File too large")
			return nil, false
		}
		middleware.RespondError(c, apperr.Validationf("file", "No file uploaded"), "No file uploaded")
		return nil, false
	}

	f, err := header.Open()
	if err != nil {
		middleware.RespondError(c, apperr.Wrap(apperr.Unexpected, "open upload", err), "Failed to read uploaded file")
		return nil, false
	}
	defer f.Close()

	asset, err := uc.Uploads.Accept(c.Request.Context(), kind, services.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	})
	if err != nil {
		middleware.RespondError(c, err, "Failed to upload file")
		return nil, false
	}
	return asset, true
}

// Image stores a competition image.
func (uc *UploadController) Image(c *gin.Context) {
	asset, ok := uc.accept(c, assets.KindImage)
	if !ok {
		return
	}
	middleware.Respond(c, http.StatusOK, gin.H{
		"imageUrl": asset.URL,
		"publicId": asset.ExternalID,
	}, "File uploaded successfully")
}

// Brochure stores a brochure PDF. The record is created separately.
func (uc *UploadController) Brochure(c *gin.Context) {
	asset, ok := uc.accept(c, assets.KindPDF)
	if !ok {
		return
	}
	middleware.Respond(c, http.StatusOK, gin.H{
		"fileUrl":  asset.URL,
		"publicId": asset.ExternalID,
		"fileSize": asset.Size,
	}, "Brochure uploaded successfully")
}
