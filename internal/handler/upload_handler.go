package handler

import (
	"errors"
	"net/http"

	"github.com/MatevzKlancar/phyacc/internal/storage"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	storage *storage.Service
}

func NewUploadHandler(storage *storage.Service) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadImage 上传项目图片，返回公开URL
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "缺少file字段")
		return
	}

	url, err := h.storage.SaveImage(c, file)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrUnsupportedType) {
			ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "上传成功", gin.H{"url": url})
}
