package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/MatevzKlancar/phyacc/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrFileTooLarge 文件超过大小上限
var ErrFileTooLarge = errors.New("文件超过大小限制")

// ErrUnsupportedType 不支持的文件类型
var ErrUnsupportedType = errors.New("不支持的文件类型")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Service 项目图片本地存储，文件名随机生成，通过静态路由公开访问
type Service struct {
	dir     string
	baseUrl string
	maxSize int64
}

// NewService 创建存储服务并确保目录存在
func NewService(cfg config.StorageConfig) (*Service, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", cfg.Dir, err)
	}
	return &Service{
		dir:     cfg.Dir,
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		maxSize: cfg.MaxSizeMB * 1024 * 1024,
	}, nil
}

// Dir 存储目录（静态路由挂载用）
func (s *Service) Dir() string {
	return s.dir
}

// SaveImage 保存上传的图片并返回公开URL
func (s *Service) SaveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(s.dir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return s.baseUrl + "/" + filename, nil
}
