package handler

import (
	"errors"
	"net/http"

	"github.com/MatevzKlancar/phyacc/internal/logger"
	"github.com/MatevzKlancar/phyacc/internal/logic"
	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// HandleError 按错误类型映射HTTP状态码：
// 输入校验错误400，非创建者403，记录不存在404，钱包池耗尽503，其余按存储错误500。
func HandleError(c *gin.Context, err error) {
	switch {
	case logic.IsValidationError(err):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, logic.ErrNotCreator):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrNoWalletsAvailable):
		ErrorResponse(c, http.StatusServiceUnavailable, err.Error())
	default:
		logger.Error("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		ErrorResponse(c, http.StatusInternalServerError, "服务异常，请稍后再试")
	}
}
