package logic

import "errors"

// ErrNoWalletsAvailable 钱包池耗尽，平台暂时无法接收新项目
var ErrNoWalletsAvailable = errors.New("平台暂时无法接收新项目，请稍后再试")

// ErrNotCreator 操作仅限项目创建者
var ErrNotCreator = errors.New("仅项目创建者可以执行此操作")

// ValidationError 用户输入校验错误
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 创建输入校验错误
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError 判断是否为输入校验错误
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
