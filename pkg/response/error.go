package response

import "net/http"

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误分类，code 与 HTTP 状态码保持一致
func Unauthorized(msg string) *BizError { return NewError(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *BizError    { return NewError(http.StatusForbidden, msg) }
func NotFound(msg string) *BizError     { return NewError(http.StatusNotFound, msg) }
func Duplicate(msg string) *BizError    { return NewError(http.StatusConflict, msg) }
func BadRequest(msg string) *BizError   { return NewError(http.StatusBadRequest, msg) }
func Internal(msg string) *BizError     { return NewError(http.StatusInternalServerError, msg) }
