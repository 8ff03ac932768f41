package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUserUsernameExist    = errors.New("用户名已存在")
	ErrPasswordIncorrect    = errors.New("密码错误")
	ErrPostNotFound         = errors.New("帖子不存在")
	ErrTitleTooShort        = errors.New("标题至少5个字符")
	ErrContentTooShort      = errors.New("正文至少20个字符")
	ErrCommentEmpty         = errors.New("评论内容不能为空")
	ErrViewerMissing        = errors.New("缺少设备标识")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	ErrSuggestionSuperseded = errors.New("标签建议请求已被更新的输入取代")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserUsernameExist: BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrTitleTooShort:     BadRequest,
	ErrContentTooShort:   BadRequest,
	ErrCommentEmpty:      BadRequest,
	ErrViewerMissing:     BadRequest,
	ErrFileNotSupported:  BadRequest,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
