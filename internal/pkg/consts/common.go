package consts

const (
	MimePrefixImage = "image"
)

const (
	RoleAdmin = "ADMIN"
)

const (
	// MaxImageWidth 超过该宽度的图片上传时等比缩小
	MaxImageWidth = 1600
)
