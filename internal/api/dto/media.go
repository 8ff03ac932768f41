package dto

// MediaTempMetadata 上传后暂存在 Redis 的图片元信息，供清理任务判定过期
type MediaTempMetadata struct {
	MimeType  string `json:"mimeType"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt int64  `json:"createdAt"`
}

type MediaUploadDTO struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Mime     string `json:"mime"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Original string `json:"original"`
}
