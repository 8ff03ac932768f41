package handler

import (
	"Herald/internal/api/dto"
	"Herald/internal/pkg/consts"
	"Herald/internal/pkg/minio"
	"Herald/internal/pkg/redis"
	"Herald/internal/pkg/response"
	"Herald/internal/pkg/util"
	"Herald/internal/service"
	"bytes"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload 接收帖子配图，超宽图片压缩后入库，先记入临时表等待帖子发布时转正
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	data, width, height, err := util.NormalizeImage(reader, contentType)
	if err != nil {
		log.WarnContext(c.Request.Context(), "图片处理失败", "filename", file.Filename, "err", err)
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "图片上传对象存储失败", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	meta := dto.MediaTempMetadata{
		MimeType:  contentType,
		Width:     width,
		Height:    height,
		CreatedAt: time.Now().Unix(),
	}
	metaBytes, _ := json.Marshal(meta)
	_ = redis.HSet(c.Request.Context(), consts.MediaTempKey, fileKey, string(metaBytes))

	log.InfoContext(c.Request.Context(), "media upload success", "fileKey", fileKey, "type", contentType)
	response.Success(c, &dto.MediaUploadDTO{
		URL:      minio.GetPublicURL(fileKey),
		Key:      fileKey,
		Mime:     contentType,
		Width:    width,
		Height:   height,
		Original: file.Filename,
	})
}
