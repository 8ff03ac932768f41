package util

import (
	"Herald/internal/pkg/consts"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
)

// GetSafeContentType 以文件头嗅探真实类型，不信任客户端声明的 Content-Type
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// NormalizeImage 解码图片并在超宽时等比缩放到 MaxImageWidth，
// 返回重新编码后的数据与最终尺寸
func NormalizeImage(reader io.Reader, contentType string) ([]byte, int, int, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("图片解码失败: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > consts.MaxImageWidth {
		img = imaging.Resize(img, consts.MaxImageWidth, 0, imaging.Lanczos)
		bounds = img.Bounds()
	}

	format := imaging.JPEG
	switch {
	case strings.Contains(contentType, "png"):
		format = imaging.PNG
	case strings.Contains(contentType, "gif"):
		format = imaging.GIF
	case strings.Contains(contentType, "bmp"):
		format = imaging.BMP
	}

	var out bytes.Buffer
	if err = imaging.Encode(&out, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, 0, 0, fmt.Errorf("图片编码失败: %w", err)
	}
	return out.Bytes(), bounds.Dx(), bounds.Dy(), nil
}
