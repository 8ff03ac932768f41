package handler

import (
	"Herald/internal/api/dto"
	"Herald/internal/pkg/response"
	"Herald/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{
		tagSvc: tagSvc,
	}
}

// Suggest 根据正文生成标签建议，编辑器每次输入都会请求，服务端负责去抖
func (s *TagHandler) Suggest(c *gin.Context) {
	var req dto.TagSuggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	suggestion, err := s.tagSvc.Suggest(c.Request.Context(), &req)
	if err != nil {
		// 被更新输入取代的请求直接返回空，编辑器只关心最后一次的结果
		if errors.Is(err, service.ErrSuggestionSuperseded) {
			response.Success(c, &dto.TagSuggestDTO{Tags: []string{}})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, suggestion)
}
