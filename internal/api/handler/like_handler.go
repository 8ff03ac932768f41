package handler

import (
	"Herald/internal/api/dto"
	"Herald/internal/pkg/response"
	"Herald/internal/service"

	"github.com/gin-gonic/gin"
)

// HeaderViewerID 浏览器侧生成并保存的匿名设备标识
const HeaderViewerID = "X-Viewer-ID"

type LikeHandler struct {
	likeSvc service.LikeService
}

func NewLikeHandler(likeSvc service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeSvc: likeSvc,
	}
}

func (s *LikeHandler) Toggle(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.LikeToggleReq
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.likeSvc.Toggle(c.Request.Context(), c.GetHeader(HeaderViewerID), postID, req.Action == 1)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *LikeHandler) GetViewerLikes(c *gin.Context) {
	likes, err := s.likeSvc.GetViewerLikes(c.Request.Context(), c.GetHeader(HeaderViewerID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, likes)
}
