package handler

import (
	"Herald/internal/api/dto"
	"Herald/internal/pkg/response"
	"Herald/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// AddComment 追加评论，登录用户会记录 user_id，访客为 0
func (s *CommentHandler) AddComment(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetUint64("user_id")
	comment, err := s.commentSvc.AddComment(c.Request.Context(), postID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
