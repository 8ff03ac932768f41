package handler

import (
	"Herald/internal/api/dto"
	"Herald/internal/pkg/response"
	"Herald/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// ListPosts 帖子列表，支持 ?q= 按标题过滤
func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func parsePostID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("post_id"), 10, 64)
}
