package api

import (
	"Herald/internal/api/middleware"
	"Herald/internal/pkg/consts"
	"Herald/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 动态订阅走 WebSocket，匿名可连
		apiGroup.GET("/feed", group.FeedHandler.Subscribe)

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			// 读接口匿名开放
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.GET("/:post_id/comments", group.CommentHandler.ListComments)

			// 评论与点赞匿名开放，登录用户的评论会带上身份
			commentGroup := postGroup.Group("")
			commentGroup.Use(middleware.AuthOptionalMiddleware())
			{
				commentGroup.POST("/:post_id/comments", group.CommentHandler.AddComment)
			}
			postGroup.POST("/:post_id/like", group.LikeHandler.Toggle)

			// 写接口仅管理员
			adminGroup := postGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.PostHandler.CreatePost)
				adminGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			}
		}

		viewerGroup := apiGroup.Group("/viewer")
		{
			viewerGroup.GET("/likes", group.LikeHandler.GetViewerLikes)
		}

		tagGroup := apiGroup.Group("/tags")
		tagGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			tagGroup.POST("/suggest", group.TagHandler.Suggest)
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
