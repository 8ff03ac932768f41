package wire

import (
	"Herald/internal/api"
	"Herald/internal/api/handler"
	"Herald/internal/job"
	"Herald/internal/pkg/cron"
	"Herald/internal/pkg/llm"
	"Herald/internal/repository"
	"Herald/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 编辑器连续输入的合并窗口
const tagSuggestWindow = time.Second

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	userRepo := repository.NewUserRepo(db)
	userRolesRepo := repository.NewUserRolesRepo(db)
	viewerLikeRepo := repository.NewViewerLikeRepo()

	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(postRepo, commentRepo)
	likeService := service.NewLikeService(postRepo, viewerLikeRepo)
	tagService := service.NewTagService(tagSuggestWindow, llm.SuggestTags)
	userService := service.NewUserService(userRepo, userRolesRepo)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		LikeHandler:    handler.NewLikeHandler(likeService),
		TagHandler:     handler.NewTagHandler(tagService),
		MediaHandler:   handler.NewMediaHandler(),
		FeedHandler:    handler.NewFeedHandler(postService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewMediaCleanupJob())

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
