package dto

// LikeToggleReq 点赞/取消点赞通用请求
type LikeToggleReq struct {
	Action int `json:"action" binding:"required,oneof=1 2"` // 1:点赞, 2:取消
}

// LikeStateDTO 点赞结果：最新计数与该设备的点赞状态
type LikeStateDTO struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// ViewerLikesDTO 该设备已点赞的帖子 id 集合
type ViewerLikesDTO struct {
	PostIDs []uint64 `json:"post_ids"`
}
