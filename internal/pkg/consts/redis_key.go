package consts

const (
	// ViewerLikedKey 设备维度的已点赞集合，key 后接 viewer id，与 likes_count 解耦
	ViewerLikedKey = "viewer:liked:"
	// MediaTempKey 已上传但尚未挂到帖子上的图片
	MediaTempKey = "media:temp"
	// TokenRevokedKey 已登出 token 的签名
	TokenRevokedKey = "token:revoked:"
	// FeedChannel 帖子/评论/点赞变更事件总线
	FeedChannel = "feed:events"
)
