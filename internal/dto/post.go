package dto

type PostResponseDTO struct {
	PostID  int    `json:"post_id" example:"1"`
	Title   string `json:"title" example:"Example blog post"`
	Content string `json:"content" example:"Hello! This is a blog post"`
	Views   int64  `json:"views" example:"42"`
}

type ViewResponseDTO struct {
	CurrentViews int64 `json:"current_views" example:"43"`
}
