package rating

type SubmitRatingRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required"`
	ByUserID     string `json:"by_user_id" binding:"required"`
	Stars        int    `json:"stars" binding:"required"`
	Comment      string `json:"comment"`
}

type SubmitRatingResult struct {
	Score   float64 `json:"score"`
	Reviews int     `json:"reviews"`
	Trust   int     `json:"trust"`
}
