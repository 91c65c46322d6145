package dto

// CreateTalkRequest arrives either as JSON or as multipart form fields next
// to an optional avatar file. Scripts are capped at 1000 characters.
type CreateTalkRequest struct {
	Script  string `json:"script" form:"script" binding:"required,max=1000"`
	VoiceID string `json:"voice_id" form:"voice_id"`
	UserID  string `json:"user_id" form:"user_id"`
}
