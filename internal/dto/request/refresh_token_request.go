package request

// RefreshTokenRequest 刷新令牌请求
// 使用位置:
//   - internal/handler/auth_handler.go: RefreshToken, Logout
//   - internal/service/auth/service.go: RefreshToken, Logout
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
