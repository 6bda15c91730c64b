package respond

// LoginRespond 用户登录响应
// 使用位置:
//   - internal/service/auth/service.go: Login, RefreshToken
type LoginRespond struct {
	UserId       uint   `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
