package respond

// RegisterRespond 用户注册响应
// 使用位置:
//   - internal/service/auth/service.go: Register
type RegisterRespond struct {
	UserId uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
