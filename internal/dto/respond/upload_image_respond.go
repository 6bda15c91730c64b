package respond

// UploadImageRespond 图片上传响应
// 前端用 upload_url 直接 PUT 图片，再把 object_name 写入菜谱
// 使用位置:
//   - internal/service/recipe/service.go: GetUploadURL
type UploadImageRespond struct {
	ObjectName string `json:"object_name"`
	UploadUrl  string `json:"upload_url"`
}
