package constants

import "time"

const (
	CHANNEL_SIZE            = 100              // 通道大小
	PRESIGN_UPLOAD_EXPIRY   = 15 * time.Minute // 图片上传链接有效期
	PRESIGN_DOWNLOAD_EXPIRY = 1 * time.Hour    // 图片访问链接有效期
)
