package redis

import (
	"strconv"
	"time"
)

// 刷新令牌存储
// key: foodie:refresh_token:<tokenID>，value: 用户 ID
// 令牌吊销即删除对应键，过期由 Redis TTL 负责

const refreshTokenKeyPrefix = "foodie:refresh_token:"

// SaveRefreshToken 保存刷新令牌，expiry 后自动过期
func SaveRefreshToken(tokenID string, userID uint, expiry time.Duration) error {
	key := refreshTokenKeyPrefix + tokenID
	return SetKeyEx(key, strconv.FormatUint(uint64(userID), 10), expiry)
}

// GetRefreshTokenUser 查询刷新令牌对应的用户 ID
// 令牌不存在（已吊销或已过期）时 ok 为 false
func GetRefreshTokenUser(tokenID string) (userID uint, ok bool, err error) {
	value, err := GetKey(refreshTokenKeyPrefix + tokenID)
	if err != nil {
		return 0, false, err
	}
	if value == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}

// RevokeRefreshToken 吊销刷新令牌
func RevokeRefreshToken(tokenID string) error {
	return DelKey(refreshTokenKeyPrefix + tokenID)
}
