// file: services/leaderboard_service.go
package services

import (
	"QRHunt/database"
	"QRHunt/models"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// 排行榜缓存有效期设置为较短的 15 秒，保证准实时性；
// 分数或审批状态变化时主动失效
const leaderboardCacheTTL = 15 * time.Second

// 字段名沿用登录响应的 camelCase，老客户端按同一套键名读取
type LeaderboardEntry struct {
	TeamID     uint32    `json:"teamId"`
	TeamName   string    `json:"teamName"`
	LeaderName string    `json:"leaderName,omitempty"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// GetLeaderboard 查询排行榜：仅已审批队伍，按分数降序，
// 同分按 id 升序（即注册先后）保证稳定排序。Redis 读穿缓存。
func GetLeaderboard(limit int, withDetails bool) ([]LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("leaderboard:%d:%t", limit, withDetails)

	if database.RDB != nil {
		val, err := database.RDB.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(val), &entries) == nil {
				return entries, nil
			}
		}
	}

	var teams []models.Team
	q := database.DB.Model(&models.Team{}).
		Where("approved = ?", true).
		Order("score desc, id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&teams).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(teams))
	for _, t := range teams {
		entry := LeaderboardEntry{
			TeamID:   t.ID,
			TeamName: t.TeamName,
			Score:    t.Score,
		}
		if withDetails {
			entry.LeaderName = t.LeaderName
			entry.CreatedAt = t.CreatedAt
		}
		entries = append(entries, entry)
	}

	if database.RDB != nil {
		if jsonData, err := json.Marshal(entries); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, jsonData, leaderboardCacheTTL)
		}
	}

	return entries, nil
}

// InvalidateLeaderboardCache 清空所有排行榜缓存键。
// 得分变化和队伍审批后调用，确保下次查询拿到最新数据。
func InvalidateLeaderboardCache() {
	if database.RDB == nil {
		return
	}
	keys, err := database.RDB.Keys(database.Ctx, "leaderboard:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := database.RDB.Del(database.Ctx, keys...).Err(); err != nil {
		log.Printf("Failed to clear leaderboard cache: %v", err)
	}
}
