// file: controllers/answer_log_controller.go
package controllers

import (
	"QRHunt/database"
	"QRHunt/models"
	"QRHunt/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetAnswerLogs 管理员查询答题日志，支持按队伍、二维码、判定结果筛选
func GetAnswerLogs(c *gin.Context) {
	type LogDetail struct {
		ID        uint64    `json:"id"`
		TeamID    uint32    `json:"team_id"`
		TeamName  string    `json:"team_name"`
		QRValue   string    `json:"qr_value"`
		QRNumber  string    `json:"qr_number"`
		Answer    string    `json:"answer"`
		IsCorrect bool      `json:"is_correct"`
		Points    int       `json:"points"`
		Timestamp time.Time `json:"timestamp"`
	}

	db := database.DB.Table("qrhunt_answer a").
		Select("a.id, a.team_id, t.team_name, a.qr_value, q.number as qr_number, a.answer, a.is_correct, a.points, a.timestamp").
		Joins("LEFT JOIN qrhunt_team t ON a.team_id = t.id").
		Joins("LEFT JOIN qrhunt_qrcode q ON a.qr_code_id = q.id")

	if teamID := c.Query("team_id"); teamID != "" {
		db = db.Where("a.team_id = ?", teamID)
	}
	if qrValue := c.Query("qr_value"); qrValue != "" {
		db = db.Where("a.qr_value = ?", qrValue)
	}
	if correct := c.Query("correct"); correct != "" {
		db = db.Where("a.is_correct = ?", correct == "1" || correct == "true")
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var results []LogDetail
	if err := db.Order("a.timestamp desc").Limit(limit).Find(&results).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load answer logs")
		return
	}

	utils.Success(c, gin.H{"answers": results})
}

// GetTeamAnswers 管理员查询单支队伍的答题历史，按时间升序
func GetTeamAnswers(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil || teamID <= 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid team ID format")
		return
	}

	var answers []models.Answer
	if err := database.DB.Where("team_id = ?", teamID).
		Order("timestamp asc").Find(&answers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load team answers")
		return
	}

	utils.Success(c, gin.H{"answers": answers})
}
