// file: controllers/admin_controller.go
package controllers

import (
	"QRHunt/database"
	"QRHunt/dto"
	"QRHunt/models"
	"QRHunt/services"
	"QRHunt/utils"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPendingTeams 待审批队伍列表，新注册在前
func GetPendingTeams(c *gin.Context) {
	var teams []models.Team
	if err := database.DB.Where("approved = ?", false).
		Order("created_at desc").Find(&teams).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load teams")
		return
	}
	utils.Success(c, gin.H{"teams": teams})
}

// GetAllTeams 全部队伍列表，支持分页和按队名搜索
func GetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	search := c.Query("search")

	var teams []models.Team
	var total int64

	db := database.DB.Model(&models.Team{})
	if search != "" {
		db = db.Where("team_name LIKE ?", "%"+search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load teams")
		return
	}
	if err := db.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&teams).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load teams")
		return
	}

	utils.Success(c, gin.H{
		"total": total,
		"teams": teams,
	})
}

// ApproveTeam 审批队伍。单向开关：false -> true，不提供撤销
func ApproveTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil || teamID <= 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid team ID format")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Team not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to approve team")
		return
	}

	if err := database.DB.Model(&team).Update("approved", true).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to approve team")
		return
	}
	team.Approved = true

	// 新队伍进入排行榜可见范围
	services.InvalidateLeaderboardCache()

	utils.Success(c, gin.H{
		"message": "Team approved successfully",
		"team":    team,
	})
}

// UploadLocationHints 上传/替换某一轮次的位置提示
func UploadLocationHints(c *gin.Context) {
	var req struct {
		Round int      `json:"round" binding:"required,min=1"`
		Hints []string `json:"hints" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Round number and hints array are required")
		return
	}

	var hint models.LocationHint
	err := database.DB.Where("round = ?", req.Round).First(&hint).Error
	if err == nil {
		hint.Hints = req.Hints
		err = database.DB.Save(&hint).Error
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		hint = models.LocationHint{Round: req.Round, Hints: req.Hints}
		err = database.DB.Create(&hint).Error
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to upload location hints")
		return
	}

	utils.Success(c, gin.H{
		"message":      "Location hints uploaded successfully",
		"locationHint": hint,
	})
}

// UploadQRCodes 批量 upsert 二维码，key 为外部主键。
// 每个条目独立处理：部分成功是预期结果而不是错误，
// 返回逐条结果供管理面板展示。缺省 value 的条目由服务端生成编码。
func UploadQRCodes(c *gin.Context) {
	var req dto.UploadQRCodesReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.QRCodes) == 0 {
		utils.Error(c, http.StatusBadRequest, "QR codes object is required")
		return
	}

	results := make([]dto.UploadQRCodeResult, 0, len(req.QRCodes))
	count := 0

	for key, entry := range req.QRCodes {
		entry.Normalize()
		if !entry.Valid() {
			results = append(results, dto.UploadQRCodeResult{Key: key, Status: "invalid"})
			continue
		}
		if entry.Value == "" {
			entry.Value = utils.GenerateQRValue()
		}

		var qr models.QRCode
		err := database.DB.Where("`key` = ?", key).First(&qr).Error
		switch {
		case err == nil:
			qr.Number = entry.Number
			qr.Value = entry.Value
			qr.Question = entry.Question
			qr.QuestionLink = entry.QuestionLink
			qr.Answer = entry.Answer
			qr.Time = entry.Time
			qr.Points = entry.Points
			qr.MaxScans = entry.MaxScans
			qr.QueImageName = entry.QueImageName
			qr.Round = entry.Round
			if err := database.DB.Save(&qr).Error; err != nil {
				results = append(results, dto.UploadQRCodeResult{Key: key, Status: "error"})
				continue
			}
			results = append(results, dto.UploadQRCodeResult{Key: key, Status: "updated", Value: qr.Value})
			count++
		case errors.Is(err, gorm.ErrRecordNotFound):
			qr = models.QRCode{
				Key:          key,
				Number:       entry.Number,
				Value:        entry.Value,
				Question:     entry.Question,
				QuestionLink: entry.QuestionLink,
				Answer:       entry.Answer,
				Time:         entry.Time,
				Points:       entry.Points,
				Scans:        entry.Scans,
				MaxScans:     entry.MaxScans,
				QueImageName: entry.QueImageName,
				Round:        entry.Round,
				Active:       true,
			}
			if err := database.DB.Create(&qr).Error; err != nil {
				results = append(results, dto.UploadQRCodeResult{Key: key, Status: "error"})
				continue
			}
			results = append(results, dto.UploadQRCodeResult{Key: key, Status: "created", Value: qr.Value})
			count++
		default:
			results = append(results, dto.UploadQRCodeResult{Key: key, Status: "error"})
		}
	}

	utils.Success(c, gin.H{
		"message": "QR codes uploaded successfully",
		"count":   count,
		"results": results,
	})
}

// ResetTeamPassword 管理员重置队伍密码。
// 重置作为副作用必须清空 active_token：凭据变更后，
// 旧 Token 不允许继续代表这支队伍操作。
func ResetTeamPassword(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil || teamID <= 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid team ID format")
		return
	}

	var req struct {
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.NewPassword) < 6 {
		utils.Error(c, http.StatusBadRequest, "New password must be at least 6 characters")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Team not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	// Select 指定两列，BeforeSave Hook 检测到 Password 变更后重新哈希
	if err := database.DB.Model(&team).
		Select("Password", "ActiveToken").
		Updates(models.Team{Password: req.NewPassword, ActiveToken: nil}).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	utils.Success(c, gin.H{
		"message": "Team password updated successfully and active sessions revoked",
	})
}

// AdminGetLeaderboard 管理员视角排行榜，带队长和注册时间
func AdminGetLeaderboard(c *gin.Context) {
	entries, err := services.GetLeaderboard(0, true)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}
	utils.Success(c, gin.H{"teams": entries})
}
