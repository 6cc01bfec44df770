// file: controllers/team_controller.go
package controllers

import (
	"QRHunt/database"
	"QRHunt/models"
	"QRHunt/services"
	"QRHunt/utils"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 扫码/答题流程里的业务错误，事务闭包返回后统一映射 HTTP 状态码
var (
	errQRNotFound     = errors.New("Invalid QR code")
	errScanLimit      = errors.New("QR code scan limit reached")
	errAlreadyScanned = errors.New("QR code already scanned by your team")
	errAlreadyAnswer  = errors.New("Already answered this question")
)

func scanErrorStatus(err error) int {
	switch {
	case errors.Is(err, errQRNotFound):
		return http.StatusNotFound
	case errors.Is(err, errScanLimit):
		return http.StatusForbidden
	case errors.Is(err, errAlreadyScanned), errors.Is(err, errAlreadyAnswer):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// mustGetTeam 读取 TeamAuthMiddleware 写入的队伍记录
func mustGetTeam(c *gin.Context) *models.Team {
	teamAny, exists := c.Get("team")
	if !exists {
		return nil
	}
	team, _ := teamAny.(*models.Team)
	return team
}

// GetRounds 返回所有已配置位置提示的轮次，升序
func GetRounds(c *gin.Context) {
	var hints []models.LocationHint
	if err := database.DB.Order("round asc").Find(&hints).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load rounds")
		return
	}

	rounds := make([]int, 0, len(hints))
	for _, h := range hints {
		rounds = append(rounds, h.Round)
	}

	utils.Success(c, gin.H{"rounds": rounds})
}

// GetLocationHints 返回指定轮次的位置提示，没有配置时返回空列表
func GetLocationHints(c *gin.Context) {
	round, err := strconv.Atoi(c.Param("round"))
	if err != nil || round < 1 {
		utils.Error(c, http.StatusBadRequest, "Invalid round number")
		return
	}

	var hint models.LocationHint
	if err := database.DB.Where("round = ?", round).First(&hint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Success(c, gin.H{"hints": []string{}})
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to load hints")
		return
	}

	utils.Success(c, gin.H{"hints": hint.Hints})
}

// ScanQR 扫码领题。
// 整个判定在一个事务里完成，二维码行加 FOR UPDATE 锁，
// 上限检查和计数自增不会被并发扫码穿插。
// 计数自增后不回退：即使该队此后不作答，这次扫码也永久消耗一个名额。
func ScanQR(c *gin.Context) {
	team := mustGetTeam(c)
	if team == nil {
		utils.Error(c, http.StatusForbidden, "Team access required")
		return
	}

	var req struct {
		QRValue string `json:"qrValue" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "QR value is required")
		return
	}

	var qr models.QRCode
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("value = ? AND active = ?", req.QRValue, true).
			First(&qr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errQRNotFound
			}
			return err
		}

		if qr.Scans >= qr.MaxScans {
			return errScanLimit
		}

		// 答题记录是"本队已尝试过"的持久标记，扫过并答过的码不能重扫
		var count int64
		if err := tx.Model(&models.Answer{}).
			Where("team_id = ? AND qr_value = ?", team.ID, req.QRValue).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errAlreadyScanned
		}

		return tx.Model(&qr).UpdateColumn("scans", gorm.Expr("scans + ?", 1)).Error
	})
	if err != nil {
		status := scanErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.Error(c, status, "Scan failed")
			return
		}
		utils.Error(c, status, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"question":     qr.Question,
		"questionLink": qr.QuestionLink,
		"time":         qr.Time,
		"points":       qr.Points,
		"queimagename": qr.QueImageName,
		"qrNumber":     qr.Number,
	})
}

// SubmitAnswer 提交答案。
// 先写入不可变的答题记录——(team_id, qr_value) 唯一索引的冲突
// 是"已答过"的权威信号，并发的第二次提交在插入时即失败，
// 不可能走到后面的加分。加分是单条原子 score = score + ? 更新。
func SubmitAnswer(c *gin.Context) {
	team := mustGetTeam(c)
	if team == nil {
		utils.Error(c, http.StatusForbidden, "Team access required")
		return
	}

	var req struct {
		QRValue string `json:"qrValue" binding:"required"`
		Answer  string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "QR value and answer are required")
		return
	}

	var isCorrect bool
	var points int
	var correctAnswer string

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var qr models.QRCode
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("value = ? AND active = ?", req.QRValue, true).
			First(&qr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errQRNotFound
			}
			return err
		}

		isCorrect = utils.AnswerMatches(req.Answer, qr.Answer)
		points = 0
		if isCorrect {
			points = qr.Points
		}
		correctAnswer = qr.Answer

		answer := models.Answer{
			TeamID:    team.ID,
			QRValue:   req.QRValue,
			QRCodeID:  qr.ID,
			Answer:    strings.TrimSpace(req.Answer),
			IsCorrect: isCorrect,
			Points:    points,
		}
		if err := tx.Create(&answer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errAlreadyAnswer
			}
			return err
		}

		if isCorrect {
			if err := tx.Model(&models.Team{}).
				Where("id = ?", team.ID).
				UpdateColumn("score", gorm.Expr("score + ?", points)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		status := scanErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.Error(c, status, "Failed to submit answer")
			return
		}
		utils.Error(c, status, err.Error())
		return
	}

	if isCorrect {
		services.InvalidateLeaderboardCache()
		utils.Success(c, gin.H{
			"isCorrect": true,
			"points":    points,
		})
		return
	}

	// 答错才回显正确答案；答对路径只确认成功
	utils.Success(c, gin.H{
		"isCorrect":     false,
		"points":        0,
		"correctAnswer": correctAnswer,
	})
}

// GetTeamScore 查询本队当前得分
func GetTeamScore(c *gin.Context) {
	team := mustGetTeam(c)
	if team == nil {
		utils.Error(c, http.StatusForbidden, "Team access required")
		return
	}

	// 重新读取，避免返回中间件缓存的旧分数
	var fresh models.Team
	if err := database.DB.First(&fresh, team.ID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Team not found")
		return
	}

	utils.Success(c, gin.H{
		"score":    fresh.Score,
		"teamName": fresh.TeamName,
	})
}

// GetLeaderboard 队伍视角排行榜，最多 100 名
func GetLeaderboard(c *gin.Context) {
	entries, err := services.GetLeaderboard(100, false)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}
	utils.Success(c, gin.H{"teams": entries})
}
