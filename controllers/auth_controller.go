// file: controllers/auth_controller.go
package controllers

import (
	"QRHunt/database"
	"QRHunt/middlewares"
	"QRHunt/models"
	"QRHunt/utils"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTeam 队伍注册，创建后处于未审批状态，等待管理员放行
func RegisterTeam(c *gin.Context) {
	var req struct {
		TeamName   string `json:"teamName" binding:"required"`
		LeaderName string `json:"leaderName" binding:"required"`
		Username   string `json:"username" binding:"required"`
		Password   string `json:"password" binding:"required,min=6"`
		Email      string `json:"email" binding:"omitempty,email"`
		Phone      string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid registration data: "+err.Error())
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	teamName := strings.TrimSpace(req.TeamName)

	var existing models.Team
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Username already exists")
		return
	}
	if err := database.DB.Where("team_name = ?", teamName).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Team name already exists")
		return
	}

	team := models.Team{
		TeamName:   teamName,
		LeaderName: strings.TrimSpace(req.LeaderName),
		Username:   username,
		Password:   req.Password,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
	}
	if err := database.DB.Create(&team).Error; err != nil {
		// 预检查挡不住并发注册，唯一索引冲突在这里兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Error(c, http.StatusBadRequest, "Username or team name already exists")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	utils.Created(c, gin.H{
		"message": "Registration successful. Waiting for admin approval.",
		"teamId":  team.ID,
	})
}

// LoginTeam 队伍登录。
// 库中 active_token 非空时直接拒绝，绝不顶掉已有会话——
// 必须先自行登出或由管理员强制下线。成功后用条件更新占据会话槽，
// 两个并发登录至多一个能写入成功。
func LoginTeam(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Please provide username and password")
		return
	}

	var team models.Team
	err := database.DB.Where("username = ?", strings.ToLower(strings.TrimSpace(req.Username))).First(&team).Error
	if err != nil {
		// 与密码错误保持同一文案，避免用户名枚举
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !team.Approved {
		utils.Error(c, http.StatusForbidden, "Team not approved by admin yet")
		return
	}

	if team.ActiveToken != nil {
		utils.Error(c, http.StatusForbidden,
			"Team is already logged in from another device. Please logout from that device first or contact admin to force logout.")
		return
	}

	if !team.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(team.ID, team.Username, models.RoleTeam)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	result := database.DB.Model(&models.Team{}).
		Where("id = ? AND active_token IS NULL", team.ID).
		Update("active_token", token)
	if result.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}
	if result.RowsAffected == 0 {
		// 并发登录竞争失败：另一端刚刚占下了会话槽
		utils.Error(c, http.StatusForbidden,
			"Team is already logged in from another device. Please logout from that device first or contact admin to force logout.")
		return
	}

	utils.Success(c, gin.H{
		"token": token,
		"team": gin.H{
			"id":         team.ID,
			"teamName":   team.TeamName,
			"leaderName": team.LeaderName,
			"score":      team.Score,
		},
	})
}

// LoginAdmin 管理员登录。管理员允许多端并发会话，只更新最后登录时间
func LoginAdmin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Please provide username and password")
		return
	}

	var admin models.Admin
	if err := database.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !admin.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	now := time.Now()
	database.DB.Model(&admin).Update("last_login", now)

	token, err := utils.GenerateToken(admin.ID, admin.Username, models.RoleAdmin)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.Success(c, gin.H{
		"token": token,
		"admin": gin.H{
			"username": admin.Username,
			"email":    admin.Email,
			"role":     admin.Role,
		},
	})
}

// LogoutTeam 自助登出：无条件清空 active_token，天然幂等
func LogoutTeam(c *gin.Context) {
	claims := middlewares.GetClaims(c)
	if claims == nil || claims.Role != models.RoleTeam {
		utils.Error(c, http.StatusForbidden, "Team access required")
		return
	}

	if err := database.DB.Model(&models.Team{}).
		Where("id = ?", claims.ID).
		Update("active_token", nil).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

// ForceLogoutTeam 管理员强制下线：唯一能救回"卡死"会话的途径
// （客户端崩溃没调 logout 时，active_token 会一直占用到 Token 过期）
func ForceLogoutTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil || teamID <= 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid team ID format")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Team not found in database")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Force logout failed")
		return
	}

	if err := database.DB.Model(&team).Update("active_token", nil).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Force logout failed")
		return
	}

	utils.Success(c, gin.H{
		"message": "Team " + team.TeamName + " has been forced logged out",
	})
}
