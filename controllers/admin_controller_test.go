// file: controllers/admin_controller_test.go
package controllers

import (
	"QRHunt/models"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllTeams_SearchAndPagination(t *testing.T) {
	r := setupSessionEnv(t)
	adminToken := createAdminWithToken(t)

	createApprovedTeam(t, "nova one", "nova1", "secret-1")
	createApprovedTeam(t, "nova two", "nova2", "secret-2")
	createApprovedTeam(t, "comet", "comet", "secret-3")

	w := jsonRequest(r, http.MethodGet, "/api/admin/teams?search=nova&limit=1&page=1", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total int64         `json:"total"`
		Teams []models.Team `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// total 是过滤后的全量计数，teams 只含当前页
	assert.Equal(t, int64(2), body.Total)
	assert.Len(t, body.Teams, 1)
}

// 入库失败（这里是 value 撞了唯一索引）和字段校验失败必须用
// 不同的状态上报，管理面板才能区分"改了再传"和"稍后重试"
func TestUploadQRCodes_StorageConflictReportedAsError(t *testing.T) {
	r := setupSessionEnv(t)
	adminToken := createAdminWithToken(t)
	seedQRCode(t, "QRHUNT{taken}", "sirius", 50, 10)

	w := jsonRequest(r, http.MethodPost, "/api/admin/qrcodes", adminToken, gin.H{
		"qrcodes": gin.H{
			"clash": gin.H{
				"number":   "2",
				"value":    "QRHUNT{taken}",
				"question": "What color is the sky?",
				"answer":   "blue",
			},
			"missing-answer": gin.H{
				"number":   "3",
				"question": "No answer given",
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count   int `json:"count"`
		Results []struct {
			Key    string `json:"key"`
			Status string `json:"status"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	assert.Equal(t, 0, body.Count)

	statusByKey := make(map[string]string, len(body.Results))
	for _, res := range body.Results {
		statusByKey[res.Key] = res.Status
	}
	assert.Equal(t, "error", statusByKey["clash"])
	assert.Equal(t, "invalid", statusByKey["missing-answer"])
}
