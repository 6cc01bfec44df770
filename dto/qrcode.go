// file: dto/qrcode.go
package dto

import "strings"

// ========== 请求 DTO ==========

// UploadQRCodesReq 批量上传请求体：{"qrcodes": {key: {...}, ...}}
// key 由调用方提供，作为 upsert 的外部主键
type UploadQRCodesReq struct {
	QRCodes map[string]QRCodeEntry `json:"qrcodes" binding:"required"`
}

// QRCodeEntry 单个二维码条目。规范字段沿用历史客户端的 camelCase，
// 同时接受 snake_case 别名（别名 tag 与规范 tag 不重复）
type QRCodeEntry struct {
	Number       string `json:"number"`
	Value        string `json:"value"`
	Question     string `json:"question"`
	QuestionLink string `json:"questionLink"`
	Answer       string `json:"answer"`
	Time         string `json:"time"`
	Points       int    `json:"points"`
	Scans        int    `json:"scans"`
	MaxScans     int    `json:"maxScans"`
	QueImageName string `json:"queimagename"`
	Round        int    `json:"round"`

	// snake_case 别名，仅用于兼容
	QuestionLinkSnake string `json:"question_link"`
	MaxScansSnake     int    `json:"max_scans"`
	QueImageNameSnake string `json:"que_image_name"`
}

// Normalize 归并别名、清洗字段并补默认值
func (e *QRCodeEntry) Normalize() {
	if e.QuestionLink == "" && e.QuestionLinkSnake != "" {
		e.QuestionLink = e.QuestionLinkSnake
	}
	if e.MaxScans == 0 && e.MaxScansSnake != 0 {
		e.MaxScans = e.MaxScansSnake
	}
	if e.QueImageName == "" && e.QueImageNameSnake != "" {
		e.QueImageName = e.QueImageNameSnake
	}

	e.Number = strings.TrimSpace(e.Number)
	e.Value = strings.TrimSpace(e.Value)
	e.Question = strings.TrimSpace(e.Question)
	e.QuestionLink = strings.TrimSpace(e.QuestionLink)
	e.Answer = strings.TrimSpace(e.Answer)
	e.Time = strings.TrimSpace(e.Time)

	if e.Time == "" {
		e.Time = "5"
	}
	if e.Points == 0 {
		e.Points = 50
	}
	if e.MaxScans == 0 {
		e.MaxScans = 10
	}
	if e.Round == 0 {
		e.Round = 1
	}
}

// Valid 条目是否具备入库的最低要求
func (e *QRCodeEntry) Valid() bool {
	return e.Number != "" && e.Question != "" && e.Answer != ""
}

// ========== 响应 DTO ==========

type UploadQRCodeResult struct {
	Key    string `json:"key"`
	Status string `json:"status"` // created / updated / invalid / error
	Value  string `json:"value,omitempty"`
}
