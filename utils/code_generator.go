// file: utils/code_generator.go
package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateQRValue 为批量上传中缺省 value 的二维码生成唯一编码内容
func GenerateQRValue() string {
	part1 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	part2 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	return fmt.Sprintf("QRHUNT{%s-%s}", part1, part2)
}
