// 包 export 负责导出：将内容快照写为 data.json，供渲染层读取。
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"go-portfolio/internal/model"
)

// Stamp 为快照补全 build_id 与生成时间（已有值不覆盖）。
func Stamp(e *model.Export) {
	if e.BuildID == "" {
		e.BuildID = uuid.NewString()
	}
	if e.GeneratedAt.IsZero() {
		e.GeneratedAt = time.Now().UTC()
	}
}

// ToJSON 将快照写入 JSON 文件（带缩进）。先写临时文件再改名，避免渲染层读到半个文件。
func ToJSON(path string, e model.Export) error {
	Stamp(&e)
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		tmp.Close()
		return fmt.Errorf("encode json to %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
