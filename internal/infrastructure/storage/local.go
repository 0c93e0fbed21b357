package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore 把上传文件落到本地磁盘的一个固定目录下
// 帖子封面存的就是这里返回的路径，静态路由直接按路径对外暴露
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save 先写到一个随机命名的临时文件，再改名补上原始文件的扩展名
// 扩展名取原始文件名最后一个 '.' 之后的部分；文件名里没有 '.' 时
// 整个文件名会被当成扩展名（历史行为，有测试钉死）
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	tmpPath := filepath.Join(s.dir, uuid.NewString())
	dst, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("创建临时文件失败: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("写入上传文件失败: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("关闭临时文件失败: %w", err)
	}

	parts := strings.Split(file.Filename, ".")
	ext := parts[len(parts)-1]
	newPath := tmpPath + "." + ext
	if err := os.Rename(tmpPath, newPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("重命名上传文件失败: %w", err)
	}

	return newPath, nil
}

// Remove 尽力删除，入库失败后回滚封面文件用
func (s *LocalStore) Remove(path string) error {
	return os.Remove(path)
}
