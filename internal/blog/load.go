package blog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"go-portfolio/internal/model"
)

// articlesFile 为文章 YAML 文件的顶层结构。
type articlesFile struct {
	Articles []model.Article `yaml:"articles"`
}

// LoadYAML 读取文章文件；path 为空时返回内置文章。
func LoadYAML(path string) ([]model.Article, error) {
	if path == "" {
		return DefaultArticles(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open articles %s: %w", path, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read articles %s: %w", path, err)
	}
	var af articlesFile
	if err := yaml.Unmarshal(b, &af); err != nil {
		return nil, fmt.Errorf("unmarshal articles %s: %w", path, err)
	}
	return af.Articles, nil
}

// Open 读取文章文件并构造 Store。
func Open(path string) (*Store, error) {
	list, err := LoadYAML(path)
	if err != nil {
		return nil, err
	}
	s, err := New(list)
	if err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}
	return s, nil
}
