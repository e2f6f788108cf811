// 包 blog 提供文章内存存储：
// - 固定文章集合，按 id/slug/分类查询
// - 按浏览量/日期排序、搜索与分页
// - 仅通过 IncrementViews/ToggleLike 修改计数器（加锁）
package blog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go-portfolio/internal/model"
)

// DefaultLimit 为 Popular/Recent 的默认条数。
const DefaultLimit = 4

// Store 持有文章集合。查询均返回副本，调用方无法绕过计数器操作修改数据。
type Store struct {
	mu       sync.RWMutex
	articles []model.Article
	haystack []string // 与 articles 对齐的检索文本
	byID     map[int]int
}

// New 校验并复制文章集合：id/slug 唯一、分类在固定表中、计数器非负。
func New(articles []model.Article) (*Store, error) {
	s := &Store{
		articles: make([]model.Article, 0, len(articles)),
		haystack: make([]string, 0, len(articles)),
		byID:     make(map[int]int, len(articles)),
	}
	slugs := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		if a.Slug == "" {
			return nil, fmt.Errorf("article %d: slug required", a.ID)
		}
		if _, ok := s.byID[a.ID]; ok {
			return nil, fmt.Errorf("duplicate article id %d", a.ID)
		}
		if _, ok := slugs[a.Slug]; ok {
			return nil, fmt.Errorf("duplicate article slug %q", a.Slug)
		}
		if !knownCategory(a.Category) {
			return nil, fmt.Errorf("article %d: unknown category %q", a.ID, a.Category)
		}
		if a.Views < 0 || a.Likes < 0 {
			return nil, errors.New("article counters must be >= 0")
		}
		s.byID[a.ID] = len(s.articles)
		slugs[a.Slug] = struct{}{}
		s.articles = append(s.articles, clone(a))
		s.haystack = append(s.haystack, searchText(a))
	}
	return s, nil
}

// All 返回全部文章（插入顺序）。
func (s *Store) All() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(nil)
}

// Featured 返回 featured=true 的文章，保持相对顺序。
func (s *Store) Featured() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(a *model.Article) bool { return a.Featured })
}

// BySlug 返回第一个 slug 匹配的文章；未找到时 ok=false。
func (s *Store) BySlug(slug string) (model.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.articles {
		if s.articles[i].Slug == slug {
			return clone(s.articles[i]), true
		}
	}
	return model.Article{}, false
}

// ByCategory 按分类 ID 过滤；"all" 返回全部。
// 未知分类 ID 返回空切片与 ok=false。
func (s *Store) ByCategory(id string) ([]model.Article, bool) {
	if id == AllID {
		return s.All(), true
	}
	name, ok := CategoryName(id)
	if !ok {
		return []model.Article{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(a *model.Article) bool { return a.Category == name }), true
}

// Popular 按浏览量降序（稳定排序）返回前 limit 篇；limit<=0 时取 DefaultLimit。
func (s *Store) Popular(limit int) []model.Article {
	out := s.All()
	sortPopular(out)
	return truncate(out, limit)
}

// Recent 按日期降序（稳定排序）返回前 limit 篇；limit<=0 时取 DefaultLimit。
func (s *Store) Recent(limit int) []model.Article {
	out := s.All()
	sortRecent(out)
	return truncate(out, limit)
}

// Categories 返回分类表，"all" 在首位；数量按当前集合实时计算。
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int, len(taxonomy))
	for i := range s.articles {
		counts[s.articles[i].Category]++
	}
	out := make([]model.Category, 0, len(taxonomy)+1)
	out = append(out, model.Category{ID: AllID, Name: allName, Count: len(s.articles)})
	for _, c := range taxonomy {
		out = append(out, model.Category{ID: c.id, Name: c.name, Count: counts[c.name]})
	}
	return out
}

// IncrementViews 将文章浏览量加一；id 不存在时不做任何事。
func (s *Store) IncrementViews(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byID[id]; ok {
		s.articles[i].Views++
	}
}

// ToggleLike 将点赞数加一并返回新值；id 不存在时 ok=false。
// 只增不减：没有取消点赞的路径。
func (s *Store) ToggleLike(id int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return 0, false
	}
	s.articles[i].Likes++
	return s.articles[i].Likes, true
}

// filter 需在持有读锁时调用。
func (s *Store) filter(keep func(*model.Article) bool) []model.Article {
	out := make([]model.Article, 0, len(s.articles))
	for i := range s.articles {
		if keep == nil || keep(&s.articles[i]) {
			out = append(out, clone(s.articles[i]))
		}
	}
	return out
}

func sortRecent(list []model.Article) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date.Time) })
}

func sortPopular(list []model.Article) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Views > list[j].Views })
}

func truncate(list []model.Article, limit int) []model.Article {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(list) > limit {
		return list[:limit]
	}
	return list
}

// clone 复制 Tags，避免调用方修改共享切片。
func clone(a model.Article) model.Article {
	if a.Tags != nil {
		tags := make([]string, len(a.Tags))
		copy(tags, a.Tags)
		a.Tags = tags
	}
	return a
}
