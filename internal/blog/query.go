package blog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-portfolio/internal/model"
)

// DefaultPerPage 为分页默认每页条数。
const DefaultPerPage = 6

// 排序方式。
const (
	SortNone    = ""
	SortRecent  = "recent"
	SortPopular = "popular"
)

// Query 组合筛选：分类 → 搜索 → 排序 → 分页。
type Query struct {
	Category string // 空或 "all" 表示不过滤
	Search   string
	Sort     string // recent|popular|空（插入顺序）
	Page     int    // 从 1 开始
	PerPage  int
}

// Page 为一页结果；Total/Pages 基于过滤后的总数。
type Page struct {
	Items   []model.Article `json:"items"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"perPage"`
	Pages   int             `json:"pages"`
}

// Search 按关键字（不区分大小写）匹配标题/摘要/作者/标签/正文纯文本；空关键字返回全部。
func (s *Store) Search(q string) []model.Article {
	q = strings.ToLower(strings.TrimSpace(q))
	s.mu.RLock()
	defer s.mu.RUnlock()
	if q == "" {
		return s.filter(nil)
	}
	out := make([]model.Article, 0)
	for i := range s.articles {
		if strings.Contains(s.haystack[i], q) {
			out = append(out, clone(s.articles[i]))
		}
	}
	return out
}

// Query 执行组合查询。未知分类返回空页。
func (s *Store) Query(q Query) Page {
	var list []model.Article
	if q.Category == "" {
		list = s.Search(q.Search)
	} else {
		byCat, ok := s.ByCategory(q.Category)
		if !ok {
			return Paginate(nil, q.Page, q.PerPage)
		}
		needle := strings.ToLower(strings.TrimSpace(q.Search))
		if needle == "" {
			list = byCat
		} else {
			hits := make(map[int]struct{})
			for _, a := range s.Search(needle) {
				hits[a.ID] = struct{}{}
			}
			for _, a := range byCat {
				if _, ok := hits[a.ID]; ok {
					list = append(list, a)
				}
			}
		}
	}
	switch q.Sort {
	case SortRecent:
		sortRecent(list)
	case SortPopular:
		sortPopular(list)
	}
	return Paginate(list, q.Page, q.PerPage)
}

// Paginate 对列表做简单切片分页；page<1 视为 1，超出范围返回空 Items。
// 页码与每页条数来自调用方，计算时不做可能溢出的乘法。
func Paginate(items []model.Article, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	p := Page{Items: []model.Article{}, Total: total, Page: page, PerPage: perPage, Pages: pages}
	if page > pages {
		return p
	}
	// 此时 page<=pages<=total，乘积不会溢出
	start := (page - 1) * perPage
	end := total
	if total-start > perPage {
		end = start + perPage
	}
	p.Items = items[start:end]
	return p
}

// searchText 生成文章的检索文本（小写）；正文可能是 HTML，取其纯文本。
func searchText(a model.Article) string {
	parts := []string{a.Title, a.Excerpt, a.Author, strings.Join(a.Tags, " "), plainText(a.Content)}
	return strings.ToLower(strings.Join(parts, "\n"))
}

func plainText(content string) string {
	if !strings.Contains(content, "<") {
		return content
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
