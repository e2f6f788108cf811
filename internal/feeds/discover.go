// 包 feeds 负责站主博客订阅的发现与解析：
// - DiscoverFeed：依次探测常见路径，再回退到 HTML <link rel=alternate>
// - ParseFeed：使用 gofeed 解析 RSS/Atom/JSON Feed 并归一化为 model.FeedPost
package feeds

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"go-portfolio/internal/fetch"
	"go-portfolio/internal/logx"
	"go-portfolio/internal/model"
)

// probeTimeout 为单个候选地址的探测超时。
const probeTimeout = 6 * time.Second

// candidatePaths 相对站点根探测。
var candidatePaths = []string{
	"/feed.xml",
	"/index.xml",
	"/atom.xml",
	"/rss.xml",
	"/feed",
	"/rss",
	"/feed.json",
	"/index.json",
}

// DiscoverFeed 返回站点的订阅地址。
func DiscoverFeed(ctx context.Context, cl *fetch.Client, site string) (string, error) {
	site = normalizeSite(site)
	if site == "" {
		return "", fmt.Errorf("empty site url")
	}
	for _, p := range candidatePaths {
		u := resolve(site, p)
		logx.Debugf("探测候选订阅：%s", u)
		if probeFeed(ctx, cl, u) {
			return u, nil
		}
	}
	resp, err := cl.Get(ctx, site)
	if err != nil {
		return "", fmt.Errorf("GET site %s: %w", site, err)
	}
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return "", fmt.Errorf("parse html %s: %w", site, err)
	}
	var found string
	doc.Find(`link[rel~="alternate"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := strings.ToLower(s.AttrOr("type", ""))
		href := s.AttrOr("href", "")
		if href != "" && (strings.Contains(t, "rss") || strings.Contains(t, "atom") || strings.Contains(t, "json")) {
			found = resolve(site, href)
			return false
		}
		return true
	})
	if found != "" && probeFeed(ctx, cl, found) {
		logx.Debugf("从 <link> 发现订阅：%s", found)
		return found, nil
	}
	return "", fmt.Errorf("no feed discovered for %s", site)
}

// probeFeed 根据 Content-Type 与内容前缀判断是否为订阅。
func probeFeed(ctx context.Context, cl *fetch.Client, feedURL string) bool {
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	resp, err := cl.Get(pctx, feedURL)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	head, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	lb := bytes.ToLower(head)
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "json"):
		return bytes.Contains(lb, []byte("jsonfeed.org/version"))
	case strings.Contains(ct, "rss"), strings.Contains(ct, "atom"), strings.Contains(ct, "xml"):
		return true
	}
	return bytes.Contains(lb, []byte("<rss")) || bytes.Contains(lb, []byte("<feed")) ||
		bytes.Contains(lb, []byte("<rdf")) || bytes.Contains(lb, []byte("jsonfeed.org/version"))
}

// ParseFeed 解析订阅并返回最多 max 条（max<=0 表示不限制）。
func ParseFeed(ctx context.Context, cl *fetch.Client, feedURL string, max int) ([]model.FeedPost, error) {
	resp, err := cl.Get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("GET feed %s: %w", feedURL, err)
	}
	defer resp.Body.Close()
	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}
	out := make([]model.FeedPost, 0, len(feed.Items))
	for _, it := range feed.Items {
		out = append(out, model.FeedPost{
			Title:     strings.TrimSpace(it.Title),
			Link:      resolve(feedURL, strings.TrimSpace(it.Link)),
			Author:    authorName(it),
			Published: pickTime(it.PublishedParsed, it.UpdatedParsed),
			Updated:   pickTime(it.UpdatedParsed, it.PublishedParsed),
		})
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out, nil
}

// normalizeSite 资料中的 blog 字段可能不带协议。
func normalizeSite(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	return s
}

func resolve(base, ref string) string {
	if ref == "" {
		return ""
	}
	bu, err := url.Parse(base)
	if err != nil {
		return ref
	}
	ru, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return bu.ResolveReference(ru).String()
}

func pickTime(a, b *time.Time) time.Time {
	if a != nil {
		return *a
	}
	if b != nil {
		return *b
	}
	return time.Time{}
}

func authorName(it *gofeed.Item) string {
	if it.Author == nil {
		return ""
	}
	if it.Author.Name != "" {
		return it.Author.Name
	}
	return it.Author.Email
}
