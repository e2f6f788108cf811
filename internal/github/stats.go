package github

import (
	"sort"

	"go-portfolio/internal/model"
)

// TopLanguagesLimit 为统计中保留的语言数。
const TopLanguagesLimit = 5

// ComputeStats 由资料与仓库列表计算汇总统计。
func ComputeStats(p *model.Profile, repos []model.Repository) *model.AggregateStats {
	st := &model.AggregateStats{TopLanguages: TopLanguages(repos, TopLanguagesLimit)}
	if p != nil {
		st.TotalRepos = p.PublicRepos
		st.Followers = p.Followers
	}
	for _, r := range repos {
		st.TotalStars += r.Stars
		st.TotalForks += r.Forks
	}
	return st
}

// TopLanguages 按仓库数统计主语言（忽略空值），降序排列，
// 同数时按首次出现顺序，最多返回 n 个。
func TopLanguages(repos []model.Repository, n int) []model.LanguageCount {
	out := []model.LanguageCount{}
	index := map[string]int{}
	for _, r := range repos {
		if r.Language == nil || *r.Language == "" {
			continue
		}
		lang := *r.Language
		if i, ok := index[lang]; ok {
			out[i].Count++
			continue
		}
		index[lang] = len(out)
		out = append(out, model.LanguageCount{Language: lang, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
