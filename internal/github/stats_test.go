package github_test

import (
	"reflect"
	"testing"

	"go-portfolio/internal/github"
	"go-portfolio/internal/model"
)

func lang(s string) *string { return &s }

func TestTopLanguages_TiesAndCap(t *testing.T) {
	var repos []model.Repository
	for _, l := range []string{"C", "Go", "Rust", "Go", "Zig", "Lua", "Nim", "Rust", ""} {
		repos = append(repos, model.Repository{Language: lang(l)})
	}
	repos = append(repos, model.Repository{})

	got := github.TopLanguages(repos, github.TopLanguagesLimit)
	want := []model.LanguageCount{
		{Language: "Go", Count: 2},
		{Language: "Rust", Count: 2},
		{Language: "C", Count: 1},
		{Language: "Zig", Count: 1},
		{Language: "Lua", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestComputeStats_NilProfileAndEmptyRepos(t *testing.T) {
	st := github.ComputeStats(nil, nil)
	if st.TotalRepos != 0 || st.TotalStars != 0 || st.TopLanguages == nil {
		t.Fatalf("stats=%+v", st)
	}
}
