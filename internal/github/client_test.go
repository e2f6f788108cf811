package github_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"go-portfolio/internal/fetch"
	"go-portfolio/internal/github"
)

const profileJSON = `{"name":"Alex","bio":null,"avatar_url":"https://a/av.png","location":"Nairobi",
"public_repos":12,"followers":7,"following":3,"html_url":"https://github.com/tester",
"blog":"","twitter_username":null,"company":null}`

func newClient(t *testing.T, srv *httptest.Server, pinned []string) *github.Client {
	t.Helper()
	cl, err := fetch.New(fetch.Options{Timeout: 3 * time.Second})
	if err != nil {
		t.Fatalf("fetch client: %v", err)
	}
	return github.New(cl, github.Options{BaseURL: srv.URL, Username: "tester", Pinned: pinned})
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestProfile_MapsFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/tester", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, profileJSON) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := newClient(t, srv, nil).FetchProfile(context.Background())
	if p == nil {
		t.Fatalf("expect profile")
	}
	if *p.Name != "Alex" || p.Bio != nil || p.PublicRepos != 12 || p.ProfileURL != "https://github.com/tester" {
		t.Fatalf("profile=%+v", p)
	}
}

func TestProfile_FailureIsNil(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	c := newClient(t, srv, nil)

	if p := c.FetchProfile(context.Background()); p != nil {
		t.Fatalf("expect nil profile on 404")
	}
	_, err := c.Profile(context.Background())
	var se *fetch.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Fatalf("strict error should carry status: %v", err)
	}
}

func TestRepos_DefaultsAndMapping(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/tester/repos", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, `[{"name":"a","description":null,"html_url":"https://h/a","homepage":"https://a.dev",
"language":"Go","stargazers_count":3,"forks_count":1,"updated_at":"2024-01-02T03:04:05Z",
"created_at":"2023-01-01T00:00:00Z","topics":["cli"],"private":false},
{"name":"b","html_url":"https://h/b","language":null,"stargazers_count":0,"forks_count":0}]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repos := newClient(t, srv, nil).FetchRepos(context.Background(), github.ReposOptions{})
	if gotQuery != "per_page=6&sort=updated&type=owner" {
		t.Fatalf("query=%q", gotQuery)
	}
	if len(repos) != 2 {
		t.Fatalf("len=%d", len(repos))
	}
	a := repos[0]
	if a.URL != "https://h/a" || *a.Language != "Go" || a.Stars != 3 || a.Description != nil || a.UpdatedAt.Year() != 2024 {
		t.Fatalf("repo a=%+v", a)
	}
	if repos[1].Topics == nil || len(repos[1].Topics) != 0 || repos[1].Language != nil {
		t.Fatalf("repo b topics should default to empty: %+v", repos[1])
	}
}

func TestRepos_FailureIsEmptyNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	repos := newClient(t, srv, nil).FetchRepos(context.Background(), github.ReposOptions{})
	if repos == nil || len(repos) != 0 {
		t.Fatalf("expect empty non-nil slice, got %#v", repos)
	}
}

func TestRepos_InvalidOptionsSkipRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, `[]`)
	}))
	defer srv.Close()
	c := newClient(t, srv, nil)
	if _, err := c.Repos(context.Background(), github.ReposOptions{Sort: "stars"}); err == nil {
		t.Fatalf("expect invalid sort error")
	}
	if _, err := c.Repos(context.Background(), github.ReposOptions{PerPage: 101}); err == nil {
		t.Fatalf("expect per_page range error")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("invalid options must not hit the network")
	}
}

func TestPinnedRepos_PartialFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/tester/good", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"name":"good","html_url":"https://h/good","stargazers_count":4}`)
	})
	mux.HandleFunc("/repos/tester/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := newClient(t, srv, []string{"broken", "good"})

	repos := c.FetchPinnedRepos(context.Background())
	if len(repos) != 1 || repos[0].Name != "good" || repos[0].Stars != 4 {
		t.Fatalf("pinned=%+v", repos)
	}
	survivors, err := c.PinnedRepos(context.Background())
	if err == nil || len(survivors) != 1 {
		t.Fatalf("strict pinned should report the failure: %v", err)
	}
}

func TestPinnedRepos_KeepsAllowListOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/tester/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		writeJSON(w, `{"name":"slow"}`)
	})
	mux.HandleFunc("/repos/tester/fast", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"name":"fast"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repos := newClient(t, srv, []string{"slow", "fast"}).FetchPinnedRepos(context.Background())
	if len(repos) != 2 || repos[0].Name != "slow" || repos[1].Name != "fast" {
		t.Fatalf("order=%+v", repos)
	}
}

func TestPinnedRepos_AllFailIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	repos := newClient(t, srv, []string{"x", "y"}).FetchPinnedRepos(context.Background())
	if repos == nil || len(repos) != 0 {
		t.Fatalf("expect empty slice, got %#v", repos)
	}
	if got := newClient(t, srv, []string{}).FetchPinnedRepos(context.Background()); len(got) != 0 {
		t.Fatalf("empty allow-list: %#v", got)
	}
}

func TestLanguages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/tester/tool/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"Go":12000,"Shell":300}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := newClient(t, srv, nil)

	got := c.FetchRepoLanguages(context.Background(), "tool")
	if !reflect.DeepEqual(got, map[string]int{"Go": 12000, "Shell": 300}) {
		t.Fatalf("languages=%v", got)
	}
	missing := c.FetchRepoLanguages(context.Background(), "missing")
	if missing == nil || len(missing) != 0 {
		t.Fatalf("expect empty map on failure, got %#v", missing)
	}
}

func TestLanguages_NullBodyIsEmptyMap(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/tester/empty/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `null`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := newClient(t, srv, nil)

	got := c.FetchRepoLanguages(context.Background(), "empty")
	if got == nil || len(got) != 0 {
		t.Fatalf("expect empty non-nil map, got %#v", got)
	}
	strict, err := c.Languages(context.Background(), "empty")
	if err != nil || strict == nil {
		t.Fatalf("strict languages=%#v err=%v", strict, err)
	}
}

func TestTolerant_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := newClient(t, srv, []string{"a"})
	srv.Close()

	ctx := context.Background()
	if p := c.FetchProfile(ctx); p != nil {
		t.Fatalf("expect nil profile, got %+v", p)
	}
	if repos := c.FetchRepos(ctx, github.ReposOptions{}); repos == nil || len(repos) != 0 {
		t.Fatalf("expect empty repos, got %#v", repos)
	}
	if pinned := c.FetchPinnedRepos(ctx); pinned == nil || len(pinned) != 0 {
		t.Fatalf("expect empty pinned, got %#v", pinned)
	}
	if langs := c.FetchRepoLanguages(ctx, "a"); langs == nil || len(langs) != 0 {
		t.Fatalf("expect empty languages, got %#v", langs)
	}
	if st := c.FetchStats(ctx); st != nil {
		t.Fatalf("expect nil stats, got %+v", st)
	}
	_, err := c.Profile(ctx)
	var se *fetch.StatusError
	if err == nil || errors.As(err, &se) {
		t.Fatalf("transport failure should not be a status error: %v", err)
	}
}

func TestReposOptions_Validate(t *testing.T) {
	if err := (github.ReposOptions{}).Validate(); err != nil {
		t.Fatalf("zero options should be valid: %v", err)
	}
	bad := []github.ReposOptions{{Sort: "stars"}, {Type: "forks"}, {PerPage: -1}, {PerPage: 101}}
	for _, o := range bad {
		if err := o.Validate(); err == nil {
			t.Fatalf("expect error for %+v", o)
		}
	}
}

func TestStats_Computed(t *testing.T) {
	var perPage string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/tester", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, profileJSON) })
	mux.HandleFunc("/users/tester/repos", func(w http.ResponseWriter, r *http.Request) {
		perPage = r.URL.Query().Get("per_page")
		writeJSON(w, `[{"name":"a","stargazers_count":3,"forks_count":1,"language":"Go"},
{"name":"b","stargazers_count":5,"forks_count":2,"language":"Go"},
{"name":"c","stargazers_count":0,"forks_count":0,"language":"Rust"}]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st := newClient(t, srv, nil).FetchStats(context.Background())
	if st == nil {
		t.Fatalf("expect stats")
	}
	if perPage != "100" {
		t.Fatalf("stats should request per_page=100, got %q", perPage)
	}
	if st.TotalStars != 8 || st.TotalForks != 3 || st.TotalRepos != 12 || st.Followers != 7 {
		t.Fatalf("stats=%+v", st)
	}
	if len(st.TopLanguages) != 2 || st.TopLanguages[0].Language != "Go" || st.TopLanguages[0].Count != 2 ||
		st.TopLanguages[1].Language != "Rust" || st.TopLanguages[1].Count != 1 {
		t.Fatalf("top languages=%+v", st.TopLanguages)
	}
}

func TestStats_ProfileFailureIsNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/tester", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/users/tester/repos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"name":"a","stargazers_count":3}]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	if st := newClient(t, srv, nil).FetchStats(context.Background()); st != nil {
		t.Fatalf("expect nil stats, got %+v", st)
	}
}

func TestStats_ReposFailureDoesNotShortCircuit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/tester", func(w http.ResponseWriter, r *http.Request) { writeJSON(w, profileJSON) })
	mux.HandleFunc("/users/tester/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	st := newClient(t, srv, nil).FetchStats(context.Background())
	if st == nil {
		t.Fatalf("repos failure must not make stats absent")
	}
	if st.TotalStars != 0 || st.TotalRepos != 12 || len(st.TopLanguages) != 0 {
		t.Fatalf("stats=%+v", st)
	}
}

func TestNew_Defaults(t *testing.T) {
	cl, _ := fetch.New(fetch.Options{})
	c := github.New(cl, github.Options{})
	if c.Username() != github.DefaultUsername {
		t.Fatalf("username=%q", c.Username())
	}
	if !reflect.DeepEqual(c.Pinned(), github.DefaultPinned) {
		t.Fatalf("pinned=%v", c.Pinned())
	}
}
