package github

import (
	"time"

	"go-portfolio/internal/model"
)

// apiUser 为 GET /users/{u} 的响应字段子集。
type apiUser struct {
	Name            *string `json:"name"`
	Bio             *string `json:"bio"`
	AvatarURL       string  `json:"avatar_url"`
	Location        *string `json:"location"`
	PublicRepos     int     `json:"public_repos"`
	Followers       int     `json:"followers"`
	Following       int     `json:"following"`
	HTMLURL         string  `json:"html_url"`
	Blog            *string `json:"blog"`
	TwitterUsername *string `json:"twitter_username"`
	Company         *string `json:"company"`
}

// apiRepo 为仓库对象的响应字段子集。
type apiRepo struct {
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Homepage        *string   `json:"homepage"`
	Language        *string   `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at"`
	CreatedAt       time.Time `json:"created_at"`
	Topics          []string  `json:"topics"`
	Private         bool      `json:"private"`
}

func (u apiUser) toModel() *model.Profile {
	return &model.Profile{
		Name:        u.Name,
		Bio:         u.Bio,
		Avatar:      u.AvatarURL,
		Location:    u.Location,
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		Following:   u.Following,
		ProfileURL:  u.HTMLURL,
		Blog:        u.Blog,
		Twitter:     u.TwitterUsername,
		Company:     u.Company,
	}
}

func (r apiRepo) toModel() model.Repository {
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}
	return model.Repository{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.HTMLURL,
		Homepage:    r.Homepage,
		Language:    r.Language,
		Stars:       r.StargazersCount,
		Forks:       r.ForksCount,
		UpdatedAt:   r.UpdatedAt,
		CreatedAt:   r.CreatedAt,
		Topics:      topics,
		IsPrivate:   r.Private,
	}
}
