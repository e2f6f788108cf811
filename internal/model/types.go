// 包 model 定义内容管线的数据模型（文章/分类/仓库/资料/统计/导出结构）。
package model

import "time"

// Article 为一篇博客文章。除 Views/Likes 两个计数器外视为不可变。
type Article struct {
	ID       int      `json:"id" yaml:"id"`
	Slug     string   `json:"slug" yaml:"slug"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Content  string   `json:"content" yaml:"content"`
	Author   string   `json:"author" yaml:"author"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags" yaml:"tags"`
	Image    string   `json:"image" yaml:"image"`
	Date     Date     `json:"date" yaml:"date"`
	ReadTime string   `json:"readTime" yaml:"read_time"`
	Views    int      `json:"views" yaml:"views"`
	Likes    int      `json:"likes" yaml:"likes"`
	Featured bool     `json:"featured" yaml:"featured"`
}

// Category 为筛选用的分类；Count 在读取时按当前文章集合计算。
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Repository 为远端仓库的只读快照。
// Description/Homepage/Language 在接口中可能为 null，故用指针表示。
type Repository struct {
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	URL         string    `json:"url"`
	Homepage    *string   `json:"homepage"`
	Language    *string   `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	Topics      []string  `json:"topics"`
	IsPrivate   bool      `json:"isPrivate"`
}

// Profile 为用户资料；文本字段可能为 null。
type Profile struct {
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	Avatar      string  `json:"avatar"`
	Location    *string `json:"location"`
	PublicRepos int     `json:"publicRepos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	ProfileURL  string  `json:"profileUrl"`
	Blog        *string `json:"blog"`
	Twitter     *string `json:"twitter"`
	Company     *string `json:"company"`
}

// LanguageCount 为某语言在仓库列表中出现的次数。
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// AggregateStats 为由资料与仓库列表推导出的统计，不持久化。
type AggregateStats struct {
	TotalRepos   int             `json:"totalRepos"`
	TotalStars   int             `json:"totalStars"`
	TotalForks   int             `json:"totalForks"`
	Followers    int             `json:"followers"`
	TopLanguages []LanguageCount `json:"topLanguages"`
}

// FeedPost 为从站主博客订阅解析出的外部文章。
type FeedPost struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Author    string    `json:"author"`
	Published time.Time `json:"published"`
	Updated   time.Time `json:"updated"`
}

// Export 为导出给渲染层的 data.json 顶层结构。
type Export struct {
	BuildID     string          `json:"build_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Theme       string          `json:"theme"`
	Articles    []Article       `json:"articles"`
	Featured    []Article       `json:"featured"`
	Popular     []Article       `json:"popular"`
	Recent      []Article       `json:"recent"`
	Categories  []Category      `json:"categories"`
	Profile     *Profile        `json:"profile"`
	Repos       []Repository    `json:"repos"`
	Pinned      []Repository    `json:"pinned"`
	Stats       *AggregateStats `json:"stats"`
	Posts       []FeedPost      `json:"posts"`
}
