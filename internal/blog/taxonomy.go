package blog

// AllID 为匹配全部文章的特殊分类 ID。
const AllID = "all"

const allName = "All Posts"

type categoryDef struct {
	id   string
	name string
}

// taxonomy 为固定的分类表（按展示顺序）：id -> 文章中的 category 名称。
var taxonomy = []categoryDef{
	{"python", "Python"},
	{"ai-ml", "AI/ML"},
	{"web-dev", "Web Development"},
	{"cybersecurity", "Cybersecurity"},
	{"tools", "Tools"},
	{"cloud", "Cloud"},
}

// CategoryName 将分类 ID 映射为文章中使用的分类名称。
func CategoryName(id string) (string, bool) {
	for _, c := range taxonomy {
		if c.id == id {
			return c.name, true
		}
	}
	return "", false
}

func knownCategory(name string) bool {
	for _, c := range taxonomy {
		if c.name == name {
			return true
		}
	}
	return false
}
