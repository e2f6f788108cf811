package blog

import "go-portfolio/internal/model"

const seedAuthor = "Alex Wabita"

// DefaultArticles 返回站点内置的文章集合（每次调用返回新副本）。
func DefaultArticles() []model.Article {
	return []model.Article{
		{
			ID:       1,
			Title:    "My Python Learning Journey: From Zero to Building Projects",
			Slug:     "python-learning-journey-zero-to-projects",
			Excerpt:  "How I started learning Python as a BSc IT student and built my first portfolio projects. This article covers my approach, resources, and key milestones.",
			Content:  "Full article content...",
			Author:   seedAuthor,
			Date:     model.MustDate("2024-01-15"),
			ReadTime: "6 min read",
			Category: "Python",
			Tags:     []string{"Python", "Learning", "Programming", "Beginner"},
			Image:    "https://images.unsplash.com/photo-1526379879527-8559ecfcaec9?w=600&h=400&fit=crop&auto=format&q=75",
			Views:    142,
			Likes:    24,
			Featured: true,
		},
		{
			ID:       2,
			Title:    "AI/ML for Beginners: How I Started Exploring Machine Learning",
			Slug:     "ai-ml-beginners-getting-started",
			Excerpt:  "A beginner's guide to starting with Artificial Intelligence and Machine Learning. Sharing my roadmap and resources that helped me.",
			Content:  "Full article content...",
			Author:   seedAuthor,
			Date:     model.MustDate("2024-01-10"),
			ReadTime: "8 min read",
			Category: "AI/ML",
			Tags:     []string{"AI", "Machine Learning", "Python", "Beginners"},
			Image:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=600&h=400&fit=crop&auto=format&q=75",
			Views:    189,
			Likes:    32,
			Featured: true,
		},
		{
			ID:       3,
			Title:    "Cybersecurity Basics Every Developer Should Know",
			Slug:     "cybersecurity-basics-for-developers",
			Excerpt:  "Essential cybersecurity principles and practices for software developers. Learn how to write more secure code.",
			Content:  "Full article content...",
			Author:   seedAuthor,
			Date:     model.MustDate("2024-01-05"),
			ReadTime: "7 min read",
			Category: "Cybersecurity",
			Tags:     []string{"Security", "Development", "Best Practices", "Web"},
			Image:    "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=600&h=400&fit=crop&auto=format&q=75",
			Views:    215,
			Likes:    41,
		},
		{
			ID:       4,
			Title:    "Building My First Portfolio Website: Lessons Learned",
			Slug:     "building-first-portfolio-website-lessons",
			Excerpt:  "Step-by-step guide on creating a modern portfolio website. Covers design decisions, technologies used, and deployment.",
			Content:  "Full article content...",
			Author:   seedAuthor,
			Date:     model.MustDate("2024-01-01"),
			ReadTime: "5 min read",
			Category: "Web Development",
			Tags:     []string{"Portfolio", "HTML/CSS", "JavaScript", "Design"},
			Image:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=600&h=400&fit=crop&auto=format&q=75",
			Views:    178,
			Likes:    28,
		},
		{
			ID:       5,
			Title:    "Git & GitHub: Essential Workflow for Student Developers",
			Slug:     "git-github-workflow-student-developers",
			Excerpt:  "How I use Git and GitHub to manage my coding projects as a student. Tips for effective version control.",
			Content:  "Full article content...",
			Author:   seedAuthor,
			Date:     model.MustDate("2023-12-28"),
			ReadTime: "6 min read",
			Category: "Tools",
			Tags:     []string{"Git", "GitHub", "Version Control", "Workflow"},
			Image:    "https://images.unsplash.com/photo-1618401471353-b98afee0b2eb?w=600&h=400&fit=crop&auto=format&q=75",
			Views:    156,
			Likes:    19,
		},
		{
			ID:       6,
			Title:    "Learning Linux: My Experience with Kali & Parrot OS",
			Slug:     "learning-linux-kali-parrot-os",
			Excerpt:  "My journey of learning Linux for cybersecurity and development. Comparing Kali Linux and Parrot OS.",
			Content:  "Full article content...",
			Author:   seedAuthor,
			Date:     model.MustDate("2023-12-25"),
			ReadTime: "9 min read",
			Category: "Cybersecurity",
			Tags:     []string{"Linux", "Kali", "Parrot OS", "Security"},
			Image:    "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=600&h=400&fit=crop&auto=format&q=75",
			Views:    132,
			Likes:    22,
		},
		{
			ID:       7,
			Title:    "Python Automation: Scripts That Saved Me Time",
			Slug:     "python-automation-time-saving-scripts",
			Excerpt:  "Practical Python scripts I created to automate repetitive tasks as a student developer.",
			Content:  "Full article content...",
			Author:   seedAuthor,
			Date:     model.MustDate("2023-12-20"),
			ReadTime: "7 min read",
			Category: "Python",
			Tags:     []string{"Python", "Automation", "Scripting", "Productivity"},
			Image:    "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=600&h=400&fit=crop&auto=format&q=75",
			Views:    167,
			Likes:    31,
		},
		{
			ID:       8,
			Title:    "Cloud Computing Basics: AWS & Azure for Students",
			Slug:     "cloud-computing-basics-aws-azure",
			Excerpt:  "Getting started with cloud platforms. Understanding AWS and Azure fundamentals for developers.",
			Content:  "Full article content...",
			Author:   seedAuthor,
			Date:     model.MustDate("2023-12-15"),
			ReadTime: "8 min read",
			Category: "Cloud",
			Tags:     []string{"AWS", "Azure", "Cloud", "DevOps"},
			Image:    "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=600&h=400&fit=crop&auto=format&q=75",
			Views:    145,
			Likes:    17,
		},
	}
}
