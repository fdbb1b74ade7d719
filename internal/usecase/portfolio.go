package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

// Site content lives here rather than in the database: it changes with a
// deploy, not at runtime, and keeping it in code means the frontend always
// matches the backend it shipped with.

var profile = domain.Profile{
	Name:     "Aashish Nepal",
	Headline: "Full-Stack Developer",
	Bio: "I build web applications end to end, from responsive frontends to the " +
		"APIs and infrastructure behind them. Most of my projects start with a " +
		"simple idea and turn into a chance to learn something new.",
	Location: "Kathmandu, Nepal",
	Email:    "nepal.aashish00@gmail.com",
	Socials: map[string]string{
		"github":   "https://github.com/aashish-nepal",
		"linkedin": "https://www.linkedin.com/in/aashish-nepal",
	},
}

var skills = []domain.Skill{
	{Name: "JavaScript", Category: "Languages", Level: 90},
	{Name: "Go", Category: "Languages", Level: 75},
	{Name: "React", Category: "Frontend", Level: 88},
	{Name: "Next.js", Category: "Frontend", Level: 85},
	{Name: "Tailwind CSS", Category: "Frontend", Level: 82},
	{Name: "Node.js", Category: "Backend", Level: 80},
	{Name: "PostgreSQL", Category: "Backend", Level: 72},
	{Name: "Docker", Category: "Tooling", Level: 65},
}

var projects = []domain.Project{
	{
		Title: "Portfolio Website",
		Description: "This site: a Next.js single-page application backed by a Go API " +
			"handling the contact pipeline, content delivery and an admin inbox.",
		Tags:    []string{"Go", "Next.js", "PostgreSQL"},
		RepoURL: "https://github.com/aashish-nepal/portfolio",
	},
	{
		Title: "Game Recommender",
		Description: "A machine learning powered web application that uses TF-IDF " +
			"vectorization and cosine similarity to recommend games based on content " +
			"analysis, with interactive data visualizations.",
		Tags: []string{"Python", "scikit-learn", "Flask"},
	},
	{
		Title: "Terminal Mail Client",
		Description: "A terminal-based email client with fuzzy-finder navigation, " +
			"built on a TUI framework and IMAP.",
		Tags: []string{"Go", "IMAP", "TUI"},
	},
}

var experience = []domain.Experience{
	{
		Company:   "Freelance",
		Role:      "Full-Stack Developer",
		StartDate: "Jan 2023",
		EndDate:   "Present",
		Highlights: []string{
			"Delivered marketing sites and dashboards for small businesses, from design handoff to deployment",
			"Built and operated REST APIs in Go and Node.js backed by PostgreSQL",
		},
	},
	{
		Company:   "Himal Tech",
		Role:      "Frontend Developer",
		StartDate: "Jun 2021",
		EndDate:   "Dec 2022",
		Highlights: []string{
			"Shipped customer-facing React features used by thousands of daily visitors",
			"Cut page load times by lazy-loading media and trimming bundle size",
		},
	},
}

type portfolioUsecase struct{}

// NewPortfolioUsecase creates a new portfolio content usecase
func NewPortfolioUsecase() domain.PortfolioUsecase {
	return &portfolioUsecase{}
}

func (uc *portfolioUsecase) GetProfile(ctx context.Context) *domain.Profile {
	p := profile
	return &p
}

func (uc *portfolioUsecase) ListSkills(ctx context.Context) []domain.Skill {
	return skills
}

func (uc *portfolioUsecase) ListProjects(ctx context.Context) []domain.Project {
	return projects
}

func (uc *portfolioUsecase) ListExperience(ctx context.Context) []domain.Experience {
	return experience
}
