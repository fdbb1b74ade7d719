package domain

import "context"

// Profile is the owner's bio block rendered on the landing page.
type Profile struct {
	Name     string            `json:"name"`
	Headline string            `json:"headline"`
	Bio      string            `json:"bio"`
	Location string            `json:"location"`
	Email    string            `json:"email"`
	Socials  map[string]string `json:"socials"`
}

// Skill is a single entry in the skills section.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"` // 1-100, drives the radial chart on the frontend
}

// Project is an entry in the project gallery.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	RepoURL     string   `json:"repo_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
}

// Experience is an entry in the work experience timeline.
type Experience struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"` // "Present" while ongoing
	Highlights []string `json:"highlights"`
}

// PortfolioUsecase serves the static site content as JSON.
type PortfolioUsecase interface {
	GetProfile(ctx context.Context) *Profile
	ListSkills(ctx context.Context) []Skill
	ListProjects(ctx context.Context) []Project
	ListExperience(ctx context.Context) []Experience
}
