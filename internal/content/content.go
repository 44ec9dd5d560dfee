// Package content holds the fixed copy rendered on the portfolio page.
package content

import (
	"portfolio/internal/carousel"
	pstrings "portfolio/pkg/platform/strings"
)

// CompanyURL is the primary external link used across the page.
const CompanyURL = "https://deskworksol.com/"

// Venture is a catalog entry before normalisation.
type Venture = carousel.Item

// PhilosophyItem is one principle card.
type PhilosophyItem struct {
	Title       string
	Description string
	Icon        string
}

// Stat is a headline number in the about section.
type Stat struct {
	Value string
	Label string
}

// SocialLink is a footer/contact link.
type SocialLink struct {
	Name string
	URL  string
}

// Profile is the page-level copy.
type Profile struct {
	Owner       string
	Title       string
	Company     string
	Headline    string
	Tagline     string
	About       []string
	Stats       []Stat
	Email       string
	Response    string
	Location    string
	Socials     []SocialLink
	ChatGreeter string
}

var ventures = []Venture{
	{
		ID:          "1",
		Name:        "Desk Work Solution",
		Role:        "Founder & CEO",
		Description: "A premier software house specializing in custom web development, mobile apps, and enterprise digital transformation.",
		Tags:        []string{"Software Development", "IT Consultancy", "UI/UX"},
		Image:       "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Link:        CompanyURL,
	},
	{
		ID:          "2",
		Name:        "Enterprise ERP System",
		Role:        "Lead Architect",
		Description: "A comprehensive resource planning tool built for manufacturing logistics, improving operational efficiency by 40%.",
		Tags:        []string{"SaaS", "B2B", "Cloud"},
		Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "3",
		Name:        "FinTech Mobile App",
		Role:        "Product Owner",
		Description: "Secure and intuitive mobile banking application developed for a client, featuring real-time transactions.",
		Tags:        []string{"FinTech", "Mobile App", "Security"},
		Image:       "https://images.unsplash.com/photo-1563986768609-322da13575f3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "4",
		Name:        "E-Commerce Platform",
		Role:        "Development Lead",
		Description: "Scalable multi-vendor marketplace solution capable of handling high-volume traffic and transactions.",
		Tags:        []string{"E-Commerce", "Web Dev", "Scalability"},
		Image:       "https://images.unsplash.com/photo-1556742049-0cfed4f7a07d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
}

var philosophy = []PhilosophyItem{
	{Title: "Innovation", Description: "Every engagement starts from the problem, not the stack. New tools earn their place by shipping.", Icon: "spark"},
	{Title: "Reliability", Description: "Software that keeps working at 3am matters more than software that demos well.", Icon: "shield"},
	{Title: "Client Satisfaction", Description: "Clear scope, honest timelines and a team that picks up the phone.", Icon: "handshake"},
	{Title: "Technical Excellence", Description: "Reviews, tests and measured performance are part of the deliverable.", Icon: "cpu"},
}

var profile = Profile{
	Owner:    "Aziz Mughal",
	Title:    "CEO & Founder",
	Company:  "Desk Work Solution",
	Headline: "Building software that scales businesses.",
	Tagline:  "Custom web, mobile and enterprise platforms from Desk Work Solution.",
	About: []string{
		"Aziz Mughal leads Desk Work Solution (DWS), a software house delivering custom web, mobile and enterprise systems.",
		"He works with founders and operators to turn ambitious roadmaps into dependable products.",
	},
	Stats: []Stat{
		{Value: "10+", Label: "Years in tech"},
		{Value: "50+", Label: "Projects delivered"},
		{Value: "4", Label: "Featured ventures"},
	},
	Email:    "hello@alexsterling.com",
	Response: "Within 24 Hours",
	Location: "Remote, worldwide",
	Socials: []SocialLink{
		{Name: "LinkedIn", URL: "https://www.linkedin.com/in/azizmughal/"},
		{Name: "GitHub", URL: "#"},
		{Name: "Twitter", URL: "#"},
	},
	ChatGreeter: "Hello! I'm the AI Assistant for Aziz Mughal. Ask me about Desk Work Solution (DWS), our software services, or how to schedule a consultation.",
}

// Ventures returns the carousel catalog with tags trimmed and de-duplicated.
func Ventures() []carousel.Item {
	out := make([]carousel.Item, len(ventures))
	for i, v := range ventures {
		v.Tags = pstrings.NormalizeTags(v.Tags)
		out[i] = v
	}
	return out
}

// Philosophy returns the principle cards.
func Philosophy() []PhilosophyItem {
	out := make([]PhilosophyItem, len(philosophy))
	copy(out, philosophy)
	return out
}

// SiteProfile returns the page copy.
func SiteProfile() Profile {
	return profile
}
