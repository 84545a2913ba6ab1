package portfolio

// Built-in content served whenever the store has no active document. Every
// call returns a freshly allocated structure, so callers may modify it.

// DefaultPortfolioData returns the fallback for GET /api/portfolio/data.
func DefaultPortfolioData() Document {
	return Document{
		"hero": Document{
			"name":     "Peter D. Allen",
			"title":    "Visionary Comic Book Artist & AI Pioneer",
			"tagline":  "Pioneering the next generation of entertainment franchises through the fusion of creative storytelling and cutting-edge generative AI",
			"location": "Saint Paul, Minnesota, United States",
			"email":    "ares2170@gmail.com",
			"phone":    "+1 651-231-8821",
		},
		"about": Document{
			"summary": "Visionary and self-published comic book artist with a proven track record in original intellectual property development, now pioneering a groundbreaking approach to multi-media franchise creation using advanced generative AI. Combining a strong narrative sensibility with cutting-edge technological acumen, I am poised to deliver immersive, scalable entertainment experiences that captivate global audiences and redefine content production workflows.",
			"mission": "Seeking to leverage creative leadership and technical innovation to develop the next generation of entertainment franchises for a leading entertainment company.",
		},
		"skills":     DefaultSkillsData(),
		"experience": defaultExperience(),
		"projects":   DefaultProjects(),
		"contact": Document{
			"email":        "ares2170@gmail.com",
			"phone":        "+1 651-231-8821",
			"location":     "Saint Paul, Minnesota, United States",
			"availability": "Open to corporate investment for accelerated growth and wider market penetration",
		},
	}
}

// DefaultSkillsData returns the fallback for GET /api/skills.
func DefaultSkillsData() Document {
	return Document{
		"technical": []string{
			"Generative AI Integration",
			"AI-driven Content Generation",
			"Digital Publishing & Distribution",
			"Project Management & Execution",
			"Emerging Technologies",
		},
		"creative": []string{
			"Intellectual Property Development",
			"Original World-building",
			"Character Design",
			"Compelling Storytelling",
			"Creative Direction",
			"Art Direction",
		},
		"business": []string{
			"Multi-Media Production Strategy",
			"Community Building & Monetization",
			"Cross-platform Content Expansion",
			"Fanbase Development",
			"Strategic Planning",
		},
	}
}

// DefaultProjects lists the projects embedded in the default portfolio. The
// seed tool also writes them to the projects collection.
func DefaultProjects() []Project {
	return []Project{
		{
			Title:        "Principia Multi-Media Franchise",
			Description:  "Comprehensive AI-driven entertainment franchise spanning webnovels, audiobooks, webcomics, animation, and interactive experiences. Principia represents a complete rebranding of the Frontier: 2170 universe, featuring original character designs including Jon Orvar and other key figures. Published under the pseudonym D.A. Palmquist.",
			Technologies: []string{"Generative AI", "Multi-speaker AI Voice Synthesis", "Advanced Image Generation", "Conversational AI"},
			Status:       "Phase 1: Foundation & Fanbase Development",
			Image:        "https://customer-assets.emergentagent.com/job_dev-spotlight-36/artifacts/3lktix58_Jon%20Orvar%20concept.jpg",
			Phases: []string{
				"Webnovel Foundation & Fanbase Development",
				"Interactive Audio Immersion",
				"Visual Narrative Expansion (Webcomic)",
				"Animated Streaming & Educational Content",
				"Interactive Characters & Tie-in Products",
			},
		},
		{
			Title:        "Frontier: 2170 Volume 01: Easy Street",
			Description:  "Original science fiction graphic novel featuring complex world-building and character development in a futuristic setting. Low on money and unemployed, the crew of the independent spaceship Peregrine are forced to take a shady job from a shadier person.",
			Technologies: []string{"Sequential Art", "Digital Publishing", "Character Design", "Narrative Development"},
			Status:       "Published",
			Link:         "https://www.amazon.com/Frontier-2170-01-Easy-Street/dp/1466250534/",
			Image:        "https://m.media-amazon.com/images/I/71elpDRHmXL._SY466_.jpg",
		},
		{
			Title:        "Frontier: 2170 Volume 02: First Blood",
			Description:  "The crew of the Peregrine are caught in the crossfire when Mars launches a pre-emptive sneak attack on an American military base on the Moon, escalating the war to a whole new level.",
			Technologies: []string{"Sequential Art", "World Expansion", "Character Development", "Long-form Storytelling"},
			Status:       "Published",
			Link:         "https://www.amazon.com/Frontier-2170-02-First-Blood/dp/1484914058/",
			Image:        "https://m.media-amazon.com/images/I/41X8SiMCn2L._SY466_.jpg",
		},
		{
			Title:        "AI-Generated Interactive Wiki",
			Description:  "Public canon wiki with Google Translate integration for the Spaceborn constructed language, enhancing fan engagement.",
			Technologies: []string{"AI Translation", "Interactive Web Development", "Community Engagement", "Constructed Languages"},
			Status:       "In Development",
			Image:        "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800&h=600&fit=crop",
		},
	}
}

func defaultExperience() []Document {
	return []Document{
		{
			"title":       "Creator & Lead Developer",
			"company":     "Principia (Proprietary Multi-Media Franchise)",
			"period":      "2019 - Present",
			"description": "A complete rebranding of the existing Frontier: 2170 universe, leveraging generative AI to create a comprehensive, multi-stage entertainment franchise. Designed for rapid iteration, fan engagement, and scalable content production across diverse media. Published under the pseudonym D.A. Palmquist.",
			"achievements": []string{
				"Established new standard for IP development by integrating generative AI into every facet of creative and production pipeline",
				"Developing 5-phase rollout from webnovel to animated streaming content",
				"Implementing AI tools for narrative expansion, visual asset generation, and character interaction",
				"Strategically planned Patreon-based funding model for community engagement",
			},
		},
		{
			"title":       "Author & Artist",
			"company":     "Frontier: 2170 Series (Self-Published)",
			"period":      "Published via Amazon KDP",
			"description": "Successfully conceptualized, wrote, illustrated, and self-published full-length graphic novels in original science fiction universe.",
			"achievements": []string{
				"Published 'Frontier: 2170 Volume 01: Easy Street' - managed all production aspects",
				"Published 'Frontier: 2170 Volume 02: First Blood' - expanded established narrative universe",
				"Demonstrated expertise in sequential art, character development, and long-form storytelling",
				"Handled storyboarding, illustration, print preparation, and digital distribution",
			},
		},
	}
}
