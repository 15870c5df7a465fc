package main

type navItem struct {
	Label   string
	Section string
}

type achievement struct {
	Icon        string
	Title       string
	Subtitle    string
	Description string
}

type skill struct {
	Name  string
	Level int
}

type skillGroup struct {
	Category string
	Skills   []skill
}

var (
	NavItems = []navItem{
		{Label: "Home", Section: "hero"},
		{Label: "Projects", Section: "projects"},
		{Label: "About", Section: "about"},
		{Label: "Skills", Section: "skills"},
		{Label: "Contact", Section: "contact"},
	}

	HeroHeadline = `turning complex data into clear decisions`

	HeroIntro = `MSc in Data Science at King's College London. First-Class BSc in Computer Science.
	Transforming data challenges into intelligent solutions.`

	ProjectsIntro = `A showcase of machine learning, data science, and software engineering projects
	that demonstrate practical solutions to complex problems.`

	AboutMe = []string{
		`I'm a passionate data scientist and machine learning engineer currently pursuing my MSc in Data Science
		at King's College London. With a First-Class BSc in Computer Science, I combine strong technical foundations
		with practical experience in software development, machine learning, and data analytics.`,
		`My expertise spans from building sophisticated ML models for legal tech applications to developing computer
		vision systems for deepfake detection. I'm particularly interested in natural language processing, data
		visualization, and creating AI solutions that have real-world impact.`,
		`Beyond technical work, I've managed social media strategies for fashion brands, applying data-driven
		approaches to content optimization and audience growth.`,
	}

	Achievements = []achievement{
		{
			Icon:        "graduation-cap",
			Title:       "MSc Data Science",
			Subtitle:    "King's College London",
			Description: "Advanced studies in machine learning, statistical modeling, and data analytics",
		},
		{
			Icon:        "award",
			Title:       "First-Class BSc",
			Subtitle:    "City, University of London",
			Description: "Computer Science with distinction in software engineering and algorithms",
		},
		{
			Icon:        "trending-up",
			Title:       "Social Media Growth",
			Subtitle:    "Data-Driven Content Strategy",
			Description: "Managed fashion-related pages using analytics for content optimization and audience growth",
		},
	}

	SkillGroups = []skillGroup{
		{Category: "Programming", Skills: []skill{
			{"Python", 95}, {"SQL", 90}, {"Java", 85}, {"C++", 80},
		}},
		{Category: "Data Science & ML", Skills: []skill{
			{"scikit-learn", 90}, {"TensorFlow", 85}, {"PyTorch", 85}, {"NLP", 90}, {"Neural Networks", 85},
		}},
		{Category: "Visualization", Skills: []skill{
			{"Tableau", 90}, {"Matplotlib", 85}, {"D3.js", 75},
		}},
		{Category: "Databases & Tools", Skills: []skill{
			{"MySQL", 90}, {"Data Pipelines", 85}, {"Git", 90}, {"Linux", 85}, {"VS Code", 95},
		}},
		{Category: "Creative", Skills: []skill{
			{"Adobe Photoshop", 80}, {"Final Cut Pro", 75},
		}},
	}

	ContactIntro = `Interested in collaboration, have a project in mind, or just want to discuss data science?
	I'd love to hear from you.`

	ContactBlurb = `I'm always excited to discuss new opportunities in data science, machine learning,
	or software development. Whether you have a project in mind, want to collaborate,
	or just want to connect with a fellow data enthusiast, don't hesitate to reach out.`

	ResponseTime = `I typically respond to messages within 24-48 hours. For urgent matters,
	feel free to reach out via LinkedIn for faster response.`

	ContactSuccess = "Thank you for your message! I'll get back to you soon."

	NoProjects = "No projects found for this filter."
)
