package content

var (
	Name      = "Tan Aik Wei"
	Headline  = "Web3"
	Currently = "Community Department Lead at Superteam Malaysia"
	BasedOn   = "Puchong, Selangor"

	AboutMe = `Tan Aik Wei is a Web3 enthusiast and aspiring DevRel from Puchong,
	Malaysia. He focused on growing blockchain communities and educating
	members about Web3 technologies. With 3 years of experience in the
	largest student blockchain club in South East Asia, he has grown the
	community from a couple hundred to almost 1000 members, organizing
	hackathons and educational activities.`

	focus = []string{"Web3 Development", "Community Building", "Blockchain Education"}

	typed = []TypedStep{
		{Text: "Developer", PauseMS: 2000},
		{Text: "Educator", PauseMS: 2000},
		{Text: "Community Builder", PauseMS: 2000},
	}

	experience = []ExperienceRecord{
		{
			Title:        "President",
			Organization: "Asia Pacific University Blockchain and Cryptocurrency Club",
			Period:       "2024 - Present",
			Description:  "Leading the largest student blockchain club in South East Asia. Organizing educational events and hackathons to promote blockchain technology.",
		},
		{
			Title:        "Community Department and Guild Lead",
			Organization: "Superteam Malaysia",
			Period:       "July 2024 - Dec 2024",
			Description:  "Assist in handling planning for meetups and community events. Organize hackathons with at least 200 registrations. Responsible for grooming the Solana Malaysia ecosystem.",
		},
		{
			Title:        "IT Project Management Intern",
			Organization: "Averis Sdn Bhd",
			Period:       "July 2024 - Oct 2024",
			Description:  "Assisted 2 project managers managing 4 IT projects. Prepared 2 project closures for Head of IT and Digital.",
		},
		{
			Title:        "One Stop Shop Support Intern",
			Organization: "Roche Service and Solutions",
			Period:       "April 2023 - August 2023",
			Description:  "Handles IT support on a daily basis. Assists in SAP support and handled over 100 tickets.",
		},
	}

	projects = []ProjectRecord{
		{Title: "Funds in Need", EventLabel: "ETH Global Bangkok", URL: "https://github.com/Funds-In-Need"},
		{Title: "Rasa Review", EventLabel: "ETH KL 2024", URL: "https://github.com/rasaReview"},
		{Title: "Asset Tracking App", EventLabel: "Blockchain Development Assignment", URL: "https://github.com/noobstar3310/bcd-assignment"},
		{Title: "Data.Auc", EventLabel: "Encode Club Hackathon", URL: "https://encode-hackathon-ten.vercel.app/"},
		{Title: "Aliqudity", EventLabel: "ETH Global Agentic Hack", URL: "https://ethglobal-agentic.vercel.app/"},
	}

	contact = Contact{
		Heading:      "Get in touch",
		Lede:         "Feel free to reach out for collaborations, speaking opportunities, or just to say hello.",
		Email:        "aikwei3310@gmail.com",
		Phone:        "+60123963860",
		PhoneDisplay: "+60 12-396 3860",
	}
)
