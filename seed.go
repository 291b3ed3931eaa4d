package portfolio

// SeedDefaultContent writes the English bundle for every section that
// does not have one yet, plus the French about overlay. Existing
// variants are never overwritten, so administered edits survive
// restarts.
func (r *Resolver) SeedDefaultContent() error {
	seeds := []struct {
		section string
		lang    string
		bundle  any
	}{
		{SectionAbout, "en", defaultAbout()},
		{SectionAbout, "fr", defaultAboutFR()},
		{SectionLeadership, "en", defaultLeadership()},
		{SectionAchievements, "en", defaultAchievements()},
		{SectionEvents, "en", defaultEvents()},
		{SectionProjects, "en", defaultProjects()},
	}
	for _, seed := range seeds {
		exists, err := r.store.sectionExists(seed.section, seed.lang)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := r.SaveBundle(seed.section, seed.lang, seed.bundle); err != nil {
			return err
		}
	}
	return nil
}

func defaultAbout() *AboutContent {
	return &AboutContent{
		Name:        "Benjamin Kyamoneka Mpey",
		Title:       "Youth Leader & Human Rights Activist",
		Tagline:     "Empowering Youth. Defending Rights. Inspiring Change.",
		Age:         21,
		Nationality: "Congolese",
		BasedIn:     "Kenya",
		Bio: "I am a Congolese human rights activist based in Kenya, committed to justice, equality, " +
			"and environmental sustainability. My advocacy focuses on empowering young people through " +
			"human rights education, digital safety, climate action, and legal literacy. At Amnesty " +
			"International Kenya I support the Privacy First Campaign, advocating for a safer internet " +
			"and data protection for youth. Through the Lawrit Journal of Law I organize debates, " +
			"workshops, and trainings that promote civic education and climate awareness across Africa.",
		FocusAreas: []string{
			"Human Rights Advocacy",
			"Climate Action",
			"Digital Privacy Rights",
			"Legal Literacy",
			"Youth Empowerment",
			"Environmental Justice",
		},
		Mission: "To empower young people through human rights education, digital safety, climate action, and legal literacy.",
		Vision: "A world where youth are recognized as powerful agents of change and where human rights, " +
			"environmental justice, and digital privacy are protected for all.",
	}
}

func defaultAboutFR() *AboutContent {
	return &AboutContent{
		Name:        "Benjamin Kyamoneka Mpey",
		Title:       "Leader de la jeunesse et militant des droits humains",
		Tagline:     "Autonomiser la jeunesse. Défendre les droits. Inspirer le changement.",
		Age:         21,
		Nationality: "Congolais",
		BasedIn:     "Kenya",
		Bio: "Je suis un militant congolais des droits humains basé au Kenya, engagé pour la justice, " +
			"l'égalité et la durabilité environnementale. Mon plaidoyer vise à autonomiser les jeunes par " +
			"l'éducation aux droits humains, la sécurité numérique, l'action climatique et la culture juridique.",
		FocusAreas: []string{
			"Plaidoyer pour les droits humains",
			"Action climatique",
			"Droits à la vie privée numérique",
			"Culture juridique",
			"Autonomisation des jeunes",
			"Justice environnementale",
		},
		Mission: "Autonomiser les jeunes par l'éducation aux droits humains, la sécurité numérique, l'action climatique et la culture juridique.",
		Vision: "Un monde où la jeunesse est reconnue comme un puissant moteur de changement et où les droits humains, " +
			"la justice environnementale et la vie privée numérique sont protégés pour tous.",
	}
}

func defaultLeadership() *LeadershipContent {
	return &LeadershipContent{
		CurrentPositions: []Position{
			{
				Title:        "Privacy First Campaigner",
				Organization: "Amnesty International Kenya",
				Period:       "March 2025 – Present",
				Description:  "Leading advocacy for digital rights and privacy protections",
				Responsibilities: []string{
					"Conducting research on privacy laws and violations",
					"Organizing national workshops and policy dialogues on surveillance and youth safety online",
				},
			},
			{
				Title:        "Country Director",
				Organization: "Lawrit Journal of Law (DRC Chapter)",
				Period:       "Since August 2024",
				Description:  "Representing the DRC in a youth-led legal education and advocacy platform",
				Responsibilities: []string{
					"Coordinating legal literacy sessions, webinars, and publishing opportunities for students",
					"Bridging Francophone youth voices with pan-African legal innovation",
				},
			},
			{
				Title:        "Member, Communication Department",
				Organization: "Black Professionals in International Affairs",
				Period:       "Since July 2024",
				Description:  "Supporting strategic communication and youth engagement",
			},
		},
		PastPositions: []Position{
			{
				Title:        "Head of the Department of Indigenous People",
				Organization: "Les Toges Vertes",
				Period:       "Jul 2022 – Dec 2022",
				Description:  "Led community-based legal interventions for Indigenous detainees in Goma",
				Responsibilities: []string{
					"Conducted prison interviews, gathered testimonies, and drafted human rights reports",
				},
			},
			{
				Title:        "Co-Founder & President",
				Organization: "EDDEC",
				Period:       "Dec 2019 – Dec 2021",
				Description:  "Designed and implemented environmental sustainability programs",
				Responsibilities: []string{
					"Led tree-planting campaign (6,000 trees in 35 schools)",
					"Led school-based awareness campaigns impacting over 3,000 learners",
				},
			},
		},
	}
}

func defaultAchievements() *AchievementsContent {
	return &AchievementsContent{
		Fellowships: []Achievement{
			{
				Title:        "Venice School for Human Rights Defenders",
				Organization: "International Commission of Jurists",
				Year:         "2025",
				Location:     "Venice, Italy",
				Distinction:  "Youngest Participant Globally",
			},
			{
				Title:        "HISA Youth Fellowship",
				Organization: "HISA",
				Year:         "2025",
				Location:     "Oxford, UK",
				Distinction:  "Youth Delegate",
			},
			{
				Title:        "Online Anti-Corruption Autumn School",
				Organization: "University of Oxford",
				Year:         "2024",
			},
		},
		Awards: []Achievement{
			{
				Title:        "Winner - Mock ICJ Moot on Climate Change",
				Organization: "Kenya Model United Nations",
				Year:         "2024",
			},
			{
				Title:        "Best Upcoming Mooter",
				Organization: "1st Kenya ICJ Moot, USIU-Kenya",
				Year:         "2024",
			},
			{
				Title:        "Winner - Ka Mana Prize",
				Organization: "Ka Mana Foundation",
				Year:         "2023",
			},
		},
	}
}

func defaultEvents() *EventsContent {
	return &EventsContent{
		UpcomingEvents: []Event{
			{
				Title:       "HISA Youth Fellowship",
				Location:    "Oxford, UK",
				Date:        "August 23-26, 2025",
				Type:        "Fellowship",
				Description: "International youth leadership and policy development program",
			},
			{
				Title:       "You(th) Rebuilding the Broken Workshop",
				Location:    "Brussels, Belgium",
				Date:        "July 31 - August 3, 2025",
				Type:        "Workshop",
				Description: "Youth-led democratic renewal and governance workshop",
			},
		},
		PastEvents: []Event{
			{
				Title:       "Venice School for Human Rights Defenders",
				Location:    "Venice, Italy",
				Date:        "2025",
				Type:        "Training",
				Description: "Intensive human rights defenders training program",
			},
			{
				Title:       "Privacy First Campaign Launch",
				Location:    "Nairobi, Kenya",
				Date:        "March 2025",
				Type:        "Campaign Launch",
				Description: "Digital rights and privacy protection campaign for youth",
			},
		},
	}
}

func defaultProjects() *ProjectsContent {
	return &ProjectsContent{
		FeaturedProjects: []Project{
			{
				Title:       "Privacy First Campaign",
				Type:        "Advocacy",
				Description: "National campaign for a safer internet and data protection for young people.",
				Link:        "https://www.amnestykenya.org",
			},
			{
				Title:       "Legal Literacy Workshops",
				Type:        "Education",
				Description: "Debates, webinars, and trainings promoting civic education and legal research for students.",
			},
			{
				Title:       "School Tree-Planting Campaign",
				Type:        "Environment",
				Description: "6,000 trees planted across 35 schools with partner environmental organizations.",
			},
		},
	}
}
