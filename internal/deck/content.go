package deck

// seedSlides returns the built-in IELTS Writing Task 1 deck: three modules
// of theory followed by an authentic practice bank (2021-2025 exam scenarios).
func seedSlides() []Slide {
	return []Slide{
		{
			ID:       0,
			Title:    "Course Introduction",
			Category: "Module 1: Foundations",
			Kind:     KindTheory,
			Sections: []Section{
				{
					Heading: "Welcome to the Masterclass",
					Body: "This course is built around the official band descriptors. " +
						"The goal is to move you from a Band 6.0 descriptive style to a Band 8.0+ analytical style.",
				},
				{
					Heading: "Timing Strategy",
					Body:    "You have 20 minutes. Spend 3-4 minutes planning and 15 minutes writing.",
				},
				{
					Heading: "Word Count",
					Body:    "Minimum 150 words. Ideal: 160-180 words. Quality over quantity.",
				},
			},
		},
		{
			ID:       1,
			Title:    "The 4 Pillars",
			Category: "Module 1: Foundations",
			Kind:     KindTheory,
			Sections: []Section{
				{
					Heading: "The Marking Criteria",
					Body:    "To score Band 7+, you must satisfy the four marking criteria equally.",
					Bullets: []string{
						"Task Achievement — cover all requirements, clear overview",
						"Coherence & Cohesion — logical paragraphing, natural linkers",
						"Lexical Resource — precision over complexity, collocations",
						"Grammatical Range — mix of simple and complex sentences, accuracy",
					},
				},
			},
		},
		{
			ID:       2,
			Title:    "The Perfect Structure",
			Category: "Module 1: Foundations",
			Kind:     KindTheory,
			Sections: []Section{
				{
					Heading: "Four Paragraphs, Every Time",
					Body:    "A reliable Task 1 answer has a fixed skeleton regardless of the chart type.",
					Bullets: []string{
						"Introduction — paraphrase the question in one sentence",
						"Overview — two sentences on the main trends, no data",
						"Body 1 — the most significant group, with figures",
						"Body 2 — the remaining detail, with comparisons",
					},
				},
			},
		},
		{
			ID:       3,
			Title:    "Step 1: The Introduction",
			Category: "Module 2: The 3 Steps",
			Kind:     KindTheory,
			Sections: []Section{
				{
					Heading: "Paraphrase, Don't Copy",
					Body: "Rewrite the question prompt in your own words. Swap 'shows' for 'illustrates', " +
						"'the proportion of' for 'how many', and restate the time period precisely.",
				},
				{
					Heading: "One Sentence Is Enough",
					Body:    "The introduction earns no marks for length. A single accurate sentence is ideal.",
				},
			},
		},
		{
			ID:       4,
			Title:    "Step 2: The Overview",
			Category: "Module 2: The 3 Steps",
			Kind:     KindTheory,
			Sections: []Section{
				{
					Heading: "The Most Important Paragraph",
					Body: "Examiners look for the overview first. Without one, Task Achievement is capped at Band 5. " +
						"Summarise the two or three most striking features without quoting any figures.",
					Bullets: []string{
						"What rose the most? What fell?",
						"What was largest at the start and at the end?",
						"Any crossover or reversal?",
					},
				},
			},
		},
		{
			ID:       5,
			Title:    "Step 3: Body Paragraphs",
			Category: "Module 2: The 3 Steps",
			Kind:     KindTheory,
			Sections: []Section{
				{
					Heading: "Group, Don't List",
					Body: "Mechanically reporting every number reads as Band 6. Group categories that behave " +
						"similarly and compare them, selecting only the figures that support the comparison.",
				},
				{
					Heading: "Data Is Evidence",
					Body:    "Every claim in a body paragraph needs a figure, a year, or both.",
				},
			},
		},
		{
			ID:       6,
			Title:    "Line: Internet Access (2024)",
			Category: "Module 3: Practice Bank",
			Kind:     KindChart,
			Chart: &ChartData{
				Kind:   ChartLine,
				Series: []string{"Urban", "Rural", "National avg"},
				Points: []ChartPoint{
					{Label: "1999", Value1: 10, Value2: 5, Value3: 20},
					{Label: "2004", Value1: 25, Value2: 15, Value3: 40},
					{Label: "2009", Value1: 60, Value2: 35, Value3: 65},
					{Label: "2014", Value1: 85, Value2: 60, Value3: 75},
					{Label: "2019", Value1: 95, Value2: 85, Value3: 80},
					{Label: "2024", Value1: 98, Value2: 95, Value3: 82},
				},
			},
		},
		{
			ID:       7,
			Title:    "Bar: Transport Spend (2023)",
			Category: "Module 3: Practice Bank",
			Kind:     KindChart,
			Chart: &ChartData{
				Kind:   ChartBar,
				Series: []string{"2003", "2013", "2023"},
				Points: []ChartPoint{
					{Label: "Road", Value1: 50, Value2: 45, Value3: 30},
					{Label: "Rail", Value1: 30, Value2: 60, Value3: 55},
					{Label: "Air", Value1: 20, Value2: 25, Value3: 15},
				},
			},
		},
		{
			ID:       8,
			Title:    "Pie: Energy Sources (2024)",
			Category: "Module 3: Practice Bank",
			Kind:     KindChart,
			Chart: &ChartData{
				Kind:   ChartPie,
				Series: []string{"Share %"},
				Points: []ChartPoint{
					{Label: "Fossil", Value1: 60},
					{Label: "Nuclear", Value1: 25},
					{Label: "Renewables", Value1: 15},
				},
			},
		},
		{
			ID:       9,
			Title:    "Process: Olive Oil (2022)",
			Category: "Module 3: Practice Bank",
			Kind:     KindProcess,
			Process: []ProcessStep{
				{Step: 1, Label: "Harvesting", Description: "Olives are picked by hand or machine in late autumn."},
				{Step: 2, Label: "Washing", Description: "Leaves and debris are removed and the fruit is rinsed."},
				{Step: 3, Label: "Crushing", Description: "Whole olives are ground into a coarse paste."},
				{Step: 4, Label: "Pressing", Description: "The paste is pressed to separate oil from water and solids."},
				{Step: 5, Label: "Bottling", Description: "Filtered oil is bottled and labelled for export."},
			},
		},
		{
			ID:       10,
			Title:    "Map: Town Changes (2021)",
			Category: "Module 3: Practice Bank",
			Kind:     KindMap,
			Map: &MapData{
				Year1: 1990,
				Year2: 2021,
				Features: []MapFeature{
					{Name: "Harbour", Location: "south", Status: "expanded"},
					{Name: "Farmland", Location: "west", Status: "removed"},
					{Name: "Shopping centre", Location: "centre", Status: "new"},
					{Name: "Railway station", Location: "north", Status: "unchanged"},
					{Name: "Housing estate", Location: "east", Status: "new"},
				},
			},
		},
	}
}
