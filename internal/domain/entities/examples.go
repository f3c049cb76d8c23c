package entities

// ExampleQuestions returns the questions a new question bank is seeded with.
// IDs are left unset so storage assigns them.
func ExampleQuestions() []Question {
	return []Question{
		{
			Text:    "What is the formula for the perimeter of a rectangle",
			Subject: "Maths",
			Options: []string{
				"Length * Width",
				"Length * Length",
				"2 * (Length + Width)",
				"Pi * Length * Width",
				"Length * 4",
				"2 * Pi * Length",
			},
			CorrectAnswer: "2 * (Length + Width)",
		},
		{
			Text:    "What is the formula for the circumference of a circle",
			Subject: "Maths",
			Options: []string{
				"Pi * Radius * Radius",
				"2 * Pi * Radius",
				"Radius * Pi",
			},
			CorrectAnswer: "2 * Pi * Radius",
		},
		{
			Text:    "Which organelle is known as the powerhouse of the cell",
			Subject: "Biology",
			Options: []string{
				"Mitochondria",
				"Cell Wall",
				"Ribosome",
				"Chloroplast",
			},
			CorrectAnswer: "Mitochondria",
		},
	}
}
