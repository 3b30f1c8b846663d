package agenda

// ExampleItems is shown whenever the session list is empty.
func ExampleItems() []Item {
	return []Item{
		{Topic: "Welcome and objectives", Owner: "Helen", DurationMin: 10},
		{Topic: "Project status", Owner: "Team", DurationMin: 20},
		{Topic: "Decision block", Owner: "Coordination", DurationMin: 25},
		{Topic: "Next steps", Owner: "Everyone", DurationMin: 15},
	}
}
