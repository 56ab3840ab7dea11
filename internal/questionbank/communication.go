package questionbank

// Communication style bank: five rated statements per category plus four
// forced-choice pairs. Rated weights default to 1.0; a handful of items carry
// a higher weight because they discriminated best in the pilot data.
var communicationQuestions = []Question{
	// Director
	{ID: "C01", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryDirector,
		Prompt: "When a decision stalls, I step in and make the call so the team can move.", Weight: 1.0},
	{ID: "C02", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryDirector,
		Prompt: "I prefer short, direct conversations that get straight to what needs to happen.", Weight: 1.0},
	{ID: "C03", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryDirector,
		Prompt: "In a crisis, people look to me to set the direction.", Weight: 1.25},
	{ID: "C04", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryDirector,
		Prompt: "I am comfortable delivering a hard message without softening it first.", Weight: 1.0},
	{ID: "C05", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryDirector,
		Prompt: "I find long exploratory discussions frustrating when the answer seems obvious.", Weight: 1.0},

	// Encourager
	{ID: "C06", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryEncourager,
		Prompt: "I go out of my way to name what a teammate did well, in the moment.", Weight: 1.0},
	{ID: "C07", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryEncourager,
		Prompt: "People tell me they leave conversations with me feeling more capable.", Weight: 1.25},
	{ID: "C08", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryEncourager,
		Prompt: "I lead with enthusiasm when introducing a change, even one I have doubts about.", Weight: 1.0},
	{ID: "C09", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryEncourager,
		Prompt: "I rarely comment on a teammate's work unless something has gone wrong.", Weight: 1.0, Reversed: true},
	{ID: "C10", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryEncourager,
		Prompt: "I use stories and humor to keep a group engaged during difficult stretches.", Weight: 1.0},

	// Facilitator
	{ID: "C11", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryFacilitator,
		Prompt: "Before weighing in, I make sure the quietest person in the room has spoken.", Weight: 1.0},
	{ID: "C12", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryFacilitator,
		Prompt: "I would rather reach a slower decision everyone owns than a fast one half the team resents.", Weight: 1.25},
	{ID: "C13", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryFacilitator,
		Prompt: "When two colleagues clash, I help each restate the other's position fairly.", Weight: 1.0},
	{ID: "C14", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryFacilitator,
		Prompt: "I notice shifts in tone and body language that others in the room miss.", Weight: 1.0},
	{ID: "C15", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryFacilitator,
		Prompt: "I tend to push my own view through before hearing everyone out.", Weight: 1.0, Reversed: true},

	// Tracker
	{ID: "C16", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryTracker,
		Prompt: "I write things down during meetings and follow up on exactly what was agreed.", Weight: 1.0},
	{ID: "C17", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryTracker,
		Prompt: "Vague instructions bother me; I ask clarifying questions until the task is concrete.", Weight: 1.0},
	{ID: "C18", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryTracker,
		Prompt: "Colleagues rely on me to remember the details everyone else forgets.", Weight: 1.25},
	{ID: "C19", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryTracker,
		Prompt: "I am uncomfortable signing off on work I have not personally checked.", Weight: 1.0},
	{ID: "C20", Dimension: DimensionCommunication, Type: TypeRated, Target: CategoryTracker,
		Prompt: "I communicate better in writing than in spontaneous discussion.", Weight: 1.0},

	// Forced-choice pairs.
	{ID: "CC1", Dimension: DimensionCommunication, Type: TypeChoice,
		OptionA: ChoiceOption{Prompt: "In a team meeting I am usually the one driving toward a decision.", Target: CategoryDirector},
		OptionB: ChoiceOption{Prompt: "In a team meeting I am usually the one drawing out other views.", Target: CategoryFacilitator}},
	{ID: "CC2", Dimension: DimensionCommunication, Type: TypeChoice,
		OptionA: ChoiceOption{Prompt: "I would rather energize a discouraged team than reorganize its workflow.", Target: CategoryEncourager},
		OptionB: ChoiceOption{Prompt: "I would rather reorganize a messy workflow than rally a discouraged team.", Target: CategoryTracker}},
	{ID: "CC3", Dimension: DimensionCommunication, Type: TypeChoice,
		OptionA: ChoiceOption{Prompt: "A good shift ends with every task closed out and documented.", Target: CategoryTracker},
		OptionB: ChoiceOption{Prompt: "A good shift ends with the team decisive and aligned on tomorrow.", Target: CategoryDirector}},
	{ID: "CC4", Dimension: DimensionCommunication, Type: TypeChoice,
		OptionA: ChoiceOption{Prompt: "When morale dips, my instinct is to celebrate small wins loudly.", Target: CategoryEncourager},
		OptionB: ChoiceOption{Prompt: "When morale dips, my instinct is to get everyone talking about why.", Target: CategoryFacilitator}},
}
