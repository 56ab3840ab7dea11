package questionbank

// Motivation driver bank: five rated statements per category, four
// forced-choice pairs, and five context items. Context items feed the strain
// indicator only and never touch category totals.
var motivationQuestions = []Question{
	// Growth
	{ID: "M01", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryGrowth,
		Prompt: "I seek out tasks I do not yet know how to do.", Weight: 1.0},
	{ID: "M02", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryGrowth,
		Prompt: "Feedback that shows me a blind spot is more valuable to me than praise.", Weight: 1.0},
	{ID: "M03", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryGrowth,
		Prompt: "A year without learning a new skill would feel like a wasted year.", Weight: 1.25},
	{ID: "M04", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryGrowth,
		Prompt: "I volunteer for training opportunities even when they are inconvenient.", Weight: 1.0},
	{ID: "M05", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryGrowth,
		Prompt: "Once I have mastered a routine, I start looking for a harder one.", Weight: 1.0},

	// Purpose
	{ID: "M06", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryPurpose,
		Prompt: "I need to see how my daily work connects to the mission of the organization.", Weight: 1.0},
	{ID: "M07", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryPurpose,
		Prompt: "I would take a harder job over an easier one if it mattered more to the people we serve.", Weight: 1.25},
	{ID: "M08", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryPurpose,
		Prompt: "I lose motivation quickly on tasks that feel like bureaucracy for its own sake.", Weight: 1.0},
	{ID: "M09", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryPurpose,
		Prompt: "Stories about the impact of our work stay with me long after the shift ends.", Weight: 1.0},
	{ID: "M10", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryPurpose,
		Prompt: "I rarely think about the bigger picture behind my assignments.", Weight: 1.0, Reversed: true},

	// Connection
	{ID: "M11", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryConnection,
		Prompt: "The people I work with matter more to my job satisfaction than the work itself.", Weight: 1.0},
	{ID: "M12", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryConnection,
		Prompt: "I make a point of checking in on colleagues who seem off, even when I am busy.", Weight: 1.0},
	{ID: "M13", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryConnection,
		Prompt: "A team that eats lunch together does better work together.", Weight: 1.0},
	{ID: "M14", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryConnection,
		Prompt: "Being trusted with a teammate's personal worries feels like part of my role.", Weight: 1.25},
	{ID: "M15", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryConnection,
		Prompt: "I prefer working alone to working as part of a close team.", Weight: 1.0, Reversed: true},

	// Achievement
	{ID: "M16", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryAchievement,
		Prompt: "I keep a mental scoreboard of what I have finished this week.", Weight: 1.0},
	{ID: "M17", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryAchievement,
		Prompt: "Hitting a measurable target gives me more satisfaction than an open-ended win.", Weight: 1.0},
	{ID: "M18", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryAchievement,
		Prompt: "I push to finish ahead of deadline, not just on it.", Weight: 1.25},
	{ID: "M19", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryAchievement,
		Prompt: "Unfinished work nags at me until it is done.", Weight: 1.0},
	{ID: "M20", Dimension: DimensionMotivation, Type: TypeRated, Target: CategoryAchievement,
		Prompt: "I want my individual contribution to be visible, not folded into a group result.", Weight: 1.0},

	// Forced-choice pairs.
	{ID: "MC1", Dimension: DimensionMotivation, Type: TypeChoice,
		OptionA: ChoiceOption{Prompt: "The best recognition is a stretch assignment that grows my skills.", Target: CategoryGrowth},
		OptionB: ChoiceOption{Prompt: "The best recognition is seeing my numbers at the top of the board.", Target: CategoryAchievement}},
	{ID: "MC2", Dimension: DimensionMotivation, Type: TypeChoice,
		OptionA: ChoiceOption{Prompt: "I stay in a role for the cause it serves.", Target: CategoryPurpose},
		OptionB: ChoiceOption{Prompt: "I stay in a role for the people on the team.", Target: CategoryConnection}},
	{ID: "MC3", Dimension: DimensionMotivation, Type: TypeChoice,
		OptionA: ChoiceOption{Prompt: "Given a free afternoon at work, I would take a course.", Target: CategoryGrowth},
		OptionB: ChoiceOption{Prompt: "Given a free afternoon at work, I would catch up with colleagues.", Target: CategoryConnection}},
	{ID: "MC4", Dimension: DimensionMotivation, Type: TypeChoice,
		OptionA: ChoiceOption{Prompt: "I would rather exceed a tough quota than be told my work changed a life.", Target: CategoryAchievement},
		OptionB: ChoiceOption{Prompt: "I would rather be told my work changed a life than exceed a tough quota.", Target: CategoryPurpose}},

	// Context items: strain indicators, excluded from category scoring.
	{ID: "MX1", Dimension: DimensionMotivation, Type: TypeContext,
		Prompt: "Lately I feel drained before the workday is half over."},
	{ID: "MX2", Dimension: DimensionMotivation, Type: TypeContext,
		Prompt: "I have trouble switching off from work in the evenings."},
	{ID: "MX3", Dimension: DimensionMotivation, Type: TypeContext,
		Prompt: "Small setbacks at work upset me more than they used to."},
	{ID: "MX4", Dimension: DimensionMotivation, Type: TypeContext,
		Prompt: "I have been putting off tasks I would normally finish without thinking."},
	{ID: "MX5", Dimension: DimensionMotivation, Type: TypeContext,
		Prompt: "I feel my effort at work goes unnoticed."},
}
