package profiles

import "github.com/harborlight/teamlens/internal/questionbank"

var motivationProfiles = map[questionbank.Category]Entry{
	questionbank.CategoryGrowth: {
		Category: questionbank.CategoryGrowth,
		Title:    "Driven by Growth",
		Summary: "You are fueled by getting better. New skills, unfamiliar problems, and " +
			"feedback that exposes a blind spot energize you more than comfort or routine. " +
			"A role that stops teaching you is a role you are already leaving, whether you " +
			"have noticed yet or not.",
		Strengths: []string{
			"Volunteers for the unfamiliar task others avoid",
			"Treats critical feedback as fuel rather than threat",
			"Raises the skill ceiling of teams by sharing what you learn",
			"Adapts quickly when procedures or tools change",
		},
		Growth: []string{
			"Boredom with mastered routines can look like disengagement",
			"May chase novelty at the expense of finishing",
			"Underestimates colleagues who value stability over stretch",
		},
		SupportNeeds: []string{
			"A visible learning path: next skill, next challenge, next level",
			"Stretch assignments before you have to ask for them",
			"Honest feedback delivered often, not saved for reviews",
		},
		RoleGuidance: map[Role]string{
			RoleFrontLine: "Tell your lead explicitly what you want to learn next; unspoken " +
				"ambition reads as restlessness.",
			RoleShiftLead: "Cross-train your crew as a habit. Your appetite for learning is " +
				"contagious when you make it safe to be a beginner.",
			RoleProgramLead: "Build development into the program structure so growth does not " +
				"depend on your personal attention. Watch for the trap of redesigning " +
				"systems that only needed running.",
		},
	},
	questionbank.CategoryPurpose: {
		Category: questionbank.CategoryPurpose,
		Title:    "Driven by Purpose",
		Summary: "You are fueled by mattering. The connection between today's task and the " +
			"people it ultimately serves is not a nice-to-have for you; it is the engine. " +
			"When that line is visible you will carry remarkable loads, and when it is " +
			"severed by bureaucracy or box-ticking your energy drains fast.",
		Strengths: []string{
			"Sustains effort through hardship that stops others",
			"Keeps the team's attention on who the work is for",
			"Chooses the harder right task over the easier irrelevant one",
			"Gives colleagues language for why their work matters",
		},
		Growth: []string{
			"Disengages visibly from administrative necessities",
			"Can judge colleagues who work for different reasons",
			"Vulnerable to cynicism when the mission is handled badly above you",
		},
		SupportNeeds: []string{
			"Regular, concrete evidence of impact, not just metrics",
			"An honest account of why the bureaucratic parts exist",
			"Leaders who treat the mission as more than a slogan",
		},
		RoleGuidance: map[Role]string{
			RoleFrontLine: "Collect the impact stories you witness; they sustain you and " +
				"they are data your leads cannot see from where they sit.",
			RoleShiftLead: "Open shifts by connecting the day's work to its outcome. Do the " +
				"paperwork visibly and without complaint; your crew calibrates on you.",
			RoleProgramLead: "You are now a steward of other people's sense of purpose. " +
				"Protect the mission's credibility ruthlessly, because every gap between " +
				"stated and actual priorities lands hardest on people wired like you.",
		},
	},
	questionbank.CategoryConnection: {
		Category: questionbank.CategoryConnection,
		Title:    "Driven by Connection",
		Summary: "You are fueled by belonging. The team is not the context of the work for " +
			"you, it is a large part of the point. You notice when a colleague is off, you " +
			"build the relationships that make a group a team, and you will stay in a hard " +
			"job for people you would not stay in for money.",
		Strengths: []string{
			"Notices and reaches struggling colleagues before leads do",
			"Builds the trust that makes teams honest with each other",
			"Anchors team culture through turnover and change",
			"Turns groups of strangers into functioning crews quickly",
		},
		Growth: []string{
			"Team conflict affects your own performance disproportionately",
			"May protect relationships at the cost of candor",
			"Remote or solitary assignments drain you faster than workload does",
		},
		SupportNeeds: []string{
			"Stable team membership; constant reshuffling taxes you twice",
			"Time that is legitimately for relationship-building, not stolen from tasks",
			"Acknowledgment that cohesion work is work",
		},
		RoleGuidance: map[Role]string{
			RoleFrontLine: "Your informal check-ins are a real safety system. Loop your lead " +
				"in when what you are hearing is bigger than you can hold.",
			RoleShiftLead: "You will know your crew better than any roster does. Use it to " +
				"assign well, and be careful that closeness with some does not read as " +
				"favoritism to the rest.",
			RoleProgramLead: "Design the rituals that scale belonging beyond your personal " +
				"reach: onboarding buddies, standing check-ins, real exit conversations. " +
				"You cannot be everyone's connection at program size.",
		},
	},
	questionbank.CategoryAchievement: {
		Category: questionbank.CategoryAchievement,
		Title:    "Driven by Achievement",
		Summary: "You are fueled by finishing. Measurable targets, closed lists, and visible " +
			"results give you a satisfaction that open-ended effort never will. You keep " +
			"score honestly, mostly against yourself, and unfinished work follows you home " +
			"until it is done.",
		Strengths: []string{
			"Reliably converts plans into completed work",
			"Raises the tempo of teams that have stopped keeping score",
			"Honest about what is actually done versus nearly done",
			"Thrives under concrete targets that unsettle others",
		},
		Growth: []string{
			"Discounts important work that resists measurement",
			"Can prioritize personal completion over team outcomes",
			"Risk of burnout from treating every week as a scoreboard",
		},
		SupportNeeds: []string{
			"Clear, countable targets; ambiguity about \"done\" demoralizes you",
			"Visibility for individual contribution inside team results",
			"Help putting the scoreboard down at the end of the day",
		},
		RoleGuidance: map[Role]string{
			RoleFrontLine: "Your completion rate speaks for itself; let it. Flag unrealistic " +
				"targets early instead of heroically absorbing them.",
			RoleShiftLead: "Keep the shift scoreboard public and fair, and count the " +
				"uncountable work too, or your crew will learn that only measured things " +
				"matter to you.",
			RoleProgramLead: "Choose program metrics as if people will optimize them " +
				"literally, because they will. Your bias toward the measurable needs a " +
				"counterweight; appoint one.",
		},
	},
}
