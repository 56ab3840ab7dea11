package profiles

import "github.com/harborlight/teamlens/internal/questionbank"

var communicationProfiles = map[questionbank.Category]Entry{
	questionbank.CategoryDirector: {
		Category: questionbank.CategoryDirector,
		Title:    "The Director",
		Summary: "You communicate to move things forward. You are at your best when a group " +
			"needs a decision, a deadline, or a clear owner, and you are willing to absorb " +
			"the discomfort of being the one who says what happens next. Teams experience " +
			"you as decisive and unambiguous; under pressure that clarity is a gift, though " +
			"in calmer moments it can read as impatience.",
		Strengths: []string{
			"Cuts through circular discussion and names the decision to be made",
			"Comfortable delivering difficult messages directly and early",
			"Keeps urgency visible when a team is drifting",
			"Takes ownership of outcomes rather than diffusing responsibility",
		},
		Growth: []string{
			"May close discussion before quieter colleagues have weighed in",
			"Directness can land as bluntness when stakes are low",
			"Risks deciding alone on questions that needed shared ownership",
		},
		SupportNeeds: []string{
			"A clear mandate: knowing which decisions are actually yours to make",
			"Colleagues who will push back early rather than comply and resent",
			"Explicit prompts to slow down when alignment matters more than speed",
		},
		RoleGuidance: map[Role]string{
			RoleFrontLine: "Use your decisiveness to unblock peers, but flag decisions upward " +
				"rather than making calls that belong to your lead. Your directness is most " +
				"useful when you pair it with one clarifying question first.",
			RoleShiftLead: "Your shift will follow your pace. Open handovers by asking for " +
				"problems before giving directions; the crew that hears you listen first " +
				"will accept fast calls when they are needed.",
			RoleProgramLead: "At program scope, deciding quickly matters less than deciding " +
				"visibly. Write down the reasoning behind your calls so other leads can " +
				"apply it without you in the room.",
		},
	},
	questionbank.CategoryEncourager: {
		Category: questionbank.CategoryEncourager,
		Title:    "The Encourager",
		Summary: "You communicate to lift people. You notice effort, name it out loud, and " +
			"carry energy into rooms that have run out of it. Colleagues seek you out when " +
			"they are discouraged, and teams you belong to recover faster from setbacks. " +
			"The risk that travels with the gift: hard messages can get wrapped in so much " +
			"warmth that they stop being heard.",
		Strengths: []string{
			"Builds morale deliberately, not accidentally",
			"Makes recognition specific and timely rather than generic",
			"Keeps groups engaged through long or demoralizing stretches",
			"Creates psychological safety for people to admit mistakes",
		},
		Growth: []string{
			"Softens critical feedback until the point is lost",
			"May avoid necessary conflict to preserve the mood",
			"Optimistic framing can underplay real risks",
		},
		SupportNeeds: []string{
			"Permission to be direct without feeling the relationship is at risk",
			"A colleague who will verify details behind an optimistic summary",
			"Recognition for the invisible morale work you do",
		},
		RoleGuidance: map[Role]string{
			RoleFrontLine: "Your check-ins hold the team together more than you know. When " +
				"something is genuinely wrong, say the hard sentence first and the warm " +
				"one second.",
			RoleShiftLead: "Praise publicly and correct privately, but do correct. A crew " +
				"that only ever hears encouragement from you will discount it when it " +
				"matters most.",
			RoleProgramLead: "Your optimism sets the emotional weather for the whole program. " +
				"Pair every rallying message with one concrete, verifiable fact so " +
				"credibility compounds along with morale.",
		},
	},
	questionbank.CategoryFacilitator: {
		Category: questionbank.CategoryFacilitator,
		Title:    "The Facilitator",
		Summary: "You communicate to connect views. You track who has not spoken, restate " +
			"positions until both sides feel understood, and would rather land a slower " +
			"decision the whole team owns than a fast one half of it resents. Groups with " +
			"you in them fight less and align more, though you can be slow to put your own " +
			"position on the table.",
		Strengths: []string{
			"Draws contributions from people others talk over",
			"De-escalates conflict by making each side feel heard",
			"Builds decisions that survive because everyone owns them",
			"Reads unspoken tension before it becomes open conflict",
		},
		Growth: []string{
			"Consensus-seeking can stall decisions with real deadlines",
			"Own views arrive late or not at all",
			"May mistake the absence of objection for agreement",
		},
		SupportNeeds: []string{
			"Explicit deadlines that bound how long alignment-building can run",
			"Invitations to state your own position, not just summarize others'",
			"Backing when a mediated agreement needs enforcing afterward",
		},
		RoleGuidance: map[Role]string{
			RoleFrontLine: "You are the teammate people vent to safely. Guard that trust, and " +
				"practice saying \"here is what I think\" once per meeting.",
			RoleShiftLead: "Run your huddles as you naturally would, but end each one by " +
				"stating the decision yourself. The crew needs your synthesis to become " +
				"a call, not a summary.",
			RoleProgramLead: "Your consensus instinct scales well until it meets a deadline. " +
				"Decide in advance which program decisions are consultative and which are " +
				"yours alone, and tell people which mode they are in.",
		},
	},
	questionbank.CategoryTracker: {
		Category: questionbank.CategoryTracker,
		Title:    "The Tracker",
		Summary: "You communicate to pin things down. Agreements get written, ambiguities get " +
			"questioned, details get remembered. Teams rely on you as their institutional " +
			"memory and their defense against things falling through cracks. The cost is " +
			"that your precision can read as distrust, and spontaneous discussion is not " +
			"your preferred arena.",
		Strengths: []string{
			"Converts vague agreements into concrete, checkable commitments",
			"Catches inconsistencies and dropped threads others miss",
			"Produces written records the whole team ends up depending on",
			"Asks the clarifying question everyone else was too polite to ask",
		},
		Growth: []string{
			"Detail focus can stall conversations that needed momentum",
			"Checking others' work can be received as not trusting them",
			"Less comfortable improvising when the plan breaks down",
		},
		SupportNeeds: []string{
			"Time to prepare before high-stakes verbal discussions",
			"Agreed norms on documentation so your rigor is shared, not solitary",
			"Colleagues who answer clarifying questions as diligence, not doubt",
		},
		RoleGuidance: map[Role]string{
			RoleFrontLine: "Your notes are already the team's safety net; share them rather " +
				"than keeping them private. Ask your clarifying questions in the meeting, " +
				"not after it.",
			RoleShiftLead: "Codify your checklists so the shift runs on the system, not on " +
				"your memory. Delegate verification explicitly or you will become the " +
				"bottleneck you are trying to prevent.",
			RoleProgramLead: "Precision at program scope means choosing what not to track. " +
				"Pick the few metrics that matter, publish them, and let the rest stay " +
				"unrecorded on purpose.",
		},
	},
}
