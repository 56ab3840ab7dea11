package profiles

import "github.com/harborlight/teamlens/internal/questionbank"

// combinedProfiles pairs a Communication primary (outer key) with a
// Motivation primary (inner key). Coverage is deliberately partial: only
// combinations with authored narrative appear, and resolution treats absence
// as a normal outcome. Unauthored as of this content revision:
// Director-Connection, Facilitator-Achievement, Tracker-Purpose.
var combinedProfiles = map[questionbank.Category]map[questionbank.Category]CombinedEntry{
	questionbank.CategoryDirector: {
		questionbank.CategoryGrowth: {
			Title: "The Advancing Commander",
			Narrative: "You drive teams forward while driving yourself up. Decisive " +
				"communication paired with a hunger to improve makes you the person who " +
				"both makes the call and studies afterward whether it was the right one. " +
				"Your risk is outpacing the team: decisions arrive faster than others can " +
				"absorb, and your own growth can crowd out theirs.",
			Tips: []string{
				"After each significant call, debrief it with the team, not just in your head",
				"Hand your next stretch assignment to someone else and coach them through it",
			},
		},
		questionbank.CategoryPurpose: {
			Title: "The Mission Driver",
			Narrative: "You decide fast and you decide for a reason. The mission gives your " +
				"directness its legitimacy: people accept hard calls from you because the " +
				"cause is visibly in the room. Guard against turning the mission into a " +
				"trump card that ends discussions others needed to have.",
			Tips: []string{
				"When you invoke the mission, follow it with a question rather than an order",
				"Let someone else articulate the why at least once a week",
			},
		},
		questionbank.CategoryAchievement: {
			Title: "The Results Engine",
			Narrative: "Direct communication plus a scoreboard instinct makes you " +
				"formidable at delivery: targets get named, owned, and hit. Teams under " +
				"you rarely wonder what matters. They may, however, wonder whether they " +
				"matter beyond their numbers, and that doubt is the main threat to the " +
				"results you care about.",
			Tips: []string{
				"Recognize one contribution each week that no metric captured",
				"Distinguish publicly between a missed target and a failed person",
			},
		},
	},
	questionbank.CategoryEncourager: {
		questionbank.CategoryGrowth: {
			Title: "The Developing Champion",
			Narrative: "You cheer people on and you genuinely want them larger than they " +
				"are. Encouragement backed by a growth drive becomes mentorship: you " +
				"celebrate not what people did but what they are becoming. Watch that " +
				"your enthusiasm for potential does not gloss over present performance " +
				"problems that need naming.",
			Tips: []string{
				"Pair every aspirational conversation with one concrete current-work fact",
				"Keep a simple record of who you are developing, so nobody falls off it",
			},
		},
		questionbank.CategoryPurpose: {
			Title: "The Heart of the Mission",
			Narrative: "You carry the cause in a way people can feel. Warm communication " +
				"fused with purpose makes you the one who reminds a tired team why it " +
				"showed up, and your sincerity is what makes it land. The hazard is " +
				"emotional over-extension: you absorb the team's disillusionment along " +
				"with your own.",
			Tips: []string{
				"Schedule your own replenishment as deliberately as you encourage others",
				"When cynicism appears on the team, engage it early; silence reads as agreement",
			},
		},
		questionbank.CategoryConnection: {
			Title: "The Community Builder",
			Narrative: "People and the bonds between them are both your method and your " +
				"motive. You build teams that feel like teams, and your encouragement is " +
				"rooted in real knowledge of each person. Be alert to two traps: candor " +
				"deferred to protect closeness, and the outsized pain a fractured team " +
				"causes you personally.",
			Tips: []string{
				"Practice one honest, uncomfortable conversation per month; warmth survives it",
				"Build a connection to the work itself that is not routed through people",
			},
		},
		questionbank.CategoryAchievement: {
			Title: "The Rallying Finisher",
			Narrative: "You want the win and you want everyone to feel the win. " +
				"Encouragement aimed at concrete targets produces teams that deliver and " +
				"enjoy delivering. Your tension point: when the numbers slip, you must " +
				"choose between the comforting message and the accurate one. Choose " +
				"accurate, kindly.",
			Tips: []string{
				"Celebrate completion, but audit what \"done\" meant before you do",
				"Do not let a missed target become the only honest conversation of the quarter",
			},
		},
	},
	questionbank.CategoryFacilitator: {
		questionbank.CategoryGrowth: {
			Title: "The Listening Learner",
			Narrative: "You hold space for others and treat every discussion as a lesson. " +
				"Facilitation driven by growth means you are genuinely changed by the " +
				"views you gather, and teams sense that their input goes somewhere. Your " +
				"edge to develop is conviction: synthesis is your gift, but some moments " +
				"need your own stake in the ground.",
			Tips: []string{
				"State your position before the final round of a discussion, not after",
				"Turn what you learn from the group into a visible change within the week",
			},
		},
		questionbank.CategoryPurpose: {
			Title: "The Values Mediator",
			Narrative: "You bridge people in service of something larger. Disagreements, " +
				"in your hands, get reframed around the shared mission until both sides " +
				"remember they are on it together. Beware of using harmony on behalf of " +
				"the mission to bury conflicts the mission actually needs aired.",
			Tips: []string{
				"Distinguish conflicts to settle from conflicts to surface; not all should close quickly",
				"Name it plainly when a proposed compromise trades away something the mission cannot spare",
			},
		},
		questionbank.CategoryConnection: {
			Title: "The Weaver",
			Narrative: "Relationships are what you build and why you build. You notice " +
				"the whole social fabric of a team, mend tears early, and make inclusion " +
				"feel natural rather than procedural. Your vulnerability is decision " +
				"latency and conflict avoidance compounding each other when the group " +
				"cannot agree and you cannot bear to force it.",
			Tips: []string{
				"Set a decision deadline at the start of contentious discussions, and keep it",
				"Remember that a clean, fair \"no\" preserves relationships better than a slow maybe",
			},
		},
	},
	questionbank.CategoryTracker: {
		questionbank.CategoryGrowth: {
			Title: "The Methodical Improver",
			Narrative: "You document what is, so you can improve what will be. Precision " +
				"plus a growth drive makes you the person whose checklists get better " +
				"every month, and whose questions expose exactly where the process is " +
				"weak. Keep your improvements proportionate: not every working system " +
				"needs the next revision yet.",
			Tips: []string{
				"Timebox refinement work and ship the checklist at the deadline",
				"Teach your review habits to one colleague per quarter instead of reviewing for them",
			},
		},
		questionbank.CategoryConnection: {
			Title: "The Reliable Anchor",
			Narrative: "You show your care in the details: the remembered follow-up, the " +
				"covered gap, the record nobody else kept. People learn they can lean on " +
				"you, and that reliability is your love language at work. Say some of it " +
				"out loud too; colleagues who need words can misread quiet diligence as " +
				"distance.",
			Tips: []string{
				"Tell people directly when you have their back; the log file does not speak",
				"Accept help with your systems; shared upkeep is also a bond",
			},
		},
		questionbank.CategoryAchievement: {
			Title: "The Precision Closer",
			Narrative: "Done, to you, means verified done. The combination of meticulous " +
				"tracking and a completion drive produces work of rare trustworthiness: " +
				"when you say finished, it is. The cost surfaces under time pressure, " +
				"when your standard of proof collides with the clock and with teammates " +
				"who ship at eighty percent.",
			Tips: []string{
				"Agree with your lead which work gets the full verification and which gets a lighter pass",
				"When the deadline wins, record the shortcuts taken instead of quietly absorbing the worry",
			},
		},
	},
}
