package bank

import "careinspect/internal/model"

// The 15 open-ended inspection sections. Order and ids are stable; the id is
// the join key, the number is display only.
var inspectionSections = []model.Section{
	{
		ID:      "support-understanding",
		Number:  1,
		Title:   "Understanding of Support Offer",
		Purpose: `Establish the "promise" vs reality — what were residents told vs what they receive.`,
		Questions: []model.Question{
			{
				ID:     "q1-1",
				Text:   "When you moved in, what were you told the support would include?",
				Probes: []string{"If I looked at your support plan, what would it say they do for you?"},
			},
			{
				ID:   "q1-2",
				Text: "What did you think you were signing up for?",
			},
			{
				ID:     "q1-3",
				Text:   "How often are staff meant to check in with you?",
				Probes: []string{"Daily? Weekly? 24/7? On-call?"},
			},
			{
				ID:   "q1-4",
				Text: "What support do you actually receive in a normal week?",
			},
			{
				ID:   "q1-5",
				Text: "Who provides the support? Is it the same people or lots of different staff?",
			},
			{
				ID:     "q1-6",
				Text:   "If support was reduced or changed, were you told why and asked for your view?",
				Probes: []string{"What support do you wish you had but don't?"},
			},
		},
	},
	{
		ID:      "reliability",
		Number:  2,
		Title:   "Reliability & Consistency of Support",
		Purpose: "Test delivery quality, not just intentions.",
		Questions: []model.Question{
			{
				ID:   "q2-1",
				Text: "Do staff come when they say they will?",
			},
			{
				ID:   "q2-2",
				Text: "How often do visits get cancelled or turn up late?",
			},
			{
				ID:   "q2-3",
				Text: "If they don't show up, do you get told, and do they rearrange?",
			},
			{
				ID:   "q2-4",
				Text: `Do you ever feel like you're "chasing" for basic support?`,
				Probes: []string{
					"Tell me about the last time you needed help quickly — what happened?",
					"Over the last month, how many times has support not happened as planned?",
				},
			},
		},
	},
	{
		ID:      "respect-dignity",
		Number:  3,
		Title:   "Relationship, Respect & Dignity",
		Purpose: `"Care quality" in the human sense.`,
		Questions: []model.Question{
			{
				ID:   "q3-1",
				Text: "Do staff speak to you with respect?",
			},
			{
				ID:   "q3-2",
				Text: "Do they listen properly, or do they rush you / talk over you?",
			},
			{
				ID:   "q3-3",
				Text: "Do you feel judged, blamed, or spoken to like a child?",
			},
			{
				ID:   "q3-4",
				Text: "Do staff understand what matters to you (your routines, triggers, preferences)?",
			},
			{
				ID:   "q3-5",
				Text: "Do you feel emotionally safe with staff?",
				Probes: []string{
					"If you disagree with staff, what happens?",
					"Have you ever felt intimidated, threatened, or pressured?",
				},
			},
		},
	},
	{
		ID:      "choice-control",
		Number:  4,
		Title:   "Choice, Control & Consent",
		Purpose: "Ensure support isn't controlling or coercive.",
		Questions: []model.Question{
			{
				ID:   "q4-1",
				Text: `Do you get a say in when support happens, or is it just "when staff can do it"?`,
			},
			{
				ID:     "q4-2",
				Text:   "Do staff ask your permission before entering your home or doing things?",
				Probes: []string{"Have staff ever entered without proper notice or consent?"},
			},
			{
				ID:   "q4-3",
				Text: "Do you have privacy in your own home?",
			},
			{
				ID:   "q4-4",
				Text: "Are there rules that feel unfair or not explained?",
			},
			{
				ID:     "q4-5",
				Text:   `Are you ever told you "have to" do something or you'll lose housing/support?`,
				Probes: []string{`Do you feel you can say "no" without consequences?`},
			},
		},
	},
	{
		ID:      "support-planning",
		Number:  5,
		Title:   "Support Planning",
		Purpose: "Avoid copy/paste plans — check for genuine personalisation.",
		Questions: []model.Question{
			{
				ID:   "q5-1",
				Text: "Do you have a written support plan? Have you seen it?",
			},
			{
				ID:   "q5-2",
				Text: "Were you involved in making it?",
			},
			{
				ID:     "q5-3",
				Text:   `Does it reflect your goals (not just "engage with support")?`,
				Probes: []string{"What are the top 3 goals in your plan right now?"},
			},
			{
				ID:     "q5-4",
				Text:   "How often is it reviewed, and do you feel reviews change anything?",
				Probes: []string{"When was the last review? What changed afterwards?"},
			},
		},
	},
	{
		ID:      "practical-support",
		Number:  6,
		Title:   "Practical Day-to-Day Support",
		Purpose: "Test real-life impact of support.",
		Questions: []model.Question{
			{
				ID:     "q6-1",
				Text:   "What do staff help you with day to day?",
				Probes: []string{"Cooking/nutrition? Cleaning/laundry? Shopping? Routines and appointments? Forms, benefits, budgeting?"},
			},
			{
				ID:     "q6-2",
				Text:   "Do they support you to build skills/independence, or do they do things to you / for you?",
				Probes: []string{"Give me an example of something you can do now that you couldn't do before."},
			},
			{
				ID:   "q6-3",
				Text: "Do they help you manage the home properly (so issues don't spiral)?",
			},
			{
				ID:   "q6-4",
				Text: "What happens if your mental health drops — do they increase support?",
			},
		},
	},
	{
		ID:      "health-wellbeing",
		Number:  7,
		Title:   "Health, Mental Health & Wellbeing",
		Purpose: `Check competent support, not "signposting only".`,
		Questions: []model.Question{
			{
				ID:   "q7-1",
				Text: "If you're struggling mentally, what do staff do?",
			},
			{
				ID:   "q7-2",
				Text: "Do they help you access GP/mental health services, or are you left to cope alone?",
			},
			{
				ID:   "q7-3",
				Text: "Do they check in after a crisis, hospital visit, or difficult event?",
			},
			{
				ID:   "q7-4",
				Text: "Do they understand your triggers and early warning signs?",
			},
			{
				ID:   "q7-5",
				Text: "Do you feel staff responses calm situations down or make them worse?",
				Probes: []string{
					"Tell me about the last time you felt close to crisis — what support did you get?",
					"Is there a plan for what to do if you feel unsafe or unwell?",
				},
			},
		},
	},
	{
		ID:      "medication",
		Number:  8,
		Title:   "Medication Support",
		Purpose: "High-risk area — check safety and respect.",
		Questions: []model.Question{
			{
				ID:   "q8-1",
				Text: "Do staff support you with medication at all?",
			},
			{
				ID:     "q8-2",
				Text:   "If yes: what exactly do they do?",
				Probes: []string{"Remind? Prompt? Administer? Store?"},
			},
			{
				ID:   "q8-3",
				Text: "Do you feel medication is handled safely and respectfully?",
			},
			{
				ID:   "q8-4",
				Text: "Have there been mistakes, missed doses, or confusion?",
				Probes: []string{
					"What happens if you refuse medication?",
					"Do you know who to tell if something goes wrong?",
				},
			},
		},
	},
	{
		ID:      "safeguarding",
		Number:  9,
		Title:   "Safeguarding & Feeling Safe",
		Purpose: "Detect abuse, exploitation, neglect, and unsafe environments.",
		Questions: []model.Question{
			{
				ID:   "q9-1",
				Text: "Do you feel safe where you live?",
			},
			{
				ID:     "q9-2",
				Text:   "Has anyone taken advantage of you here?",
				Probes: []string{"Money, belongings, pressure, visitors?"},
			},
			{
				ID:   "q9-3",
				Text: "Have you ever felt unsafe with other residents or visitors?",
			},
			{
				ID:   "q9-4",
				Text: "Have staff responded properly to concerns about harassment, exploitation, or threats?",
			},
			{
				ID:   "q9-5",
				Text: "Do staff take concerns seriously or minimise them?",
				Probes: []string{
					"If you raised a safeguarding concern, what happened next?",
					"Did anyone explain your options, or did you feel pushed into one path?",
				},
			},
		},
	},
	{
		ID:      "boundaries",
		Number:  10,
		Title:   "Staff Boundaries & Professionalism",
		Purpose: "Spot inappropriate relationships or misconduct.",
		Questions: []model.Question{
			{
				ID:   "q10-1",
				Text: "Do staff keep professional boundaries?",
			},
			{
				ID:   "q10-2",
				Text: "Do staff ever share personal problems with you?",
			},
			{
				ID:   "q10-3",
				Text: "Do staff ever ask you for favours or money?",
			},
			{
				ID:   "q10-4",
				Text: "Do staff message you outside work in ways that feel uncomfortable?",
			},
			{
				ID:     "q10-5",
				Text:   "Do you feel staff treat everyone fairly, or do they have favourites?",
				Probes: []string{"Have you ever felt uncomfortable but worried to say something?"},
			},
		},
	},
	{
		ID:      "communication",
		Number:  11,
		Title:   "Communication & Information",
		Purpose: `"Do you understand what's going on?"`,
		Questions: []model.Question{
			{
				ID:   "q11-1",
				Text: "Do staff explain decisions clearly?",
			},
			{
				ID:   "q11-2",
				Text: "Do you know who your key worker is (if applicable)?",
			},
			{
				ID:   "q11-3",
				Text: "Do you know how to contact support quickly?",
			},
			{
				ID:     "q11-4",
				Text:   "Are you kept informed about changes (staffing, visits, rules, repairs)?",
				Probes: []string{`If I asked you "what happens next with your support?", would you know?`},
			},
		},
	},
	{
		ID:      "coordination",
		Number:  12,
		Title:   "Coordination with Other Services",
		Purpose: `Whether they "hold" the person or just refer them away.`,
		Questions: []model.Question{
			{
				ID:     "q12-1",
				Text:   "Do staff help you engage with other services?",
				Probes: []string{"GP? Mental health team? Social worker? Substance misuse services? Probation?"},
			},
			{
				ID:   "q12-2",
				Text: "Do they attend meetings with you or help you prepare?",
			},
			{
				ID:     "q12-3",
				Text:   "Do they support you to be heard, or speak over you?",
				Probes: []string{"Tell me about the last professionals meeting — did it help?"},
			},
			{
				ID:   "q12-4",
				Text: "If you needed an advocate, would staff help you get one?",
			},
		},
	},
	{
		ID:      "complaints",
		Number:  13,
		Title:   "Complaints & Raising Concerns",
		Purpose: "This is where the truth often comes out.",
		Questions: []model.Question{
			{
				ID:   "q13-1",
				Text: "Do you know how to complain (and to who)?",
			},
			{
				ID:     "q13-2",
				Text:   "Have you complained? What happened?",
				Probes: []string{"Were you taken seriously?"},
			},
			{
				ID:   "q13-3",
				Text: "Do you worry complaining could affect your housing or support?",
				Probes: []string{
					"If you complained today, what do you think would happen?",
					`Has anyone ever implied you'll be punished, moved, or "labelled" for complaining?`,
				},
			},
		},
	},
	{
		ID:      "equality",
		Number:  14,
		Title:   "Equality, Accessibility & Adjustments",
		Purpose: "Fair access to support.",
		Questions: []model.Question{
			{
				ID:   "q14-1",
				Text: "Do you have needs relating to disability, sensory issues, language, culture, faith, or trauma?",
			},
			{
				ID:   "q14-2",
				Text: "Have adjustments been offered and actually put in place?",
			},
			{
				ID:   "q14-3",
				Text: "Do staff communicate in a way that works for you?",
				Probes: []string{
					"What do staff do that helps you feel regulated / safe?",
					"What do they do that makes things worse?",
				},
			},
		},
	},
	{
		ID:      "outcomes",
		Number:  15,
		Title:   "Outcomes & Impact",
		Purpose: `The big question: "is this working?"`,
		Questions: []model.Question{
			{
				ID:   "q15-1",
				Text: "Since receiving this housing + support, is your life more stable?",
			},
			{
				ID:   "q15-2",
				Text: "Is your life safer?",
			},
			{
				ID:   "q15-3",
				Text: "Is your life healthier?",
			},
			{
				ID:   "q15-4",
				Text: "Is your life less isolated?",
			},
			{
				ID:     "q15-5",
				Text:   "Has anything improved because of the support?",
				Probes: []string{"What are you most proud of achieving since moving in?"},
			},
			{
				ID:   "q15-6",
				Text: "What still isn't working?",
			},
			{
				ID:     "q15-7",
				Text:   "If support stopped tomorrow, what would be the risk to you?",
				Probes: []string{"What are the top 3 changes you want the provider to make?"},
			},
		},
	},
}

// Direct closing questions asked at the end of an interview.
var closingQuestions = []string{
	"On a scale of 0–10, how supported do you feel here?",
	"What's the biggest problem you've had with staff/support?",
	"If your friend needed help, would you recommend this place/provider? Why/why not?",
	"What would you want me to tell the provider's senior leadership?",
}
