package bank

import "careinspect/internal/model"

// The Scotland QM7 compliance sections. Each question is worth one point, so
// MaxScore always equals the question count. Question numbers run across the
// whole audit, not per section.
var scotlandSections = []model.AuditSection{
	{
		ID:            "person-centred-care",
		Title:         "PERSON-CENTRED CARE & CHOICE",
		CountryPrefix: "Scotland",
		MaxScore:      20,
		WordCountMin:  335,
		WordCountMax:  350,
		Questions: []model.AuditQuestion{
			{ID: "q1", Number: 1, Text: "Personal support plans are up-to-date, individualised and detailed?"},
			{ID: "q2", Number: 2, Text: "Service users have contributed to their own support plans?"},
			{ID: "q3", Number: 3, Text: "Support planning reflects cultural, linguistic, and identity needs?"},
			{ID: "q4", Number: 4, Text: "Plans contain clear outcomes meaningful to the person?"},
			{ID: "q5", Number: 5, Text: "Routine preferences are recorded (sleep, meals, routines)?"},
			{ID: "q6", Number: 6, Text: "Risk assessments are personalised and regularly reviewed?"},
			{ID: "q7", Number: 7, Text: "Choices around daily activities are facilitated and documented?"},
			{ID: "q8", Number: 8, Text: "Individuals are supported to make their own decisions wherever possible?"},
			{ID: "q9", Number: 9, Text: "There is clear evidence of best interest decision-making where needed?"},
			{ID: "q10", Number: 10, Text: "Alternative communication needs (Makaton, PECS, symbols) are recognised?"},
			{ID: "q11", Number: 11, Text: "Service users can choose staff supporting them where practical?"},
			{ID: "q12", Number: 12, Text: "Individuals choose their preferred social & community activities?"},
			{ID: "q13", Number: 13, Text: "Support plans include aspirations and goals beyond daily care?"},
			{ID: "q14", Number: 14, Text: "Plans reflect strengths, not just needs or deficits?"},
			{ID: "q15", Number: 15, Text: "Evidence of advance planning (e.g., for changes in health)?"},
			{ID: "q16", Number: 16, Text: "There is regular review of preferences (weekly or monthly)?"},
			{ID: "q17", Number: 17, Text: "Service users are informed of their rights and responsibilities?"},
			{ID: "q18", Number: 18, Text: "Consent to care and support is documented?"},
			{ID: "q19", Number: 19, Text: "Plans indicate adjustments for sensory impairments?"},
			{ID: "q20", Number: 20, Text: "Complaints and compliments are documented and linked to plans?"},
		},
	},
	{
		ID:            "dignity-respect-rights",
		Title:         "DIGNITY, RESPECT & RIGHTS",
		CountryPrefix: "Scotland",
		MaxScore:      15,
		WordCountMin:  300,
		WordCountMax:  310,
		Questions: []model.AuditQuestion{
			{ID: "q21", Number: 21, Text: "Staff address people using preferred names/title?"},
			{ID: "q22", Number: 22, Text: "Interactions show respect, warmth, and inclusivity?"},
			{ID: "q23", Number: 23, Text: "Privacy needs (bedrooms, personal care) are maintained?"},
			{ID: "q24", Number: 24, Text: "Personal space is respected and personalised?"},
			{ID: "q25", Number: 25, Text: "People have access to advocacy services if needed?"},
			{ID: "q26", Number: 26, Text: "Supported rights around sexuality/intimacy are honoured?"},
			{ID: "q27", Number: 27, Text: "No evidence of discriminatory language or practice?"},
			{ID: "q28", Number: 28, Text: "Dignity is maintained during personal care tasks?"},
			{ID: "q29", Number: 29, Text: "Cultural/religious practices are supported?"},
			{ID: "q30", Number: 30, Text: "Individuals are supported to manage finances safeguarding?"},
			{ID: "q31", Number: 31, Text: "Support respects gender identity and expression?"},
			{ID: "q32", Number: 32, Text: "Service users receive information in accessible formats?"},
			{ID: "q33", Number: 33, Text: "Individuals can independently access community facilities?"},
			{ID: "q34", Number: 34, Text: "Staff intervene appropriately to uphold rights?"},
			{ID: "q35", Number: 35, Text: "Family involvement is encouraged (if chosen by the person)?"},
		},
	},
	{
		ID:            "professionalism-staff-practice",
		Title:         "PROFESSIONALISM & STAFF PRACTICE",
		CountryPrefix: "Scotland",
		MaxScore:      15,
		WordCountMin:  300,
		WordCountMax:  310,
		Questions: []model.AuditQuestion{
			{ID: "q36", Number: 36, Text: "Staff present professionally (uniform, ID visible, respectful demeanour)?"},
			{ID: "q37", Number: 37, Text: "Staff maintain boundaries and confidentiality?"},
			{ID: "q38", Number: 38, Text: "Shift handovers are structured and recorded formally?"},
			{ID: "q39", Number: 39, Text: "Staff complete documentation accurately and promptly?"},
			{ID: "q40", Number: 40, Text: "Staff demonstrate knowledge of organisation policies?"},
			{ID: "q41", Number: 41, Text: "Staff use appropriate language (no jargon, respectful)?"},
			{ID: "q42", Number: 42, Text: "Feedback from service users about staff conduct is positive?"},
			{ID: "q43", Number: 43, Text: "Supervisions are regular, documented and constructive?"},
			{ID: "q44", Number: 44, Text: "Appraisals highlight strengths and areas for development?"},
			{ID: "q45", Number: 45, Text: "Staff attendance and punctuality are monitored?"},
			{ID: "q46", Number: 46, Text: "Professional conduct breaches are escalated?"},
			{ID: "q47", Number: 47, Text: "Safeguarding concerns are recognised and reported?"},
			{ID: "q48", Number: 48, Text: "Staff work collaboratively with health/social care partners?"},
			{ID: "q49", Number: 49, Text: "Handovers include person-centred risk updates?"},
			{ID: "q50", Number: 50, Text: "Staff role expectations are clearly understood and shared?"},
		},
	},
	{
		ID:            "staff-knowledge",
		Title:         "STAFF KNOWLEDGE ON INDIVIDUALS SUPPORTED",
		CountryPrefix: "Scotland",
		MaxScore:      10,
		WordCountMin:  260,
		WordCountMax:  275,
		Questions: []model.AuditQuestion{
			{ID: "q51", Number: 51, Text: "Staff can articulate individuals' preferences confidently?"},
			{ID: "q52", Number: 52, Text: "Staff demonstrate understanding of unique communication styles?"},
			{ID: "q53", Number: 53, Text: "Staff knows triggers and supports for emotional regulation?"},
			{ID: "q54", Number: 54, Text: "Staff understand each person's goals?"},
			{ID: "q55", Number: 55, Text: "Staff can locate key personal documents quickly?"},
			{ID: "q56", Number: 56, Text: "Staff know key health needs (diabetes, epilepsy, allergies)?"},
			{ID: "q57", Number: 57, Text: "Staff recognise early signs of deterioration?"},
			{ID: "q58", Number: 58, Text: "Staff know family involvement preferences?"},
			{ID: "q59", Number: 59, Text: "Staff communicate effectively with other professionals on individuals' needs?"},
			{ID: "q60", Number: 60, Text: "New staff receive a structured induction on each person?"},
		},
	},
	{
		ID:            "positive-behaviour-support",
		Title:         "POSITIVE BEHAVIOUR SUPPORT (PBS)",
		CountryPrefix: "Scotland",
		MaxScore:      10,
		WordCountMin:  300,
		WordCountMax:  315,
		Questions: []model.AuditQuestion{
			{ID: "q61", Number: 61, Text: "PBS plans exist for individuals who need them?"},
			{ID: "q62", Number: 62, Text: "PBS plans are co-produced with people and relevant others?"},
			{ID: "q63", Number: 63, Text: "PBS plans identify triggers, baseline behaviours, and proactive strategies?"},
			{ID: "q64", Number: 64, Text: "PBS plans detail least restrictive approaches?"},
			{ID: "q65", Number: 65, Text: "PBS plans reviewed regularly with data/evidence?"},
			{ID: "q66", Number: 66, Text: "Staff receive PBS training?"},
			{ID: "q67", Number: 67, Text: "Staff can describe safe de-escalation techniques?"},
			{ID: "q68", Number: 68, Text: "Any restrictive practice is documented, justified, and monitored?"},
			{ID: "q69", Number: 69, Text: "Behaviour data is collated and informs care decisions?"},
			{ID: "q70", Number: 70, Text: "PBS approaches are consistent across shifts?"},
		},
	},
	{
		ID:            "medication-management",
		Title:         "MEDICATION MANAGEMENT",
		CountryPrefix: "Scotland",
		MaxScore:      10,
		WordCountMin:  280,
		WordCountMax:  310,
		Questions: []model.AuditQuestion{
			{ID: "q71", Number: 71, Text: "Medication policies follow safe administration standards?"},
			{ID: "q72", Number: 72, Text: "Storage (locked, temperature monitored) is compliant?"},
			{ID: "q73", Number: 73, Text: "MAR charts are fully completed with no omissions?"},
			{ID: "q74", Number: 74, Text: "PRN medication guidance is clear and contextual?"},
			{ID: "q75", Number: 75, Text: "Medicine reviews happen with GP/pharmacist regularly?"},
			{ID: "q76", Number: 76, Text: "Staff administering meds are trained and competency checked?"},
			{ID: "q77", Number: 77, Text: "Errors/near misses are logged and analysed?"},
			{ID: "q78", Number: 78, Text: "Consent for medication is documented?"},
			{ID: "q79", Number: 79, Text: "Allergies and adverse reactions are clearly recorded?"},
			{ID: "q80", Number: 80, Text: "As-required medication use is reviewed for effectiveness?"},
		},
	},
	{
		ID:            "staff-training-compliance",
		Title:         "STAFF TRAINING & COMPLIANCE",
		CountryPrefix: "Scotland",
		MaxScore:      10,
		WordCountMin:  300,
		WordCountMax:  320,
		Questions: []model.AuditQuestion{
			{ID: "q81", Number: 81, Text: "Mandatory training completion rates ≥ 95%?"},
			{ID: "q82", Number: 82, Text: "Training files are current and centrally monitored?"},
			{ID: "q83", Number: 83, Text: "Training includes adult support & protection?"},
			{ID: "q84", Number: 84, Text: "Training includes equality, diversity, and inclusion?"},
			{ID: "q85", Number: 85, Text: "Training on communication needs is provided?"},
			{ID: "q86", Number: 86, Text: "Health conditions relevant to people supported are covered?"},
			{ID: "q87", Number: 87, Text: "PBS training compliance is monitored?"},
			{ID: "q88", Number: 88, Text: "First Aid and emergency training is current?"},
			{ID: "q89", Number: 89, Text: "Refresher training is scheduled proactively?"},
			{ID: "q90", Number: 90, Text: "Training effectiveness is evaluated in supervision?"},
		},
	},
	{
		ID:            "leadership-governance",
		Title:         "LEADERSHIP, GOVERNANCE & QUALITY ASSURANCE",
		CountryPrefix: "Scotland",
		MaxScore:      10,
		WordCountMin:  300,
		WordCountMax:  320,
		Questions: []model.AuditQuestion{
			{ID: "q91", Number: 91, Text: "A governance framework exists and is understood?"},
			{ID: "q92", Number: 92, Text: "Leadership roles and responsibilities are clear?"},
			{ID: "q93", Number: 93, Text: "Internal Service audits occur regularly (monthly/quarterly)?"},
			{ID: "q94", Number: 94, Text: "Actions from audits are followed up and evidenced?"},
			{ID: "q95", Number: 95, Text: "Incident reporting is timely and analysed for trends?"},
			{ID: "q96", Number: 96, Text: "Complaints are handled with documented outcomes, and compliments are recorded?"},
			{ID: "q97", Number: 97, Text: "Regulatory requirements (SCSWIS/Care Inspectorate notices) are current?"},
			{ID: "q98", Number: 98, Text: "External Partnership working is evident within the service?"},
			{ID: "q99", Number: 99, Text: "Staff retention and turnover data reviewed?"},
			{ID: "q100", Number: 100, Text: "Continuous improvement plans are in place and monitored?"},
		},
	},
}
