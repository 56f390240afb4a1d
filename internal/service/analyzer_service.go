package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"careinspect/internal/bank"
	"careinspect/internal/config"
	"careinspect/internal/model"
)

// AnalyzerService critiques the inspection question bank against UK
// supported-housing regulatory frameworks using an OpenAI-compatible chat
// API. Without an API key, or when the call fails, it serves the bundled
// analysis so the endpoint always answers.
type AnalyzerService struct {
	config *config.AnalyzerConfig
	client *http.Client
	bank   *bank.Bank
}

// NewAnalyzerService creates an analyzer over the question bank, configured
// from the environment.
func NewAnalyzerService(b *bank.Bank) *AnalyzerService {
	cfg := config.DefaultAnalyzerConfig()
	return &AnalyzerService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		bank: b,
	}
}

// Analyze runs the question bank through the analysis model.
func (s *AnalyzerService) Analyze(ctx context.Context) (*model.QuestionAnalysis, error) {
	if !s.config.IsEnabled() {
		return s.cachedAnalysis(), nil
	}

	prompt, err := s.buildPrompt()
	if err != nil {
		return s.cachedAnalysis(), nil
	}
	content, usedModel, err := s.callChat(ctx, prompt)
	if err != nil {
		return s.cachedAnalysis(), nil
	}

	return &model.QuestionAnalysis{
		Analysis:    content,
		Model:       usedModel,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_completion_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *AnalyzerService) callChat(ctx context.Context, prompt string) (string, string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       s.config.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("analysis API returned %d: %s", resp.StatusCode, data)
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", "", fmt.Errorf("analysis API returned no content")
	}
	return out.Choices[0].Message.Content, out.Model, nil
}

func (s *AnalyzerService) buildPrompt() (string, error) {
	type promptQuestion struct {
		Text   string   `json:"text"`
		Probes []string `json:"probes"`
	}
	type promptSection struct {
		SectionNumber int              `json:"sectionNumber"`
		SectionTitle  string           `json:"sectionTitle"`
		Purpose       string           `json:"purpose"`
		Questions     []promptQuestion `json:"questions"`
	}

	var sections []promptSection
	for _, sec := range s.bank.InspectionSections() {
		ps := promptSection{
			SectionNumber: sec.Number,
			SectionTitle:  sec.Title,
			Purpose:       sec.Purpose,
		}
		for _, q := range sec.Questions {
			probes := q.Probes
			if probes == nil {
				probes = []string{}
			}
			ps.Questions = append(ps.Questions, promptQuestion{Text: q.Text, Probes: probes})
		}
		sections = append(sections, ps)
	}

	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(analysisPromptTemplate, data), nil
}

func (s *AnalyzerService) cachedAnalysis() *model.QuestionAnalysis {
	return &model.QuestionAnalysis{
		Analysis:    cachedAnalysisText,
		Model:       cachedAnalysisModel,
		GeneratedAt: cachedAnalysisDate,
		Cached:      true,
	}
}

const analysisPromptTemplate = `You are an expert in supported housing regulation, care quality assessment, and social care inspection frameworks in the UK. You have deep knowledge of all regulatory bodies, legislation, and best practice guidance.

Your task is to critically evaluate a set of inspection questions designed to assess the quality of supported housing services. Compare these questions against ALL authoritative guidance and regulatory standards including:

**Regulatory Bodies & Standards:**
1. CQC (Care Quality Commission) - All 5 Key Questions (Safe, Effective, Caring, Responsive, Well-led) and Key Lines of Enquiry (KLOEs)
2. Housing Ombudsman - Complaint Handling Code, Spotlight reports, resident voice standards
3. Regulator of Social Housing - All Consumer Standards (Safety & Quality, Transparency, Tenancy, Neighbourhood & Community)
4. NICE Guidelines - Mental health, substance misuse, trauma, supported living
5. The Care Act 2014 - All safeguarding principles, wellbeing duties, advocacy requirements
6. Making Safeguarding Personal - Outcome-focused, person-led approach
7. Supported Housing National Statement of Expectations - All quality standards
8. Trauma-Informed Care principles - ACEs awareness, re-traumatisation prevention
9. Mental Capacity Act 2005 - Capacity assessment, best interests, DoLS
10. Human Rights Act - Articles 2, 3, 5, 8, 14
11. Equality Act 2010 - Protected characteristics, reasonable adjustments
12. Health and Safety at Work Act - Environmental safety
13. Fire Safety (England) Regulations 2022 - Building safety
14. Data Protection Act 2018 / UK GDPR - Confidentiality, information governance

**Provide an EXHAUSTIVE analysis with the following structure:**

# EXECUTIVE SUMMARY
- Overall score out of 100 with clear justification
- Top 3 strengths
- Top 3 critical gaps

# DETAILED STRENGTHS ANALYSIS
For each strength, cite the specific regulatory requirement it addresses.

# COMPREHENSIVE GAP ANALYSIS
Organise by regulatory framework. For EACH gap:
- Which specific clause/standard is not addressed
- Why this matters for residents
- Risk level (Critical/High/Medium/Low)
- Specific harm that could occur if unaddressed

# MISSING QUESTIONS - DETAILED SUGGESTIONS
For each gap identified, provide:
- 3-5 specific questions that should be added
- The exact wording to use
- Which probing questions to include
- Which regulatory requirement each addresses
- Where in the inspection framework it should sit

# QUESTION QUALITY CRITIQUE
Review each existing question for leading language, embedded assumptions, clarity and accessibility, and whether it will actually elicit useful information.

Here are the inspection questions to analyse:

%s`

const (
	cachedAnalysisModel = "o1"
	cachedAnalysisDate  = "2026-02-04"
)

const cachedAnalysisText = `# EXECUTIVE SUMMARY

**Overall score: 85/100.** The question set is strongly resident-centred and covers the core quality-of-support territory well, but leaves gaps around mental capacity, the physical environment, and workforce governance.

**Top 3 strengths**
- Strong resident-centred focus aligned with the CQC person-centred approach and Making Safeguarding Personal
- Comprehensive safeguarding coverage meeting Care Act 2014 duties
- Excellent coverage of complaints and raising concerns per Housing Ombudsman standards

**Top 3 critical gaps**
- Mental Capacity Act compliance: no questions on capacity assessment or best interests
- Property condition and environmental safety not addressed
- Staff competency, training and governance largely missing

# DETAILED STRENGTHS ANALYSIS

**Resident-Centred Focus.** Questions require the resident's own perspective, aligning with the CQC "Caring" and "Responsive" domains and Making Safeguarding Personal principles.

**Safeguarding Coverage.** Section 9 directly assesses risk of abuse or neglect (Care Act 2014 Section 42; CQC "Safe" domain; RSH Tenant Safety Standard).

**Respect & Dignity.** Section 3 tackles whether individuals feel respected and listened to (CQC "Caring" domain; Human Rights Act Article 8).

**Consent and Control.** Section 4 explicitly raises coercion and threats (Mental Capacity Act 2005; Human Rights Act; NICE autonomy guidelines).

**Complaints Handling.** Section 13 is well aligned with complaint handling requirements (Housing Ombudsman Complaint Handling Code; RSH Consumer Standards).

**Holistic Support.** Sections 6, 7, 8 and 12 cover practical help, mental health, medication, and coordination (CQC "Effective" domain; NICE integrated support guidelines).

# COMPREHENSIVE GAP ANALYSIS

**Mental Capacity & Best Interests (Critical).** No probing about how staff handle situations where a resident may lack capacity. Without it, decisions may be made for residents unlawfully (Mental Capacity Act 2005; DoLS).

**Environmental Safety & Property Condition (High).** Nothing asks about the state of the building, repairs, fire safety or hazards (Health and Safety at Work Act; Fire Safety (England) Regulations 2022; RSH Safety & Quality Standard).

**Staff Competency, Training & Supervision (High).** Residents are not asked whether staff seem skilled, trained or supported, leaving the CQC "Well-led" and "Effective" domains thin.

**Confidentiality & Data Protection (Medium).** No question covers whether personal information is handled respectfully (Data Protection Act 2018 / UK GDPR).

**Tenancy Security & Move-On (Medium).** Questions do not explore eviction threats, tenancy rights or transition planning (RSH Tenancy Standard; National Statement of Expectations).

# MISSING QUESTIONS - DETAILED SUGGESTIONS

- "When you have a big decision to make, how do staff help you understand your options?" with probes on advocacy and best-interests meetings (Mental Capacity Act 2005). Sits best alongside choice and control.
- "How safe and well looked after does the building feel?" with probes on repairs, fire drills and hazards (Fire Safety Regulations; RSH Safety & Quality). Sits best as a new environment section.
- "Do the staff who support you seem to know what they're doing?" with probes on new staff, agency cover and supervision (CQC Well-led). Sits best alongside reliability.
- "Who can see your personal information, and were you asked about that?" (UK GDPR). Sits best alongside respect and dignity.
- "Has anyone ever talked to you about where you might live next?" with probes on tenancy rights and eviction worries (RSH Tenancy Standard). Sits best alongside outcomes.

# QUESTION QUALITY CRITIQUE

The open phrasing is mostly neutral and accessible. A few items assume the resident already receives a service element ("your support plan") rather than first asking whether one exists; prefacing with an existence check would avoid embedded assumptions. Probes are concrete and usefully behavioural throughout.`
