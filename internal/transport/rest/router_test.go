package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careinspect/internal/bank"
	"careinspect/internal/model"
	"careinspect/internal/sequence"
	"careinspect/internal/service"
	"careinspect/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	b := bank.New()
	container := &Container{
		InspectionService: service.NewInspectionService(store.NewInspectionStore(), b),
		AuditService:      service.NewAuditService(store.NewAuditStore(), b, sequence.NewMemory()),
		ReportService:     service.NewReportService(b),
		AnalyzerService:   service.NewAnalyzerService(b),
		Bank:              b,
	}
	srv := httptest.NewServer(NewRouter(container))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}, out interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	resp := doJSON(t, http.MethodGet, srv.URL+"/health", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestSectionsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var body struct {
		Sections         []model.Section `json:"sections"`
		ClosingQuestions []string        `json:"closingQuestions"`
	}
	resp := doJSON(t, http.MethodGet, srv.URL+"/v1/sections", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body.Sections, 15)
	assert.Len(t, body.ClosingQuestions, 4)
}

func TestAuditSectionsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Sections      []model.AuditSection `json:"sections"`
		TotalMaxScore int                  `json:"totalMaxScore"`
	}
	resp := doJSON(t, http.MethodGet, srv.URL+"/v1/audit-sections?country=scotland", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body.Sections, 8)
	assert.Equal(t, 100, body.TotalMaxScore)

	resp = doJSON(t, http.MethodGet, srv.URL+"/v1/audit-sections?country=atlantis", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInspectionFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	var sess model.InspectionSession
	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/inspections", nil, &sess)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, sess.ID)
	base := srv.URL + "/v1/inspections/" + sess.ID

	// Starting before setup is complete is a conflict, not a crash.
	resp = doJSON(t, http.MethodPost, base+"/start", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, base+"/setup", model.InspectionSetup{
		PropertyName:         "Rowan House",
		ProviderName:         "Northside Care Ltd",
		ResidentsInterviewed: 4,
		TotalResidents:       12,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, base+"/start", nil, &sess)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StepQuestioning, sess.Step)

	resp = doJSON(t, http.MethodPut, base+"/sections/support-understanding", map[string]interface{}{
		"score":        8,
		"whyThisScore": "Clear, consistent answers.",
	}, &sess)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 8, sess.Responses["support-understanding"].Score)

	resp = doJSON(t, http.MethodPut, base+"/sections/support-understanding", map[string]interface{}{"score": 11}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, base+"/sections/not-a-section", map[string]interface{}{"score": 5}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var progress map[string]float64
	resp = doJSON(t, http.MethodGet, base+"/progress", nil, &progress)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 1.0/15.0*100, progress["progress"], 1e-9, "1 of 15 sections complete")

	var rep model.InspectionReport
	resp = doJSON(t, http.MethodGet, base+"/report", nil, &rep)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 8.0, rep.OverallScore)
	assert.Equal(t, model.VerdictGood, rep.OverallVerdict)
}

func TestAuditFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	var sess model.AuditSession
	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/audits", nil, &sess)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	base := srv.URL + "/v1/audits/" + sess.ID

	resp = doJSON(t, http.MethodPut, base+"/setup", map[string]interface{}{
		"serviceType": "prep4life",
		"country":     "scotland",
		"serviceName": "Harbour View",
		"keyContact1": map[string]string{"name": "Jo Bright", "email": "jo@example.org", "phone": "0131 555 0100"},
	}, &sess)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "S-101", sess.Setup.AuditNumber)

	resp = doJSON(t, http.MethodPost, base+"/start", nil, &sess)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.StepAudit, sess.Step)

	// The Answer wire shape is true / false / null.
	resp = doJSON(t, http.MethodPut, base+"/sections/person-centred-care/answers/q1",
		map[string]interface{}{"answer": true}, &sess)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, sess.Sections["person-centred-care"].Score)

	// Leaving with save on an incomplete sheet is a conflict.
	resp = doJSON(t, http.MethodPost, base+"/next", map[string]interface{}{"saveNarrative": true}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The escape hatch still advances.
	resp = doJSON(t, http.MethodPost, base+"/next", map[string]interface{}{"saveNarrative": false}, &sess)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, sess.CurrentSectionIndex)

	var rep model.AuditReport
	resp = doJSON(t, http.MethodGet, base+"/report", nil, &rep)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "S-101", rep.AuditNumber)
	assert.Equal(t, 1, rep.TotalScore)
	assert.Equal(t, 100, rep.TotalMaxScore)
}

func TestUnknownSessionIs404(t *testing.T) {
	srv := newTestServer(t)
	for _, url := range []string{
		"/v1/inspections/ghost",
		"/v1/audits/ghost",
		"/v1/inspections/ghost/report",
		"/v1/audits/ghost/report",
	} {
		resp := doJSON(t, http.MethodGet, srv.URL+url, nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, url)
	}
}

func TestAnalysisEndpointServesBundledAnalysis(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	srv := newTestServer(t)

	var body model.QuestionAnalysis
	resp := doJSON(t, http.MethodPost, srv.URL+"/v1/analysis/questions", nil, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Cached, "no API key in tests")
	assert.NotEmpty(t, body.Analysis)
	assert.NotEmpty(t, body.Model)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/v1/sections", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
