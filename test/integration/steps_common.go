package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/notify"
	"github.com/tripleswitch/complianceos/pkg/server/endpoints"
)

// owner acts for read-only checks that need the settings page
const owner = "u2"

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	instance     *ServerInstance
	user         string
	response     *http.Response
	responseBody []byte
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if s.instance != nil {
			s.instance.Stop()
			s.instance = nil
		}
		return ctx, err
	})

	// Background steps
	sc.Step(`^a ComplianceOS server is running$`, s.aServerIsRunning)
	sc.Step(`^I act as user "([^"]*)"$`, s.iActAsUser)

	// Request and response steps
	sc.Step(`^I send a (GET|POST|PUT|DELETE) request to "([^"]*)"$`, s.iSendARequestTo)
	sc.Step(`^I send a (POST|PUT) request to "([^"]*)" with body:$`, s.iSendARequestWithBody)
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the error code should be "([^"]*)"$`, s.theErrorCodeShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)

	// Access steps
	sc.Step(`^page "([^"]*)" should be (allowed|denied) for my role$`, s.pageShouldBeForMyRole)
	sc.Step(`^role "([^"]*)" should (have|lack) permission "([^"]*)"$`, s.roleShouldHavePermission)

	// Form steps
	sc.Step(`^my workflow reaches the "([^"]*)" stage$`, s.myWorkflowReachesStage)
	sc.Step(`^submission "([^"]*)" should have status "([^"]*)"$`, s.submissionShouldHaveStatus)
	sc.Step(`^I should see a "([^"]*)" notification titled "([^"]*)"$`, s.iShouldSeeANotification)

	// Document steps
	sc.Step(`^document "([^"]*)" should be at version "([^"]*)"$`, s.documentShouldBeAtVersion)
	sc.Step(`^document "([^"]*)" should list versions "([^"]*)"$`, s.documentShouldListVersions)
	sc.Step(`^document "([^"]*)" should have size "([^"]*)" uploaded on "([^"]*)"$`, s.documentShouldHaveSize)
}

// Background steps

func (s *StepsContext) aServerIsRunning() error {
	if err := s.tc.Reset(); err != nil {
		return err
	}
	instance, err := StartServer(s.tc)
	if err != nil {
		return err
	}
	s.instance = instance
	return nil
}

func (s *StepsContext) iActAsUser(id string) error {
	s.user = id
	return nil
}

// HTTP helpers

func (s *StepsContext) request(user, method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, s.instance.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if user != "" {
		req.Header.Set(identity.Header, user)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// fetch GETs path as user and decodes a 200 response into v
func (s *StepsContext) fetch(user, path string, v interface{}) error {
	if err := s.request(user, http.MethodGet, path, nil); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d: %s", path, s.response.StatusCode, s.responseBody)
	}
	return json.Unmarshal(s.responseBody, v)
}

func (s *StepsContext) iSendARequestTo(method, path string) error {
	return s.request(s.user, method, path, nil)
}

func (s *StepsContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	return s.request(s.user, method, path, []byte(body.Content))
}

func (s *StepsContext) theResponseStatusShouldBe(expected int) error {
	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theErrorCodeShouldBe(code string) error {
	var body struct {
		Error endpoints.ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(s.responseBody, &body); err != nil {
		return fmt.Errorf("response is not an error body: %s", s.responseBody)
	}
	if body.Error.Code != code {
		return fmt.Errorf("expected error code %q, got %q", code, body.Error.Code)
	}
	return nil
}

// theResponseFieldShouldBe compares the value at a dotted path, where
// numeric segments index arrays
func (s *StepsContext) theResponseFieldShouldBe(path, expected string) error {
	var v interface{}
	if err := json.Unmarshal(s.responseBody, &v); err != nil {
		return err
	}
	for _, key := range strings.Split(path, ".") {
		switch node := v.(type) {
		case map[string]interface{}:
			v = node[key]
		case []interface{}:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return fmt.Errorf("%s: no element %q", path, key)
			}
			v = node[i]
		default:
			return fmt.Errorf("%s: cannot descend into %q", path, key)
		}
	}
	if got := fmt.Sprint(v); got != expected {
		return fmt.Errorf("%s: expected %q, got %q", path, expected, got)
	}
	return nil
}

// Access steps

func (s *StepsContext) pageShouldBeForMyRole(page, verdict string) error {
	var got endpoints.PageAccessResponse
	if err := s.fetch(s.user, "/pages/"+url.PathEscape(strings.TrimPrefix(page, "/"))+"/access", &got); err != nil {
		return err
	}
	if got.Allowed != (verdict == "allowed") {
		return fmt.Errorf("page %s for %s: expected %s, got allowed=%v", page, got.Role, verdict, got.Allowed)
	}
	return nil
}

func (s *StepsContext) roleShouldHavePermission(role, verdict, permission string) error {
	var got endpoints.PermissionsResponse
	if err := s.fetch(owner, "/permissions", &got); err != nil {
		return err
	}
	for _, row := range got.Matrix {
		if row.Role.String() != role {
			continue
		}
		if row.Grants[permission] != (verdict == "have") {
			return fmt.Errorf("%s %s: expected %s, got granted=%v", role, permission, verdict, row.Grants[permission])
		}
		return nil
	}
	return fmt.Errorf("role %s not in matrix", role)
}

// Form steps

func (s *StepsContext) myWorkflowReachesStage(stage string) error {
	deadline := time.Now().Add(5 * time.Second)
	var snap forms.Snapshot
	for time.Now().Before(deadline) {
		if err := s.fetch(s.user, "/forms/workflow", &snap); err != nil {
			return err
		}
		if snap.Stage.String() == stage {
			return nil
		}
		time.Sleep(20 * time.Millisecond)
	}
	return fmt.Errorf("workflow stuck at %s (%d%%), expected %s", snap.Stage, snap.Progress, stage)
}

func (s *StepsContext) submissionShouldHaveStatus(id, status string) error {
	var got endpoints.SubmissionResponse
	if err := s.fetch(s.user, "/forms/submissions/"+id, &got); err != nil {
		return err
	}
	if got.Submission.Status.String() != status {
		return fmt.Errorf("submission %s: expected %s, got %s", id, status, got.Submission.Status)
	}
	return nil
}

func (s *StepsContext) iShouldSeeANotification(kind, title string) error {
	var got notify.Notification
	if err := s.fetch(s.user, "/notifications", &got); err != nil {
		return err
	}
	if got.Kind != kind || got.Title != title {
		return fmt.Errorf("expected %s notification %q, got %s %q", kind, title, got.Kind, got.Title)
	}
	return nil
}

// Document steps

func (s *StepsContext) document(id string) (endpoints.DocumentResponse, error) {
	var got endpoints.DocumentResponse
	err := s.fetch(s.user, "/documents/"+id, &got)
	return got, err
}

func (s *StepsContext) documentShouldBeAtVersion(id, version string) error {
	got, err := s.document(id)
	if err != nil {
		return err
	}
	if got.Document.CurrentVersion != version {
		return fmt.Errorf("document %s: expected version %s, got %s", id, version, got.Document.CurrentVersion)
	}
	return nil
}

func (s *StepsContext) documentShouldListVersions(id, list string) error {
	got, err := s.document(id)
	if err != nil {
		return err
	}
	var versions []string
	for _, v := range got.Document.Versions {
		versions = append(versions, v.Version)
	}
	if strings.Join(versions, ", ") != list {
		return fmt.Errorf("document %s: expected versions %s, got %s", id, list, strings.Join(versions, ", "))
	}
	return nil
}

func (s *StepsContext) documentShouldHaveSize(id, size, date string) error {
	got, err := s.document(id)
	if err != nil {
		return err
	}
	if got.Document.Size != size || got.Document.UploadDate != date {
		return fmt.Errorf("document %s: expected %s on %s, got %s on %s",
			id, size, date, got.Document.Size, got.Document.UploadDate)
	}
	return nil
}
