// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/piggybank/backend/config"
	"github.com/piggybank/backend/internal/infra/dependency"
	"github.com/piggybank/backend/internal/integration/persistence"
	"github.com/piggybank/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string
	identityToken  string

	// Goals created through the API, by name
	goalIDs map[string]string

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables the analysis rate limiter and delay for the suite
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("ANALYSIS_DELAY", "0")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			goalIDs:        make(map[string]string),
			cfg:            config.Load(),
		}

		// Each scenario boots the full application against a wiped snapshot
		// store, exactly as main does against a real Redis.
		ledgerRepo := persistence.NewRedisLedgerRepository(redisClient)
		storageHealth := func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		}
		injector := dependency.NewInjector(tc.cfg, ledgerRepo, storageHealth)
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerLedgerSteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I am identified as "([^"]*)"$`, iAmIdentifiedAs)
}

// registerLedgerSteps registers goal ledger setup steps.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a goal named "([^"]*)" with target "([^"]*)" exists$`, aGoalExists)
	ctx.Step(`^a periodic goal named "([^"]*)" saving "([^"]*)" percent of income exists$`, aPercentageGoalExists)
	ctx.Step(`^a periodic goal named "([^"]*)" with fixed contribution "([^"]*)" exists$`, aFixedGoalExists)
	ctx.Step(`^the monthly income is "([^"]*)"$`, theMonthlyIncomeIs)
	ctx.Step(`^I deposit "([^"]*)" into "([^"]*)"$`, iDepositInto)
	ctx.Step(`^the goal "([^"]*)" is archived$`, theGoalIsArchived)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, theResponseListShouldHaveItems)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return doRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return doRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func doRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	url := tc.server.URL + tc.expandEndpoint(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.identityToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.identityToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

// expandEndpoint substitutes {goal:Name} placeholders with the IDs of goals
// created by earlier steps.
func (tc *TestContext) expandEndpoint(endpoint string) string {
	for name, id := range tc.goalIDs {
		endpoint = strings.ReplaceAll(endpoint, "{goal:"+name+"}", id)
	}
	return endpoint
}

func iAmIdentifiedAs(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": name})
	signed, err := token.SignedString([]byte(tc.cfg.Identity.Secret))
	if err != nil {
		return ctx, fmt.Errorf("failed to sign identity token: %w", err)
	}
	tc.identityToken = signed

	return SetTestContext(ctx, tc), nil
}

func aGoalExists(ctx context.Context, name, target string) (context.Context, error) {
	return createGoal(ctx, map[string]any{
		"name":        name,
		"goal_amount": target,
	})
}

func aPercentageGoalExists(ctx context.Context, name, percentage string) (context.Context, error) {
	return createGoal(ctx, map[string]any{
		"name":                 name,
		"goal_amount":          "10000",
		"kind":                 "periodic",
		"percentage_of_income": percentage,
	})
}

func aFixedGoalExists(ctx context.Context, name, amount string) (context.Context, error) {
	return createGoal(ctx, map[string]any{
		"name":         name,
		"goal_amount":  "10000",
		"kind":         "periodic",
		"fixed_amount": amount,
	})
}

func createGoal(ctx context.Context, request map[string]any) (context.Context, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return ctx, err
	}

	ctx, err = doRequest(ctx, http.MethodPost, "/api/v1/goals", bytes.NewBuffer(payload))
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("failed to create goal, status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var created map[string]any
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return ctx, fmt.Errorf("failed to parse created goal: %w", err)
	}
	id, _ := created["id"].(string)
	name, _ := request["name"].(string)
	tc.goalIDs[name] = id

	return SetTestContext(ctx, tc), nil
}

func theMonthlyIncomeIs(ctx context.Context, amount string) (context.Context, error) {
	payload := fmt.Sprintf(`{"monthly_income": %q}`, amount)
	ctx, err := doRequest(ctx, http.MethodPut, "/api/v1/income", bytes.NewBufferString(payload))
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("failed to set income, status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return ctx, nil
}

func iDepositInto(ctx context.Context, amount, name string) (context.Context, error) {
	payload := fmt.Sprintf(`{"amount": %q}`, amount)
	return doRequest(ctx, http.MethodPost, "/api/v1/goals/{goal:"+name+"}/deposit", bytes.NewBufferString(payload))
}

func theGoalIsArchived(ctx context.Context, name string) (context.Context, error) {
	ctx, err := doRequest(ctx, http.MethodPost, "/api/v1/goals/{goal:"+name+"}/archive", nil)
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("failed to archive goal, status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return ctx, nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := lookupResponseField(ctx, field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := lookupResponseField(ctx, field)
	return err
}

func theResponseFieldShouldBeNull(ctx context.Context, field string) error {
	value, err := lookupResponseField(ctx, field)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", field, value)
	}
	return nil
}

func theResponseListShouldHaveItems(ctx context.Context, field string, expected int) error {
	value, err := lookupResponseField(ctx, field)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(list) != expected {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, expected, len(list))
	}
	return nil
}

// lookupResponseField resolves a dot-separated path ("goals.0.name") in the
// last JSON response.
func lookupResponseField(ctx context.Context, field string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}

	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range for field '%s'", part, field)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' is not addressable at '%s'", field, part)
		}
	}

	return current, nil
}
