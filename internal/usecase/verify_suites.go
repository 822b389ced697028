package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/scilla-check/internal/domain"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/domain/models"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
	"github.com/trebuchet-org/scilla-check/internal/verify"
)

// VerifySuitesParams contains parameters for a verify run
type VerifySuitesParams struct {
	// Paths of suite files; when empty the project suites directory is searched
	Paths []string
	// CaseFilter selects cases whose name fuzzy-matches it
	CaseFilter string
}

// VerifySuites checks transaction receipts against expectation suites
type VerifySuites struct {
	config   *config.RuntimeConfig
	suites   SuiteLoader
	fixtures FixtureLoader
	receipts ReceiptSource
	files    ReceiptReader
	verifier *verify.Verifier
	log      *slog.Logger
	sink     ProgressSink
}

// NewVerifySuites creates a new VerifySuites use case
func NewVerifySuites(
	cfg *config.RuntimeConfig,
	suites SuiteLoader,
	fixtures FixtureLoader,
	receipts ReceiptSource,
	files ReceiptReader,
	verifier *verify.Verifier,
	log *slog.Logger,
	sink ProgressSink,
) *VerifySuites {
	return &VerifySuites{
		config:   cfg,
		suites:   suites,
		fixtures: fixtures,
		receipts: receipts,
		files:    files,
		verifier: verifier,
		log:      log,
		sink:     sink,
	}
}

// Run executes every selected case. Failing cases are reported in the result;
// an error is only returned when the run itself could not proceed.
func (uc *VerifySuites) Run(ctx context.Context, params VerifySuitesParams) (*VerifyResult, error) {
	paths, err := uc.suitePaths(ctx, params.Paths)
	if err != nil {
		return nil, err
	}

	fixture, err := uc.loadFixture(ctx)
	if err != nil {
		return nil, err
	}
	if fixture != nil {
		uc.sink.Info(fmt.Sprintf("Using fixture %s", uc.config.FixturePath))
	}

	result := &VerifyResult{Suites: []*SuiteResult{}}
	for _, path := range paths {
		suite, err := uc.suites.LoadSuite(ctx, path)
		if err != nil {
			uc.sink.OnProgress(ctx, ProgressEvent{Stage: "failed", Message: err.Error()})
			return nil, err
		}

		cases := filterCases(suite.Cases, params.CaseFilter)
		if skipped := len(suite.Cases) - len(cases); skipped > 0 {
			result.Skipped += skipped
			uc.sink.Info(fmt.Sprintf("%s: skipped %d cases not matching %q", suite.Name, skipped, params.CaseFilter))
		}

		suiteResult := &SuiteResult{Name: suite.Name, Path: suite.Path, Cases: []*CaseResult{}}
		for i, c := range cases {
			uc.sink.OnProgress(ctx, ProgressEvent{
				Stage:   "verifying",
				Current: i + 1,
				Total:   len(cases),
				Message: fmt.Sprintf("%s: %s", suite.Name, c.Name),
				Spinner: true,
			})

			caseResult := uc.runCase(ctx, suite, c, fixture)
			suiteResult.Cases = append(suiteResult.Cases, caseResult)

			result.Total++
			if caseResult.Passed() {
				result.Passed++
			} else {
				result.Failed++
				uc.sink.Error(fmt.Sprintf("✗ %s: %s", suite.Name, c.Name))
			}
		}
		result.Suites = append(result.Suites, suiteResult)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: result.Total,
		Total:   result.Total,
		Message: "Verification finished",
	})

	return result, nil
}

func (uc *VerifySuites) suitePaths(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) > 0 {
		return paths, nil
	}

	dir := "tests"
	if uc.config.ProjectConfig != nil && uc.config.ProjectConfig.Suites != "" {
		dir = uc.config.ProjectConfig.Suites
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(uc.config.ProjectRoot, dir)
	}

	found, err := uc.suites.FindSuites(ctx, dir)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no suite files found in %s", domain.ErrInvalidSuite, dir)
	}
	return found, nil
}

func (uc *VerifySuites) loadFixture(ctx context.Context) (*models.Fixture, error) {
	if uc.config.FixturePath == "" {
		return nil, nil
	}
	fixture, err := uc.fixtures.LoadFixture(ctx, uc.config.FixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture: %w", err)
	}
	return fixture, nil
}

// filterCases keeps the cases whose name fuzzy-matches pattern, in suite order
func filterCases(cases []*models.Case, pattern string) []*models.Case {
	if pattern == "" {
		return cases
	}

	names := lo.Map(cases, func(c *models.Case, _ int) string { return c.Name })
	matched := lo.SliceToMap(fuzzy.Find(pattern, names), func(m fuzzy.Match) (int, bool) {
		return m.Index, true
	})

	return lo.Filter(cases, func(_ *models.Case, i int) bool { return matched[i] })
}

func (uc *VerifySuites) runCase(ctx context.Context, suite *models.Suite, c *models.Case, fixture *models.Fixture) *CaseResult {
	log := uc.log.With("suite", suite.Name, "case", c.Name)
	result := &CaseResult{Name: c.Name, Checks: []CheckResult{}}

	receipt, err := uc.receipt(ctx, suite, c, fixture, result)
	if err != nil {
		log.Debug("receipt unavailable", "error", err)
		uc.sink.Error(fmt.Sprintf("%s: %s: %v", suite.Name, c.Name, err))
		result.Checks = append(result.Checks, CheckResult{Kind: CheckReceipt, Error: err.Error()})
		return result
	}

	result.Checks = append(result.Checks, checkFrom(CheckStatus, verify.Exact, statusResult(receipt, c)))

	if c.ErrorCode != nil {
		result.Checks = append(result.Checks, checkFrom(CheckException, verify.Exact, exceptionResult(receipt, *c.ErrorCode)))
	}

	verifier := uc.verifier
	switch {
	case c.ExpectNoEvents:
		result.Checks = append(result.Checks, checkFrom(CheckEvents, verify.Exact, noEventsResult(receipt)))
	case c.Events != nil:
		res := verifier.Events(receipt.EventLogs, expandEvents(c.Events, fixture))
		result.Checks = append(result.Checks, checkFrom(CheckEvents, verify.Exact, res))
	}

	if c.RewardEvents != nil {
		res := verifier.RewardEvents(receipt.EventLogs, expandEvents(c.RewardEvents, fixture))
		result.Checks = append(result.Checks, checkFrom(CheckRewardEvents, verify.DescendingByFirstArgument, res))
	}

	if c.Transitions != nil {
		res := verifier.Transitions(receipt.Transitions, expandTransitions(c.Transitions, fixture))
		result.Checks = append(result.Checks, checkFrom(CheckTransitions, verify.Exact, res))
	}

	log.Debug("case finished", "passed", result.Passed())
	return result
}

func (uc *VerifySuites) receipt(ctx context.Context, suite *models.Suite, c *models.Case, fixture *models.Fixture, result *CaseResult) (*models.Receipt, error) {
	if c.ReceiptFile != "" {
		path := fixture.Expand(c.ReceiptFile)
		if !filepath.IsAbs(path) && suite.Path != "" {
			path = filepath.Join(filepath.Dir(suite.Path), path)
		}
		result.Source = path
		return uc.files.ReadReceipt(ctx, path)
	}

	result.TxID = fixture.Expand(c.TxID)
	return uc.receipts.GetReceipt(ctx, result.TxID)
}

func checkFrom(kind CheckKind, policy verify.Policy, res verify.Result) CheckResult {
	check := CheckResult{Kind: kind, Passed: res.OK(), Mismatches: res.Mismatches}
	if policy != verify.Exact {
		check.Policy = policy.Name()
	}
	return check
}

func statusResult(receipt *models.Receipt, c *models.Case) verify.Result {
	want := c.ExpectSuccess()
	if receipt.Success == want {
		return verify.Result{}
	}
	return verify.Result{Mismatches: []verify.Mismatch{{
		Index:    -1,
		Field:    verify.FieldStatus,
		Expected: statusText(want),
		Actual:   statusText(receipt.Success),
	}}}
}

func statusText(success bool) string {
	return "success=" + strconv.FormatBool(success)
}

func exceptionResult(receipt *models.Receipt, code int) verify.Result {
	want := scilla.ExceptionMessage(code)
	got, ok := receipt.FirstException()
	if !ok {
		got = "none"
	}
	if got == want {
		return verify.Result{}
	}
	return verify.Result{Mismatches: []verify.Mismatch{{
		Index:    -1,
		Field:    verify.FieldException,
		Expected: want,
		Actual:   got,
	}}}
}

func noEventsResult(receipt *models.Receipt) verify.Result {
	if len(receipt.EventLogs) == 0 {
		return verify.Result{}
	}
	names := lo.Map(receipt.EventLogs, func(e models.Event, _ int) string { return e.EventName })
	return verify.Result{Mismatches: []verify.Mismatch{{
		Index:    -1,
		Field:    verify.FieldPresence,
		Expected: "none",
		Actual:   fmt.Sprintf("%d events %v", len(names), names),
	}}}
}

// expandEvents resolves fixture references in expected parameter values
func expandEvents(events []models.ExpectedEvent, fixture *models.Fixture) []models.ExpectedEvent {
	return lo.Map(events, func(e models.ExpectedEvent, _ int) models.ExpectedEvent {
		e.GetParams = expandParams(e.GetParams, fixture)
		return e
	})
}

func expandTransitions(transitions []models.ExpectedTransition, fixture *models.Fixture) []models.ExpectedTransition {
	return lo.Map(transitions, func(t models.ExpectedTransition, _ int) models.ExpectedTransition {
		t.Recipient = fixture.Expand(t.Recipient)
		if t.Amount != nil {
			t.Amount = fixture.ExpandValue(t.Amount)
		}
		t.GetParams = expandParams(t.GetParams, fixture)
		return t
	})
}

func expandParams(get models.ParamsFunc, fixture *models.Fixture) models.ParamsFunc {
	if get == nil {
		return nil
	}
	return func() scilla.Args { return fixture.ExpandArgs(get()) }
}
