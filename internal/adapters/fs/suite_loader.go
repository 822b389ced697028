package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trebuchet-org/scilla-check/internal/domain"
	"github.com/trebuchet-org/scilla-check/internal/domain/models"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
	"gopkg.in/yaml.v3"
)

// SuiteLoaderAdapter loads expectation suites from YAML files
type SuiteLoaderAdapter struct{}

// NewSuiteLoaderAdapter creates a new SuiteLoaderAdapter
func NewSuiteLoaderAdapter() *SuiteLoaderAdapter {
	return &SuiteLoaderAdapter{}
}

type suiteFile struct {
	Name  string      `yaml:"name"`
	Cases []yaml.Node `yaml:"cases"`
}

type caseFile struct {
	Name           string    `yaml:"name"`
	Tx             string    `yaml:"tx"`
	Receipt        string    `yaml:"receipt"`
	Success        *bool     `yaml:"success"`
	Error          *int      `yaml:"error"`
	ExpectNoEvents bool      `yaml:"expect_no_events"`
	Events         yaml.Node `yaml:"events"`
	RewardEvents   yaml.Node `yaml:"reward_events"`
	Transitions    yaml.Node `yaml:"transitions"`
}

type eventFile struct {
	Name   string    `yaml:"name"`
	Params yaml.Node `yaml:"params"`
}

type transitionFile struct {
	Tag       string    `yaml:"tag"`
	Amount    yaml.Node `yaml:"amount"`
	Recipient string    `yaml:"recipient"`
	Params    yaml.Node `yaml:"params"`
}

// LoadSuite reads the suite at path
func (l *SuiteLoaderAdapter) LoadSuite(ctx context.Context, path string) (*models.Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}

	var raw suiteFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSuite, path, err)
	}

	suite := &models.Suite{
		Name:  raw.Name,
		Path:  path,
		Cases: make([]*models.Case, 0, len(raw.Cases)),
	}
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	for i := range raw.Cases {
		c, err := parseCase(&raw.Cases[i], i)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSuite, path, err)
		}
		suite.Cases = append(suite.Cases, c)
	}

	return suite, nil
}

// FindSuites lists the .yaml and .yml files below dir. A missing directory
// has no suites.
func (l *SuiteLoaderAdapter) FindSuites(ctx context.Context, dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}

func parseCase(n *yaml.Node, index int) (*models.Case, error) {
	var raw caseFile
	if err := n.Decode(&raw); err != nil {
		return nil, fmt.Errorf("case %d: %w", index+1, err)
	}

	c := &models.Case{
		Name:           raw.Name,
		TxID:           raw.Tx,
		ReceiptFile:    raw.Receipt,
		Success:        raw.Success,
		ErrorCode:      raw.Error,
		ExpectNoEvents: raw.ExpectNoEvents,
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("case %d", index+1)
	}

	if (c.TxID == "") == (c.ReceiptFile == "") {
		return nil, fmt.Errorf("%s: exactly one of tx and receipt must be set", c.Name)
	}

	var err error
	if c.Events, err = parseEvents(&raw.Events); err != nil {
		return nil, fmt.Errorf("%s: events: %w", c.Name, err)
	}
	if c.ExpectNoEvents && c.Events != nil {
		return nil, fmt.Errorf("%s: expect_no_events and events are exclusive", c.Name)
	}
	if c.RewardEvents, err = parseEvents(&raw.RewardEvents); err != nil {
		return nil, fmt.Errorf("%s: reward_events: %w", c.Name, err)
	}
	if c.Transitions, err = parseTransitions(&raw.Transitions); err != nil {
		return nil, fmt.Errorf("%s: transitions: %w", c.Name, err)
	}

	return c, nil
}

// parseEvents returns nil when the key is absent. Null entries are
// placeholders that leave their position unchecked.
func parseEvents(n *yaml.Node) ([]models.ExpectedEvent, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list", n.Line)
	}

	events := make([]models.ExpectedEvent, 0, len(n.Content))
	for _, item := range n.Content {
		if isNull(item) {
			events = append(events, models.ExpectedEvent{})
			continue
		}

		var raw eventFile
		if err := item.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}
		if raw.Name == "" {
			return nil, fmt.Errorf("line %d: event needs a name", item.Line)
		}
		args, err := parseArgs(&raw.Params)
		if err != nil {
			return nil, err
		}
		events = append(events, models.ExpectedEvent{Name: raw.Name, GetParams: models.StaticParams(args)})
	}
	return events, nil
}

func parseTransitions(n *yaml.Node) ([]models.ExpectedTransition, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list", n.Line)
	}

	transitions := make([]models.ExpectedTransition, 0, len(n.Content))
	for _, item := range n.Content {
		if isNull(item) {
			transitions = append(transitions, models.ExpectedTransition{})
			continue
		}

		var raw transitionFile
		if err := item.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}
		if raw.Tag == "" {
			return nil, fmt.Errorf("line %d: transition needs a tag", item.Line)
		}

		t := models.ExpectedTransition{Tag: raw.Tag, Recipient: raw.Recipient}
		if !isNull(&raw.Amount) {
			amount, err := nodeValue(&raw.Amount)
			if err != nil {
				return nil, err
			}
			t.Amount = amount
		}
		args, err := parseArgs(&raw.Params)
		if err != nil {
			return nil, err
		}
		t.GetParams = models.StaticParams(args)
		transitions = append(transitions, t)
	}
	return transitions, nil
}

var _ usecase.SuiteLoader = (*SuiteLoaderAdapter)(nil)
