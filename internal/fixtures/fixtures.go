// Package fixtures holds the canned catalog the mock API answers with.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/adanyl0v/aggo-mock-api/internal/models"
)

//go:embed fixtures.yaml
var embeddedCatalog []byte

var (
	ErrNoIssues           = errors.New("catalog has no issues")
	ErrDuplicateIssue     = errors.New("duplicate issue id")
	ErrInvalidSeverity    = errors.New("invalid issue severity")
	ErrFixForUnknownIssue = errors.New("fix references unknown issue")
)

type Fix struct {
	Message         string         `yaml:"message"`
	EstimatedImpact string         `yaml:"estimated_impact"`
	ImpactPercent   int            `yaml:"impact_percent"`
	Preview         models.Preview `yaml:"preview"`
}

type ChatReply struct {
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}

type Chat struct {
	DefaultReply string      `yaml:"default_reply"`
	Replies      []ChatReply `yaml:"replies"`
}

type ScriptStep struct {
	Content  string   `yaml:"content"`
	State    string   `yaml:"state"`
	Icon     string   `yaml:"icon"`
	Progress *float64 `yaml:"progress"`
	DelayMS  int      `yaml:"delay_ms"`
}

func (s ScriptStep) Delay() time.Duration {
	return time.Duration(s.DelayMS) * time.Millisecond
}

// Catalog is immutable once parsed.
type Catalog struct {
	OverallScore int                     `yaml:"overall_score"`
	Issues       []models.Issue          `yaml:"issues"`
	Fixes        map[string]Fix          `yaml:"fixes"`
	Chat         Chat                    `yaml:"chat"`
	Scripts      map[string][]ScriptStep `yaml:"scripts"`
	Cards        []models.TaskCard       `yaml:"task_cards"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	catalog, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Errorf("embedded fixtures: %w", err))
	}
	return catalog
}

// Load reads a catalog from path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embeddedCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	catalog := new(Catalog)
	err := yaml.Unmarshal(data, catalog)
	if err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	err = catalog.validate()
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func (c *Catalog) validate() error {
	if len(c.Issues) == 0 {
		return ErrNoIssues
	}

	seen := make(map[string]struct{}, len(c.Issues))
	for _, issue := range c.Issues {
		if _, ok := seen[issue.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateIssue, issue.ID)
		}
		seen[issue.ID] = struct{}{}

		if !issue.Severity.Valid() {
			return fmt.Errorf("%w: %s has %q", ErrInvalidSeverity, issue.ID, issue.Severity)
		}
	}

	for id := range c.Fixes {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: %s", ErrFixForUnknownIssue, id)
		}
	}
	return nil
}

func (c *Catalog) Issue(id string) (models.Issue, bool) {
	for _, issue := range c.Issues {
		if issue.ID == id {
			return issue, true
		}
	}
	return models.Issue{}, false
}

func (c *Catalog) Fix(id string) (Fix, bool) {
	fix, ok := c.Fixes[id]
	return fix, ok
}

// Results builds the diagnostic for a store. Every store gets the same
// issues in catalog order.
func (c *Catalog) Results(storeURL string) models.ScanResults {
	issues := make([]models.Issue, len(c.Issues))
	copy(issues, c.Issues)

	return models.ScanResults{
		StoreURL:     storeURL,
		OverallScore: c.OverallScore,
		Issues:       issues,
		Summary:      models.Summarize(issues),
	}
}

// Reply picks the first reply with a keyword that starts a word of message.
func (c *Catalog) Reply(message string) string {
	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, reply := range c.Chat.Replies {
		for _, keyword := range reply.Keywords {
			keyword = strings.ToLower(keyword)
			for _, word := range words {
				if strings.HasPrefix(word, keyword) {
					return reply.Reply
				}
			}
		}
	}
	return c.Chat.DefaultReply
}

func (c *Catalog) Script(name string) ([]ScriptStep, bool) {
	steps, ok := c.Scripts[name]
	return steps, ok
}

func (c *Catalog) TaskCards() []models.TaskCard {
	cards := make([]models.TaskCard, len(c.Cards))
	copy(cards, c.Cards)
	return cards
}
