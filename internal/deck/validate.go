package deck

import (
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Severity ranks a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding for a slide.
type Issue struct {
	Position int // 1-based position in the deck
	SlideID  int
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("slide %d (id %d) %s: %s", i.Position, i.SlideID, i.Severity, i.Message)
}

// Validate reports unknown tags, duplicate ids and missing sub-records. It never
// rejects a deck; callers decide whether issues are fatal.
func Validate(d Deck) []Issue {
	var issues []Issue
	seen := map[int]int{}
	for i, s := range d.slides {
		pos := i + 1
		add := func(sev Severity, format string, args ...any) {
			issues = append(issues, Issue{Position: pos, SlideID: s.ID, Severity: sev, Message: fmt.Sprintf(format, args...)})
		}
		if prev, dup := seen[s.ID]; dup {
			add(SeverityError, "id %d already used by slide %d", s.ID, prev)
		} else {
			seen[s.ID] = pos
		}
		if s.Layout == nil {
			add(SeverityError, "%s", UnknownTagMessage(s.Type))
			continue
		}
		c := &checker{}
		s.Layout.Accept(c)
		for _, m := range c.missing {
			add(SeverityWarning, "missing %s", m)
		}
		for _, n := range c.notes {
			add(SeverityWarning, "%s", n)
		}
	}
	return issues
}

// UnknownTagMessage describes an unrecognised tag, with a suggestion when one is close.
func UnknownTagMessage(t Type) string {
	if t == "" {
		return "missing type"
	}
	if s, ok := Suggest(string(t)); ok {
		return fmt.Sprintf("unknown type %q (did you mean %q?)", t, s)
	}
	return fmt.Sprintf("unknown type %q", t)
}

// Suggest returns the known tag closest to tag when the edit distance is small
// relative to its length.
func Suggest(tag string) (Type, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return "", false
	}
	best, bestDist := Type(""), math.MaxInt
	for _, t := range Types {
		if d := levenshtein.ComputeDistance(tag, string(t)); d < bestDist {
			best, bestDist = t, d
		}
	}
	limit := len(tag) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist > limit {
		return "", false
	}
	return best, true
}

// checker records sub-records a layout expects but the payload lacks.
type checker struct {
	missing []string
	notes   []string
}

func (c *checker) need(ok bool, what string) {
	if !ok {
		c.missing = append(c.missing, what)
	}
}

func (c *checker) VisitTitle(l *TitleLayout) {}

func (c *checker) VisitGrid(l *GridLayout) {
	c.need(len(l.Cards) > 0, "cards")
}

func (c *checker) VisitStats(l *StatsLayout) {
	c.need(l.DualRole != nil, "dualRole")
	c.need(len(l.Stats) > 0, "stats")
}

func (c *checker) VisitConvergence(l *ConvergenceLayout) {
	c.need(len(l.Domains) > 0, "domains")
}

func (c *checker) VisitDichotomy(l *DichotomyLayout) {
	c.need(l.LeftSide != nil, "leftSide")
	c.need(l.RightSide != nil, "rightSide")
}

func (c *checker) VisitSelection(l *SelectionLayout) {
	c.need(len(l.Steps) > 0, "steps")
	c.need(l.Scoring != nil && len(l.Scoring.Data) > 0, "scoring.data")
	if l.Scoring == nil {
		return
	}
	var sum float64
	for _, s := range l.Scoring.Data {
		sum += s.Value
	}
	if len(l.Scoring.Data) > 0 && sum != 100 {
		c.notes = append(c.notes, fmt.Sprintf("scoring segments sum to %g, ring will not close exactly", sum))
	}
}

func (c *checker) VisitRoadmap(l *RoadmapLayout) {
	c.need(len(l.Phases) > 0, "phases")
}

func (c *checker) VisitChallenges(l *ChallengesLayout) {
	c.need(len(l.Pairs) > 0, "pairs")
}

func (c *checker) VisitTraining(l *TrainingLayout) {
	c.need(len(l.Roles) > 0, "roles")
	c.need(len(l.Methods) > 0, "methods")
}

func (c *checker) VisitAcceptance(l *AcceptanceLayout) {
	c.need(len(l.Metrics) > 0, "metrics")
	c.need(l.Trends != nil, "trends")
	c.need(len(l.Drivers) > 0, "drivers")
}

func (c *checker) VisitUsage(l *UsageLayout) {
	c.need(len(l.Modules) > 0, "modules")
	c.need(len(l.Benefits) >= 2, "benefits (two entries)")
	c.need(l.Efficiency != nil, "efficiency")
}

func (c *checker) VisitReporting(l *ReportingLayout) {
	c.need(l.Operational != nil, "operational")
	c.need(l.Financial != nil, "financial")
	c.need(l.Strategy != nil, "strategy")
}

func (c *checker) VisitDatabase(l *DatabaseLayout) {
	c.need(l.Challenge != nil, "challenge")
	c.need(l.Strategy != nil, "strategy")
	c.need(len(l.Integrity) > 0, "integrity")
}

func (c *checker) VisitSecurity(l *SecurityLayout) {
	c.need(len(l.Measures) > 0, "measures")
}

func (c *checker) VisitInsights(l *InsightsLayout) {
	c.need(len(l.Points) > 0, "points")
}

func (c *checker) VisitNexus(l *NexusLayout) {
	c.need(len(l.Points) >= 3, "points (three entries)")
}

func (c *checker) VisitConclusion(l *ConclusionLayout) {
	c.need(len(l.LeftModules) > 0, "leftModules")
	c.need(len(l.RightModules) > 0, "rightModules")
	c.need(l.CTA != nil, "cta")
}
