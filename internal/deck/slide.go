// Package deck holds the slide record model.
//
// Allowed here:
// - the closed set of layout variants and their payload shapes
// - decoding a deck document into typed records
// - static validation of a deck (unknown tags, missing sub-lists)
//
// Not allowed here:
// - navigation state, animation timing, or any rendering
package deck

// Type is the discriminant of a slide record.
type Type string

const (
	TypeTitle       Type = "title"
	TypeGrid        Type = "grid"
	TypeStats       Type = "stats"
	TypeConvergence Type = "convergence"
	TypeDichotomy   Type = "dichotomy"
	TypeSelection   Type = "selection"
	TypeRoadmap     Type = "roadmap"
	TypeChallenges  Type = "challenges"
	TypeTraining    Type = "training"
	TypeAcceptance  Type = "acceptance"
	TypeUsage       Type = "usage"
	TypeReporting   Type = "reporting"
	TypeDatabase    Type = "database"
	TypeSecurity    Type = "security"
	TypeInsights    Type = "insights"
	TypeNexus       Type = "insights-nexus"
	TypeConclusion  Type = "conclusion-monolith"
)

// Types lists every known discriminant in deck order of the reference presentation.
var Types = []Type{
	TypeTitle, TypeGrid, TypeStats, TypeConvergence, TypeDichotomy, TypeSelection,
	TypeRoadmap, TypeChallenges, TypeTraining, TypeAcceptance, TypeUsage, TypeReporting,
	TypeDatabase, TypeSecurity, TypeInsights, TypeNexus, TypeConclusion,
}

// Known reports whether t is one of the 17 layout tags.
func (t Type) Known() bool {
	_, ok := factories[t]
	return ok
}

// Slide is one record of the deck. Layout is nil when Type is unknown or missing.
type Slide struct {
	ID     int
	Type   Type
	Title  string
	Theme  []string
	Layout Layout
}

// Background returns the darkest theme stop, used as the fade target.
func (s Slide) Background() string {
	if len(s.Theme) == 0 {
		return DefaultBackground
	}
	return s.Theme[0]
}

// DefaultBackground is used when a slide carries no theme.
const DefaultBackground = "#0f2027"

// Deck is the ordered, read-only slide sequence.
type Deck struct {
	slides []Slide
}

// New copies slides into a deck.
func New(slides []Slide) Deck {
	out := make([]Slide, len(slides))
	copy(out, slides)
	return Deck{slides: out}
}

// Len returns the number of slides.
func (d Deck) Len() int { return len(d.slides) }

// At returns slide i; ok is false when i is out of range.
func (d Deck) At(i int) (Slide, bool) {
	if i < 0 || i >= len(d.slides) {
		return Slide{}, false
	}
	return d.slides[i], true
}

// Slides returns a copy of the records.
func (d Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}

// Layout is the sealed union of the 17 payload shapes.
type Layout interface {
	Type() Type
	Accept(v Visitor)
	sealed()
}

// Visitor has one method per layout variant. A new variant cannot be added
// without every visitor handling it.
type Visitor interface {
	VisitTitle(*TitleLayout)
	VisitGrid(*GridLayout)
	VisitStats(*StatsLayout)
	VisitConvergence(*ConvergenceLayout)
	VisitDichotomy(*DichotomyLayout)
	VisitSelection(*SelectionLayout)
	VisitRoadmap(*RoadmapLayout)
	VisitChallenges(*ChallengesLayout)
	VisitTraining(*TrainingLayout)
	VisitAcceptance(*AcceptanceLayout)
	VisitUsage(*UsageLayout)
	VisitReporting(*ReportingLayout)
	VisitDatabase(*DatabaseLayout)
	VisitSecurity(*SecurityLayout)
	VisitInsights(*InsightsLayout)
	VisitNexus(*NexusLayout)
	VisitConclusion(*ConclusionLayout)
}

var factories = map[Type]func() Layout{
	TypeTitle:       func() Layout { return &TitleLayout{} },
	TypeGrid:        func() Layout { return &GridLayout{} },
	TypeStats:       func() Layout { return &StatsLayout{} },
	TypeConvergence: func() Layout { return &ConvergenceLayout{} },
	TypeDichotomy:   func() Layout { return &DichotomyLayout{} },
	TypeSelection:   func() Layout { return &SelectionLayout{} },
	TypeRoadmap:     func() Layout { return &RoadmapLayout{} },
	TypeChallenges:  func() Layout { return &ChallengesLayout{} },
	TypeTraining:    func() Layout { return &TrainingLayout{} },
	TypeAcceptance:  func() Layout { return &AcceptanceLayout{} },
	TypeUsage:       func() Layout { return &UsageLayout{} },
	TypeReporting:   func() Layout { return &ReportingLayout{} },
	TypeDatabase:    func() Layout { return &DatabaseLayout{} },
	TypeSecurity:    func() Layout { return &SecurityLayout{} },
	TypeInsights:    func() Layout { return &InsightsLayout{} },
	TypeNexus:       func() Layout { return &NexusLayout{} },
	TypeConclusion:  func() Layout { return &ConclusionLayout{} },
}
