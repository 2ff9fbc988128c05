package deck

// Shared sub-records.

// Badge is a short labelled icon.
type Badge struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

// Card is a titled block of text with an accent colour.
type Card struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// Point is a numbered insight.
type Point struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Text     string `yaml:"text"`
	Icon     string `yaml:"icon"`
	Color    string `yaml:"color"`
	Position string `yaml:"position"`
}

// Segment is one slice of a progress ring; Value is a percent of the full circle.
type Segment struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
}

type DualRole struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type Solution struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon"`
}

type Trends struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
}

type Efficiency struct {
	Title  string `yaml:"title"`
	Value  string `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Text   string `yaml:"text"`
}

// Checklist is a titled list of short statements.
type Checklist struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Gauge is a headline figure drawn as a filling bar.
type Gauge struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

type CTA struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
}

type TitleLayout struct {
	Highlight string `yaml:"highlight"`
	Subtitle  string `yaml:"subtitle"`
}

// GridCard is a HUD card; Cards[0] of a grid is the core goal.
type GridCard struct {
	Label string   `yaml:"label"`
	Text  string   `yaml:"text"`
	List  []string `yaml:"list"`
	Icon  string   `yaml:"icon"`
}

type GridLayout struct {
	Cards []GridCard `yaml:"cards"`
}

type Stat struct {
	Label  string `yaml:"label"`
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Icon   string `yaml:"icon"`
}

type StatsLayout struct {
	Subtitle string    `yaml:"subtitle"`
	DualRole *DualRole `yaml:"dualRole"`
	Stats    []Stat    `yaml:"stats"`
}

type Domain struct {
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Icon   string `yaml:"icon"`
	Accent string `yaml:"accent"`
}

type ConvergenceLayout struct {
	Heading  string   `yaml:"heading"`
	Domains  []Domain `yaml:"domains"`
	Takeaway string   `yaml:"takeaway"`
}

type SideItem struct {
	Text      string `yaml:"text"`
	Icon      string `yaml:"icon"`
	Highlight bool   `yaml:"highlight"`
}

type Side struct {
	Heading string     `yaml:"heading"`
	Accent  string     `yaml:"accent"`
	Icon    string     `yaml:"icon"`
	Items   []SideItem `yaml:"items"`
}

type DichotomyLayout struct {
	LeftSide  *Side `yaml:"leftSide"`
	RightSide *Side `yaml:"rightSide"`
}

type Step struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type Scoring struct {
	Title string    `yaml:"title"`
	Data  []Segment `yaml:"data"`
}

type SelectionLayout struct {
	Heading   string   `yaml:"heading"`
	Steps     []Step   `yaml:"steps"`
	Scoring   *Scoring `yaml:"scoring"`
	Committee string   `yaml:"committee"`
}

type Phase struct {
	Step  string `yaml:"step"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

type RoadmapLayout struct {
	Heading  string  `yaml:"heading"`
	Strategy string  `yaml:"strategy"`
	Phases   []Phase `yaml:"phases"`
}

type Pair struct {
	ID        int      `yaml:"id"`
	Challenge Badge    `yaml:"challenge"`
	Solution  Solution `yaml:"solution"`
}

type ChallengesLayout struct {
	Heading string `yaml:"heading"`
	Pairs   []Pair `yaml:"pairs"`
}

type TrainingLayout struct {
	Heading     string  `yaml:"heading"`
	Roles       []Badge `yaml:"roles"`
	Methods     []Card  `yaml:"methods"`
	Volume      string  `yaml:"volume"`
	VolumeLabel string  `yaml:"volumeLabel"`
	Support     string  `yaml:"support"`
}

type AcceptanceLayout struct {
	Heading string  `yaml:"heading"`
	Metrics []Badge `yaml:"metrics"`
	Trends  *Trends `yaml:"trends"`
	Drivers []Badge `yaml:"drivers"`
	Outcome string  `yaml:"outcome"`
}

type Module struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// DisplayName prefers Name, falling back to Label.
func (m Module) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Label
}

type Benefit struct {
	Title    string `yaml:"title"`
	Text     string `yaml:"text"`
	Icon     string `yaml:"icon"`
	Position string `yaml:"position"`
}

type UsageLayout struct {
	Heading    string      `yaml:"heading"`
	Modules    []Module    `yaml:"modules"`
	Benefits   []Benefit   `yaml:"benefits"`
	Efficiency *Efficiency `yaml:"efficiency"`
}

type Report struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	Desc  string `yaml:"desc"`
	Color string `yaml:"color"`
}

type ReportingLayout struct {
	Heading     string     `yaml:"heading"`
	Operational *Report    `yaml:"operational"`
	Financial   *Report    `yaml:"financial"`
	Strategy    *Checklist `yaml:"strategy"`
}

type DatabaseLayout struct {
	Heading   string  `yaml:"heading"`
	Challenge *Gauge  `yaml:"challenge"`
	Strategy  *Card   `yaml:"strategy"`
	Integrity []Badge `yaml:"integrity"`
	Objective string  `yaml:"objective"`
}

type SecurityLayout struct {
	Heading  string `yaml:"heading"`
	CoreIcon string `yaml:"coreIcon"`
	Measures []Card `yaml:"measures"`
}

type InsightsLayout struct {
	Heading string  `yaml:"heading"`
	Points  []Point `yaml:"points"`
}

type NexusLayout struct {
	Heading  string  `yaml:"heading"`
	CoreText string  `yaml:"coreText"`
	Points   []Point `yaml:"points"`
}

type ConclusionLayout struct {
	Heading      string   `yaml:"heading"`
	Summary      string   `yaml:"summary"`
	LeftModules  []Module `yaml:"leftModules"`
	RightModules []Module `yaml:"rightModules"`
	CTA          *CTA     `yaml:"cta"`
	FinalMessage string   `yaml:"finalMessage"`
}

func (*TitleLayout) Type() Type       { return TypeTitle }
func (*GridLayout) Type() Type        { return TypeGrid }
func (*StatsLayout) Type() Type       { return TypeStats }
func (*ConvergenceLayout) Type() Type { return TypeConvergence }
func (*DichotomyLayout) Type() Type   { return TypeDichotomy }
func (*SelectionLayout) Type() Type   { return TypeSelection }
func (*RoadmapLayout) Type() Type     { return TypeRoadmap }
func (*ChallengesLayout) Type() Type  { return TypeChallenges }
func (*TrainingLayout) Type() Type    { return TypeTraining }
func (*AcceptanceLayout) Type() Type  { return TypeAcceptance }
func (*UsageLayout) Type() Type       { return TypeUsage }
func (*ReportingLayout) Type() Type   { return TypeReporting }
func (*DatabaseLayout) Type() Type    { return TypeDatabase }
func (*SecurityLayout) Type() Type    { return TypeSecurity }
func (*InsightsLayout) Type() Type    { return TypeInsights }
func (*NexusLayout) Type() Type       { return TypeNexus }
func (*ConclusionLayout) Type() Type  { return TypeConclusion }

func (l *TitleLayout) Accept(v Visitor)       { v.VisitTitle(l) }
func (l *GridLayout) Accept(v Visitor)        { v.VisitGrid(l) }
func (l *StatsLayout) Accept(v Visitor)       { v.VisitStats(l) }
func (l *ConvergenceLayout) Accept(v Visitor) { v.VisitConvergence(l) }
func (l *DichotomyLayout) Accept(v Visitor)   { v.VisitDichotomy(l) }
func (l *SelectionLayout) Accept(v Visitor)   { v.VisitSelection(l) }
func (l *RoadmapLayout) Accept(v Visitor)     { v.VisitRoadmap(l) }
func (l *ChallengesLayout) Accept(v Visitor)  { v.VisitChallenges(l) }
func (l *TrainingLayout) Accept(v Visitor)    { v.VisitTraining(l) }
func (l *AcceptanceLayout) Accept(v Visitor)  { v.VisitAcceptance(l) }
func (l *UsageLayout) Accept(v Visitor)       { v.VisitUsage(l) }
func (l *ReportingLayout) Accept(v Visitor)   { v.VisitReporting(l) }
func (l *DatabaseLayout) Accept(v Visitor)    { v.VisitDatabase(l) }
func (l *SecurityLayout) Accept(v Visitor)    { v.VisitSecurity(l) }
func (l *InsightsLayout) Accept(v Visitor)    { v.VisitInsights(l) }
func (l *NexusLayout) Accept(v Visitor)       { v.VisitNexus(l) }
func (l *ConclusionLayout) Accept(v Visitor)  { v.VisitConclusion(l) }

func (*TitleLayout) sealed()       {}
func (*GridLayout) sealed()        {}
func (*StatsLayout) sealed()       {}
func (*ConvergenceLayout) sealed() {}
func (*DichotomyLayout) sealed()   {}
func (*SelectionLayout) sealed()   {}
func (*RoadmapLayout) sealed()     {}
func (*ChallengesLayout) sealed()  {}
func (*TrainingLayout) sealed()    {}
func (*AcceptanceLayout) sealed()  {}
func (*UsageLayout) sealed()       {}
func (*ReportingLayout) sealed()   {}
func (*DatabaseLayout) sealed()    {}
func (*SecurityLayout) sealed()    {}
func (*InsightsLayout) sealed()    {}
func (*NexusLayout) sealed()       {}
func (*ConclusionLayout) sealed()  {}
