package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jask/slides/internal/deck"
)

var rawOutline bool

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the deck as a markdown outline",
	RunE:  runOutline,
}

func runOutline(cmd *cobra.Command, args []string) error {
	d, err := loadDeck()
	if err != nil {
		return err
	}
	md := outline(d)
	if rawOutline {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	style, width := styles.NoTTYStyle, 80
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		style = styles.DarkStyle
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render outline: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// outline renders d as markdown: one section per slide.
func outline(d deck.Deck) string {
	var b strings.Builder
	b.WriteString("# Deck outline\n")
	for i, s := range d.Slides() {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", i+1, or(s.Title, "(untitled)"))
		fmt.Fprintf(&b, "*%s* · id %d\n\n", or(string(s.Type), "no type"), s.ID)
		if s.Layout == nil {
			fmt.Fprintf(&b, "> %s\n", deck.UnknownTagMessage(s.Type))
			continue
		}
		o := &outliner{b: &b}
		s.Layout.Accept(o)
	}
	return b.String()
}

// outliner writes the text content of one layout.
type outliner struct {
	b *strings.Builder
}

func (o *outliner) line(format string, args ...any) {
	fmt.Fprintf(o.b, format+"\n", args...)
}

func (o *outliner) para(s string) {
	if s = strings.TrimSpace(s); s != "" {
		o.line("%s\n", s)
	}
}

func (o *outliner) item(title, text string) {
	title, text = strings.TrimSpace(title), strings.TrimSpace(text)
	switch {
	case title != "" && text != "":
		o.line("- **%s**: %s", title, text)
	case title != "":
		o.line("- **%s**", title)
	case text != "":
		o.line("- %s", text)
	}
}

func (o *outliner) badges(bs []deck.Badge) {
	for _, b := range bs {
		o.item(b.Title, "")
	}
}

func (o *outliner) cards(cs []deck.Card) {
	for _, c := range cs {
		o.item(c.Title, c.Text)
	}
}

func (o *outliner) modules(ms []deck.Module) {
	for _, m := range ms {
		o.item(m.DisplayName(), "")
	}
}

func (o *outliner) points(ps []deck.Point) {
	for _, p := range ps {
		o.item(strings.TrimSpace(p.ID+" "+p.Title), p.Text)
	}
}

func (o *outliner) VisitTitle(l *deck.TitleLayout) {
	o.para(l.Highlight)
	o.para(l.Subtitle)
}

func (o *outliner) VisitGrid(l *deck.GridLayout) {
	for _, c := range l.Cards {
		o.item(c.Label, c.Text)
		for _, s := range c.List {
			o.line("  - %s", s)
		}
	}
}

func (o *outliner) VisitStats(l *deck.StatsLayout) {
	o.para(l.Subtitle)
	if l.DualRole != nil {
		o.item(l.DualRole.Title, l.DualRole.Desc)
	}
	for _, s := range l.Stats {
		o.item(fmt.Sprintf("%d%s", s.Value, s.Suffix), s.Label)
	}
}

func (o *outliner) VisitConvergence(l *deck.ConvergenceLayout) {
	o.para(l.Heading)
	for _, d := range l.Domains {
		o.item(d.Title, d.Text)
	}
	o.para(l.Takeaway)
}

func (o *outliner) VisitDichotomy(l *deck.DichotomyLayout) {
	for _, side := range []*deck.Side{l.LeftSide, l.RightSide} {
		if side == nil {
			continue
		}
		o.line("### %s\n", side.Heading)
		for _, it := range side.Items {
			o.item("", it.Text)
		}
		o.line("")
	}
}

func (o *outliner) VisitSelection(l *deck.SelectionLayout) {
	o.para(l.Heading)
	for _, s := range l.Steps {
		o.item(strings.TrimSpace(s.ID+" "+s.Title), s.Desc)
	}
	if l.Scoring != nil {
		for _, seg := range l.Scoring.Data {
			o.item(seg.Label, fmt.Sprintf("%g%%", seg.Value))
		}
	}
	o.para(l.Committee)
}

func (o *outliner) VisitRoadmap(l *deck.RoadmapLayout) {
	o.para(l.Heading)
	o.para(l.Strategy)
	for _, p := range l.Phases {
		o.item(strings.TrimSpace(p.Step+" "+p.Title), p.Text)
	}
}

func (o *outliner) VisitChallenges(l *deck.ChallengesLayout) {
	o.para(l.Heading)
	for _, p := range l.Pairs {
		o.item(p.Challenge.Title, p.Solution.Text)
	}
}

func (o *outliner) VisitTraining(l *deck.TrainingLayout) {
	o.para(l.Heading)
	o.badges(l.Roles)
	o.cards(l.Methods)
	o.item(l.Volume, l.VolumeLabel)
	o.para(l.Support)
}

func (o *outliner) VisitAcceptance(l *deck.AcceptanceLayout) {
	o.para(l.Heading)
	o.badges(l.Metrics)
	if l.Trends != nil {
		o.item(l.Trends.Heading, l.Trends.Text)
	}
	o.badges(l.Drivers)
	o.para(l.Outcome)
}

func (o *outliner) VisitUsage(l *deck.UsageLayout) {
	o.para(l.Heading)
	o.modules(l.Modules)
	for _, b := range l.Benefits {
		o.item(b.Title, b.Text)
	}
	if e := l.Efficiency; e != nil {
		o.item(e.Title, strings.TrimSpace(e.Value+e.Suffix+" "+e.Text))
	}
}

func (o *outliner) VisitReporting(l *deck.ReportingLayout) {
	o.para(l.Heading)
	for _, r := range []*deck.Report{l.Operational, l.Financial} {
		if r != nil {
			o.item(r.Title, r.Desc)
		}
	}
	if l.Strategy != nil {
		o.item(l.Strategy.Title, strings.Join(l.Strategy.Items, "; "))
	}
}

func (o *outliner) VisitDatabase(l *deck.DatabaseLayout) {
	o.para(l.Heading)
	if g := l.Challenge; g != nil {
		o.item(g.Value+" "+g.Label, g.Text)
	}
	if l.Strategy != nil {
		o.cards([]deck.Card{*l.Strategy})
	}
	o.badges(l.Integrity)
	o.para(l.Objective)
}

func (o *outliner) VisitSecurity(l *deck.SecurityLayout) {
	o.para(l.Heading)
	o.cards(l.Measures)
}

func (o *outliner) VisitInsights(l *deck.InsightsLayout) {
	o.para(l.Heading)
	o.points(l.Points)
}

func (o *outliner) VisitNexus(l *deck.NexusLayout) {
	o.para(l.Heading)
	o.points(l.Points)
	o.para(l.CoreText)
}

func (o *outliner) VisitConclusion(l *deck.ConclusionLayout) {
	o.para(l.Heading)
	o.para(l.Summary)
	o.modules(l.LeftModules)
	o.modules(l.RightModules)
	if l.CTA != nil {
		o.item(l.CTA.Heading, l.CTA.Text)
	}
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
