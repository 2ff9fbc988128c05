package layouts

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/slides/internal/deck"
	"github.com/jask/slides/internal/scene"
)

// settled frames every element as if it had been on screen for since.
type settled struct{ since time.Duration }

func (s settled) Frame(el *scene.Element, width, height int) scene.Frame {
	f := scene.Frame{Since: s.since, Mounted: s.since, Fade: 1, Width: width, Height: height, Background: "#000000"}
	f = f.With(el.Entrance())
	if el.Counter != nil {
		f.Count = el.Counter.To
	}
	return f
}

var done = settled{since: time.Minute}

// plain drops styling from a rendered scene.
func plain(out string, regions []scene.Region) (string, []scene.Region) {
	return ansi.Strip(out), regions
}

func defaultSlide(t *testing.T, typ deck.Type) deck.Slide {
	t.Helper()
	d, err := deck.Default()
	require.NoError(t, err)
	for _, s := range d.Slides() {
		if s.Type == typ {
			return s
		}
	}
	t.Fatalf("no %s slide in default deck", typ)
	return deck.Slide{}
}

func regionByKey(regions []scene.Region, key string) (scene.Region, bool) {
	for _, r := range regions {
		if r.Key == key {
			return r, true
		}
	}
	return scene.Region{}, false
}

func TestEveryDefaultSlideRenders(t *testing.T) {
	t.Parallel()

	d, err := deck.Default()
	require.NoError(t, err)
	for _, s := range d.Slides() {
		sc := Build(s, scene.NewEphemeral())
		require.NotEmpty(t, sc.Keys(), "slide %d", s.ID)
		require.Equal(t, s.Background(), sc.Background)
		for _, size := range [][2]int{{120, 60}, {60, 20}, {20, 8}} {
			out, _ := sc.Render(size[0], size[1], done)
			require.Len(t, strings.Split(out, "\n"), size[1], "slide %d at %v", s.ID, size)
		}
	}
}

func TestUnknownLayoutIsEmpty(t *testing.T) {
	t.Parallel()

	sc := Build(deck.Slide{ID: 3, Type: "nope"}, scene.NewEphemeral())
	require.Empty(t, sc.Sections)
	require.Nil(t, sc.Overlay)
	require.Equal(t, deck.DefaultBackground, sc.Background)

	out, regions := plain(sc.Render(10, 2, done))
	require.Empty(t, strings.TrimSpace(out))
	require.Empty(t, regions)
}

func TestElementsHiddenBeforeEntrance(t *testing.T) {
	t.Parallel()

	s := defaultSlide(t, deck.TypeTitle)
	sc := Build(s, scene.NewEphemeral())

	before, _ := plain(sc.Render(120, 40, settled{}))
	assert.NotContains(t, before, "Analysis")

	after, _ := plain(sc.Render(120, 40, done))
	assert.Contains(t, after, "Analysis of Information System Implementation")
	assert.Contains(t, after, "P R O J E C T")
}

func TestStatsCountUp(t *testing.T) {
	t.Parallel()

	s := defaultSlide(t, deck.TypeStats)
	sc := Build(s, scene.NewEphemeral())

	var counters []*scene.CounterSpec
	for _, sec := range sc.Sections {
		for _, el := range sec.Elements {
			if el.Counter != nil {
				counters = append(counters, el.Counter)
			}
		}
	}
	require.Len(t, counters, 4)
	assert.Equal(t, 0, counters[0].From)
	assert.Equal(t, 1800, counters[0].To)
	assert.Equal(t, 2*time.Second, counters[0].Duration)

	out, regions := plain(sc.Render(120, 60, done))
	assert.Contains(t, out, "1800 Beds")
	assert.Contains(t, out, "ACADEMIC + CLINICAL")
	r, ok := regionByKey(regions, "stat-0")
	require.True(t, ok)
	assert.True(t, r.Counter)
}

func TestChallengeToggleRevealsSolution(t *testing.T) {
	t.Parallel()

	s := defaultSlide(t, deck.TypeChallenges)
	eph := scene.NewEphemeral()

	sc := Build(s, eph)
	out, regions := plain(sc.Render(120, 60, done))
	assert.Contains(t, out, tapHint)
	assert.NotContains(t, sc.Keys(), "solution-1")

	r, ok := regionByKey(regions, "challenge-1")
	require.True(t, ok)
	hit, ok := scene.HitTest(regions, r.X+1, r.Y+1)
	require.True(t, ok)
	hit.OnClick(eph)
	require.True(t, eph.Reveal.Revealed(1))
	require.False(t, eph.Reveal.Revealed(0))

	sc = Build(s, eph)
	assert.Contains(t, sc.Keys(), "solution-1")
	assert.NotContains(t, sc.Keys(), "solution-0")
	out, regions = plain(sc.Render(120, 60, done))
	assert.Contains(t, out, "SOLUTION APPLIED")
	assert.Equal(t, 3, strings.Count(out, tapHint))

	r, ok = regionByKey(regions, "solution-1")
	require.True(t, ok)
	r.OnClick(eph)
	assert.False(t, eph.Reveal.Revealed(1))
	assert.NotContains(t, Build(s, eph).Keys(), "solution-1")
}

func TestConclusionFinale(t *testing.T) {
	t.Parallel()

	s := defaultSlide(t, deck.TypeConclusion)
	eph := scene.NewEphemeral()

	sc := Build(s, eph)
	require.Nil(t, sc.Overlay)
	require.NotNil(t, sc.OnClick)
	out, _ := plain(sc.Render(120, 60, done))
	assert.Contains(t, out, "Managerial Call to Action")

	sc.OnClick(eph)
	require.True(t, eph.Finale.Fired())
	sc.OnClick(eph)
	require.True(t, eph.Finale.Fired())

	sc = Build(s, eph)
	require.NotNil(t, sc.Overlay)
	assert.Equal(t, "finale", sc.Overlay.Key)
	out, regions := plain(sc.Render(120, 60, done))
	assert.Contains(t, out, "T H A N K")
	assert.NotContains(t, out, "Managerial Call to Action")
	require.Len(t, regions, 1)
	assert.Equal(t, "finale", regions[0].Key)

	fresh := Build(s, scene.NewEphemeral())
	assert.Nil(t, fresh.Overlay)
}

func TestSelectionRingAndLegend(t *testing.T) {
	t.Parallel()

	out, _ := plain(Build(defaultSlide(t, deck.TypeSelection), nil).Render(120, 60, done))
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "Usability 30%")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "👥")
}

func TestMissingSubRecordsAreOmitted(t *testing.T) {
	t.Parallel()

	empties := []deck.Layout{
		&deck.TitleLayout{}, &deck.GridLayout{}, &deck.StatsLayout{}, &deck.ConvergenceLayout{},
		&deck.DichotomyLayout{}, &deck.SelectionLayout{}, &deck.RoadmapLayout{}, &deck.ChallengesLayout{},
		&deck.TrainingLayout{}, &deck.AcceptanceLayout{}, &deck.UsageLayout{}, &deck.ReportingLayout{},
		&deck.DatabaseLayout{}, &deck.SecurityLayout{}, &deck.InsightsLayout{}, &deck.NexusLayout{},
		&deck.ConclusionLayout{},
	}
	require.Len(t, empties, len(deck.Types))
	for _, l := range empties {
		sc := Build(deck.Slide{ID: 1, Type: l.Type(), Layout: l}, scene.NewEphemeral())
		require.NotPanics(t, func() { sc.Render(80, 30, done) }, string(l.Type()))
	}

	usage := Build(deck.Slide{Type: deck.TypeUsage, Layout: &deck.UsageLayout{
		Modules:  []deck.Module{{Name: "EMR"}},
		Benefits: []deck.Benefit{{Title: "Only"}},
	}}, nil)
	assert.Contains(t, usage.Keys(), "benefit-left")
	assert.NotContains(t, usage.Keys(), "benefit-right")
	assert.NotContains(t, usage.Keys(), "efficiency")

	nexus := Build(deck.Slide{Type: deck.TypeNexus, Layout: &deck.NexusLayout{
		Points: []deck.Point{{ID: "1"}, {ID: "2"}},
	}}, nil)
	assert.Contains(t, nexus.Keys(), "node-top-left")
	assert.Contains(t, nexus.Keys(), "node-top-right")
	assert.NotContains(t, nexus.Keys(), "node-bottom")

	stats := Build(deck.Slide{Type: deck.TypeStats, Layout: &deck.StatsLayout{Stats: []deck.Stat{{Label: "x", Value: 3}}}}, nil)
	assert.NotContains(t, stats.Keys(), "dual-role")
	assert.Contains(t, stats.Keys(), "stat-0")
}

func TestAssignSlots(t *testing.T) {
	t.Parallel()

	slots, extra := assignSlots([]deck.Point{
		{ID: "a", Position: "bottom"},
		{ID: "b"},
		{ID: "c", Position: "bottom"},
		{ID: "d", Position: "top-left"},
		{ID: "e"},
	})
	assert.Equal(t, "a", slots["bottom"].ID)
	assert.Equal(t, "d", slots["top-left"].ID)
	assert.Equal(t, "b", slots["top-right"].ID)
	require.Len(t, extra, 2)
	assert.Equal(t, "c", extra[0].ID)
	assert.Equal(t, "e", extra[1].ID)
}

func TestPlaceBenefits(t *testing.T) {
	t.Parallel()

	left, right := placeBenefits([]deck.Benefit{{Title: "r", Position: "right"}, {Title: "l"}})
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.Equal(t, "l", left.Title)
	assert.Equal(t, "r", right.Title)

	left, right = placeBenefits([]deck.Benefit{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	assert.Equal(t, "a", left.Title)
	assert.Equal(t, "b", right.Title)

	left, right = placeBenefits(nil)
	assert.Nil(t, left)
	assert.Nil(t, right)
}

func TestColumnCenters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{4, 15}, columnCenters(20, 2, 2))
	assert.Equal(t, []int{5}, columnCenters(10, 1, 2))
	assert.Nil(t, columnCenters(10, 0, 2))
}

func TestUsageHubTurns(t *testing.T) {
	t.Parallel()

	sc := Build(defaultSlide(t, deck.TypeUsage), nil)
	a, _ := plain(sc.Render(120, 50, settled{since: 10 * time.Second}))
	b, _ := plain(sc.Render(120, 50, settled{since: 10*time.Second + 2*time.Second}))
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "CORE")
	assert.Contains(t, a, "Registration")
}
