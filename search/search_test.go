package search_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/statespace/heuristics"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// graphProblem is a small explicit state space: states are vertex names and the
// action taken is the name of the vertex moved to.
type graphProblem struct {
	start string
	goal  string
	adj   map[string][]search.Successor[string, string]
}

func newGraph(start, goal string) *graphProblem {
	return &graphProblem{start: start, goal: goal, adj: map[string][]search.Successor[string, string]{}}
}

func (g *graphProblem) edge(from, to string, cost float64) *graphProblem {
	g.adj[from] = append(g.adj[from], search.Successor[string, string]{State: to, Action: to, Cost: cost})
	return g
}

func (g *graphProblem) StartState() string { return g.start }
func (g *graphProblem) IsGoal(s string) bool { return s == g.goal }
func (g *graphProblem) Successors(s string) []search.Successor[string, string] {
	return g.adj[s]
}

func (g *graphProblem) CostOfActions(actions []string) float64 {
	cur, total := g.start, 0.0
	for _, a := range actions {
		for _, s := range g.adj[cur] {
			if s.Action == a {
				total += s.Cost
				cur = s.State
				break
			}
		}
	}
	return total
}

// weighted has a 2-hop route of cost 6 (S→B→G) and a 3-hop route of cost 3 (S→A→C→G).
func weighted() *graphProblem {
	return newGraph("S", "G").
		edge("S", "A", 1).
		edge("S", "B", 5).
		edge("A", "C", 1).
		edge("B", "G", 1).
		edge("C", "G", 1)
}

type solver func(p search.Problem[string, string], opts ...search.Option) (*search.Result[string], error)

func allStrategies() map[search.Strategy]solver {
	return map[search.Strategy]solver{
		search.DFS: search.DepthFirst[string, string],
		search.BFS: search.BreadthFirst[string, string],
		search.UCS: search.UniformCost[string, string],
		search.AStarStrategy: func(p search.Problem[string, string], opts ...search.Option) (*search.Result[string], error) {
			return search.AStar(p, nil, opts...)
		},
	}
}

func TestStrategies_StartIsGoal(t *testing.T) {
	p := newGraph("G", "G").edge("G", "X", 1)
	for name, run := range allStrategies() {
		t.Run(string(name), func(t *testing.T) {
			res, err := run(p)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.NotNil(t, res.Actions)
			assert.Empty(t, res.Actions)
			assert.GreaterOrEqual(t, res.NodesExpanded, 1)
			assert.Zero(t, res.Expansions)
			assert.Equal(t, 1, res.MaxFringe)
		})
	}
}

func TestStrategies_Exhausted(t *testing.T) {
	p := newGraph("S", "Z").edge("S", "A", 1).edge("A", "S", 1)
	for name, run := range allStrategies() {
		t.Run(string(name), func(t *testing.T) {
			res, err := run(p)
			require.NoError(t, err, "an exhausted frontier is not an error")
			assert.False(t, res.Found)
			assert.NotNil(t, res.Actions)
			assert.Empty(t, res.Actions)
			assert.Positive(t, res.NodesExpanded)
		})
	}
}

func TestBreadthFirst_ExhaustedStatistics(t *testing.T) {
	p := newGraph("S", "Z").edge("S", "A", 1).edge("A", "S", 1)
	res, err := search.BreadthFirst[string, string](p)
	require.NoError(t, err)
	// S popped, A popped, S popped again and discarded
	assert.Equal(t, 3, res.NodesExpanded)
	assert.Equal(t, 2, res.Expansions)
	assert.Equal(t, 1, res.MaxFringe)
}

func TestStrategies_NilProblem(t *testing.T) {
	for name, run := range allStrategies() {
		_, err := run(nil)
		assert.ErrorIs(t, err, search.ErrNilProblem, string(name))
	}
}

func TestWeighted_BFSFewestHops_UCSCheapest(t *testing.T) {
	p := weighted()

	bfs, err := search.BreadthFirst[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "G"}, bfs.Actions)
	assert.Equal(t, 6.0, bfs.Cost)

	ucs, err := search.UniformCost[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "G"}, ucs.Actions)
	assert.Equal(t, 3.0, ucs.Cost)
	assert.Equal(t, p.CostOfActions(ucs.Actions), ucs.Cost)

	astar, err := search.AStar[string, string](p, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, astar.Cost)
}

func TestUniformCost_DecreaseKey(t *testing.T) {
	// X is first reached through the expensive edge S→X (10) and then more cheaply
	// through S→A→X (2); the queued entry must be replaced.
	p := newGraph("S", "G").
		edge("S", "X", 10).
		edge("S", "A", 1).
		edge("A", "X", 1).
		edge("X", "G", 1)

	res, err := search.UniformCost[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "X", "G"}, res.Actions)
	assert.Equal(t, 3.0, res.Cost)
	// S, A, X, G: the superseded X entry is never popped
	assert.Equal(t, 4, res.NodesExpanded)
}

// countingProblem records how often each state is expanded.
type countingProblem struct {
	*graphProblem
	expanded map[string]int
}

func (c *countingProblem) Successors(s string) []search.Successor[string, string] {
	c.expanded[s]++
	return c.graphProblem.Successors(s)
}

// TestAStar_ReexpandsCheaperState uses an admissible but inconsistent h: B looks
// expensive, so C is first expanded through A at cost 6 and must be expanded
// again when B reaches it at cost 3.
func TestAStar_ReexpandsCheaperState(t *testing.T) {
	p := &countingProblem{
		graphProblem: newGraph("S", "G").
			edge("S", "A", 1).
			edge("S", "B", 2).
			edge("A", "C", 5).
			edge("B", "C", 1).
			edge("C", "G", 10),
		expanded: map[string]int{},
	}
	h := func(s string, _ search.Problem[string, string]) float64 {
		if s == "B" {
			return 9
		}
		return 0
	}

	res, err := search.AStar[string, string](p, h)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"B", "C", "G"}, res.Actions)
	assert.Equal(t, 13.0, res.Cost)
	assert.Equal(t, 6, res.NodesExpanded)
	assert.Equal(t, 5, res.Expansions)
	assert.Equal(t, 2, p.expanded["C"], "C is expanded again once reached more cheaply")
	assert.Equal(t, 1, p.expanded["S"])
}

// TestAStar_SkipsSuccessorNotCheaper checks that a successor whose state was
// already expanded at an equal or lower cost is never pushed.
func TestAStar_SkipsSuccessorNotCheaper(t *testing.T) {
	p := &countingProblem{
		graphProblem: newGraph("S", "G").
			edge("S", "A", 1).
			edge("S", "B", 3).
			edge("A", "C", 1).
			edge("B", "C", 1).
			edge("C", "G", 5),
		expanded: map[string]int{},
	}

	res, err := search.AStar[string, string](p, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "G"}, res.Actions)
	assert.Equal(t, 7.0, res.Cost)
	assert.Equal(t, 5, res.NodesExpanded)
	assert.Equal(t, 4, res.Expansions)
	assert.Equal(t, 1, p.expanded["C"], "C via B costs 4, above its expanded cost 2")
}

func TestDepthFirst_DepthLimit(t *testing.T) {
	// chain S→1→2→3→G needs 4 actions
	p := newGraph("S", "G").edge("S", "1", 1).edge("1", "2", 1).edge("2", "3", 1).edge("3", "G", 1)

	res, err := search.DepthFirst[string, string](p, search.WithDepthLimit(3))
	require.NoError(t, err)
	assert.False(t, res.Found, "goal lies beyond the bound")

	res, err = search.DepthFirst[string, string](p, search.WithDepthLimit(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"1", "2", "3", "G"}, res.Actions)

	res, err = search.DepthFirst[string, string](p, search.WithDepthLimit(0))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.NodesExpanded)

	_, err = search.DepthFirst[string, string](p, search.WithDepthLimit(-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestDepthFirst_DefaultBound(t *testing.T) {
	p := newGraph(vertex(0), vertex(11))
	for i := 0; i < 11; i++ {
		from, to := vertex(i), vertex(i+1)
		p.edge(from, to, 1)
	}
	res, err := search.DepthFirst[string, string](p)
	require.NoError(t, err)
	assert.False(t, res.Found, "11 actions exceed DefaultDepthLimit")

	p.goal = vertex(10)
	res, err = search.DepthFirst[string, string](p)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Len(t, res.Actions, search.DefaultDepthLimit)
}

func vertex(i int) string {
	return "v" + string(rune('0'+i/10)) + string(rune('0'+i%10))
}

func TestObservers_TraceMatchesResult(t *testing.T) {
	for name, run := range allStrategies() {
		t.Run(string(name), func(t *testing.T) {
			var tr search.Trace
			expands := 0
			opts := append(tr.Options(), search.WithExpansionObserver(func() { expands++ }))

			res, err := run(weighted(), opts...)
			require.NoError(t, err)
			assert.Equal(t, res.Expansions, tr.Expansions)
			assert.Equal(t, res.Expansions, expands, "chained observers both fire")
			assert.Equal(t, res.NodesExpanded, tr.Iterations())
			assert.Equal(t, res.MaxFringe, tr.MaxFringe())

			tr.Reset()
			assert.Zero(t, tr.Iterations())
			assert.Zero(t, tr.Expansions)
		})
	}
}

func TestObservers_DoNotAlterResult(t *testing.T) {
	start := puzzle.Scramble(puzzle.MustSolved(3), 18, rand.New(rand.NewSource(11)))
	p := puzzle.NewProblem(start)

	plain, err := search.AStar[puzzle.Board, puzzle.Move](p, heuristics.ManhattanDistance)
	require.NoError(t, err)

	var tr search.Trace
	traced, err := search.AStar[puzzle.Board, puzzle.Move](p, heuristics.ManhattanDistance, tr.Options()...)
	require.NoError(t, err)

	assert.Equal(t, plain, traced)
}

func TestContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, run := range allStrategies() {
		res, err := run(weighted(), search.WithContext(ctx))
		assert.True(t, errors.Is(err, context.Canceled), string(name))
		require.NotNil(t, res)
		assert.False(t, res.Found)
	}
}

func TestUnimplementedProblem(t *testing.T) {
	type partial struct {
		search.UnimplementedProblem[int, int]
	}
	var p search.Problem[int, int] = partial{}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, search.ErrNotImplemented)
		assert.Contains(t, err.Error(), "StartState")
	}()
	_, _ = search.BreadthFirst(p)
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]search.Strategy{
		"dfs":           search.DFS,
		"Breadth-First": search.BFS,
		" ucs ":         search.UCS,
		"A*":            search.AStarStrategy,
		"astar":         search.AStarStrategy,
	}
	for in, want := range cases {
		got, err := search.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := search.ParseStrategy("ida*")
	require.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, err = search.Solve[string, string]("beam", weighted(), nil)
	require.ErrorIs(t, err, search.ErrUnknownStrategy)

	assert.True(t, search.AStarStrategy.Informed())
	assert.False(t, search.BFS.Informed())
	assert.Len(t, search.Strategies(), 4)
}

// PuzzleSuite checks the strategies on the sliding-tile domain.
type PuzzleSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *PuzzleSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(2024))
}

func (s *PuzzleSuite) solve(st search.Strategy, start puzzle.Board, h heuristics.Heuristic) *search.Result[puzzle.Move] {
	res, err := search.Solve[puzzle.Board, puzzle.Move](st, puzzle.NewProblem(start), h)
	s.Require().NoError(err)
	return res
}

// TestAStar_OneMoveFromGoal: blank immediately left of its goal cell.
func (s *PuzzleSuite) TestAStar_OneMoveFromGoal() {
	start := puzzle.MustBoard(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15)
	res := s.solve(search.AStarStrategy, start, heuristics.ManhattanDistance)
	s.Equal([]puzzle.Move{puzzle.Right}, res.Actions)
}

// TestAStar_TwoMovesFromGoal: blank two cells left of its goal cell.
func (s *PuzzleSuite) TestAStar_TwoMovesFromGoal() {
	start := puzzle.MustBoard(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 0, 14, 15)
	res := s.solve(search.AStarStrategy, start, heuristics.ManhattanDistance)
	s.Equal([]puzzle.Move{puzzle.Right, puzzle.Right}, res.Actions)
}

// TestOptimality: BFS, UCS and A* with every admissible heuristic agree on the
// optimal length; a path DFS returns is valid and within its bound.
func (s *PuzzleSuite) TestOptimality() {
	for i := 0; i < 8; i++ {
		start := puzzle.Scramble(puzzle.MustSolved(3), 16, s.rng)

		bfs := s.solve(search.BFS, start, nil)
		s.Require().True(bfs.Found)
		optimal := bfs.Depth()

		ucs := s.solve(search.UCS, start, nil)
		s.Equal(optimal, ucs.Depth(), "ucs")
		s.Equal(float64(optimal), ucs.Cost)

		for _, name := range heuristics.Names() {
			h, err := heuristics.Lookup(name)
			s.Require().NoError(err)
			res := s.solve(search.AStarStrategy, start, h)
			s.Equal(optimal, res.Depth(), "astar/%s", name)
		}

		dfs := s.solve(search.DFS, start, nil)
		if dfs.Found {
			s.LessOrEqual(dfs.Depth(), search.DefaultDepthLimit)
			s.assertReachesGoal(start, dfs.Actions)
		}
		for _, res := range []*search.Result[puzzle.Move]{bfs, ucs} {
			s.assertReachesGoal(start, res.Actions)
		}
	}
}

// TestAStarNullMatchesUCS: A* without a heuristic finds paths of UCS length.
func (s *PuzzleSuite) TestAStarNullMatchesUCS() {
	for i := 0; i < 5; i++ {
		start := puzzle.Scramble(puzzle.MustSolved(3), 12, s.rng)
		ucs := s.solve(search.UCS, start, nil)
		null := s.solve(search.AStarStrategy, start, nil)
		s.Equal(ucs.Depth(), null.Depth())
	}
}

// TestInformedExpandsLess: Manhattan distance never expands more than the null heuristic.
func (s *PuzzleSuite) TestInformedExpandsLess() {
	start := puzzle.Scramble(puzzle.MustSolved(3), 30, s.rng)
	null := s.solve(search.AStarStrategy, start, nil)
	manhattan := s.solve(search.AStarStrategy, start, heuristics.ManhattanDistance)
	s.LessOrEqual(manhattan.Expansions, null.Expansions)
}

// TestRoundTripFifteen: A* paths on scrambled 15-puzzles replay to the goal.
func (s *PuzzleSuite) TestRoundTripFifteen() {
	for i := 0; i < 4; i++ {
		start := puzzle.Scramble(puzzle.MustSolved(4), 20, s.rng)
		res := s.solve(search.AStarStrategy, start, heuristics.ManhattanDistance)
		s.Require().True(res.Found)
		s.assertReachesGoal(start, res.Actions)
	}
}

func (s *PuzzleSuite) assertReachesGoal(start puzzle.Board, actions []puzzle.Move) {
	end, err := puzzle.Replay(start, actions)
	s.Require().NoError(err)
	s.True(end.IsGoal(), "replaying %v from %v", actions, start.Tiles())
}

func TestPuzzleSuite(t *testing.T) {
	suite.Run(t, new(PuzzleSuite))
}
