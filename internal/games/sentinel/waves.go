package sentinel

import "math"

// SpawnGroup is a batch of identical enemies inside a wave.
type SpawnGroup struct {
	Type    EnemyType
	Count   int
	Pattern Pattern
	Delay   float64
}

// Wave is one authored or generated wave.
type Wave struct {
	Groups []SpawnGroup
	Boss   bool
}

// Queue expands the groups into one spawn entry per enemy, in group order.
func (w Wave) Queue() []SpawnEntry {
	q := make([]SpawnEntry, 0, w.Total())
	for _, g := range w.Groups {
		for range g.Count {
			q = append(q, SpawnEntry{Type: g.Type, Pattern: g.Pattern, Delay: g.Delay})
		}
	}
	return q
}

// Total returns the number of enemies in the wave.
func (w Wave) Total() int {
	n := 0
	for _, g := range w.Groups {
		if g.Count > 0 {
			n += g.Count
		}
	}
	return n
}

func group(t EnemyType, count int, p Pattern, delay float64) SpawnGroup {
	return SpawnGroup{Type: t, Count: count, Pattern: p, Delay: delay}
}

// campaign is the authored table: five levels of five waves, each ending in a boss.
var campaign = [][]Wave{
	// Level 1
	{
		{Groups: []SpawnGroup{group(EnemyGrunt, 5, PatternStraight, 0)}},
		{Groups: []SpawnGroup{group(EnemyGrunt, 7, PatternSine, 0)}},
		{Groups: []SpawnGroup{group(EnemyGrunt, 5, PatternStraight, 0), group(EnemyFast, 3, PatternZigzag, 1)}},
		{Groups: []SpawnGroup{group(EnemyGrunt, 8, PatternSine, 0), group(EnemyFast, 4, PatternStraight, 0.5)}},
		{Groups: []SpawnGroup{group(EnemyBoss, 1, PatternSine, 0)}, Boss: true},
	},
	// Level 2
	{
		{Groups: []SpawnGroup{group(EnemyGrunt, 8, PatternSine, 0), group(EnemyFast, 5, PatternZigzag, 0)}},
		{Groups: []SpawnGroup{group(EnemyTank, 2, PatternStraight, 0), group(EnemyGrunt, 6, PatternSine, 0)}},
		{Groups: []SpawnGroup{group(EnemyFast, 8, PatternZigzag, 0), group(EnemyKamikaze, 3, PatternDive, 1)}},
		{Groups: []SpawnGroup{group(EnemySniper, 4, PatternStraight, 0), group(EnemyGrunt, 6, PatternSine, 0), group(EnemyFast, 4, PatternZigzag, 0)}},
		{Groups: []SpawnGroup{group(EnemyBoss, 1, PatternCircle, 0)}, Boss: true},
	},
	// Level 3
	{
		{Groups: []SpawnGroup{group(EnemyTank, 3, PatternStraight, 0), group(EnemySniper, 5, PatternSine, 0)}},
		{Groups: []SpawnGroup{group(EnemyKamikaze, 6, PatternDive, 0), group(EnemyFast, 6, PatternZigzag, 0)}},
		{Groups: []SpawnGroup{group(EnemyGrunt, 10, PatternSine, 0), group(EnemyTank, 3, PatternStraight, 0), group(EnemySniper, 3, PatternSine, 0)}},
		{Groups: []SpawnGroup{group(EnemyKamikaze, 8, PatternDive, 0), group(EnemySniper, 4, PatternStraight, 0), group(EnemyFast, 6, PatternZigzag, 0)}},
		{Groups: []SpawnGroup{group(EnemyBoss, 1, PatternZigzag, 0)}, Boss: true},
	},
	// Level 4
	{
		{Groups: []SpawnGroup{group(EnemyTank, 5, PatternSine, 0), group(EnemySniper, 6, PatternStraight, 0)}},
		{Groups: []SpawnGroup{group(EnemyKamikaze, 10, PatternDive, 0), group(EnemyFast, 8, PatternZigzag, 0)}},
		{Groups: []SpawnGroup{group(EnemyTank, 4, PatternStraight, 0), group(EnemySniper, 5, PatternSine, 0), group(EnemyKamikaze, 5, PatternDive, 0)}},
		{Groups: []SpawnGroup{group(EnemyGrunt, 12, PatternSine, 0), group(EnemyTank, 4, PatternZigzag, 0), group(EnemySniper, 4, PatternStraight, 0), group(EnemyFast, 6, PatternDive, 0)}},
		{Groups: []SpawnGroup{group(EnemyBoss, 1, PatternCircle, 0)}, Boss: true},
	},
	// Level 5
	{
		{Groups: []SpawnGroup{group(EnemyTank, 6, PatternZigzag, 0), group(EnemySniper, 6, PatternSine, 0), group(EnemyKamikaze, 6, PatternDive, 0)}},
		{Groups: []SpawnGroup{group(EnemyFast, 12, PatternZigzag, 0), group(EnemyKamikaze, 8, PatternDive, 0), group(EnemySniper, 5, PatternStraight, 0)}},
		{Groups: []SpawnGroup{group(EnemyTank, 5, PatternSine, 0), group(EnemyGrunt, 12, PatternZigzag, 0), group(EnemySniper, 6, PatternStraight, 0), group(EnemyKamikaze, 8, PatternDive, 0)}},
		{Groups: []SpawnGroup{group(EnemyTank, 6, PatternCircle, 0), group(EnemySniper, 8, PatternSine, 0), group(EnemyKamikaze, 10, PatternDive, 0), group(EnemyFast, 10, PatternZigzag, 0)}},
		{Groups: []SpawnGroup{group(EnemyBoss, 1, PatternDive, 0)}, Boss: true},
	},
}

// CampaignLevels returns the number of authored levels.
func CampaignLevels() int {
	return len(campaign)
}

// CampaignWave returns the authored wave (both 1-based), if any.
func CampaignWave(level, wave int) (Wave, bool) {
	if level < 1 || level > len(campaign) {
		return Wave{}, false
	}
	waves := campaign[level-1]
	if wave < 1 || wave > len(waves) {
		return Wave{}, false
	}
	return waves[wave-1], true
}

// Rotations used by the wave generator.
var (
	generatedTypes       = []EnemyType{EnemyGrunt, EnemyFast, EnemyTank, EnemyKamikaze, EnemySniper}
	generatedPatterns    = []Pattern{PatternStraight, PatternSine, PatternZigzag, PatternDive}
	generatedBossPattern = []Pattern{PatternSine, PatternCircle, PatternZigzag, PatternDive}
)

// GenerateWave derives wave n past the authored campaign.
// Every fifth wave is a boss wave; other waves grow with the tier n/5.
func GenerateWave(n int) Wave {
	if n < 0 {
		n = 0
	}
	tier := n / 5

	if n%5 == 0 {
		return Wave{
			Groups: []SpawnGroup{group(EnemyBoss, 1, generatedBossPattern[tier%len(generatedBossPattern)], 0)},
			Boss:   true,
		}
	}

	enemyCount := 6 + tier*2
	typeCount := min(2+tier/2, 4)
	perType := int(math.Ceil(float64(enemyCount) / float64(typeCount)))

	groups := make([]SpawnGroup, 0, typeCount)
	for i := range typeCount {
		groups = append(groups, group(
			generatedTypes[(n+i)%len(generatedTypes)],
			perType,
			generatedPatterns[(n+i)%len(generatedPatterns)],
			float64(i)*0.5,
		))
	}
	return Wave{Groups: groups}
}
