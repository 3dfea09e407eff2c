package sentinel

// EnemyStats are the level-1 stats of an enemy type.
type EnemyStats struct {
	HP            int
	Points        int
	XP            int
	Speed         float64
	Size          float64
	ShootInterval float64
	DropChance    float64
	Color         string
}

var enemyTable = map[EnemyType]EnemyStats{
	EnemyGrunt:    {HP: 1, Points: 100, XP: 10, Speed: 2, Size: 0.4, ShootInterval: 3, DropChance: 0.1, Color: "#ff4444"},
	EnemyFast:     {HP: 1, Points: 150, XP: 15, Speed: 4.5, Size: 0.3, ShootInterval: 2.5, DropChance: 0.08, Color: "#ffaa00"},
	EnemyTank:     {HP: 5, Points: 300, XP: 40, Speed: 1, Size: 0.7, ShootInterval: 2, DropChance: 0.25, Color: "#aa44ff"},
	EnemyKamikaze: {HP: 1, Points: 200, XP: 20, Speed: 5, Size: 0.35, ShootInterval: 99, DropChance: 0.15, Color: "#ff0066"},
	EnemySniper:   {HP: 2, Points: 250, XP: 30, Speed: 1.5, Size: 0.4, ShootInterval: 1.5, DropChance: 0.12, Color: "#00ffaa"},
	EnemyBoss:     {HP: 50, Points: 5000, XP: 500, Speed: 0.8, Size: 1.5, ShootInterval: 0.5, DropChance: 1, Color: "#ff0000"},
}

// StatsFor returns the base stats for t. Unknown types get grunt stats.
func StatsFor(t EnemyType) EnemyStats {
	if s, ok := enemyTable[t]; ok {
		return s
	}
	return enemyTable[EnemyGrunt]
}

// WeaponStats describe one weapon level.
type WeaponStats struct {
	Name        string
	Cooldown    float64
	Damage      int
	BulletSpeed float64
	BulletCount int
	Spread      float64 // radians, total fan width
	Color       string
}

// Weapon level bounds.
const (
	MinWeaponLevel = 1
	MaxWeaponLevel = 6
)

var weaponTable = [MaxWeaponLevel]WeaponStats{
	{Name: "single", Cooldown: 0.25, Damage: 1, BulletSpeed: 15, BulletCount: 1, Spread: 0, Color: "#00f0ff"},
	{Name: "double", Cooldown: 0.22, Damage: 1, BulletSpeed: 16, BulletCount: 2, Spread: 0.3, Color: "#00f0ff"},
	{Name: "triple", Cooldown: 0.2, Damage: 1, BulletSpeed: 17, BulletCount: 3, Spread: 0.3, Color: "#00ffaa"},
	{Name: "spread", Cooldown: 0.18, Damage: 1, BulletSpeed: 18, BulletCount: 5, Spread: 0.6, Color: "#00ffaa"},
	{Name: "laser", Cooldown: 0.08, Damage: 2, BulletSpeed: 25, BulletCount: 1, Spread: 0, Color: "#ff6a00"},
	{Name: "missiles", Cooldown: 0.35, Damage: 5, BulletSpeed: 12, BulletCount: 2, Spread: 0.4, Color: "#ff2040"},
}

// Weapon returns the stats for a weapon level, clamped to [1,6].
func Weapon(level int) WeaponStats {
	return weaponTable[clampWeaponLevel(level)-1]
}

func clampWeaponLevel(level int) int {
	if level < MinWeaponLevel {
		return MinWeaponLevel
	}
	if level > MaxWeaponLevel {
		return MaxWeaponLevel
	}
	return level
}

// BulletKindFor returns the cosmetic kind of player bullets at a weapon level.
func BulletKindFor(level int) BulletKind {
	switch {
	case level >= 6:
		return BulletMissile
	case level >= 5:
		return BulletLaser
	default:
		return BulletNormal
	}
}

// Size returns the collision radius of a player bullet of this kind.
func (k BulletKind) Size() float64 {
	switch k {
	case BulletLaser:
		return 0.08
	case BulletMissile:
		return 0.2
	default:
		return 0.1
	}
}

// xpTable holds the cumulative XP needed to leave each XP level.
// A run starts at XP level 1; reaching xpTable[n] moves it to n+1.
var xpTable = [MaxXPLevel]int{0, 100, 300, 600, 1000, 1500, 2200, 3000, 4000, 5500}

// MaxXPLevel is the highest reachable XP level.
const MaxXPLevel = 10

// XPThreshold returns the XP needed to reach level+1, or -1 at the top level.
func XPThreshold(level int) int {
	if level < 0 || level >= len(xpTable) {
		return -1
	}
	return xpTable[level]
}

// Drone grants by XP level.
var droneGrants = []struct {
	Level  int
	Owned  int // granted only while fewer drones are owned
	Offset [3]float64
}{
	{Level: 3, Owned: 1, Offset: [3]float64{-1.2, 0, -0.5}},
	{Level: 6, Owned: 2, Offset: [3]float64{1.2, 0, -0.5}},
}

// powerUpWeights is the drop table rolled when an enemy drops a pickup.
var powerUpWeights = []Weighted[PowerUpType]{
	{Value: PowerUpWeapon, Weight: 30},
	{Value: PowerUpShield, Weight: 20},
	{Value: PowerUpSpeed, Weight: 15},
	{Value: PowerUpXP, Weight: 20},
	{Value: PowerUpLife, Weight: 5},
	{Value: PowerUpNuke, Weight: 10},
}

// Gameplay constants.
const (
	playerHitRadius    = 0.4
	pickupRadius       = 0.5
	cullMargin         = 3.0
	enemyLateralLimit  = 11.0
	spawnEdgeZ         = 16.0
	spawnWidth         = 16.0
	maxComboSteps      = 20
	xpPickupAmount     = 100
	speedPickupAmount  = 1.5
	nukeBossDamage     = 20
	powerUpSize        = 0.3
	powerUpDriftSpeed  = -3.0
	droneBulletSpeed   = 12.0
	droneBulletSize    = 0.08
	droneBulletColor   = "#00f0ff"
	enemyBulletSpeed   = 7.0
	enemyBulletSize    = 0.1
	bossBulletSpeed    = 8.0
	bossBulletSize     = 0.12
	bossBulletColor    = "#ff2040"
	bossFanStep        = 0.25
	hitColor           = "#ff6a00"
	killColor          = "#00f0ff"
	bossKillColor      = "#ff6a00"
	explosionEase      = 0.15
	explosionFadeRate  = 2.0
	shakeDecay         = 0.9
	shakeFloor         = 0.01
	touchLerp          = 0.2
	gyroLerp           = 0.1
	muzzleOffsetZ      = 0.5
	circleMinZ         = -5.0
	circleMaxZ         = 12.0
	patternPhaseRate   = 2.0
	lateralPatternRate = 3.0
)
