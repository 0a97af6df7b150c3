package config

import "image/color"

// Config holds the arena and window dimensions
type Config struct {
	Width  int
	Height int

	// TPS is the fixed simulation rate of the run loop
	TPS int
	// WindowScale multiplies the arena size for the OS window
	WindowScale float64
	// MaxStep caps a single simulation delta after a hitch
	MaxStep float64

	// Collision space extends past the arena by SpaceMargin on every side
	SpaceMargin float64
	CellSize    int
}

var C *Config

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Radius       float64
	BaseSpeed    float64
	Friction     float64 // velocity smoothing constant (per second)
	InvulnTime   float64 // seconds of invulnerability after losing a life
	ShieldInvuln float64 // seconds of invulnerability after the shield absorbs a hit
	FireCooldown float64
	MinCooldown  float64 // floor for any fire cooldown
	Damage       int
	StartLevel   int
	XPPerLevel   int // xp needed for the next level is XPPerLevel * level
	MaxSpread    int
	MaxPierce    int

	// Lives
	StartingLives int

	// Shield
	ShieldMax      float64
	ShieldRecharge float64 // charge per second while the shield is owned
}

// EnemyConfig contains the shared tuning for regular enemies
type EnemyConfig struct {
	Radius        float64
	BaseSpeed     float64
	MaxSpeed      float64
	StartMax      int // population cap at run start
	MaxEnemies    int // hard population cap reached by the ramp
	Smoothing     float64
	JitterFrac    float64
	TierSpeedBump float64 // +15% speed per tier
	SpeedMinMult  float64
	SpeedMaxMult  float64

	DashMin        float64
	DashMax        float64
	DashBase       float64 // impulse multiplier at tier 0
	DashPerTier    float64
	ShootMin       float64 // aimed shot cooldown for tier 2+ normals
	ShootMax       float64
	FirstShotMin   float64 // first shot delay for tier 2+ normals
	FirstShotMax   float64
	ZigzagSpeed    float64 // speed multiplier for zigzag enemies
	ZigzagFreq     float64 // phase advance per second
	ZigzagAmp      float64 // lateral offset as a fraction of speed
	HomingSpeed    float64 // speed multiplier for homing enemies
	HomingShotMin  float64
	HomingShotMax  float64
	HomingFirstMin float64
	HomingFirstMax float64
	ShotOffset     float64 // muzzle distance beyond the enemy radius
	MaxTier        int     // tier ceiling reached by the enemy level
	LevelInterval  float64 // seconds per enemy level
}

// BossConfig contains boss tuning per variant
type BossConfig struct {
	Radius        float64
	MegaRadius    float64
	SpawnY        float64
	SpawnMargin   float64
	MinSpeed      float64
	MegaMinSpeed  float64
	SpeedMult     float64
	MegaSpeedMult float64
	BaseHP        int
	HPStep        int
	MegaBaseHP    int
	MegaHPStep    int
	HPInterval    float64 // hp grows every HPInterval seconds of run time
	Smoothing     float64
	JitterFrac    float64

	ShooterShotMin float64
	ShooterShotMax float64
	MegaShotMin    float64
	MegaShotMax    float64
	ShotDamage     int
	RingCount      int
	RingSpeedMult  float64

	// VariantWeights are the relative odds of Chaser, Shooter and Mega
	VariantWeights [3]float64

	FirstDelay float64 // boss timer at run start
	Sentinel   float64 // boss timer value while a boss is alive
	DelayFloor float64
	DelayStart float64
	DelayDecay float64 // seconds removed per second of run time
}

// BulletConfig contains projectile tuning
type BulletConfig struct {
	Radius       float64
	Speed        float64
	Lifetime     float64
	Margin       float64 // out-of-bounds margin before a bullet is dropped
	MuzzleOffset float64 // spawn distance beyond the player radius
	EnemySpeed   float64
	HomingTurn   float64 // homing steering constant (per second)
	HomingMult   float64 // launch speed of homing shots as a fraction of EnemySpeed
	EnemyDamage  int
	SpreadLevel1 []float64
	SpreadLevel2 []float64
}

// PowerUpConfig contains power-up tuning
type PowerUpConfig struct {
	Radius       float64
	Duration     float64
	SpawnMin     float64
	SpawnMax     float64
	SpawnMargin  float64
	RapidMult    float64 // fire cooldown multiplier while Rapid is active
	SpeedMult    float64 // movement multiplier while Speed is active
	PierceAmount int     // per-bullet pierce while Pierce is active
}

// OrbConfig contains collectible orb tuning
type OrbConfig struct {
	Radius      float64
	Score       int
	XP          int
	SpawnMargin float64
}

// SpawnerConfig contains enemy cadence and difficulty ramp tuning
type SpawnerConfig struct {
	Cooldown       float64
	CooldownMinMul float64
	CooldownMaxMul float64
	RampInterval   float64
	RampSpeedStep  float64
	RampCapStep    int
}

// RewardConfig contains kill rewards
type RewardConfig struct {
	KillScore    int
	BossScore    int
	KillXP       int
	BossXP       int
	KillCoinsMin int
	KillCoinsMax int
	BossCoinsMin int
	BossCoinsMax int
}

// UpgradeConfig describes one shop entry
type UpgradeConfig struct {
	Name string
	Cost int
}

// ShopConfig contains the upgrade ledger tuning
type ShopConfig struct {
	Upgrades     []UpgradeConfig // fixed order, bought with keys 1-6
	Inflation    float64
	CostCeiling  int
	RateFactor   float64 // fire cooldown multiplier per Fire Rate purchase
	SpeedFactor  float64 // base speed multiplier per Move Speed purchase
	DamageAmount int
}

// ShakeConfig contains screen shake amounts and caps
type ShakeConfig struct {
	DecayRate   float64 // magnitude lost per second
	Fire        float64
	FireCap     float64
	Kill        float64
	BossKill    float64
	KillCap     float64
	Orb         float64
	PowerUp     float64
	PickupCap   float64
	LifeLost    float64
	ShieldBreak float64
}

// ParticleConfig contains explosion burst tuning
type ParticleConfig struct {
	BurstCount int
	SpeedMin   float64
	SpeedMax   float64
	LifeMin    float64
	LifeMax    float64
	RadiusMin  float64
	RadiusMax  float64
	Palette    []color.RGBA
}

var (
	Player    PlayerConfig
	Enemy     EnemyConfig
	Boss      BossConfig
	Bullet    BulletConfig
	PowerUp   PowerUpConfig
	Orb       OrbConfig
	Spawner   SpawnerConfig
	Rewards   RewardConfig
	Shop      ShopConfig
	Shake     ShakeConfig
	Particles ParticleConfig
)

// Neon palette used by the renderer
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey        = color.RGBA{R: 140, G: 140, B: 160, A: 255}
	Background  = color.RGBA{R: 8, G: 8, B: 20, A: 255}
	GridLine    = color.RGBA{R: 25, G: 25, B: 55, A: 255}
	NeonCyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	NeonPink    = color.RGBA{R: 255, G: 40, B: 200, A: 255}
	NeonGreen   = color.RGBA{R: 60, G: 255, B: 120, A: 255}
	NeonYellow  = color.RGBA{R: 255, G: 240, B: 60, A: 255}
	NeonOrange  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	NeonPurple  = color.RGBA{R: 170, G: 80, B: 255, A: 255}
	NeonRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	NeonBlue    = color.RGBA{R: 60, G: 140, B: 255, A: 255}
	PanelFill   = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	ButtonIdle  = color.RGBA{R: 20, G: 30, B: 60, A: 230}
	ButtonHover = color.RGBA{R: 40, G: 70, B: 130, A: 240}
	ButtonPress = color.RGBA{R: 0, G: 120, B: 160, A: 255}
	ButtonOff   = color.RGBA{R: 30, G: 30, B: 40, A: 200}
)

func init() {
	C = &Config{
		Width:       900,
		Height:      600,
		TPS:         120,
		WindowScale: 1.0,
		MaxStep:     0.1,
		SpaceMargin: 128,
		CellSize:    32,
	}

	Player = PlayerConfig{
		Radius:       20,
		BaseSpeed:    320,
		Friction:     10,
		InvulnTime:   1.0,
		ShieldInvuln: 0.2,
		FireCooldown: 0.35,
		MinCooldown:  0.08,
		Damage:       1,
		StartLevel:   1,
		XPPerLevel:   100,
		MaxSpread:    2,
		MaxPierce:    3,

		StartingLives: 3,

		ShieldMax:      10,
		ShieldRecharge: 1.0,
	}

	Enemy = EnemyConfig{
		Radius:        16,
		BaseSpeed:     120,
		MaxSpeed:      260,
		StartMax:      3,
		MaxEnemies:    50,
		Smoothing:     4.0,
		JitterFrac:    0.25,
		TierSpeedBump: 0.15,
		SpeedMinMult:  0.9,
		SpeedMaxMult:  1.2,

		DashMin:        1.5,
		DashMax:        3.0,
		DashBase:       1.5,
		DashPerTier:    0.5,
		ShootMin:       1.5,
		ShootMax:       3.0,
		FirstShotMin:   2.0,
		FirstShotMax:   3.5,
		ZigzagSpeed:    1.1,
		ZigzagFreq:     4.0,
		ZigzagAmp:      0.5,
		HomingSpeed:    0.9,
		HomingShotMin:  2.0,
		HomingShotMax:  3.0,
		HomingFirstMin: 2.5,
		HomingFirstMax: 4.0,
		ShotOffset:     4,
		MaxTier:        2,
		LevelInterval:  30,
	}

	Boss = BossConfig{
		Radius:        34,
		MegaRadius:    56,
		SpawnY:        -40,
		SpawnMargin:   120,
		MinSpeed:      90,
		MegaMinSpeed:  80,
		SpeedMult:     0.9,
		MegaSpeedMult: 0.8,
		BaseHP:        24,
		HPStep:        6,
		MegaBaseHP:    60,
		MegaHPStep:    10,
		HPInterval:    20,
		Smoothing:     2.0,
		JitterFrac:    0.15,

		ShooterShotMin: 1.0,
		ShooterShotMax: 2.0,
		MegaShotMin:    1.5,
		MegaShotMax:    2.5,
		ShotDamage:     2,
		RingCount:      8,
		RingSpeedMult:  0.6,

		VariantWeights: [3]float64{1, 1, 1},

		FirstDelay: 20,
		Sentinel:   999,
		DelayFloor: 12,
		DelayStart: 28,
		DelayDecay: 0.05,
	}

	Bullet = BulletConfig{
		Radius:       4,
		Speed:        520,
		Lifetime:     2.0,
		Margin:       20,
		MuzzleOffset: 6,
		EnemySpeed:   300,
		HomingTurn:   4.0,
		HomingMult:   0.8,
		EnemyDamage:  1,
		SpreadLevel1: []float64{10, -10},
		SpreadLevel2: []float64{8, -8, 16, -16},
	}

	PowerUp = PowerUpConfig{
		Radius:       12,
		Duration:     10,
		SpawnMin:     10,
		SpawnMax:     16,
		SpawnMargin:  60,
		RapidMult:    0.45,
		SpeedMult:    1.3,
		PierceAmount: 1,
	}

	Orb = OrbConfig{
		Radius:      8,
		Score:       10,
		XP:          5,
		SpawnMargin: 40,
	}

	Spawner = SpawnerConfig{
		Cooldown:       0.4,
		CooldownMinMul: 0.6,
		CooldownMaxMul: 1.2,
		RampInterval:   2.0,
		RampSpeedStep:  6,
		RampCapStep:    1,
	}

	Rewards = RewardConfig{
		KillScore:    5,
		BossScore:    50,
		KillXP:       20,
		BossXP:       100,
		KillCoinsMin: 1,
		KillCoinsMax: 3,
		BossCoinsMin: 15,
		BossCoinsMax: 25,
	}

	Shop = ShopConfig{
		Upgrades: []UpgradeConfig{
			{Name: "Damage +1", Cost: 25},
			{Name: "Fire Rate -10%", Cost: 30},
			{Name: "Move Speed +10%", Cost: 30},
			{Name: "Spread +1 (max 2)", Cost: 40},
			{Name: "Pierce +1 (max 3)", Cost: 45},
			{Name: "Shield (recharge)", Cost: 25},
		},
		Inflation:    1.4,
		CostCeiling:  999,
		RateFactor:   0.9,
		SpeedFactor:  1.1,
		DamageAmount: 1,
	}

	Shake = ShakeConfig{
		DecayRate:   20,
		Fire:        1.5,
		FireCap:     6,
		Kill:        2.5,
		BossKill:    4,
		KillCap:     10,
		Orb:         4,
		PowerUp:     3,
		PickupCap:   8,
		LifeLost:    12,
		ShieldBreak: 8,
	}

	Particles = ParticleConfig{
		BurstCount: 20,
		SpeedMin:   80,
		SpeedMax:   200,
		LifeMin:    0.4,
		LifeMax:    0.8,
		RadiusMin:  4,
		RadiusMax:  8,
		Palette: []color.RGBA{
			{R: 255, G: 0, B: 0, A: 255},
			{R: 255, G: 127, B: 0, A: 255},
			{R: 255, G: 255, B: 0, A: 255},
			{R: 0, G: 255, B: 0, A: 255},
			{R: 0, G: 0, B: 255, A: 255},
			{R: 75, G: 0, B: 130, A: 255},
			{R: 148, G: 0, B: 211, A: 255},
		},
	}
}
