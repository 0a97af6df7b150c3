package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundShoot
	SoundEnemyShoot
	SoundHit
	SoundShieldBreak
	SoundKill
	SoundBossKill
	SoundBossSpawn
	// Pickup sounds
	SoundOrb
	SoundPowerUp
	// Shop sounds
	SoundPurchase
	SoundDenied
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundGameOver
)

// SoundNames maps sound IDs to stable names for an external audio layer
var SoundNames = map[SoundID]string{
	SoundShoot:        "shoot",
	SoundEnemyShoot:   "enemy_shoot",
	SoundHit:          "hit",
	SoundShieldBreak:  "shield_break",
	SoundKill:         "kill",
	SoundBossKill:     "boss_kill",
	SoundBossSpawn:    "boss_spawn",
	SoundOrb:          "orb",
	SoundPowerUp:      "powerup",
	SoundPurchase:     "purchase",
	SoundDenied:       "denied",
	SoundMenuNavigate: "menu_navigate",
	SoundMenuSelect:   "menu_select",
	SoundGameOver:     "game_over",
}

func (s SoundID) String() string {
	if name, ok := SoundNames[s]; ok {
		return name
	}
	return "none"
}

// Waveform selects the oscillator used for a synthesized sound
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveSine
	WaveNoise
)

// Tone describes one synthesized effect: a frequency sweep under a linear fade
type Tone struct {
	Wave      Waveform
	StartFreq float64
	EndFreq   float64
	Duration  float64 // seconds
	Volume    float64 // 0-1 before the SFX volume setting
}

// AudioConfig contains audio playback configuration
type AudioConfig struct {
	SampleRate int
	// Tones maps each sound event to its synthesized effect
	Tones map[SoundID]Tone
	// MusicNotes is the looping bass line in Hz, one note per MusicStep seconds
	MusicNotes []float64
	MusicStep  float64
	MusicLevel float64
}

// Audio is the global audio configuration
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Tones: map[SoundID]Tone{
			SoundShoot:        {Wave: WaveSquare, StartFreq: 880, EndFreq: 440, Duration: 0.05, Volume: 0.12},
			SoundEnemyShoot:   {Wave: WaveSquare, StartFreq: 330, EndFreq: 220, Duration: 0.07, Volume: 0.12},
			SoundHit:          {Wave: WaveNoise, StartFreq: 0, EndFreq: 0, Duration: 0.3, Volume: 0.5},
			SoundShieldBreak:  {Wave: WaveTriangle, StartFreq: 1200, EndFreq: 300, Duration: 0.25, Volume: 0.4},
			SoundKill:         {Wave: WaveNoise, StartFreq: 0, EndFreq: 0, Duration: 0.12, Volume: 0.3},
			SoundBossKill:     {Wave: WaveNoise, StartFreq: 0, EndFreq: 0, Duration: 0.6, Volume: 0.6},
			SoundBossSpawn:    {Wave: WaveSquare, StartFreq: 110, EndFreq: 55, Duration: 0.8, Volume: 0.35},
			SoundOrb:          {Wave: WaveSine, StartFreq: 660, EndFreq: 1320, Duration: 0.1, Volume: 0.35},
			SoundPowerUp:      {Wave: WaveTriangle, StartFreq: 440, EndFreq: 1760, Duration: 0.3, Volume: 0.4},
			SoundPurchase:     {Wave: WaveSine, StartFreq: 990, EndFreq: 1480, Duration: 0.15, Volume: 0.4},
			SoundDenied:       {Wave: WaveSquare, StartFreq: 160, EndFreq: 140, Duration: 0.2, Volume: 0.3},
			SoundMenuNavigate: {Wave: WaveSine, StartFreq: 520, EndFreq: 520, Duration: 0.04, Volume: 0.25},
			SoundMenuSelect:   {Wave: WaveSine, StartFreq: 660, EndFreq: 880, Duration: 0.08, Volume: 0.3},
			SoundGameOver:     {Wave: WaveTriangle, StartFreq: 440, EndFreq: 110, Duration: 1.2, Volume: 0.45},
		},
		MusicNotes: []float64{55, 55, 65.41, 55, 73.42, 55, 65.41, 49},
		MusicStep:  0.25,
		MusicLevel: 0.15,
	}
}
