// Package tuning centralizes the numeric knobs of the simulation.
// Values ship with defaults and can be overridden from a YAML file so
// balancing passes need no rebuild.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"delve-server/internal/domain"
)

// Durations are base action durations in simulation seconds, before
// the actor's speed divisor.
type Durations struct {
	Move      float64 `yaml:"move"`
	Attack    float64 `yaml:"attack"`
	OpenDoor  float64 `yaml:"open_door"`
	OpenChest float64 `yaml:"open_chest"`
	UseStairs float64 `yaml:"use_stairs"`
	Shoot     float64 `yaml:"shoot"`
	Throw     float64 `yaml:"throw"`
	Blink     float64 `yaml:"blink"`
	Fireball  float64 `yaml:"fireball"`
	Equip     float64 `yaml:"equip"`
	Talk      float64 `yaml:"talk"`
	Wait      float64 `yaml:"wait"`
	// DiagonalFactor scales diagonal moves (sqrt 2).
	DiagonalFactor float64 `yaml:"diagonal_factor"`
}

// Combat holds damage tuning.
type Combat struct {
	UnarmedDamage      int     `yaml:"unarmed_damage"`
	VarianceMin        float64 `yaml:"variance_min"`
	VarianceMax        float64 `yaml:"variance_max"`
	CritChance         float64 `yaml:"crit_chance"`
	CritMultiplier     float64 `yaml:"crit_multiplier"`
	StrengthMultiplier float64 `yaml:"strength_multiplier"`
	ProtectMultiplier  float64 `yaml:"protect_multiplier"`
}

// Effects holds status effect numbers.
type Effects struct {
	ConfusionDuration float64 `yaml:"confusion_duration"`
	FearDuration      float64 `yaml:"fear_duration"`
	SlowDuration      float64 `yaml:"slow_duration"`
	// SlowFactor multiplies effective speed while Slowed.
	SlowFactor       float64 `yaml:"slow_factor"`
	RegeneratingHPS  float64 `yaml:"regenerating_hps"`
	HealthPotionHeal int     `yaml:"health_potion_heal"`
}

// AI holds perception and dormancy tuning.
type AI struct {
	// ActivityRadius is the Manhattan distance beyond which agents
	// go dormant.
	ActivityRadius  int     `yaml:"activity_radius"`
	DormantRecheck  float64 `yaml:"dormant_recheck"`
	RangedCooldown  float64 `yaml:"ranged_cooldown"`
	ArrowSpeed      float64 `yaml:"arrow_speed"`
	ThrowSpeed      float64 `yaml:"throw_speed"`
	ArrowOvershoot  int     `yaml:"arrow_overshoot"`
	SplashRadius    int     `yaml:"splash_radius"`
	FireballRange   int     `yaml:"fireball_range"`
	FireballRadius  int     `yaml:"fireball_radius"`
	FireballDamage  int     `yaml:"fireball_damage"`
	BlinkRange      int     `yaml:"blink_range"`
	SkeletonTrigger float64 `yaml:"skeleton_trigger"`
}

// Tuning is the full knob set.
type Tuning struct {
	Durations Durations `yaml:"durations"`
	Combat    Combat    `yaml:"combat"`
	Effects   Effects   `yaml:"effects"`
	AI        AI        `yaml:"ai"`
}

// Default returns the shipped values.
func Default() *Tuning {
	return &Tuning{
		Durations: Durations{
			Move:           1.0,
			Attack:         0.8,
			OpenDoor:       0.5,
			OpenChest:      0.5,
			UseStairs:      1.0,
			Shoot:          1.2,
			Throw:          1.0,
			Blink:          0.8,
			Fireball:       1.2,
			Equip:          0.5,
			Talk:           0.5,
			Wait:           0.5,
			DiagonalFactor: 1.414,
		},
		Combat: Combat{
			UnarmedDamage:      2,
			VarianceMin:        0.8,
			VarianceMax:        1.2,
			CritChance:         0.1,
			CritMultiplier:     1.1,
			StrengthMultiplier: 1.5,
			ProtectMultiplier:  0.5,
		},
		Effects: Effects{
			ConfusionDuration: 30,
			FearDuration:      45,
			SlowDuration:      45,
			SlowFactor:        0.5,
			RegeneratingHPS:   2,
			HealthPotionHeal:  20,
		},
		AI: AI{
			ActivityRadius:  25,
			DormantRecheck:  5.0,
			RangedCooldown:  2.0,
			ArrowSpeed:      15.0,
			ThrowSpeed:      12.0,
			ArrowOvershoot:  50,
			SplashRadius:    1,
			FireballRange:   10,
			FireballRadius:  2,
			FireballDamage:  25,
			BlinkRange:      8,
			SkeletonTrigger: 0.3,
		},
	}
}

// Load reads overrides from a YAML file on top of the defaults.
// Missing keys keep their default values.
func Load(path string) (*Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	return t, nil
}

// Duration returns the base duration for an action kind.
func (t *Tuning) Duration(kind domain.ActionKind) float64 {
	switch kind {
	case domain.ActionMove:
		return t.Durations.Move
	case domain.ActionAttack:
		return t.Durations.Attack
	case domain.ActionOpenDoor:
		return t.Durations.OpenDoor
	case domain.ActionOpenChest:
		return t.Durations.OpenChest
	case domain.ActionUseStairs:
		return t.Durations.UseStairs
	case domain.ActionShoot:
		return t.Durations.Shoot
	case domain.ActionThrow:
		return t.Durations.Throw
	case domain.ActionBlink:
		return t.Durations.Blink
	case domain.ActionFireball:
		return t.Durations.Fireball
	case domain.ActionEquip, domain.ActionUnequip, domain.ActionDrop:
		return t.Durations.Equip
	case domain.ActionTalk:
		return t.Durations.Talk
	default:
		return t.Durations.Wait
	}
}
