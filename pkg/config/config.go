// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-flattop/pkg/entity"
)

// SlotPolicy decides when a sortie's capacity slot is returned to the
// fleet. The original game frees the slot at fuel-cycle relaunch, so a
// still-flying reused aircraft no longer counts against the cap;
// "landing" is the stricter alternative reading.
type SlotPolicy string

const (
	SlotFreedOnRelaunch SlotPolicy = "relaunch"
	SlotFreedOnLanding  SlotPolicy = "landing"
)

// GameConfig contains configuration for a carrier air-operations session
type GameConfig struct {
	WorldSize   float64        `json:"worldSize"`
	MaxAircraft int            `json:"maxAircraft"`
	SlotPolicy  SlotPolicy     `json:"slotPolicy"`
	Ship        ShipConfig     `json:"ship"`
	Aircraft    AircraftConfig `json:"aircraft"`
}

// ShipConfig contains the carrier tuning parameters
type ShipConfig struct {
	LinearSpeed  float64 `json:"linearSpeed"`
	AngularSpeed float64 `json:"angularSpeed"`
}

// AircraftConfig contains the sortie tuning parameters
type AircraftConfig struct {
	LinearSpeed      float64 `json:"linearSpeed"`
	FlyTime          float64 `json:"flyTime"`
	RefuelTime       float64 `json:"refuelTime"`
	OrbitDuration    float64 `json:"orbitDuration"`
	OrbitRadius      float64 `json:"orbitRadius"`
	OrbitRate        float64 `json:"orbitRate"`
	OrbitEasingTime  float64 `json:"orbitEasingTime"`
	ReturnRotateTime float64 `json:"returnRotateTime"`
	ArrivalRadius    float64 `json:"arrivalRadius"`
}

// Stats converts the ship configuration to entity tuning
func (c ShipConfig) Stats() entity.ShipStats {
	return entity.ShipStats{
		LinearSpeed:  c.LinearSpeed,
		AngularSpeed: c.AngularSpeed,
	}
}

// Stats converts the aircraft configuration to entity tuning
func (c AircraftConfig) Stats() entity.AircraftStats {
	return entity.AircraftStats{
		LinearSpeed:      c.LinearSpeed,
		FlyTime:          c.FlyTime,
		RefuelTime:       c.RefuelTime,
		OrbitDuration:    c.OrbitDuration,
		OrbitRadius:      c.OrbitRadius,
		OrbitRate:        c.OrbitRate,
		OrbitEasingTime:  c.OrbitEasingTime,
		ReturnRotateTime: c.ReturnRotateTime,
		ArrivalRadius:    c.ArrivalRadius,
	}
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the standard session configuration, matching
// the tuning the game shipped with
func DefaultConfig() *GameConfig {
	shipStats := entity.DefaultShipStats()
	aircraftStats := entity.DefaultAircraftStats()

	return &GameConfig{
		WorldSize:   20,
		MaxAircraft: 5,
		SlotPolicy:  SlotFreedOnRelaunch,
		Ship: ShipConfig{
			LinearSpeed:  shipStats.LinearSpeed,
			AngularSpeed: shipStats.AngularSpeed,
		},
		Aircraft: AircraftConfig{
			LinearSpeed:      aircraftStats.LinearSpeed,
			FlyTime:          aircraftStats.FlyTime,
			RefuelTime:       aircraftStats.RefuelTime,
			OrbitDuration:    aircraftStats.OrbitDuration,
			OrbitRadius:      aircraftStats.OrbitRadius,
			OrbitRate:        aircraftStats.OrbitRate,
			OrbitEasingTime:  aircraftStats.OrbitEasingTime,
			ReturnRotateTime: aircraftStats.ReturnRotateTime,
			ArrivalRadius:    aircraftStats.ArrivalRadius,
		},
	}
}

// Validate checks the configuration for values the simulation cannot run with
func (c *GameConfig) Validate() error {
	if c.WorldSize <= 0 {
		return fmt.Errorf("worldSize must be positive, got %v", c.WorldSize)
	}
	if c.MaxAircraft < 0 {
		return fmt.Errorf("maxAircraft must not be negative, got %d", c.MaxAircraft)
	}
	switch c.SlotPolicy {
	case SlotFreedOnRelaunch, SlotFreedOnLanding:
	case "":
		c.SlotPolicy = SlotFreedOnRelaunch
	default:
		return fmt.Errorf("unknown slotPolicy %q", c.SlotPolicy)
	}
	if c.Ship.LinearSpeed <= 0 || c.Ship.AngularSpeed <= 0 {
		return fmt.Errorf("ship speeds must be positive, got %v/%v",
			c.Ship.LinearSpeed, c.Ship.AngularSpeed)
	}
	if c.Aircraft.LinearSpeed <= 0 {
		return fmt.Errorf("aircraft linearSpeed must be positive, got %v", c.Aircraft.LinearSpeed)
	}
	if c.Aircraft.FlyTime <= 0 {
		return fmt.Errorf("aircraft flyTime must be positive, got %v", c.Aircraft.FlyTime)
	}
	if c.Aircraft.RefuelTime <= 0 {
		return fmt.Errorf("aircraft refuelTime must be positive, got %v", c.Aircraft.RefuelTime)
	}
	if c.Aircraft.ArrivalRadius <= 0 {
		return fmt.Errorf("aircraft arrivalRadius must be positive, got %v", c.Aircraft.ArrivalRadius)
	}
	return nil
}
