// Package model defines the data models for the application.
// This file defines the Hazard Identification checkbox tree. Each topic
// is an explicit struct of boolean leaves, so a typo'd flag name is a
// compile error rather than a silently dropped option.
package model

// HazardIdentification is the checkbox-tree section: a fixed set of
// hazard topics, each holding boolean leaf flags.
type HazardIdentification struct {
	WorkingAtHeight     HeightFlags      `json:"workingAtHeight,omitempty"`
	GroundWorks         GroundworkFlags  `json:"groundWorks,omitempty"`
	PlantEquipment      PlantFlags       `json:"plantEquipment,omitempty"`
	HazardousSubstances SubstanceFlags   `json:"hazardousSubstances,omitempty"`
	SiteEnvironment     EnvironmentFlags `json:"siteEnvironment,omitempty"`
}

// HeightFlags are the working-at-height leaves
type HeightFlags struct {
	Ladders         bool `json:"ladders,omitempty"`
	Scaffolding     bool `json:"scaffolding,omitempty"`
	RoofWork        bool `json:"roofWork,omitempty"`
	FragileSurfaces bool `json:"fragileSurfaces,omitempty"`
	FallingObjects  bool `json:"fallingObjects,omitempty"`
}

// GroundworkFlags are the excavation and groundworks leaves
type GroundworkFlags struct {
	DeepExcavations     bool `json:"deepExcavations,omitempty"`
	UndergroundServices bool `json:"undergroundServices,omitempty"`
	OverheadServices    bool `json:"overheadServices,omitempty"`
	ConfinedSpaces      bool `json:"confinedSpaces,omitempty"`
}

// PlantFlags are the plant and equipment leaves
type PlantFlags struct {
	MobilePlant       bool `json:"mobilePlant,omitempty"`
	LiftingOperations bool `json:"liftingOperations,omitempty"`
	PowerTools        bool `json:"powerTools,omitempty"`
	Vibration         bool `json:"vibration,omitempty"`
}

// SubstanceFlags are the hazardous substance leaves
type SubstanceFlags struct {
	Asbestos    bool `json:"asbestos,omitempty"`
	SilicaDust  bool `json:"silicaDust,omitempty"`
	Cement      bool `json:"cement,omitempty"`
	LeadPaint   bool `json:"leadPaint,omitempty"`
	Solvents    bool `json:"solvents,omitempty"`
	FuelStorage bool `json:"fuelStorage,omitempty"`
}

// EnvironmentFlags are the site environment leaves
type EnvironmentFlags struct {
	Noise             bool `json:"noise,omitempty"`
	ManualHandling    bool `json:"manualHandling,omitempty"`
	SlipsAndTrips     bool `json:"slipsAndTrips,omitempty"`
	Fire              bool `json:"fire,omitempty"`
	PublicAccess      bool `json:"publicAccess,omitempty"`
	TrafficManagement bool `json:"trafficManagement,omitempty"`
}
