package gltf

// Vendor extension names the engine loader recognizes.
const (
	ExtWalkerHardpoints = "CP_walker_hardpoints"
	ExtDamageZones      = "CP_damage_zones"
)

// Extensions holds the vendor extension blocks attached at the document
// top level, independent of the mesh/buffer data.
type Extensions struct {
	WalkerHardpoints *HardpointExtension  `json:"CP_walker_hardpoints,omitempty"`
	DamageZones      *DamageZoneExtension `json:"CP_damage_zones,omitempty"`
}

// Names returns the extension names present, in extensionsUsed order.
func (e *Extensions) Names() []string {
	var names []string
	if e.WalkerHardpoints != nil {
		names = append(names, ExtWalkerHardpoints)
	}
	if e.DamageZones != nil {
		names = append(names, ExtDamageZones)
	}
	return names
}

type HardpointExtension struct {
	Hardpoints []Hardpoint `json:"hardpoints"`
}

type DamageZoneExtension struct {
	Zones []DamageZone `json:"zones"`
}

// HardpointType enumerates weapon mount categories.
type HardpointType string

const (
	HardpointEnergy    HardpointType = "ENERGY"
	HardpointBallistic HardpointType = "BALLISTIC"
	HardpointMissile   HardpointType = "MISSILE"
	HardpointAMS       HardpointType = "AMS"
	HardpointEquipment HardpointType = "EQUIPMENT"
)

// HardpointSize enumerates mount size constraints.
type HardpointSize string

const (
	SizeSmall  HardpointSize = "SMALL"
	SizeMedium HardpointSize = "MEDIUM"
	SizeLarge  HardpointSize = "LARGE"
)

// Hardpoint is one weapon mount point in model space.
type Hardpoint struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Type           HardpointType `json:"type"`
	Size           HardpointSize `json:"size"`
	Position       [3]float32    `json:"position"`
	Orientation    [3]float32    `json:"orientation"` // Euler angles, weapon facing
	MaxTonnage     float64       `json:"max_tonnage"`
	CriticalSlots  int           `json:"critical_slots"`
	AttachmentNode string        `json:"attachment_node,omitempty"`
}

// ZoneType enumerates damage-model body regions.
type ZoneType string

const (
	ZoneHead        ZoneType = "HEAD"
	ZoneCenterTorso ZoneType = "CENTER_TORSO"
	ZoneLeftTorso   ZoneType = "LEFT_TORSO"
	ZoneRightTorso  ZoneType = "RIGHT_TORSO"
	ZoneLeftArm     ZoneType = "LEFT_ARM"
	ZoneRightArm    ZoneType = "RIGHT_ARM"
	ZoneLeftLeg     ZoneType = "LEFT_LEG"
	ZoneRightLeg    ZoneType = "RIGHT_LEG"
)

// DamageZone is one named body region with armor capacity, hit-detection
// bounds, and symbolic destruction effects.
type DamageZone struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Type               ZoneType   `json:"type"`
	MaxArmor           float64    `json:"max_armor"`
	MaxInternal        float64    `json:"max_internal"`
	BoundsMin          [3]float32 `json:"bounds_min"`
	BoundsMax          [3]float32 `json:"bounds_max"`
	TotalSlots         int        `json:"total_slots"`
	DestructionEffects []string   `json:"destruction_effects"`
}
