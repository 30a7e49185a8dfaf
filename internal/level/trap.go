package level

import "github.com/lawnchairsociety/delvegen/internal/gamemap"

// TrapType is the effect a trap has when sprung.
type TrapType string

const (
	TrapDoor        TrapType = "trapdoor"
	TrapBear        TrapType = "bear_trap"
	TrapTeleport    TrapType = "teleport"
	TrapPoisonDart  TrapType = "poison_dart"
	TrapSleepingGas TrapType = "sleeping_gas"
	TrapRust        TrapType = "rust"
)

// TrapTypes is the fixed set traps are drawn from, uniformly.
var TrapTypes = []TrapType{TrapDoor, TrapBear, TrapTeleport, TrapPoisonDart, TrapSleepingGas, TrapRust}

// Trap is a hidden hazard on a floor tile.
type Trap struct {
	Type       TrapType
	Position   gamemap.Position
	Discovered bool
	Triggered  bool
}
