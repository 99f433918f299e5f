package economy

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/logger"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

// Rules applies economy actions to a world on behalf of the player
type Rules struct {
	w *engine.World
}

func New(w *engine.World) *Rules {
	return &Rules{w: w}
}

// BuildMine places a mine on the player cell
// Requires a deployed base, a free cell, support in range, the nearest mountain adjacent and gold
func (r *Rules) BuildMine() Result {
	return r.build(entity.BuildingMine, r.w.Config.Mine)
}

// BuildCannon places a cannon on the player cell with the mine rules minus the mountain
func (r *Rules) BuildCannon() Result {
	return r.build(entity.BuildingCannon, r.w.Config.Cannon)
}

func (r *Rules) build(kind entity.BuildingKind, spec parameter.BuildingSpec) Result {
	w := r.w
	at := w.Player.Pos

	if !w.Base.Deployed {
		return r.reject(kind.String(), ReasonBaseNotDeployed)
	}
	if r.occupied(at) {
		return r.reject(kind.String(), ReasonOccupied)
	}
	if kind != entity.BuildingSatellite && !r.supported(at) {
		return r.reject(kind.String(), ReasonNoSupport)
	}
	if kind == entity.BuildingMine && !r.besideMountain(at) {
		return r.reject(kind.String(), ReasonNoMountain)
	}
	if w.Base.Gold < spec.InitialCost {
		return r.reject(kind.String(), ReasonNoGold)
	}

	var b *entity.Building
	now := w.Clock.Now()
	switch kind {
	case entity.BuildingMine:
		b = entity.NewMine(at, spec, now)
	case entity.BuildingCannon:
		b = entity.NewCannon(at, spec, now)
	case entity.BuildingSatellite:
		b = entity.NewSatellite(at, spec, now)
	}

	w.Base.Gold -= spec.InitialCost
	w.AddBuilding(b)

	logger.Log.WithFields(logrus.Fields{
		"kind": kind.String(),
		"y":    at.Y,
		"x":    at.X,
		"gold": w.Base.Gold,
	}).Debug("Building constructed")
	return applied(b, -spec.InitialCost)
}

// occupied reports a building, mountain or the deployed base on p
func (r *Rules) occupied(p vmath.Point) bool {
	w := r.w
	if vmath.AnyNearby(p, w.Buildings(), 0) || vmath.AnyNearby(p, w.Mountains, 0) {
		return true
	}
	return w.Base.Deployed && vmath.Collision(w.Base.Pos, p)
}

// supported reports a satellite or the deployed base within the support radius
func (r *Rules) supported(p vmath.Point) bool {
	w := r.w
	radius := w.Config.Economy.SupportRadius
	if w.Base.Deployed && vmath.Distance(w.Base.Pos, p) <= radius {
		return true
	}
	return vmath.AnyNearby(p, w.Satellites, radius)
}

// besideMountain reports whether the nearest mountain is exactly adjacent
func (r *Rules) besideMountain(p vmath.Point) bool {
	nearest := -1
	for _, m := range r.w.Mountains {
		d := vmath.Distance(m.Pos, p)
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}
	return nearest == 1
}

// Deploy plants the base on first use, satellites afterwards
func (r *Rules) Deploy() Result {
	w := r.w
	if !w.Base.Deployed {
		w.Base.Deploy(w.Player.Pos)
		logger.Log.WithFields(logrus.Fields{"y": w.Base.Pos.Y, "x": w.Base.Pos.X}).Debug("Base deployed")
		return applied(nil, 0)
	}
	return r.deploySatellite()
}

func (r *Rules) deploySatellite() Result {
	w := r.w
	at := w.Player.Pos
	sep := w.Config.Economy.SatelliteSeparation

	if vmath.Distance(w.Base.Pos, at) <= sep || vmath.AnyNearby(at, w.Satellites, sep) {
		return r.reject("Satellite", ReasonTooClose)
	}
	return r.build(entity.BuildingSatellite, w.Config.Satellite)
}

// Upgrade raises the building under the player by one level
func (r *Rules) Upgrade() Result {
	w := r.w
	b, ok := vmath.NearbyOne(w.Player.Pos, w.Buildings(), 0)
	if !ok {
		return r.reject("Upgrade", ReasonNoBuilding)
	}
	if !b.CanUpgrade() {
		return r.reject("Upgrade", ReasonMaxLevel)
	}
	cost := b.CostToUpgrade()
	if w.Base.Gold < cost {
		return r.reject("Upgrade", ReasonNoGold)
	}

	w.Base.Gold -= cost
	b.Upgrade()

	logger.Log.WithFields(logrus.Fields{
		"kind":  b.Type.String(),
		"level": b.Level,
		"cost":  cost,
	}).Debug("Building upgraded")
	return applied(b, -cost)
}

// Sell removes the building under the player refunding its recovery value
func (r *Rules) Sell() Result {
	w := r.w
	b, ok := vmath.NearbyOne(w.Player.Pos, w.Buildings(), 0)
	if !ok {
		return r.reject("Sell", ReasonNoBuilding)
	}

	refund := b.CostToRecover()
	w.Base.Gold += refund
	w.RemoveBuilding(b)

	logger.Log.WithFields(logrus.Fields{
		"kind":   b.Type.String(),
		"level":  b.Level,
		"refund": refund,
	}).Debug("Building sold")
	return applied(b, refund)
}

// PayUpkeep charges the building maintenance after a production cycle
// When the base cannot pay, the building is liquidated for its recovery value instead,
// so gold never goes negative
func (r *Rules) PayUpkeep(b *entity.Building) Result {
	w := r.w
	cost := b.MaintenanceCost
	if cost <= 0 {
		return applied(b, 0)
	}

	if w.Base.Gold < cost {
		refund := b.CostToRecover()
		w.Base.Gold += refund
		w.RemoveBuilding(b)

		logger.Log.WithFields(logrus.Fields{
			"kind":        b.Type.String(),
			"level":       b.Level,
			"maintenance": cost,
			"refund":      refund,
		}).Debug("Building liquidated for upkeep")
		return Result{Status: StatusLiquidated, Building: b, Gold: refund}
	}

	w.Base.Gold -= cost
	return applied(b, -cost)
}

// ThrowBomb arms a bomb on the player cell
func (r *Rules) ThrowBomb() Result {
	w := r.w
	if w.Player.Bombs <= 0 {
		return r.reject("Bomb", ReasonNoBombs)
	}
	w.Player.Bombs--
	w.Bombs = append(w.Bombs, entity.NewBomb(w.Player.Pos, w.Config.Bomb, w.Clock.Now()))
	return applied(nil, 0)
}

// DeployLantern drops a free light on the player cell, one per cell
func (r *Rules) DeployLantern() Result {
	w := r.w
	if vmath.AnyNearby(w.Player.Pos, w.Lanterns, 0) {
		return r.reject("Lantern", ReasonOccupied)
	}
	w.Lanterns = append(w.Lanterns, entity.NewLantern(w.Player.Pos))
	return applied(nil, 0)
}

// DeployTrap throws the trap ahead of the player along its facing
func (r *Rules) DeployTrap() Result {
	w := r.w
	if w.Trap.Deployed {
		return r.reject("Trap", ReasonTrapDeployed)
	}
	d := w.Config.Player.TrapThrow
	p := w.Player
	w.Trap.Throw(w.Bounds.Clamp(p.Pos.Add(p.DirY*d, p.DirX*d)))
	return applied(nil, 0)
}

func (r *Rules) reject(action string, reason Reason) Result {
	logger.Log.WithFields(logrus.Fields{
		"action": action,
		"reason": reason.String(),
		"gold":   r.w.Base.Gold,
	}).Debug("Action rejected")
	return rejected(reason)
}
