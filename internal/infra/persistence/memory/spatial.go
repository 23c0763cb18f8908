package memory

import (
	"math"

	"github.com/paulmach/orb"
)

// gridIndex buckets location ids by coordinate cell for bounded-box lookups.
type gridIndex struct {
	cellSize float64 // degrees on both axes
	cells    map[gridKey][]int64
	size     int
}

type gridKey struct {
	latCell int
	lngCell int
}

func newGridIndex(cellSize float64) *gridIndex {
	return &gridIndex{
		cellSize: cellSize,
		cells:    make(map[gridKey][]int64),
	}
}

func (g *gridIndex) key(lat, lng float64) gridKey {
	return gridKey{
		latCell: int(math.Floor(lat / g.cellSize)),
		lngCell: int(math.Floor(lng / g.cellSize)),
	}
}

func (g *gridIndex) insert(id int64, p orb.Point) {
	k := g.key(p.Lat(), p.Lon())
	g.cells[k] = append(g.cells[k], id)
	g.size++
}

func (g *gridIndex) remove(id int64, p orb.Point) {
	k := g.key(p.Lat(), p.Lon())
	ids := g.cells[k]
	for i, candidate := range ids {
		if candidate == id {
			g.cells[k] = append(ids[:i], ids[i+1:]...)
			g.size--

			break
		}
	}
	if len(g.cells[k]) == 0 {
		delete(g.cells, k)
	}
}

// cellCount is the number of cells a bound spans.
func (g *gridIndex) cellCount(bound orb.Bound) int {
	lo := g.key(bound.Min.Lat(), bound.Min.Lon())
	hi := g.key(bound.Max.Lat(), bound.Max.Lon())

	return (hi.latCell - lo.latCell + 1) * (hi.lngCell - lo.lngCell + 1)
}

// within returns the ids stored in every cell the bound touches. Callers still
// filter by exact coordinates since cells overhang the bound.
// ok is false when the bound spans more cells than there are entries, in which
// case a linear scan is cheaper and nothing is returned.
func (g *gridIndex) within(bound orb.Bound) (ids []int64, ok bool) {
	if g.cellCount(bound) > max(g.size, 9) {
		return nil, false
	}

	lo := g.key(bound.Min.Lat(), bound.Min.Lon())
	hi := g.key(bound.Max.Lat(), bound.Max.Lon())
	for latCell := lo.latCell; latCell <= hi.latCell; latCell++ {
		for lngCell := lo.lngCell; lngCell <= hi.lngCell; lngCell++ {
			ids = append(ids, g.cells[gridKey{latCell: latCell, lngCell: lngCell}]...)
		}
	}

	return ids, true
}
