// SPDX-License-Identifier: MIT
// Package: endcap/builder
//
// impl_fan.go — implementation of Fan(sectors, rings) constructor.
//
// Canonical model (N = sectors, R = rings, S = spokes = N closed, N+1 open):
//   • Local vertex 0 is the centre.
//   • Spoke s carries vertices at distance a∈[1..R], local index 1 + s*R + (a-1).
//   • Sector s lies between spokes s and s+1 (mod N when closed). Its inner
//     lattice point (a, b), a,b∈[1..R], has local index
//     1 + S*R + s*R² + (a-1)*R + (b-1) and position a·dir(s) + b·dir(s+1).
//   • Face s*R² + a*R + b, a,b∈[0..R), is the quad
//     (a,b) (a+1,b) (a+1,b+1) (a,b+1) of sector s.
//   • dir(s) points at angle 2πs/N (closed) or πs/N (open).
//
// Contract:
//   • closed: N ≥ MinFanSectors; open (WithOpen): N ≥ MinOpenFanSectors.
//   • R ≥ MinFanRings.
//   • The centre has valence N (closed) or N+1 (open, boundary).
//   • Spoke and sector vertices closer than R to the centre have valence 4.
//
// Complexity: O(N*R²) time and appended space.

package builder

import "math"

// Fan returns a Constructor that builds a fan of sectors quad patches around
// a centre vertex.
func Fan(sectors, rings int) Constructor {
	return func(m *Mesh, cfg builderConfig) error {
		minSectors := MinFanSectors
		if cfg.open {
			minSectors = MinOpenFanSectors
		}
		if err := validateMin(MethodFan, "sectors", sectors, minSectors); err != nil {
			return err
		}
		if err := validateMin(MethodFan, "rings", rings, MinFanRings); err != nil {
			return err
		}

		lay := fanLayout{sectors: sectors, rings: rings, open: cfg.open}
		base := len(m.Positions)

		m.Positions = append(m.Positions, cfg.point(0, 0))
		for s := 0; s < lay.spokes(); s++ {
			dx, dy := lay.dir(s)
			for a := 1; a <= rings; a++ {
				m.Positions = append(m.Positions, cfg.point(float64(a)*dx, float64(a)*dy))
			}
		}
		for s := 0; s < sectors; s++ {
			ux, uy := lay.dir(s)
			vx, vy := lay.dir(s + 1)
			for a := 1; a <= rings; a++ {
				for b := 1; b <= rings; b++ {
					fa, fb := float64(a), float64(b)
					m.Positions = append(m.Positions, cfg.point(fa*ux+fb*vx, fa*uy+fb*vy))
				}
			}
		}

		for s := 0; s < sectors; s++ {
			for a := 0; a < rings; a++ {
				for b := 0; b < rings; b++ {
					appendQuad(m, base,
						lay.vertex(s, a, b),
						lay.vertex(s, a+1, b),
						lay.vertex(s, a+1, b+1),
						lay.vertex(s, a, b+1))
				}
			}
		}

		return nil
	}
}

// fanLayout computes local vertex indices and spoke directions of a fan.
type fanLayout struct {
	sectors, rings int
	open           bool
}

func (l fanLayout) spokes() int {
	if l.open {
		return l.sectors + 1
	}
	return l.sectors
}

// spoke wraps s onto an existing spoke.
func (l fanLayout) spoke(s int) int {
	if l.open {
		return s
	}
	return s % l.sectors
}

func (l fanLayout) dir(s int) (float64, float64) {
	span := 2 * math.Pi
	if l.open {
		span = math.Pi
	}
	theta := span * float64(s) / float64(l.sectors)

	return math.Cos(theta), math.Sin(theta)
}

// vertex returns the local index of lattice point (a, b) of sector s.
func (l fanLayout) vertex(s, a, b int) int {
	switch {
	case a == 0 && b == 0:
		return 0
	case b == 0:
		return 1 + l.spoke(s)*l.rings + a - 1
	case a == 0:
		return 1 + l.spoke(s+1)*l.rings + b - 1
	}

	return 1 + l.spokes()*l.rings + s*l.rings*l.rings + (a-1)*l.rings + b - 1
}

// FanCenter is the local index of the centre vertex of a fan.
const FanCenter = 0

// FanSpokeVertex returns the local index of the vertex at distance a along
// spoke s of a fan with rings rings.
func FanSpokeVertex(rings, s, a int) int { return 1 + s*rings + a - 1 }

// FanFace returns the local index of face (a, b) of sector s of a fan with
// rings rings.
func FanFace(rings, s, a, b int) int { return s*rings*rings + a*rings + b }
