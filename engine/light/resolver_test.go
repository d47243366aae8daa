package light

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-params/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func TestResolve_PositionNormMatchesDistance(t *testing.T) {
	for lat := float32(-45); lat <= 45; lat += 7.5 {
		for long := float32(0); long <= 90; long += 7.5 {
			for _, d := range []float32{0, 0.5, 1, 20, 100} {
				r := Resolve(PolarLight{
					Latitude:  common.DegToRad(lat),
					Longitude: common.DegToRad(long),
					Distance:  d,
				})
				assert.InDelta(t, 1.0, r.Unit.Len(), epsilon, "lat=%v long=%v", lat, long)
				assert.InDelta(t, 1.0, r.Direction.Len(), epsilon, "lat=%v long=%v", lat, long)
				assert.InDelta(t, d, r.Position.Len(), float64(d)*epsilon+epsilon, "lat=%v long=%v d=%v", lat, long, d)
			}
		}
	}
}

func TestResolve_DirectionIsNegatedUnit(t *testing.T) {
	r := Resolve(PolarLight{Latitude: common.DegToRad(20), Longitude: common.DegToRad(60), Distance: 3})

	assert.True(t, r.Direction.ApproxEqualThreshold(r.Unit.Mul(-1), epsilon))
	assert.True(t, r.Position.ApproxEqualThreshold(r.Unit.Mul(3), epsilon))
	assert.Equal(t, r.Direction, r.Vector(ModeDirection))
	assert.Equal(t, r.Position, r.Vector(ModePosition))
}

func TestResolve_Deterministic(t *testing.T) {
	p := PolarLight{Latitude: 0.3, Longitude: 0.7, Distance: 12}
	assert.Equal(t, Resolve(p), Resolve(p))
}

func TestFromLatLong_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		latDeg    float32
		longDeg   float32
		want      mgl32.Vec3
		exactWant bool
	}{
		{
			name:      "straight up ignores azimuth",
			latDeg:    -45,
			longDeg:   0,
			want:      mgl32.Vec3{0, 1, 0},
			exactWant: true,
		},
		{
			name:    "horizon at -45 azimuth",
			latDeg:  -45,
			longDeg: 90,
			want:    mgl32.Vec3{float32(math.Sqrt2 / 2), 0, float32(-math.Sqrt2 / 2)},
		},
		{
			name:    "horizon at +45 azimuth",
			latDeg:  45,
			longDeg: 90,
			want:    mgl32.Vec3{float32(-math.Sqrt2 / 2), 0, float32(-math.Sqrt2 / 2)},
		},
		{
			name:    "default light",
			latDeg:  0,
			longDeg: 30,
			want:    mgl32.Vec3{0, float32(math.Sqrt(3) / 2), -0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromLatLong(common.DegToRad(tt.latDeg), common.DegToRad(tt.longDeg))
			if tt.exactWant {
				assert.Equal(t, tt.want, got)
				return
			}
			assert.True(t, got.ApproxEqualThreshold(tt.want, epsilon), "got %v want %v", got, tt.want)
		})
	}
}

func TestResolveHelpers(t *testing.T) {
	lat, long := common.DegToRad(0), common.DegToRad(30)

	pos := ResolvePosition(lat, long, 20)
	dir := ResolveDirection(lat, long)

	assert.InDelta(t, 20.0, pos.Len(), 1e-4)
	assert.True(t, dir.ApproxEqualThreshold(pos.Normalize().Mul(-1), epsilon))
	assert.Equal(t, "direction", ModeDirection.String())
}
