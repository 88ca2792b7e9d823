package osmgraph

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func tags(kv ...string) osm.Tags {
	var t osm.Tags
	for i := 0; i+1 < len(kv); i += 2 {
		t = append(t, osm.Tag{Key: kv[i], Value: kv[i+1]})
	}

	return t
}

func TestCarAccessible(t *testing.T) {
	tests := []struct {
		name string
		tags osm.Tags
		want bool
	}{
		{"residential", tags("highway", "residential"), true},
		{"motorway", tags("highway", "motorway"), true},
		{"footway", tags("highway", "footway"), false},
		{"no highway", tags("building", "yes"), false},
		{"area", tags("highway", "service", "area", "yes"), false},
		{"private", tags("highway", "service", "access", "private"), false},
		{"access no", tags("highway", "primary", "access", "no"), false},
		{"motor_vehicle no", tags("highway", "tertiary", "motor_vehicle", "no"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, carAccessible(tt.tags))
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name     string
		tags     osm.Tags
		fwd, bwd bool
	}{
		{"two-way", tags("highway", "residential"), true, true},
		{"oneway yes", tags("highway", "primary", "oneway", "yes"), true, false},
		{"oneway 1", tags("highway", "primary", "oneway", "1"), true, false},
		{"oneway -1", tags("highway", "primary", "oneway", "-1"), false, true},
		{"reverse", tags("highway", "primary", "oneway", "reverse"), false, true},
		{"reversible", tags("highway", "primary", "oneway", "reversible"), false, false},
		{"motorway implied", tags("highway", "motorway"), true, false},
		{"roundabout implied", tags("highway", "tertiary", "junction", "roundabout"), true, false},
		{"motorway oneway no", tags("highway", "motorway", "oneway", "no"), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd, bwd := direction(tt.tags)
			assert.Equal(t, tt.fwd, fwd, "forward")
			assert.Equal(t, tt.bwd, bwd, "backward")
		})
	}
}

func TestMillimetres(t *testing.T) {
	assert.Equal(t, uint32(1), millimetres(0))
	assert.Equal(t, uint32(1), millimetres(0.0004))
	assert.Equal(t, uint32(1500), millimetres(1.5))
}

func TestHaversine(t *testing.T) {
	// One degree of latitude is ~111.195 km everywhere.
	d := haversine(Point{0, 0}, Point{1, 0})
	assert.InDelta(t, 111_195, d, 1)
	assert.Zero(t, haversine(Point{1.3, 103.8}, Point{1.3, 103.8}))
}
