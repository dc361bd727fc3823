package geo

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry is a LineString geometry.
// Positions are [lon, lat, elevation], elevation relative to the sphere surface.
type GeoJSONGeometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates [][]float64 `json:"coordinates" yaml:"coordinates"`
}

// NewFeatureCollection returns an empty collection ready for appending.
func NewFeatureCollection(capacity int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, capacity),
	}
}

// PathFeature converts a path into a LineString feature.
// Points below the surface carry a negative elevation; the centre sits at -radius.
func PathFeature(p Path, properties map[string]interface{}) GeoJSONFeature {
	coords := make([][]float64, 0, p.Len())
	for _, c := range p.points {
		elevation := (c.scale - 1) * c.radius
		coords = append(coords, []float64{c.longitude, c.latitude, elevation})
	}

	if properties == nil {
		properties = map[string]interface{}{}
	}

	return GeoJSONFeature{
		Type:       "Feature",
		Properties: properties,
		Geometry: GeoJSONGeometry{
			Type:        "LineString",
			Coordinates: coords,
		},
	}
}
