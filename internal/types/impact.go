package types

import (
	"encoding/json"
)

// ImpactShape identifies which wire shape an impact reading arrived in.
type ImpactShape int

const (
	// ShapeMalformed means the reading was neither a number nor a record
	// with a numeric "value" field. Its scalar is 0 and downstream display
	// must show "not available" rather than a real zero.
	ShapeMalformed ImpactShape = iota
	// ShapeNumber means the reading was a bare JSON number.
	ShapeNumber
	// ShapeRecord means the reading was an object carrying "value" plus
	// metadata (unit, uncertainty bounds, quality score).
	ShapeRecord
)

// ImpactValue is a single impact reading from the LCA engine. The engine
// emits either a bare number or a wrapped record depending on calculation
// path, so decoding is shape-sniffed once here instead of at every call
// site.
type ImpactValue struct {
	Value            float64
	Unit             string
	UncertaintyRange [2]float64
	DataQualityScore float64
	Shape            ImpactShape
}

// impactRecord is the wrapped wire form of an impact reading.
type impactRecord struct {
	Value            *float64  `json:"value"`
	Unit             string    `json:"unit"`
	UncertaintyRange []float64 `json:"uncertainty_range"`
	DataQualityScore float64   `json:"data_quality_score"`
}

// UnmarshalJSON decodes a bare number, a value-bearing record, or anything
// else (recorded as malformed with scalar 0, never an error).
func (v *ImpactValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = ImpactValue{Value: num, Shape: ShapeNumber}
		return nil
	}

	var rec impactRecord
	if err := json.Unmarshal(data, &rec); err == nil && rec.Value != nil {
		iv := ImpactValue{
			Value:            *rec.Value,
			Unit:             rec.Unit,
			DataQualityScore: rec.DataQualityScore,
			Shape:            ShapeRecord,
		}
		if len(rec.UncertaintyRange) >= 2 {
			iv.UncertaintyRange = [2]float64{rec.UncertaintyRange[0], rec.UncertaintyRange[1]}
		}
		*v = iv
		return nil
	}

	*v = ImpactValue{Shape: ShapeMalformed}
	return nil
}

// MarshalJSON re-emits the reading in the shape it arrived in so a decoded
// result round-trips faithfully.
func (v ImpactValue) MarshalJSON() ([]byte, error) {
	switch v.Shape {
	case ShapeNumber:
		return json.Marshal(v.Value)
	case ShapeRecord:
		value := v.Value
		return json.Marshal(impactRecord{
			Value:            &value,
			Unit:             v.Unit,
			UncertaintyRange: []float64{v.UncertaintyRange[0], v.UncertaintyRange[1]},
			DataQualityScore: v.DataQualityScore,
		})
	default:
		return []byte("null"), nil
	}
}
