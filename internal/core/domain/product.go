package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// Product is one catalog entry. Features is a semicolon-delimited list.
type Product struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Category       string `json:"category" yaml:"category"`
	Features       string `json:"features" yaml:"features"`
	TargetAudience string `json:"target_audience" yaml:"target_audience"`

	// Absent lists the attributes the source record did not carry at all.
	// A blank value is present.
	Absent []string `json:"-" yaml:"-"`
}

// Product attribute names as they appear in catalog headers and errors.
const (
	FieldName           = "Product Name"
	FieldCategory       = "Category"
	FieldFeatures       = "Features/Attributes"
	FieldTargetAudience = "Target Audience"
)

// Attribute pairs each prompt attribute with its json/yaml key.
type Attribute struct {
	Field string
	Key   string
}

var attributes = []Attribute{
	{FieldName, "name"},
	{FieldCategory, "category"},
	{FieldFeatures, "features"},
	{FieldTargetAudience, "target_audience"},
}

// Attributes returns the four attributes the prompt templates interpolate,
// in validation order.
func Attributes() []Attribute {
	return slices.Clone(attributes)
}

// Validate returns a *MissingFieldError for the first absent attribute.
// Empty strings pass and interpolate as empty.
func (p Product) Validate() error {
	for _, attr := range attributes {
		if slices.Contains(p.Absent, attr.Field) {
			return &MissingFieldError{ProductID: p.ID, Field: attr.Field}
		}
	}
	return nil
}

// UnmarshalJSON records attributes whose keys are missing or null in Absent.
func (p *Product) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	type plain Product
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	decoded.Absent = nil
	for _, attr := range attributes {
		if raw, ok := keys[attr.Key]; !ok || string(raw) == "null" {
			decoded.Absent = append(decoded.Absent, attr.Field)
		}
	}
	*p = Product(decoded)
	return nil
}

// FeatureList returns the features joined for prose ("a;b" -> "a, b").
func (p Product) FeatureList() string {
	return strings.ReplaceAll(p.Features, ";", ", ")
}

// Label is the selector text shown to users: "Name (Category)".
func (p Product) Label() string {
	return p.Name + " (" + p.Category + ")"
}
