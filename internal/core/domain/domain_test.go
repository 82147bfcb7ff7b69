package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestProductValidateReportsFirstAbsentField(t *testing.T) {
	p := Product{ID: "7", Name: "Aqua Bottle", Absent: []string{FieldTargetAudience, FieldFeatures}}

	err := p.Validate()
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != FieldFeatures {
		t.Fatalf("expected field %q, got %q", FieldFeatures, missing.Field)
	}
	if !IsKind(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField kind")
	}
	if !strings.Contains(err.Error(), "product 7") {
		t.Fatalf("expected product id in message, got %q", err.Error())
	}
}

func TestProductValidateAcceptsBlankValues(t *testing.T) {
	p := Product{ID: "1", Name: "Aqua Bottle", Category: "", Features: "  ", TargetAudience: ""}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected blank attributes to be valid, got %v", err)
	}
}

func TestProductUnmarshalJSONTracksAbsentKeys(t *testing.T) {
	var p Product
	raw := `{"id":"9","name":"Aqua Bottle","category":"","features":null}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.Name != "Aqua Bottle" || p.Category != "" {
		t.Fatalf("unexpected product %+v", p)
	}
	want := []string{FieldFeatures, FieldTargetAudience}
	if len(p.Absent) != len(want) || p.Absent[0] != want[0] || p.Absent[1] != want[1] {
		t.Fatalf("expected absent %v, got %v", want, p.Absent)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(out), "Absent") {
		t.Fatalf("absent list must not be serialized: %s", out)
	}
}

func TestProductFeatureList(t *testing.T) {
	p := Product{Features: "Insulated;BPA-free;Leak-proof"}
	if got := p.FeatureList(); got != "Insulated, BPA-free, Leak-proof" {
		t.Fatalf("unexpected feature list %q", got)
	}
}

func TestParseSelectionAcceptsLabelsAndSlugs(t *testing.T) {
	sel, err := ParseSelection("social_post", "LUXURY", "french")
	if err != nil {
		t.Fatalf("ParseSelection() error = %v", err)
	}
	if sel.ContentType != SocialPost || sel.Tone != Luxury || sel.Language != French {
		t.Fatalf("unexpected selection %+v", sel)
	}

	sel, err = ParseSelection("Product Description", "Casual", "")
	if err != nil {
		t.Fatalf("ParseSelection() error = %v", err)
	}
	if sel.Language != English {
		t.Fatalf("expected English default, got %v", sel.Language)
	}
}

func TestParseSelectionRejectsUnknownValues(t *testing.T) {
	if _, err := ParseSelection("Blog Post", "Casual", "English"); !IsKind(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for content type, got %v", err)
	}
	if _, err := ParseSelection("Email", "Grumpy", "English"); !IsKind(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for tone, got %v", err)
	}
	if _, err := ParseSelection("Email", "Casual", "German"); !IsKind(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for language, got %v", err)
	}
}

func TestSelectionValidateRejectsOutOfRange(t *testing.T) {
	sel := Selection{ContentType: ContentType(9), Tone: Casual, Language: English}
	if err := sel.Validate(); !IsKind(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSelectionJSONUsesLabels(t *testing.T) {
	raw, err := json.Marshal(Selection{ContentType: ProductDescription, Tone: Playful, Language: French})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"content_type":"Product Description","tone":"Playful","language":"French"}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}

	var decoded Selection
	if err := json.Unmarshal([]byte(`{"content_type":"email","tone":"casual","language":"English"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ContentType != Email || decoded.Tone != Casual {
		t.Fatalf("unexpected decoded selection %+v", decoded)
	}
}

func TestCalculateKPIsWithZeroGenerations(t *testing.T) {
	kpis := CalculateKPIs(GenerationStats{})
	if kpis.AvgTimePerGeneration != 0 {
		t.Fatalf("expected zero average, got %v", kpis.AvgTimePerGeneration)
	}
	if kpis.TimeSavedHours != 0 || kpis.GenerationsCount != 0 {
		t.Fatalf("unexpected kpis %+v", kpis)
	}
}

func TestCalculateKPIsRoundsHours(t *testing.T) {
	stats := GenerationStats{}
	for i := 0; i < 3; i++ {
		stats = stats.Add()
	}
	if stats.TotalTimeSavedMinutes != 90 || stats.TotalCostSaved != 36 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	kpis := CalculateKPIs(stats)
	if kpis.TimeSavedHours != 1.5 {
		t.Fatalf("expected 1.5h, got %v", kpis.TimeSavedHours)
	}
	if kpis.AvgTimePerGeneration != 30 {
		t.Fatalf("expected 30 minutes average, got %v", kpis.AvgTimePerGeneration)
	}
}

func TestComputeROIWithZeroGenerations(t *testing.T) {
	roi := ComputeROI(CalculateKPIs(GenerationStats{}))
	if roi.AICost != 0 || roi.ROIPercentage != 0 {
		t.Fatalf("expected zero ai cost and roi, got %+v", roi)
	}
	if math.IsNaN(roi.ROIPercentage) || math.IsInf(roi.ROIPercentage, 0) {
		t.Fatalf("roi must be finite")
	}
	if roi.CostPerGeneration != AICostPerGeneration {
		t.Fatalf("unexpected cost per generation %v", roi.CostPerGeneration)
	}
}

func TestComputeROIUsesFixedRates(t *testing.T) {
	roi := ComputeROI(KPIs{TimeSavedHours: 1.5, GenerationsCount: 3})
	if math.Abs(roi.ManualCost-67.5) > 1e-9 {
		t.Fatalf("expected manual cost 67.5, got %v", roi.ManualCost)
	}
	if math.Abs(roi.AICost-0.24) > 1e-9 {
		t.Fatalf("expected ai cost 0.24, got %v", roi.AICost)
	}
	if math.Abs(roi.ROIPercentage-(67.26*100)) > 1e-6 {
		t.Fatalf("unexpected roi %v", roi.ROIPercentage)
	}
}

func TestRemoteOutcomeIndicator(t *testing.T) {
	ok := Succeeded("hi")
	if !ok.OK() || ok.Indicator() != "" {
		t.Fatalf("expected success outcome, got %+v", ok)
	}

	failed := Failed(ReasonTimeout, errors.New("deadline"))
	if failed.OK() {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(failed.Indicator(), "timeout") || !strings.Contains(failed.Indicator(), "deadline") {
		t.Fatalf("unexpected indicator %q", failed.Indicator())
	}
}

func TestGenerationResultJSONIncludesSeconds(t *testing.T) {
	res := GenerationResult{Content: "x", GenerationTime: 1500 * time.Millisecond}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"generation_time_seconds":1.5`) {
		t.Fatalf("expected seconds field, got %s", raw)
	}
}
