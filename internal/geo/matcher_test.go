package geo_test

import (
	"math"
	"testing"

	"jobmate/monitor-service/internal/geo"
	"jobmate/monitor-service/internal/model"
)

// ── ClassifyLocation ───────────────────────────────────────────────────────

func TestClassifyLocation_SanFrancisco(t *testing.T) {
	m := geo.NewDefaultMatcher()

	got := m.ClassifyLocation("San Francisco, CA", "", "")
	if !got.IsNorthernCalifornia {
		t.Error("San Francisco should be Northern California")
	}
	if got.Region == nil || *got.Region != model.RegionBayArea {
		t.Errorf("Region = %v, want BAY_AREA", got.Region)
	}
	if got.City == nil || *got.City != "San Francisco" {
		t.Errorf("City = %v, want San Francisco", got.City)
	}
	// County (1.0) + city (0.8) both hit; confidence caps at 1.0.
	if got.ConfidenceScore < 0.8 {
		t.Errorf("ConfidenceScore = %v, want >= 0.8", got.ConfidenceScore)
	}
}

// Bakersfield sits in the CENTRAL_VALLEY table entry, and the current
// product definition counts the whole Central Valley as Northern
// California. A geography judgment call, not a bug.
func TestClassifyLocation_Bakersfield(t *testing.T) {
	m := geo.NewDefaultMatcher()

	got := m.ClassifyLocation("Bakersfield, CA", "", "")
	if got.Region == nil || *got.Region != model.RegionCentralValley {
		t.Errorf("Region = %v, want CENTRAL_VALLEY", got.Region)
	}
	if !got.IsNorthernCalifornia {
		t.Error("Bakersfield should flag Northern California per the current table")
	}
}

func TestClassifyLocation_AliasSubstitution(t *testing.T) {
	m := geo.NewDefaultMatcher()

	got := m.ClassifyLocation("SF", "", "")
	if got.Region == nil || *got.Region != model.RegionBayArea {
		t.Errorf("Region = %v, want BAY_AREA via sf → san francisco alias", got.Region)
	}

	got = m.ClassifyLocation("South Bay", "", "")
	if got.Region == nil || *got.Region != model.RegionBayArea {
		t.Errorf("Region = %v, want BAY_AREA via south bay → santa clara county alias", got.Region)
	}
	if got.County == nil || *got.County != "Santa Clara" {
		t.Errorf("County = %v, want Santa Clara", got.County)
	}
}

func TestClassifyLocation_RemoteUsesCompanyLocation(t *testing.T) {
	m := geo.NewDefaultMatcher()

	got := m.ClassifyLocation("Remote", "This is a fully remote role", "Oakland, CA")
	if got.Region == nil || *got.Region != model.RegionBayArea {
		t.Errorf("Region = %v, want BAY_AREA from company location", got.Region)
	}
	// City hit (0.8) damped by the remote-path factor (×0.8).
	want := 0.8 * 0.8
	if math.Abs(got.ConfidenceScore-want) > 1e-9 {
		t.Errorf("ConfidenceScore = %v, want %v", got.ConfidenceScore, want)
	}
}

func TestClassifyLocation_RemoteWithoutCompanyLocation(t *testing.T) {
	m := geo.NewDefaultMatcher()

	got := m.ClassifyLocation("Remote", "Fully remote position", "")
	if got.IsNorthernCalifornia {
		t.Error("remote posting with no company location should not match")
	}
	if got.ConfidenceScore != 0 {
		t.Errorf("ConfidenceScore = %v, want 0", got.ConfidenceScore)
	}
}

func TestClassifyLocation_OutOfRegion(t *testing.T) {
	m := geo.NewDefaultMatcher()

	for _, loc := range []string{"New York, NY", "Austin, TX", "Los Angeles, CA", ""} {
		got := m.ClassifyLocation(loc, "", "")
		if got.IsNorthernCalifornia {
			t.Errorf("ClassifyLocation(%q) flagged Northern California", loc)
		}
		if got.Region != nil {
			t.Errorf("ClassifyLocation(%q) resolved region %v", loc, *got.Region)
		}
		if got.ConfidenceScore != 0 {
			t.Errorf("ClassifyLocation(%q) confidence = %v, want 0", loc, got.ConfidenceScore)
		}
	}
}

// A bare regional keyword with no resolvable region still flags Northern
// California. Preserved behaviour, flagged for product review — do not
// tighten silently.
func TestClassifyLocation_GeneralKeywordWithoutRegion(t *testing.T) {
	m := geo.NewDefaultMatcher()

	got := m.ClassifyLocation("Northern California", "", "")
	if got.Region != nil {
		t.Errorf("Region = %v, want nil", *got.Region)
	}
	if !got.IsNorthernCalifornia {
		t.Error("nonzero keyword score should flag Northern California even without a region")
	}
	if got.ConfidenceScore <= 0 || got.ConfidenceScore > 1 {
		t.Errorf("ConfidenceScore = %v, want in (0,1]", got.ConfidenceScore)
	}
}

func TestClassifyLocation_ConfidenceBounds(t *testing.T) {
	m := geo.NewDefaultMatcher()

	locations := []string{
		"San Francisco Bay Area, San Francisco, Oakland, San Jose",
		"Sacramento", "norcal", "", "nowhere",
	}
	for _, loc := range locations {
		got := m.ClassifyLocation(loc, "", "")
		if got.ConfidenceScore < 0 || got.ConfidenceScore > 1 {
			t.Errorf("ClassifyLocation(%q) confidence %v out of [0,1]", loc, got.ConfidenceScore)
		}
	}
}

func TestClassifyLocation_MatchedKeywords(t *testing.T) {
	m := geo.NewDefaultMatcher()

	got := m.ClassifyLocation("Silicon Valley / Palo Alto", "", "")
	if got.Region == nil || *got.Region != model.RegionBayArea {
		t.Fatalf("Region = %v, want BAY_AREA", got.Region)
	}
	found := map[string]bool{}
	for _, kw := range got.MatchedKeywords {
		found[kw] = true
	}
	if !found["palo alto"] || !found["silicon valley"] {
		t.Errorf("MatchedKeywords = %v, want palo alto and silicon valley", got.MatchedKeywords)
	}
}

// ── IsRemoteJob ────────────────────────────────────────────────────────────

func TestIsRemoteJob(t *testing.T) {
	m := geo.NewDefaultMatcher()

	if !m.IsRemoteJob("work from home position", "") {
		t.Error("IsRemoteJob should detect work from home")
	}
	if !m.IsRemoteJob("", "Remote") {
		t.Error("IsRemoteJob should detect remote location")
	}
	if m.IsRemoteJob("onsite role in the office", "Fresno, CA") {
		t.Error("IsRemoteJob should not fire without remote indicators")
	}
}
