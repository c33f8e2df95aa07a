package classify_test

import (
	"testing"

	"jobmate/monitor-service/internal/classify"
	"jobmate/monitor-service/internal/model"
)

// ── ClassifyWhiteCollar ────────────────────────────────────────────────────

func TestClassifyWhiteCollar_BlueCollarVeto(t *testing.T) {
	c := classify.NewDefaultClassifier()

	isWC, confidence, _ := c.ClassifyWhiteCollar(
		"Warehouse Associate",
		"Forklift operation, package handling, no experience required",
	)
	if isWC {
		t.Error("warehouse/forklift posting should not be white-collar")
	}
	if confidence >= 0.5 {
		t.Errorf("confidence = %v, want < 0.5", confidence)
	}
}

func TestClassifyWhiteCollar_SeniorEngineer(t *testing.T) {
	c := classify.NewDefaultClassifier()

	isWC, confidence, matched := c.ClassifyWhiteCollar(
		"Senior Software Engineer",
		"Bachelor's degree required, 5+ years Python experience",
	)
	if !isWC {
		t.Error("senior software engineer posting should be white-collar")
	}
	if confidence < 0.5 {
		t.Errorf("confidence = %v, want >= 0.5", confidence)
	}
	if len(matched) == 0 {
		t.Error("expected white-collar keyword matches")
	}
}

// The veto must hold regardless of how strong the white-collar signal is.
func TestClassifyWhiteCollar_VetoBeatsHighConfidence(t *testing.T) {
	c := classify.NewDefaultClassifier()

	isWC, _, _ := c.ClassifyWhiteCollar(
		"Engineering Manager",
		"Director-level manager, analyst background, MBA preferred, "+
			"certified, oversees the warehouse floor",
	)
	if isWC {
		t.Error("a blue-collar keyword match must veto white-collar regardless of score")
	}
}

// Adding a blue-collar keyword may only lower (or hold) the confidence.
func TestClassifyWhiteCollar_Monotonicity(t *testing.T) {
	c := classify.NewDefaultClassifier()

	base := "Operations manager overseeing regional analysts"
	_, before, _ := c.ClassifyWhiteCollar("Operations Manager", base)
	_, after, _ := c.ClassifyWhiteCollar("Operations Manager", base+" and forklift drivers")

	if after > before {
		t.Errorf("confidence rose from %v to %v after adding a blue-collar term", before, after)
	}
}

func TestClassifyWhiteCollar_EmptyInput(t *testing.T) {
	c := classify.NewDefaultClassifier()

	isWC, confidence, matched := c.ClassifyWhiteCollar("", "")
	if isWC {
		t.Error("empty posting should not be white-collar")
	}
	if confidence != 0 {
		t.Errorf("confidence = %v, want 0", confidence)
	}
	if len(matched) != 0 {
		t.Errorf("matched = %v, want none", matched)
	}
}

func TestClassifyWhiteCollar_ConfidenceBounds(t *testing.T) {
	c := classify.NewDefaultClassifier()

	inputs := []struct{ title, desc string }{
		{"", ""},
		{"Warehouse Associate", "forklift cashier janitor warehouse general labor"},
		{"Senior Director", "manager analyst consultant engineer developer architect MBA certified CPA"},
	}
	for _, in := range inputs {
		_, confidence, _ := c.ClassifyWhiteCollar(in.title, in.desc)
		if confidence < 0 || confidence > 1 {
			t.Errorf("confidence %v out of [0,1] for %q", confidence, in.title)
		}
	}
}

// ── Category / sector ──────────────────────────────────────────────────────

func TestClassifyCategory_Technology(t *testing.T) {
	c := classify.NewDefaultClassifier()

	category, matched := c.ClassifyCategory(
		"Senior Software Engineer",
		"Python, Kubernetes, cloud infrastructure",
	)
	if category != "Technology" {
		t.Errorf("category = %q, want Technology", category)
	}
	if len(matched) == 0 {
		t.Error("expected category keyword matches")
	}
}

func TestClassifyCategory_NoMatch(t *testing.T) {
	c := classify.NewDefaultClassifier()

	category, matched := c.ClassifyCategory("Crossing Guard", "Help children cross the street safely")
	if category != "" {
		t.Errorf("category = %q, want no match", category)
	}
	if matched != nil {
		t.Errorf("matched = %v, want nil", matched)
	}
}

func TestClassifySector_Government(t *testing.T) {
	c := classify.NewDefaultClassifier()

	sector, _ := c.ClassifySector(
		"Budget Analyst",
		"State agency seeking analyst for the public sector budget office",
	)
	if sector != "Government" {
		t.Errorf("sector = %q, want Government", sector)
	}
}

// ── SeniorityLevel ─────────────────────────────────────────────────────────

func TestSeniorityLevel(t *testing.T) {
	c := classify.NewDefaultClassifier()

	cases := []struct {
		title, desc string
		want        model.SeniorityLevel
	}{
		{"Senior Software Engineer", "", model.SenioritySenior},
		{"Junior Accountant", "", model.SeniorityEntry},
		{"Vice President of Marketing", "", model.SeniorityExecutive},
		{"Chief Financial Officer", "", model.SeniorityCSuite},
		// No keyword: falls back to the years figure.
		{"Software Engineer", "12 years of experience required", model.SenioritySenior},
		{"Software Engineer", "6 years of experience required", model.SeniorityMid},
		{"Software Engineer", "2 years of experience required", model.SeniorityEntry},
	}
	for _, cse := range cases {
		got := c.SeniorityLevel(cse.title, cse.desc)
		if got == nil || *got != cse.want {
			t.Errorf("SeniorityLevel(%q, %q) = %v, want %v", cse.title, cse.desc, got, cse.want)
		}
	}
}

func TestSeniorityLevel_NoSignal(t *testing.T) {
	c := classify.NewDefaultClassifier()
	if got := c.SeniorityLevel("Software Engineer", "Build great products"); got != nil {
		t.Errorf("SeniorityLevel = %v, want nil", *got)
	}
}

// ── EducationLevel ─────────────────────────────────────────────────────────

func TestEducationLevel_Precedence(t *testing.T) {
	c := classify.NewDefaultClassifier()

	cases := []struct {
		text string
		want model.EducationLevel
	}{
		{"PhD in statistics preferred, bachelor accepted", model.EducationPhD},
		{"MBA or masters degree", model.EducationMasters},
		{"Bachelor's degree required", model.EducationBachelors},
		{"associate degree or high school diploma", model.EducationAssociates},
		{"high school diploma or GED", model.EducationHighSchool},
	}
	for _, cse := range cases {
		got := c.EducationLevel(cse.text)
		if got == nil || *got != cse.want {
			t.Errorf("EducationLevel(%q) = %v, want %v", cse.text, got, cse.want)
		}
	}
}

func TestEducationLevel_NoSignal(t *testing.T) {
	c := classify.NewDefaultClassifier()
	if got := c.EducationLevel("no credentials mentioned"); got != nil {
		t.Errorf("EducationLevel = %v, want nil", *got)
	}
}

// ── ExperienceYears ────────────────────────────────────────────────────────

func TestExperienceYears(t *testing.T) {
	c := classify.NewDefaultClassifier()

	cases := []struct {
		text     string
		min, max int
	}{
		{"3-5 years of experience", 3, 5},
		{"3 to 7 years experience", 3, 7},
		{"5+ years Python experience", 5, 5},
		{"minimum 4 years required", 4, 4},
		{"minimum of 8 years required", 8, 8},
		{"at least 2 years", 2, 2},
		{"6 years of experience", 6, 6},
	}
	for _, cse := range cases {
		gotMin, gotMax := c.ExperienceYears(cse.text)
		if gotMin == nil || gotMax == nil {
			t.Errorf("ExperienceYears(%q) returned nil, want (%d, %d)", cse.text, cse.min, cse.max)
			continue
		}
		if *gotMin != cse.min || *gotMax != cse.max {
			t.Errorf("ExperienceYears(%q) = (%d, %d), want (%d, %d)",
				cse.text, *gotMin, *gotMax, cse.min, cse.max)
		}
	}
}

func TestExperienceYears_NoMatch(t *testing.T) {
	c := classify.NewDefaultClassifier()
	gotMin, gotMax := c.ExperienceYears("plenty of experience welcome")
	if gotMin != nil || gotMax != nil {
		t.Errorf("ExperienceYears = (%v, %v), want (nil, nil)", gotMin, gotMax)
	}
}

// ── RemoteWorkOption ───────────────────────────────────────────────────────

func TestRemoteWorkOption(t *testing.T) {
	c := classify.NewDefaultClassifier()

	cases := []struct {
		desc, location string
		want           model.RemoteWorkOption
	}{
		{"Fully remote role", "United States", model.RemoteOptionRemote},
		{"Remote with hybrid schedule, 2 days in office", "San Francisco", model.RemoteOptionHybrid},
		{"Hybrid, 3 days per week in office", "Oakland", model.RemoteOptionHybrid},
		{"Strictly on-site position", "Sacramento", model.RemoteOptionOnsite},
		{"Flexible work arrangement available", "Fresno", model.RemoteOptionFlexible},
	}
	for _, cse := range cases {
		got := c.RemoteWorkOption(cse.desc, cse.location)
		if got == nil || *got != cse.want {
			t.Errorf("RemoteWorkOption(%q) = %v, want %v", cse.desc, got, cse.want)
		}
	}
}

func TestRemoteWorkOption_NoSignal(t *testing.T) {
	c := classify.NewDefaultClassifier()
	if got := c.RemoteWorkOption("Great team, competitive salary", "Denver"); got != nil {
		t.Errorf("RemoteWorkOption = %v, want nil", *got)
	}
}

// ── Classify (composite) ───────────────────────────────────────────────────

func TestClassify_Composite(t *testing.T) {
	c := classify.NewDefaultClassifier()

	job := model.JobRecord{
		Title:       "Senior Software Engineer",
		Description: "Bachelor's degree required, 5+ years Python experience. Fully remote.",
		Location:    "San Francisco, CA",
	}
	got := c.Classify(job)

	if !got.IsWhiteCollar {
		t.Error("IsWhiteCollar = false, want true")
	}
	if got.ConfidenceScore < 0.5 {
		t.Errorf("ConfidenceScore = %v, want >= 0.5", got.ConfidenceScore)
	}
	if got.JobCategory == nil || *got.JobCategory != "Technology" {
		t.Errorf("JobCategory = %v, want Technology", got.JobCategory)
	}
	if got.SeniorityLevel == nil || *got.SeniorityLevel != model.SenioritySenior {
		t.Errorf("SeniorityLevel = %v, want senior", got.SeniorityLevel)
	}
	if got.EducationLevel == nil || *got.EducationLevel != model.EducationBachelors {
		t.Errorf("EducationLevel = %v, want bachelors", got.EducationLevel)
	}
	if got.ExperienceYearsMin == nil || *got.ExperienceYearsMin != 5 {
		t.Errorf("ExperienceYearsMin = %v, want 5", got.ExperienceYearsMin)
	}
	if got.ExperienceYearsMax == nil || *got.ExperienceYearsMax != 5 {
		t.Errorf("ExperienceYearsMax = %v, want 5", got.ExperienceYearsMax)
	}
	if got.RemoteWorkOption == nil || *got.RemoteWorkOption != model.RemoteOptionRemote {
		t.Errorf("RemoteWorkOption = %v, want remote", got.RemoteWorkOption)
	}
	if len(got.SkillKeywords) == 0 {
		t.Error("expected python in skill keywords")
	}
}

func TestClassify_EmptyJob(t *testing.T) {
	c := classify.NewDefaultClassifier()

	got := c.Classify(model.JobRecord{})
	if got.IsWhiteCollar || got.ConfidenceScore != 0 {
		t.Errorf("empty job → (%v, %v), want (false, 0)", got.IsWhiteCollar, got.ConfidenceScore)
	}
	if got.JobCategory != nil || got.JobSector != nil || got.SeniorityLevel != nil {
		t.Error("empty job should produce no optional classifications")
	}
}
