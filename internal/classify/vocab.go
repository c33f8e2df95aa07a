package classify

import "jobmate/monitor-service/internal/model"

// CategoryKeywords binds one category (or sector) name to its ordered
// keyword list. Slices, not maps: argmax ties break to the first-declared
// entry, which must stay deterministic across runs.
type CategoryKeywords struct {
	Name     string
	Keywords []string
}

// SeniorityKeywords binds a seniority level to its indicator keywords.
type SeniorityKeywords struct {
	Level    model.SeniorityLevel
	Keywords []string
}

// EducationKeywords binds an education level to its indicator keywords.
type EducationKeywords struct {
	Level    model.EducationLevel
	Keywords []string
}

// Vocabulary holds every keyword table the classifier consults. It is
// immutable after construction; the classifier never mutates it, so one
// instance is safe to share across goroutines.
//
// All keywords must be in normalised form (lowercase, no punctuation) —
// matching is exact substring containment over normalised text.
type Vocabulary struct {
	WhiteCollar        []string
	BlueCollar         []string
	EducationTerms     []string
	CertificationTerms []string
	Skills             []string

	Categories []CategoryKeywords
	Sectors    []CategoryKeywords

	// Seniority is checked in declaration order; the first level with a
	// keyword hit wins.
	Seniority []SeniorityKeywords

	// Education is checked in descending precedence:
	// phd > professional > masters > bachelors > associates > high_school.
	Education []EducationKeywords

	RemoteKeywords   []string
	HybridKeywords   []string
	FlexibleKeywords []string
	OnsiteKeywords   []string
}

// DefaultVocabulary returns the built-in keyword tables. The lists are
// domain content, tuned by observation rather than derivation — swap them
// out via NewClassifier for experiments or per-market tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		WhiteCollar: []string{
			"software engineer", "engineer", "developer", "programmer",
			"architect", "analyst", "scientist", "researcher",
			"manager", "director", "consultant", "strategist",
			"accountant", "auditor", "controller", "economist",
			"attorney", "lawyer", "paralegal",
			"designer", "product manager", "project manager",
			"administrator", "coordinator", "specialist",
			"marketing", "finance", "human resources", "recruiter",
		},
		BlueCollar: []string{
			"warehouse", "forklift", "assembly line", "production line",
			"cashier", "barista", "dishwasher", "housekeeping", "janitor",
			"custodian", "landscaping", "groundskeeper",
			"delivery driver", "truck driver", "courier",
			"plumber", "roofer", "welder", "machinist",
			"general labor", "manual labor", "package handler",
			"stocking shelves", "line cook",
		},
		EducationTerms: []string{
			"bachelor", "master", "mba", "phd", "doctorate", "degree required",
			"degree in", "bs in", "ms in", "ba in",
		},
		CertificationTerms: []string{
			"cpa", "cfa", "pmp", "certified", "certification",
			"six sigma", "licensed professional", "bar admission",
		},
		Skills: []string{
			"python", "java", "javascript", "typescript", "golang", "sql",
			"aws", "azure", "kubernetes", "docker", "terraform",
			"excel", "tableau", "salesforce", "sap",
			"machine learning", "data analysis", "financial modeling",
			"project management", "agile", "scrum",
		},
		Categories: []CategoryKeywords{
			{Name: "Technology", Keywords: []string{
				"software", "engineer", "developer", "data", "cloud", "devops",
				"cybersecurity", "machine learning", "it support", "sre",
				"python", "java", "kubernetes",
			}},
			{Name: "Finance", Keywords: []string{
				"finance", "financial", "accounting", "accountant", "audit",
				"tax", "banking", "investment", "portfolio", "treasury",
			}},
			{Name: "Healthcare", Keywords: []string{
				"healthcare", "clinical", "medical", "patient", "pharmacy",
				"health plan", "nursing informatics",
			}},
			{Name: "Marketing", Keywords: []string{
				"marketing", "brand", "seo", "content strategy", "campaign",
				"growth", "social media",
			}},
			{Name: "Sales", Keywords: []string{
				"sales", "account executive", "business development",
				"quota", "pipeline", "crm",
			}},
			{Name: "Legal", Keywords: []string{
				"legal", "attorney", "counsel", "paralegal", "compliance",
				"contracts", "litigation",
			}},
			{Name: "Human Resources", Keywords: []string{
				"human resources", "hr ", "recruiter", "talent acquisition",
				"people operations", "benefits administration",
			}},
			{Name: "Operations", Keywords: []string{
				"operations", "supply chain", "logistics", "procurement",
				"process improvement", "program manager",
			}},
		},
		Sectors: []CategoryKeywords{
			{Name: "Technology", Keywords: []string{
				"tech company", "saas", "software company", "startup",
				"platform", "cloud provider",
			}},
			{Name: "Financial Services", Keywords: []string{
				"bank", "credit union", "asset management", "insurance",
				"fintech", "brokerage",
			}},
			{Name: "Healthcare", Keywords: []string{
				"hospital", "clinic", "health system", "biotech",
				"pharmaceutical", "medical device",
			}},
			{Name: "Government", Keywords: []string{
				"government", "federal", "state agency", "municipal",
				"public sector", "county of", "city of",
			}},
			{Name: "Education", Keywords: []string{
				"university", "college", "school district", "edtech",
				"academic",
			}},
			{Name: "Nonprofit", Keywords: []string{
				"nonprofit", "non profit", "ngo", "foundation", "501",
			}},
			{Name: "Manufacturing", Keywords: []string{
				"manufacturing", "factory", "industrial", "automotive",
				"aerospace",
			}},
			{Name: "Retail", Keywords: []string{
				"retail", "ecommerce", "e commerce", "consumer goods",
				"merchandising",
			}},
		},
		Seniority: []SeniorityKeywords{
			{Level: model.SeniorityEntry, Keywords: []string{
				"entry level", "junior", "intern", "internship", "new grad",
				"early career", "no experience required",
			}},
			{Level: model.SeniorityMid, Keywords: []string{
				"mid level", "intermediate", "experienced professional",
			}},
			{Level: model.SenioritySenior, Keywords: []string{
				"senior", "sr ", "lead", "principal", "staff engineer",
			}},
			{Level: model.SeniorityExecutive, Keywords: []string{
				"vice president", "vp ", "head of", "executive director",
				"general manager",
			}},
			{Level: model.SeniorityCSuite, Keywords: []string{
				"chief executive", "chief financial", "chief technology",
				"chief operating", "ceo", "cfo", "cto", "coo",
			}},
		},
		Education: []EducationKeywords{
			{Level: model.EducationPhD, Keywords: []string{
				"phd", "ph d", "doctorate", "doctoral degree",
			}},
			{Level: model.EducationProfessional, Keywords: []string{
				"juris doctor", "law degree", "medical degree",
				"md or do", "professional degree",
			}},
			{Level: model.EducationMasters, Keywords: []string{
				"master s", "masters degree", "mba", "ms degree",
				"graduate degree",
			}},
			{Level: model.EducationBachelors, Keywords: []string{
				"bachelor", "bs degree", "ba degree", "undergraduate degree",
				"4 year degree",
			}},
			{Level: model.EducationAssociates, Keywords: []string{
				"associate degree", "associate s degree", "aa degree",
				"2 year degree",
			}},
			{Level: model.EducationHighSchool, Keywords: []string{
				"high school", "ged", "hs diploma",
			}},
		},
		RemoteKeywords: []string{
			"remote", "work from home", "wfh", "telecommute",
			"distributed team", "work from anywhere",
		},
		HybridKeywords: []string{
			"hybrid", "days in office", "days per week in office",
			"partially remote",
		},
		FlexibleKeywords: []string{
			"flexible work arrangement", "flexible location",
			"flexible schedule",
		},
		OnsiteKeywords: []string{
			"onsite", "on site", "in person", "in office only",
		},
	}
}
