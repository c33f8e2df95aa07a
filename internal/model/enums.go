package model

import "fmt"

// JobStatus values mirror the job_status enum in PostgreSQL.
type JobStatus string

const (
	StatusOpen   JobStatus = "OPEN"
	StatusClosed JobStatus = "CLOSED"
)

// ParseJobStatus converts a raw string to a JobStatus, returning an error
// for unknown values.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case StatusOpen, StatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// SeniorityLevel buckets a posting by career stage.
type SeniorityLevel string

const (
	SeniorityEntry     SeniorityLevel = "entry"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityExecutive SeniorityLevel = "executive"
	SeniorityCSuite    SeniorityLevel = "c_suite"
)

// EducationLevel is the highest education credential a posting asks for.
type EducationLevel string

const (
	EducationHighSchool   EducationLevel = "high_school"
	EducationAssociates   EducationLevel = "associates"
	EducationBachelors    EducationLevel = "bachelors"
	EducationMasters      EducationLevel = "masters"
	EducationPhD          EducationLevel = "phd"
	EducationProfessional EducationLevel = "professional"
)

// RemoteWorkOption describes the work-location arrangement of a posting.
type RemoteWorkOption string

const (
	RemoteOptionRemote   RemoteWorkOption = "remote"
	RemoteOptionHybrid   RemoteWorkOption = "hybrid"
	RemoteOptionOnsite   RemoteWorkOption = "onsite"
	RemoteOptionFlexible RemoteWorkOption = "flexible"
)

// Region is one of the Northern-California sub-regions tracked by the
// geo matcher.
type Region string

const (
	RegionBayArea          Region = "BAY_AREA"
	RegionSacramentoValley Region = "SACRAMENTO_VALLEY"
	RegionCentralValley    Region = "CENTRAL_VALLEY"
	RegionNorthCoast       Region = "NORTH_COAST"
	RegionSierraNevada     Region = "SIERRA_NEVADA"
)

// QualityFlag is the traffic-light hiring-quality signal.
// QualityUnknown is reserved for companies with no observed postings.
type QualityFlag string

const (
	QualityGreen   QualityFlag = "green"
	QualityYellow  QualityFlag = "yellow"
	QualityRed     QualityFlag = "red"
	QualityUnknown QualityFlag = "unknown"
)
