package domain

import "errors"

var ErrCaseExists = errors.New("case already exists")

// CaseStage records the completion of one stage of a tracked case.
type CaseStage struct {
	StageID        int    `json:"stage_id" bson:"stage_id"`
	CompletedDate  string `json:"completed_date" bson:"completed_date"`
	ActualDuration int    `json:"actual_duration" bson:"actual_duration"`
}

// Case is a tracked legal case. Dates are stored as the caller-supplied
// strings; the case tracker treats them as opaque display values.
type Case struct {
	ID              string      `json:"id" bson:"id"`
	Title           string      `json:"title" bson:"title"`
	Client          string      `json:"client" bson:"client"`
	OpposingParty   string      `json:"opposing_party" bson:"opposing_party"`
	Lawyer          string      `json:"lawyer" bson:"lawyer"`
	Court           string      `json:"court" bson:"court"`
	Judge           string      `json:"judge" bson:"judge"`
	Jurisdiction    string      `json:"jurisdiction" bson:"jurisdiction"`
	FilingDate      string      `json:"filing_date" bson:"filing_date"`
	NextHearingDate string      `json:"next_hearing_date" bson:"next_hearing_date"`
	CurrentStage    int         `json:"current_stage" bson:"current_stage"`
	CompletedStages []int       `json:"completed_stages" bson:"completed_stages"`
	StageHistory    []CaseStage `json:"stage_history" bson:"stage_history"`
	LastUpdateDate  string      `json:"last_update_date" bson:"last_update_date"`
}
