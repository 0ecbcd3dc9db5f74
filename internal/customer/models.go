package customer

import (
	"github.com/kireinail/skillcheck/internal/scoring"
)

// Customer is a salon client enrolled in the skill-check program.
// Number is the salon-assigned customer number and is unique.
type Customer struct {
	ID              int64  `json:"id"`
	Number          string `json:"customer_number"`
	Name            string `json:"name"`
	Age             int    `json:"age,omitempty"`
	Prefecture      string `json:"prefecture,omitempty"`
	Occupation      string `json:"occupation,omitempty"`
	Experience      string `json:"nail_technician_experience,omitempty"`
	ApplicationDate string `json:"application_date,omitempty"`
	DriveURL        string `json:"google_drive_url,omitempty"`
	Status          string `json:"status"`
	CreatedAt       int64  `json:"created_at"`
}

// SkillCheck is one imported evaluation for a customer. Scores holds the
// per-item values keyed by item key; the aggregate columns are carried
// separately so reports can read them without scanning the item map.
type SkillCheck struct {
	ID         int64          `json:"id"`
	CustomerID int64          `json:"customer_id"`
	ImportedAt int64          `json:"imported_at"`
	Scores     scoring.Record `json:"scores"`
	CareScore  *float64       `json:"care_score,omitempty"`
	ColorScore *float64       `json:"color_score,omitempty"`
	ArtScore   *float64       `json:"art_score,omitempty"`
	TimeScore  *float64       `json:"time_score,omitempty"`
	TotalScore *float64       `json:"total_score,omitempty"`
	TotalTime  string         `json:"total_time,omitempty"`
	Rank       string         `json:"rank,omitempty"`
	Comment    string         `json:"counseling_comment,omitempty"`
}

// Record folds the stored aggregate columns into a copy of the item
// scores so the scoring package sees them under their usual keys.
func (c SkillCheck) Record() scoring.Record {
	rec := make(scoring.Record, len(c.Scores)+6)
	for k, v := range c.Scores {
		rec[k] = v
	}
	put := func(key string, v *float64) {
		if v != nil {
			rec[key] = *v
		}
	}
	put("care_score", c.CareScore)
	put("color_score", c.ColorScore)
	put("art_score", c.ArtScore)
	put("time_score", c.TimeScore)
	put("total_score", c.TotalScore)
	if c.TotalTime != "" {
		if _, ok := rec["total_time"]; !ok {
			rec["total_time"] = c.TotalTime
		}
	}
	return rec
}

// Note is a free-form counseling note attached to a customer.
type Note struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Content    string `json:"note_content"`
	CreatedAt  int64  `json:"created_at"`
}
