package progress

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// Record is the single progress row a user has for one calendar day.
type Record struct {
	ID             int       `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Day            time.Time `json:"-"`
	BodyWeight     float64   `json:"bodyWeight"`
	TrainingVolume float64   `json:"trainingVolume"`
	WaterMl        int       `json:"waterMl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type recordAlias Record

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		recordAlias
		Date string `json:"date"`
	}{
		recordAlias: recordAlias(r),
		Date:        r.Day.Format(DateLayout),
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	aux := struct {
		*recordAlias
		Date string `json:"date"`
	}{
		recordAlias: (*recordAlias)(r),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		return nil
	}
	day, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return fmt.Errorf("parse record date [%s]: %w", aux.Date, err)
	}
	r.Day = day
	return nil
}

type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}
