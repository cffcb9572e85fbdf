package entity

import (
	"fmt"
	"time"

	"github.com/hackdesk/hackdesk/util"
	"github.com/klauspost/lctime"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CheckInItem struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name,omitempty" json:"name"`

	StartTime time.Time `bson:"startTime,omitempty" json:"startTime"`
	EndTime   time.Time `bson:"endTime,omitempty" json:"endTime"`

	Points            int    `bson:"points" json:"points"`
	AccessLevel       string `bson:"accessLevel,omitempty" json:"accessLevel"`
	EnableSelfCheckIn bool   `bson:"enableSelfCheckIn" json:"enableSelfCheckIn"`

	HackathonID primitive.ObjectID `bson:"hackathonId,omitempty" json:"hackathonId"`
}

// WindowContains reports whether t falls within [StartTime, EndTime).
func (i *CheckInItem) WindowContains(t time.Time) bool {
	return !t.Before(i.StartTime) && t.Before(i.EndTime)
}

func (i *CheckInItem) Alias(lang string) string {
	format := "%A, %d.%m.%Y %H:%M"
	if i.StartTime.Hour() == 0 && i.StartTime.Minute() == 0 {
		format = "%A, %d.%m.%Y"
	}
	t, _ := lctime.StrftimeLoc(util.IetfToIsoLangCode(lang), format, i.StartTime)
	return fmt.Sprintf("%s (%s)", i.Name, t)
}
