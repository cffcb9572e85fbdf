package entity

// Access levels, ordered. A caller may self-check-in to an item when their
// level ranks at least as high as the item's.
const (
	AccessGeneral   = "general"
	AccessVolunteer = "volunteer"
	AccessMentor    = "mentor"
	AccessOrganizer = "organizer"
)

var accessRank = map[string]int{
	AccessGeneral:   1,
	AccessVolunteer: 2,
	AccessMentor:    3,
	AccessOrganizer: 4,
}

// AccessAtLeast reports whether level meets the min tier. Unknown levels rank
// below general.
func AccessAtLeast(level, min string) bool {
	return accessRank[level] >= accessRank[min]
}
