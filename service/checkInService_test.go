package service

import (
	"testing"
	"time"

	"github.com/hackdesk/hackdesk/entity"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func snackBreak() *entity.CheckInItem {
	return &entity.CheckInItem{
		ID:                primitive.NewObjectID(),
		Name:              "Midnight Snack",
		StartTime:         time.Unix(1000, 0),
		EndTime:           time.Unix(2000, 0),
		Points:            10,
		AccessLevel:       entity.AccessGeneral,
		EnableSelfCheckIn: true,
	}
}

func TestCanCheckInWindow(t *testing.T) {
	checkInService := NewCheckInService(newFakeCheckInItemRepository(), newFakeUserRepository(), NewAuthService())
	item := snackBreak()
	caller := participant(primitive.NilObjectID)

	assert.NoError(t, checkInService.CanCheckIn(caller, item, time.Unix(1500, 0)))
	assert.ErrorIs(t, checkInService.CanCheckIn(caller, item, time.Unix(2500, 0)), ErrOutOfWindow)
	assert.ErrorIs(t, checkInService.CanCheckIn(caller, item, time.Unix(500, 0)), ErrOutOfWindow)

	// The window is half-open: start is in, end is out.
	assert.NoError(t, checkInService.CanCheckIn(caller, item, time.Unix(1000, 0)))
	assert.ErrorIs(t, checkInService.CanCheckIn(caller, item, time.Unix(2000, 0)), ErrOutOfWindow)
}

func TestCanCheckInSelfCheckInDisabled(t *testing.T) {
	checkInService := NewCheckInService(newFakeCheckInItemRepository(), newFakeUserRepository(), NewAuthService())
	item := snackBreak()
	item.EnableSelfCheckIn = false

	err := checkInService.CanCheckIn(participant(primitive.NilObjectID), item, time.Unix(1500, 0))
	assert.ErrorIs(t, err, ErrSelfCheckInDisabled)

	// The desk flag does not bind admins.
	assert.NoError(t, checkInService.CanCheckIn(admin(), item, time.Unix(1500, 0)))
}

func TestCanCheckInInsufficientAccess(t *testing.T) {
	checkInService := NewCheckInService(newFakeCheckInItemRepository(), newFakeUserRepository(), NewAuthService())
	item := snackBreak()
	item.AccessLevel = entity.AccessVolunteer

	general := participant(primitive.NilObjectID)
	err := checkInService.CanCheckIn(general, item, time.Unix(1500, 0))
	assert.ErrorIs(t, err, ErrInsufficientAccess)

	volunteer := participant(primitive.NilObjectID)
	volunteer.AccessLevel = entity.AccessVolunteer
	assert.NoError(t, checkInService.CanCheckIn(volunteer, item, time.Unix(1500, 0)))

	mentor := participant(primitive.NilObjectID)
	mentor.AccessLevel = entity.AccessMentor
	assert.NoError(t, checkInService.CanCheckIn(mentor, item, time.Unix(1500, 0)))
}

func TestCanCheckInWindowBeatsOtherRules(t *testing.T) {
	checkInService := NewCheckInService(newFakeCheckInItemRepository(), newFakeUserRepository(), NewAuthService())
	item := snackBreak()
	item.EnableSelfCheckIn = false

	// A closed window denies admins too.
	err := checkInService.CanCheckIn(admin(), item, time.Unix(2500, 0))
	assert.ErrorIs(t, err, ErrOutOfWindow)
}

func TestCheckInRecordsOnce(t *testing.T) {
	item := snackBreak()
	user := &entity.User{Name: "Eve", Role: entity.RoleParticipant, AccessLevel: entity.AccessGeneral}
	userRepository := newFakeUserRepository(user)
	checkInService := NewCheckInService(newFakeCheckInItemRepository(item), userRepository, NewAuthService())

	caller := &Identity{UserID: user.ID, Role: entity.RoleParticipant, AccessLevel: entity.AccessGeneral}

	first, err := checkInService.CheckIn(caller, user.ID, item.ID, time.Unix(1500, 0))
	assert.NoError(t, err)
	assert.Len(t, first.CheckInItemIDs, 1)

	second, err := checkInService.CheckIn(caller, user.ID, item.ID, time.Unix(1600, 0))
	assert.NoError(t, err)
	assert.Len(t, second.CheckInItemIDs, 1)
}

func TestCheckInOtherUserRequiresAdmin(t *testing.T) {
	item := snackBreak()
	target := &entity.User{Name: "Frank", Role: entity.RoleParticipant, AccessLevel: entity.AccessGeneral}
	userRepository := newFakeUserRepository(target)
	checkInService := NewCheckInService(newFakeCheckInItemRepository(item), userRepository, NewAuthService())

	_, err := checkInService.CheckIn(participant(primitive.NilObjectID), target.ID, item.ID, time.Unix(1500, 0))
	assert.ErrorIs(t, err, ErrNotOwner)

	checked, err := checkInService.CheckIn(admin(), target.ID, item.ID, time.Unix(1500, 0))
	assert.NoError(t, err)
	assert.True(t, checked.HasCheckedIn(item.ID))
}

func TestCheckInDeskBypassesSelfCheckInFlag(t *testing.T) {
	item := snackBreak()
	item.EnableSelfCheckIn = false
	target := &entity.User{Name: "Grace", Role: entity.RoleParticipant, AccessLevel: entity.AccessGeneral}
	userRepository := newFakeUserRepository(target)
	checkInService := NewCheckInService(newFakeCheckInItemRepository(item), userRepository, NewAuthService())

	checked, err := checkInService.CheckIn(admin(), target.ID, item.ID, time.Unix(1500, 0))
	assert.NoError(t, err)
	assert.True(t, checked.HasCheckedIn(item.ID))
}

func TestCheckInUnknownItem(t *testing.T) {
	checkInService := NewCheckInService(newFakeCheckInItemRepository(), newFakeUserRepository(), NewAuthService())

	caller := participant(primitive.NilObjectID)
	_, err := checkInService.CheckIn(caller, caller.UserID, primitive.NewObjectID(), time.Unix(1500, 0))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTotalPoints(t *testing.T) {
	breakfast := snackBreak()
	breakfast.Points = 10
	briefing := snackBreak()
	briefing.ID = primitive.NewObjectID()
	briefing.Points = 25
	skipped := snackBreak()
	skipped.ID = primitive.NewObjectID()
	skipped.Points = 100

	user := &entity.User{
		Name:           "Heidi",
		CheckInItemIDs: []primitive.ObjectID{breakfast.ID, briefing.ID},
	}
	checkInService := NewCheckInService(newFakeCheckInItemRepository(breakfast, briefing, skipped), newFakeUserRepository(), NewAuthService())

	total, err := checkInService.TotalPoints(user)
	assert.NoError(t, err)
	assert.Equal(t, 35, total)
}

func TestTotalPointsNoCheckIns(t *testing.T) {
	checkInService := NewCheckInService(newFakeCheckInItemRepository(), newFakeUserRepository(), NewAuthService())

	total, err := checkInService.TotalPoints(&entity.User{Name: "Ivan"})
	assert.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestSaveItemRequiresAdmin(t *testing.T) {
	checkInService := NewCheckInService(newFakeCheckInItemRepository(), newFakeUserRepository(), NewAuthService())

	_, err := checkInService.SaveItem(participant(primitive.NewObjectID()), *snackBreak())
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestSaveItemInvalidWindow(t *testing.T) {
	checkInService := NewCheckInService(newFakeCheckInItemRepository(), newFakeUserRepository(), NewAuthService())

	item := *snackBreak()
	item.EndTime = item.StartTime

	_, err := checkInService.SaveItem(admin(), item)
	assert.ErrorIs(t, err, ErrInvalid)
}
