package service

import (
	"time"

	"github.com/hackdesk/hackdesk/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CheckInItemRepository interface {
	FindAll() ([]*entity.CheckInItem, error)
	FindOneByID(ID primitive.ObjectID) (*entity.CheckInItem, error)
	FindManyBetweenDates(fromUTC, toUTC time.Time) ([]*entity.CheckInItem, error)
	UpdateOne(item entity.CheckInItem) (*entity.CheckInItem, error)
	DeleteOneByID(ID primitive.ObjectID) error
}

type CheckInUserRepository interface {
	FindOneByID(ID primitive.ObjectID) (*entity.User, error)
	AddCheckInItem(userID, itemID primitive.ObjectID) (*entity.User, error)
}

type CheckInService struct {
	itemRepository CheckInItemRepository
	userRepository CheckInUserRepository
	authService    *AuthService
}

func NewCheckInService(itemRepository CheckInItemRepository, userRepository CheckInUserRepository, authService *AuthService) *CheckInService {
	return &CheckInService{
		itemRepository: itemRepository,
		userRepository: userRepository,
		authService:    authService,
	}
}

// CanCheckIn evaluates eligibility only; it records nothing. Rules in order:
// the item's [start, end) window, the self-check-in flag (admins bypass it),
// then the access tier.
func (s *CheckInService) CanCheckIn(caller *Identity, item *entity.CheckInItem, now time.Time) error {
	if !item.WindowContains(now) {
		return ErrOutOfWindow
	}

	if caller.IsAdmin() {
		return nil
	}

	if !item.EnableSelfCheckIn {
		return ErrSelfCheckInDisabled
	}

	if !entity.AccessAtLeast(caller.AccessLevel, item.AccessLevel) {
		return ErrInsufficientAccess
	}

	return nil
}

// CheckIn records a check-in for userID after evaluating eligibility.
// Recording is a set insertion, so a second check-in for the same item is a
// no-op success, not a duplicate award. Checking in someone else is an admin
// desk operation.
func (s *CheckInService) CheckIn(caller *Identity, userID, itemID primitive.ObjectID, now time.Time) (*entity.User, error) {
	item, err := s.itemRepository.FindOneByID(itemID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if userID != caller.UserID {
		if err := s.authService.Authorize(caller, OpUpdate, Resource{}); err != nil {
			return nil, err
		}
	}

	if err := s.CanCheckIn(caller, item, now); err != nil {
		return nil, err
	}

	user, err := s.userRepository.AddCheckInItem(userID, item.ID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return user, nil
}

// TotalPoints sums the points of every item the user has checked in to.
func (s *CheckInService) TotalPoints(user *entity.User) (int, error) {
	if len(user.CheckInItemIDs) == 0 {
		return 0, nil
	}

	items, err := s.itemRepository.FindAll()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	var total int
	for _, item := range items {
		if user.HasCheckedIn(item.ID) {
			total += item.Points
		}
	}
	return total, nil
}

func (s *CheckInService) FindItems() ([]*entity.CheckInItem, error) {
	items, err := s.itemRepository.FindAll()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.CheckInItem{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *CheckInService) FindItemsBetweenDates(fromUTC, toUTC time.Time) ([]*entity.CheckInItem, error) {
	items, err := s.itemRepository.FindManyBetweenDates(fromUTC, toUTC)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []*entity.CheckInItem{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (s *CheckInService) FindItem(ID primitive.ObjectID) (*entity.CheckInItem, error) {
	item, err := s.itemRepository.FindOneByID(ID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return item, nil
}

// SaveItem creates or edits an item; admin only.
func (s *CheckInService) SaveItem(caller *Identity, item entity.CheckInItem) (*entity.CheckInItem, error) {
	if err := s.authService.Authorize(caller, OpUpdate, Resource{}); err != nil {
		return nil, err
	}

	if !item.EndTime.After(item.StartTime) {
		return nil, ErrInvalid
	}

	return s.itemRepository.UpdateOne(item)
}

func (s *CheckInService) DeleteItem(caller *Identity, ID primitive.ObjectID) error {
	if err := s.authService.Authorize(caller, OpDelete, Resource{}); err != nil {
		return err
	}

	return s.itemRepository.DeleteOneByID(ID)
}
