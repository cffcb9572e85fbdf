package service

import (
	"github.com/hackdesk/hackdesk/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdmissionUserRepository interface {
	FindOneByID(ID primitive.ObjectID) (*entity.User, error)
	UpdateAdmissionStatus(ID primitive.ObjectID, status string) (*entity.User, error)
}

// AdmissionService moves users from pending to admitted or rejected. Callers
// are admin-gated upstream by the authorizer.
type AdmissionService struct {
	userRepository AdmissionUserRepository

	// AllowOverride permits re-deciding an already admitted or rejected user,
	// last write wins. With it off, a second decision fails with
	// ErrAlreadyDecided. Re-applying the same decision is a no-op either way.
	AllowOverride bool
}

func NewAdmissionService(userRepository AdmissionUserRepository, allowOverride bool) *AdmissionService {
	return &AdmissionService{
		userRepository: userRepository,
		AllowOverride:  allowOverride,
	}
}

func (s *AdmissionService) Admit(userID primitive.ObjectID) (*entity.User, error) {
	return s.decide(userID, entity.AdmissionAdmitted)
}

func (s *AdmissionService) Reject(userID primitive.ObjectID) (*entity.User, error) {
	return s.decide(userID, entity.AdmissionRejected)
}

func (s *AdmissionService) decide(userID primitive.ObjectID, status string) (*entity.User, error) {
	user, err := s.userRepository.FindOneByID(userID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if user.AdmissionStatus == status {
		return user, nil
	}

	decided := user.AdmissionStatus == entity.AdmissionAdmitted || user.AdmissionStatus == entity.AdmissionRejected
	if decided && !s.AllowOverride {
		return nil, ErrAlreadyDecided
	}

	updated, err := s.userRepository.UpdateAdmissionStatus(userID, status)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return updated, nil
}
