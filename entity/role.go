package entity

const (
	RoleAdmin       = "admin"
	RoleParticipant = "participant"
)

const (
	AdmissionPending  = "pending"
	AdmissionAdmitted = "admitted"
	AdmissionRejected = "rejected"
)
