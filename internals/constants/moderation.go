package constants

// Status moderasi untuk channel, material, teacher verification & access request.
// pending -> approved / rejected (terminal dua-duanya).
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func IsValidModerationStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
