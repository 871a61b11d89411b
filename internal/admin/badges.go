package admin

import "fmt"

// BadgeVariant is a UI badge style name
type BadgeVariant string

const (
	BadgeNeutral BadgeVariant = "neutral"
	BadgeInfo    BadgeVariant = "info"
	BadgeSuccess BadgeVariant = "success"
	BadgeWarning BadgeVariant = "warning"
	BadgeDanger  BadgeVariant = "danger"
)

// StatusBadge maps a lifecycle status to its badge variant. Unknown statuses
// are an error rather than a silent default style.
func StatusBadge(status LifecycleStatus) (BadgeVariant, error) {
	switch status {
	case StatusDraft:
		return BadgeNeutral, nil
	case StatusUnderReview:
		return BadgeInfo, nil
	case StatusApproved:
		return BadgeSuccess, nil
	case StatusPaused:
		return BadgeWarning, nil
	case StatusArchived:
		return BadgeNeutral, nil
	default:
		return "", fmt.Errorf("no badge variant for status %q", status)
	}
}

// RiskBadge maps a risk rating to its badge variant
func RiskBadge(risk RiskRating) (BadgeVariant, error) {
	switch risk {
	case RiskLow:
		return BadgeSuccess, nil
	case RiskMedium:
		return BadgeWarning, nil
	case RiskHigh:
		return BadgeDanger, nil
	default:
		return "", fmt.Errorf("no badge variant for risk rating %q", risk)
	}
}

// MRVStatusBadge maps an MRV document status to its badge variant
func MRVStatusBadge(status MRVDocumentStatus) (BadgeVariant, error) {
	switch status {
	case MRVPendingReview:
		return BadgeWarning, nil
	case MRVCurrent:
		return BadgeSuccess, nil
	case MRVSuperseded:
		return BadgeNeutral, nil
	default:
		return "", fmt.Errorf("no badge variant for MRV status %q", status)
	}
}
