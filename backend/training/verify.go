package training

import "portal/backend/models"

// VerificationResult reports whether a task completion was accepted and how.
type VerificationResult struct {
	Verified bool   `json:"verified"`
	Method   string `json:"method"`
	Message  string `json:"message"`
}

// VerifyTask checks a task according to its declared verification type.
//
// Only manual verification ("Mark Complete") is implemented. The api_check
// and state_check arms would call the TARA API and inspect embedded platform
// state respectively; until that integration exists they are explicit
// always-succeed fallbacks that record the manual method, and their messages
// say so rather than pretending the check ran.
func VerifyTask(task models.Task) VerificationResult {
	switch task.VerificationType {
	case models.VerificationAPICheck:
		return VerificationResult{
			Verified: true,
			Method:   string(models.VerificationManual),
			Message:  "Verified (API check pending TARA integration)",
		}
	case models.VerificationStateCheck:
		return VerificationResult{
			Verified: true,
			Method:   string(models.VerificationManual),
			Message:  "Verified (state check pending TARA integration)",
		}
	default:
		return VerificationResult{
			Verified: true,
			Method:   string(models.VerificationManual),
			Message:  "Task marked as complete",
		}
	}
}
