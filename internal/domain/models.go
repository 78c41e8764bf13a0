package domain

// Status is the categorical classification of a blood sugar reading.
type Status string

const (
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
	StatusLow    Status = "low"
)

// Test types supported by the entry form.
const (
	TestTypeFingerPrick       = "Finger Prick"
	TestTypeContinuousMonitor = "Continuous Monitor"
	TestTypeLabTest           = "Lab Test"
)

// TestTypes lists the valid test types in display order.
var TestTypes = []string{
	TestTypeFingerPrick,
	TestTypeContinuousMonitor,
	TestTypeLabTest,
}

// Reading represents a recorded blood sugar measurement. Readings are
// immutable once created; the only mutation path is deletion.
type Reading struct {
	ID       string  `json:"id"`
	Value    float64 `json:"value"` // mg/dL
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	TestType string  `json:"testType"`
	Note     string  `json:"note,omitempty"`
	Status   Status  `json:"status"`
}

// ReadingInput is the caller-supplied part of a reading; id and status
// are assigned by the store.
type ReadingInput struct {
	Value    float64
	Date     string
	Time     string
	TestType string
	Note     string
}

// Medication represents a stored medication entry. The collection is
// append-only; every entry doubles as a reminder.
type Medication struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Schedule string `json:"schedule"`
	Time     string `json:"time"`
}

// MedicationInput is the caller-supplied part of a medication.
type MedicationInput struct {
	Name     string
	Dosage   string
	Schedule string
	Time     string
}

// UserProfile is the singleton per-installation profile record. Updates
// replace the record wholesale.
type UserProfile struct {
	Name                      string `json:"name"`
	Email                     string `json:"email,omitempty"`
	Age                       int    `json:"age,omitempty"`
	CaregiverEmail            string `json:"caregiverEmail,omitempty"`
	NotificationsEnabled      bool   `json:"notificationsEnabled"`
	EmailNotificationsEnabled bool   `json:"emailNotificationsEnabled"`
}

// DefaultProfile returns the profile used before the user has saved one.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:                      "Patient",
		NotificationsEnabled:      true,
		EmailNotificationsEnabled: true,
	}
}
