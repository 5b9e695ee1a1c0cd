package api

// Wire types mirror the backend DTOs. Dates are the backend's ISO strings
// (LocalDate "2006-01-02", LocalTime "15:04:05"); the client passes them
// through without interpreting them.

// AuthResult is returned by register, login and verify-otp.
type AuthResult struct {
	Token       string `json:"token"`
	Type        string `json:"type"`
	UserID      int64  `json:"userId"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	MFARequired bool   `json:"mfaRequired"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FamilyMember is a tracked family member profile.
type FamilyMember struct {
	ID           int64  `json:"id,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Email        string `json:"email,omitempty"`
}

// HealthRecord is a single health measurement or event.
type HealthRecord struct {
	ID             int64  `json:"id,omitempty"`
	FamilyMemberID int64  `json:"familyMemberId"`
	RecordType     string `json:"recordType"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Value          string `json:"value,omitempty"`
	Unit           string `json:"unit,omitempty"`
	RecordedDate   string `json:"recordedDate,omitempty"`
	DoctorName     string `json:"doctorName,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Medication is a prescribed or tracked medication.
type Medication struct {
	ID             int64                `json:"id,omitempty"`
	FamilyMemberID int64                `json:"familyMemberId"`
	Name           string               `json:"name"`
	Dosage         string               `json:"dosage,omitempty"`
	Frequency      string               `json:"frequency,omitempty"`
	StartDate      string               `json:"startDate,omitempty"`
	EndDate        string               `json:"endDate,omitempty"`
	Instructions   string               `json:"instructions,omitempty"`
	PrescribedBy   string               `json:"prescribedBy,omitempty"`
	Reminders      []MedicationReminder `json:"reminders,omitempty"`
}

// MedicationReminder is a scheduled reminder attached to a medication.
type MedicationReminder struct {
	ID           int64  `json:"id,omitempty"`
	MedicationID int64  `json:"medicationId,omitempty"`
	ReminderTime string `json:"reminderTime"`
	DaysOfWeek   []int  `json:"daysOfWeek,omitempty"`
	ReminderType string `json:"reminderType,omitempty"`
	Status       string `json:"status,omitempty"`
}

// CreateReminderRequest schedules a reminder. Days are sent as day names;
// the backend resolves them.
type CreateReminderRequest struct {
	ReminderTime string   `json:"reminderTime"`
	DaysOfWeek   []string `json:"daysOfWeek,omitempty"`
	ReminderType string   `json:"reminderType,omitempty"`
}

// DashboardStats aggregates counts across the account.
type DashboardStats struct {
	TotalMembers       int64 `json:"totalMembers"`
	TotalMedications   int64 `json:"totalMedications"`
	TotalHealthRecords int64 `json:"totalHealthRecords"`
	TotalReminders     int64 `json:"totalReminders"`
}

// FamilyMemberSummary is the dashboard's compact member row.
type FamilyMemberSummary struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Relationship string `json:"relationship,omitempty"`
}

// HealthRecordSummary is the dashboard's compact record row.
type HealthRecordSummary struct {
	ID               int64  `json:"id"`
	FamilyMemberID   int64  `json:"familyMemberId"`
	FamilyMemberName string `json:"familyMemberName,omitempty"`
	RecordType       string `json:"recordType"`
	Title            string `json:"title"`
	RecordedDate     string `json:"recordedDate,omitempty"`
	Value            string `json:"value,omitempty"`
	Unit             string `json:"unit,omitempty"`
}

// ReminderSummary is the dashboard's compact upcoming-reminder row.
type ReminderSummary struct {
	ID               int64  `json:"id"`
	MedicationID     int64  `json:"medicationId"`
	MedicationName   string `json:"medicationName"`
	FamilyMemberID   int64  `json:"familyMemberId"`
	FamilyMemberName string `json:"familyMemberName,omitempty"`
	ReminderTime     string `json:"reminderTime"`
	ReminderType     string `json:"reminderType,omitempty"`
	Status           string `json:"status,omitempty"`
}

// Dashboard aggregates stats and recent items.
type Dashboard struct {
	Stats               DashboardStats        `json:"stats"`
	RecentFamilyMembers []FamilyMemberSummary `json:"recentFamilyMembers"`
	UpcomingReminders   []ReminderSummary     `json:"upcomingReminders"`
	RecentHealthRecords []HealthRecordSummary `json:"recentHealthRecords"`
}
