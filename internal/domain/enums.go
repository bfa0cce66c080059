package domain

// UserRole distinguishes regular users from administrators.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// CervicalMucus is the observed cervical fluid consistency in a daily log.
type CervicalMucus string

const (
	CervicalMucusDry      CervicalMucus = "DRY"
	CervicalMucusSticky   CervicalMucus = "STICKY"
	CervicalMucusCreamy   CervicalMucus = "CREAMY"
	CervicalMucusWatery   CervicalMucus = "WATERY"
	CervicalMucusEggWhite CervicalMucus = "EGG_WHITE"
)

func (m CervicalMucus) String() string { return string(m) }

func (m CervicalMucus) IsValid() bool {
	switch m {
	case CervicalMucusDry, CervicalMucusSticky, CervicalMucusCreamy,
		CervicalMucusWatery, CervicalMucusEggWhite:
		return true
	}
	return false
}

// Symptom intensity bounds. Intensity is an ordinal 1..5 scale.
const (
	MinIntensity = 1
	MaxIntensity = 5
)
