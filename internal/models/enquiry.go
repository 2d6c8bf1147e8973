package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// EnquiryStatus is the review state of a customer enquiry.
// The zero value means "no status given" and is never persisted.
type EnquiryStatus uint8

const (
	EnquiryStatusPending EnquiryStatus = iota + 1
	EnquiryStatusReviewed
	EnquiryStatusResolved
)

var enquiryStatusNames = map[EnquiryStatus]string{
	EnquiryStatusPending:  "PENDING",
	EnquiryStatusReviewed: "REVIEWED",
	EnquiryStatusResolved: "RESOLVED",
}

// ParseEnquiryStatus converts PENDING, REVIEWED or RESOLVED (any case) into a status.
func ParseEnquiryStatus(s string) (EnquiryStatus, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range enquiryStatusNames {
		if n == name {
			return status, nil
		}
	}
	return 0, fmt.Errorf("invalid enquiry status: %q", s)
}

// Valid reports whether s is one of the three known states.
func (s EnquiryStatus) Valid() bool {
	_, ok := enquiryStatusNames[s]
	return ok
}

func (s EnquiryStatus) String() string {
	if name, ok := enquiryStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("EnquiryStatus(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s EnquiryStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid enquiry status: %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *EnquiryStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseEnquiryStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value stores the status as its textual name.
func (s EnquiryStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid enquiry status: %d", uint8(s))
	}
	return s.String(), nil
}

// Scan reads a textual status back from the database.
func (s *EnquiryStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into EnquiryStatus", value)
	}
}

// Enquiry is a customer question, optionally about a specific product.
type Enquiry struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	Name      string        `gorm:"size:100;not null"`
	Email     string        `gorm:"size:100;not null;index"`
	Phone     string        `gorm:"size:25;not null"`
	Message   string        `gorm:"type:text"`
	ProductID *int64        `gorm:"index"`
	Status    EnquiryStatus `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time     `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for Enquiry model.
func (Enquiry) TableName() string {
	return "enquiries"
}
