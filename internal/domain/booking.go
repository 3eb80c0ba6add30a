package domain

import (
	"regexp"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingDeclined  BookingStatus = "declined"
	BookingCompleted BookingStatus = "completed"
	BookingCanceled  BookingStatus = "canceled"
)

// BookingStatuses lists every status an administrator may assign.
func BookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingPending,
		BookingConfirmed,
		BookingDeclined,
		BookingCompleted,
		BookingCanceled,
	}
}

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingDeclined, BookingCompleted, BookingCanceled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

type ServiceType string

const (
	ServicePortrait   ServiceType = "portrait"
	ServiceEvent      ServiceType = "event"
	ServiceWedding    ServiceType = "wedding"
	ServiceCommercial ServiceType = "commercial"
)

func ParseServiceType(s string) (ServiceType, bool) {
	switch ServiceType(s) {
	case ServicePortrait, ServiceEvent, ServiceWedding, ServiceCommercial:
		return ServiceType(s), true
	default:
		return "", false
	}
}

// ServiceOption is one bookable service as shown on the booking form.
type ServiceOption struct {
	Type  ServiceType `json:"type"`
	Label string      `json:"label"`
}

func ServiceCatalog() []ServiceOption {
	return []ServiceOption{
		{Type: ServicePortrait, Label: "Portrait Photography - $299"},
		{Type: ServiceEvent, Label: "Event Photography - $799"},
		{Type: ServiceWedding, Label: "Wedding Photography - $1,999"},
		{Type: ServiceCommercial, Label: "Commercial Photography - Custom Quote"},
	}
}

type Booking struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ServiceType ServiceType   `json:"service_type"`
	EventDate   time.Time     `json:"event_date"`
	EventTime   string        `json:"event_time"`
	Location    string        `json:"location"`
	Message     string        `json:"message"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// BookingRequest carries the raw form fields of one booking submission.
type BookingRequest struct {
	Name        string
	Email       string
	Phone       string
	ServiceType string
	EventDate   string
	EventTime   string
	Location    string
	Message     string
}

// Field length bounds
const (
	MinNameLen     = 2
	MaxNameLen     = 100
	MinPhoneLen    = 10
	MaxPhoneLen    = 20
	MinLocationLen = 5
	MaxLocationLen = 200
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func (r *BookingRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.ServiceType = strings.TrimSpace(r.ServiceType)
	r.EventDate = strings.TrimSpace(r.EventDate)
	r.EventTime = strings.TrimSpace(r.EventTime)
	r.Location = strings.TrimSpace(r.Location)
	r.Message = strings.TrimSpace(r.Message)
}

// Validate checks every field and returns one message per failing field.
// An empty map means the submission is acceptable.
func (r *BookingRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if r.Name == "" {
		errs["name"] = "Name is required"
	} else if len(r.Name) < MinNameLen || len(r.Name) > MaxNameLen {
		errs["name"] = "Name must be between 2 and 100 characters"
	}

	if r.Email == "" {
		errs["email"] = "Email is required"
	} else if !isValidEmail(r.Email) {
		errs["email"] = "Invalid email format"
	}

	if r.Phone == "" {
		errs["phone"] = "Phone number is required"
	} else if len(r.Phone) < MinPhoneLen || len(r.Phone) > MaxPhoneLen {
		errs["phone"] = "Phone number must be between 10 and 20 characters"
	}

	if _, ok := ParseServiceType(r.ServiceType); !ok {
		errs["service_type"] = "Please select a service type"
	}

	if r.EventDate == "" {
		errs["event_date"] = "Event date is required"
	} else if _, err := time.Parse(DateLayout, r.EventDate); err != nil {
		errs["event_date"] = "Invalid event date"
	}

	if r.EventTime == "" {
		errs["event_time"] = "Event time is required"
	} else if _, ok := parseTimeOfDay(r.EventTime); !ok {
		errs["event_time"] = "Invalid event time"
	}

	if r.Location == "" {
		errs["location"] = "Location is required"
	} else if len(r.Location) < MinLocationLen || len(r.Location) > MaxLocationLen {
		errs["location"] = "Location must be between 5 and 200 characters"
	}

	return errs
}

// Booking builds the domain record from a request that already passed
// Validate. Identity, status and creation time are assigned by the store.
func (r *BookingRequest) Booking() *Booking {
	date, _ := time.Parse(DateLayout, r.EventDate)
	tod, _ := parseTimeOfDay(r.EventTime)
	svc, _ := ParseServiceType(r.ServiceType)

	return &Booking{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ServiceType: svc,
		EventDate:   date,
		EventTime:   tod,
		Location:    r.Location,
		Message:     r.Message,
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// parseTimeOfDay accepts HH:MM and HH:MM:SS and returns the normalized
// HH:MM form.
func parseTimeOfDay(s string) (string, bool) {
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t.Format(TimeLayout), true
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format(TimeLayout), true
	}
	return "", false
}
