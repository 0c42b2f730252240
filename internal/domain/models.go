package domain

import "time"

// Enumerations
const (
	RoleAdmin  UserRole = "admin"
	RoleBarber UserRole = "barber"

	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
	AppointmentPending   AppointmentStatus = "pending"

	TransactionService TransactionType = "service"
	TransactionProduct TransactionType = "product"

	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

type UserRole string
type AppointmentStatus string
type TransactionType string
type NotificationType string

// Appointment is a booking record owned by the external booking system.
// CreatedAt doubles as the appointment's effective date for reporting.
type Appointment struct {
	ID          int64
	BarberID    int64
	CustomerID  *int64
	ServiceName string
	Status      AppointmentStatus
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// Transaction is a charge record. AppointmentID links it to the appointment
// it paid for; unlinked transactions still count toward earnings totals.
type Transaction struct {
	ID            int64
	BarberID      int64
	AppointmentID *int64
	Type          TransactionType
	Amount        Money
	TotalAmount   Money
	TipAmount     Money
	Commission    Money
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

type Customer struct {
	ID        int64
	BarberID  int64
	Name      string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// BookingLink is a shareable public booking page for one service.
type BookingLink struct {
	ID          int64
	BarberID    int64
	Slug        string
	Title       string
	ServiceName string
	DurationMin int
	Price       Money
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type Notification struct {
	ID        int64
	BarberID  *int64
	Title     string
	Message   string
	Type      NotificationType
	CreatedAt time.Time
	ReadAt    *time.Time
	DeletedAt *time.Time
}

// ThemeSettings holds per-tenant website customization.
type ThemeSettings struct {
	BarberID     *int64
	BusinessName string
	Tagline      string
	PrimaryColor string
	AccentColor  string
	FontFamily   string
	LogoURL      string
	ShowPrices   bool
	ShowReviews  bool
	UpdatedAt    time.Time
}
