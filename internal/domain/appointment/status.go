package appointment

// ===============================
// Appointment Status
// ===============================

// Status values other than the two below are stored and returned as given.
type Status string

const (
	StatusPending   Status = "pendente"
	StatusCompleted Status = "concluido"
)

// InitialStatus is applied when a caller creates an appointment without one.
func InitialStatus() Status {
	return StatusPending
}
