package entity

// ToastVariant styles a toast as a success or a failure.
type ToastVariant string

const (
	ToastSuccess ToastVariant = "success"
	ToastDanger  ToastVariant = "danger"
)

// Toast is an ephemeral user-facing notification. It is auto-dismissed after
// a fixed duration or closed manually.
type Toast struct {
	Message     string       `json:"message"`
	Description string       `json:"description,omitempty"`
	Variant     ToastVariant `json:"variant"`
}
