package consultation

import "time"

const StatusPending = "pending"

type Consultation struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`

	SkinType     string   `json:"skin_type"`
	SkinConcerns []string `json:"skin_concerns"`
	Notes        string   `json:"notes,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
