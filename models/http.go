package models

// CheckoutMode tells who takes a key: the logged-in account or a third party.
type CheckoutMode string

const (
	CheckoutSelf  CheckoutMode = "self"
	CheckoutOther CheckoutMode = "other"
)

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateKeyRequest is the body of POST /api/keys.
type CreateKeyRequest struct {
	VisibleCode string   `json:"visibleCode"`
	Address     string   `json:"address"`
	Color       KeyColor `json:"color"`
}

// RenameKeyRequest is the body of PATCH /api/keys/{id}.
// Only the visible code can change; address and color are fixed at creation.
type RenameKeyRequest struct {
	VisibleCode string `json:"visibleCode"`
}

// CheckoutRequest is the body of POST /api/keys/{id}/checkout.
//
// With Mode "self" the holder is the caller and the other fields are ignored.
// With Mode "other" both HolderName and HolderPhone are mandatory.
type CheckoutRequest struct {
	Mode        CheckoutMode `json:"mode"`
	HolderName  string       `json:"holderName,omitempty"`
	HolderPhone string       `json:"holderPhone,omitempty"`
}

// DeleteKeyRequest is the body of DELETE /api/keys/{id}.
// ActorName defaults to the caller username when empty.
type DeleteKeyRequest struct {
	Reason    string `json:"reason"`
	ActorName string `json:"actorName,omitempty"`
}

// AddAccountRequest is the body of POST /api/accounts.
type AddAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role"`
}
