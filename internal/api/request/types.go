package request

// RegisterRequest is the request body for player registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PurchaseRequest is the request body for a direct tile purchase
type PurchaseRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SelectRequest is the request body for tile selection
type SelectRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CameraRequest is the request body for a camera command
// Command is one of: pan_up, pan_down, pan_left, pan_right, zoom_in, zoom_out
type CameraRequest struct {
	Command string `json:"command"`
}
