package response

import (
	"hotel-front-desk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	GuestID  int64  `json:"guestId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"idNumber"`
}

// GuestResolutionResponse mirrors the three resolution outcomes: a resolved
// guest, or no account (lookup failures collapse into the latter).
type GuestResolutionResponse struct {
	Outcome string         `json:"outcome"`
	Guest   *GuestResponse `json:"guest,omitempty"`
}

func FromGuestView(view *queries.GuestView) *GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromGuestResolution(res *queries.GuestResolution) *GuestResolutionResponse {
	resp := &GuestResolutionResponse{Outcome: string(res.Outcome)}
	if res.Guest != nil {
		resp.Guest = FromGuestView(res.Guest)
	}
	return resp
}
