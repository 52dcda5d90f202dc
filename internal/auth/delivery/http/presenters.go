package http

import (
	"time"

	"timeblock/internal/auth"
	"timeblock/internal/model"
)

// --- Request DTOs ---

type callbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
	Error string `form:"error"`
}

func (r callbackReq) toInput(expectedState string) auth.CallbackInput {
	return auth.CallbackInput{
		Code:          r.Code,
		State:         r.State,
		ExpectedState: expectedState,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	PictureURL string    `json:"picture_url"`
	CreatedAt  time.Time `json:"created_at"`
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(u model.User) meResp {
	return meResp{User: userResp{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		PictureURL: u.PictureURL,
		CreatedAt:  u.CreatedAt,
	}}
}
