package http

import (
	"checklist-ledger/internal/auth"
	"checklist-ledger/internal/model"
)

// --- Request DTOs ---

type callbackReq struct {
	State string `form:"state"`
	Code  string `form:"code"`
	Error string `form:"error"`
}

func (r callbackReq) toInput() auth.CallbackInput {
	return auth.CallbackInput{State: r.State, Code: r.Code}
}

// --- Response DTOs ---

type statusResp struct {
	Configured bool   `json:"configured"`
	Message    string `json:"message,omitempty"`
}

func (h *handler) newStatusResp(o auth.StatusOutput) statusResp {
	resp := statusResp{Configured: o.Configured}
	if !o.Configured {
		resp.Message = auth.ErrNotConfigured.Error()
	}
	return resp
}

type meResp struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func (h *handler) newMeResp(sc model.Scope) meResp {
	return meResp{UserID: sc.UserID, Email: sc.Email, Name: sc.Name}
}
