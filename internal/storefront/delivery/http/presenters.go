package http

import (
	"errors"

	"marketplace-bot/internal/storefront"
)

var errExactlyOneInput = errors.New("set exactly one of text or callback_data")

type classifyReq struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

func (r classifyReq) validate() error {
	if (r.Text == "") == (r.CallbackData == "") {
		return errExactlyOneInput
	}
	return nil
}

func (r classifyReq) toUpdate() storefront.Update {
	if r.CallbackData != "" {
		return storefront.CallbackQuery{Data: r.CallbackData}
	}
	return storefront.TextMessage{Text: r.Text}
}

type classifyResp struct {
	Recognized bool   `json:"recognized"`
	Kind       string `json:"kind,omitempty"`
	Param      string `json:"param,omitempty"`
	Page       int    `json:"page,omitempty"`
}

func (h *handler) newClassifyResp(route storefront.Route, ok bool) classifyResp {
	if !ok {
		return classifyResp{}
	}
	return classifyResp{
		Recognized: true,
		Kind:       string(route.Kind),
		Param:      route.Param,
		Page:       route.Page,
	}
}
