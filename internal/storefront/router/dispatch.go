package router

import (
	"context"

	"marketplace-bot/internal/storefront"
)

// Dispatch routes u to exactly one handler. Callback queries are acknowledged first,
// whatever happens next. Unrecognized callback data is dropped without error.
func (r *CommandRouter) Dispatch(ctx context.Context, u storefront.Update) error {
	if u == nil {
		return nil
	}

	if cq, ok := u.(storefront.CallbackQuery); ok && r.ack != nil {
		if err := r.ack.AnswerCallback(ctx, cq.ID); err != nil {
			r.l.Warnf(ctx, "%s: answer callback %s: %v", LogPrefixDispatch, cq.ID, err)
		}
	}

	route, ok := Classify(u)
	if !ok {
		r.l.Debugf(ctx, "%s: ignoring unrecognized update %+v", LogPrefixDispatch, u)
		return nil
	}

	handle, ok := r.registry[route.Kind]
	if !ok {
		r.l.Warnf(ctx, "%s: no handler registered for %s", LogPrefixDispatch, route.Kind)
		return nil
	}

	r.l.Debugf(ctx, "%s: %s", LogPrefixDispatch, route.Kind)
	return handle(ctx, newRequest(u, route))
}

func newRequest(u storefront.Update, route storefront.Route) storefront.Request {
	req := storefront.Request{Route: route}
	switch v := u.(type) {
	case storefront.TextMessage:
		req.ChatID, req.SenderID = v.ChatID, v.SenderID
		req.DisplayName, req.Username = v.DisplayName, v.Username
		req.Text = v.Text
	case storefront.CallbackQuery:
		req.ChatID, req.SenderID = v.ChatID, v.SenderID
		req.DisplayName, req.Username = v.DisplayName, v.Username
	}
	return req
}
