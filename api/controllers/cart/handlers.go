package cart

import (
	"context"
	"net/http"

	"github.com/angelmondragon/orderchat-backend/api/middleware"
	"github.com/angelmondragon/orderchat-backend/api/responses"
	"github.com/angelmondragon/orderchat-backend/api/validators"
	chatsvc "github.com/angelmondragon/orderchat-backend/internal/chat"
	menusvc "github.com/angelmondragon/orderchat-backend/internal/menu"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	pkgerrors "github.com/angelmondragon/orderchat-backend/pkg/errors"
	"github.com/angelmondragon/orderchat-backend/pkg/logger"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

// CartFetch returns the session cart with its running total.
func CartFetch(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r.Context(), registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload, err := newCart(sess.State().Cart)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, payload)
	}
}

// CartItemApply adds a menu item to the cart or shifts an existing row's
// quantity. Quantities clamp at zero and the row is kept.
func CartItemApply(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r.Context(), registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload applyItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := sess.State()
		if hasRow(state.Cart, payload.ItemID) {
			sess.Dispatch(session.ApplyCartDelta{ItemID: payload.ItemID, Delta: payload.Delta})
		} else if payload.Delta > 0 {
			item, ok := menusvc.FindByID(payload.ItemID)
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found"))
				return
			}
			sess.Dispatch(session.UpdateCartItem{Item: types.CartItem{
				ID:       item.ID,
				Name:     item.Name,
				Price:    item.Price,
				Quantity: payload.Delta,
			}})
		}
		registry.Persist(r.Context(), sess)

		body, err := newCart(sess.State().Cart)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, body)
	}
}

// CartCheckout enters the checkout dialogue. The next chat submission
// collects the customer's name.
func CartCheckout(registry *session.Registry, svc *chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r.Context(), registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.StartCheckout(sess)
		registry.Persist(r.Context(), sess)

		body, err := newCheckout(sess.State())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, body)
	}
}

func hasRow(items []types.CartItem, itemID int64) bool {
	for _, item := range items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

func sessionFromRequest(ctx context.Context, registry *session.Registry) (*session.Session, error) {
	sessionID := middleware.SessionIDFromContext(ctx)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return registry.GetOrCreate(ctx, sessionID), nil
}
