package chat

import (
	"context"
	"net/http"

	"github.com/angelmondragon/orderchat-backend/api/middleware"
	"github.com/angelmondragon/orderchat-backend/api/responses"
	"github.com/angelmondragon/orderchat-backend/api/validators"
	chatsvc "github.com/angelmondragon/orderchat-backend/internal/chat"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	pkgerrors "github.com/angelmondragon/orderchat-backend/pkg/errors"
	"github.com/angelmondragon/orderchat-backend/pkg/logger"
)

// MessageCreate handles one typed submission: a menu query, a general
// question, or the next checkout reply, depending on session state.
func MessageCreate(registry *session.Registry, svc *chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r.Context(), registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload messageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		delta, err := svc.Submit(r.Context(), sess, validators.SanitizeString(payload.Text, 2000), payload.VegOnly)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		registry.Persist(r.Context(), sess)

		responses.WriteSuccess(w, newSubmission(delta, sess.State()))
	}
}

// ImageCreate handles an image submission: the image is described by the
// vision model and the description drives a menu recommendation.
func ImageCreate(registry *session.Registry, svc *chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r.Context(), registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload imageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		delta, err := svc.SubmitImage(r.Context(), sess, payload.ImageURL, payload.VegOnly)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		registry.Persist(r.Context(), sess)

		responses.WriteSuccess(w, newSubmission(delta, sess.State()))
	}
}

// TranscriptFetch returns the full message history for the session.
func TranscriptFetch(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r.Context(), registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, sess.State().Messages)
	}
}

// StateFetch returns the full conversational state for the session.
func StateFetch(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r.Context(), registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newState(sess.State()))
	}
}

func sessionFromRequest(ctx context.Context, registry *session.Registry) (*session.Session, error) {
	sessionID := middleware.SessionIDFromContext(ctx)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return registry.GetOrCreate(ctx, sessionID), nil
}
