package voice

import (
	"context"
	"net/http"

	"github.com/angelmondragon/orderchat-backend/api/middleware"
	"github.com/angelmondragon/orderchat-backend/api/responses"
	"github.com/angelmondragon/orderchat-backend/api/validators"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	voicesvc "github.com/angelmondragon/orderchat-backend/internal/voice"
	pkgerrors "github.com/angelmondragon/orderchat-backend/pkg/errors"
	"github.com/angelmondragon/orderchat-backend/pkg/logger"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

type stateResponse struct {
	State voicesvc.State `json:"state"`
}

type eventResponse struct {
	State voicesvc.State `json:"state"`
	// Messages appended to the transcript while handling the event, if any.
	Messages []types.Message `json:"messages"`
}

// CaptureStart begins a voice capture for the session. Starting while
// already listening is a no-op.
func CaptureStart(manager *voicesvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vs, err := voiceSession(r.Context(), manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := vs.Start(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "voice capture failed to start"))
			return
		}
		responses.WriteSuccess(w, stateResponse{State: vs.State()})
	}
}

// CaptureStop ends the capture. Stopping an idle session is a no-op.
func CaptureStop(manager *voicesvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vs, err := voiceSession(r.Context(), manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := vs.Stop(); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "voice capture failed to stop"))
			return
		}
		responses.WriteSuccess(w, stateResponse{State: vs.State()})
	}
}

// EventIngest applies one speech engine event. A final transcript runs
// through the chat submission path before this returns, so the response
// carries the new transcript messages.
func EventIngest(manager *voicesvc.Manager, registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vs, err := voiceSession(r.Context(), manager)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload eventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		before := transcriptLen(r.Context(), registry, sessionID)

		vs.HandleEvent(r.Context(), voicesvc.Event{
			Kind:       voicesvc.EventKind(payload.Kind),
			Transcript: payload.Transcript,
			Message:    payload.Message,
		})

		messages := sessionMessages(r.Context(), registry, sessionID)
		if before > len(messages) {
			before = len(messages)
		}
		responses.WriteSuccess(w, eventResponse{
			State:    vs.State(),
			Messages: messages[before:],
		})
	}
}

func voiceSession(ctx context.Context, manager *voicesvc.Manager) (*voicesvc.Session, error) {
	sessionID := middleware.SessionIDFromContext(ctx)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	vs, err := manager.ForSession(sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "voice session unavailable")
	}
	return vs, nil
}

func transcriptLen(ctx context.Context, registry *session.Registry, sessionID string) int {
	return len(sessionMessages(ctx, registry, sessionID))
}

func sessionMessages(ctx context.Context, registry *session.Registry, sessionID string) []types.Message {
	return registry.GetOrCreate(ctx, sessionID).State().Messages
}
