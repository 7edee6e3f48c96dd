package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/orderchat-backend/internal/cart"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/logger"
	"github.com/angelmondragon/orderchat-backend/pkg/metrics"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

// Fixed apology texts shown when an external collaborator fails.
const (
	apologyQuery  = "Sorry, I had trouble understanding your question. Please try again."
	apologyImage  = "Sorry, I couldn't analyze the image."
	apologySpeech = "Sorry, there was an error with speech recognition. Please try again."
)

// Gateway is the external recommendation surface the chat flow calls.
type Gateway interface {
	Recommend(ctx context.Context, userText string, vegOnly bool, menu []types.MenuItem) (string, error)
	RecommendForImage(ctx context.Context, imageDescription string, vegOnly bool, menu []types.MenuItem) (string, error)
	DescribeImage(ctx context.Context, imageURL string) (string, error)
}

// MenuSource supplies the read-only menu feed for prompt construction.
type MenuSource func() []types.MenuItem

// Service drives the chat submission path: classification, the checkout
// dialogue, and gateway calls. All state changes go through the session's
// dispatch, one at a time.
type Service struct {
	gateway Gateway
	menu    MenuSource
	metrics *metrics.ChatMetrics
	logg    *logger.Logger
}

// NewService builds the chat service.
func NewService(gateway Gateway, menu MenuSource, chatMetrics *metrics.ChatMetrics, logg *logger.Logger) (*Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("gateway required")
	}
	if menu == nil {
		return nil, fmt.Errorf("menu source required")
	}
	return &Service{
		gateway: gateway,
		menu:    menu,
		metrics: chatMetrics,
		logg:    logg,
	}, nil
}

// Submit handles one user submission, typed or voice-finalized. It returns
// the messages appended to the transcript during this turn, user message
// first.
func (s *Service) Submit(ctx context.Context, sess *session.Session, input string, vegOnly bool) ([]types.Message, error) {
	trimmed := strings.TrimSpace(input)
	state := sess.State()

	if state.Checkout.Step.Active() {
		return s.advanceCheckout(ctx, sess, state, trimmed)
	}
	if trimmed == "" {
		return nil, nil
	}
	return s.answerQuery(ctx, sess, trimmed, vegOnly)
}

// SubmitImage handles an uploaded image: the image message is appended,
// the image is described by the gateway and the description is matched
// against the menu like typed text.
func (s *Service) SubmitImage(ctx context.Context, sess *session.Session, imageURL string, vegOnly bool) ([]types.Message, error) {
	userMsg := sess.NewMessage("", false, enums.QueryTypeMenu, imageURL)
	sess.Dispatch(session.AddMessage{Message: userMsg})
	s.metrics.IncSubmission(enums.QueryTypeMenu.String())

	answer, err := s.imageAnswer(ctx, imageURL, vegOnly)
	if err != nil {
		s.metrics.IncGatewayFailure()
		if s.logg != nil {
			s.logg.Error(s.logg.WithSessionID(ctx, sess.ID), "image analysis failed", err)
		}
		botMsg := sess.NewMessage(apologyImage, true, enums.QueryTypeGeneral, "")
		sess.Dispatch(session.AddMessage{Message: botMsg})
		return []types.Message{userMsg, botMsg}, nil
	}

	s.metrics.IncGatewaySuccess()
	botMsg := sess.NewMessage(answer, true, enums.QueryTypeMenu, "")
	sess.Dispatch(session.AddMessage{Message: botMsg})
	return []types.Message{userMsg, botMsg}, nil
}

// StartCheckout activates the checkout dialogue. The first subsequent
// submission collects the customer's name.
func (s *Service) StartCheckout(sess *session.Session) {
	sess.Dispatch(session.SetCheckoutStep{Step: enums.CheckoutStepDetails})
}

// VoiceError appends the fixed speech apology after a recognition failure.
func (s *Service) VoiceError(sess *session.Session) types.Message {
	s.metrics.IncVoiceEvent("error")
	botMsg := sess.NewMessage(apologySpeech, true, enums.QueryTypeGeneral, "")
	sess.Dispatch(session.AddMessage{Message: botMsg})
	return botMsg
}

func (s *Service) advanceCheckout(ctx context.Context, sess *session.Session, state session.State, trimmed string) ([]types.Message, error) {
	// Checkout flips a browsing session into chat mode for good.
	if state.Mode == enums.ChatModeBrowse {
		sess.Dispatch(session.SetMode{Mode: enums.ChatModeChat})
	}

	userMsg := sess.NewMessage(trimmed, false, enums.QueryTypeCheckout, "")
	sess.Dispatch(session.AddMessage{Message: userMsg})
	s.metrics.IncSubmission(enums.QueryTypeCheckout.String())
	appended := []types.Message{userMsg}

	total, err := cart.TotalString(state.Cart)
	if err != nil {
		return appended, err
	}

	result := AdvanceCheckout(state.Checkout.Step, state.Checkout.Details, trimmed, total)
	if result.Patch != (types.OrderDetails{}) {
		sess.Dispatch(session.UpdateOrderDetails{Patch: result.Patch})
	}
	if result.NextStep != state.Checkout.Step {
		sess.Dispatch(session.SetCheckoutStep{Step: result.NextStep})
	}
	if result.Prompt != "" {
		botMsg := sess.NewMessage(result.Prompt, true, enums.QueryTypeCheckout, "")
		sess.Dispatch(session.AddMessage{Message: botMsg})
		appended = append(appended, botMsg)
	}
	// The cart is deliberately left untouched after completion; only the
	// checkout step resets.
	return appended, nil
}

func (s *Service) answerQuery(ctx context.Context, sess *session.Session, trimmed string, vegOnly bool) ([]types.Message, error) {
	queryType := Classify(trimmed)

	userMsg := sess.NewMessage(trimmed, false, queryType, "")
	sess.Dispatch(session.AddMessage{Message: userMsg})
	sess.Dispatch(session.SetQueryType{QueryType: queryType})
	s.metrics.IncSubmission(queryType.String())

	sess.Dispatch(session.SetLoading{Loading: true})
	defer sess.Dispatch(session.SetLoading{Loading: false})

	start := time.Now()
	answer, err := s.gateway.Recommend(ctx, trimmed, vegOnly, s.menu())
	s.metrics.ObserveGatewayDuration("recommend", time.Since(start))

	var botMsg types.Message
	if err != nil {
		s.metrics.IncGatewayFailure()
		if s.logg != nil {
			lctx := s.logg.WithQueryType(s.logg.WithSessionID(ctx, sess.ID), queryType.String())
			s.logg.Error(lctx, "recommendation call failed", err)
		}
		botMsg = sess.NewMessage(apologyQuery, true, enums.QueryTypeGeneral, "")
	} else {
		s.metrics.IncGatewaySuccess()
		botMsg = sess.NewMessage(answer, true, queryType, "")
	}
	sess.Dispatch(session.AddMessage{Message: botMsg})
	return []types.Message{userMsg, botMsg}, nil
}

func (s *Service) imageAnswer(ctx context.Context, imageURL string, vegOnly bool) (string, error) {
	start := time.Now()
	description, err := s.gateway.DescribeImage(ctx, imageURL)
	s.metrics.ObserveGatewayDuration("describe_image", time.Since(start))
	if err != nil {
		return "", err
	}

	start = time.Now()
	answer, err := s.gateway.RecommendForImage(ctx, description, vegOnly, s.menu())
	s.metrics.ObserveGatewayDuration("recommend_image", time.Since(start))
	if err != nil {
		return "", err
	}
	return answer, nil
}
