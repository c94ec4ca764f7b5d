// Package conversation is the per-chat state machine: it decides which model
// a user's input is meant for, validates the input, calls the inference
// service, and produces the replies shown to the user. It is free of
// Telegram types so the whole machine is testable in isolation.
package conversation

import (
	"context"
	"log/slog"
	"strings"

	"medscan/internal/domain"
	"medscan/internal/session"
	"medscan/internal/validation"
)

// PredictionClient abstracts the inference service from the state machine.
type PredictionClient interface {
	PredictImage(ctx context.Context, model domain.ModelID, image []byte) (*domain.PredictionResult, error)
	PredictParams(ctx context.Context, model domain.ModelID, params []domain.Param) (*domain.PredictionResult, error)
}

// Turn is the outcome of handling one inbound update: an optional edit of
// the menu message, zero or more replies, and whether to re-present the
// model menu.
type Turn struct {
	Edit     string
	Replies  []string
	ShowMenu bool
}

// Engine routes updates according to the chat's session state. Every
// prediction attempt, whatever its outcome, consumes the selection.
type Engine struct {
	sessions *session.Store
	client   PredictionClient
}

func NewEngine(sessions *session.Store, client PredictionClient) *Engine {
	return &Engine{sessions: sessions, client: client}
}

// Start handles /start: the session returns to idle and the menu is shown.
func (e *Engine) Start(chatID int64) Turn {
	e.sessions.Reset(chatID)
	return Turn{ShowMenu: true}
}

// Choose handles a model-choice callback. An unrecognized payload shows an
// error and re-presents the menu.
func (e *Engine) Choose(chatID int64, data string) Turn {
	model, ok := domain.ParseModelID(data)
	if !ok {
		slog.Warn("unknown model choice", "chat_id", chatID, "data", data)
		e.sessions.Reset(chatID)
		return Turn{Edit: msgChoiceError, ShowMenu: true}
	}

	e.sessions.Select(chatID, model)
	switch model {
	case domain.ModelBrainTumor:
		return Turn{Edit: msgChoseBrainTumor}
	case domain.ModelPneumonia:
		return Turn{Edit: msgChosePneumonia}
	case domain.ModelHeartAttack:
		return Turn{Edit: msgChoseHeartAttack, Replies: []string{heartLegend}}
	default:
		return Turn{Edit: msgChoseDiabetes, Replies: []string{diabetesLegend}}
	}
}

// Image handles an inbound photo, already downloaded by the transport layer.
func (e *Engine) Image(ctx context.Context, chatID int64, image []byte) Turn {
	sess := e.sessions.Get(chatID)
	defer e.sessions.Reset(chatID)

	if !sess.Selected.IsImage() {
		return Turn{Replies: []string{msgPredictError}, ShowMenu: true}
	}

	result, err := e.client.PredictImage(ctx, sess.Selected, image)
	if err != nil {
		slog.Error("image prediction failed", "chat_id", chatID, "model", sess.Selected, "error", err)
		return Turn{Replies: []string{msgPredictError}, ShowMenu: true}
	}

	return Turn{Replies: renderResult(sess.Selected, result)}
}

// ImageUnavailable handles a photo the transport layer failed to fetch.
func (e *Engine) ImageUnavailable(chatID int64) Turn {
	e.sessions.Reset(chatID)
	return Turn{Replies: []string{msgGenericError}, ShowMenu: true}
}

// Text handles a free-text message: a comma-separated parameter list when a
// parametric model is selected, otherwise a prompt to select a model. The
// menu is re-presented after every text turn.
func (e *Engine) Text(ctx context.Context, chatID int64, text string) Turn {
	sess := e.sessions.Get(chatID)
	defer e.sessions.Reset(chatID)

	switch sess.Selected {
	case domain.ModelHeartAttack:
		params, err := validation.Validate(sess.Selected, strings.Split(text, ","))
		if err != nil {
			return Turn{Replies: []string{err.Error() + msgTryAgain}, ShowMenu: true}
		}
		return e.predictParams(ctx, chatID, sess.Selected, params)

	case domain.ModelDiabetes:
		params, err := validation.Validate(sess.Selected, strings.Split(text, ","))
		if err != nil {
			return Turn{Replies: []string{msgAllNumeric}, ShowMenu: true}
		}
		return e.predictParams(ctx, chatID, sess.Selected, params)

	default:
		return Turn{Replies: []string{msgSelectFirst}, ShowMenu: true}
	}
}

func (e *Engine) predictParams(ctx context.Context, chatID int64, model domain.ModelID, params []domain.Param) Turn {
	result, err := e.client.PredictParams(ctx, model, params)
	if err != nil {
		slog.Error("parametric prediction failed", "chat_id", chatID, "model", model, "error", err)
		return Turn{Replies: []string{msgPredictError}, ShowMenu: true}
	}
	return Turn{Replies: renderResult(model, result), ShowMenu: true}
}
